package server

import (
	"context"
	"encoding/json"
	"forwardlist/logger"
	"forwardlist/struct/list"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	Start(r)
	return r
}

func post(t *testing.T, r http.Handler, body string) (int, map[string]any) {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/run", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	var res map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	return w.Code, res
}

func TestRun_OK(t *testing.T) {
	r := newEngine()
	code, res := post(t, r, `{"script":"var l = require('forward_list').create(3, 1, 2); console.log(l.toArray().join(','))"}`)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "3,1,2\n", res["output"])
	assert.NotEmpty(t, res["id"])
}

func TestRun_BadRequest(t *testing.T) {
	r := newEngine()
	code, _ := post(t, r, `not json`)
	assert.Equal(t, http.StatusBadRequest, code)

	code, res := post(t, r, `{"script":""}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "script is empty", res["error"])
}

func TestRun_ScriptError(t *testing.T) {
	r := newEngine()
	code, res := post(t, r, `{"script":"console.log('x'); undefinedFn()"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, code)
	assert.Equal(t, "x\n", res["output"])
	assert.Contains(t, res["error"], "undefinedFn")
}

func TestRun_ContractViolation(t *testing.T) {
	if !list.Checked {
		t.Skip("contracts are not checked in this build")
	}
	r := newEngine()
	code, res := post(t, r, `{"script":"var l = require('forward_list').create(); l.eraseAfter(l.end())"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, code)
	assert.Contains(t, res["error"], "EraseAfter: position is end")
}

func TestNoRoute(t *testing.T) {
	r := newEngine()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDebug_StreamsOutput(t *testing.T) {
	srv := httptest.NewServer(newEngine())
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/debug"
	ws, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer ws.Close()

	script := `
	var fl = require('forward_list')
	var l = fl.create('b')
	l.pushFront('a')
	console.log(l.front())
	console.log(l.size())
`
	require.NoError(t, ws.WriteMessage(websocket.TextMessage, []byte(script)))

	var lines []string
	for i := 0; i < 2; i++ {
		_, msg, err := ws.ReadMessage()
		require.NoError(t, err)
		lines = append(lines, string(msg))
	}
	assert.Equal(t, []string{"a\n", "2\n"}, lines)

	var result map[string]any
	require.NoError(t, ws.ReadJSON(&result))
	assert.NotEmpty(t, result["id"])
	assert.Nil(t, result["error"])
}

func TestRun_EndlessScriptTimesOut(t *testing.T) {
	r := newEngine()
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/run",
		strings.NewReader(`{"script":"console.log('start'); while (true) {}"}`)).WithContext(ctx)
	req.Header.Set("Content-Type", "application/json")

	finished := make(chan struct{})
	go func() {
		r.ServeHTTP(w, req)
		close(finished)
	}()
	select {
	case <-finished:
	case <-time.After(5 * time.Second):
		t.Fatal("request did not return after its deadline")
	}

	assert.Equal(t, http.StatusRequestTimeout, w.Code)
	var res map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, "start\n", res["output"])
	assert.Contains(t, res["error"], context.DeadlineExceeded.Error())
}

type logWatch chan string

func (w logWatch) Write(p []byte) (int, error) {
	select {
	case w <- string(p):
	default:
	}
	return len(p), nil
}

func TestDebug_CloseInterruptsScript(t *testing.T) {
	logs := make(logWatch, 64)
	logger.SetOutput(logs)
	defer logger.SetOutput(os.Stdout)

	srv := httptest.NewServer(newEngine())
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/debug"
	ws, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	require.NoError(t, ws.WriteMessage(websocket.TextMessage, []byte(`console.log('start'); while (true) {}`)))
	_, msg, err := ws.ReadMessage()
	require.NoError(t, err)
	assert.Equal(t, "start\n", string(msg))
	require.NoError(t, ws.Close())

	deadline := time.After(5 * time.Second)
	for {
		select {
		case line := <-logs:
			if strings.Contains(line, "job interrupted") {
				assert.Contains(t, line, context.Canceled.Error())
				return
			}
		case <-deadline:
			t.Fatal("debug script kept running after the client left")
		}
	}
}
