package server

import (
	"bytes"
	"context"
	"errors"
	"forwardlist/job"
	"forwardlist/logger"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"net/http"
)

type runRequest struct {
	Script string `json:"script"`
}

// Run executes the posted script and answers with its console output.
func (s *server) Run(c *gin.Context) {
	var req runRequest
	err := c.BindJSON(&req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	j := job.CreateJsJob(req.Script)
	var out bytes.Buffer
	err = j.RunForDebugContext(c.Request.Context(), &out)
	if errors.Is(err, job.ErrEmptyScript) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		c.JSON(http.StatusRequestTimeout, gin.H{
			"id":     j.JobId,
			"output": out.String(),
			"error":  err.Error(),
		})
		return
	}
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"id":     j.JobId,
			"output": out.String(),
			"error":  err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"id":     j.JobId,
		"output": out.String(),
	})
}

type wsWriter struct {
	ws *websocket.Conn
}

func (w *wsWriter) Write(p []byte) (n int, err error) {
	err = w.ws.WriteMessage(websocket.TextMessage, p)
	if err != nil {
		return 0, err
	}
	return len(p), nil
}

/**********WS***********/

// Debug reads a script from the first websocket message, streams the console
// output back line by line and ends with a {"id","error"} message. Closing
// the connection interrupts the script.
func (s *server) Debug(c *gin.Context) {
	ws, err := s.upgrade.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Warn("websocket upgrade failed:", err)
		return
	}
	defer func(ws *websocket.Conn) {
		_ = ws.Close()
	}(ws)

	_, script, err := ws.ReadMessage()
	if err != nil {
		logger.Warn("reading debug script failed:", err)
		return
	}

	// the run stops when the client goes away.
	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()
	go func() {
		defer cancel()
		for {
			if _, _, err := ws.ReadMessage(); err != nil {
				return
			}
		}
	}()

	write := wsWriter{
		ws: ws,
	}
	j := job.CreateJsJob(string(script))
	runErr := j.RunForDebugContext(ctx, &write)
	var result = gin.H{"id": j.JobId, "error": nil}
	if runErr != nil {
		result["error"] = runErr.Error()
	}
	if err = ws.WriteJSON(result); err != nil {
		logger.Warn("writing debug result failed:", err)
	}
}

/**********************/

type server struct {
	upgrade websocket.Upgrader
}

func makeServer() *server {
	return &server{
		upgrade: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

// Start registers the API on engine.
func Start(engine *gin.Engine) {
	ser := makeServer()
	ser.RegistryRouting(engine)
	engine.NoRoute(func(ctx *gin.Context) { ctx.JSON(http.StatusNotFound, gin.H{}) })
}

func (s *server) RegistryRouting(engine *gin.Engine) {
	api := engine.Group("/api")
	{
		api.POST("/run", s.Run)
		api.GET("/debug", s.Debug)
	}
}
