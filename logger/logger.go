package logger

import (
	"fmt"
	"github.com/mitchellh/go-homedir"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"sync"
)

var (
	mu      sync.Mutex
	once    sync.Once
	logger  *log.Logger // file, nil when the log file cannot be opened
	_logger = log.New(os.Stdout, "", log.LstdFlags|log.Lshortfile|log.LUTC)
)

// prefix
const (
	DEBUG = "DEBUG"
	INFO  = "INFO"
	WARN  = "WARN"
	ERROR = "ERROR"
	FATAL = "FATAL"
)

// Dir is where the log file lives, relative to the home directory.
const Dir = ".forwardlist/debug"

func openFile() {
	dir, err := homedir.Dir()
	if err != nil {
		_logger.Println("[WARN] cannot resolve home dir, file logging disabled:", err)
		return
	}
	var path = filepath.Join(dir, Dir)
	err = os.MkdirAll(path, os.ModePerm)
	if err != nil {
		_logger.Println("[WARN] cannot create log dir, file logging disabled:", err)
		return
	}
	var file = filepath.Join(path, "forwardlist.log")

	logFile, err := os.OpenFile(file, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0766)
	if err != nil {
		_logger.Println("[WARN] cannot open log file, file logging disabled:", err)
		return
	}
	logger = log.New(logFile, "", log.LstdFlags|log.Lshortfile|log.LUTC)
}

// SetOutput redirects the console logger.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	_logger.SetOutput(w)
}

func Debug(v ...any) {
	_log(DEBUG, v)
}
func Error(v ...any) {
	_log(ERROR, v)
}
func Info(v ...any) {
	_log(INFO, v)
}
func Warn(v ...any) {
	_log(WARN, v)
}

// Fatal logs and exits the process.
func Fatal(v ...any) {
	_log(FATAL, v)
	os.Exit(1)
}
func _log(prefix string, v []any) {
	once.Do(openFile)
	mu.Lock()
	defer mu.Unlock()
	setPrefix(prefix)
	msg := fmt.Sprintln(v...)
	if logger != nil {
		_ = logger.Output(3, msg)
	}
	_ = _logger.Output(3, msg)
}
func setPrefix(logType string) {
	_, file, line, ok := runtime.Caller(3)
	var logPrefix string
	if ok {
		logPrefix = fmt.Sprintf("[%s][%s:%d]", logType, filepath.Base(file), line)
	} else {
		logPrefix = fmt.Sprintf("[%s]", logType)
	}
	if logger != nil {
		logger.SetPrefix(logPrefix)
	}
	_logger.SetPrefix(logPrefix)
}
