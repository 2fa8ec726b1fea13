package job

import (
	"context"
	"errors"
	"fmt"
	"forwardlist/js_exec"
	"forwardlist/js_exec/debug_out"
	"forwardlist/logger"
	"github.com/dop251/goja"
	"github.com/google/uuid"
	"io"
	"strings"
)

var ErrEmptyScript = errors.New("script is empty")

// Job is one run of a script against the native modules.
type Job struct {
	JobId  string // should be unique.
	Script string
}

func CreateJsJob(script string) *Job {
	return &Job{
		JobId:  uuid.NewString(),
		Script: script,
	}
}

// Run executes the script with the process console.
func (j *Job) Run() error {
	return j.RunContext(context.Background())
}

// RunContext is Run, interrupted when ctx is done.
func (j *Job) RunContext(ctx context.Context) error {
	vm := goja.New()        // the vm is not concurrent safe.
	js_exec.LoadModules(vm) // native modules support.
	return j.exec(ctx, vm)
}

// RunForDebug executes the script and sends its console output to writer.
func (j *Job) RunForDebug(writer io.Writer) error {
	return j.RunForDebugContext(context.Background(), writer)
}

// RunForDebugContext is RunForDebug, interrupted when ctx is done.
func (j *Job) RunForDebugContext(ctx context.Context, writer io.Writer) error {
	vm := goja.New()
	js_exec.LoadModulesForDebugMode(vm)
	debug_out.SetIoWriter(vm, writer) // this vm would use this writer.
	return j.exec(ctx, vm)
}

func (j *Job) exec(ctx context.Context, vm *goja.Runtime) (err error) {
	if strings.TrimSpace(j.Script) == "" {
		return ErrEmptyScript
	}
	defer func() {
		// a Go panic that escaped the vm, e.g. a violated list contract in an
		// unchecked build.
		if r := recover(); r != nil {
			err = fmt.Errorf("job %s panicked: %v", j.JobId, r)
			logger.Error(err)
		}
	}()

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			vm.Interrupt(ctx.Err())
		case <-done:
		}
	}()

	_, err = vm.RunString(j.Script) // running logic.
	var interrupted *goja.InterruptedError
	if errors.As(err, &interrupted) && ctx.Err() != nil {
		logger.Warn(fmt.Sprintf("job interrupted:%s %s", j.JobId, ctx.Err()))
		return fmt.Errorf("job %s interrupted: %w", j.JobId, ctx.Err())
	}
	if err != nil {
		logger.Error(fmt.Sprintf("running job failed:%s %s", j.JobId, err.Error()))
		return fmt.Errorf("job %s: %w", j.JobId, err)
	}
	logger.Debug(fmt.Sprintf("job finished:%s", j.JobId))
	return nil
}
