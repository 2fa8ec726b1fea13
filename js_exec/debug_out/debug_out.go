package debug_out

import (
	"github.com/dop251/goja"
	"github.com/dop251/goja_nodejs/require"
	"github.com/dop251/goja_nodejs/util"
	"io"
	"os"
	"sync"
)

const ModuleName = "debug_console"

// Console is a console implementation that writes every line to a writer
// instead of the process log, so a caller can capture a script's output.
type Console struct {
	runtime *goja.Runtime
	util    *goja.Object
	mu      sync.Mutex
	writer  io.Writer
}

var defaultWriter io.Writer = os.Stdout

func (c *Console) log(level string) func(goja.FunctionCall) goja.Value {
	return func(call goja.FunctionCall) goja.Value {
		format, ok := goja.AssertFunction(c.util.Get("format"))
		if !ok {
			panic(c.runtime.NewTypeError("util.format is not a function"))
		}
		ret, err := format(c.util, call.Arguments...)
		if err != nil {
			panic(err)
		}
		c.write(level, ret.String())
		return nil
	}
}

func (c *Console) write(level string, s string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if level != "" {
		s = level + " " + s
	}
	_, _ = io.WriteString(c.writer, s+"\n")
}

func (c *Console) install(o *goja.Object) {
	_ = o.Set("log", c.log(""))
	_ = o.Set("info", c.log(""))
	_ = o.Set("error", c.log("[error]"))
	_ = o.Set("warn", c.log("[warn]"))
}

func Require(runtime *goja.Runtime, module *goja.Object) {
	requireWithPrinter(defaultWriter)(runtime, module)
}

func requireWithPrinter(writer io.Writer) require.ModuleLoader {
	return func(runtime *goja.Runtime, module *goja.Object) {
		c := &Console{
			runtime: runtime,
			writer:  writer,
		}
		c.util = require.Require(runtime, util.ModuleName).(*goja.Object)
		c.install(module.Get("exports").(*goja.Object))
	}
}

// Enable exposes the module as the global console.
func Enable(runtime *goja.Runtime) {
	runtime.Set("console", require.Require(runtime, ModuleName))
}

// SetIoWriter points the global console of runtime at writer. Enable must
// have been called first.
func SetIoWriter(runtime *goja.Runtime, writer io.Writer) {
	var s = runtime.Get("console").(*goja.Object)
	var c = &Console{
		runtime: runtime,
		writer:  writer,
		util:    require.Require(runtime, util.ModuleName).(*goja.Object),
	}
	c.install(s)
}
