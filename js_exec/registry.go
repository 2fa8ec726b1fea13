package js_exec

import (
	"forwardlist/js_exec/debug_out"
	"forwardlist/js_exec/forward_list"
	"github.com/dop251/goja"
	"github.com/dop251/goja_nodejs/console"
	"github.com/dop251/goja_nodejs/require"
)

// RegistryModule makes loader available to both normal and debug runs.
// The console module name is reserved.
func RegistryModule(moduleName string, loader require.ModuleLoader) {
	if moduleName == console.ModuleName || moduleName == debug_out.ModuleName {
		return
	}
	registry.RegisterNativeModule(moduleName, loader)
	debugRegistry.RegisterNativeModule(moduleName, loader)
}

var registry = require.NewRegistry()
var debugRegistry = require.NewRegistry()

func init() {
	registry.RegisterNativeModule(console.ModuleName, console.Require)
	debugRegistry.RegisterNativeModule(debug_out.ModuleName, debug_out.Require)
	RegistryModule(forward_list.ModuleName, forward_list.Require)
}

// LoadModules enables require() and the process console on vm.
func LoadModules(vm *goja.Runtime) {
	registry.Enable(vm)
	console.Enable(vm)
}

// LoadModulesForDebugMode enables require() and a console whose output can be
// redirected with debug_out.SetIoWriter.
func LoadModulesForDebugMode(vm *goja.Runtime) {
	debugRegistry.Enable(vm)
	debug_out.Enable(vm)
}
