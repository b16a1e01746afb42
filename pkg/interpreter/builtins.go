package interpreter

import (
	"fmt"

	"github.com/yhirose/fiblang/pkg/runtime"
)

// returnSignal carries a value out of a native function body to the
// enclosing call frame, where callFunction unwraps it. The language has
// no catch construct; this never crosses a frame boundary and is never
// visible to user code.
type returnSignal struct {
	value runtime.Value
}

func (returnSignal) Error() string { return "return outside function call" }

// EarlyReturn wraps a value as a control-flow signal a native body can
// return instead of a plain result. The nearest call boundary yields
// the wrapped value as the call's result.
func EarlyReturn(v runtime.Value) error {
	return returnSignal{value: v}
}

// RegisterNative binds a builtin into the global environment. The
// parameter name is bound in the call environment handed to impl, the
// same way a user function's parameter is.
func (i *Interpreter) RegisterNative(name, param string, impl runtime.NativeFunc) {
	i.global.Define(name, runtime.NativeFunctionValue{
		Name:  name,
		Param: param,
		Impl:  impl,
	})
}

// registerBuiltins seeds the global environment. `puts` prints its
// argument's display string followed by a newline and yields nil.
func (i *Interpreter) registerBuiltins() {
	i.RegisterNative("puts", "arg", func(env *runtime.Environment) (runtime.Value, error) {
		v, err := env.Get("arg")
		if err != nil {
			return nil, err
		}
		if _, err := fmt.Fprintln(i.stdout, runtime.Display(v)); err != nil {
			return nil, err
		}
		return runtime.NilValue{}, nil
	})
}
