// Package interpreter drives evaluation of FibLang AST nodes.
package interpreter

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/yhirose/fiblang/pkg/ast"
	"github.com/yhirose/fiblang/pkg/runtime"
)

// Interpreter walks a FibLang tree against a chain of environments.
// Evaluation is single-threaded and strictly depth-first; the only
// state is the global environment and the Go call stack.
type Interpreter struct {
	global *runtime.Environment
	stdout io.Writer
}

// New returns an interpreter whose builtins print to os.Stdout.
func New() *Interpreter {
	return NewWithStdout(os.Stdout)
}

// NewWithStdout returns an interpreter whose builtins print to w.
func NewWithStdout(w io.Writer) *Interpreter {
	i := &Interpreter{
		global: runtime.NewEnvironment(nil),
		stdout: w,
	}
	i.registerBuiltins()
	return i
}

// GlobalEnvironment returns the interpreter's global environment.
func (i *Interpreter) GlobalEnvironment() *runtime.Environment {
	return i.global
}

// Run evaluates a program in the global environment and returns the
// value of its last statement.
func (i *Interpreter) Run(program ast.Node) (runtime.Value, error) {
	return i.Evaluate(program, i.global)
}

// Evaluate executes one node in the given environment, one case per
// node kind. Every error aborts the walk and propagates unchanged to
// the top level.
func (i *Interpreter) Evaluate(node ast.Node, env *runtime.Environment) (runtime.Value, error) {
	switch n := node.(type) {
	case *ast.Statements:
		var last runtime.Value = runtime.NilValue{}
		for _, stmt := range n.Body {
			val, err := i.Evaluate(stmt, env)
			if err != nil {
				return nil, err
			}
			last = val
		}
		return last, nil

	case *ast.Definition:
		env.Define(n.Name, &runtime.FunctionValue{
			Name:    n.Name,
			Param:   n.Param,
			Body:    n.Body,
			Closure: env,
		})
		return runtime.NilValue{}, nil

	case *ast.Ternary:
		condVal, err := i.Evaluate(n.Cond, env)
		if err != nil {
			return nil, err
		}
		cond, err := runtime.AsBool(condVal)
		if err != nil {
			return nil, err
		}
		if cond {
			return i.Evaluate(n.Then, env)
		}
		return i.Evaluate(n.Else, env)

	case *ast.Condition:
		left, err := i.Evaluate(n.Left, env)
		if err != nil {
			return nil, err
		}
		right, err := i.Evaluate(n.Right, env)
		if err != nil {
			return nil, err
		}
		less, err := runtime.Less(left, right)
		if err != nil {
			return nil, err
		}
		return runtime.BoolValue{Val: less}, nil

	case *ast.Infix:
		acc, err := i.evaluateLong(n.First, env)
		if err != nil {
			return nil, err
		}
		for _, term := range n.Rest {
			operand, err := i.evaluateLong(term.Operand, env)
			if err != nil {
				return nil, err
			}
			switch term.Op {
			case "+":
				acc += operand
			case "-":
				acc -= operand
			default:
				return nil, &runtime.InternalError{Msg: fmt.Sprintf("unknown infix operator %q", term.Op)}
			}
		}
		return runtime.LongValue{Val: acc}, nil

	case *ast.Call:
		callee, err := i.Evaluate(n.Callee, env)
		if err != nil {
			return nil, err
		}
		// The callee must resolve to a function before the argument
		// runs; a non-function callee fails with no argument side
		// effects.
		if k := callee.Kind(); k != runtime.KindFunction && k != runtime.KindNativeFunction {
			return nil, &runtime.TypeError{Expected: "function", Got: k}
		}
		arg, err := i.Evaluate(n.Argument, env)
		if err != nil {
			return nil, err
		}
		return i.callFunction(callee, arg)

	case *ast.ForLoop:
		from, err := i.evaluateLong(n.From, env)
		if err != nil {
			return nil, err
		}
		to, err := i.evaluateLong(n.To, env)
		if err != nil {
			return nil, err
		}
		for v := from; v <= to; v++ {
			iterEnv := runtime.NewEnvironment(env)
			iterEnv.Define(n.Var, runtime.LongValue{Val: v})
			if _, err := i.Evaluate(n.Body, iterEnv); err != nil {
				return nil, err
			}
		}
		return runtime.NilValue{}, nil

	case *ast.Identifier:
		return env.Get(n.Name)

	case *ast.NumberLiteral:
		v, err := strconv.ParseInt(n.Text, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("number literal %q out of range", n.Text)
		}
		return runtime.LongValue{Val: v}, nil

	default:
		return nil, &runtime.InternalError{Msg: fmt.Sprintf("unsupported node type %s", node.NodeType())}
	}
}

// callFunction applies a callee to a single argument. The call
// environment is a child of the function's captured defining
// environment, never the caller's; that parent choice is what makes
// scoping lexical rather than dynamic.
func (i *Interpreter) callFunction(callee, arg runtime.Value) (runtime.Value, error) {
	switch fn := callee.(type) {
	case *runtime.FunctionValue:
		callEnv := runtime.NewEnvironment(fn.Closure)
		callEnv.Define(fn.Param, arg)
		val, err := i.Evaluate(fn.Body, callEnv)
		if ret, ok := err.(returnSignal); ok {
			return ret.value, nil
		}
		return val, err
	case runtime.NativeFunctionValue:
		callEnv := runtime.NewEnvironment(i.global)
		callEnv.Define(fn.Param, arg)
		val, err := fn.Impl(callEnv)
		if ret, ok := err.(returnSignal); ok {
			return ret.value, nil
		}
		return val, err
	default:
		return nil, &runtime.InternalError{Msg: fmt.Sprintf("callFunction on %s value", callee.Kind())}
	}
}

func (i *Interpreter) evaluateLong(node ast.Node, env *runtime.Environment) (int64, error) {
	val, err := i.Evaluate(node, env)
	if err != nil {
		return 0, err
	}
	return runtime.AsLong(val)
}
