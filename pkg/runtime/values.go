package runtime

import (
	"fmt"
	"strconv"

	"github.com/yhirose/fiblang/pkg/ast"
)

// Kind identifies the runtime value category.
type Kind int

const (
	KindNil Kind = iota
	KindBool
	KindLong
	KindFunction
	KindNativeFunction
)

func (k Kind) String() string {
	switch k {
	case KindNil:
		return "nil"
	case KindBool:
		return "bool"
	case KindLong:
		return "long"
	case KindFunction:
		return "function"
	case KindNativeFunction:
		return "native_function"
	default:
		return fmt.Sprintf("unknown_kind_%d", int(k))
	}
}

// Value is the shared behaviour for all runtime values.
type Value interface {
	Kind() Kind
}

type NilValue struct{}

func (NilValue) Kind() Kind { return KindNil }

type BoolValue struct {
	Val bool
}

func (BoolValue) Kind() Kind { return KindBool }

type LongValue struct {
	Val int64
}

func (LongValue) Kind() Kind { return KindLong }

// FunctionValue is a user-defined closure: the parameter name, the body
// tree, and the environment that was current at the definition site.
// The closure is held by reference, so bindings added to it after the
// definition (the function's own name included) are visible at call time.
type FunctionValue struct {
	Name    string
	Param   string
	Body    ast.Node
	Closure *Environment
}

func (*FunctionValue) Kind() Kind { return KindFunction }

// NativeFunc is the body of a builtin. It receives the call environment
// with the parameter already bound.
type NativeFunc func(env *Environment) (Value, error)

// NativeFunctionValue is a builtin with a Go body instead of a tree.
type NativeFunctionValue struct {
	Name  string
	Param string
	Impl  NativeFunc
}

func (NativeFunctionValue) Kind() Kind { return KindNativeFunction }

// AsBool reads v as a boolean. Legal for Bool and for Long, where any
// non-zero value is true. Every other tag is a type error; there is no
// coercion in the other direction.
func AsBool(v Value) (bool, error) {
	switch val := v.(type) {
	case BoolValue:
		return val.Val, nil
	case LongValue:
		return val.Val != 0, nil
	default:
		return false, &TypeError{Expected: "bool", Got: v.Kind()}
	}
}

// AsLong reads v as an integer. Legal only for Long.
func AsLong(v Value) (int64, error) {
	if val, ok := v.(LongValue); ok {
		return val.Val, nil
	}
	return 0, &TypeError{Expected: "long", Got: v.Kind()}
}

// Less compares two values with `<`. Dispatch follows the left tag:
// Nil is never less than anything, booleans order false before true,
// longs compare numerically. Functions are not comparable; the grammar
// cannot produce that case, so it surfaces as an internal error rather
// than a coercion.
func Less(a, b Value) (bool, error) {
	switch left := a.(type) {
	case NilValue:
		return false, nil
	case BoolValue:
		rb, err := AsBool(b)
		if err != nil {
			return false, err
		}
		return !left.Val && rb, nil
	case LongValue:
		rl, err := AsLong(b)
		if err != nil {
			return false, err
		}
		return left.Val < rl, nil
	default:
		return false, &InternalError{Msg: fmt.Sprintf("cannot compare %s values", a.Kind())}
	}
}

// Display returns the canonical string form of a value.
func Display(v Value) string {
	switch val := v.(type) {
	case NilValue:
		return "nil"
	case BoolValue:
		if val.Val {
			return "true"
		}
		return "false"
	case LongValue:
		return strconv.FormatInt(val.Val, 10)
	default:
		return "[function]"
	}
}
