package runtime

// Environment provides lexical scoping for FibLang runtime values.
// Environments form a parent-linked chain shared by pointer: every call
// and every loop iteration creates a fresh child, while closures keep
// their defining ancestor reachable for as long as they live.
type Environment struct {
	values map[string]Value
	parent *Environment
}

// NewEnvironment creates a new environment, optionally nested under a parent.
func NewEnvironment(parent *Environment) *Environment {
	return &Environment{
		values: make(map[string]Value),
		parent: parent,
	}
}

// Parent exposes the lexical parent (nil when global).
func (e *Environment) Parent() *Environment {
	return e.parent
}

// Define inserts a binding in the current scope only; ancestor bindings
// of the same name are shadowed, never overwritten. The language is
// define-once per scope, so duplicate names cannot arise from a parse;
// if Define is called twice with the same name anyway, the last write
// wins.
func (e *Environment) Define(name string, value Value) {
	e.values[name] = value
}

// Get retrieves a binding, searching outward through the scope chain.
// It never mutates the chain.
func (e *Environment) Get(name string) (Value, error) {
	if v, ok := e.values[name]; ok {
		return v, nil
	}
	if e.parent != nil {
		return e.parent.Get(name)
	}
	return nil, &UndefinedVariable{Name: name}
}
