package runtime

import (
	"errors"
	"testing"
)

func TestEnvironmentLookupChainsOutward(t *testing.T) {
	root := NewEnvironment(nil)
	root.Define("a", LongValue{Val: 1})
	child := NewEnvironment(root)
	grandchild := NewEnvironment(child)

	if grandchild.Parent() != child || child.Parent() != root || root.Parent() != nil {
		t.Fatal("environment chain is not parent-linked as constructed")
	}

	v, err := grandchild.Get("a")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if v.(LongValue).Val != 1 {
		t.Fatalf("Get(a) = %v, want 1", v)
	}
}

func TestEnvironmentShadowing(t *testing.T) {
	root := NewEnvironment(nil)
	root.Define("x", LongValue{Val: 1})
	child := NewEnvironment(root)
	child.Define("x", LongValue{Val: 2})

	v, _ := child.Get("x")
	if v.(LongValue).Val != 2 {
		t.Fatalf("child Get(x) = %v, want shadowing binding 2", v)
	}
	v, _ = root.Get("x")
	if v.(LongValue).Val != 1 {
		t.Fatalf("root Get(x) = %v, want untouched binding 1", v)
	}
}

func TestEnvironmentUndefinedVariable(t *testing.T) {
	root := NewEnvironment(nil)
	child := NewEnvironment(root)

	_, err := child.Get("zzz")
	var uv *UndefinedVariable
	if !errors.As(err, &uv) {
		t.Fatalf("Get error = %v, want *UndefinedVariable", err)
	}
	if uv.Name != "zzz" {
		t.Fatalf("undefined variable name = %q, want %q", uv.Name, "zzz")
	}
}

func TestEnvironmentDuplicateDefineLastWriteWins(t *testing.T) {
	env := NewEnvironment(nil)
	env.Define("x", LongValue{Val: 1})
	env.Define("x", LongValue{Val: 2})

	v, _ := env.Get("x")
	if v.(LongValue).Val != 2 {
		t.Fatalf("Get(x) = %v, want last write 2", v)
	}
}

func TestEnvironmentSharedParent(t *testing.T) {
	// Two children of one parent see bindings added to the parent after
	// the children were created; lookup is lazy, not snapshotted.
	parent := NewEnvironment(nil)
	a := NewEnvironment(parent)
	b := NewEnvironment(parent)
	parent.Define("late", BoolValue{Val: true})

	for _, env := range []*Environment{a, b} {
		v, err := env.Get("late")
		if err != nil {
			t.Fatalf("Get returned error: %v", err)
		}
		if !v.(BoolValue).Val {
			t.Fatalf("Get(late) = %v, want true", v)
		}
	}
}
