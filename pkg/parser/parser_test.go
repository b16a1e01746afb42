package parser

import (
	"testing"

	"github.com/yhirose/fiblang/pkg/ast"
)

func parseOne(t *testing.T, source string) ast.Node {
	t.Helper()
	program, err := Parse(source)
	if err != nil {
		t.Fatalf("Parse(%q) returned error: %v", source, err)
	}
	if len(program.Body) != 1 {
		t.Fatalf("Parse(%q) produced %d statements, want 1", source, len(program.Body))
	}
	return program.Body[0]
}

func TestParseEmptyProgram(t *testing.T) {
	program, err := Parse("  \n\t ")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if len(program.Body) != 0 {
		t.Fatalf("empty program has %d statements, want 0", len(program.Body))
	}
}

func TestParseNumberLiteral(t *testing.T) {
	node := parseOne(t, "42")
	lit, ok := node.(*ast.NumberLiteral)
	if !ok {
		t.Fatalf("node = %T, want *ast.NumberLiteral", node)
	}
	if lit.Text != "42" {
		t.Fatalf("literal text = %q, want %q", lit.Text, "42")
	}
}

func TestParseDefinition(t *testing.T) {
	node := parseOne(t, "def fib(x) x < 2 ? 1 : fib(x - 2) + fib(x - 1)")
	def, ok := node.(*ast.Definition)
	if !ok {
		t.Fatalf("node = %T, want *ast.Definition", node)
	}
	if def.Name != "fib" || def.Param != "x" {
		t.Fatalf("definition = %s(%s), want fib(x)", def.Name, def.Param)
	}
	if _, ok := def.Body.(*ast.Ternary); !ok {
		t.Fatalf("definition body = %T, want *ast.Ternary", def.Body)
	}
}

func TestParseTernary(t *testing.T) {
	node := parseOne(t, "x < 2 ? 1 : 0")
	tern, ok := node.(*ast.Ternary)
	if !ok {
		t.Fatalf("node = %T, want *ast.Ternary", node)
	}
	if _, ok := tern.Cond.(*ast.Condition); !ok {
		t.Fatalf("ternary condition = %T, want *ast.Condition", tern.Cond)
	}
}

// Rules with no optional suffix must collapse to their operand instead
// of wrapping it.
func TestParseDegenerateSuffixes(t *testing.T) {
	if node := parseOne(t, "x"); node.NodeType() != ast.NodeIdentifier {
		t.Fatalf("bare identifier parsed as %s, want %s", node.NodeType(), ast.NodeIdentifier)
	}
	if node := parseOne(t, "(7)"); node.NodeType() != ast.NodeNumberLiteral {
		t.Fatalf("parenthesized number parsed as %s, want %s", node.NodeType(), ast.NodeNumberLiteral)
	}
	if node := parseOne(t, "1 < 2"); node.NodeType() != ast.NodeCondition {
		t.Fatalf("comparison parsed as %s, want %s", node.NodeType(), ast.NodeCondition)
	}
	if node := parseOne(t, "f(1)"); node.NodeType() != ast.NodeCall {
		t.Fatalf("call parsed as %s, want %s", node.NodeType(), ast.NodeCall)
	}
}

func TestParseInfixChain(t *testing.T) {
	node := parseOne(t, "10 - 2 - 3")
	infix, ok := node.(*ast.Infix)
	if !ok {
		t.Fatalf("node = %T, want *ast.Infix", node)
	}
	if len(infix.Rest) != 2 {
		t.Fatalf("infix chain has %d terms after the first, want 2", len(infix.Rest))
	}
	if infix.Rest[0].Op != "-" || infix.Rest[1].Op != "-" {
		t.Fatalf("infix operators = %q %q, want - -", infix.Rest[0].Op, infix.Rest[1].Op)
	}
}

func TestParseForLoop(t *testing.T) {
	node := parseOne(t, "for n from 1 to 10 puts(n)")
	loop, ok := node.(*ast.ForLoop)
	if !ok {
		t.Fatalf("node = %T, want *ast.ForLoop", node)
	}
	if loop.Var != "n" {
		t.Fatalf("loop variable = %q, want %q", loop.Var, "n")
	}
	from, ok := loop.From.(*ast.NumberLiteral)
	if !ok || from.Text != "1" {
		t.Fatalf("loop from = %#v, want number literal 1", loop.From)
	}
	if _, ok := loop.Body.(*ast.Call); !ok {
		t.Fatalf("loop body = %T, want *ast.Call", loop.Body)
	}
}

func TestParseMultipleStatements(t *testing.T) {
	program, err := Parse("def f(x) x\nf(1)\nf(2)")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if len(program.Body) != 3 {
		t.Fatalf("program has %d statements, want 3", len(program.Body))
	}
}

func TestParseKeywordAsIdentifierFails(t *testing.T) {
	_, err := Parse("def for(x) x")
	pe, ok := err.(*ParseError)
	if !ok {
		t.Fatalf("Parse error = %v, want *ParseError", err)
	}
	if pe.Line != 1 || pe.Col != 5 {
		t.Fatalf("parse error at %d:%d, want 1:5", pe.Line, pe.Col)
	}
}

func TestParseErrorPosition(t *testing.T) {
	_, err := Parse("1 +\n+ 2")
	pe, ok := err.(*ParseError)
	if !ok {
		t.Fatalf("Parse error = %v, want *ParseError", err)
	}
	if pe.Line != 2 || pe.Col != 1 {
		t.Fatalf("parse error at %d:%d, want 2:1", pe.Line, pe.Col)
	}
}

func TestParseUnterminatedCall(t *testing.T) {
	_, err := Parse("f(1")
	if _, ok := err.(*ParseError); !ok {
		t.Fatalf("Parse error = %v, want *ParseError", err)
	}
}
