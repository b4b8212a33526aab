package parser_test

import (
	"testing"

	"github.com/sagarreddypatil/language/internal/ast"
	"github.com/sagarreddypatil/language/internal/parser"
)

func TestParsePrecedenceClimbsCorrectly(t *testing.T) {
	prog, err := parser.New("1 + 2 * 3").Parse()
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	se, ok := prog.Expr.(*ast.SimpExpr)
	if !ok {
		t.Fatalf("expected SimpExpr root, got %T", prog.Expr)
	}
	call, ok := se.Simp.(*ast.FnCallSimp)
	if !ok {
		t.Fatalf("expected outer FnCallSimp, got %T", se.Simp)
	}
	ref, ok := call.Callee.(*ast.RefSimp)
	if !ok || ref.Name != "+" {
		t.Fatalf("expected outer operator +, got %#v", call.Callee)
	}
	// The right operand must itself be the `2 * 3` call, since * binds
	// tighter than + (spec §6's precedence table).
	rhs, ok := call.Args[1].(*ast.FnCallSimp)
	if !ok {
		t.Fatalf("expected right operand to be a nested call, got %T", call.Args[1])
	}
	rhsRef, ok := rhs.Callee.(*ast.RefSimp)
	if !ok || rhsRef.Name != "*" {
		t.Fatalf("expected nested operator *, got %#v", rhs.Callee)
	}
}

func TestParseIfDesugarsToTwoArmBoolMatch(t *testing.T) {
	prog, err := parser.New("if true then 1 else 2").Parse()
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	se := prog.Expr.(*ast.SimpExpr)
	m, ok := se.Simp.(*ast.MatchSimp)
	if !ok {
		t.Fatalf("expected MatchSimp, got %T", se.Simp)
	}
	if len(m.Arms) != 2 {
		t.Fatalf("expected exactly 2 arms, got %d", len(m.Arms))
	}
	truePat, ok := m.Arms[0].Pat.(*ast.BoolPattern)
	if !ok || !truePat.Value {
		t.Fatalf("expected first arm to match true")
	}
	falsePat, ok := m.Arms[1].Pat.(*ast.BoolPattern)
	if !ok || falsePat.Value {
		t.Fatalf("expected second arm to match false")
	}
}

func TestParseMissingThenIsASyntaxError(t *testing.T) {
	if _, err := parser.New("if true 1 else 2").Parse(); err == nil {
		t.Fatalf("expected a syntax error for a missing `then` keyword")
	}
}

func TestParseLetBoundFunctionCarriesItsOwnName(t *testing.T) {
	prog, err := parser.New("let fact = fn(n) = n fact").Parse()
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	bind, ok := prog.Expr.(*ast.BindExpr)
	if !ok {
		t.Fatalf("expected BindExpr, got %T", prog.Expr)
	}
	fd, ok := bind.Rhs.(*ast.FnDefSimp)
	if !ok {
		t.Fatalf("expected FnDefSimp rhs, got %T", bind.Rhs)
	}
	if fd.Fn.Name != "fact" {
		t.Fatalf("expected the function's own Name to be set to the bound name, got %q", fd.Fn.Name)
	}
}

func TestParseDataConstructorPattern(t *testing.T) {
	src := "data Maybe = Some(Int) | None let v = Some(7) match v | Some(x: Int) => x | None => -1"
	prog, err := parser.New(src).Parse()
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(prog.DataDefs) != 1 || prog.DataDefs[0].Name != "Maybe" {
		t.Fatalf("expected one DataDef named Maybe")
	}
	bind := prog.Expr.(*ast.BindExpr)
	inner, ok := bind.Body.(*ast.SimpExpr)
	if !ok {
		t.Fatalf("expected SimpExpr body, got %T", bind.Body)
	}
	m, ok := inner.Simp.(*ast.MatchSimp)
	if !ok {
		t.Fatalf("expected MatchSimp, got %T", inner.Simp)
	}
	dp, ok := m.Arms[0].Pat.(*ast.DataPattern)
	if !ok {
		t.Fatalf("expected DataPattern, got %T", m.Arms[0].Pat)
	}
	if dp.Def == nil || dp.Def.Name != "Maybe" {
		t.Fatalf("expected the pattern's owning DataDef to resolve to Maybe")
	}
}

func TestParseNegativeLiteralFusion(t *testing.T) {
	prog, err := parser.New("-1").Parse()
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	se := prog.Expr.(*ast.SimpExpr)
	lit, ok := se.Simp.(*ast.IntSimp)
	if !ok {
		t.Fatalf("expected IntSimp, got %T", se.Simp)
	}
	if lit.Value != -1 {
		t.Fatalf("expected -1, got %d", lit.Value)
	}
}

func TestParseCurriedCallChain(t *testing.T) {
	prog, err := parser.New("let f = fn(a) = fn(b) = a f(1)(2)").Parse()
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	bind := prog.Expr.(*ast.BindExpr)
	inner := bind.Body.(*ast.SimpExpr)
	outerCall, ok := inner.Simp.(*ast.FnCallSimp)
	if !ok {
		t.Fatalf("expected outer FnCallSimp, got %T", inner.Simp)
	}
	if _, ok := outerCall.Callee.(*ast.FnCallSimp); !ok {
		t.Fatalf("expected the curried callee to itself be a call, got %T", outerCall.Callee)
	}
}
