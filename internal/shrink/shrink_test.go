package shrink_test

import (
	"testing"

	"github.com/sagarreddypatil/language/internal/ast"
	"github.com/sagarreddypatil/language/internal/cps"
	"github.com/sagarreddypatil/language/internal/goldentest"
	"github.com/sagarreddypatil/language/internal/infer"
	"github.com/sagarreddypatil/language/internal/lowering"
	"github.com/sagarreddypatil/language/internal/parser"
	"github.com/sagarreddypatil/language/internal/shrink"
)

func lowerScenario(t *testing.T, src string) cps.Expr {
	t.Helper()
	untyped, err := parser.New(src).Parse()
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	typed, err := infer.Infer(untyped)
	if err != nil {
		t.Fatalf("infer: %v", err)
	}
	return lowering.New(typed).Lower()
}

// resolveHalt walks a chain of Const bindings down to the terminating
// Halt, returning the literal it halts with. Only succeeds when the tree
// never branches (no Cnts/Funs/If survive) between root and Halt.
func resolveHalt(e cps.Expr) (cps.LitHigh, bool) {
	known := map[ast.Name]cps.LitHigh{}
	cur := e
	for {
		switch n := cur.(type) {
		case *cps.Const:
			known[n.Name] = n.Value
			cur = n.Body
		case *cps.Halt:
			v, ok := known[n.Name]
			return v, ok
		default:
			return 0, false
		}
	}
}

func countConsts(e cps.Expr, value cps.LitHigh) int {
	switch n := e.(type) {
	case *cps.Const:
		count := countConsts(n.Body, value)
		if n.Value == value {
			count++
		}
		return count
	case *cps.Prim:
		return countConsts(n.Body, value)
	case *cps.Cnts:
		total := countConsts(n.Body, value)
		for _, c := range n.Cnts {
			total += countConsts(c.Body, value)
		}
		return total
	case *cps.Funs:
		total := countConsts(n.Body, value)
		for _, f := range n.Funs {
			total += countConsts(f.Body, value)
		}
		return total
	default:
		return 0
	}
}

func containsIf(e cps.Expr) bool {
	switch n := e.(type) {
	case *cps.Const:
		return containsIf(n.Body)
	case *cps.Prim:
		return containsIf(n.Body)
	case *cps.Cnts:
		if containsIf(n.Body) {
			return true
		}
		for _, c := range n.Cnts {
			if containsIf(c.Body) {
				return true
			}
		}
		return false
	case *cps.Funs:
		if containsIf(n.Body) {
			return true
		}
		for _, f := range n.Funs {
			if containsIf(f.Body) {
				return true
			}
		}
		return false
	case *cps.If:
		return true
	default:
		return false
	}
}

func TestShrinkResolvesPureArithmeticToHaltLiteral(t *testing.T) {
	lowered := lowerScenario(t, goldentest.Spec8[0].Source) // "let x = 1 + 2 * 3 x"
	shrunk := shrink.Run(lowered)
	v, ok := resolveHalt(shrunk)
	if !ok {
		t.Fatalf("expected shrunk tree to resolve to a flat Halt literal")
	}
	if v != goldentest.Spec8[0].ExpectedInt {
		t.Fatalf("expected %d, got %d", goldentest.Spec8[0].ExpectedInt, v)
	}
}

func TestShrinkCommonSubexpressionEliminationAndFold(t *testing.T) {
	sc := goldentest.Spec8[5] // "let a = 2 let b = 2 a + b"
	lowered := lowerScenario(t, sc.Source)
	shrunk := shrink.Run(lowered)

	v, ok := resolveHalt(shrunk)
	if !ok {
		t.Fatalf("expected shrunk tree to resolve to a flat Halt literal")
	}
	if v != sc.ExpectedInt {
		t.Fatalf("expected %d, got %d", sc.ExpectedInt, v)
	}
	if n := countConsts(shrunk, 2); n > 1 {
		t.Fatalf("expected at most one surviving Const 2 after CSE, found %d", n)
	}
}

func TestShrinkIfCollapsesToAppC(t *testing.T) {
	sc := goldentest.Spec8[4] // "if true then 1 else 2"
	lowered := lowerScenario(t, sc.Source)
	shrunk := shrink.Run(lowered)
	if containsIf(shrunk) {
		t.Fatalf("expected the constant-valued If to collapse away, but one survived")
	}
}

func TestShrinkSizeNeverIncreases(t *testing.T) {
	for _, sc := range goldentest.Spec8 {
		sc := sc
		t.Run(sc.Name, func(t *testing.T) {
			lowered := lowerScenario(t, sc.Source)
			shrunk := shrink.Run(lowered)
			if cps.Size(shrunk) > cps.Size(lowered) {
				t.Fatalf("shrinking grew the tree: %d -> %d", cps.Size(lowered), cps.Size(shrunk))
			}
		})
	}
}

func TestShrinkIsIdempotent(t *testing.T) {
	for _, sc := range goldentest.Spec8 {
		sc := sc
		t.Run(sc.Name, func(t *testing.T) {
			lowered := lowerScenario(t, sc.Source)
			once := shrink.Run(lowered)
			twice := shrink.Run(once)
			if cps.Size(twice) != cps.Size(once) {
				t.Fatalf("re-shrinking an already-shrunk tree changed its size: %d -> %d", cps.Size(once), cps.Size(twice))
			}
		})
	}
}
