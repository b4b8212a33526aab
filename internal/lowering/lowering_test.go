package lowering_test

import (
	"testing"

	"github.com/sagarreddypatil/language/internal/cps"
	"github.com/sagarreddypatil/language/internal/goldentest"
	"github.com/sagarreddypatil/language/internal/infer"
	"github.com/sagarreddypatil/language/internal/lowering"
	"github.com/sagarreddypatil/language/internal/parser"
)

func mustLower(t *testing.T, src string) cps.Expr {
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

// every CPS tree lowering produces must eventually reach a Halt, whatever
// Cnts/Funs/If branching sits above it (spec §4.3's "tail is Halt(name)").
func reachesHalt(e cps.Expr) bool {
	switch n := e.(type) {
	case *cps.Const:
		return reachesHalt(n.Body)
	case *cps.Prim:
		return reachesHalt(n.Body)
	case *cps.Cnts:
		if reachesHalt(n.Body) {
			return true
		}
		for _, c := range n.Cnts {
			if reachesHalt(c.Body) {
				return true
			}
		}
		return false
	case *cps.Funs:
		if reachesHalt(n.Body) {
			return true
		}
		for _, f := range n.Funs {
			if reachesHalt(f.Body) {
				return true
			}
		}
		return false
	case *cps.Halt:
		return true
	default:
		return false
	}
}

func TestLowerSpec8ScenariosReachHalt(t *testing.T) {
	for _, sc := range goldentest.Spec8 {
		sc := sc
		t.Run(sc.Name, func(t *testing.T) {
			lowered := mustLower(t, sc.Source)
			if !reachesHalt(lowered) {
				t.Fatalf("lowered tree never reaches a Halt")
			}
		})
	}
}

func TestLowerUnitHaltsImmediately(t *testing.T) {
	lowered := mustLower(t, "()")
	if _, ok := lowered.(*cps.Halt); !ok {
		t.Fatalf("expected Unit to lower straight to a Halt, got %T", lowered)
	}
}

// A `let f = fn(...) = ...` binding lowers its function under a Funs group
// named after the binding itself (spec §4.3's recursion supplement), not
// an anonymous fn$N name, so the function's own self-calls resolve.
func TestLowerNamedRecursiveFunctionUsesBindName(t *testing.T) {
	sc := goldentest.Spec8[2] // "recursion"
	lowered := mustLower(t, sc.Source)
	funs, ok := lowered.(*cps.Funs)
	if !ok {
		t.Fatalf("expected top-level Funs, got %T", lowered)
	}
	if len(funs.Funs) != 1 {
		t.Fatalf("expected exactly one FunDef, got %d", len(funs.Funs))
	}
	if funs.Funs[0].Name != "fact" {
		t.Fatalf("expected FunDef named %q, got %q", "fact", funs.Funs[0].Name)
	}
}
