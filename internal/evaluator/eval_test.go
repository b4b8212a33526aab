package evaluator_test

import (
	"io"
	"os"
	"strings"
	"testing"

	"github.com/sagarreddypatil/language/internal/evaluator"
	"github.com/sagarreddypatil/language/internal/goldentest"
	"github.com/sagarreddypatil/language/internal/infer"
	"github.com/sagarreddypatil/language/internal/parser"
)

func TestInterpretSpec8Scenarios(t *testing.T) {
	for _, sc := range goldentest.Spec8 {
		sc := sc
		t.Run(sc.Name, func(t *testing.T) {
			untyped, err := parser.New(sc.Source).Parse()
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			typed, err := infer.Infer(untyped)
			if err != nil {
				t.Fatalf("infer: %v", err)
			}
			val, err := evaluator.New().Run(typed)
			if err != nil {
				t.Fatalf("interpret: %v", err)
			}
			switch sc.ExpectedKind {
			case "int":
				iv, ok := val.(evaluator.IntValue)
				if !ok {
					t.Fatalf("expected IntValue, got %T (%s)", val, val.Inspect())
				}
				if iv.Value != sc.ExpectedInt {
					t.Fatalf("expected %d, got %d", sc.ExpectedInt, iv.Value)
				}
			case "bool":
				bv, ok := val.(evaluator.BoolValue)
				if !ok {
					t.Fatalf("expected BoolValue, got %T (%s)", val, val.Inspect())
				}
				if bv.Value != sc.ExpectedBool {
					t.Fatalf("expected %v, got %v", sc.ExpectedBool, bv.Value)
				}
			default:
				t.Fatalf("unknown expected kind %q", sc.ExpectedKind)
			}
		})
	}
}

func TestInterpretRecursiveSelfReference(t *testing.T) {
	src := "let fact = fn(n) = match n | 0 => 1 | _: Int => n * fact(n - 1) fact(6)"
	untyped, err := parser.New(src).Parse()
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	typed, err := infer.Infer(untyped)
	if err != nil {
		t.Fatalf("infer: %v", err)
	}
	val, err := evaluator.New().Run(typed)
	if err != nil {
		t.Fatalf("interpret: %v", err)
	}
	iv, ok := val.(evaluator.IntValue)
	if !ok {
		t.Fatalf("expected IntValue, got %T", val)
	}
	if iv.Value != 720 {
		t.Fatalf("expected 720, got %d", iv.Value)
	}
}

// When Trace is set, every FnCall prints the callee and its argument
// values to stderr before evaluating it (SPEC_FULL §4); with Trace unset,
// nothing is printed.
func TestInterpretTraceWritesCallsToStderr(t *testing.T) {
	src := "let f = fn(a, b) = a + b f(3, 4)"
	untyped, err := parser.New(src).Parse()
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	typed, err := infer.Infer(untyped)
	if err != nil {
		t.Fatalf("infer: %v", err)
	}

	captureStderr := func(trace bool) string {
		old := os.Stderr
		r, w, err := os.Pipe()
		if err != nil {
			t.Fatalf("pipe: %v", err)
		}
		os.Stderr = w
		defer func() { os.Stderr = old }()

		it := &evaluator.Interpreter{Trace: trace}
		if _, err := it.Run(typed); err != nil {
			t.Fatalf("interpret: %v", err)
		}
		w.Close()
		out, _ := io.ReadAll(r)
		return string(out)
	}

	if out := captureStderr(true); !strings.Contains(out, "call") {
		t.Fatalf("expected a trace line on stderr with Trace=true, got %q", out)
	}
	if out := captureStderr(false); out != "" {
		t.Fatalf("expected no stderr output with Trace=false, got %q", out)
	}
}

func TestInterpretUnitValue(t *testing.T) {
	untyped, err := parser.New("()").Parse()
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	typed, err := infer.Infer(untyped)
	if err != nil {
		t.Fatalf("infer: %v", err)
	}
	val, err := evaluator.New().Run(typed)
	if err != nil {
		t.Fatalf("interpret: %v", err)
	}
	if val.Type() != evaluator.UNIT_VAL {
		t.Fatalf("expected UNIT_VAL, got %s", val.Type())
	}
}
