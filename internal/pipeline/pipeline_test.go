package pipeline_test

import (
	"io"
	"os"
	"strings"
	"testing"

	"github.com/sagarreddypatil/language/internal/evaluator"
	"github.com/sagarreddypatil/language/internal/goldentest"
	"github.com/sagarreddypatil/language/internal/pipeline"
)

func TestFullPipelineAgreesWithGoldenScenarios(t *testing.T) {
	for _, sc := range goldentest.Spec8 {
		sc := sc
		t.Run(sc.Name, func(t *testing.T) {
			ctx := pipeline.Full().Run(pipeline.NewCompileContext(sc.Source))
			if ctx.Failed() {
				t.Fatalf("pipeline failed: %v", ctx.Errs)
			}
			if ctx.Untyped == nil || ctx.Typed == nil || ctx.Cps == nil || ctx.Shrunk == nil {
				t.Fatalf("expected every stage to have populated its field")
			}
			switch sc.ExpectedKind {
			case "int":
				iv, ok := ctx.Value.(evaluator.IntValue)
				if !ok || iv.Value != sc.ExpectedInt {
					t.Fatalf("expected IntValue %d, got %#v", sc.ExpectedInt, ctx.Value)
				}
			case "bool":
				bv, ok := ctx.Value.(evaluator.BoolValue)
				if !ok || bv.Value != sc.ExpectedBool {
					t.Fatalf("expected BoolValue %v, got %#v", sc.ExpectedBool, ctx.Value)
				}
			}
		})
	}
}

func TestPipelineRecordsFailureAndLeavesTypedNil(t *testing.T) {
	ctx := pipeline.Full().Run(pipeline.NewCompileContext("1 + true"))
	if !ctx.Failed() {
		t.Fatalf("expected a type error to fail the pipeline")
	}
	if ctx.Untyped == nil {
		t.Fatalf("expected parsing to have still succeeded")
	}
	if ctx.Typed != nil {
		t.Fatalf("expected inference to have left Typed nil after failing")
	}
}

// CompileContext.Trace reaches the interpret stage's evaluator.Interpreter
// unchanged, so cmd/mlc's --trace flag has something real to flip.
func TestCompileContextTraceReachesInterpreter(t *testing.T) {
	old := os.Stderr
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	os.Stderr = w
	defer func() { os.Stderr = old }()

	ctx := pipeline.NewCompileContext("let f = fn(a, b) = a + b f(3, 4)")
	ctx.Trace = true
	ctx = pipeline.New(pipeline.Parse, pipeline.Infer, pipeline.Interpret).Run(ctx)
	if ctx.Failed() {
		t.Fatalf("pipeline failed: %v", ctx.Errs)
	}
	w.Close()
	out, _ := io.ReadAll(r)
	if !strings.Contains(string(out), "call") {
		t.Fatalf("expected ctx.Trace=true to produce a trace line, got %q", string(out))
	}
}

func TestRunModeSubPipelineSkipsLowering(t *testing.T) {
	run := pipeline.New(pipeline.Parse, pipeline.Infer, pipeline.Interpret)
	ctx := run.Run(pipeline.NewCompileContext(goldentest.Spec8[0].Source))
	if ctx.Failed() {
		t.Fatalf("pipeline failed: %v", ctx.Errs)
	}
	if ctx.Cps != nil {
		t.Fatalf("expected Cps to remain nil when Lower/Shrink are not in the pipeline")
	}
}
