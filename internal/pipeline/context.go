// Package pipeline sequences the compiler's stages over one source text
// (SPEC_FULL §7). Grounded on the teacher's internal/pipeline/pipeline.go
// staged-driver idiom (Pipeline/Processor, continue-on-error so later
// stages' diagnostics aren't swallowed by an earlier failure), generalized
// from the teacher's LSP analysis context to a CompileContext carrying
// this module's own stage outputs (tokens, untyped/typed AST, interpreted
// value, CPS trees).
package pipeline

import (
	"github.com/sagarreddypatil/language/internal/ast"
	"github.com/sagarreddypatil/language/internal/cps"
	"github.com/sagarreddypatil/language/internal/evaluator"
	"github.com/sagarreddypatil/language/internal/token"
)

// CompileContext threads one source file through every compile stage.
// Processors run in order and each may read any prior field; a nil
// field simply means that stage hasn't run (or failed) yet.
type CompileContext struct {
	Source string

	// Trace enables the interpreter's per-call debug trace (SPEC_FULL §4),
	// off by default; set by cmd/mlc's --trace flag.
	Trace bool

	// Tokens is not filled by any stage in this package: Parse lexes the
	// source internally and keeps no token list.
	Tokens []token.Token

	// Untyped is the parser's output, before C2 (spec §4.1).
	Untyped *ast.Program

	// Typed is C2's output: Untyped with every TVar resolved (spec §4.1).
	Typed *ast.Program

	// Value is C3's output (spec §4.2), set only when the interpret stage
	// runs.
	Value evaluator.Value

	// Cps is C4's output (spec §4.3); Shrunk is C5's output applied to it
	// (spec §4.4).
	Cps    cps.Expr
	Shrunk cps.Expr

	// Errs accumulates every stage's error without aborting the run, so a
	// caller sees as much diagnostic information as each stage could
	// produce (spec §5 "Error Handling Design").
	Errs []error
}

// NewCompileContext seeds a context with raw source text.
func NewCompileContext(source string) *CompileContext {
	return &CompileContext{Source: source}
}

// Failed reports whether any stage recorded an error.
func (c *CompileContext) Failed() bool { return len(c.Errs) > 0 }

func (c *CompileContext) fail(err error) {
	if err != nil {
		c.Errs = append(c.Errs, err)
	}
}
