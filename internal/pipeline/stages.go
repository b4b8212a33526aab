package pipeline

import (
	"fmt"

	"github.com/sagarreddypatil/language/internal/evaluator"
	"github.com/sagarreddypatil/language/internal/infer"
	"github.com/sagarreddypatil/language/internal/lowering"
	"github.com/sagarreddypatil/language/internal/parser"
	"github.com/sagarreddypatil/language/internal/shrink"
)

// Parse produces the untyped AST from source text.
var Parse = NewProcessor("parse", func(ctx *CompileContext) *CompileContext {
	prog, err := parser.New(ctx.Source).Parse()
	if err != nil {
		ctx.fail(err)
		return ctx
	}
	ctx.Untyped = prog
	return ctx
})

// Infer runs C2 over the untyped AST.
var Infer = NewProcessor("infer", func(ctx *CompileContext) *CompileContext {
	if ctx.Untyped == nil {
		ctx.fail(fmt.Errorf("infer: no parsed program"))
		return ctx
	}
	typed, err := infer.Infer(ctx.Untyped)
	if err != nil {
		ctx.fail(err)
		return ctx
	}
	ctx.Typed = typed
	return ctx
})

// Interpret runs C3 (the tree-walking oracle) over the typed AST.
var Interpret = NewProcessor("interpret", func(ctx *CompileContext) *CompileContext {
	if ctx.Typed == nil {
		ctx.fail(fmt.Errorf("interpret: no typed program"))
		return ctx
	}
	val, err := (&evaluator.Interpreter{Trace: ctx.Trace}).Run(ctx.Typed)
	if err != nil {
		ctx.fail(err)
		return ctx
	}
	ctx.Value = val
	return ctx
})

// Lower runs C4, producing an un-shrunken CPS tree.
var Lower = NewProcessor("lower", func(ctx *CompileContext) *CompileContext {
	if ctx.Typed == nil {
		ctx.fail(fmt.Errorf("lower: no typed program"))
		return ctx
	}
	ctx.Cps = lowering.New(ctx.Typed).Lower()
	return ctx
})

// Shrink runs C5 to a fixed point over the lowered CPS tree.
var Shrink = NewProcessor("shrink", func(ctx *CompileContext) *CompileContext {
	if ctx.Cps == nil {
		ctx.fail(fmt.Errorf("shrink: no lowered CPS tree"))
		return ctx
	}
	ctx.Shrunk = shrink.Run(ctx.Cps)
	return ctx
})

// Full runs every stage in SPEC_FULL §7's order: parse, infer, then
// interpret and lower+shrink both off the same typed tree.
func Full() *Pipeline {
	return New(Parse, Infer, Interpret, Lower, Shrink)
}
