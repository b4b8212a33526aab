// Package infer implements spec §4.1: constraint-based Hindley–Milner-style
// type inference over the untyped AST, unification via
// internal/typesystem, and back-substitution producing a fully-typed
// Program. Grounded on the teacher's two-phase split (a constraint-
// generation walk feeding a separate solver) even though the teacher's
// own checker.go is bidirectional rather than constraint-based; the
// phase separation and "walk the tree, call into typesystem" structure
// is the part we kept.
package infer

import (
	"github.com/sagarreddypatil/language/internal/ast"
	"github.com/sagarreddypatil/language/internal/builtins"
	"github.com/sagarreddypatil/language/internal/typesystem"
)

// Env is an immutable (copy-on-extend) mapping from bound name to type,
// per spec §4.1.
type Env map[ast.Name]typesystem.Type

// seed builds the initial environment from the shared builtin-operator
// table (spec §4.1 "Initial environment").
func seed() Env {
	env := make(Env, len(builtins.Table))
	for name, sig := range builtins.Table {
		env[ast.Name(name)] = typesystem.TFn{Args: sig.Args, Ret: sig.Ret}
	}
	return env
}

// with returns a new Env extended with one binding, leaving the receiver
// untouched (spec §4.2's environment discipline applies equally here).
func (e Env) with(n ast.Name, t typesystem.Type) Env {
	out := make(Env, len(e)+1)
	for k, v := range e {
		out[k] = v
	}
	out[n] = t
	return out
}

// withCons seeds the environment with every data constructor's function
// type: Cons(args...) -> UserDef(owner).
func withCons(env Env, defs []*ast.DataDef) Env {
	for _, d := range defs {
		for _, cname := range d.ConsOrder {
			c := d.Cons[cname]
			env = env.with(cname, typesystem.TFn{
				Args: c.Args,
				Ret:  typesystem.TUserDef{Name: string(d.Name)},
			})
		}
	}
	return env
}
