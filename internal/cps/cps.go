// Package cps defines the continuation-passing-style IR of spec §3
// ("CPS IR"): a first-order tree in which every non-tail operation binds
// a name and every control transfer is an explicit, tail-only jump to a
// continuation or function. Grounded on original_source/src/cps.rs for
// node shape, and on the teacher's tag-constant-enum idiom for marking
// variants (internal/evaluator/object.go's ObjectType), adapted here to
// a closed, sealed interface instead of a string tag since CPS nodes are
// never introspected by external callers the way runtime Values are.
package cps

import "github.com/sagarreddypatil/language/internal/ast"

// LitHigh is the literal type CPS is generic over (spec §3); this
// lowering only ever produces integer literals (booleans are lowered to
// 0/1, spec §4.3).
type LitHigh = int64

// Expr is the sum type of CPS nodes.
type Expr interface {
	cpsNode()
}

// Const binds Name to a literal value.
type Const struct {
	Name  ast.Name
	Value LitHigh
	Body  Expr
}

// Prim binds Name to the result of a primitive operator applied to named
// arguments (spec §6's primitive set: the operators plus id/data/desc/field).
type Prim struct {
	Name ast.Name
	Op   string
	Args []ast.Name
	Body Expr
}

// Cnts introduces one or more mutually-visible continuations.
type Cnts struct {
	Cnts []*CntDef
	Body Expr
}

// Funs introduces one or more mutually-recursive functions.
type Funs struct {
	Funs []*FunDef
	Body Expr
}

// AppC tail-applies a continuation.
type AppC struct {
	Cnt  ast.Name
	Args []ast.Name
}

// AppF tail-applies a function, naming the continuation that receives its
// result.
type AppF struct {
	Fun  ast.Name
	Ret  ast.Name
	Args []ast.Name
}

// If evaluates op(args) and jumps to T or F.
type If struct {
	Op   string
	Args []ast.Name
	T, F ast.Name
}

// Halt terminates the program, returning the named value.
type Halt struct {
	Name ast.Name
}

func (*Const) cpsNode() {}
func (*Prim) cpsNode()  {}
func (*Cnts) cpsNode()  {}
func (*Funs) cpsNode()  {}
func (*AppC) cpsNode()  {}
func (*AppF) cpsNode()  {}
func (*If) cpsNode()    {}
func (*Halt) cpsNode()  {}

// CntDef is a named continuation with a parameter list.
type CntDef struct {
	Name ast.Name
	Args []ast.Name
	Body Expr
}

// FunDef is a named function; Ret is the name under which its body
// refers to its caller's return continuation (spec §3).
type FunDef struct {
	Name ast.Name
	Ret  ast.Name
	Args []ast.Name
	Body Expr
}
