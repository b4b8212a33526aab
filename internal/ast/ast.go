// Package ast defines the shared data model of spec §3: Name, the Type-
// bearing Pattern/Expr/Simp sum types, DataDef and Program. Nodes are
// immutable once produced (spec §3 "Lifecycles"); a typed Program is the
// same tree with every typesystem.TVar replaced by its substitution image.
//
// Grounded on the teacher's internal/ast/ast_core.go: a small Node
// interface plus one struct per variant, dispatched by callers via a Go
// type switch (the teacher additionally threads a Visitor; SPEC_FULL's
// tree is small enough that every consumer (infer/evaluator/lowering)
// just switches on the concrete type, like internal/typesystem/unify.go
// does for Type).
package ast

import (
	"github.com/sagarreddypatil/language/internal/token"
	"github.com/sagarreddypatil/language/internal/typesystem"
)

// Name is an interned identifier: two Names are equal iff their spellings
// match (spec §3). A plain string already satisfies Go's equality/hashing
// contract for that rule, so no separate intern table is required (spec §9
// "Name interning").
type Name string

// Cons is one constructor of a DataDef.
type Cons struct {
	Args []typesystem.Type
}

// DataDef is a named algebraic data type (spec §3). ConsOrder preserves
// declaration order so CPS lowering can assign each constructor a stable
// numeric tag (its position), since Go map iteration order is undefined.
type DataDef struct {
	Name     Name
	ConsOrder []Name
	Cons      map[Name]Cons
}

// TagOf returns the numeric discriminator of a constructor, its position
// in ConsOrder (spec §4.3: "its position in the DataDef's constructor
// map").
func (d *DataDef) TagOf(ctor Name) (int, bool) {
	for i, n := range d.ConsOrder {
		if n == ctor {
			return i, true
		}
	}
	return 0, false
}

// Pattern is the sum type of spec §3: Var, Int, Bool, Data.
type Pattern interface {
	patternNode()
	Pos() token.Pos
	// Type returns the pattern's derivable type, per spec §3.
	Type() typesystem.Type
}

type VarPattern struct {
	Name Name
	Ty   typesystem.Type
	At   token.Pos
}

func (p *VarPattern) patternNode()         {}
func (p *VarPattern) Pos() token.Pos       { return p.At }
func (p *VarPattern) Type() typesystem.Type { return p.Ty }

type IntPattern struct {
	Value int64
	At    token.Pos
}

func (p *IntPattern) patternNode()         {}
func (p *IntPattern) Pos() token.Pos       { return p.At }
func (p *IntPattern) Type() typesystem.Type { return typesystem.TInt{} }

type BoolPattern struct {
	Value bool
	At    token.Pos
}

func (p *BoolPattern) patternNode()         {}
func (p *BoolPattern) Pos() token.Pos       { return p.At }
func (p *BoolPattern) Type() typesystem.Type { return typesystem.TBool{} }

type DataPattern struct {
	Def  *DataDef
	Ctor Name
	Sub  []Pattern
	At   token.Pos
}

func (p *DataPattern) patternNode()   {}
func (p *DataPattern) Pos() token.Pos { return p.At }
func (p *DataPattern) Type() typesystem.Type {
	return typesystem.TUserDef{Name: string(p.Def.Name)}
}

// FnDef is a function literal's signature and body.
type FnDef struct {
	Name Name // empty for anonymous function literals
	Args []Param
	Body Simp
	Ret  typesystem.Type
	At   token.Pos
}

type Param struct {
	Name Name
	Ty   typesystem.Type
}

// Simp is the sum type of simple expressions (spec §3).
type Simp interface {
	simpNode()
	Pos() token.Pos
}

type FnDefSimp struct {
	Fn *FnDef
	At token.Pos
}

func (s *FnDefSimp) simpNode()     {}
func (s *FnDefSimp) Pos() token.Pos { return s.At }

type MatchArm struct {
	Pat Pattern
	Rhs Simp
}

type MatchSimp struct {
	Scrutinee Simp
	Arms      []MatchArm
	At        token.Pos
}

func (s *MatchSimp) simpNode()     {}
func (s *MatchSimp) Pos() token.Pos { return s.At }

type FnCallSimp struct {
	Callee Simp
	Args   []Simp
	At     token.Pos
}

func (s *FnCallSimp) simpNode()     {}
func (s *FnCallSimp) Pos() token.Pos { return s.At }

type BlockSimp struct {
	Body Expr
	At   token.Pos
}

func (s *BlockSimp) simpNode()     {}
func (s *BlockSimp) Pos() token.Pos { return s.At }

type RefSimp struct {
	Name Name
	At   token.Pos
}

func (s *RefSimp) simpNode()     {}
func (s *RefSimp) Pos() token.Pos { return s.At }

type IntSimp struct {
	Value int64
	At    token.Pos
}

func (s *IntSimp) simpNode()     {}
func (s *IntSimp) Pos() token.Pos { return s.At }

type BoolSimp struct {
	Value bool
	At    token.Pos
}

func (s *BoolSimp) simpNode()     {}
func (s *BoolSimp) Pos() token.Pos { return s.At }

type UnitSimp struct {
	At token.Pos
}

func (s *UnitSimp) simpNode()     {}
func (s *UnitSimp) Pos() token.Pos { return s.At }

type DataSimp struct {
	Ctor Name
	Args []Simp
	At   token.Pos
}

func (s *DataSimp) simpNode()     {}
func (s *DataSimp) Pos() token.Pos { return s.At }

// Expr is the top-level binding-sequence sum type (spec §3).
type Expr interface {
	exprNode()
	Pos() token.Pos
}

type BindExpr struct {
	Pat  Pattern
	Rhs  Simp
	Body Expr
	At   token.Pos
}

func (e *BindExpr) exprNode()     {}
func (e *BindExpr) Pos() token.Pos { return e.At }

type SimpExpr struct {
	Simp Simp
}

func (e *SimpExpr) exprNode()     {}
func (e *SimpExpr) Pos() token.Pos { return e.Simp.Pos() }

// Program is the root: a sequence of data definitions plus an optional
// terminating expression (spec §3).
type Program struct {
	DataDefs []*DataDef
	Expr     Expr // nil if the program has no terminating expression
}

// LookupCons finds the DataDef owning a constructor name, failing if none
// or more than one data type declares it (spec §3: "Constructors of
// distinct data types must not collide in name").
func (p *Program) LookupCons(ctor Name) (*DataDef, bool) {
	var found *DataDef
	for _, d := range p.DataDefs {
		if _, ok := d.Cons[ctor]; ok {
			if found != nil {
				return nil, false
			}
			found = d
		}
	}
	return found, found != nil
}
