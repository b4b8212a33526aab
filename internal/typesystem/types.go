// Package typesystem implements the type algebra shared by inference,
// the interpreter and the CPS lowerer: the six-variant Type sum (spec §3)
// plus substitutions and Robinson unification with an occurs check (spec
// §4.1). It owns no knowledge of the AST — internal/infer drives inference
// by walking the AST and calling into this package, the way the teacher
// splits internal/ast (syntax) from internal/typesystem (types).
package typesystem

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Type is the interface implemented by every type-algebra node.
type Type interface {
	String() string
	Apply(Subst) Type
	FreeTypeVars() []int
}

// TInt, TBool, TUnit are the atomic base types.
type TInt struct{}
type TBool struct{}
type TUnit struct{}

func (TInt) String() string               { return "Int" }
func (TInt) Apply(Subst) Type             { return TInt{} }
func (TInt) FreeTypeVars() []int          { return nil }
func (TBool) String() string              { return "Bool" }
func (TBool) Apply(Subst) Type            { return TBool{} }
func (TBool) FreeTypeVars() []int         { return nil }
func (TUnit) String() string              { return "Unit" }
func (TUnit) Apply(Subst) Type            { return TUnit{} }
func (TUnit) FreeTypeVars() []int         { return nil }

// TFn is a function type: a fixed argument list and a return type.
type TFn struct {
	Args []Type
	Ret  Type
}

func (t TFn) String() string {
	parts := make([]string, len(t.Args))
	for i, a := range t.Args {
		parts[i] = a.String()
	}
	return fmt.Sprintf("(%s) -> %s", strings.Join(parts, ", "), t.Ret.String())
}

func (t TFn) Apply(s Subst) Type {
	args := make([]Type, len(t.Args))
	for i, a := range t.Args {
		args[i] = a.Apply(s)
	}
	return TFn{Args: args, Ret: t.Ret.Apply(s)}
}

func (t TFn) FreeTypeVars() []int {
	var out []int
	for _, a := range t.Args {
		out = append(out, a.FreeTypeVars()...)
	}
	out = append(out, t.Ret.FreeTypeVars()...)
	return out
}

// TUserDef references a data type by name (spec §3's UserDef(Name)).
type TUserDef struct {
	Name string
}

func (t TUserDef) String() string       { return t.Name }
func (t TUserDef) Apply(Subst) Type     { return t }
func (t TUserDef) FreeTypeVars() []int  { return nil }

// TVar is an unresolved type variable, identified by a globally-unique id
// drawn from the process-wide counter (spec §5: "one piece of process-wide
// mutable state ... the fresh type-variable counter").
type TVar struct {
	ID int
}

func (t TVar) String() string      { return fmt.Sprintf("t%d", t.ID) }
func (t TVar) FreeTypeVars() []int { return []int{t.ID} }

func (t TVar) Apply(s Subst) Type {
	if repl, ok := s[t.ID]; ok {
		if rv, isVar := repl.(TVar); isVar && rv.ID == t.ID {
			return t
		}
		return repl
	}
	return t
}

var tvarCounter int64

// NewTVar allocates a fresh type variable, unique within the process.
// Reinitialisation between runs is not required but ResetCounter is
// provided for deterministic test fixtures (spec §5).
func NewTVar() TVar {
	id := atomic.AddInt64(&tvarCounter, 1)
	return TVar{ID: int(id)}
}

// ResetCounter restarts the counter at zero, so a caller that needs
// reproducible TVar ids can start every run from the same id.
func ResetCounter() {
	atomic.StoreInt64(&tvarCounter, 0)
}

// Equal reports structural equality ignoring substitution.
func Equal(a, b Type) bool {
	return a.String() == b.String()
}
