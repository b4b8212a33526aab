// Package shrink implements C5 (spec §4.4): an until-fixpoint CPS rewrite
// pass performing constant CSE, constant folding, and constant-branch
// resolution. Grounded on the teacher's typesystem.Subst/Apply idiom (a
// finite map plus a recursive walk, internal/typesystem/subst.go in this
// module), generalized here from type variables to CPS names.
package shrink

import "github.com/sagarreddypatil/language/internal/cps"
import "github.com/sagarreddypatil/language/internal/ast"

// Subst is a finite map Name -> Name. Apply follows the chain
// transitively to a fixed point (spec §4.4).
type Subst map[ast.Name]ast.Name

func (s Subst) resolve(n ast.Name) ast.Name {
	seen := map[ast.Name]bool{}
	for {
		r, ok := s[n]
		if !ok || seen[n] {
			return n
		}
		seen[n] = true
		n = r
	}
}

func (s Subst) names(ns []ast.Name) []ast.Name {
	out := make([]ast.Name, len(ns))
	for i, n := range ns {
		out[i] = s.resolve(n)
	}
	return out
}

// Apply walks the CPS tree substituting every referenced name, but never
// a binder (spec §4.4): Const/Prim binding names and CntDef/FunDef
// names/parameter lists are left untouched; only names used as an
// argument, a continuation target, or a Halt's result are resolved.
func Apply(e cps.Expr, s Subst) cps.Expr {
	switch n := e.(type) {
	case nil:
		return nil
	case *cps.Const:
		return &cps.Const{Name: n.Name, Value: n.Value, Body: Apply(n.Body, s)}
	case *cps.Prim:
		return &cps.Prim{Name: n.Name, Op: n.Op, Args: s.names(n.Args), Body: Apply(n.Body, s)}
	case *cps.Cnts:
		cnts := make([]*cps.CntDef, len(n.Cnts))
		for i, c := range n.Cnts {
			cnts[i] = &cps.CntDef{Name: c.Name, Args: c.Args, Body: Apply(c.Body, s)}
		}
		return &cps.Cnts{Cnts: cnts, Body: Apply(n.Body, s)}
	case *cps.Funs:
		funs := make([]*cps.FunDef, len(n.Funs))
		for i, f := range n.Funs {
			funs[i] = &cps.FunDef{Name: f.Name, Ret: f.Ret, Args: f.Args, Body: Apply(f.Body, s)}
		}
		return &cps.Funs{Funs: funs, Body: Apply(n.Body, s)}
	case *cps.AppC:
		return &cps.AppC{Cnt: s.resolve(n.Cnt), Args: s.names(n.Args)}
	case *cps.AppF:
		return &cps.AppF{Fun: s.resolve(n.Fun), Ret: s.resolve(n.Ret), Args: s.names(n.Args)}
	case *cps.If:
		return &cps.If{Op: n.Op, Args: s.names(n.Args), T: s.resolve(n.T), F: s.resolve(n.F)}
	case *cps.Halt:
		return &cps.Halt{Name: s.resolve(n.Name)}
	default:
		return e
	}
}
