package evaluator

import "github.com/sagarreddypatil/language/internal/ast"

type nameSet map[ast.Name]bool

func (s nameSet) add(n ast.Name)        { s[n] = true }
func (s nameSet) clone() nameSet {
	out := make(nameSet, len(s))
	for k := range s {
		out[k] = true
	}
	return out
}

// freeVarsSimp computes the free names of a Simp under a set of names
// already bound by an enclosing scope — used when constructing a closure
// to "capture only those [variables]" (spec §4.2 / §9 "box-with-hole").
func freeVarsSimp(s ast.Simp, bound nameSet, out nameSet) {
	switch simp := s.(type) {
	case *ast.RefSimp:
		if !bound[simp.Name] {
			out.add(simp.Name)
		}
	case *ast.IntSimp, *ast.BoolSimp, *ast.UnitSimp:
		// no references
	case *ast.FnDefSimp:
		inner := bound.clone()
		for _, a := range simp.Fn.Args {
			inner.add(a.Name)
		}
		if simp.Fn.Name != "" {
			inner.add(simp.Fn.Name)
		}
		freeVarsSimp(simp.Fn.Body, inner, out)
	case *ast.MatchSimp:
		freeVarsSimp(simp.Scrutinee, bound, out)
		for _, arm := range simp.Arms {
			inner := bound.clone()
			for _, n := range bindNames(arm.Pat) {
				inner.add(n)
			}
			freeVarsSimp(arm.Rhs, inner, out)
		}
	case *ast.FnCallSimp:
		freeVarsSimp(simp.Callee, bound, out)
		for _, a := range simp.Args {
			freeVarsSimp(a, bound, out)
		}
	case *ast.BlockSimp:
		freeVarsExpr(simp.Body, bound, out)
	case *ast.DataSimp:
		for _, a := range simp.Args {
			freeVarsSimp(a, bound, out)
		}
	}
}

func freeVarsExpr(e ast.Expr, bound nameSet, out nameSet) {
	switch ex := e.(type) {
	case *ast.BindExpr:
		inner := bound.clone()
		for _, n := range bindNames(ex.Pat) {
			inner.add(n)
		}
		// rhs is evaluated under inner too: a Bind's pattern name may be
		// referenced recursively from its own right-hand side.
		freeVarsSimp(ex.Rhs, inner, out)
		freeVarsExpr(ex.Body, inner, out)
	case *ast.SimpExpr:
		freeVarsSimp(ex.Simp, bound, out)
	}
}
