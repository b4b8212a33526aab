package infer

import (
	"github.com/sagarreddypatil/language/internal/ast"
	"github.com/sagarreddypatil/language/internal/typesystem"
)

// substPattern rebuilds a Pattern with every embedded Type resolved by s
// (spec §4.1 step 3: "Back-substitution"). Producing a new node rather
// than mutating keeps the invariant that a typed Program is a distinct,
// immutable tree from the untyped one it was built from (spec §3
// "Lifecycles").
func substPattern(pat ast.Pattern, s typesystem.Subst) ast.Pattern {
	switch p := pat.(type) {
	case *ast.VarPattern:
		return &ast.VarPattern{Name: p.Name, Ty: p.Ty.Apply(s), At: p.At}
	case *ast.IntPattern:
		return p
	case *ast.BoolPattern:
		return p
	case *ast.DataPattern:
		sub := make([]ast.Pattern, len(p.Sub))
		for i, sp := range p.Sub {
			sub[i] = substPattern(sp, s)
		}
		return &ast.DataPattern{Def: p.Def, Ctor: p.Ctor, Sub: sub, At: p.At}
	default:
		return pat
	}
}

func substFnDef(f *ast.FnDef, s typesystem.Subst) *ast.FnDef {
	args := make([]ast.Param, len(f.Args))
	for i, a := range f.Args {
		args[i] = ast.Param{Name: a.Name, Ty: a.Ty.Apply(s)}
	}
	return &ast.FnDef{
		Name: f.Name,
		Args: args,
		Body: substSimp(f.Body, s),
		Ret:  f.Ret.Apply(s),
		At:   f.At,
	}
}

func substSimp(simp ast.Simp, s typesystem.Subst) ast.Simp {
	switch sm := simp.(type) {
	case *ast.IntSimp, *ast.BoolSimp, *ast.UnitSimp, *ast.RefSimp:
		return sm
	case *ast.FnDefSimp:
		return &ast.FnDefSimp{Fn: substFnDef(sm.Fn, s), At: sm.At}
	case *ast.MatchSimp:
		arms := make([]ast.MatchArm, len(sm.Arms))
		for i, a := range sm.Arms {
			arms[i] = ast.MatchArm{Pat: substPattern(a.Pat, s), Rhs: substSimp(a.Rhs, s)}
		}
		return &ast.MatchSimp{Scrutinee: substSimp(sm.Scrutinee, s), Arms: arms, At: sm.At}
	case *ast.FnCallSimp:
		args := make([]ast.Simp, len(sm.Args))
		for i, a := range sm.Args {
			args[i] = substSimp(a, s)
		}
		return &ast.FnCallSimp{Callee: substSimp(sm.Callee, s), Args: args, At: sm.At}
	case *ast.BlockSimp:
		return &ast.BlockSimp{Body: substExpr(sm.Body, s), At: sm.At}
	case *ast.DataSimp:
		args := make([]ast.Simp, len(sm.Args))
		for i, a := range sm.Args {
			args[i] = substSimp(a, s)
		}
		return &ast.DataSimp{Ctor: sm.Ctor, Args: args, At: sm.At}
	default:
		return simp
	}
}

func substExpr(e ast.Expr, s typesystem.Subst) ast.Expr {
	switch ex := e.(type) {
	case *ast.BindExpr:
		return &ast.BindExpr{
			Pat:  substPattern(ex.Pat, s),
			Rhs:  substSimp(ex.Rhs, s),
			Body: substExpr(ex.Body, s),
			At:   ex.At,
		}
	case *ast.SimpExpr:
		return &ast.SimpExpr{Simp: substSimp(ex.Simp, s)}
	default:
		return e
	}
}
