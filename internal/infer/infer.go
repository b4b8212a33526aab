package infer

import (
	"github.com/sagarreddypatil/language/internal/ast"
	"github.com/sagarreddypatil/language/internal/typesystem"
)

// binding is one pattern-introduced name/type pair.
type binding struct {
	name ast.Name
	ty   typesystem.Type
}

// genPattern computes a pattern's type, the bindings it introduces, and
// any constraints from nested sub-patterns (spec §4.1 "Pattern types").
func genPattern(pat ast.Pattern) (typesystem.Type, []binding, []typesystem.Constraint, error) {
	switch p := pat.(type) {
	case *ast.VarPattern:
		return p.Ty, []binding{{p.Name, p.Ty}}, nil, nil
	case *ast.IntPattern:
		return typesystem.TInt{}, nil, nil, nil
	case *ast.BoolPattern:
		return typesystem.TBool{}, nil, nil, nil
	case *ast.DataPattern:
		cons, ok := p.Def.Cons[p.Ctor]
		if !ok {
			return nil, nil, nil, arityErr(p.Ctor, 0, len(p.Sub), p.At)
		}
		if len(cons.Args) != len(p.Sub) {
			return nil, nil, nil, arityErr(p.Ctor, len(cons.Args), len(p.Sub), p.At)
		}
		var binds []binding
		var cs []typesystem.Constraint
		for i, sub := range p.Sub {
			subTy, subBinds, subCs, err := genPattern(sub)
			if err != nil {
				return nil, nil, nil, err
			}
			binds = append(binds, subBinds...)
			cs = append(cs, subCs...)
			cs = append(cs, typesystem.Constraint{A: subTy, B: cons.Args[i]})
		}
		return typesystem.TUserDef{Name: string(p.Def.Name)}, binds, cs, nil
	default:
		return nil, nil, nil, &TypeError{Msg: "unknown pattern form", At: pat.Pos()}
	}
}

func extend(env Env, binds []binding) Env {
	for _, b := range binds {
		env = env.with(b.name, b.ty)
	}
	return env
}

// genExpr generates a (type, constraints) pair for a binding-sequence
// expression (spec §4.1).
func genExpr(env Env, e ast.Expr) (typesystem.Type, []typesystem.Constraint, error) {
	switch ex := e.(type) {
	case *ast.BindExpr:
		if vp, ok := ex.Pat.(*ast.VarPattern); ok {
			// Recursive binding: rhs is inferred with its own name already
			// bound to the pattern's (fresh) type, so a function rhs may
			// reference its own name (SPEC_FULL §3 recursion supplement).
			envRec := env.with(vp.Name, vp.Ty)
			tRhs, csRhs, err := genSimp(envRec, ex.Rhs)
			if err != nil {
				return nil, nil, err
			}
			tBody, csBody, err := genExpr(envRec, ex.Body)
			if err != nil {
				return nil, nil, err
			}
			cs := append(csRhs, csBody...)
			cs = append(cs, typesystem.Constraint{A: vp.Ty, B: tRhs})
			return tBody, cs, nil
		}

		tRhs, csRhs, err := genSimp(env, ex.Rhs)
		if err != nil {
			return nil, nil, err
		}
		tPat, binds, patCs, err := genPattern(ex.Pat)
		if err != nil {
			return nil, nil, err
		}
		env2 := extend(env, binds)
		tBody, csBody, err := genExpr(env2, ex.Body)
		if err != nil {
			return nil, nil, err
		}
		cs := append(csRhs, patCs...)
		cs = append(cs, csBody...)
		cs = append(cs, typesystem.Constraint{A: tPat, B: tRhs})
		return tBody, cs, nil

	case *ast.SimpExpr:
		return genSimp(env, ex.Simp)

	default:
		return nil, nil, &TypeError{Msg: "unknown expr form", At: e.Pos()}
	}
}

// genSimp generates a (type, constraints) pair for a simple expression
// (spec §4.1).
func genSimp(env Env, s ast.Simp) (typesystem.Type, []typesystem.Constraint, error) {
	switch simp := s.(type) {
	case *ast.IntSimp:
		return typesystem.TInt{}, nil, nil
	case *ast.BoolSimp:
		return typesystem.TBool{}, nil, nil
	case *ast.UnitSimp:
		return typesystem.TUnit{}, nil, nil

	case *ast.RefSimp:
		t, ok := env[simp.Name]
		if !ok {
			return nil, nil, unboundErr(simp.Name, simp.At)
		}
		return t, nil, nil

	case *ast.FnDefSimp:
		f := simp.Fn
		env2 := env
		for _, a := range f.Args {
			env2 = env2.with(a.Name, a.Ty)
		}
		tBody, cs, err := genSimp(env2, f.Body)
		if err != nil {
			return nil, nil, err
		}
		argTypes := make([]typesystem.Type, len(f.Args))
		for i, a := range f.Args {
			argTypes[i] = a.Ty
		}
		cs = append(cs, typesystem.Constraint{A: f.Ret, B: tBody})
		return typesystem.TFn{Args: argTypes, Ret: f.Ret}, cs, nil

	case *ast.FnCallSimp:
		tf, cs, err := genSimp(env, simp.Callee)
		if err != nil {
			return nil, nil, err
		}
		argTypes := make([]typesystem.Type, len(simp.Args))
		for i, a := range simp.Args {
			ti, csi, err := genSimp(env, a)
			if err != nil {
				return nil, nil, err
			}
			argTypes[i] = ti
			cs = append(cs, csi...)
		}
		alpha := typesystem.NewTVar()
		cs = append(cs, typesystem.Constraint{A: tf, B: typesystem.TFn{Args: argTypes, Ret: alpha}})
		return alpha, cs, nil

	case *ast.MatchSimp:
		tScrut, cs, err := genSimp(env, simp.Scrutinee)
		if err != nil {
			return nil, nil, err
		}
		if len(simp.Arms) == 0 {
			return nil, nil, &TypeError{Msg: "match requires at least one arm", At: simp.At}
		}
		var tBody0 typesystem.Type
		for i, arm := range simp.Arms {
			tPat, binds, patCs, err := genPattern(arm.Pat)
			if err != nil {
				return nil, nil, err
			}
			cs = append(cs, patCs...)
			cs = append(cs, typesystem.Constraint{A: tScrut, B: tPat})
			envArm := extend(env, binds)
			tBi, csi, err := genSimp(envArm, arm.Rhs)
			if err != nil {
				return nil, nil, err
			}
			cs = append(cs, csi...)
			if i == 0 {
				tBody0 = tBi
			} else {
				cs = append(cs, typesystem.Constraint{A: tBody0, B: tBi})
			}
		}
		return tBody0, cs, nil

	case *ast.BlockSimp:
		return genExpr(env, simp.Body)

	case *ast.DataSimp:
		sig, ok := env[simp.Ctor]
		if !ok {
			return nil, nil, unboundErr(simp.Ctor, simp.At)
		}
		fn, ok := sig.(typesystem.TFn)
		if !ok || len(fn.Args) != len(simp.Args) {
			want := 0
			if ok {
				want = len(fn.Args)
			}
			return nil, nil, arityErr(simp.Ctor, want, len(simp.Args), simp.At)
		}
		var cs []typesystem.Constraint
		for i, a := range simp.Args {
			ti, csi, err := genSimp(env, a)
			if err != nil {
				return nil, nil, err
			}
			cs = append(cs, csi...)
			cs = append(cs, typesystem.Constraint{A: ti, B: fn.Args[i]})
		}
		return fn.Ret, cs, nil

	default:
		return nil, nil, &TypeError{Msg: "unknown simp form", At: s.Pos()}
	}
}

// Infer is C2's public contract (spec §4.1): given an untyped Program,
// produce a fully-typed Program, or a fatal *TypeError.
func Infer(prog *ast.Program) (*ast.Program, error) {
	env := withCons(seed(), prog.DataDefs)

	if prog.Expr == nil {
		return &ast.Program{DataDefs: prog.DataDefs}, nil
	}

	rootTy, cs, err := genExpr(env, prog.Expr)
	if err != nil {
		return nil, err
	}

	subst, err := typesystem.UnifyAll(cs)
	if err != nil {
		return nil, unifyErr(err, prog.Expr.Pos())
	}

	resolvedRoot := rootTy.Apply(subst)
	if _, stillVar := resolvedRoot.(typesystem.TVar); stillVar {
		return nil, &TypeError{Msg: "unresolved type at program root", At: prog.Expr.Pos()}
	}

	typedExpr := substExpr(prog.Expr, subst)
	return &ast.Program{DataDefs: prog.DataDefs, Expr: typedExpr}, nil
}
