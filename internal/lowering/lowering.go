// Package lowering implements C4 (spec §4.3): a higher-order, one-pass
// Danvy-style CPS transform from the typed AST into internal/cps's IR.
// Grounded on original_source/src/ast_to_cps.rs for the transform's shape
// (per-syntactic-form rules taking a context) and on the teacher's
// dispatch-by-type-switch style (internal/evaluator/evaluator.go).
package lowering

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/sagarreddypatil/language/internal/ast"
	"github.com/sagarreddypatil/language/internal/builtins"
	"github.com/sagarreddypatil/language/internal/cps"
)

// Ctx is the higher-order context of spec §4.3: a consumer parameterised
// over the name that will carry a computed value, producing the
// surrounding CPS expression.
type Ctx func(name ast.Name) cps.Expr

// VecCtx is the vector-context variant (spec §4.3): it folds over an
// argument list, preserving left-to-right evaluation order, and receives
// the full list of result names at once.
type VecCtx func(names []ast.Name) cps.Expr

// haltName is the sentinel continuation a match's outermost failure path
// jumps to (spec §4.3, §8: "Every name appearing free in a produced
// CpsExpr is either a built-in operator symbol or 'halt'"). It is never
// given a CntDef binding; a well-typed, exhaustively-matched program never
// reaches it.
const haltName ast.Name = "halt"

// Lowerer holds the per-run fresh-name counters (spec §5: "per-lowering-
// instance, not process-wide") and the program's data definitions, needed
// to resolve constructor tags.
type Lowerer struct {
	prog     *ast.Program
	counters map[string]int

	// RunID stamps this lowering run for diagnostic correlation only
	// (SPEC_FULL §1's domain-stack wiring of google/uuid) — never
	// consulted by the transform itself.
	RunID string
}

// New creates a Lowerer for one program. Each instance's fresh names are
// unique only within itself (spec §5).
func New(prog *ast.Program) *Lowerer {
	return &Lowerer{
		prog:     prog,
		counters: make(map[string]int),
		RunID:    uuid.New().String(),
	}
}

// fresh allocates the next "prefix$N" name for prefix (spec §4.3).
func (l *Lowerer) fresh(prefix string) ast.Name {
	n := l.counters[prefix]
	l.counters[prefix] = n + 1
	return ast.Name(fmt.Sprintf("%s$%d", prefix, n))
}

// Lower is C4's public contract: a typed Program in, a CpsExpr whose tail
// is Halt(name) out (spec §4.3).
func (l *Lowerer) Lower() cps.Expr {
	if l.prog.Expr == nil {
		return &cps.Halt{Name: haltName}
	}
	return l.lowerExpr(l.prog.Expr, func(name ast.Name) cps.Expr {
		return &cps.Halt{Name: name}
	})
}

func paramNames(args []ast.Param) []ast.Name {
	out := make([]ast.Name, len(args))
	for i, a := range args {
		out[i] = a.Name
	}
	return out
}

// lowerExpr lowers a binding-sequence expression under context ctx (spec
// §4.3's "Block(e): recurse" generalizes to every Expr position).
func (l *Lowerer) lowerExpr(e ast.Expr, ctx Ctx) cps.Expr {
	switch ex := e.(type) {
	case *ast.BindExpr:
		// A named function bound directly by a simple `let f = fn ... `
		// gets the bind's own name as its CPS binding, so the function's
		// own Ref(f) self-calls resolve against the enclosing Funs group
		// without an extra identity alias (spec §4.3's "anon" name is
		// free to equal the let name; the observable halted value is
		// unaffected either way, per spec §9's design note on context
		// realisation).
		if vp, isVar := ex.Pat.(*ast.VarPattern); isVar {
			if fd, isFn := ex.Rhs.(*ast.FnDefSimp); isFn {
				return l.lowerNamedFn(vp.Name, fd.Fn, func() cps.Expr {
					return l.lowerExpr(ex.Body, ctx)
				})
			}
		}
		return l.lowerSimp(ex.Rhs, func(rhsName ast.Name) cps.Expr {
			return l.lowerPattern(ex.Pat, rhsName, l.lowerExpr(ex.Body, ctx), haltName)
		})

	case *ast.SimpExpr:
		return l.lowerSimp(ex.Simp, ctx)

	default:
		return &cps.Halt{Name: haltName}
	}
}

// lowerNamedFn lowers a function bound to a specific CPS name (spec
// §4.3's FnDef rule, specialised for the named/recursive case).
func (l *Lowerer) lowerNamedFn(name ast.Name, f *ast.FnDef, cont func() cps.Expr) cps.Expr {
	retc := l.fresh("retc")
	body := l.lowerSimp(f.Body, func(ret ast.Name) cps.Expr {
		return &cps.AppC{Cnt: retc, Args: []ast.Name{ret}}
	})
	funDef := &cps.FunDef{Name: name, Ret: retc, Args: paramNames(f.Args), Body: body}
	return &cps.Funs{Funs: []*cps.FunDef{funDef}, Body: cont()}
}

// lowerSimp lowers a simple expression under context ctx (spec §4.3).
func (l *Lowerer) lowerSimp(s ast.Simp, ctx Ctx) cps.Expr {
	switch simp := s.(type) {
	case *ast.IntSimp:
		name := l.fresh("lit")
		return &cps.Const{Name: name, Value: simp.Value, Body: ctx(name)}

	case *ast.BoolSimp:
		name := l.fresh("lit")
		v := int64(0)
		if simp.Value {
			v = 1
		}
		return &cps.Const{Name: name, Value: v, Body: ctx(name)}

	case *ast.RefSimp:
		return ctx(simp.Name)

	case *ast.FnDefSimp:
		anon := l.fresh("fn")
		return l.lowerNamedFn(anon, simp.Fn, func() cps.Expr { return ctx(anon) })

	case *ast.FnCallSimp:
		if ref, ok := simp.Callee.(*ast.RefSimp); ok && builtins.IsOperator(string(ref.Name)) && builtins.Arity(string(ref.Name)) == len(simp.Args) {
			return l.lowerSimps(simp.Args, func(argNames []ast.Name) cps.Expr {
				name := l.fresh("prim")
				return &cps.Prim{Name: name, Op: string(ref.Name), Args: argNames, Body: ctx(name)}
			})
		}
		return l.lowerCall(simp.Callee, simp.Args, ctx)

	case *ast.MatchSimp:
		return l.lowerSimp(simp.Scrutinee, func(sName ast.Name) cps.Expr {
			matchedVar := l.fresh("matched")
			afterName := l.fresh("match_after")
			afterDef := &cps.CntDef{Name: afterName, Args: []ast.Name{matchedVar}, Body: ctx(matchedVar)}
			chain := l.lowerArms(simp.Arms, sName, afterName, haltName)
			return &cps.Cnts{Cnts: []*cps.CntDef{afterDef}, Body: chain}
		})

	case *ast.BlockSimp:
		return l.lowerExpr(simp.Body, ctx)

	case *ast.DataSimp:
		def, ok := l.prog.LookupCons(simp.Ctor)
		tag := 0
		if ok {
			tag, _ = def.TagOf(simp.Ctor)
		}
		return l.lowerSimps(simp.Args, func(argNames []ast.Name) cps.Expr {
			tagName := l.fresh("tag")
			dataName := l.fresh("data")
			return &cps.Const{Name: tagName, Value: int64(tag), Body: &cps.Prim{
				Name: dataName,
				Op:   "data",
				Args: append([]ast.Name{tagName}, argNames...),
				Body: ctx(dataName),
			}}
		})

	default:
		return ctx(l.fresh("unit"))
	}
}

// lowerCall is the general FnCall rule (spec §4.3): a fresh return
// continuation rc is introduced, f and args are lowered left-to-right,
// and an AppF is emitted inside rc's binding Cnts.
func (l *Lowerer) lowerCall(callee ast.Simp, args []ast.Simp, ctx Ctx) cps.Expr {
	rc := l.fresh("rc")
	rv := l.fresh("rv")
	cntDef := &cps.CntDef{Name: rc, Args: []ast.Name{rv}, Body: ctx(rv)}

	body := l.lowerSimp(callee, func(fnName ast.Name) cps.Expr {
		return l.lowerSimps(args, func(argNames []ast.Name) cps.Expr {
			return &cps.AppF{Fun: fnName, Ret: rc, Args: argNames}
		})
	})
	return &cps.Cnts{Cnts: []*cps.CntDef{cntDef}, Body: body}
}

// lowerSimps folds lowerSimp over args left-to-right, preserving
// evaluation order (spec §5 "Ordering guarantees"), threading the
// accumulated result names to a VecCtx.
func (l *Lowerer) lowerSimps(args []ast.Simp, k VecCtx) cps.Expr {
	var rec func(i int, acc []ast.Name) cps.Expr
	rec = func(i int, acc []ast.Name) cps.Expr {
		if i == len(args) {
			return k(acc)
		}
		return l.lowerSimp(args[i], func(name ast.Name) cps.Expr {
			next := make([]ast.Name, len(acc), len(acc)+1)
			copy(next, acc)
			next = append(next, name)
			return rec(i+1, next)
		})
	}
	return rec(0, nil)
}
