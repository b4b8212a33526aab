package shrink

import (
	"github.com/sagarreddypatil/language/internal/ast"
	"github.com/sagarreddypatil/language/internal/cps"
)

// state is the per-pass known-literal map of spec §4.4: a mapping
// Name -> LitHigh seen on the current path, plus its inverse for CSE
// lookups. Each CntDef/FunDef body is optimised under a clone so a local
// constant never leaks outward (spec §4.4 rewrite 4).
type state struct {
	known   map[ast.Name]cps.LitHigh
	byValue map[cps.LitHigh]ast.Name
}

func newState() *state {
	return &state{known: map[ast.Name]cps.LitHigh{}, byValue: map[cps.LitHigh]ast.Name{}}
}

func (s *state) clone() *state {
	out := newState()
	for k, v := range s.known {
		out.known[k] = v
	}
	for k, v := range s.byValue {
		out.byValue[k] = v
	}
	return out
}

func (s *state) lookupAll(names []ast.Name) ([]cps.LitHigh, bool) {
	out := make([]cps.LitHigh, len(names))
	for i, n := range names {
		v, ok := s.known[n]
		if !ok {
			return nil, false
		}
		out[i] = v
	}
	return out, true
}

// Pass runs one shrinking rewrite over the whole tree (spec §4.4): it is
// applied repeatedly by Run until the tree's node count stops shrinking.
func Pass(e cps.Expr) cps.Expr {
	return rewrite(e, newState())
}

func rewrite(e cps.Expr, st *state) cps.Expr {
	switch n := e.(type) {
	case nil:
		return nil

	case *cps.Const:
		// Constant CSE (spec §4.4 rewrite 1): a previously-bound name for
		// the same literal value means this binding is redundant —
		// substitute it away and recurse into the substituted body.
		if existing, ok := st.byValue[n.Value]; ok {
			return rewrite(Apply(n.Body, Subst{n.Name: existing}), st)
		}
		st.known[n.Name] = n.Value
		st.byValue[n.Value] = n.Name
		return &cps.Const{Name: n.Name, Value: n.Value, Body: rewrite(n.Body, st)}

	case *cps.Prim:
		if n.Op != "data" {
			if vals, ok := st.lookupAll(n.Args); ok {
				if folded, ok := foldPrim(n.Op, vals); ok {
					return rewrite(&cps.Const{Name: n.Name, Value: folded, Body: n.Body}, st)
				}
			}
		}
		return &cps.Prim{Name: n.Name, Op: n.Op, Args: n.Args, Body: rewrite(n.Body, st)}

	case *cps.Cnts:
		cnts := make([]*cps.CntDef, len(n.Cnts))
		for i, c := range n.Cnts {
			cnts[i] = &cps.CntDef{Name: c.Name, Args: c.Args, Body: rewrite(c.Body, st.clone())}
		}
		return &cps.Cnts{Cnts: cnts, Body: rewrite(n.Body, st)}

	case *cps.Funs:
		funs := make([]*cps.FunDef, len(n.Funs))
		for i, f := range n.Funs {
			funs[i] = &cps.FunDef{Name: f.Name, Ret: f.Ret, Args: f.Args, Body: rewrite(f.Body, st.clone())}
		}
		return &cps.Funs{Funs: funs, Body: rewrite(n.Body, st)}

	case *cps.If:
		// Constant-branch resolution (spec §4.4 rewrite 3): the truth
		// encoding is "folded value > 0" (spec §9 Open Question a).
		if vals, ok := st.lookupAll(n.Args); ok {
			if folded, ok := foldPrim(n.Op, vals); ok {
				if folded > 0 {
					return &cps.AppC{Cnt: n.T, Args: nil}
				}
				return &cps.AppC{Cnt: n.F, Args: nil}
			}
		}
		return n

	case *cps.AppC, *cps.AppF, *cps.Halt:
		return n

	default:
		return e
	}
}
