package evaluator

import "github.com/sagarreddypatil/language/internal/ast"

// matchBinding is one name bound by a successful pattern match.
type matchBinding struct {
	name ast.Name
	val  Value
}

// match attempts to match a value against a pattern (spec §4.2 "Pattern
// matching"): Var always succeeds; Int/Bool succeed iff the literal
// equals the scrutinee; Data succeeds iff the tag matches and every
// sub-pattern matches pairwise.
func match(pat ast.Pattern, v Value) (bool, []matchBinding) {
	switch p := pat.(type) {
	case *ast.VarPattern:
		return true, []matchBinding{{p.Name, v}}
	case *ast.IntPattern:
		iv, ok := v.(IntValue)
		return ok && iv.Value == p.Value, nil
	case *ast.BoolPattern:
		bv, ok := v.(BoolValue)
		return ok && bv.Value == p.Value, nil
	case *ast.DataPattern:
		dv, ok := v.(*DataValue)
		if !ok || dv.Ctor != p.Ctor || len(dv.Fields) != len(p.Sub) {
			return false, nil
		}
		var out []matchBinding
		for i, sub := range p.Sub {
			ok, binds := match(sub, dv.Fields[i])
			if !ok {
				return false, nil
			}
			out = append(out, binds...)
		}
		return true, out
	default:
		return false, nil
	}
}

// bindNames collects every name a pattern would introduce on success,
// without a value in hand yet — used to reserve cells before evaluating
// a recursive Bind's right-hand side (spec §4.2).
func bindNames(pat ast.Pattern) []ast.Name {
	switch p := pat.(type) {
	case *ast.VarPattern:
		return []ast.Name{p.Name}
	case *ast.DataPattern:
		var out []ast.Name
		for _, sub := range p.Sub {
			out = append(out, bindNames(sub)...)
		}
		return out
	default:
		return nil
	}
}
