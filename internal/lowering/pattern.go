package lowering

import (
	"github.com/sagarreddypatil/language/internal/ast"
	"github.com/sagarreddypatil/language/internal/cps"
)

// lowerArms compiles a match's arm list into a chain of pattern matches
// against valName, sharing afterName as the common join and noMatch as
// the ultimate failure sink (spec §4.3). An N-arm chain introduces N-1
// intermediate m_alt continuations.
func (l *Lowerer) lowerArms(arms []ast.MatchArm, valName ast.Name, afterName, noMatch ast.Name) cps.Expr {
	if len(arms) == 0 {
		return &cps.AppC{Cnt: noMatch, Args: nil}
	}
	arm := arms[0]
	rest := arms[1:]

	nextNoMatch := noMatch
	var wrap []*cps.CntDef
	if len(rest) > 0 {
		altName := l.fresh("m_alt")
		wrap = append(wrap, &cps.CntDef{
			Name: altName,
			Args: nil,
			Body: l.lowerArms(rest, valName, afterName, noMatch),
		})
		nextNoMatch = altName
	}

	armBody := l.lowerSimp(arm.Rhs, func(rhsName ast.Name) cps.Expr {
		return &cps.AppC{Cnt: afterName, Args: []ast.Name{rhsName}}
	})
	patLowered := l.lowerPattern(arm.Pat, valName, armBody, nextNoMatch)

	if len(wrap) == 0 {
		return patLowered
	}
	return &cps.Cnts{Cnts: wrap, Body: patLowered}
}

// lowerPattern lowers one pattern match against valName, continuing into
// body on success and jumping to noMatch on failure (spec §4.3).
func (l *Lowerer) lowerPattern(pat ast.Pattern, val ast.Name, body cps.Expr, noMatch ast.Name) cps.Expr {
	switch p := pat.(type) {
	case *ast.VarPattern:
		return &cps.Prim{Name: p.Name, Op: "id", Args: []ast.Name{val}, Body: body}

	case *ast.IntPattern:
		return l.lowerIntPattern(p.Value, val, body, noMatch)

	case *ast.BoolPattern:
		v := int64(0)
		if p.Value {
			v = 1
		}
		return l.lowerIntPattern(v, val, body, noMatch)

	case *ast.DataPattern:
		tag, _ := p.Def.TagOf(p.Ctor)
		tagName := l.fresh("tag")
		descName := l.fresh("desc")
		goodName := l.fresh("pm_good")

		fieldsChain := l.lowerFields(p.Sub, val, body, noMatch, 0)

		return &cps.Const{Name: tagName, Value: int64(tag), Body: &cps.Prim{
			Name: descName,
			Op:   "desc",
			Args: []ast.Name{val},
			Body: &cps.Cnts{
				Cnts: []*cps.CntDef{{Name: goodName, Args: nil, Body: fieldsChain}},
				Body: &cps.If{Op: "==", Args: []ast.Name{tagName, descName}, T: goodName, F: noMatch},
			},
		}}

	default:
		return &cps.AppC{Cnt: noMatch, Args: nil}
	}
}

func (l *Lowerer) lowerIntPattern(value int64, val ast.Name, body cps.Expr, noMatch ast.Name) cps.Expr {
	litName := l.fresh("lit")
	goodName := l.fresh("pm_good")
	return &cps.Const{Name: litName, Value: value, Body: &cps.Cnts{
		Cnts: []*cps.CntDef{{Name: goodName, Args: nil, Body: body}},
		Body: &cps.If{Op: "==", Args: []ast.Name{litName, val}, T: goodName, F: noMatch},
	}}
}

// lowerFields recursively extracts each sub-pattern's field (spec §4.3
// "extract each sub-field via Prim op=field with integer index
// arguments, then recursively lower the sequence of sub-patterns as a
// chained match against the extracted field names, sharing the same
// no_match").
func (l *Lowerer) lowerFields(subs []ast.Pattern, val ast.Name, body cps.Expr, noMatch ast.Name, idx int) cps.Expr {
	if idx == len(subs) {
		return body
	}
	fieldName := l.fresh("f")
	idxConst := l.fresh("i")
	rest := l.lowerFields(subs, val, body, noMatch, idx+1)
	subLowered := l.lowerPattern(subs[idx], fieldName, rest, noMatch)
	return &cps.Const{Name: idxConst, Value: int64(idx), Body: &cps.Prim{
		Name: fieldName,
		Op:   "field",
		Args: []ast.Name{idxConst, val},
		Body: subLowered,
	}}
}
