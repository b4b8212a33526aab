package typesystem

import "fmt"

// UnifyError reports a type-checking failure during unification (spec §7).
type UnifyError struct {
	Msg    string
	A, B   Type
}

func (e *UnifyError) Error() string {
	if e.A != nil && e.B != nil {
		return fmt.Sprintf("%s: cannot unify %s with %s", e.Msg, e.A, e.B)
	}
	return e.Msg
}

// Unify solves a single equality constraint t1 = t2 into a substitution,
// using Robinson unification with an occurs check (spec §4.1 step 2).
// Grounded on the teacher's internal/typesystem/unify.go: a type-switch
// over (t1, t2) with a symmetric TVar case and pairwise recursion for
// compound types.
func Unify(t1, t2 Type) (Subst, error) {
	switch a := t1.(type) {
	case TVar:
		return bind(a, t2)
	}
	switch b := t2.(type) {
	case TVar:
		return bind(b, t1)
	}

	switch a := t1.(type) {
	case TInt:
		if _, ok := t2.(TInt); ok {
			return Subst{}, nil
		}
		return nil, &UnifyError{Msg: "cannot unify", A: t1, B: t2}
	case TBool:
		if _, ok := t2.(TBool); ok {
			return Subst{}, nil
		}
		return nil, &UnifyError{Msg: "cannot unify", A: t1, B: t2}
	case TUnit:
		if _, ok := t2.(TUnit); ok {
			return Subst{}, nil
		}
		return nil, &UnifyError{Msg: "cannot unify", A: t1, B: t2}
	case TUserDef:
		if b, ok := t2.(TUserDef); ok && b.Name == a.Name {
			return Subst{}, nil
		}
		return nil, &UnifyError{Msg: "cannot unify", A: t1, B: t2}
	case TFn:
		b, ok := t2.(TFn)
		if !ok {
			return nil, &UnifyError{Msg: "cannot unify", A: t1, B: t2}
		}
		if len(a.Args) != len(b.Args) {
			return nil, &UnifyError{Msg: "function arity mismatch", A: t1, B: t2}
		}
		s := Subst{}
		for i := range a.Args {
			sub, err := Unify(a.Args[i].Apply(s), b.Args[i].Apply(s))
			if err != nil {
				return nil, err
			}
			s = s.Compose(sub)
		}
		sub, err := Unify(a.Ret.Apply(s), b.Ret.Apply(s))
		if err != nil {
			return nil, err
		}
		return s.Compose(sub), nil
	default:
		return nil, &UnifyError{Msg: "cannot unify", A: t1, B: t2}
	}
}

// UnifyAll folds Unify over a constraint list, composing substitutions and
// re-applying the running substitution to each constraint before solving
// it, matching spec §4.1's "apply the new mapping to the remaining
// constraint list".
func UnifyAll(cs []Constraint) (Subst, error) {
	s := Subst{}
	for _, c := range cs {
		a := c.A.Apply(s)
		b := c.B.Apply(s)
		next, err := Unify(a, b)
		if err != nil {
			return nil, err
		}
		s = s.Compose(next)
	}
	return s, nil
}

func occurs(v TVar, t Type) bool {
	for _, id := range t.FreeTypeVars() {
		if id == v.ID {
			return true
		}
	}
	return false
}

func bind(v TVar, t Type) (Subst, error) {
	if tv, ok := t.(TVar); ok && tv.ID == v.ID {
		return Subst{}, nil
	}
	if occurs(v, t) {
		return nil, &UnifyError{Msg: "recursive type", A: v, B: t}
	}
	return Subst{v.ID: t}, nil
}
