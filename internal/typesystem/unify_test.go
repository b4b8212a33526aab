package typesystem

import "testing"

func TestUnifyAtoms(t *testing.T) {
	if _, err := Unify(TInt{}, TInt{}); err != nil {
		t.Fatalf("Int/Int should unify: %v", err)
	}
	if _, err := Unify(TInt{}, TBool{}); err == nil {
		t.Fatalf("Int/Bool should not unify")
	}
}

func TestUnifyBindsVar(t *testing.T) {
	v := NewTVar()
	s, err := Unify(v, TInt{})
	if err != nil {
		t.Fatalf("unify failed: %v", err)
	}
	if got := v.Apply(s); got.String() != "Int" {
		t.Fatalf("expected Int, got %s", got.String())
	}
}

func TestUnifyOccursCheck(t *testing.T) {
	v := NewTVar()
	fn := TFn{Args: []Type{v}, Ret: TInt{}}
	if _, err := Unify(v, fn); err == nil {
		t.Fatalf("expected occurs-check failure for v = Fn(v) -> Int")
	}
}

func TestUnifyFnArityMismatch(t *testing.T) {
	a := TFn{Args: []Type{TInt{}}, Ret: TInt{}}
	b := TFn{Args: []Type{TInt{}, TInt{}}, Ret: TInt{}}
	if _, err := Unify(a, b); err == nil {
		t.Fatalf("expected arity mismatch error")
	}
}

// Unification is commutative on constraints (spec §8): {a=b, c=d} should
// yield equivalent variable images to {b=a, d=c}.
func TestUnifyAllCommutative(t *testing.T) {
	a, b := NewTVar(), NewTVar()
	cs1 := []Constraint{{A: a, B: TInt{}}, {A: b, B: TBool{}}}
	cs2 := []Constraint{{A: TInt{}, B: a}, {A: TBool{}, B: b}}

	s1, err := UnifyAll(cs1)
	if err != nil {
		t.Fatalf("cs1 unify failed: %v", err)
	}
	s2, err := UnifyAll(cs2)
	if err != nil {
		t.Fatalf("cs2 unify failed: %v", err)
	}
	if a.Apply(s1).String() != a.Apply(s2).String() {
		t.Fatalf("a image differs: %s vs %s", a.Apply(s1), a.Apply(s2))
	}
	if b.Apply(s1).String() != b.Apply(s2).String() {
		t.Fatalf("b image differs: %s vs %s", b.Apply(s1), b.Apply(s2))
	}
}

func TestApplyIdentityIsStructurallyEqual(t *testing.T) {
	fn := TFn{Args: []Type{TInt{}, TBool{}}, Ret: TUserDef{Name: "Maybe"}}
	if fn.Apply(Subst{}).String() != fn.String() {
		t.Fatalf("identity substitution should leave type unchanged")
	}
}
