package evaluator

import (
	"fmt"
	"os"
	"strings"

	"github.com/sagarreddypatil/language/internal/ast"
)

// Interpreter carries the debug-trace toggle of SPEC_FULL §4 (off by
// default; a pure evaluator otherwise). original_source's interp.rs has no
// trace mode; this one prints each call and its arguments before applying
// the callee, purely for debugging, no semantic effect.
type Interpreter struct {
	Trace bool
}

func New() *Interpreter { return &Interpreter{} }

// Run evaluates a typed Program to a final Value (spec §4.2's public
// contract, generalized to expose the toggled trace hook).
func (it *Interpreter) Run(prog *ast.Program) (Value, error) {
	if prog.Expr == nil {
		return UnitValue{}, nil
	}
	return it.evalExpr(NewRootEnvironment(), prog.Expr)
}

func (it *Interpreter) evalExpr(env *Environment, e ast.Expr) (Value, error) {
	switch ex := e.(type) {
	case *ast.BindExpr:
		names := bindNames(ex.Pat)
		env2 := env.Reserve(names)
		rhsVal, err := it.evalSimp(env2, ex.Rhs)
		if err != nil {
			return nil, err
		}
		ok, binds := match(ex.Pat, rhsVal)
		if !ok {
			return nil, errPatternExhausted(rhsVal)
		}
		for _, b := range binds {
			env2.Fill(b.name, b.val)
		}
		return it.evalExpr(env2, ex.Body)

	case *ast.SimpExpr:
		return it.evalSimp(env, ex.Simp)

	default:
		return nil, &RuntimeError{Msg: "unknown expr form"}
	}
}

func (it *Interpreter) evalSimp(env *Environment, s ast.Simp) (Value, error) {
	switch simp := s.(type) {
	case *ast.IntSimp:
		return IntValue{Value: simp.Value}, nil
	case *ast.BoolSimp:
		return BoolValue{Value: simp.Value}, nil
	case *ast.UnitSimp:
		return UnitValue{}, nil

	case *ast.RefSimp:
		return env.Get(simp.Name)

	case *ast.FnDefSimp:
		return it.makeClosure(env, simp.Fn), nil

	case *ast.MatchSimp:
		scrut, err := it.evalSimp(env, simp.Scrutinee)
		if err != nil {
			return nil, err
		}
		for _, arm := range simp.Arms {
			ok, binds := match(arm.Pat, scrut)
			if !ok {
				continue
			}
			names := make([]ast.Name, len(binds))
			for i, b := range binds {
				names[i] = b.name
			}
			env2 := env.Reserve(names)
			for _, b := range binds {
				env2.Fill(b.name, b.val)
			}
			return it.evalSimp(env2, arm.Rhs)
		}
		return nil, errPatternExhausted(scrut)

	case *ast.FnCallSimp:
		fnVal, err := it.evalSimp(env, simp.Callee)
		if err != nil {
			return nil, err
		}
		args := make([]Value, len(simp.Args))
		for i, a := range simp.Args {
			av, err := it.evalSimp(env, a)
			if err != nil {
				return nil, err
			}
			args[i] = av
		}
		if it.Trace {
			parts := make([]string, len(args))
			for i, a := range args {
				parts[i] = a.Inspect()
			}
			fmt.Fprintf(os.Stderr, "call %s(%s)\n", fnVal.Inspect(), strings.Join(parts, ", "))
		}
		return it.apply(fnVal, args)

	case *ast.BlockSimp:
		return it.evalExpr(env, simp.Body)

	case *ast.DataSimp:
		args := make([]Value, len(simp.Args))
		for i, a := range simp.Args {
			av, err := it.evalSimp(env, a)
			if err != nil {
				return nil, err
			}
			args[i] = av
		}
		return &DataValue{Ctor: simp.Ctor, Fields: args}, nil

	default:
		return nil, &RuntimeError{Msg: "unknown simp form"}
	}
}

// makeClosure builds a recursive closure from a FnDef (spec §4.2
// "FnDef(f, body)"): compute free variables minus args and name, capture
// only those, reserve an empty cell for f.Name, build the closure, fill
// the cell with itself.
func (it *Interpreter) makeClosure(env *Environment, f *ast.FnDef) Value {
	bound := make(nameSet)
	for _, a := range f.Args {
		bound.add(a.Name)
	}
	if f.Name != "" {
		bound.add(f.Name)
	}
	free := make(nameSet)
	freeVarsSimp(f.Body, bound, free)

	captured := NewEnvironment()
	for n := range free {
		if v, err := env.Get(n); err == nil {
			captured.store[n] = &Cell{Value: v, Filled: true}
		}
	}

	selfName := f.Name
	if selfName == "" {
		selfName = "$anon"
	}
	closureEnv := captured.Reserve([]ast.Name{selfName})
	clo := &ClosureValue{Env: closureEnv, Fn: f}
	closureEnv.Fill(selfName, clo)
	return clo
}

func (it *Interpreter) apply(fnVal Value, args []Value) (Value, error) {
	switch fn := fnVal.(type) {
	case *BuiltInValue:
		return fn.Fn(args)
	case *ClosureValue:
		names := make([]ast.Name, len(fn.Fn.Args))
		for i, a := range fn.Fn.Args {
			names[i] = a.Name
		}
		callEnv := fn.Env.Reserve(names)
		for i, a := range fn.Fn.Args {
			callEnv.Fill(a.Name, args[i])
		}
		return it.evalSimp(callEnv, fn.Fn.Body)
	default:
		return nil, errNotCallable(fnVal)
	}
}
