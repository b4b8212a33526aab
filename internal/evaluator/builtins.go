package evaluator

import (
	"github.com/sagarreddypatil/language/internal/ast"
)

func asInt(v Value, op string) (int64, error) {
	iv, ok := v.(IntValue)
	if !ok {
		return 0, errBuiltinArgs(op, 1)
	}
	return iv.Value, nil
}

func asBool(v Value, op string) (bool, error) {
	bv, ok := v.(BoolValue)
	if !ok {
		return false, errBuiltinArgs(op, 1)
	}
	return bv.Value, nil
}

func intBinOp(name string, f func(a, b int64) (int64, error)) *BuiltInValue {
	return &BuiltInValue{Name: name, Fn: func(args []Value) (Value, error) {
		a, err := asInt(args[0], name)
		if err != nil {
			return nil, err
		}
		b, err := asInt(args[1], name)
		if err != nil {
			return nil, err
		}
		r, err := f(a, b)
		if err != nil {
			return nil, err
		}
		return IntValue{Value: r}, nil
	}}
}

func intCmpOp(name string, f func(a, b int64) bool) *BuiltInValue {
	return &BuiltInValue{Name: name, Fn: func(args []Value) (Value, error) {
		a, err := asInt(args[0], name)
		if err != nil {
			return nil, err
		}
		b, err := asInt(args[1], name)
		if err != nil {
			return nil, err
		}
		return BoolValue{Value: f(a, b)}, nil
	}}
}

func boolBinOp(name string, f func(a, b bool) bool) *BuiltInValue {
	return &BuiltInValue{Name: name, Fn: func(args []Value) (Value, error) {
		a, err := asBool(args[0], name)
		if err != nil {
			return nil, err
		}
		b, err := asBool(args[1], name)
		if err != nil {
			return nil, err
		}
		return BoolValue{Value: f(a, b)}, nil
	}}
}

// NewRootEnvironment preloads every built-in operator symbol into a fresh
// root environment (spec §4.2: "Built-in operator symbols are preloaded
// into every root environment").
func NewRootEnvironment() *Environment {
	env := NewEnvironment()

	ops := []*BuiltInValue{
		intBinOp("+", func(a, b int64) (int64, error) { return a + b, nil }),
		intBinOp("-", func(a, b int64) (int64, error) { return a - b, nil }),
		intBinOp("*", func(a, b int64) (int64, error) { return a * b, nil }),
		intBinOp("/", func(a, b int64) (int64, error) {
			if b == 0 {
				return 0, &RuntimeError{Msg: "division by zero"}
			}
			return a / b, nil
		}),
		intBinOp("%", func(a, b int64) (int64, error) {
			if b == 0 {
				return 0, &RuntimeError{Msg: "division by zero"}
			}
			return a % b, nil
		}),
		intCmpOp("==", func(a, b int64) bool { return a == b }),
		intCmpOp("!=", func(a, b int64) bool { return a != b }),
		intCmpOp("<", func(a, b int64) bool { return a < b }),
		intCmpOp(">", func(a, b int64) bool { return a > b }),
		intCmpOp("<=", func(a, b int64) bool { return a <= b }),
		intCmpOp(">=", func(a, b int64) bool { return a >= b }),
		boolBinOp("&&", func(a, b bool) bool { return a && b }),
		boolBinOp("||", func(a, b bool) bool { return a || b }),
		{Name: "~", Fn: func(args []Value) (Value, error) {
			a, err := asInt(args[0], "~")
			if err != nil {
				return nil, err
			}
			return IntValue{Value: ^a}, nil
		}},
		{Name: "!", Fn: func(args []Value) (Value, error) {
			a, err := asBool(args[0], "!")
			if err != nil {
				return nil, err
			}
			return BoolValue{Value: !a}, nil
		}},
	}

	for _, op := range ops {
		env.store[ast.Name(op.Name)] = &Cell{Value: op, Filled: true}
	}
	return env
}
