// Package evaluator is C3: a closure-converting tree-walking interpreter
// over the typed AST (spec §4.2), serving as the correctness oracle for
// C4/C5. Grounded on the teacher's internal/evaluator: a ValueType tag
// constant plus one struct per variant implementing a small interface
// (internal/evaluator/object.go's Object/ObjectType idiom), and an
// outer-chained Environment (internal/evaluator/environment.go).
package evaluator

import (
	"fmt"
	"strings"

	"github.com/sagarreddypatil/language/internal/ast"
)

// ValueType tags a runtime Value's variant, mirroring the teacher's
// ObjectType string-constant idiom.
type ValueType string

const (
	INT_VAL     ValueType = "INT"
	BOOL_VAL    ValueType = "BOOL"
	UNIT_VAL    ValueType = "UNIT"
	DATA_VAL    ValueType = "DATA"
	CLOSURE_VAL ValueType = "CLOSURE"
	BUILTIN_VAL ValueType = "BUILTIN"
)

// Value is the interface every runtime value satisfies (spec §4.2).
type Value interface {
	Type() ValueType
	// Inspect renders the literal value printing form of spec §6.
	Inspect() string
}

type IntValue struct{ Value int64 }

func (v IntValue) Type() ValueType { return INT_VAL }
func (v IntValue) Inspect() string { return fmt.Sprintf("%d", v.Value) }

type BoolValue struct{ Value bool }

func (v BoolValue) Type() ValueType { return BOOL_VAL }
func (v BoolValue) Inspect() string {
	if v.Value {
		return "true"
	}
	return "false"
}

type UnitValue struct{}

func (v UnitValue) Type() ValueType { return UNIT_VAL }
func (v UnitValue) Inspect() string { return "()" }

// DataValue is a constructed algebraic-data value (spec §4.2).
type DataValue struct {
	Ctor   ast.Name
	Fields []Value
}

func (v *DataValue) Type() ValueType { return DATA_VAL }
func (v *DataValue) Inspect() string {
	if len(v.Fields) == 0 {
		return string(v.Ctor)
	}
	parts := make([]string, len(v.Fields))
	for i, f := range v.Fields {
		parts[i] = f.Inspect()
	}
	return fmt.Sprintf("%s(%s)", v.Ctor, strings.Join(parts, ", "))
}

// ClosureValue pairs a FnDef with the (already-minimized, per spec §4.2)
// environment it closed over.
type ClosureValue struct {
	Env *Environment
	Fn  *ast.FnDef
}

func (v *ClosureValue) Type() ValueType { return CLOSURE_VAL }
func (v *ClosureValue) Inspect() string {
	names := make([]string, len(v.Fn.Args))
	for i, a := range v.Fn.Args {
		names[i] = string(a.Name)
	}
	return fmt.Sprintf("fn(%s) { ... }", strings.Join(names, ", "))
}

// BuiltInValue wraps a host Go function implementing a built-in operator.
type BuiltInValue struct {
	Name string
	Fn   func(args []Value) (Value, error)
}

func (v *BuiltInValue) Type() ValueType { return BUILTIN_VAL }
func (v *BuiltInValue) Inspect() string { return fmt.Sprintf("<builtin %s>", v.Name) }
