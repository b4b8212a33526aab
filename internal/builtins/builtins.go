// Package builtins is the single source of truth for the built-in
// operator symbols (spec §4.1's "Initial environment"), shared by type
// inference's seed environment, the interpreter's BuiltIn dispatch table
// and CPS lowering's primitive-operator whitelist. Grounded on the
// teacher's internal/config package, which centralizes constant tables
// (built-in function names, trait names) so every consumer reads one
// definition instead of three ad hoc copies.
package builtins

import "github.com/sagarreddypatil/language/internal/typesystem"

// Signature describes one built-in operator's arity and type.
type Signature struct {
	Args []typesystem.Type
	Ret  typesystem.Type
}

// Table lists every built-in operator symbol with its type, per spec
// §4.1. Order is insignificant; it is a map keyed by the operator's
// Name spelling (a plain string, matching internal/ast.Name's underlying
// type).
var Table = map[string]Signature{
	"+": {Args: []typesystem.Type{typesystem.TInt{}, typesystem.TInt{}}, Ret: typesystem.TInt{}},
	"-": {Args: []typesystem.Type{typesystem.TInt{}, typesystem.TInt{}}, Ret: typesystem.TInt{}},
	"*": {Args: []typesystem.Type{typesystem.TInt{}, typesystem.TInt{}}, Ret: typesystem.TInt{}},
	"/": {Args: []typesystem.Type{typesystem.TInt{}, typesystem.TInt{}}, Ret: typesystem.TInt{}},
	"%": {Args: []typesystem.Type{typesystem.TInt{}, typesystem.TInt{}}, Ret: typesystem.TInt{}},
	"~": {Args: []typesystem.Type{typesystem.TInt{}}, Ret: typesystem.TInt{}},

	"==": {Args: []typesystem.Type{typesystem.TInt{}, typesystem.TInt{}}, Ret: typesystem.TBool{}},
	"!=": {Args: []typesystem.Type{typesystem.TInt{}, typesystem.TInt{}}, Ret: typesystem.TBool{}},
	"<":  {Args: []typesystem.Type{typesystem.TInt{}, typesystem.TInt{}}, Ret: typesystem.TBool{}},
	">":  {Args: []typesystem.Type{typesystem.TInt{}, typesystem.TInt{}}, Ret: typesystem.TBool{}},
	"<=": {Args: []typesystem.Type{typesystem.TInt{}, typesystem.TInt{}}, Ret: typesystem.TBool{}},
	">=": {Args: []typesystem.Type{typesystem.TInt{}, typesystem.TInt{}}, Ret: typesystem.TBool{}},

	"&&": {Args: []typesystem.Type{typesystem.TBool{}, typesystem.TBool{}}, Ret: typesystem.TBool{}},
	"||": {Args: []typesystem.Type{typesystem.TBool{}, typesystem.TBool{}}, Ret: typesystem.TBool{}},
	"!":  {Args: []typesystem.Type{typesystem.TBool{}}, Ret: typesystem.TBool{}},
}

// IsOperator reports whether name names a built-in operator symbol,
// usable wherever a Ref could instead be an operator applied prefix-style
// (spec §4.3: "FnCall(Ref op, args) where op is a valid builtin operator").
func IsOperator(name string) bool {
	_, ok := Table[name]
	return ok
}

// Arity returns the number of arguments the operator expects.
func Arity(name string) int {
	return len(Table[name].Args)
}

// Comparisons and logical ops are the primitives whose results are
// always 0/1-encoded, and whose branches may therefore feed an If node
// (spec §9 Open Question a).
var boolResultOps = map[string]bool{
	"==": true, "!=": true, "<": true, ">": true, "<=": true, ">=": true,
	"&&": true, "||": true, "!": true,
}

// ReturnsBool reports whether op's built-in signature returns Bool.
func ReturnsBool(op string) bool { return boolResultOps[op] }
