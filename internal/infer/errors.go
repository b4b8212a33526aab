package infer

import (
	"fmt"

	"github.com/sagarreddypatil/language/internal/ast"
	"github.com/sagarreddypatil/language/internal/token"
)

// TypeError is the fatal error taxonomy of spec §7's "Type errors":
// unbound name, constructor arity mismatch, cannot-unify, recursive type,
// unresolved type at program root.
type TypeError struct {
	Msg string
	At  token.Pos
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("%s: type error: %s", e.At, e.Msg)
}

func unboundErr(n ast.Name, at token.Pos) error {
	return &TypeError{Msg: fmt.Sprintf("unbound name %q", n), At: at}
}

func arityErr(ctor ast.Name, want, got int, at token.Pos) error {
	return &TypeError{Msg: fmt.Sprintf("constructor %q expects %d argument(s), got %d", ctor, want, got), At: at}
}

func unifyErr(err error, at token.Pos) error {
	return &TypeError{Msg: err.Error(), At: at}
}
