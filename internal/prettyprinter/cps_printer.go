package prettyprinter

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/sagarreddypatil/language/internal/ast"
	"github.com/sagarreddypatil/language/internal/cps"
)

// Cps renders a cps.Expr as an indented let-sequence, one binder per
// line, matching the shape the shrinker and lowerer both produce: a
// chain of Const/Prim bindings terminated by a tail call (spec §3).
func Cps(e cps.Expr) string {
	var buf bytes.Buffer
	writeCps(&buf, e, 0)
	return buf.String()
}

func ind(n int) string { return strings.Repeat("  ", n) }

func writeCps(buf *bytes.Buffer, e cps.Expr, depth int) {
	switch n := e.(type) {
	case nil:
		fmt.Fprintf(buf, "%s<nil>\n", ind(depth))

	case *cps.Const:
		fmt.Fprintf(buf, "%slet %s = %d in\n", ind(depth), n.Name, n.Value)
		writeCps(buf, n.Body, depth)

	case *cps.Prim:
		fmt.Fprintf(buf, "%slet %s = %s(%s) in\n", ind(depth), n.Name, n.Op, joinNames(n.Args))
		writeCps(buf, n.Body, depth)

	case *cps.Cnts:
		for _, c := range n.Cnts {
			fmt.Fprintf(buf, "%scnt %s(%s) =\n", ind(depth), c.Name, joinNames(c.Args))
			writeCps(buf, c.Body, depth+1)
		}
		writeCps(buf, n.Body, depth)

	case *cps.Funs:
		for _, f := range n.Funs {
			fmt.Fprintf(buf, "%sfun %s(%s; ret=%s) =\n", ind(depth), f.Name, joinNames(f.Args), f.Ret)
			writeCps(buf, f.Body, depth+1)
		}
		writeCps(buf, n.Body, depth)

	case *cps.AppC:
		fmt.Fprintf(buf, "%s%s(%s)\n", ind(depth), n.Cnt, joinNames(n.Args))

	case *cps.AppF:
		fmt.Fprintf(buf, "%s%s(%s; ret=%s)\n", ind(depth), n.Fun, joinNames(n.Args), n.Ret)

	case *cps.If:
		fmt.Fprintf(buf, "%sif %s(%s) then %s() else %s()\n", ind(depth), n.Op, joinNames(n.Args), n.T, n.F)

	case *cps.Halt:
		fmt.Fprintf(buf, "%shalt(%s)\n", ind(depth), n.Name)
	}
}

func joinNames(names []ast.Name) string {
	parts := make([]string, len(names))
	for i, n := range names {
		parts[i] = string(n)
	}
	return strings.Join(parts, ", ")
}
