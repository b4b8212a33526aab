// Package prettyprinter renders the typed AST and CPS trees back to
// source-like text for the CLI's four banners (spec §6). Grounded on the
// teacher's internal/prettyprinter/code_printer.go: a bytes.Buffer-backed
// printer carrying an operator-precedence table so infix expressions only
// get parenthesized where precedence actually requires it.
package prettyprinter

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/sagarreddypatil/language/internal/ast"
	"github.com/sagarreddypatil/language/internal/builtins"
)

// precedence mirrors the parser's climbing table (internal/parser);
// duplicated here deliberately — the printer's concern is "how tight does
// this operator bind for re-parenthesization", not parsing.
var precedence = map[string]int{
	"||": 1,
	"&&": 2,
	"==": 3, "!=": 3,
	"<": 4, ">": 4, "<=": 4, ">=": 4,
	"+": 5, "-": 5,
	"*": 6, "/": 6, "%": 6,
}

func precOf(op string) int {
	if p, ok := precedence[op]; ok {
		return p
	}
	return 10
}

// Program renders a typed (or untyped) ast.Program as source-like text.
func Program(prog *ast.Program) string {
	var buf bytes.Buffer
	for _, d := range prog.DataDefs {
		writeDataDef(&buf, d)
		buf.WriteString("\n")
	}
	if prog.Expr != nil {
		writeExpr(&buf, prog.Expr, 0)
	}
	return buf.String()
}

func writeDataDef(buf *bytes.Buffer, d *ast.DataDef) {
	fmt.Fprintf(buf, "data %s = ", d.Name)
	for i, cname := range d.ConsOrder {
		if i > 0 {
			buf.WriteString(" | ")
		}
		buf.WriteString(string(cname))
		args := d.Cons[cname].Args
		if len(args) > 0 {
			buf.WriteString("(")
			for j, a := range args {
				if j > 0 {
					buf.WriteString(", ")
				}
				buf.WriteString(a.String())
			}
			buf.WriteString(")")
		}
	}
}

func writeExpr(buf *bytes.Buffer, e ast.Expr, indent int) {
	switch ex := e.(type) {
	case *ast.BindExpr:
		buf.WriteString("let ")
		writePattern(buf, ex.Pat)
		buf.WriteString(" = ")
		writeSimp(buf, ex.Rhs, 0, false)
		buf.WriteString("\n")
		writeExpr(buf, ex.Body, indent)
	case *ast.SimpExpr:
		writeSimp(buf, ex.Simp, 0, false)
	}
}

func writePattern(buf *bytes.Buffer, p ast.Pattern) {
	switch pat := p.(type) {
	case *ast.VarPattern:
		fmt.Fprintf(buf, "%s: %s", pat.Name, pat.Ty.String())
	case *ast.IntPattern:
		fmt.Fprintf(buf, "%d", pat.Value)
	case *ast.BoolPattern:
		fmt.Fprintf(buf, "%t", pat.Value)
	case *ast.DataPattern:
		buf.WriteString(string(pat.Ctor))
		if len(pat.Sub) > 0 {
			buf.WriteString("(")
			for i, sub := range pat.Sub {
				if i > 0 {
					buf.WriteString(", ")
				}
				writePattern(buf, sub)
			}
			buf.WriteString(")")
		}
	}
}

func writeSimp(buf *bytes.Buffer, s ast.Simp, parentPrec int, isRight bool) {
	switch simp := s.(type) {
	case *ast.IntSimp:
		fmt.Fprintf(buf, "%d", simp.Value)
	case *ast.BoolSimp:
		fmt.Fprintf(buf, "%t", simp.Value)
	case *ast.UnitSimp:
		buf.WriteString("()")
	case *ast.RefSimp:
		buf.WriteString(string(simp.Name))
	case *ast.FnDefSimp:
		f := simp.Fn
		buf.WriteString("fn(")
		for i, a := range f.Args {
			if i > 0 {
				buf.WriteString(", ")
			}
			fmt.Fprintf(buf, "%s: %s", a.Name, a.Ty.String())
		}
		fmt.Fprintf(buf, "): %s = ", f.Ret.String())
		writeSimp(buf, f.Body, 0, false)
	case *ast.FnCallSimp:
		if ref, ok := simp.Callee.(*ast.RefSimp); ok && builtins.IsOperator(string(ref.Name)) && len(simp.Args) == 2 {
			prec := precOf(string(ref.Name))
			needParens := prec < parentPrec
			if needParens {
				buf.WriteString("(")
			}
			writeSimp(buf, simp.Args[0], prec, false)
			fmt.Fprintf(buf, " %s ", ref.Name)
			writeSimp(buf, simp.Args[1], prec+1, true)
			if needParens {
				buf.WriteString(")")
			}
			return
		}
		if ref, ok := simp.Callee.(*ast.RefSimp); ok && builtins.IsOperator(string(ref.Name)) && len(simp.Args) == 1 {
			fmt.Fprintf(buf, "%s", ref.Name)
			writeSimp(buf, simp.Args[0], 100, false)
			return
		}
		writeSimp(buf, simp.Callee, 100, false)
		buf.WriteString("(")
		for i, a := range simp.Args {
			if i > 0 {
				buf.WriteString(", ")
			}
			writeSimp(buf, a, 0, false)
		}
		buf.WriteString(")")
	case *ast.MatchSimp:
		buf.WriteString("match ")
		writeSimp(buf, simp.Scrutinee, 0, false)
		for _, arm := range simp.Arms {
			buf.WriteString(" | ")
			writePattern(buf, arm.Pat)
			buf.WriteString(" => ")
			writeSimp(buf, arm.Rhs, 0, false)
		}
	case *ast.BlockSimp:
		buf.WriteString("{ ")
		writeExpr(buf, simp.Body, 0)
		buf.WriteString(" }")
	case *ast.DataSimp:
		buf.WriteString(string(simp.Ctor))
		if len(simp.Args) > 0 {
			buf.WriteString("(")
			for i, a := range simp.Args {
				if i > 0 {
					buf.WriteString(", ")
				}
				writeSimp(buf, a, 0, false)
			}
			buf.WriteString(")")
		}
	}
}

// Indent is exposed for callers (the CLI) that want consistent leading
// whitespace on multi-line banner bodies.
func Indent(s string, n int) string {
	pad := strings.Repeat("  ", n)
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		if l != "" {
			lines[i] = pad + l
		}
	}
	return strings.Join(lines, "\n")
}
