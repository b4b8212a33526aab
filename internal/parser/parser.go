// Package parser is a recursive-descent parser over internal/token's
// stream, producing internal/ast nodes with a fresh typesystem.TVar
// wherever the surface grammar leaves a type unannotated (spec §6).
// Grounded on the teacher's pattern of a single Parser struct holding
// cur/peek tokens with curToken/nextToken advancing in lockstep
// (internal/ast's consumers expect this shape too), generalized here to
// the much smaller grammar spec §6 actually names: data/let/fn/match/
// if-else and a precedence-climbing expression grammar over the built-in
// operator symbols, grounded on the teacher's prettyprinter operator-
// precedence table (internal/prettyprinter/code_printer.go) turned
// around into a parsing precedence table.
package parser

import (
	"fmt"
	"strconv"

	"github.com/sagarreddypatil/language/internal/ast"
	"github.com/sagarreddypatil/language/internal/lexer"
	"github.com/sagarreddypatil/language/internal/token"
	"github.com/sagarreddypatil/language/internal/typesystem"
)

// ParseError is the fatal syntax-error taxonomy of spec §7: "fail with
// position and expectation".
type ParseError struct {
	Msg string
	At  token.Pos
}

func (e *ParseError) Error() string { return fmt.Sprintf("%s: syntax error: %s", e.At, e.Msg) }

// precedence is the binding-power table for the built-in infix operators
// (spec §6), lowest to highest; unary `~`/`!` bind tighter than every
// infix form.
var precedence = map[string]int{
	"||": 1,
	"&&": 2,
	"==": 3, "!=": 3,
	"<": 4, ">": 4, "<=": 4, ">=": 4,
	"+": 5, "-": 5,
	"*": 6, "/": 6, "%": 6,
}

type Parser struct {
	l          *lexer.Lexer
	cur, peek  token.Token
	dataDefs   map[ast.Name]*ast.DataDef
}

func New(src string) *Parser {
	p := &Parser{l: lexer.New(src), dataDefs: map[ast.Name]*ast.DataDef{}}
	p.next()
	p.next()
	return p
}

func (p *Parser) next() {
	p.cur = p.peek
	p.peek = p.l.NextToken()
}

func (p *Parser) expect(k token.Kind) (token.Token, error) {
	if p.cur.Kind != k {
		return token.Token{}, &ParseError{Msg: fmt.Sprintf("expected %s, got %s", k, p.cur.Kind), At: p.cur.Pos}
	}
	t := p.cur
	p.next()
	return t, nil
}

// Parse consumes the whole token stream, producing an untyped Program:
// a sequence of data definitions followed by one terminating expression
// (spec §6).
func (p *Parser) Parse() (*ast.Program, error) {
	var defs []*ast.DataDef
	for p.cur.Kind == token.DATA {
		d, err := p.parseDataDef()
		if err != nil {
			return nil, err
		}
		defs = append(defs, d)
		p.dataDefs[d.Name] = d
	}

	if p.cur.Kind == token.EOF {
		return &ast.Program{DataDefs: defs}, nil
	}

	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.cur.Kind != token.EOF {
		return nil, &ParseError{Msg: fmt.Sprintf("unexpected trailing token %s", p.cur.Kind), At: p.cur.Pos}
	}
	return &ast.Program{DataDefs: defs, Expr: expr}, nil
}

// parseDataDef parses `data Name = Cons1(T, ...) | Cons2(...) | ...`.
func (p *Parser) parseDataDef() (*ast.DataDef, error) {
	if _, err := p.expect(token.DATA); err != nil {
		return nil, err
	}
	nameTok, err := p.expect(token.IDENT)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.ASSIGN); err != nil {
		return nil, err
	}

	d := &ast.DataDef{Name: ast.Name(nameTok.Lexeme), Cons: map[ast.Name]ast.Cons{}}
	for {
		ctorTok, err := p.expect(token.IDENT)
		if err != nil {
			return nil, err
		}
		var args []typesystem.Type
		if p.cur.Kind == token.LPAREN {
			p.next()
			for p.cur.Kind != token.RPAREN {
				ty, err := p.parseTypeAnnotation()
				if err != nil {
					return nil, err
				}
				args = append(args, ty)
				if p.cur.Kind == token.COMMA {
					p.next()
				}
			}
			if _, err := p.expect(token.RPAREN); err != nil {
				return nil, err
			}
		}
		cname := ast.Name(ctorTok.Lexeme)
		d.ConsOrder = append(d.ConsOrder, cname)
		d.Cons[cname] = ast.Cons{Args: args}

		if p.cur.Kind == token.PIPE {
			p.next()
			continue
		}
		break
	}
	return d, nil
}

// parseTypeAnnotation parses a bare type name (`Int`, `Bool`, or a
// user-defined data type's name); spec §6 gives no compound-type syntax.
func (p *Parser) parseTypeAnnotation() (typesystem.Type, error) {
	t, err := p.expect(token.IDENT)
	if err != nil {
		return nil, err
	}
	switch t.Lexeme {
	case "Int":
		return typesystem.TInt{}, nil
	case "Bool":
		return typesystem.TBool{}, nil
	case "Unit":
		return typesystem.TUnit{}, nil
	default:
		return typesystem.TUserDef{Name: t.Lexeme}, nil
	}
}

// parseExpr parses a binding-sequence expression: zero or more `let`
// bindings followed by a terminating simple expression (spec §6).
func (p *Parser) parseExpr() (ast.Expr, error) {
	if p.cur.Kind == token.LET {
		at := p.cur.Pos
		p.next()
		pat, err := p.parsePattern()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.ASSIGN); err != nil {
			return nil, err
		}
		rhs, err := p.parseSimp()
		if err != nil {
			return nil, err
		}
		// A function literal bound directly by `let name = fn ...` gets its
		// own FnDef.Name set to the bound name, so the interpreter's
		// box-with-hole self-reference (makeClosure) and the CPS lowerer's
		// named-function rule both resolve the function's own recursive
		// calls without a separate identity alias.
		if vp, ok := pat.(*ast.VarPattern); ok {
			if fd, ok := rhs.(*ast.FnDefSimp); ok {
				fd.Fn.Name = vp.Name
			}
		}
		body, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return &ast.BindExpr{Pat: pat, Rhs: rhs, Body: body, At: at}, nil
	}

	s, err := p.parseSimp()
	if err != nil {
		return nil, err
	}
	return &ast.SimpExpr{Simp: s}, nil
}

// parsePattern parses a `let`/`match`-arm pattern: a bare variable
// (optionally `: Type`-annotated), an integer/bool literal, or a data
// constructor pattern `Ctor(sub, ...)` (spec §6).
func (p *Parser) parsePattern() (ast.Pattern, error) {
	at := p.cur.Pos
	switch p.cur.Kind {
	case token.INT:
		v, err := strconv.ParseInt(p.cur.Lexeme, 10, 64)
		if err != nil {
			return nil, &ParseError{Msg: "invalid integer literal", At: at}
		}
		p.next()
		return &ast.IntPattern{Value: v, At: at}, nil

	case token.TRUE:
		p.next()
		return &ast.BoolPattern{Value: true, At: at}, nil
	case token.FALSE:
		p.next()
		return &ast.BoolPattern{Value: false, At: at}, nil

	case token.IDENT:
		name := p.cur.Lexeme
		firstUpper := len(name) > 0 && name[0] >= 'A' && name[0] <= 'Z'
		if !firstUpper {
			p.next()
			ty := typesystem.Type(typesystem.NewTVar())
			if p.cur.Kind == token.COLON {
				p.next()
				t, err := p.parseTypeAnnotation()
				if err != nil {
					return nil, err
				}
				ty = t
			}
			return &ast.VarPattern{Name: ast.Name(name), Ty: ty, At: at}, nil
		}

		// An uppercase identifier starts a data-constructor pattern
		// `Ctor(sub, ...)`. The wildcard `_: Int` is not handled here: `_`
		// takes the lowercase branch above and becomes an ordinary
		// VarPattern named `_`.
		p.next()
		def := p.dataDefs[ast.Name(name)]
		var sub []ast.Pattern
		if p.cur.Kind == token.LPAREN {
			p.next()
			for p.cur.Kind != token.RPAREN {
				sp, err := p.parsePattern()
				if err != nil {
					return nil, err
				}
				sub = append(sub, sp)
				if p.cur.Kind == token.COMMA {
					p.next()
				}
			}
			if _, err := p.expect(token.RPAREN); err != nil {
				return nil, err
			}
		}
		owner := def
		if owner == nil {
			owner = p.lookupOwner(ast.Name(name))
		}
		return &ast.DataPattern{Def: owner, Ctor: ast.Name(name), Sub: sub, At: at}, nil

	default:
		return nil, &ParseError{Msg: fmt.Sprintf("unexpected token %s in pattern", p.cur.Kind), At: at}
	}
}

func (p *Parser) lookupOwner(ctor ast.Name) *ast.DataDef {
	for _, d := range p.dataDefs {
		if _, ok := d.Cons[ctor]; ok {
			return d
		}
	}
	return nil
}

func (p *Parser) parsePlainName() (ast.Name, token.Pos, error) {
	if p.cur.Kind == token.IDENT {
		n := ast.Name(p.cur.Lexeme)
		at := p.cur.Pos
		p.next()
		return n, at, nil
	}
	return "", token.Pos{}, &ParseError{Msg: fmt.Sprintf("expected identifier, got %s", p.cur.Kind), At: p.cur.Pos}
}

// parseSimp parses a simple expression at the lowest precedence: the
// entry point into the precedence-climbing infix-operator grammar.
func (p *Parser) parseSimp() (ast.Simp, error) {
	return p.parseBinary(1)
}

func (p *Parser) parseBinary(minPrec int) (ast.Simp, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.cur.Kind == token.OP {
		prec, ok := precedence[p.cur.Lexeme]
		if !ok || prec < minPrec {
			break
		}
		opTok := p.cur
		p.next()
		right, err := p.parseBinary(prec + 1)
		if err != nil {
			return nil, err
		}
		left = &ast.FnCallSimp{
			Callee: &ast.RefSimp{Name: ast.Name(opTok.Lexeme), At: opTok.Pos},
			Args:   []ast.Simp{left, right},
			At:     opTok.Pos,
		}
	}
	return left, nil
}

func (p *Parser) parseUnary() (ast.Simp, error) {
	if p.cur.Kind == token.OP && (p.cur.Lexeme == "~" || p.cur.Lexeme == "!") {
		opTok := p.cur
		p.next()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast.FnCallSimp{
			Callee: &ast.RefSimp{Name: ast.Name(opTok.Lexeme), At: opTok.Pos},
			Args:   []ast.Simp{operand},
			At:     opTok.Pos,
		}, nil
	}
	return p.parseCallOrPrimary()
}

// parseCallOrPrimary parses a primary expression followed by zero or more
// `(args...)` call suffixes, so `f(1)(2)` and `fact(n - 1)` both work
// (spec §6's FnCall applies to any callee-producing Simp).
func (p *Parser) parseCallOrPrimary() (ast.Simp, error) {
	prim, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for p.cur.Kind == token.LPAREN {
		at := p.cur.Pos
		p.next()
		var args []ast.Simp
		for p.cur.Kind != token.RPAREN {
			a, err := p.parseSimp()
			if err != nil {
				return nil, err
			}
			args = append(args, a)
			if p.cur.Kind == token.COMMA {
				p.next()
			}
		}
		if _, err := p.expect(token.RPAREN); err != nil {
			return nil, err
		}
		prim = &ast.FnCallSimp{Callee: prim, Args: args, At: at}
	}
	return prim, nil
}

func (p *Parser) parsePrimary() (ast.Simp, error) {
	at := p.cur.Pos
	switch p.cur.Kind {
	case token.INT:
		v, err := strconv.ParseInt(p.cur.Lexeme, 10, 64)
		if err != nil {
			return nil, &ParseError{Msg: "invalid integer literal", At: at}
		}
		p.next()
		return &ast.IntSimp{Value: v, At: at}, nil

	case token.TRUE:
		p.next()
		return &ast.BoolSimp{Value: true, At: at}, nil
	case token.FALSE:
		p.next()
		return &ast.BoolSimp{Value: false, At: at}, nil

	case token.LPAREN:
		p.next()
		if p.cur.Kind == token.RPAREN {
			p.next()
			return &ast.UnitSimp{At: at}, nil
		}
		inner, err := p.parseSimp()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RPAREN); err != nil {
			return nil, err
		}
		return inner, nil

	case token.LBRACE:
		p.next()
		body, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RBRACE); err != nil {
			return nil, err
		}
		return &ast.BlockSimp{Body: body, At: at}, nil

	case token.FN:
		return p.parseFn(at)

	case token.MATCH:
		return p.parseMatch(at)

	case token.IF:
		return p.parseIf(at)

	case token.OP:
		// A built-in operator used as a first-class value, e.g. the
		// callee of a higher-order call (spec §6: "built-in identifier-
		// like operators").
		name := ast.Name(p.cur.Lexeme)
		p.next()
		return &ast.RefSimp{Name: name, At: at}, nil

	case token.IDENT:
		name, pos, err := p.parsePlainName()
		if err != nil {
			return nil, err
		}
		if name[0] >= 'A' && name[0] <= 'Z' {
			var args []ast.Simp
			if p.cur.Kind == token.LPAREN {
				p.next()
				for p.cur.Kind != token.RPAREN {
					a, err := p.parseSimp()
					if err != nil {
						return nil, err
					}
					args = append(args, a)
					if p.cur.Kind == token.COMMA {
						p.next()
					}
				}
				if _, err := p.expect(token.RPAREN); err != nil {
					return nil, err
				}
			}
			return &ast.DataSimp{Ctor: name, Args: args, At: pos}, nil
		}
		return &ast.RefSimp{Name: name, At: pos}, nil

	default:
		return nil, &ParseError{Msg: fmt.Sprintf("unexpected token %s", p.cur.Kind), At: at}
	}
}

// parseFn parses `fn(arg[:type], ...)[:ret] = body` (spec §6).
func (p *Parser) parseFn(at token.Pos) (ast.Simp, error) {
	if _, err := p.expect(token.FN); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	var params []ast.Param
	for p.cur.Kind != token.RPAREN {
		nameTok, err := p.expect(token.IDENT)
		if err != nil {
			return nil, err
		}
		ty := typesystem.Type(typesystem.NewTVar())
		if p.cur.Kind == token.COLON {
			p.next()
			t, err := p.parseTypeAnnotation()
			if err != nil {
				return nil, err
			}
			ty = t
		}
		params = append(params, ast.Param{Name: ast.Name(nameTok.Lexeme), Ty: ty})
		if p.cur.Kind == token.COMMA {
			p.next()
		}
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	ret := typesystem.Type(typesystem.NewTVar())
	if p.cur.Kind == token.COLON {
		p.next()
		t, err := p.parseTypeAnnotation()
		if err != nil {
			return nil, err
		}
		ret = t
	}
	if _, err := p.expect(token.ASSIGN); err != nil {
		return nil, err
	}
	body, err := p.parseSimp()
	if err != nil {
		return nil, err
	}
	return &ast.FnDefSimp{Fn: &ast.FnDef{Args: params, Body: body, Ret: ret, At: at}, At: at}, nil
}

// parseMatch parses `match e | pat => rhs | ...` (spec §6).
func (p *Parser) parseMatch(at token.Pos) (ast.Simp, error) {
	if _, err := p.expect(token.MATCH); err != nil {
		return nil, err
	}
	scrutinee, err := p.parseSimp()
	if err != nil {
		return nil, err
	}
	var arms []ast.MatchArm
	for p.cur.Kind == token.PIPE {
		p.next()
		pat, err := p.parsePattern()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.FATARROW); err != nil {
			return nil, err
		}
		rhs, err := p.parseSimp()
		if err != nil {
			return nil, err
		}
		arms = append(arms, ast.MatchArm{Pat: pat, Rhs: rhs})
	}
	return &ast.MatchSimp{Scrutinee: scrutinee, Arms: arms, At: at}, nil
}

// parseIf desugars `if c then t else e` to a Bool match (spec §6).
func (p *Parser) parseIf(at token.Pos) (ast.Simp, error) {
	if _, err := p.expect(token.IF); err != nil {
		return nil, err
	}
	cond, err := p.parseSimp()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.THEN); err != nil {
		return nil, err
	}
	thenBranch, err := p.parseSimp()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.ELSE); err != nil {
		return nil, err
	}
	elseBranch, err := p.parseSimp()
	if err != nil {
		return nil, err
	}
	return &ast.MatchSimp{
		Scrutinee: cond,
		Arms: []ast.MatchArm{
			{Pat: &ast.BoolPattern{Value: true, At: at}, Rhs: thenBranch},
			{Pat: &ast.BoolPattern{Value: false, At: at}, Rhs: elseBranch},
		},
		At: at,
	}, nil
}
