package lexer_test

import (
	"testing"

	"github.com/sagarreddypatil/language/internal/lexer"
	"github.com/sagarreddypatil/language/internal/token"
)

func kinds(src string) []token.Kind {
	l := lexer.New(src)
	var out []token.Kind
	for {
		tok := l.NextToken()
		out = append(out, tok.Kind)
		if tok.Kind == token.EOF {
			return out
		}
	}
}

func TestLexerKeywordsAndIdents(t *testing.T) {
	got := kinds("let x = fn match if then else data")
	want := []token.Kind{
		token.LET, token.IDENT, token.ASSIGN, token.FN, token.MATCH,
		token.IF, token.THEN, token.ELSE, token.DATA, token.EOF,
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d tokens, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}

func TestLexerFusesNegativeLiteralButNotSubtraction(t *testing.T) {
	l := lexer.New("-1")
	tok := l.NextToken()
	if tok.Kind != token.INT || tok.Lexeme != "-1" {
		t.Fatalf("expected fused negative INT literal, got %s %q", tok.Kind, tok.Lexeme)
	}

	l2 := lexer.New("n - 1")
	first := l2.NextToken()
	second := l2.NextToken()
	third := l2.NextToken()
	if first.Kind != token.IDENT || second.Kind != token.OP || second.Lexeme != "-" || third.Kind != token.INT {
		t.Fatalf("expected IDENT, OP(-), INT; got %s %s %s", first.Kind, second.Kind, third.Kind)
	}

	// Same without surrounding whitespace: a '-' right after an
	// expression-ending token (IDENT here) is still subtraction, not a
	// fused negative literal, so `f(n-1)` lexes as a call with one
	// argument rather than two.
	l3 := lexer.New("n-1")
	a, b, c := l3.NextToken(), l3.NextToken(), l3.NextToken()
	if a.Kind != token.IDENT || b.Kind != token.OP || b.Lexeme != "-" || c.Kind != token.INT || c.Lexeme != "1" {
		t.Fatalf("expected IDENT, OP(-), INT(1); got %s(%q) %s(%q) %s(%q)", a.Kind, a.Lexeme, b.Kind, b.Lexeme, c.Kind, c.Lexeme)
	}

	// A '-' after a '(' (an expression-start position, with no preceding
	// value) still fuses, e.g. a call argument.
	l4 := lexer.New("f(-1)")
	want := []token.Kind{token.IDENT, token.LPAREN, token.INT, token.RPAREN, token.EOF}
	for i, k := range want {
		if got := l4.NextToken().Kind; got != k {
			t.Fatalf("token %d: expected %s, got %s", i, k, got)
		}
	}
}

func TestLexerTwoCharOperators(t *testing.T) {
	cases := []struct {
		src  string
		kind token.Kind
	}{
		{"=>", token.FATARROW},
		{"->", token.ARROW},
		{"==", token.OP},
		{"!=", token.OP},
		{"<=", token.OP},
		{">=", token.OP},
		{"&&", token.OP},
		{"||", token.OP},
	}
	for _, c := range cases {
		l := lexer.New(c.src)
		tok := l.NextToken()
		if tok.Kind != c.kind {
			t.Fatalf("%q: expected %s, got %s", c.src, c.kind, tok.Kind)
		}
	}
}

func TestLexerSkipsCommentsAndWhitespace(t *testing.T) {
	got := kinds("// a line comment\n/* a block comment */ 42")
	want := []token.Kind{token.INT, token.EOF}
	if len(got) != len(want) || got[0] != want[0] {
		t.Fatalf("expected [INT EOF], got %v", got)
	}
}
