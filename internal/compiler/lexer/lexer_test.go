package lexer

import (
	"testing"

	"github.com/palladium-lang/palladium/internal/compiler/diag"
	"github.com/palladium-lang/palladium/internal/compiler/token"
)

func TestTokenize(t *testing.T) {
	input := `let x :: f32 = 1.5 * (2 + 3);
// comment line
output(x >= 2 and "hi" == "hi" || false)
loop { break }`

	tests := []struct {
		expectedType    token.TokenType
		expectedLiteral string
		expectedLine    int
	}{
		{token.TokenLet, "let", 1},
		{token.TokenIdent, "x", 1},
		{token.TokenColon, ":", 1},
		{token.TokenColon, ":", 1},
		{token.TokenF32, "f32", 1},
		{token.TokenAssign, "=", 1},
		{token.TokenDecimal, "1.5", 1},
		{token.TokenAsterisk, "*", 1},
		{token.TokenLParen, "(", 1},
		{token.TokenInt, "2", 1},
		{token.TokenPlus, "+", 1},
		{token.TokenInt, "3", 1},
		{token.TokenRParen, ")", 1},
		{token.TokenSemicolon, ";", 1},
		{token.TokenOutput, "output", 3},
		{token.TokenLParen, "(", 3},
		{token.TokenIdent, "x", 3},
		{token.TokenGreaterEqual, ">=", 3},
		{token.TokenInt, "2", 3},
		{token.TokenAnd, "and", 3},
		{token.TokenString, "hi", 3},
		{token.TokenEqual, "==", 3},
		{token.TokenString, "hi", 3},
		{token.TokenOr, "||", 3},
		{token.TokenFalse, "false", 3},
		{token.TokenRParen, ")", 3},
		{token.TokenLoop, "loop", 4},
		{token.TokenLBrace, "{", 4},
		{token.TokenBreak, "break", 4},
		{token.TokenRBrace, "}", 4},
		{token.TokenEOF, "", 4},
	}

	toks, err := Tokenize(input)
	if err != nil {
		t.Fatalf("Tokenize() error: %v", err)
	}
	if len(toks) != len(tests) {
		t.Fatalf("got %d tokens, want %d: %v", len(toks), len(tests), toks)
	}
	for i, tt := range tests {
		tok := toks[i]
		if tok.Type != tt.expectedType {
			t.Errorf("tests[%d] - type wrong. expected=%q, got=%q", i, tt.expectedType, tok.Type)
		}
		if tok.Literal != tt.expectedLiteral {
			t.Errorf("tests[%d] - literal wrong. expected=%q, got=%q", i, tt.expectedLiteral, tok.Literal)
		}
		if tok.Line != tt.expectedLine {
			t.Errorf("tests[%d] - line wrong. expected=%d, got=%d", i, tt.expectedLine, tok.Line)
		}
	}
}

func TestColumns(t *testing.T) {
	toks, err := Tokenize("output(1)\n  let")
	if err != nil {
		t.Fatalf("Tokenize() error: %v", err)
	}
	if toks[0].Column != 1 {
		t.Errorf("output column = %d, want 1", toks[0].Column)
	}
	if toks[2].Column != 8 {
		t.Errorf("'1' column = %d, want 8", toks[2].Column)
	}
	if toks[4].Line != 2 || toks[4].Column != 3 {
		t.Errorf("let at %d:%d, want 2:3", toks[4].Line, toks[4].Column)
	}
}

func TestSingleEOF(t *testing.T) {
	for _, input := range []string{"", "   \n\n", "// only a comment"} {
		toks, err := Tokenize(input)
		if err != nil {
			t.Fatalf("Tokenize(%q) error: %v", input, err)
		}
		if len(toks) != 1 || toks[0].Type != token.TokenEOF {
			t.Errorf("Tokenize(%q) = %v, want a single EOF", input, toks)
		}
	}
}

func TestNumberFollowedByDot(t *testing.T) {
	toks, err := Tokenize("1.")
	if err == nil {
		t.Fatalf("expected error for stray '.', got %v", toks)
	}
	if !diag.IsKind(err, diag.IllegalCharacter) {
		t.Errorf("error = %v, want illegal character", err)
	}
}

func TestIllegalInput(t *testing.T) {
	tests := []struct {
		input string
		line  int
	}{
		{"output(1) @", 1},
		{"let a :: bool = true & false", 1},
		{"\n\nlet a :: bool = true | false", 3},
		{`output("unterminated)`, 1},
	}
	for _, tt := range tests {
		_, err := Tokenize(tt.input)
		if !diag.IsKind(err, diag.IllegalCharacter) {
			t.Errorf("Tokenize(%q) error = %v, want illegal character", tt.input, err)
			continue
		}
		if de := err.(*diag.Error); de.Line != tt.line {
			t.Errorf("Tokenize(%q) line = %d, want %d", tt.input, de.Line, tt.line)
		}
	}
}
