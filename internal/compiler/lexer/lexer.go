package lexer

import (
	"github.com/palladium-lang/palladium/internal/compiler/diag"
	"github.com/palladium-lang/palladium/internal/compiler/token"
)

type Lexer struct {
	input        string
	position     int  // current char index
	readPosition int  // next char index
	ch           byte // current char

	line   int // current line number (1-indexed)
	column int // current column number (1-indexed)
}

func NewLexer(input string) *Lexer {
	l := &Lexer{input: input, line: 1, column: 0}
	l.readChar()
	return l
}

// Tokenize lexes the whole input. The returned slice always ends with
// exactly one EOF token. The first illegal character aborts lexing.
func Tokenize(input string) ([]token.Token, error) {
	l := NewLexer(input)
	var toks []token.Token
	for {
		tok := l.NextToken()
		switch tok.Type {
		case token.TokenIllegal:
			if tok.Literal == "\"" {
				return nil, diag.New(diag.IllegalCharacter, tok, "unterminated string literal")
			}
			return nil, diag.New(diag.IllegalCharacter, tok, "unexpected character %q", tok.Literal)
		case token.TokenEOF:
			return append(toks, tok), nil
		}
		toks = append(toks, tok)
	}
}

// readChar advances the lexer's position and updates the current character
// It handles EOF and tracks line/column numbers correctly
func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0 // ASCII NULL (EOF)
	} else {
		l.ch = l.input[l.readPosition]
	}

	l.position = l.readPosition
	l.readPosition++

	if l.ch == '\n' {
		l.line++
		l.column = 0
	} else if l.ch != 0 {
		l.column++
	}
}

// Returns the next character without consuming it
func (l *Lexer) peekChar() byte {
	if l.readPosition >= len(l.input) {
		return 0
	}
	return l.input[l.readPosition]
}

func (l *Lexer) NextToken() token.Token {
	l.skipWhitespace()

	startLine := l.line
	startCol := l.column

	switch l.ch {
	case '/':
		if l.peekChar() == '/' {
			l.readComment()
			return l.NextToken()
		}
		return l.single(token.TokenSlash, startLine, startCol)
	case '=':
		if l.peekChar() == '=' {
			return l.double(token.TokenEqual, startLine, startCol)
		}
		return l.single(token.TokenAssign, startLine, startCol)
	case '>':
		if l.peekChar() == '=' {
			return l.double(token.TokenGreaterEqual, startLine, startCol)
		}
		return l.single(token.TokenGreater, startLine, startCol)
	case '<':
		if l.peekChar() == '=' {
			return l.double(token.TokenLessEqual, startLine, startCol)
		}
		return l.single(token.TokenLess, startLine, startCol)
	case '&':
		if l.peekChar() == '&' {
			return l.double(token.TokenAnd, startLine, startCol)
		}
		return l.single(token.TokenIllegal, startLine, startCol)
	case '|':
		if l.peekChar() == '|' {
			return l.double(token.TokenOr, startLine, startCol)
		}
		return l.single(token.TokenIllegal, startLine, startCol)
	case '(':
		return l.single(token.TokenLParen, startLine, startCol)
	case ')':
		return l.single(token.TokenRParen, startLine, startCol)
	case '{':
		return l.single(token.TokenLBrace, startLine, startCol)
	case '}':
		return l.single(token.TokenRBrace, startLine, startCol)
	case '+':
		return l.single(token.TokenPlus, startLine, startCol)
	case '-':
		return l.single(token.TokenMinus, startLine, startCol)
	case '*':
		return l.single(token.TokenAsterisk, startLine, startCol)
	case ':':
		// "::" stays two COLON tokens; the parser consumes them one by one.
		return l.single(token.TokenColon, startLine, startCol)
	case ';':
		return l.single(token.TokenSemicolon, startLine, startCol)
	case '"':
		return l.readString(startLine, startCol)
	case 0:
		// Do NOT call l.readChar() here
		return l.newToken(token.TokenEOF, "", startLine, startCol)
	default:
		if isLetter(l.ch) {
			ident := l.readIdentifier()
			return l.newToken(lookupIdent(ident), ident, startLine, startCol)
		} else if isDigit(l.ch) {
			return l.readNumber(startLine, startCol)
		}
		return l.single(token.TokenIllegal, startLine, startCol)
	}
}

// newToken is a helper to create a token.Token struct
func (l *Lexer) newToken(tokenType token.TokenType, literal string, line, col int) token.Token {
	return token.Token{Type: tokenType, Literal: literal, Line: line, Column: col}
}

func (l *Lexer) single(tokenType token.TokenType, line, col int) token.Token {
	tok := l.newToken(tokenType, string(l.ch), line, col)
	l.readChar()
	return tok
}

func (l *Lexer) double(tokenType token.TokenType, line, col int) token.Token {
	first := l.ch
	l.readChar()
	tok := l.newToken(tokenType, string(first)+string(l.ch), line, col)
	l.readChar()
	return tok
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\n' || l.ch == '\t' || l.ch == '\r' {
		l.readChar()
	}
}

func (l *Lexer) readComment() {
	for l.ch != '\n' && l.ch != 0 {
		l.readChar()
	}
}

func (l *Lexer) readIdentifier() string {
	start := l.position
	for isLetter(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	return l.input[start:l.position]
}

// readString returns the literal without its quotes. Escapes are not
// interpreted; an unterminated string yields an ILLEGAL `"` token.
func (l *Lexer) readString(startLine, startCol int) token.Token {
	start := l.position + 1 // Skip opening "
	l.readChar()            // Consume opening "

	for l.ch != '"' && l.ch != 0 {
		l.readChar()
	}

	if l.ch == 0 {
		return l.newToken(token.TokenIllegal, "\"", startLine, startCol)
	}

	lit := l.input[start:l.position]
	l.readChar() // Consume closing "
	return l.newToken(token.TokenString, lit, startLine, startCol)
}

// readNumber lexes `123` as INT and `1.5` as DECIMAL.
func (l *Lexer) readNumber(startLine, startCol int) token.Token {
	start := l.position
	for isDigit(l.ch) {
		l.readChar()
	}
	if l.ch != '.' || !isDigit(l.peekChar()) {
		return l.newToken(token.TokenInt, l.input[start:l.position], startLine, startCol)
	}
	l.readChar() // Consume '.'
	for isDigit(l.ch) {
		l.readChar()
	}
	return l.newToken(token.TokenDecimal, l.input[start:l.position], startLine, startCol)
}

func isLetter(ch byte) bool {
	return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z') || ch == '_'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

// keywords maps identifier strings to their corresponding token types.
var keywords = map[string]token.TokenType{
	"output": token.TokenOutput,
	"let":    token.TokenLet,
	"loop":   token.TokenLoop,
	"break":  token.TokenBreak,
	"true":   token.TokenTrue,
	"false":  token.TokenFalse,
	"and":    token.TokenAnd,
	"or":     token.TokenOr,
	"if":     token.TokenIf,
	"else":   token.TokenElse,
	"f32":    token.TokenF32,
	"str":    token.TokenStr,
	"bool":   token.TokenBool,
}

// lookupIdent checks if an identifier is a keyword, returning the keyword's
// token type or token.TokenIdent if it's not a keyword.
func lookupIdent(ident string) token.TokenType {
	if tokType, ok := keywords[ident]; ok {
		return tokType
	}
	return token.TokenIdent
}
