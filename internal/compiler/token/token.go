package token

type TokenType string

const (
	// Single character tokens
	TokenLParen    TokenType = "LPAREN"    // (
	TokenRParen    TokenType = "RPAREN"    // )
	TokenLBrace    TokenType = "LBRACE"    // {
	TokenRBrace    TokenType = "RBRACE"    // }
	TokenAssign    TokenType = "ASSIGN"    // = (declaration initializer)
	TokenColon     TokenType = "COLON"     // : (type annotations use two of these)
	TokenSemicolon TokenType = "SEMICOLON" // ; (optional statement terminator)

	// Operators
	TokenPlus         TokenType = "PLUS"     // +
	TokenMinus        TokenType = "MINUS"    // -
	TokenAsterisk     TokenType = "ASTERISK" // *
	TokenSlash        TokenType = "SLASH"    // /
	TokenGreater      TokenType = "GT"       // >
	TokenLess         TokenType = "LT"       // <
	TokenGreaterEqual TokenType = "GE"       // >=
	TokenLessEqual    TokenType = "LE"       // <=
	TokenEqual        TokenType = "EQ"       // ==
	TokenAnd          TokenType = "AND"      // and, &&
	TokenOr           TokenType = "OR"       // or, ||

	// Keywords
	TokenOutput TokenType = "OUTPUT" // output
	TokenLet    TokenType = "LET"    // let
	TokenLoop   TokenType = "LOOP"   // loop
	TokenBreak  TokenType = "BREAK"  // break
	TokenTrue   TokenType = "TRUE"   // true
	TokenFalse  TokenType = "FALSE"  // false
	TokenIf     TokenType = "IF"     // if (reserved)
	TokenElse   TokenType = "ELSE"   // else (reserved)

	// Type names
	TokenF32  TokenType = "F32"  // f32
	TokenStr  TokenType = "STR"  // str
	TokenBool TokenType = "BOOL" // bool

	// Literals & Identifiers
	TokenString  TokenType = "STRING"  // "..."
	TokenInt     TokenType = "INT"     // 43
	TokenDecimal TokenType = "DECIMAL" // 4.3
	TokenIdent   TokenType = "IDENT"   // Identifier (e.g. variable name)

	// Special
	TokenEOF     TokenType = "EOF"
	TokenIllegal TokenType = "ILLEGAL"
)

type Token struct {
	Type    TokenType
	Literal string
	Line    int
	Column  int
}

// IsTypeKeyword reports whether the token names a value type (f32, str, bool).
func (t Token) IsTypeKeyword() bool {
	return t.Type == TokenF32 || t.Type == TokenStr || t.Type == TokenBool
}

// Describe renders the token for diagnostics: `'let'`, `identifier 'x'`, `end of input`.
func (t Token) Describe() string {
	switch t.Type {
	case TokenEOF:
		return "end of input"
	case TokenIdent:
		return "identifier '" + t.Literal + "'"
	case TokenString:
		return "string \"" + t.Literal + "\""
	case TokenInt, TokenDecimal:
		return "number " + t.Literal
	}
	return "'" + t.Literal + "'"
}
