package ast

import (
	"bytes"
	"strings"

	"github.com/palladium-lang/palladium/internal/compiler/diag"
	"github.com/palladium-lang/palladium/internal/compiler/symbols"
	"github.com/palladium-lang/palladium/internal/compiler/token"
)

// --- Interfaces ---
type Node interface {
	TokenLiteral() string
	String() string
}

type Statement interface {
	Node
	statementNode()
}

// Expression is implemented only by *Literal, *Variable and *Binary.
// The value type is fixed when the node is constructed.
type Expression interface {
	Node
	expressionNode()
	Type() symbols.ValueType
}

// --- Program ---

// Main is the program root. It always wraps exactly one block.
type Main struct {
	Body *Block
}

func NewMain() *Main {
	return &Main{Body: &Block{}}
}

func (m *Main) TokenLiteral() string { return "" }

// String for Main renders its top-level statements one per line.
func (m *Main) String() string {
	var out bytes.Buffer
	for _, s := range m.Body.Statements {
		out.WriteString(s.String())
		out.WriteString("\n")
	}
	return out.String()
}

// --- Statements ---

// Let -> let x :: f32 = 1 + 2
type Let struct {
	Token     token.Token // let
	Name      string
	TypeToken token.Token // f32, str or bool
	Declared  symbols.ValueType
	Value     Expression
}

func (ls *Let) statementNode()       {}
func (ls *Let) TokenLiteral() string { return ls.Token.Literal }
func (ls *Let) String() string {
	return "let " + ls.Name + " :: " + ls.TypeToken.Literal + " = " + ls.Value.String()
}

// Output -> output(x)
type Output struct {
	Token token.Token // output
	Value Expression
}

func (o *Output) statementNode()       {}
func (o *Output) TokenLiteral() string { return o.Token.Literal }
func (o *Output) String() string {
	return o.TokenLiteral() + "(" + o.Value.String() + ")"
}

type Block struct {
	Token      token.Token // {
	Statements []Statement
}

func (bs *Block) statementNode()       {}
func (bs *Block) TokenLiteral() string { return bs.Token.Literal }
func (bs *Block) String() string {
	parts := make([]string, 0, len(bs.Statements))
	for _, s := range bs.Statements {
		parts = append(parts, s.String())
	}
	if len(parts) == 0 {
		return "{ }"
	}
	return "{ " + strings.Join(parts, "; ") + " }"
}

// Loop -> loop { ... }, repeated until a break.
type Loop struct {
	Token token.Token // loop
	Body  *Block
}

func (lp *Loop) statementNode()       {}
func (lp *Loop) TokenLiteral() string { return lp.Token.Literal }
func (lp *Loop) String() string       { return "loop " + lp.Body.String() }

type Break struct {
	Token token.Token // break
}

func (bs *Break) statementNode()       {}
func (bs *Break) TokenLiteral() string { return bs.Token.Literal }
func (bs *Break) String() string       { return "break" }

// --- Expressions ---

// Literal is a number, string or boolean constant.
type Literal struct {
	Token     token.Token
	valueType symbols.ValueType
}

// NewLiteral types a literal token. It returns nil for tokens that are not
// literals.
func NewLiteral(tok token.Token) *Literal {
	var vt symbols.ValueType
	switch tok.Type {
	case token.TokenInt, token.TokenDecimal:
		vt = symbols.Float
	case token.TokenString:
		vt = symbols.String
	case token.TokenTrue, token.TokenFalse:
		vt = symbols.Boolean
	default:
		return nil
	}
	return &Literal{Token: tok, valueType: vt}
}

func (l *Literal) expressionNode()         {}
func (l *Literal) TokenLiteral() string    { return l.Token.Literal }
func (l *Literal) Type() symbols.ValueType { return l.valueType }
func (l *Literal) String() string {
	if l.Token.Type == token.TokenString {
		return `"` + l.Token.Literal + `"`
	}
	return l.Token.Literal
}

// Variable is a reference to a binding that was resolved while parsing.
type Variable struct {
	Token     token.Token
	Name      string
	valueType symbols.ValueType
}

func NewVariable(tok token.Token, vt symbols.ValueType) *Variable {
	return &Variable{Token: tok, Name: tok.Literal, valueType: vt}
}

func (v *Variable) expressionNode()         {}
func (v *Variable) TokenLiteral() string    { return v.Token.Literal }
func (v *Variable) Type() symbols.ValueType { return v.valueType }
func (v *Variable) String() string          { return v.Name }

// Binary is `Left Operator Right`. Its value type is derived from the
// operator and operand types by NewBinary and never set directly.
type Binary struct {
	Token     token.Token // the operator
	Left      Expression
	Right     Expression
	valueType symbols.ValueType
}

// NewBinary type-checks the operands of op and builds the node:
// arithmetic (+ - * /) is String if either side is String, else Float;
// comparisons (> < >= <=) need Float on both sides; equality (==) takes any
// operands; logical (and, or) needs Boolean on both sides. Every operator
// other than arithmetic yields Boolean.
func NewBinary(op token.Token, left, right Expression) (*Binary, error) {
	lt, rt := left.Type(), right.Type()
	var vt symbols.ValueType

	switch op.Type {
	case token.TokenPlus, token.TokenMinus, token.TokenAsterisk, token.TokenSlash:
		vt = symbols.Float
		if lt == symbols.String || rt == symbols.String {
			vt = symbols.String
		}
	case token.TokenGreater, token.TokenLess, token.TokenGreaterEqual, token.TokenLessEqual:
		if lt != symbols.Float || rt != symbols.Float {
			return nil, diag.New(diag.TypeMismatch, op,
				"operator '%s' expects f32 operands, got %s and %s", op.Literal, lt, rt)
		}
		vt = symbols.Boolean
	case token.TokenEqual:
		vt = symbols.Boolean
	case token.TokenAnd, token.TokenOr:
		if lt != symbols.Boolean {
			return nil, diag.New(diag.TypeMismatch, op,
				"expected bool expression on left side of '%s', got %s", op.Literal, lt)
		}
		if rt != symbols.Boolean {
			return nil, diag.New(diag.TypeMismatch, op,
				"expected bool expression on right side of '%s', got %s", op.Literal, rt)
		}
		vt = symbols.Boolean
	default:
		return nil, diag.New(diag.UnexpectedToken, op, "%s is not a binary operator", op.Describe())
	}

	return &Binary{Token: op, Left: left, Right: right, valueType: vt}, nil
}

func (be *Binary) expressionNode()         {}
func (be *Binary) TokenLiteral() string    { return be.Token.Literal }
func (be *Binary) Type() symbols.ValueType { return be.valueType }

// Operator is the operator's token type.
func (be *Binary) Operator() token.TokenType { return be.Token.Type }

// String fully parenthesizes the expression, which makes operator
// structure visible in tree dumps and tests.
func (be *Binary) String() string {
	var out bytes.Buffer
	out.WriteString("(")
	out.WriteString(be.Left.String())
	out.WriteString(" " + be.Token.Literal + " ")
	out.WriteString(be.Right.String())
	out.WriteString(")")
	return out.String()
}
