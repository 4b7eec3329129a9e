package emitter

import (
	"fmt"
	"strings"

	"github.com/palladium-lang/palladium/internal/compiler/ast"
	"github.com/palladium-lang/palladium/internal/compiler/lib"
	"github.com/palladium-lang/palladium/internal/compiler/symbols"
	"github.com/palladium-lang/palladium/internal/compiler/token"
)

// The emitter trusts its input: the parser has already resolved every name
// and type. An unknown node kind is a bug upstream and panics.

const indentUnit = "    "

// Operator precedence, lowest first. Zero is the context of a whole
// expression, so nothing at the root is ever wrapped. Java ranks == below
// the relational operators; they share one level here so the output also
// reads back the same under Palladium's single comparison level.
const (
	precNone = iota
	precOr
	precAnd
	precComparison
	precAdditive
	precMultiplicative
)

type javaOperator struct {
	symbol string
	prec   int
}

var javaOperators = map[token.TokenType]javaOperator{
	token.TokenOr:           {"||", precOr},
	token.TokenAnd:          {"&&", precAnd},
	token.TokenEqual:        {"==", precComparison},
	token.TokenGreater:      {">", precComparison},
	token.TokenLess:         {"<", precComparison},
	token.TokenGreaterEqual: {">=", precComparison},
	token.TokenLessEqual:    {"<=", precComparison},
	token.TokenPlus:         {"+", precAdditive},
	token.TokenMinus:        {"-", precAdditive},
	token.TokenAsterisk:     {"*", precMultiplicative},
	token.TokenSlash:        {"/", precMultiplicative},
}

// javaReserved holds the Java keywords and literals a Palladium identifier
// can spell, plus the names the generated main method itself refers to.
// Such names get a `$` suffix, which no Palladium identifier contains.
var javaReserved = map[string]bool{
	"_": true, "abstract": true, "assert": true, "boolean": true, "byte": true,
	"case": true, "catch": true, "char": true, "class": true, "const": true,
	"continue": true, "default": true, "do": true, "double": true, "enum": true,
	"extends": true, "final": true, "finally": true, "float": true, "for": true,
	"goto": true, "implements": true, "import": true, "instanceof": true,
	"int": true, "interface": true, "long": true, "native": true, "new": true,
	"null": true, "package": true, "private": true, "protected": true,
	"public": true, "return": true, "short": true, "static": true,
	"strictfp": true, "super": true, "switch": true, "synchronized": true,
	"this": true, "throw": true, "throws": true, "transient": true, "try": true,
	"void": true, "volatile": true, "while": true,

	"args": true, "Boolean": true, "String": true, "System": true,
}

var javaTypes = map[symbols.ValueType]string{
	symbols.Float:   "float",
	symbols.String:  "String",
	symbols.Boolean: "boolean",
}

type Emitter struct {
	builder strings.Builder
	indent  int
}

func NewEmitter() *Emitter {
	return &Emitter{}
}

// Emit renders program as a Java compilation unit declaring className.
func (e *Emitter) Emit(program *ast.Main, className string) string {
	e.builder.Reset()
	e.indent = 0

	e.line("public class " + className + " {")
	e.indent++
	e.builder.WriteString(strings.Repeat(indentUnit, e.indent))
	e.builder.WriteString("public static void main(String[] args) ")
	e.emitBlock(program.Body)
	e.indent--
	e.line("}")
	return e.builder.String()
}

// line writes s on its own line at the current indentation.
func (e *Emitter) line(s string) {
	e.builder.WriteString(strings.Repeat(indentUnit, e.indent))
	e.builder.WriteString(s)
	e.builder.WriteString("\n")
}

// emitBlock writes a block whose opening brace continues the current line.
func (e *Emitter) emitBlock(b *ast.Block) {
	e.builder.WriteString("{\n")
	e.indent++
	for i, stmt := range b.Statements {
		// javac rejects statements after a bare break as unreachable.
		if _, ok := stmt.(*ast.Break); ok && i < len(b.Statements)-1 {
			e.line("if (true) break;")
			continue
		}
		e.emitStatement(stmt)
	}
	e.indent--
	e.line("}")
}

func (e *Emitter) emitStatement(stmt ast.Statement) {
	switch s := stmt.(type) {
	case *ast.Let:
		e.line(fmt.Sprintf("%s %s = %s;", JavaType(s.Declared), JavaName(s.Name), Expression(s.Value)))
	case *ast.Output:
		e.line("System.out.println(" + Expression(s.Value) + ");")
	case *ast.Loop:
		e.builder.WriteString(strings.Repeat(indentUnit, e.indent))
		// A constant condition would make code after a loop without a
		// break unreachable to javac.
		e.builder.WriteString("while (Boolean.TRUE) ")
		e.emitBlock(s.Body)
	case *ast.Break:
		e.line("break;")
	case *ast.Block:
		e.builder.WriteString(strings.Repeat(indentUnit, e.indent))
		e.emitBlock(s)
	default:
		panic(fmt.Sprintf("emitter: unexpected statement %T", stmt))
	}
}

// JavaType maps a value type to its Java type keyword.
func JavaType(vt symbols.ValueType) string {
	t, ok := javaTypes[vt]
	if !ok {
		panic(fmt.Sprintf("emitter: unexpected value type %d", int(vt)))
	}
	return t
}

// JavaName maps a Palladium identifier to a Java identifier that cannot
// clash with a keyword or with the names used by the generated class.
func JavaName(name string) string {
	if javaReserved[name] {
		return name + "$"
	}
	return name
}

// Expression renders expr with the minimum parentheses Java needs.
func Expression(expr ast.Expression) string {
	return renderExpression(expr, precNone)
}

// renderExpression renders expr in a context that binds at least as
// tightly as ctx. A binary node whose own precedence is lower wraps itself.
func renderExpression(expr ast.Expression, ctx int) string {
	switch n := expr.(type) {
	case *ast.Literal:
		return renderLiteral(n)
	case *ast.Variable:
		return JavaName(n.Name)
	case *ast.Binary:
		op, ok := javaOperators[n.Operator()]
		if !ok {
			panic(fmt.Sprintf("emitter: unexpected operator %q", n.Token.Literal))
		}
		// Left associative: the right operand needs a strictly tighter
		// context so `a - (b - c)` keeps its grouping.
		lhs := renderExpression(n.Left, op.prec)
		rhs := renderExpression(n.Right, op.prec+1)
		out := lhs + " " + op.symbol + " " + rhs
		if op.prec < ctx {
			return "(" + out + ")"
		}
		return out
	default:
		panic(fmt.Sprintf("emitter: unexpected expression %T", expr))
	}
}

func renderLiteral(l *ast.Literal) string {
	switch l.Token.Type {
	case token.TokenInt, token.TokenDecimal:
		return lib.FloatLiteral(l.Token.Literal)
	case token.TokenString:
		return lib.QuoteString(l.Token.Literal)
	case token.TokenTrue:
		return "true"
	case token.TokenFalse:
		return "false"
	}
	panic(fmt.Sprintf("emitter: unexpected literal %s", l.Token.Type))
}
