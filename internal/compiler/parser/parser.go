package parser

import (
	"errors"
	"time"

	"github.com/palladium-lang/palladium/internal/compiler/ast"
	"github.com/palladium-lang/palladium/internal/compiler/diag"
	"github.com/palladium-lang/palladium/internal/compiler/scope"
	"github.com/palladium-lang/palladium/internal/compiler/symbols"
	"github.com/palladium-lang/palladium/internal/compiler/token"
)

// Binding powers for Pratt parsing, lowest first. Every infix operator is
// left associative: its right operand is parsed at left power + 1.
const (
	bpLowest         = 0
	bpOr             = 1
	bpAnd            = 3
	bpComparison     = 5
	bpAdditive       = 7
	bpMultiplicative = 9
)

var bindingPowers = map[token.TokenType]int{
	token.TokenOr:           bpOr,
	token.TokenAnd:          bpAnd,
	token.TokenGreater:      bpComparison,
	token.TokenLess:         bpComparison,
	token.TokenGreaterEqual: bpComparison,
	token.TokenLessEqual:    bpComparison,
	token.TokenEqual:        bpComparison,
	token.TokenPlus:         bpAdditive,
	token.TokenMinus:        bpAdditive,
	token.TokenAsterisk:     bpMultiplicative,
	token.TokenSlash:        bpMultiplicative,
}

// infixBindingPower returns the (left, right) binding powers of an infix
// operator. ok is false for tokens that are not infix operators.
func infixBindingPower(tt token.TokenType) (lbp, rbp int, ok bool) {
	bp, ok := bindingPowers[tt]
	if !ok {
		return 0, 0, false
	}
	return bp, bp + 1, true
}

var typeKeywords = map[token.TokenType]symbols.ValueType{
	token.TokenF32:  symbols.Float,
	token.TokenStr:  symbols.String,
	token.TokenBool: symbols.Boolean,
}

type Parser struct {
	tokens    []token.Token
	index     int
	scopes    *scope.Table
	loopDepth int

	parseTime time.Duration
}

// NewParser reads from a materialized token sequence. If the sequence does
// not end with EOF one is appended, so peek never runs off the end.
func NewParser(tokens []token.Token) *Parser {
	if n := len(tokens); n == 0 || tokens[n-1].Type != token.TokenEOF {
		line := 1
		if n > 0 {
			line = tokens[n-1].Line
		}
		tokens = append(tokens[:n:n], token.Token{Type: token.TokenEOF, Line: line})
	}
	return &Parser{
		tokens: tokens,
		scopes: scope.NewTable(),
	}
}

// ParseTime is how long the last ParseProgram call took.
func (p *Parser) ParseTime() time.Duration {
	return p.parseTime
}

// --- Token Handling ---

// peek returns the current token, clamped to the trailing EOF.
func (p *Parser) peek() token.Token {
	if p.index >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[p.index]
}

func (p *Parser) consume() token.Token {
	tok := p.peek()
	if p.index < len(p.tokens) {
		p.index++
	}
	return tok
}

// expect consumes a token of type tt or fails with kind.
func (p *Parser) expect(tt token.TokenType, kind diag.Kind, what string) (token.Token, error) {
	tok := p.peek()
	if tok.Type != tt {
		return tok, diag.New(kind, tok, "expected %s, found %s", what, tok.Describe())
	}
	return p.consume(), nil
}

// --- Program Parsing ---

// ParseProgram parses the whole token sequence into a typed tree. It stops
// at the first error and returns no tree in that case.
func (p *Parser) ParseProgram() (*ast.Main, error) {
	start := time.Now()
	defer func() { p.parseTime = time.Since(start) }()

	program := ast.NewMain()
	program.Body.Token = p.peek()
	for p.peek().Type != token.TokenEOF {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		program.Body.Statements = append(program.Body.Statements, stmt)
	}
	return program, nil
}

// --- Statements ---

func (p *Parser) parseStatement() (ast.Statement, error) {
	var (
		stmt ast.Statement
		err  error
	)
	switch tok := p.peek(); tok.Type {
	case token.TokenLet:
		stmt, err = p.parseLetStatement()
	case token.TokenOutput:
		stmt, err = p.parseOutputStatement()
	case token.TokenLoop:
		stmt, err = p.parseLoopStatement()
	case token.TokenBreak:
		if p.loopDepth == 0 {
			return nil, diag.New(diag.UnexpectedToken, tok, "'break' outside of a loop")
		}
		stmt = &ast.Break{Token: p.consume()}
	default:
		return nil, diag.New(diag.UnexpectedToken, tok, "expected statement, found %s", tok.Describe())
	}
	if err != nil {
		return nil, err
	}

	if p.peek().Type == token.TokenSemicolon {
		p.consume()
	}
	return stmt, nil
}

// parseLetStatement parses `let <name> :: <type> = <expr>`. The initializer
// is typed before the name is declared, so it cannot refer to itself.
func (p *Parser) parseLetStatement() (ast.Statement, error) {
	letTok := p.consume()

	nameTok, err := p.expect(token.TokenIdent, diag.UnexpectedToken, "identifier after 'let'")
	if err != nil {
		return nil, err
	}

	for range 2 {
		if _, err := p.expect(token.TokenColon, diag.UnexpectedToken, "'::' followed by a type"); err != nil {
			return nil, err
		}
	}

	typeTok := p.peek()
	if !typeTok.IsTypeKeyword() {
		return nil, diag.New(diag.UnexpectedToken, typeTok,
			"expected type (one of f32, str, bool), found %s", typeTok.Describe())
	}
	declared := typeKeywords[typeTok.Type]
	p.consume()

	if _, err := p.expect(token.TokenAssign, diag.UnexpectedToken, "'=' after type"); err != nil {
		return nil, err
	}

	value, err := p.parseExpression(bpLowest)
	if err != nil {
		return nil, err
	}
	if value.Type() != declared {
		return nil, diag.New(diag.TypeMismatch, nameTok,
			"'%s' is declared %s but initialized with an expression of type %s",
			nameTok.Literal, declared, value.Type())
	}

	info := symbols.SymbolInfo{Type: declared, Line: nameTok.Line}
	if err := p.scopes.Declare(nameTok.Literal, info); err != nil {
		return nil, diag.New(diag.DuplicateBinding, nameTok, "%v", err)
	}

	return &ast.Let{
		Token:     letTok,
		Name:      nameTok.Literal,
		TypeToken: typeTok,
		Declared:  declared,
		Value:     value,
	}, nil
}

// parseOutputStatement parses `output ( <expr> )`.
func (p *Parser) parseOutputStatement() (ast.Statement, error) {
	outTok := p.consume()

	if _, err := p.expect(token.TokenLParen, diag.UnexpectedToken, "'(' after 'output'"); err != nil {
		return nil, err
	}
	value, err := p.parseExpression(bpLowest)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.TokenRParen, diag.MalformedGrouping, "')' to close 'output('"); err != nil {
		return nil, err
	}
	return &ast.Output{Token: outTok, Value: value}, nil
}

func (p *Parser) parseLoopStatement() (ast.Statement, error) {
	loopTok := p.consume()

	p.loopDepth++
	defer func() { p.loopDepth-- }()

	body, err := p.parseBlockStatement()
	if err != nil {
		return nil, err
	}
	return &ast.Loop{Token: loopTok, Body: body}, nil
}

// parseBlockStatement parses `{ <statement>* }` in a fresh scope frame.
// The frame is popped on every return path.
func (p *Parser) parseBlockStatement() (*ast.Block, error) {
	open, err := p.expect(token.TokenLBrace, diag.UnexpectedToken, "'{' to start block")
	if err != nil {
		return nil, err
	}

	p.scopes.Push()
	defer p.scopes.Pop()

	block := &ast.Block{Token: open}
	for p.peek().Type != token.TokenRBrace {
		if p.peek().Type == token.TokenEOF {
			return nil, diag.New(diag.MalformedGrouping, p.peek(),
				"expected '}' to close block opened at line %d, found end of input", open.Line)
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		block.Statements = append(block.Statements, stmt)
	}
	p.consume() // Consume '}'
	return block, nil
}

// --- Expressions ---

// parseExpression is the precedence-climbing entry point. It parses one
// primary and then absorbs infix operators whose left binding power is at
// least minBP.
func (p *Parser) parseExpression(minBP int) (ast.Expression, error) {
	left, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}

	for {
		op := p.peek()
		lbp, rbp, ok := infixBindingPower(op.Type)
		if !ok || lbp < minBP {
			return left, nil
		}
		p.consume()

		right, err := p.parseExpression(rbp)
		if err != nil {
			return nil, err
		}

		bin, err := ast.NewBinary(op, left, right)
		if err != nil {
			return nil, err
		}
		left = bin
	}
}

func (p *Parser) parsePrimary() (ast.Expression, error) {
	tok := p.peek()
	switch tok.Type {
	case token.TokenInt, token.TokenDecimal, token.TokenString, token.TokenTrue, token.TokenFalse:
		p.consume()
		return ast.NewLiteral(tok), nil
	case token.TokenIdent:
		p.consume()
		info, err := p.scopes.Resolve(tok.Literal)
		if err != nil {
			if errors.Is(err, scope.ErrUnresolved) {
				return nil, diag.New(diag.UnresolvedName, tok, "%v", err)
			}
			return nil, err
		}
		return ast.NewVariable(tok, info.Type), nil
	case token.TokenLParen:
		return p.parseGroupedExpression()
	}
	return nil, diag.New(diag.UnexpectedToken, tok, "expected expression, found %s", tok.Describe())
}

// parseGroupedExpression parses `( <expr> )` at the lowest binding power.
// The parentheses leave no node behind.
func (p *Parser) parseGroupedExpression() (ast.Expression, error) {
	open := p.consume() // Consume '('

	expr, err := p.parseExpression(bpLowest)
	if err != nil {
		return nil, err
	}

	if p.peek().Type != token.TokenRParen {
		return nil, diag.New(diag.MalformedGrouping, p.peek(),
			"expected ')' to close '(' at line %d, found %s", open.Line, p.peek().Describe())
	}
	p.consume() // Consume ')'
	return expr, nil
}
