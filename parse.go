package arith

import (
	"io"
	"strings"
)

// expr   = term { ('+' | '-') term }
// term   = factor { ('*' | '/') factor }
// factor = int | '(' expr ')'

// Expr is a parsed expression that can be evaluated with a context.
type Expr struct {
	// n is the root node of the expression.
	n *node
}

// parser holds the state of a single parse.
type parser struct {
	scan *lexer
	// tok is the lookahead token.
	tok Token
	// depth is the current bracket nesting depth.
	depth int
	parsectx
}

// Parse parses an expression so it can be evaluated with a context. The given
// options are applied in order.
func Parse(src io.RuneScanner, opts ...ParseOption) (*Expr, error) {
	p := parser{
		scan:     lex(src),
		parsectx: parsectx{maxdepth: DefaultMaxDepth},
	}
	for _, opt := range opts {
		p.parsectx = opt.parseOption(p.parsectx)
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	n, err := p.expr()
	if err != nil {
		return nil, err
	}
	switch tok := p.tok; {
	case tok.Kind == TokenEOF, p.trailing:
	case tok.Kind == TokenRParen:
		return nil, &BracketError{Col: tok.Pos, Right: tok.Text}
	default:
		return nil, &TrailingError{Col: tok.Pos, Text: tok.Text}
	}
	return &Expr{n: n}, nil
}

// ParseString is a shortcut to parse an expression from a string.
func ParseString(src string, opts ...ParseOption) (*Expr, error) {
	return Parse(strings.NewReader(src), opts...)
}

// advance scans the next lookahead token.
func (p *parser) advance() error {
	tok, err := p.scan.next()
	if err != nil {
		return err
	}
	p.tok = tok
	return nil
}

// eat consumes the lookahead token if it has the given kind. Otherwise, the
// lookahead is left in place and the result is an error.
func (p *parser) eat(kind TokenKind) error {
	if p.tok.Kind != kind {
		return itShouldNotHaveEndedThisWay(p.tok, kind)
	}
	return p.advance()
}

// expr parses a sum or difference of terms.
func (p *parser) expr() (*node, error) {
	return p.chain(addprec, p.term)
}

// term parses a product or quotient of factors.
func (p *parser) term() (*node, error) {
	return p.chain(mulprec, p.factor)
}

// chain parses a left-associative sequence of operands joined by operators
// of precedence prec.
func (p *parser) chain(prec int8, operand func() (*node, error)) (*node, error) {
	n, err := operand()
	if err != nil {
		return nil, err
	}
	for {
		op := binop(p.tok.Kind)
		if op.op == nodeNone || op.prec != prec {
			return n, nil
		}
		tok := p.tok
		if err := p.eat(tok.Kind); err != nil {
			return nil, err
		}
		rhs, err := operand()
		if err != nil {
			return nil, err
		}
		n = &node{kind: op.op, pos: tok.Pos, left: n, right: rhs}
	}
}

// factor parses a number or a bracketed subexpression.
func (p *parser) factor() (*node, error) {
	tok := p.tok
	switch tok.Kind {
	case TokenInt:
		if err := p.eat(TokenInt); err != nil {
			return nil, err
		}
		return &node{kind: nodeNum, num: tok.Value, pos: tok.Pos}, nil
	case TokenLParen:
		if p.maxdepth > 0 && p.depth >= p.maxdepth {
			return nil, &DepthError{Col: tok.Pos, Max: p.maxdepth}
		}
		p.depth++
		if err := p.eat(TokenLParen); err != nil {
			return nil, err
		}
		n, err := p.expr()
		if err != nil {
			return nil, err
		}
		if err := p.eat(TokenRParen); err != nil {
			return nil, err
		}
		p.depth--
		return n, nil
	case TokenPlus, TokenMinus, TokenStar, TokenSlash:
		return nil, &OperatorError{Col: tok.Pos, Operator: tok.Text}
	case TokenRParen, TokenEOF:
		return nil, &EmptyExpressionError{Col: tok.Pos, End: tok.Text}
	default:
		panic("arith: unknown token: " + tok.String())
	}
}

// itShouldNotHaveEndedThisWay returns an error appropriate for finding tok
// where the parser required a token of kind want.
func itShouldNotHaveEndedThisWay(tok Token, want TokenKind) error {
	if want == TokenRParen && tok.Kind == TokenEOF {
		// Unexpected EOF implies an open bracket that was not closed.
		return &BracketError{Col: tok.Pos, Left: "("}
	}
	return &TokenError{Col: tok.Pos, Want: want, Got: tok}
}

// String creates a string representation of the parsed expression with every
// operation in brackets.
func (e *Expr) String() string {
	return e.n.String()
}

// Tree creates an indented representation of the parse tree, one node per
// line.
func (e *Expr) Tree() string {
	var b strings.Builder
	e.n.tree(&b, 0)
	return b.String()
}

type operator struct {
	// prec is the precedence value. Higher is more binding.
	prec int8
	// op is the node kind to use when this operator is selected.
	op nodeKind
}

const (
	addprec int8 = 1
	mulprec int8 = 5
)

// binop gets a binary operator for a token kind. If there is no such binary
// operator, then the result has an op of nodeNone.
func binop(kind TokenKind) operator {
	switch kind {
	case TokenPlus:
		return operator{addprec, nodeAdd}
	case TokenMinus:
		return operator{addprec, nodeSub}
	case TokenStar:
		return operator{mulprec, nodeMul}
	case TokenSlash:
		return operator{mulprec, nodeDiv}
	default:
		return operator{}
	}
}
