package arith

import (
	"io"
	"math/big"
	"strconv"
	"strings"
)

// DefaultPrec is the precision in bits of float results when no Prec option
// is given. It matches float64, so division rounds the same way as native
// floating-point division.
const DefaultPrec = 53

// Context is a context for evaluating expressions. It is not safe to use a
// Context concurrently.
type Context struct {
	stack []*Number
	prec  uint
}

// ContextOption is an option used when creating a context.
type ContextOption interface {
	ctxOption()
}

type precopt uint

func (precopt) ctxOption() {}

// Prec sets the precision of float calculations. A precision of 0 selects
// DefaultPrec.
func Prec(prec uint) ContextOption {
	return precopt(prec)
}

// NewContext creates a new evaluation context.
func NewContext(opts ...ContextOption) *Context {
	ctx := Context{prec: DefaultPrec}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		switch opt := opt.(type) {
		case precopt:
			if opt != 0 {
				ctx.prec = uint(opt)
			}
		default:
			panic("arith: unknown option type")
		}
	}
	return &ctx
}

// Prec returns the precision to which float values are computed in the
// context.
func (ctx *Context) Prec() uint {
	return ctx.prec
}

// Eval evaluates an expression and returns the result. If an error occurs,
// e.g. a division by zero, then the result is nil.
func (ctx *Context) Eval(e *Expr) (*Number, error) {
	ctx.stack = ctx.stack[:0]
	if err := e.n.eval(ctx); err != nil {
		return nil, err
	}
	if len(ctx.stack) != 1 {
		panic("arith: inconsistent stack: " + strconv.Itoa(len(ctx.stack)) + " items (bad AST?)")
	}
	return ctx.pop(), nil
}

func (ctx *Context) push(v *Number) {
	ctx.stack = append(ctx.stack, v)
}

// pop removes the top from the stack and returns it.
func (ctx *Context) pop() *Number {
	r := ctx.stack[len(ctx.stack)-1]
	ctx.stack[len(ctx.stack)-1] = nil
	ctx.stack = ctx.stack[:len(ctx.stack)-1]
	return r
}

// eval pushes the node's value to the context's stack.
func (n *node) eval(ctx *Context) error {
	switch n.kind {
	case nodeNum:
		ctx.push(&Number{i: n.num})
	case nodeAdd, nodeSub, nodeMul, nodeDiv:
		if err := n.left.eval(ctx); err != nil {
			return err
		}
		if err := n.right.eval(ctx); err != nil {
			return err
		}
		r := ctx.pop()
		l := ctx.pop()
		v, err := n.apply(ctx.prec, l, r)
		if err != nil {
			return err
		}
		ctx.push(v)
	default:
		panic("arith: invalid AST node " + n.kind.String())
	}
	return nil
}

// apply computes the binary operation of n on l and r. Integer operands give
// integer results except for division, which always gives a float.
func (n *node) apply(prec uint, l, r *Number) (*Number, error) {
	if n.kind == nodeDiv {
		if r.isZero() {
			return nil, &DivisionByZeroError{Col: n.pos}
		}
		f := new(big.Float).SetPrec(prec)
		if l.i != nil && r.i != nil {
			// Round the exact quotient once.
			return &Number{f: f.SetRat(new(big.Rat).SetFrac(l.i, r.i))}, nil
		}
		return &Number{f: f.Quo(l.float(prec), r.float(prec))}, nil
	}
	if l.i != nil && r.i != nil {
		z := new(big.Int)
		switch n.kind {
		case nodeAdd:
			z.Add(l.i, r.i)
		case nodeSub:
			z.Sub(l.i, r.i)
		case nodeMul:
			z.Mul(l.i, r.i)
		}
		return &Number{i: z}, nil
	}
	z := new(big.Float).SetPrec(prec)
	switch n.kind {
	case nodeAdd:
		z.Add(l.float(prec), r.float(prec))
	case nodeSub:
		z.Sub(l.float(prec), r.float(prec))
	case nodeMul:
		z.Mul(l.float(prec), r.float(prec))
	}
	return &Number{f: z}, nil
}

// Eval is a shortcut to parse an expression with default options and return
// its result.
func Eval(src io.RuneScanner, opts ...ContextOption) (*Number, error) {
	a, err := Parse(src)
	if err != nil {
		return nil, err
	}
	return NewContext(opts...).Eval(a)
}

// EvalString is a shortcut to parse and evaluate a string expression.
func EvalString(src string, opts ...ContextOption) (*Number, error) {
	return Eval(strings.NewReader(src), opts...)
}

// DivisionByZeroError is an error from dividing by zero. It implements
// InputError and unwraps to ErrArithmetic.
type DivisionByZeroError struct {
	// Col is the position of the division operator.
	Col int
}

func (err *DivisionByZeroError) Error() string {
	return errpos(err.Col, "division by zero")
}

func (err *DivisionByZeroError) Pos() int {
	return err.Col
}

func (err *DivisionByZeroError) Unwrap() error {
	return ErrArithmetic
}
