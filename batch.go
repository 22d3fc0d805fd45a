package arith

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"
)

// Batch evaluates many independent expressions concurrently. Each expression
// is parsed and evaluated with its own parser and Context, so no state is
// shared between them.
type Batch struct {
	// Parse is the options used to parse each expression.
	Parse []ParseOption
	// Context is the options used to create each evaluation context.
	Context []ContextOption
	// Limit is the maximum number of expressions evaluated at once. If it is
	// zero or less, there is no limit.
	Limit int
}

// Result is the outcome of evaluating one expression in a batch.
type Result struct {
	// Src is the source expression.
	Src string
	// Value is the result of evaluating the expression, or nil if there was an
	// error.
	Value *Number
	// Err is the error from parsing or evaluating the expression.
	Err error
}

// Eval evaluates each source expression. The results are in the same order as
// srcs. Errors in individual expressions are reported in their results; the
// error result of Eval is non-nil only if ctx is done before all expressions
// are evaluated.
func (b *Batch) Eval(ctx context.Context, srcs []string) ([]Result, error) {
	res := make([]Result, len(srcs))
	g, ctx := errgroup.WithContext(ctx)
	if b.Limit > 0 {
		g.SetLimit(b.Limit)
	}
	for i, src := range srcs {
		i, src := i, src
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res[i] = b.eval(src)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}

func (b *Batch) eval(src string) Result {
	r := Result{Src: src}
	a, err := Parse(strings.NewReader(src), b.Parse...)
	if err != nil {
		r.Err = err
		return r
	}
	r.Value, r.Err = NewContext(b.Context...).Eval(a)
	return r
}
