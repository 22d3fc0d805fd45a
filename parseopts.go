package arith

// DefaultMaxDepth is the bracket nesting limit used when no MaxDepth option is
// given.
const DefaultMaxDepth = 1000

// ParseOption is an option for parsing.
type ParseOption interface {
	parseOption(parsectx) parsectx
}

type (
	depthopt    int
	trailingopt struct{}
)

// parsectx holds the settings for a single parse.
type parsectx struct {
	// maxdepth is the bracket nesting limit, or non-positive for none.
	maxdepth int
	// trailing indicates that tokens after a complete expression are left
	// unconsumed instead of being an error.
	trailing bool
}

// MaxDepth limits how deeply brackets may nest. Parsing input that nests more
// deeply fails with a DepthError. A limit of zero or less disables the check,
// in which case the only bound is the goroutine stack.
func MaxDepth(n int) ParseOption {
	return depthopt(n)
}

func (o depthopt) parseOption(p parsectx) parsectx {
	p.maxdepth = int(o)
	return p
}

// AllowTrailing tells the parser to stop at the end of the first complete
// expression. Any tokens that follow are left unconsumed rather than causing a
// TrailingError or BracketError. E.g., "1 + 2 3" parses as "1 + 2".
func AllowTrailing() ParseOption {
	return trailingopt{}
}

func (trailingopt) parseOption(p parsectx) parsectx {
	p.trailing = true
	return p
}
