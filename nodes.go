package arith

import (
	"math/big"
	"strings"
)

// node is a node in the abstract syntax tree of an expression.
type node struct {
	kind nodeKind

	// num is the value of a nodeNum.
	num *big.Int
	// pos is the column of the number or operator token.
	pos int

	left  *node
	right *node
}

type nodeKind int8

const (
	nodeNone nodeKind = iota

	nodeNum // push num

	nodeAdd // evaluate left, add right
	nodeSub // evaluate left, sub right
	nodeMul // evaluate left, mul right
	nodeDiv // evaluate left, div by right
)

//go:generate go run golang.org/x/tools/cmd/stringer -type=nodeKind -trimprefix=node

// opstr gives the operator text for binary node kinds.
var opstr = [...]string{
	nodeAdd: "+",
	nodeSub: "-",
	nodeMul: "*",
	nodeDiv: "/",
}

func (n *node) String() string {
	var b strings.Builder
	n.fmt(&b)
	return b.String()
}

// fmt writes n with every binary operation parenthesized.
func (n *node) fmt(b *strings.Builder) {
	switch n.kind {
	case nodeNum:
		b.WriteString(n.num.String())
	case nodeAdd, nodeSub, nodeMul, nodeDiv:
		b.WriteByte('(')
		n.left.fmt(b)
		b.WriteByte(' ')
		b.WriteString(opstr[n.kind])
		b.WriteByte(' ')
		n.right.fmt(b)
		b.WriteByte(')')
	default:
		panic("arith: invalid node kind " + n.kind.String() + " after writing " + b.String())
	}
}

// tree writes an indented dump of n, one node per line.
func (n *node) tree(b *strings.Builder, depth int) {
	for i := 0; i < depth; i++ {
		b.WriteString("  ")
	}
	b.WriteString(n.kind.String())
	switch n.kind {
	case nodeNum:
		b.WriteByte(' ')
		b.WriteString(n.num.String())
		b.WriteByte('\n')
	case nodeAdd, nodeSub, nodeMul, nodeDiv:
		b.WriteString(" " + opstr[n.kind] + "\n")
		n.left.tree(b, depth+1)
		n.right.tree(b, depth+1)
	default:
		b.WriteByte('\n')
	}
}
