package arith

import (
	"math/big"
	"strconv"
	"strings"
)

// Number is the result of evaluating an expression. It is an exact integer
// unless a division was evaluated to produce it, in which case it is a
// floating-point value.
type Number struct {
	// Exactly one of i and f is non-nil.
	i *big.Int
	f *big.Float
}

// IsInt returns whether n is an integer result.
func (n *Number) IsInt() bool {
	return n.i != nil
}

// Int returns a copy of the value of n if it is an integer. Otherwise, the
// result is nil.
func (n *Number) Int() *big.Int {
	if n.i == nil {
		return nil
	}
	return new(big.Int).Set(n.i)
}

// Float returns a copy of the value of n as a float. Integers are converted
// exactly.
func (n *Number) Float() *big.Float {
	if n.f != nil {
		return new(big.Float).Copy(n.f)
	}
	return new(big.Float).SetInt(n.i)
}

// Float64 returns the float64 value nearest to n and the accuracy of the
// conversion.
func (n *Number) Float64() (float64, big.Accuracy) {
	if n.f != nil {
		return n.f.Float64()
	}
	return new(big.Float).SetInt(n.i).Float64()
}

// String formats n. Integers are formatted in decimal. Floats use the
// shortest representation that reads back to the same value. Decimal exponents
// from -4 up to 15 are written out in full with a decimal point, so that 10/2
// prints as 5.0, and others use exponent notation like 1e+16.
func (n *Number) String() string {
	if n.i != nil {
		return n.i.String()
	}
	if n.f.IsInf() {
		return n.f.Text('g', -1)
	}
	s := n.f.Text('e', -1)
	exp, _ := strconv.Atoi(s[strings.LastIndexByte(s, 'e')+1:])
	if exp < -4 || exp >= 16 {
		return s
	}
	s = n.f.Text('f', -1)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// isZero returns whether n is an integer or float zero.
func (n *Number) isZero() bool {
	if n.i != nil {
		return n.i.Sign() == 0
	}
	return n.f.Sign() == 0
}

// float gets the value of n as a float. Integers are rounded to the given
// precision. The result may be n's own float and must not be modified.
func (n *Number) float(prec uint) *big.Float {
	if n.f != nil {
		return n.f
	}
	return new(big.Float).SetPrec(prec).SetInt(n.i)
}
