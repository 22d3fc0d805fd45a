package arith_test

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zephyrtronium/arith"
)

func TestEval(t *testing.T) {
	cases := []struct {
		name  string
		src   string
		isint bool
		want  string
	}{
		{"num", "1", true, "1"},
		{"add", "2 + 3", true, "5"},
		{"sub", "10 - 4", true, "6"},
		{"prec", "2 + 3 * 4", true, "14"},
		{"parens", "(2 + 3) * 4", true, "20"},
		{"left-sub", "10 - 4 - 1", true, "5"},
		{"negative", "1 - 5", true, "-4"},
		{"groups", "(1 + 2) * (3 + 4)", true, "21"},
		{"nested", "(10 - (2 + 3)) * 2", true, "10"},
		{"spaces", "\t 2\n+\r3  ", true, "5"},
		{"big", "99999999999999999999 * 99999999999999999999", true, "9999999999999999999800000000000000000001"},
		{"div", "10 / 2", false, "5.0"},
		{"div-sum", "8 / (2 + 2)", false, "2.0"},
		{"div-deep", "7 + 3 * (10 / (12 / (3 + 1) - 1))", false, "22.0"},
		{"div-inexact", "7 / 2", false, "3.5"},
		{"div-third", "1 / 3", false, "0.3333333333333333"},
		{"div-left", "8 / 4 / 2", false, "1.0"},
		{"div-zero-num", "0 / 5", false, "0.0"},
		{"float-sticks", "10 / 5 + 1", false, "3.0"},
		{"float-times-int", "2 * (1 / 2)", false, "1.0"},
		{"float-minus", "1 - 3 / 2", false, "-0.5"},
		{"div-large", "100000000000000000000000 / 1", false, "1e+23"},
		{"div-million", "3000000 / 2", false, "1500000.0"},
		{"div-fixed-limit", "1234567890123456 / 1", false, "1234567890123456.0"},
		{"div-exp-limit", "10000000000000000 / 1", false, "1e+16"},
		{"div-small", "1 / 10000", false, "0.0001"},
		{"div-tiny", "3 / 200000", false, "1.5e-05"},
		{"div-below-double", "1 / 1" + strings.Repeat("0", 310), false, "1e-310"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := arith.EvalString(c.src)
			require.NoError(t, err)
			require.NotNil(t, r)
			assert.Equal(t, c.isint, r.IsInt(), "integer result")
			assert.Equal(t, c.want, r.String())
		})
	}
}

func TestEvalMatchesFloat64(t *testing.T) {
	cases := []struct {
		src  string
		want float64
	}{
		{"10 / 3", 10.0 / 3.0},
		{"1 / 7 + 2 / 7", 1.0/7.0 + 2.0/7.0},
		{"22 / 7 * 7", 22.0 / 7.0 * 7.0},
		{"(1 / 10 + 2 / 10) * 10", (1.0/10.0 + 2.0/10.0) * 10},
		// Integer quotients are rounded once from the exact value.
		{"27021597764222979 / 3", 9007199254740992},
		{"12345678901234567890 / 10", 1234567890123456789},
		{"(0 - 27021597764222985) / 3", -9007199254740996},
	}
	for _, c := range cases {
		r, err := arith.EvalString(c.src)
		require.NoError(t, err, c.src)
		f, _ := r.Float64()
		assert.Equal(t, c.want, f, c.src)
	}
}

func TestEvalPrec(t *testing.T) {
	ctx := arith.NewContext(arith.Prec(200))
	assert.EqualValues(t, 200, ctx.Prec())
	a, err := arith.ParseString("1 / 3")
	require.NoError(t, err)
	r, err := ctx.Eval(a)
	require.NoError(t, err)
	assert.EqualValues(t, 200, r.Float().Prec())
	assert.True(t, strings.HasPrefix(r.String(), "0.33333333333333333333333333333333333333333333333333333333333"), r.String())

	assert.EqualValues(t, arith.DefaultPrec, arith.NewContext().Prec())
	assert.EqualValues(t, arith.DefaultPrec, arith.NewContext(arith.Prec(0)).Prec())
}

func TestNumber(t *testing.T) {
	r, err := arith.EvalString("6 * 7")
	require.NoError(t, err)
	require.True(t, r.IsInt())
	i := r.Int()
	assert.Equal(t, int64(42), i.Int64())
	i.SetInt64(0)
	assert.Equal(t, "42", r.String(), "Int must return a copy")
	f, acc := r.Float64()
	assert.Equal(t, 42.0, f)
	assert.Equal(t, big.Exact, acc)
	assert.Equal(t, 0, r.Float().Cmp(big.NewFloat(42)))

	r, err = arith.EvalString("3 / 4")
	require.NoError(t, err)
	require.False(t, r.IsInt())
	assert.Nil(t, r.Int())
	f, acc = r.Float64()
	assert.Equal(t, 0.75, f)
	assert.Equal(t, big.Exact, acc)
	g := r.Float()
	g.SetInt64(9)
	assert.Equal(t, "0.75", r.String(), "Float must return a copy")
}

func TestEvalDivisionByZero(t *testing.T) {
	cases := []struct {
		name string
		src  string
		col  int
	}{
		{"int", "5 / 0", 3},
		{"zero-zero", "0/0", 2},
		{"expr", "1 + 2 / (3 - 3)", 7},
		{"float", "1 / (1 / 2 - 1 / 2)", 3},
		{"nested", "(4 / (2 - 2)) + 1", 4},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := arith.EvalString(c.src)
			assert.Nil(t, r)
			require.Error(t, err)
			var derr *arith.DivisionByZeroError
			require.ErrorAs(t, err, &derr)
			assert.Equal(t, c.col, derr.Pos())
			assert.True(t, errors.Is(err, arith.ErrArithmetic))
			assert.False(t, errors.Is(err, arith.ErrParsing))
			assert.Contains(t, err.Error(), "division by zero")
		})
	}
}

func TestEvalErrorKinds(t *testing.T) {
	cases := []struct {
		src  string
		kind error
	}{
		{"2 + * 3", arith.ErrParsing},
		{"(4 + 5", arith.ErrParsing},
		{"", arith.ErrParsing},
		{"2 3", arith.ErrParsing},
		{"2 & 3", arith.ErrLexical},
		{"2.5", arith.ErrLexical},
		{"5 / 0", arith.ErrArithmetic},
	}
	kinds := []error{arith.ErrLexical, arith.ErrParsing, arith.ErrArithmetic}
	for _, c := range cases {
		r, err := arith.EvalString(c.src)
		assert.Nil(t, r, c.src)
		for _, k := range kinds {
			assert.Equal(t, k == c.kind, errors.Is(err, k), "%q: error %v is %v", c.src, err, k)
		}
		var ierr arith.InputError
		assert.True(t, errors.As(err, &ierr), "%q: %v is not an InputError", c.src, err)
	}
}

func TestEvalIdempotent(t *testing.T) {
	srcs := []string{"2 + 3", "10 / 2", "7 + 3 * (10 / (12 / (3 + 1) - 1))", "5 / 0", "(4 + 5"}
	for _, src := range srcs {
		first, ferr := arith.EvalString(src)
		for i := 0; i < 10; i++ {
			r, err := arith.EvalString(src)
			if ferr != nil {
				assert.Equal(t, ferr.Error(), err.Error(), "%q iteration %d", src, i)
				continue
			}
			require.NoError(t, err)
			assert.Equal(t, first.String(), r.String(), "%q iteration %d", src, i)
		}
	}
}

func TestContextReuse(t *testing.T) {
	ctx := arith.NewContext()
	a, err := arith.ParseString("1 + 2 * 3")
	require.NoError(t, err)
	z, err := arith.ParseString("1 / 0")
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		r, err := ctx.Eval(a)
		require.NoError(t, err)
		assert.Equal(t, "7", r.String())
		_, err = ctx.Eval(z)
		require.Error(t, err)
	}
	// The AST is not modified by evaluation.
	assert.Equal(t, "(1 + (2 * 3))", a.String())
}

func TestEvalLongChain(t *testing.T) {
	src := strings.Repeat("1 + ", 100000) + "1"
	r, err := arith.EvalString(src)
	require.NoError(t, err)
	assert.Equal(t, "100001", r.String())
}

func BenchmarkEval(b *testing.B) {
	b.Run("ints", func(b *testing.B) {
		b.ReportAllocs()
		ctx := arith.NewContext()
		a, err := arith.ParseString("(1 + 2) * (3 + 4) - 5")
		if err != nil {
			b.Fatal(err)
		}
		for i := 0; i < b.N; i++ {
			ctx.Eval(a)
		}
	})
	b.Run("floats", func(b *testing.B) {
		b.ReportAllocs()
		ctx := arith.NewContext()
		a, err := arith.ParseString("7 + 3 * (10 / (12 / (3 + 1) - 1))")
		if err != nil {
			b.Fatal(err)
		}
		for i := 0; i < b.N; i++ {
			ctx.Eval(a)
		}
	})
}

func Example() {
	for _, src := range []string{"2 + 3", "10 / 2", "(1 + 2) * (3 + 4)", "7 + 3 * (10 / (12 / (3 + 1) - 1))", "5 / 0", "2 + * 3"} {
		r, err := arith.EvalString(src)
		if err != nil {
			fmt.Printf("%-36s error: %v\n", src, err)
			continue
		}
		fmt.Printf("%-36s = %v\n", src, r)
	}

	// Output:
	// 2 + 3                                = 5
	// 10 / 2                               = 5.0
	// (1 + 2) * (3 + 4)                    = 21
	// 7 + 3 * (10 / (12 / (3 + 1) - 1))    = 22.0
	// 5 / 0                                error: 3: division by zero
	// 2 + * 3                              error: 5: expected number or ( but found operator "*"
}

func ExampleExpr_Tree() {
	a, err := arith.ParseString("8 / (2 + 2)")
	if err != nil {
		panic(err)
	}
	fmt.Println(a)
	fmt.Print(a.Tree())

	// Output:
	// (8 / (2 + 2))
	// Div /
	//   Num 8
	//   Add +
	//     Num 2
	//     Num 2
}
