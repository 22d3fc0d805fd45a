// Package arith implements a calculator for integer arithmetic expressions.
//
// Expressions are made of non-negative integers, the binary operators + - * /,
// and parentheses, with any amount of whitespace between tokens. * and / bind
// more tightly than + and -, and operators of equal precedence group from the
// left, so "10 - 4 - 1" is 5.
//
// Addition, subtraction, and multiplication of integers are exact. Division is
// always true division and produces a floating-point result, and any
// operation with a floating-point operand produces a floating-point result:
// "2 + 3" is the integer 5, but "10 / 2" is the float 5.0.
//
// Parsing and evaluation use no global state. Separate expressions may be
// parsed and evaluated concurrently, each with its own Context.
package arith
