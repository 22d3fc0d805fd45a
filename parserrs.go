package arith

import (
	"errors"
	"strconv"
)

// Error kinds. Every error returned for invalid input or a failed evaluation
// unwraps to exactly one of these.
var (
	// ErrLexical is the kind of errors for characters that are not part of
	// any token.
	ErrLexical = errors.New("lexical error")
	// ErrParsing is the kind of errors for tokens that do not fit the grammar.
	ErrParsing = errors.New("parsing error")
	// ErrArithmetic is the kind of errors for operations with no result.
	ErrArithmetic = errors.New("arithmetic error")
)

// OperatorError is an error indicating an operator token where an operand
// was expected. It implements InputError.
type OperatorError struct {
	// Col is the position of the operator.
	Col int
	// Operator is the token that was found.
	Operator string
}

func (err *OperatorError) Error() string {
	return errpos(err.Col, "expected number or ( but found operator "+strconv.Quote(err.Operator))
}

func (err *OperatorError) Pos() int {
	return err.Col
}

func (err *OperatorError) Unwrap() error {
	return ErrParsing
}

// BracketError is an error indicating mismatched brackets in the
// input. It implements InputError.
type BracketError struct {
	// Col is the position of the token where the mismatch was noticed.
	Col int
	// Left is the opening bracket, or empty if there was none.
	Left string
	// Right is the closing bracket, or empty if there was none.
	Right string
}

func (err *BracketError) Error() string {
	if err.Left == "" {
		return errpos(err.Col, "close bracket "+err.Right+" with no open bracket")
	}
	return errpos(err.Col, "open bracket "+err.Left+" with no close bracket")
}

func (err *BracketError) Pos() int {
	return err.Col
}

func (err *BracketError) Unwrap() error {
	return ErrParsing
}

// EmptyExpressionError is an error indicating an empty subexpression.
type EmptyExpressionError struct {
	// Col is the position of the token that ended the subexpression.
	Col int
	// End is the token that ended the subexpression, or empty at the end of
	// the input.
	End string
}

func (err *EmptyExpressionError) Error() string {
	if err.End == "" {
		if err.Col <= 1 {
			return errpos(err.Col, "no expression")
		}
		return errpos(err.Col, "no expression at end")
	}
	return errpos(err.Col, "no expression up to "+strconv.Quote(err.End))
}

func (err *EmptyExpressionError) Pos() int {
	return err.Col
}

func (err *EmptyExpressionError) Unwrap() error {
	return ErrParsing
}

// TokenError is an error indicating that the parser required one kind of
// token but found another.
type TokenError struct {
	// Col is the position of the token that was found.
	Col int
	// Want is the kind of token the parser required.
	Want TokenKind
	// Got is the token that was found.
	Got Token
}

func (err *TokenError) Error() string {
	return errpos(err.Col, "expected "+err.Want.String()+" but found "+describe(err.Got))
}

func (err *TokenError) Pos() int {
	return err.Col
}

func (err *TokenError) Unwrap() error {
	return ErrParsing
}

// TrailingError is an error indicating input left over after a complete
// expression.
type TrailingError struct {
	// Col is the position of the first unconsumed token.
	Col int
	// Text is the first unconsumed token.
	Text string
}

func (err *TrailingError) Error() string {
	return errpos(err.Col, "unexpected "+strconv.Quote(err.Text)+" after end of expression")
}

func (err *TrailingError) Pos() int {
	return err.Col
}

func (err *TrailingError) Unwrap() error {
	return ErrParsing
}

// DepthError is an error indicating brackets nested more deeply than the
// parser allows.
type DepthError struct {
	// Col is the position of the bracket that exceeded the limit.
	Col int
	// Max is the nesting limit in effect.
	Max int
}

func (err *DepthError) Error() string {
	return errpos(err.Col, "brackets nested deeper than "+strconv.Itoa(err.Max))
}

func (err *DepthError) Pos() int {
	return err.Col
}

func (err *DepthError) Unwrap() error {
	return ErrParsing
}

// describe names a token for error messages.
func describe(tok Token) string {
	if tok.Kind == TokenEOF {
		return "end of input"
	}
	return strconv.Quote(tok.Text)
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the 1-based rune column of the
	// token that caused the error.
	Pos() int
}

var (
	_ InputError = (*OperatorError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*EmptyExpressionError)(nil)
	_ InputError = (*TokenError)(nil)
	_ InputError = (*TrailingError)(nil)
	_ InputError = (*DepthError)(nil)
	_ InputError = (*LexError)(nil)
	_ InputError = (*DivisionByZeroError)(nil)
)
