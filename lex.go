package arith

import (
	"errors"
	"io"
	"math/big"
	"strconv"
	"strings"
	"unicode"
)

// Token is a lexical token scanned from an expression.
type Token struct {
	// Kind is the type of the token.
	Kind TokenKind
	// Text is the source text of the token. It is empty for EOF.
	Text string
	// Pos is the 1-based rune column at which the token starts.
	Pos int
	// Value is the value of an integer token, or nil for other kinds.
	Value *big.Int
}

func (t Token) String() string {
	return t.Kind.String() + ":" + t.Text + "@" + strconv.Itoa(t.Pos)
}

// TokenKind identifies the type of a token.
type TokenKind int

const (
	TokenNone TokenKind = iota
	// TokenEOF indicates the end of the input.
	TokenEOF
	// TokenInt is a non-negative decimal integer.
	TokenInt
	TokenPlus
	TokenMinus
	TokenStar
	TokenSlash
	TokenLParen
	TokenRParen
)

//go:generate go run golang.org/x/tools/cmd/stringer -type=TokenKind -trimprefix=Token

// Operators contains the runes which are lexed as binary operators.
const Operators = "+-*/"

var punct = map[rune]TokenKind{
	'+': TokenPlus,
	'-': TokenMinus,
	'*': TokenStar,
	'/': TokenSlash,
	'(': TokenLParen,
	')': TokenRParen,
}

type lexer struct {
	src  io.RuneScanner
	buf  strings.Builder
	rune int
	eof  Token
}

func lex(src io.RuneScanner) *lexer {
	return &lexer{
		src:  src,
		rune: 1,
	}
}

// readRune reads a rune from the src and updates the lexer's position info.
func (l *lexer) readRune() (r rune, err error) {
	r, sz, err := l.src.ReadRune()
	if sz > 0 {
		l.rune++
	}
	return r, err
}

// unreadRune unreads a rune from the src and updates the lexer's position
// info. Panics if unreading returns an error.
func (l *lexer) unreadRune() {
	if err := l.src.UnreadRune(); err != nil {
		panic(err)
	}
	l.rune--
}

// next scans the next token from the input. Once the input is exhausted, every
// call returns the same EOF token with a nil error.
func (l *lexer) next() (Token, error) {
	if l.eof.Kind == TokenEOF {
		return l.eof, nil
	}
	defer l.buf.Reset()
	tok := Token{Pos: l.rune}
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				tok.Kind = TokenEOF
				l.eof = tok
				return tok, nil
			}
			return tok, err
		}
		switch {
		case unicode.IsSpace(r):
			tok.Pos++
			continue
		case '0' <= r && r <= '9':
			l.unreadRune()
			if err := l.scanInt(); err != nil {
				return tok, err
			}
			tok.Text = l.buf.String()
			tok.Kind = TokenInt
			tok.Value, _ = new(big.Int).SetString(tok.Text, 10)
			return tok, nil
		default:
			if k, ok := punct[r]; ok {
				tok.Kind = k
				tok.Text = string(r)
				return tok, nil
			}
			// Write the rune so that it shows up in the error message.
			l.buf.WriteRune(r)
			return tok, &LexError{Text: l.buf.String(), Col: tok.Pos}
		}
	}
}

// scanInt scans a run of ASCII digits into buf. next has already checked that
// the first rune is a digit.
func (l *lexer) scanInt() error {
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		if r < '0' || '9' < r {
			l.unreadRune()
			return nil
		}
		l.buf.WriteRune(r)
	}
}

// Tokens scans all tokens in src, ending with the EOF token. If the lexer
// encounters an invalid token, the result holds the tokens up to that point.
func Tokens(src io.RuneScanner) ([]Token, error) {
	scan := lex(src)
	var toks []Token
	for {
		tok, err := scan.next()
		if err != nil {
			return toks, err
		}
		toks = append(toks, tok)
		if tok.Kind == TokenEOF {
			return toks, nil
		}
	}
}

// LexError indicates an invalid character. It implements InputError and
// unwraps to ErrLexical.
type LexError struct {
	// Text is the invalid character.
	Text string
	// Col is the position of the invalid character.
	Col int
}

func (err *LexError) Error() string {
	return errpos(err.Col, "invalid character "+strconv.Quote(err.Text))
}

func (err *LexError) Pos() int {
	return err.Col
}

func (err *LexError) Unwrap() error {
	return ErrLexical
}
