package main

import (
	"errors"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/zephyrtronium/arith"
)

// printer writes results and errors, colored if enabled.
type printer struct {
	w    io.Writer
	ok   *color.Color
	bad  *color.Color
	note *color.Color
}

func newPrinter(w io.Writer, colored bool) *printer {
	p := &printer{
		w:    w,
		ok:   color.New(color.FgHiGreen),
		bad:  color.New(color.FgRed),
		note: color.New(color.FgCyan),
	}
	if !colored {
		p.ok.DisableColor()
		p.bad.DisableColor()
		p.note.DisableColor()
	}
	return p
}

func (p *printer) value(v *arith.Number) {
	p.ok.Fprintln(p.w, v.String())
}

// fail prints an error for src, with a caret under the error position if
// there is one.
func (p *printer) fail(src string, err error) {
	var ierr arith.InputError
	if errors.As(err, &ierr) && strings.TrimSpace(src) != "" {
		p.bad.Fprintln(p.w, src)
		p.bad.Fprintln(p.w, caret(src, ierr.Pos()))
	}
	p.bad.Fprintln(p.w, kindOf(err)+": "+err.Error())
}

// kindOf names the kind of an engine error.
func kindOf(err error) string {
	switch {
	case errors.Is(err, arith.ErrLexical):
		return "lexical error"
	case errors.Is(err, arith.ErrParsing):
		return "syntax error"
	case errors.Is(err, arith.ErrArithmetic):
		return "arithmetic error"
	default:
		return "error"
	}
}

// caret creates a line with a ^ under the 1-based rune column col of src.
// Tabs in src are kept so that the caret lines up.
func caret(src string, col int) string {
	var b strings.Builder
	i := 1
	for _, r := range src {
		if i >= col {
			break
		}
		if r == '\t' {
			b.WriteByte('\t')
		} else {
			b.WriteByte(' ')
		}
		i++
	}
	for ; i < col; i++ {
		b.WriteByte(' ')
	}
	b.WriteByte('^')
	return b.String()
}
