package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	pkgerrors "github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/zephyrtronium/arith"
)

func (a *app) evalCmd(c *cli.Context) error {
	if c.IsSet("jobs") {
		a.cfg.Jobs = c.Int("jobs")
		if err := a.cfg.validate(); err != nil {
			return err
		}
	}
	return a.evalArgs(c, c.Bool("echo"))
}

// evalArgs evaluates the command arguments followed by the lines of the input
// file. With no arguments and no input file, it reads standard input.
func (a *app) evalArgs(c *cli.Context, echo bool) error {
	srcs := c.Args().Slice()
	inname := ""
	if c.Command != nil && c.Command.Name == "eval" {
		inname = c.String("in")
	}
	f, err := a.infile(inname, len(srcs) == 0)
	if err != nil {
		return err
	}
	if f != nil {
		defer f.Close()
		lines, err := readLines(f)
		if err != nil {
			return pkgerrors.Wrap(err, "reading expressions")
		}
		srcs = append(srcs, lines...)
	}

	b := a.cfg.batch()
	a.log.Debugf("evaluating %d expressions, %d at a time", len(srcs), b.Limit)
	res, err := b.Eval(c.Context, srcs)
	if err != nil {
		return err
	}
	failed := 0
	for _, r := range res {
		if r.Err != nil {
			failed++
			a.pr.fail(r.Src, r.Err)
			continue
		}
		if echo {
			fmt.Fprintf(a.out, "%s = ", r.Src)
		}
		a.pr.value(r.Value)
	}
	if failed > 0 {
		a.log.Debugf("%d of %d expressions failed", failed, len(res))
		return errFailed
	}
	return nil
}

// infile opens the named input. The name - means standard input, as does an
// empty name when std is true.
func (a *app) infile(inname string, std bool) (io.ReadCloser, error) {
	switch {
	case inname != "" && inname != "-":
		f, err := os.Open(inname)
		if err != nil {
			return nil, pkgerrors.Wrap(err, "opening input")
		}
		return f, nil
	case inname == "-", std:
		return io.NopCloser(a.in), nil
	}
	return nil, nil
}

// readLines reads the non-blank lines of r.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if strings.TrimSpace(sc.Text()) == "" {
			continue
		}
		lines = append(lines, sc.Text())
	}
	return lines, sc.Err()
}

// eval parses and evaluates one expression with the configured options.
func (a *app) eval(src string) (*arith.Number, error) {
	e, err := arith.ParseString(src, a.cfg.parseOptions()...)
	if err != nil {
		return nil, err
	}
	return arith.NewContext(a.cfg.contextOptions()...).Eval(e)
}

func (a *app) tokensCmd(c *cli.Context) error {
	src := strings.Join(c.Args().Slice(), " ")
	toks, err := arith.Tokens(strings.NewReader(src))
	for _, tok := range toks {
		fmt.Fprintln(a.out, tok)
	}
	if err != nil {
		a.pr.fail(src, err)
		return errFailed
	}
	return nil
}

func (a *app) astCmd(c *cli.Context) error {
	src := strings.Join(c.Args().Slice(), " ")
	e, err := arith.ParseString(src, a.cfg.parseOptions()...)
	if err != nil {
		a.pr.fail(src, err)
		return errFailed
	}
	fmt.Fprintln(a.out, e)
	fmt.Fprint(a.out, e.Tree())
	return nil
}
