package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"
	"github.com/urfave/cli/v2"
)

const (
	prompt = "arith> "
	banner = `Enter an expression, "test" to run the built-in scenarios, or "exit" to quit.`
)

// prompter reads lines of input. *liner.State implements it.
type prompter interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
}

func (a *app) replCmd(c *cli.Context) error {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	hist := a.cfg.historyPath()
	if hist != "" {
		if f, err := os.Open(hist); err == nil {
			if _, err := ln.ReadHistory(f); err != nil {
				a.log.Warningf("reading history %s: %v", hist, err)
			}
			f.Close()
		}
		defer func() {
			f, err := os.Create(hist)
			if err != nil {
				a.log.Warningf("saving history: %v", err)
				return
			}
			defer f.Close()
			if _, err := ln.WriteHistory(f); err != nil {
				a.log.Warningf("saving history %s: %v", hist, err)
			}
		}()
	}
	return a.repl(ln)
}

// repl evaluates lines from p until EOF or an exit command.
func (a *app) repl(p prompter) error {
	a.pr.note.Fprintln(a.out, banner)
	for {
		line, err := p.Prompt(prompt)
		switch {
		case err == nil:
		case errors.Is(err, io.EOF):
			fmt.Fprintln(a.out)
			return nil
		case errors.Is(err, liner.ErrPromptAborted):
			// Ctrl+C discards the line.
			continue
		default:
			return err
		}
		src := strings.TrimSpace(line)
		switch strings.ToLower(src) {
		case "":
			continue
		case "exit", "quit":
			a.pr.note.Fprintln(a.out, "bye")
			return nil
		case "test":
			a.selftest()
			continue
		}
		p.AppendHistory(line)
		v, err := a.eval(line)
		if err != nil {
			a.pr.fail(line, err)
			continue
		}
		a.pr.value(v)
	}
}
