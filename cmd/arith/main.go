package main

import (
	"errors"
	"io"
	"os"

	"github.com/jcgregorio/logger"
	"github.com/urfave/cli/v2"
)

// errFailed reports that at least one expression failed. The failures have
// already been printed.
var errFailed = errors.New("evaluation failed")

// app holds the state shared by all commands.
type app struct {
	cfg Config
	log *logger.Logger
	pr  *printer

	in   io.Reader
	out  io.Writer
	errw io.Writer
}

// syncWriter adds a no-op Sync to writers for the logger.
type syncWriter struct {
	io.Writer
}

func (syncWriter) Sync() error {
	return nil
}

func newLogger(w io.Writer, verbose bool) *logger.Logger {
	sw, ok := w.(logger.SyncWriter)
	if !ok {
		sw = syncWriter{w}
	}
	return logger.NewFromOptions(&logger.Options{
		SyncWriter:   sw,
		IncludeDebug: verbose,
	})
}

func newApp(in io.Reader, out, errw io.Writer) *cli.App {
	a := &app{in: in, out: out, errw: errw}
	return &cli.App{
		Name:      "arith",
		Usage:     "evaluate integer arithmetic expressions",
		UsageText: "arith [global options] [expression...]\narith [global options] command [command options] [arguments...]",
		Reader:    in,
		Writer:    out,
		ErrWriter: errw,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "YAML config file",
				EnvVars: []string{"ARITH_CONFIG"},
			},
			&cli.UintFlag{
				Name:    "prec",
				Aliases: []string{"p"},
				Usage:   "precision of division results in bits",
				EnvVars: []string{"ARITH_PREC"},
			},
			&cli.IntFlag{
				Name:    "max-depth",
				Usage:   "maximum bracket nesting, or 0 for no limit",
				EnvVars: []string{"ARITH_MAX_DEPTH"},
			},
			&cli.BoolFlag{
				Name:    "allow-trailing",
				Usage:   "ignore input after the first complete expression",
				EnvVars: []string{"ARITH_ALLOW_TRAILING"},
			},
			&cli.BoolFlag{
				Name:    "no-color",
				Usage:   "disable colored output",
				EnvVars: []string{"ARITH_NO_COLOR"},
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "log debugging information to stderr",
			},
		},
		Before: a.setup,
		Action: func(c *cli.Context) error {
			if c.NArg() > 0 {
				return a.evalArgs(c, false)
			}
			return a.replCmd(c)
		},
		Commands: []*cli.Command{
			{
				Name:      "eval",
				Usage:     "evaluate expressions given as arguments or one per line of input",
				ArgsUsage: "[expression...]",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "in",
						Aliases: []string{"i"},
						Usage:   "read expressions from `FILE`, one per line (- for stdin)",
					},
					&cli.IntFlag{
						Name:    "jobs",
						Aliases: []string{"j"},
						Usage:   "number of expressions to evaluate concurrently, or 0 for no limit",
						EnvVars: []string{"ARITH_JOBS"},
					},
					&cli.BoolFlag{
						Name:  "echo",
						Usage: "print each expression before its result",
					},
				},
				Action: a.evalCmd,
			},
			{
				Name:   "repl",
				Usage:  "evaluate expressions interactively",
				Action: a.replCmd,
			},
			{
				Name:      "tokens",
				Usage:     "print the tokens of an expression",
				ArgsUsage: "expression",
				Action:    a.tokensCmd,
			},
			{
				Name:      "ast",
				Usage:     "print the parse tree of an expression",
				ArgsUsage: "expression",
				Action:    a.astCmd,
			},
			{
				Name:  "selftest",
				Usage: "run the built-in scenarios",
				Action: func(c *cli.Context) error {
					if a.selftest() > 0 {
						return errFailed
					}
					return nil
				},
			},
		},
	}
}

// setup loads the config and applies global flags over it.
func (a *app) setup(c *cli.Context) error {
	a.log = newLogger(a.errw, c.Bool("verbose"))
	cfg, err := loadConfig(c.String("config"))
	if err != nil {
		return err
	}
	if c.IsSet("prec") {
		cfg.Prec = c.Uint("prec")
	}
	if c.IsSet("max-depth") {
		cfg.MaxDepth = c.Int("max-depth")
	}
	if c.IsSet("allow-trailing") {
		cfg.AllowTrailing = c.Bool("allow-trailing")
	}
	if c.Bool("no-color") {
		cfg.Color = false
	}
	a.cfg = cfg
	a.pr = newPrinter(a.out, cfg.Color)
	a.log.Debugf("config: %+v", cfg)
	return nil
}

// exitCode reports err and returns the process exit status for it. Failed
// expressions have already been printed.
func exitCode(log *logger.Logger, err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errFailed):
		return 1
	default:
		log.Error(err)
		return 2
	}
}

func main() {
	err := newApp(os.Stdin, os.Stdout, os.Stderr).Run(os.Args)
	os.Exit(exitCode(newLogger(os.Stderr, false), err))
}
