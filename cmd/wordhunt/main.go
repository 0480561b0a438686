package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"
	apppkg "github.com/kk-code-lab/wordhunt/internal/app"
	"github.com/kk-code-lab/wordhunt/internal/fs"
	statepkg "github.com/kk-code-lab/wordhunt/internal/state"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func printHelp(w io.Writer) {
	fmt.Fprint(w, `wordhunt - Word search puzzle solver

USAGE:
    wordhunt [OPTIONS] [PUZZLE]

The puzzle file holds the letter grid, two blank lines, then the words to
find. Without PUZZLE the file name is read from standard input.

OPTIONS:
    -h, --help            Show this help message and exit
    -t, --tui             Open the full-screen viewer instead of printing

ENVIRONMENT:
    WORDHUNT_SEED         Fix the highlight colors to a reproducible sequence
    WORDHUNT_DEBUG=1      Log search details to WORDHUNT_DEBUG_FILE (wordhunt.log)
`)
}

type options struct {
	help bool
	tui  bool
	path string
}

var errUsage = errors.New("usage")

func parseArgs(args []string) (options, error) {
	var opts options
	for i, arg := range args {
		switch {
		case arg == "-h" || arg == "--help":
			opts.help = true
		case arg == "-t" || arg == "--tui":
			opts.tui = true
		case arg == "--":
			rest := args[i+1:]
			if len(rest) > 1 || (len(rest) == 1 && opts.path != "") {
				return opts, fmt.Errorf("%w: more than one puzzle file given", errUsage)
			}
			if len(rest) == 1 {
				opts.path = rest[0]
			}
			return opts, nil
		case strings.HasPrefix(arg, "-") && arg != "-":
			return opts, fmt.Errorf("%w: unknown option %s", errUsage, arg)
		default:
			if opts.path != "" {
				return opts, fmt.Errorf("%w: more than one puzzle file given", errUsage)
			}
			opts.path = arg
		}
	}
	return opts, nil
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, err := parseArgs(args)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n\n", err)
		printHelp(stderr)
		return exitUsage
	}
	if opts.help {
		printHelp(stdout)
		return exitOK
	}

	cfg, err := apppkg.LoadConfig(os.Getenv)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitUsage
	}

	console := apppkg.NewConsole(stdin, stdout)
	path := opts.path
	if path == "" {
		if path, err = console.PromptPath(); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return exitError
		}
	}

	puzzle, err := fs.ReadPuzzle(path)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}
	session := statepkg.NewSession(puzzle.Grid, puzzle.Words, cfg.NewRand())

	if opts.tui {
		return runViewer(session, stderr)
	}
	if err := console.Run(session); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}
	return exitOK
}

func runViewer(session *statepkg.Session, stderr io.Writer) int {
	// Set UTF-8 as fallback encoding so non-ASCII letters display correctly
	tcell.SetEncodingFallback(tcell.EncodingFallbackUTF8)

	app, err := apppkg.NewApplication(session)
	if err != nil {
		fmt.Fprintf(stderr, "Error initializing viewer: %v\n", err)
		return exitError
	}
	defer func() {
		_ = app.Close()
	}()

	app.Run()
	return exitOK
}
