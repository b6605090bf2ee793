package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/navstrip"
	"github.com/fwojciec/navstrip/fs"
	"github.com/fwojciec/navstrip/goquery"
	navhtml "github.com/fwojciec/navstrip/html"
	navregexp "github.com/fwojciec/navstrip/regexp"
	"github.com/fwojciec/navstrip/rewrite"
	navslog "github.com/fwojciec/navstrip/slog"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	exited := false
	parser, err := kong.New(cli,
		kong.Name("navstrip"),
		kong.Description("Remove <nav> elements nested in <header class=\"site-header\"> blocks of HTML files"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) { exited = true }),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	_, err = parser.Parse(args)

	// Help printed mid-parse must not fall through to a run
	if exited {
		return nil
	}
	if err != nil {
		return err
	}

	// Wire dependencies
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Logger: newLogger(stderr, cli.Verbose),
	}

	var (
		finder   navstrip.FileFinder = fs.NewFinder(cli.Exclude...)
		store    navstrip.FileStore  = fs.NewStore()
		stripper navstrip.Stripper
	)
	switch cli.Parser {
	case parserRegexp:
		stripper = navregexp.NewStripper()
	case parserTokenizer:
		stripper = navhtml.NewStripper()
	default:
		return fmt.Errorf("unknown parser %q", cli.Parser)
	}

	rewriter := &rewrite.Rewriter{DryRun: cli.DryRun}
	if cli.Verbose {
		finder = navslog.NewLoggingFinder(finder, deps.Logger)
		store = navslog.NewLoggingStore(store, deps.Logger)
		stripper = navslog.NewLoggingStripper(stripper, deps.Logger)
		rewriter.Auditor = goquery.NewAuditor()
	}
	rewriter.Finder = finder
	rewriter.Store = store
	rewriter.Stripper = stripper
	deps.Rewriter = rewriter

	cmd := &StripCmd{
		Root:   cli.Root,
		DryRun: cli.DryRun,
	}

	return cmd.Run(deps)
}

// newLogger returns a debug-level text logger on w when verbose, and a
// logger that discards everything otherwise.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	if !verbose {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
