package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/navstrip/rewrite"
)

// Parser names accepted by --parser.
const (
	parserRegexp    = "regexp"
	parserTokenizer = "tokenizer"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
	Rewriter *rewrite.Rewriter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	DryRun  bool     `help:"Show which files would be modified without writing changes"`
	Exclude []string `short:"e" default:".git,node_modules" sep:"," help:"Directory names to skip at any depth"`
	Parser  string   `default:"regexp" enum:"regexp,tokenizer" help:"Header matching: regexp (first closing tag wins) or tokenizer (nesting-aware)"`
	Verbose bool     `short:"v" help:"Log progress and audit warnings to stderr"`
	Root    string   `arg:"" optional:"" default:"." help:"Directory to scan (default: current directory)"`
}

// StripCmd handles the strip operation.
type StripCmd struct {
	Root   string
	DryRun bool
}
