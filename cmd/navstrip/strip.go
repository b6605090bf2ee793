package main

import (
	"fmt"
	"io"

	"github.com/fwojciec/navstrip"
	"github.com/fwojciec/navstrip/rewrite"
)

// Run executes the strip command and prints the report.
func (c *StripCmd) Run(deps *Dependencies) error {
	report, err := deps.Rewriter.Run(deps.Ctx, c.Root, c.progress(deps))
	if err != nil {
		return err
	}

	deps.Logger.Info("done",
		"root", report.Root,
		"scanned", report.Scanned,
		"changed", len(report.Changed),
		"dry_run", c.DryRun,
	)

	WriteReport(deps.Stdout, report)
	return nil
}

func (c *StripCmd) progress(deps *Dependencies) navstrip.ProgressFunc {
	return func(r *navstrip.FileResult) {
		deps.Logger.Debug("processed",
			"path", r.Path,
			"result", rewrite.FormatResult(r),
			"hash_before", r.HashBefore,
			"hash_after", r.HashAfter,
		)
		if r.Residue > 0 {
			deps.Logger.Warn("navs remain inside site header",
				"path", r.Path,
				"count", r.Residue,
			)
		}
	}
}

// WriteReport prints the changed files, or a note that nothing changed.
func WriteReport(w io.Writer, r *navstrip.Report) {
	if len(r.Changed) == 0 {
		fmt.Fprintln(w, "No changes needed.")
		return
	}

	fmt.Fprintln(w, r.Heading())
	for _, path := range r.Changed {
		fmt.Fprintf(w, " - %s\n", path)
	}
}
