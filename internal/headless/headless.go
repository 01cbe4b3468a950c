// Package headless runs the search panel without a terminal UI, printing
// the results console of every file as plain text.
package headless

import (
	"context"
	"fmt"
	"io"
	"log"

	"findpanel/internal/config"
	"findpanel/internal/discovery"
	"findpanel/internal/domain"
	"findpanel/internal/eventbus"
	"findpanel/internal/ui/console"
	"findpanel/internal/ui/coordinator"
	"findpanel/internal/ui/searchinput"
	"findpanel/internal/ui/views"
	"findpanel/internal/workspace"
)

// Options configures a headless run
type Options struct {
	Pattern       string
	Regex         bool
	CaseSensitive bool
	WholeWord     bool

	// Replacement is used when ReplaceAll is set
	Replacement string
	ReplaceAll  bool
	// Write saves the files a replacement changed
	Write bool
}

// Summary counts what a run did
type Summary struct {
	Files   int
	Changed int
	Saved   int
}

// Run searches, or replaces in, every file found under paths
func Run(ctx context.Context, opts Options, paths []string, settings config.DiscoverySettings, out io.Writer) (Summary, error) {
	var summary Summary

	files, err := discovery.Scan(ctx, paths, settings)
	if err != nil {
		return summary, err
	}

	bus := eventbus.New()
	styles := views.NewStyles()
	input := searchinput.New(bus, styles)
	results := console.New(styles)
	coord := coordinator.NewCoordinator(bus, input, results)
	defer coord.Close()

	ws := workspace.New(bus)
	if err := ws.Open(files); err != nil {
		return summary, err
	}

	input.SetOptions(domain.SearchOptions{
		Regex:         opts.Regex,
		CaseSensitive: opts.CaseSensitive,
		WholeWord:     opts.WholeWord,
	})
	input.SetSearchText(opts.Pattern)
	input.SetReplaceText(opts.Replacement)

	field := searchinput.FieldSearch
	if opts.ReplaceAll {
		field = searchinput.FieldReplace
	}
	input.Focus(field)

	for i, doc := range ws.Documents() {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		if i > 0 {
			ws.Next()
		}

		input.Activate(true)
		summary.Files++
		if doc.Dirty() {
			summary.Changed++
		}

		if _, err := fmt.Fprintf(out, "== %s ==\n%s", doc.Path(), results.PlainText()); err != nil {
			return summary, fmt.Errorf("failed to write results: %w", err)
		}
	}

	if opts.ReplaceAll && opts.Write {
		saved, err := ws.SaveAll()
		summary.Saved = saved
		if err != nil {
			return summary, fmt.Errorf("failed to save documents: %w", err)
		}
	}

	log.Printf("Headless run: %d files, %d changed, %d saved", summary.Files, summary.Changed, summary.Saved)
	return summary, nil
}
