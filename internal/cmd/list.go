package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"

	"github.com/quantmind-br/pylaunch/internal/config"
	"github.com/quantmind-br/pylaunch/internal/resolve"
	"github.com/quantmind-br/pylaunch/internal/scan"
	"github.com/quantmind-br/pylaunch/internal/ui"
)

// runList prints every interpreter discovered along the search path,
// one per version, sorted ascending.
func runList(cmd *cobra.Command, args []string, cfg *config.Config, env config.Environment, resolver *resolve.Resolver) error {
	jsonOutput := false
	showDetails := false
	for _, arg := range args {
		switch arg {
		case "--json":
			jsonOutput = true
		case "--details", "-d":
			showDetails = true
		default:
			return fmt.Errorf("unknown list option %q", arg)
		}
	}

	candidates := resolver.All(env.SearchPath(cfg))
	if len(candidates) == 0 {
		ui.PrintError("%v", resolve.ErrNoInterpreter)
		return resolve.ErrNoInterpreter
	}

	switch {
	case jsonOutput:
		return renderJSON(cmd.OutOrStdout(), candidates)
	case showDetails:
		renderDetails(cmd, candidates)
		return nil
	default:
		renderPlain(cmd.OutOrStdout(), candidates)
		return nil
	}
}

// renderPlain writes the two-column table: headers, `=` underlines
// sized to the widest cell, two spaces between columns.
func renderPlain(w io.Writer, candidates []scan.Candidate) {
	width := len("Version")
	for _, candidate := range candidates {
		if l := len(candidate.Version.String()); l > width {
			width = l
		}
	}

	fmt.Fprintf(w, "%-*s  %s\n", width, "Version", "Path")
	fmt.Fprintf(w, "%-*s  %s\n", width, strings.Repeat("=", width), strings.Repeat("=", len("Path")))
	for _, candidate := range candidates {
		fmt.Fprintf(w, "%-*s  %s\n", width, candidate.Version.String(), candidate.Path)
	}
}

// renderJSON emits the discovered pairs as a JSON array.
func renderJSON(w io.Writer, candidates []scan.Candidate) error {
	type entry struct {
		Version string `json:"version"`
		Path    string `json:"path"`
	}

	entries := make([]entry, 0, len(candidates))
	for _, candidate := range candidates {
		entries = append(entries, entry{
			Version: candidate.Version.String(),
			Path:    candidate.Path,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(entries)
}

// renderDetails prints the tablewriter variant with the containing
// directory split out.
func renderDetails(cmd *cobra.Command, candidates []scan.Candidate) {
	table := tablewriter.NewTable(cmd.OutOrStdout(),
		tablewriter.WithHeader([]string{"Version", "Executable", "Directory"}),
		tablewriter.WithAlignment(tw.MakeAlign(3, tw.AlignLeft)),
		tablewriter.WithSymbols(tw.NewSymbols(tw.StyleNone)),
	)

	for _, candidate := range candidates {
		table.Append(
			candidate.Version.String(),
			filepath.Base(candidate.Path),
			filepath.Dir(candidate.Path),
		)
	}

	table.Render()
}
