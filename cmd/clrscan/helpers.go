package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/clrscan/clrscan-go/pkg/clrscan"
	"github.com/clrscan/clrscan-go/pkg/clrscan/engine"
	"github.com/clrscan/clrscan-go/pkg/clrscan/models"
	"github.com/clrscan/clrscan-go/pkg/clrscan/output"
	"github.com/clrscan/clrscan-go/pkg/clrscan/rules"
)

// extractFlags are the shared extraction override flags. They invert
// the default-true options, so "changed" is enough to apply them.
type extractFlags struct {
	includeParents  bool
	includeExamples bool
	keepDuplicates  bool
}

func (ef *extractFlags) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.BoolVar(&ef.includeParents, "include-parents", false, "Keep variation parent rows")
	f.BoolVar(&ef.includeExamples, "include-examples", false, "Keep template example rows")
	f.BoolVar(&ef.keepDuplicates, "keep-duplicates", false, "Keep duplicate fulfillment-channel listings")
}

// options merges YAML configuration with any flags the user changed.
func (ef *extractFlags) options(cmd *cobra.Command) clrscan.Options {
	opts := clrscan.Options{
		ExcludeParents:               runCfg.Extraction.ExcludeParents,
		ExcludeExamples:              runCfg.Extraction.ExcludeExamples,
		CollapseDuplicateFulfillment: runCfg.Extraction.CollapseDuplicateFulfillment,
	}
	flagFalse := false
	if cmd.Flags().Changed("include-parents") && ef.includeParents {
		opts.ExcludeParents = &flagFalse
	}
	if cmd.Flags().Changed("include-examples") && ef.includeExamples {
		opts.ExcludeExamples = &flagFalse
	}
	if cmd.Flags().Changed("keep-duplicates") && ef.keepDuplicates {
		opts.CollapseDuplicateFulfillment = &flagFalse
	}
	return opts
}

// outputFlags are the shared rendering flags.
type outputFlags struct {
	format      string
	outputPath  string
	showDetails bool
}

func (of *outputFlags) register(cmd *cobra.Command, detailsDefault bool) {
	f := cmd.Flags()
	f.StringVar(&of.format, "format", "", "Output format: terminal, json, csv")
	f.StringVarP(&of.outputPath, "output", "o", "", "Output file path (default: stdout)")
	f.BoolVar(&of.showDetails, "show-details", detailsDefault, "Show per-finding tables in terminal output")
}

// emit renders reports in the selected format, writing to the output
// path when one is set.
func (of *outputFlags) emit(cmd *cobra.Command, reports []models.Report) error {
	format := of.format
	if format == "" {
		format = runCfg.Output.Format
	}
	path := of.outputPath
	if path == "" {
		path = runCfg.Output.Path
	}

	var w io.Writer = cmd.OutOrStdout()
	if path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	showDetails := of.showDetails
	if !cmd.Flags().Changed("show-details") && runCfg.Output.ShowDetails != nil {
		showDetails = *runCfg.Output.ShowDetails
	}

	switch format {
	case "json":
		data, err := output.ToJSON(reports, true)
		if err != nil {
			return fmt.Errorf("serialize reports: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case "csv":
		return output.WriteCSV(w, reports)
	case "", "terminal":
		if showDetails {
			output.RenderTerminal(w, reports, true)
		}
		output.RenderSummary(w, reports)
		return nil
	default:
		return fmt.Errorf("invalid format: %s (must be terminal, json, or csv)", format)
	}
}

// newEngine opens the catalog and registers the built-in rules minus
// any the configuration disables.
func newEngine(path string, opts clrscan.Options) (*clrscan.Catalog, *engine.Engine, error) {
	catalog, err := clrscan.Open(path, opts)
	if err != nil {
		return nil, nil, err
	}

	eng := catalog.NewEngine()
	for _, rule := range rules.Defaults() {
		if runCfg.Disabled(rule.Name()) {
			continue
		}
		if err := eng.Register(rule); err != nil {
			catalog.Close()
			return nil, nil, err
		}
	}
	return catalog, eng, nil
}
