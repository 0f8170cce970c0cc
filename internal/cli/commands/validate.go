package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/firelink-dev/firelink/internal/cli/config"
	"github.com/firelink-dev/firelink/internal/cli/ui"
	"github.com/firelink-dev/firelink/internal/loader"
	"github.com/firelink-dev/firelink/internal/schema/registry"
)

// NewValidateCommand creates the validate command
func NewValidateCommand() *cobra.Command {
	var (
		manifestPath string
		outputPath   string
		jsonOutput   bool
		noColor      bool
		noExport     bool
	)

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate the schema manifest and export the graph",
		Long: `Validate loads the declaration manifest, resolves it into a schema graph,
and reports every violation found in one pass.

On success the validated graph is exported as JSON for the code generator.
On rejection the command exits non-zero after printing all diagnostics.

Examples:
  # Validate using firelink.yml settings
  firelink validate

  # Validate an explicit manifest without writing the graph export
  firelink validate --manifest schemas/app.yml --no-export

  # Machine-readable diagnostics
  firelink validate --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if manifestPath == "" {
				manifestPath = cfg.Schema.Manifest
			}
			if outputPath == "" {
				outputPath = cfg.Output.GraphPath
			}
			if noExport {
				outputPath = ""
			}
			if cfg.Output.Format == "json" {
				jsonOutput = true
			}
			return runValidate(cmd.OutOrStdout(), manifestPath, outputPath, jsonOutput, noColor)
		},
	}

	cmd.Flags().StringVarP(&manifestPath, "manifest", "m", "", "path to the declaration manifest (default from firelink.yml)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "path for the validated graph export (default from firelink.yml)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "print diagnostics as JSON")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")
	cmd.Flags().BoolVar(&noExport, "no-export", false, "skip writing the graph export")

	return cmd
}

// runValidate performs one full validation pass: load, collect, resolve,
// report, export.
func runValidate(w io.Writer, manifestPath, outputPath string, jsonOutput, noColor bool) error {
	manifest, err := loader.Load(manifestPath)
	if err != nil {
		return err
	}

	r := registry.New()
	if err := r.CollectAll(manifest.Declarations); err != nil {
		return fmt.Errorf("malformed declaration in %s: %w", manifestPath, err)
	}

	graph, diags := r.Resolve()

	if jsonOutput {
		out, err := diags.ToJSON()
		if err != nil {
			return err
		}
		fmt.Fprintln(w, out)
	} else {
		ui.WriteDiagnostics(w, diags, noColor)
	}

	if graph == nil {
		errs, _, _ := diags.Counts()
		return fmt.Errorf("schema rejected: %d problem(s) found", errs)
	}

	if outputPath != "" {
		data, err := graph.Export()
		if err != nil {
			return err
		}
		if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
		if err := os.WriteFile(outputPath, data, 0o644); err != nil {
			return fmt.Errorf("failed to write graph export: %w", err)
		}
	}

	if !jsonOutput {
		msg := fmt.Sprintf("schema validated: %d collection path(s)", graph.Collections().Count())
		if outputPath != "" {
			msg += fmt.Sprintf(", graph written to %s", outputPath)
		}
		ui.WriteSuccess(w, msg, noColor)
	}
	return nil
}
