package commands

import (
	"fmt"
	"runtime"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	// Version information - set at build time
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// NewRootCommand creates the root command
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "firelink",
		Short: "Schema declaration validator for document-store code generation",
		Long: color.CyanString(`Firelink - declarative schema validation engine

Firelink ingests declaration manifests describing document-store collections,
per-field serialization directives, storage namespaces, and auth domains,
normalizes them into a schema graph, and validates every structural invariant
a code generator needs before it can safely emit accessors.

It performs no data access and emits no code: the validated graph is the
contract object handed to your generator.`),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(NewVersionCommand())
	rootCmd.AddCommand(NewValidateCommand())
	rootCmd.AddCommand(NewWatchCommand())

	return rootCmd
}

// NewVersionCommand creates the version command
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "firelink %s\n", Version)
			fmt.Fprintf(cmd.OutOrStdout(), "  commit:  %s\n", GitCommit)
			fmt.Fprintf(cmd.OutOrStdout(), "  built:   %s\n", BuildDate)
			fmt.Fprintf(cmd.OutOrStdout(), "  go:      %s\n", runtime.Version())
		},
	}
}
