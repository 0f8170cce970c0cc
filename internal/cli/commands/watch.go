package commands

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/firelink-dev/firelink/internal/cli/config"
	"github.com/firelink-dev/firelink/internal/cli/ui"
	"github.com/firelink-dev/firelink/internal/loader"
	"github.com/firelink-dev/firelink/internal/schema/registry"
	"github.com/firelink-dev/firelink/internal/watch"
)

// NewWatchCommand creates the watch command
func NewWatchCommand() *cobra.Command {
	var (
		manifestPath string
		noColor      bool
		verbose      bool
	)

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Revalidate the schema whenever the manifest changes",
		Long: `Watch monitors the declaration manifest and reruns the full validation
pass on every save. Each pass rebuilds the schema graph from scratch; nothing
is reused between passes.

Examples:
  # Watch the manifest from firelink.yml
  firelink watch

  # Watch an explicit manifest with debug logging
  firelink watch --manifest schemas/app.yml --verbose`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if manifestPath == "" {
				manifestPath = cfg.Schema.Manifest
			}
			if _, err := os.Stat(manifestPath); err != nil {
				return fmt.Errorf("manifest %s not found: %w", manifestPath, err)
			}

			logCfg := zap.NewDevelopmentConfig()
			if !verbose {
				logCfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
			} else {
				logCfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
			}
			log, err := logCfg.Build()
			if err != nil {
				return err
			}
			defer log.Sync()

			return runWatch(cmd.OutOrStdout(), manifestPath, log, noColor)
		},
	}

	cmd.Flags().StringVarP(&manifestPath, "manifest", "m", "", "path to the declaration manifest (default from firelink.yml)")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	return cmd
}

// runWatch validates once, then blocks revalidating on change until
// interrupted.
func runWatch(w io.Writer, manifestPath string, log *zap.Logger, noColor bool) error {
	rv := &revalidator{reg: registry.New(), out: w, noColor: noColor, log: log}

	// Initial pass; problems are reported, not fatal.
	if err := rv.run(manifestPath); err != nil {
		log.Warn("initial validation failed", zap.Error(err))
	}

	watcher, err := watch.NewManifestWatcher(manifestPath, log, rv.run)
	if err != nil {
		return err
	}
	if err := watcher.Start(); err != nil {
		return err
	}
	defer watcher.Stop()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	log.Info("stopping watch")
	return nil
}

// revalidator reuses one registry across passes, resetting it before each
// so every generation starts from an empty graph.
type revalidator struct {
	reg     *registry.Registry
	out     io.Writer
	noColor bool
	log     *zap.Logger
}

func (rv *revalidator) run(manifestPath string) error {
	rv.reg.Reset()

	manifest, err := loader.Load(manifestPath)
	if err != nil {
		return err
	}
	if err := rv.reg.CollectAll(manifest.Declarations); err != nil {
		return fmt.Errorf("malformed declaration: %w", err)
	}

	graph, diags := rv.reg.Resolve()
	ui.WriteDiagnostics(rv.out, diags, rv.noColor)

	if graph == nil {
		errs, _, _ := diags.Counts()
		rv.log.Info("schema rejected", zap.Int("errors", errs))
		return nil
	}

	ui.WriteSuccess(rv.out, fmt.Sprintf("schema validated: %d collection path(s)", graph.Collections().Count()), rv.noColor)
	return nil
}
