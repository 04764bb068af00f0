package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/relink/pkg/config"
	"github.com/walteh/relink/pkg/operation"
	"github.com/walteh/relink/pkg/report"
	"gitlab.com/tozd/go/errors"
)

var (
	// Flags
	targetFile string
	configFile string
	dryRun     bool
	debug      bool
)

// newRootCmd creates the relink root command
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "relink",
		Short: "Rewrite hard-coded paths in a static HTML file for subdirectory serving",
		Long: `relink rewrites hard-coded paths in a static HTML file so the site
resolves correctly when served from a subdirectory (a GitHub Pages project
site) instead of the domain root. It applies an ordered rule table once,
reports what fired, and re-scans the result for known-bad leftovers.`,
		RunE:          run,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "preview changes without writing anything")
	cmd.Flags().StringVar(&targetFile, "file", "", "target file to process (default from config)")
	cmd.Flags().StringVarP(&configFile, "config", "c", "", "config file path (.yaml or .hcl)")
	cmd.Flags().BoolVarP(&debug, "debug", "d", false, "enable debug logging")

	return cmd
}

// run executes a single rewrite
func run(cmd *cobra.Command, args []string) error {
	// Diagnostics go to stderr so the fixed report on stdout stays clean.
	logLevel := zerolog.WarnLevel
	if debug {
		logLevel = zerolog.DebugLevel
	}
	logger := zerolog.New(os.Stderr).Level(logLevel).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	cfg, err := config.Load(ctx, configFile)
	if err != nil {
		return errors.Errorf("loading config: %w", err)
	}

	op := operation.NewRewriteOperation(operation.Options{
		Config:  cfg,
		Path:    targetFile,
		DryRun:  dryRun,
		Printer: report.New(os.Stdout),
	})

	return op.Run(ctx)
}
