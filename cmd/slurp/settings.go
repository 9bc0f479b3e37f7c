package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vertti/slurp/internal/config"
	"github.com/vertti/slurp/internal/logging"
	"github.com/vertti/slurp/pkg/output"
	"github.com/vertti/slurp/pkg/reader"
)

var (
	configPath  string
	formatFlag  string
	backendFlag string
	verboseFlag bool
)

// Resolved by loadSettings before any subcommand runs.
var settings = config.Default()

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "path to settings file (default: search up for "+config.FileName+")")
	flags.StringVar(&formatFlag, "format", "text", "output format: text or json")
	flags.StringVar(&backendFlag, "backend", config.BackendOS, "filesystem backend: os or billy")
	flags.BoolVarP(&verboseFlag, "verbose", "v", false, "log debug events to stderr")
}

// loadSettings merges the settings file, environment and flags.
// Flags win over the file.
func loadSettings(cmd *cobra.Command, _ []string) error {
	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	path, err := config.FindFile(wd, configPath)
	if err != nil {
		return err
	}

	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("format") {
		cfg.Format = formatFlag
	}
	if cmd.Flags().Changed("backend") {
		cfg.Backend = backendFlag
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = verboseFlag
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	settings = cfg
	logger := logging.New(cmd.ErrOrStderr(), cfg.Verbose)
	cmd.SetContext(logger.WithContext(cmd.Context()))
	logger.Debug("settings loaded",
		logging.String("config", path),
		logging.String("format", cfg.Format),
		logging.String("backend", cfg.Backend),
	)
	return nil
}

func newReader() *reader.Reader {
	if settings.Backend == config.BackendBilly {
		return reader.New(reader.NewLocalFS())
	}
	return reader.New(reader.OSFileSystem{})
}

func newPrinter(cmd *cobra.Command) *output.Printer {
	return &output.Printer{
		Out:    cmd.OutOrStdout(),
		Err:    cmd.ErrOrStderr(),
		Format: output.Format(settings.Format),
	}
}
