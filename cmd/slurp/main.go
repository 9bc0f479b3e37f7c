package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vertti/slurp/internal/logging"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	cmd, err := rootCmd.ExecuteC()
	if cmd != nil {
		_ = logging.FromContext(cmd.Context()).Sync()
	}
	if err != nil {
		if !errors.Is(err, ErrCheckFailed) && !errors.Is(err, ErrReadFailed) {
			fmt.Fprintf(os.Stderr, "slurp: %v\n", err)
		}
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "slurp",
	Short: "Read files and report why they could not be read",
	Long: "Slurp reads a file as text. A failed read is reported as NotFound " +
		"when nothing exists at the path, or OtherIO for any other failure.",
	Version:           Version,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadSettings,
}
