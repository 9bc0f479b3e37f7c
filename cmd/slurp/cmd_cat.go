package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vertti/slurp/internal/logging"
	"github.com/vertti/slurp/pkg/reader"
)

const defaultPath = "README.md"

var catCmd = &cobra.Command{
	Use:   "cat [path]",
	Short: "Print a file's contents",
	Long: "Print a file's contents unchanged. Without a path, README.md in the " +
		"working directory is read.",
	Args: cobra.MaximumNArgs(1),
	RunE: runCat,
}

func init() {
	rootCmd.AddCommand(catCmd)
}

func runCat(cmd *cobra.Command, args []string) error {
	path := defaultPath
	if len(args) == 1 {
		path = args[0]
	}

	log := logging.FromContext(cmd.Context()).With(logging.String("path", path))
	log.Debug("reading file", logging.String("backend", settings.Backend))

	start := time.Now()
	contents, err := newReader().ReadString(path)
	p := newPrinter(cmd)
	if err != nil {
		log.Debug("read failed", logging.String("kind", reader.KindOf(err)), logging.Error(err))
		if perr := p.PrintReadError(err); perr != nil {
			return perr
		}
		return ErrReadFailed
	}

	log.Debug("read complete", logging.Int("bytes", len(contents)), logging.Duration("elapsed", time.Since(start)))
	return p.PrintContents(path, contents)
}
