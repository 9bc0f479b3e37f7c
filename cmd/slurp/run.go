package main

import (
	"errors"
	"time"

	"github.com/spf13/cobra"

	"github.com/vertti/slurp/internal/logging"
	"github.com/vertti/slurp/pkg/check"
)

var (
	// ErrCheckFailed is returned when a check fails.
	ErrCheckFailed = errors.New("check failed")

	// ErrReadFailed is returned when cat cannot read its file.
	ErrReadFailed = errors.New("read failed")
)

// runCheck executes a check, prints the result, and returns an error if failed.
// The returned error causes main to exit with code 1.
func runCheck(cmd *cobra.Command, c check.Checker) error {
	start := time.Now()
	result := c.Run()
	logging.FromContext(cmd.Context()).Debug("check finished",
		logging.String("name", result.Name),
		logging.String("status", result.Status),
		logging.Duration("elapsed", time.Since(start)),
	)

	if err := newPrinter(cmd).PrintResult(result); err != nil {
		return err
	}
	if !result.OK() {
		return ErrCheckFailed
	}
	return nil
}
