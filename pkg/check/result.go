package check

import (
	"github.com/jmgilman/go/errors"
)

// Status represents the outcome of a check.
type Status string

const (
	StatusOK   Status = "OK"
	StatusFail Status = "FAIL"
)

// Result holds the outcome of a single check.
type Result struct {
	Name    string   // e.g., "read: config.yaml"
	Status  Status   // OK or FAIL
	Details []string // human-readable details
	Err     error    // underlying error for failures
}

// OK returns true if the check passed.
func (r Result) OK() bool {
	return r.Status == StatusOK
}

// Code returns the error code of Err, or "" when the check passed.
// Errors without a code report errors.CodeUnknown.
func (r Result) Code() errors.ErrorCode {
	if r.Err == nil {
		return ""
	}
	return errors.GetCode(r.Err)
}
