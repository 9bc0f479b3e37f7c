package check

import (
	"fmt"
	"regexp"
)

// Fail sets the result to failed status with a detail message.
func (r *Result) Fail(detail string, err error) Result {
	r.Status = StatusFail
	r.Details = append(r.Details, detail)
	r.Err = err
	return *r
}

// Failf sets the result to failed status with a formatted detail message.
func (r *Result) Failf(format string, args ...any) Result {
	msg := fmt.Sprintf(format, args...)
	return r.Fail(msg, fmt.Errorf("%s", msg))
}

// Pass sets the result to OK status.
func (r *Result) Pass() Result {
	r.Status = StatusOK
	r.Err = nil
	return *r
}

// AddDetail appends a detail line to the result.
func (r *Result) AddDetail(detail string) *Result {
	r.Details = append(r.Details, detail)
	return r
}

// AddDetailf appends a formatted detail line to the result.
func (r *Result) AddDetailf(format string, args ...any) *Result {
	return r.AddDetail(fmt.Sprintf(format, args...))
}

// CompileRegex compiles a regex pattern if non-empty, returning nil if pattern is empty.
func CompileRegex(pattern string) (*regexp.Regexp, error) {
	if pattern == "" {
		return nil, nil
	}
	return regexp.Compile(pattern)
}
