package reader

import (
	"io/fs"

	"github.com/jmgilman/go/errors"
)

// Kind distinguishes the two ways a read can fail.
type Kind string

const (
	KindNotFound Kind = "NotFound" // nothing exists at the path
	KindOtherIO  Kind = "OtherIO"  // permissions, device errors, undecodable contents
)

// ErrInvalidUTF8 is the cause attached when a file's bytes are not UTF-8 text.
var ErrInvalidUTF8 = errors.New(errors.CodeInvalidInput, "contents are not valid UTF-8")

var _ errors.PlatformError = (*Error)(nil)

// Error is the failure half of a read. Err is the filesystem error that
// caused it and is reachable through errors.Is / errors.As.
type Error struct {
	Kind Kind
	Path string
	Err  error
}

func newError(path string, err error) *Error {
	kind := KindOtherIO
	if errors.Is(err, fs.ErrNotExist) {
		kind = KindNotFound
	}
	return &Error{Kind: kind, Path: path, Err: err}
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Message()
	}
	return e.Message() + ": " + e.Err.Error()
}

// Message returns the failure without its cause, e.g. "file not found: a.txt".
func (e *Error) Message() string {
	if e.Kind == KindNotFound {
		return "file not found: " + e.Path
	}
	return "read failed: " + e.Path
}

// Code maps the failure onto the shared error codes.
func (e *Error) Code() errors.ErrorCode {
	switch {
	case e.Kind == KindNotFound:
		return errors.CodeNotFound
	case errors.Is(e.Err, fs.ErrPermission):
		return errors.CodeForbidden
	default:
		return errors.CodeInternal
	}
}

// Classification is always permanent: reads are never retried.
func (e *Error) Classification() errors.ErrorClassification {
	return errors.ClassificationPermanent
}

func (e *Error) Context() map[string]interface{} {
	return map[string]interface{}{
		"path": e.Path,
		"kind": string(e.Kind),
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsPermission reports whether the failure was caused by missing permissions.
func (e *Error) IsPermission() bool {
	return errors.Is(e.Err, fs.ErrPermission)
}

// KindOf classifies any error. It returns the Kind of the first *Error in the
// chain, falls back to fs.ErrNotExist detection and returns "" for nil.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var rerr *Error
	if errors.As(err, &rerr) {
		return rerr.Kind
	}
	if errors.Is(err, fs.ErrNotExist) {
		return KindNotFound
	}
	return KindOtherIO
}
