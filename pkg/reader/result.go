package reader

// Result is the outcome of one read: Success when Err is nil, Failure otherwise.
type Result struct {
	Path     string
	Contents string // empty on failure
	Err      *Error // nil on success
}

// OK returns true if the read succeeded.
func (r Result) OK() bool {
	return r.Err == nil
}

// Kind returns the failure kind, or "" on success.
func (r Result) Kind() Kind {
	if r.Err == nil {
		return ""
	}
	return r.Err.Kind
}

// Unwrap converts the result back into Go's (value, error) form.
func (r Result) Unwrap() (string, error) {
	if r.Err != nil {
		return "", r.Err
	}
	return r.Contents, nil
}
