// Package reader reads whole files as text.
//
// A read performs one open and one full read. The handle is released on
// every exit path. A failure is reported as an *Error whose Kind is either
// KindNotFound or KindOtherIO; nothing is retried, cached or logged here.
package reader

import (
	"io"
	"unicode/utf8"
)

// Reader reads files through FS. The zero value reads from the OS filesystem.
type Reader struct {
	FS FileSystem
}

// New returns a Reader over fsys, or over the OS filesystem when fsys is nil.
func New(fsys FileSystem) *Reader {
	return &Reader{FS: fsys}
}

// ReadString returns the full contents of path. Bytes are passed through
// unchanged (no line-ending normalisation) but must decode as UTF-8.
// Any failure is an *Error.
func (r *Reader) ReadString(path string) (string, error) {
	contents, rerr := r.read(path)
	if rerr != nil {
		return "", rerr
	}
	return contents, nil
}

// Read is ReadString packaged as a Result.
func (r *Reader) Read(path string) Result {
	contents, rerr := r.read(path)
	if rerr != nil {
		return Result{Path: path, Err: rerr}
	}
	return Result{Path: path, Contents: contents}
}

func (r *Reader) read(path string) (string, *Error) {
	fsys := r.FS
	if fsys == nil {
		fsys = OSFileSystem{}
	}

	f, err := fsys.Open(path)
	if err != nil {
		return "", newError(path, err)
	}
	defer func() { _ = f.Close() }()

	data, err := io.ReadAll(f)
	if err != nil {
		return "", &Error{Kind: KindOtherIO, Path: path, Err: err}
	}
	if !utf8.Valid(data) {
		return "", &Error{Kind: KindOtherIO, Path: path, Err: ErrInvalidUTF8}
	}
	return string(data), nil
}

// ReadFile reads path from the OS filesystem.
func ReadFile(path string) (string, error) {
	var r Reader
	return r.ReadString(path)
}
