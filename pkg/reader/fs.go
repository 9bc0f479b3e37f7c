package reader

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/jmgilman/go/fs/billy"
	"github.com/jmgilman/go/fs/core"
)

// FileSystem abstracts opening a file for testability.
type FileSystem interface {
	Open(name string) (fs.File, error)
}

// OSFileSystem implements FileSystem using the actual file system.
// Relative paths resolve against the working directory.
type OSFileSystem struct{}

// Open opens name read-only.
func (OSFileSystem) Open(name string) (fs.File, error) {
	f, err := os.Open(name) //nolint:gosec // intentional: path from caller
	if err != nil {
		return nil, err
	}
	return f, nil
}

// BillyFileSystem implements FileSystem over a go-billy backed core.ReadFS.
type BillyFileSystem struct {
	FS core.ReadFS

	// Absolute resolves relative names against the working directory before
	// opening. Needed for billy's local filesystem, which is rooted at "/".
	Absolute bool
}

// NewLocalFS returns a FileSystem over billy's OS filesystem.
func NewLocalFS() *BillyFileSystem {
	return &BillyFileSystem{FS: billy.NewLocal(), Absolute: true}
}

// NewMemoryFS returns a FileSystem over an in-memory billy filesystem
// populated with files (name -> contents).
func NewMemoryFS(files map[string]string) (*BillyFileSystem, error) {
	mfs := billy.NewMemory()
	for name, contents := range files {
		if dir := filepath.Dir(name); dir != "." {
			if err := mfs.MkdirAll(dir, 0o755); err != nil {
				return nil, err
			}
		}
		if err := mfs.WriteFile(name, []byte(contents), 0o644); err != nil {
			return nil, err
		}
	}
	return &BillyFileSystem{FS: mfs}, nil
}

// Open opens name on the underlying filesystem.
func (b *BillyFileSystem) Open(name string) (fs.File, error) {
	if name == "" {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	if b.Absolute && !filepath.IsAbs(name) {
		abs, err := filepath.Abs(name)
		if err != nil {
			return nil, err
		}
		name = abs
	}
	return b.FS.Open(name)
}
