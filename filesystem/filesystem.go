package filesystem

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"
)

var (
	ErrFileNotFound = fmt.Errorf("filesystem: file not found")
	ErrInvalidPath  = fmt.Errorf("filesystem: invalid path")
)

// Filesystem serves files below a fixed root directory. Names are joined onto the root
// as given; nothing stops a name from climbing out of it with "..".
type Filesystem interface {
	Resolve(name string) string

	// IsFile reports whether name is an existing regular file. Any failure to stat it
	// counts as no.
	IsFile(name string) bool
	FileSize(name string) (int64, error)

	// OpenFile opens a regular file for reading and reports its size.
	OpenFile(name string) (*os.File, int64, error)
	// WriteFile creates or truncates name and writes content verbatim.
	WriteFile(name string, content []byte) error
}

type localFileSystem struct {
	root string
}

func NewLocalFileSystem(root string) Filesystem {
	return &localFileSystem{root: root}
}

func (filesystem *localFileSystem) Resolve(name string) string {
	return filepath.Join(filesystem.root, name)
}

func (filesystem *localFileSystem) IsFile(name string) bool {
	info, err := os.Stat(filesystem.Resolve(name))
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

func (filesystem *localFileSystem) FileSize(name string) (int64, error) {
	info, err := os.Stat(filesystem.Resolve(name))
	if err != nil {
		if notFound(err) {
			return 0, ErrFileNotFound
		}
		return 0, err
	}
	return info.Size(), nil
}

func (filesystem *localFileSystem) OpenFile(name string) (*os.File, int64, error) {
	if !filesystem.IsFile(name) {
		return nil, 0, ErrFileNotFound
	}

	size, err := filesystem.FileSize(name)
	if err != nil {
		return nil, 0, err
	}

	file, err := os.Open(filesystem.Resolve(name))
	if err != nil {
		if notFound(err) {
			return nil, 0, ErrFileNotFound
		}
		return nil, 0, err
	}

	return file, size, nil
}

func (filesystem *localFileSystem) WriteFile(name string, content []byte) error {
	if name == "" {
		return ErrInvalidPath
	}

	return os.WriteFile(filesystem.Resolve(name), content, 0644)
}

// notFound reports errors meaning there is no file at the path, including a path
// component that is a file rather than a directory.
func notFound(err error) bool {
	return errors.Is(err, fs.ErrNotExist) ||
		errors.Is(err, syscall.ENOTDIR) ||
		errors.Is(err, syscall.ENAMETOOLONG)
}
