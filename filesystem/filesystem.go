package filesystem

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

var (
	ErrFileNotFound = errors.New("filesystem: file not found")
	ErrInvalidPath  = errors.New("filesystem: invalid path")
)

// Filesystem is the storage surface the file routes consume.
type Filesystem interface {
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, content []byte) error
	FileExists(name string) (bool, error)
}

// Local resolves names against a single root directory. Names that
// escape the root are rejected rather than followed.
type Local struct {
	root string
}

func NewLocal(root string) *Local {
	return &Local{root: root}
}

func (filesystem *Local) ReadFile(name string) ([]byte, error) {
	path, err := filesystem.resolve(name)
	if err != nil {
		return nil, err
	}

	content, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrFileNotFound
	}
	return content, err
}

// WriteFile creates or overwrites the named file.
func (filesystem *Local) WriteFile(name string, content []byte) error {
	path, err := filesystem.resolve(name)
	if err != nil {
		return err
	}
	return os.WriteFile(path, content, 0644)
}

func (filesystem *Local) FileExists(name string) (bool, error) {
	path, err := filesystem.resolve(name)
	if err != nil {
		return false, err
	}

	_, err = os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return err == nil, err
}

// resolve joins name onto the root and confines the result to it.
func (filesystem *Local) resolve(name string) (string, error) {
	if filesystem.root == "" || name == "" {
		return "", ErrInvalidPath
	}

	path := filepath.Join(filesystem.root, name)
	rel, err := filepath.Rel(filesystem.root, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", ErrInvalidPath
	}
	return path, nil
}
