// Package loader contains utilties for caching the read and parse of a file by
// path.
package loader

import (
	"fmt"
	"os"
)

// Contents is the raw bytes of a file, and the parsed object associated with
// the raw bytes.
type Contents[T any] struct {
	Raw    []byte
	Parsed T
}

// LoadFn defines how to turn bytes into an object when loading a file.
type LoadFn[T any] func(b []byte) (T, error)

// Loader contains cached file contents, keyed by path.
type Loader[T any] struct {
	load  LoadFn[T]
	files map[string]*Contents[T]
}

// New returns a Loader that parses files with f.
func New[T any](f LoadFn[T]) *Loader[T] {
	return &Loader[T]{
		load:  f,
		files: make(map[string]*Contents[T]),
	}
}

// LoadPath reads and parses the file at path. It will overwrite any existing
// file stored at that path in the loader.
func (l *Loader[T]) LoadPath(path string) (*Contents[T], error) {
	var err error
	contents := Contents[T]{}
	if contents.Raw, err = os.ReadFile(path); err != nil {
		return nil, err
	}
	if contents.Parsed, err = l.load(contents.Raw); err != nil {
		return nil, fmt.Errorf("error in LoadFn for %q: %w", path, err)
	}
	l.files[path] = &contents
	return &contents, nil
}

// LoadOrGet loads the file at path if it is not already cached. created is true
// if the file was read by this call.
func (l *Loader[T]) LoadOrGet(path string) (contents *Contents[T], created bool, err error) {
	if existing, ok := l.files[path]; ok {
		return existing, false, nil
	}
	c, err := l.LoadPath(path)
	if err != nil {
		return nil, false, err
	}
	return c, true, nil
}
