// Package loader provides source retrieval for the template engine.
// Implementations decide what a source name means: a file path under a root
// directory, a map key, or the source text itself.
package loader

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Loader retrieves a named source document.
type Loader interface {
	// Reader returns the content of the named source. The caller closes the
	// reader if it implements io.Closer.
	Reader(name string) (io.Reader, error)
}

// StringLoader treats the name as the source itself. It is useful when
// callers already hold the text in memory and just want to push it through
// machinery that speaks in loaders.
type StringLoader struct{}

func (StringLoader) Reader(name string) (io.Reader, error) {
	return strings.NewReader(name), nil
}

// FileLoader resolves names against a root directory.
type FileLoader struct {
	Root string
}

func (l FileLoader) Reader(name string) (io.Reader, error) {
	f, err := os.Open(filepath.Join(l.Root, name))
	if err != nil {
		return nil, fmt.Errorf("loading %q: %w", name, err)
	}
	return f, nil
}

// MapLoader serves sources from an in-memory map, mainly for tests and
// embedding.
type MapLoader map[string]string

func (l MapLoader) Reader(name string) (io.Reader, error) {
	src, ok := l[name]
	if !ok {
		return nil, fmt.Errorf("source %q not found", name)
	}
	return strings.NewReader(src), nil
}
