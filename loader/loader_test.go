package loader

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readAll(t *testing.T, r io.Reader) string {
	t.Helper()
	b, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(b)
}

func TestStringLoader(t *testing.T) {
	r, err := StringLoader{}.Reader("host: localhost")
	require.NoError(t, err)
	assert.Equal(t, "host: localhost", readAll(t, r))
}

func TestFileLoader(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "data.yaml"), []byte("retries: 3\n"), 0o644))

	l := FileLoader{Root: dir}

	t.Run("existing file", func(t *testing.T) {
		r, err := l.Reader("data.yaml")
		require.NoError(t, err)
		defer r.(io.Closer).Close()
		assert.Equal(t, "retries: 3\n", readAll(t, r))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := l.Reader("nope.yaml")
		assert.ErrorContains(t, err, "nope.yaml")
	})
}

func TestMapLoader(t *testing.T) {
	l := MapLoader{"base": "hello"}

	r, err := l.Reader("base")
	require.NoError(t, err)
	assert.Equal(t, "hello", readAll(t, r))

	_, err = l.Reader("other")
	assert.ErrorContains(t, err, "not found")
}
