package site

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sgerrors "git.home.luguber.info/inful/sitegen/internal/errors"
)

func TestWriterWriteCreatesParents(t *testing.T) {
	root := t.TempDir()
	w := NewWriter(filepath.Join(root, "public"))
	require.NoError(t, w.Reset())

	require.NoError(t, w.Write("blog/hello/index.html", []byte("<html></html>")))

	data, err := os.ReadFile(filepath.Join(root, "public", "blog", "hello", "index.html"))
	require.NoError(t, err)
	assert.Equal(t, "<html></html>", string(data))
}

func TestWriterResetWipesPreviousOutput(t *testing.T) {
	root := t.TempDir()
	w := NewWriter(root)
	require.NoError(t, w.Write("stale.html", []byte("old")))

	require.NoError(t, w.Reset())

	_, err := os.Stat(filepath.Join(root, "stale.html"))
	assert.True(t, os.IsNotExist(err))
}

func TestWriterRejectsPathEscape(t *testing.T) {
	w := NewWriter(t.TempDir())

	err := w.Write("../outside.html", []byte("x"))
	require.Error(t, err)
	assert.True(t, sgerrors.IsCategory(err, sgerrors.CategoryFileSystem))

	err = w.Write("/etc/passwd", []byte("x"))
	require.Error(t, err)
}

func TestWriterCopyTree(t *testing.T) {
	src := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(src, "css"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(src, "css", "style.css"), []byte("body{}"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(src, "robots.txt"), []byte("User-agent: *"), 0o644))

	out := t.TempDir()
	w := NewWriter(out)

	n, err := w.CopyTree(src)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	data, err := os.ReadFile(filepath.Join(out, "css", "style.css"))
	require.NoError(t, err)
	assert.Equal(t, "body{}", string(data))
}

func TestWriterCopyTreeOverwritesGenerated(t *testing.T) {
	src := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(src, "index.html"), []byte("static wins"), 0o644))

	out := t.TempDir()
	w := NewWriter(out)
	require.NoError(t, w.Write("index.html", []byte("generated")))

	_, err := w.CopyTree(src)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(out, "index.html"))
	require.NoError(t, err)
	assert.Equal(t, "static wins", string(data))
}
