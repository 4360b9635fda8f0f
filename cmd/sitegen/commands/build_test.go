package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sgerrors "git.home.luguber.info/inful/sitegen/internal/errors"
)

func TestInitThenBuild(t *testing.T) {
	t.Chdir(t.TempDir())
	g := &Global{Config: "site.json"}

	initCmd := &InitCmd{Dir: "."}
	require.NoError(t, initCmd.Run(g))

	assert.FileExists(t, "site.json")
	assert.FileExists(t, "layout/post.html")
	assert.FileExists(t, "content/blog/2026-01-01-hello-world.md")

	buildCmd := &BuildCmd{
		Output:  "public",
		Content: "content",
		Layout:  "layout",
		Static:  "static",
	}
	require.NoError(t, buildCmd.Run(g))

	assert.FileExists(t, "public/index.html")
	assert.FileExists(t, "public/blog/index.html")
	assert.FileExists(t, "public/blog/hello-world/index.html")
	assert.FileExists(t, "public/blog/feed.xml")
	assert.FileExists(t, "public/style.css")
}

func TestInitRefusesOverwrite(t *testing.T) {
	t.Chdir(t.TempDir())
	g := &Global{Config: "site.json"}
	require.NoError(t, os.WriteFile("site.json", []byte("{}"), 0o644))

	err := (&InitCmd{Dir: "."}).Run(g)
	require.Error(t, err)
	assert.True(t, sgerrors.IsCategory(err, sgerrors.CategoryValidation))
}

func TestInitForceOverwrites(t *testing.T) {
	t.Chdir(t.TempDir())
	g := &Global{Config: "site.json"}
	require.NoError(t, os.WriteFile("site.json", []byte("{}"), 0o644))

	require.NoError(t, (&InitCmd{Dir: ".", Force: true}).Run(g))

	data, err := os.ReadFile("site.json")
	require.NoError(t, err)
	assert.Contains(t, string(data), "content_dirs")
}

func TestBuildMissingConfig(t *testing.T) {
	dir := t.TempDir()
	g := &Global{Config: filepath.Join(dir, "nope.json")}

	err := (&BuildCmd{Output: filepath.Join(dir, "public")}).Run(g)
	require.Error(t, err)
	assert.True(t, sgerrors.IsCategory(err, sgerrors.CategoryConfig))
}
