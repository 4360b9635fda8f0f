package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	sgerrors "git.home.luguber.info/inful/sitegen/internal/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "site.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_FullConfig(t *testing.T) {
	path := writeConfig(t, `{
		"author": "Jane Doe",
		"site_subtitle": "notes",
		"site_description": "a site",
		"site_url": "https://example.com/",
		"date_human_format": "2 January 2006",
		"menu": [["Home", "/"], ["Blog", "/blog/"]],
		"content_dirs": {
			"blog": {"title": "Weblog", "slug": "b", "generate_index": true, "generate_rss": "yes"},
			"pages": {}
		},
		"social": {"mastodon": "@jane"},
		"body_class": "wide"
	}`)

	site, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, "Jane Doe", site.Author)
	require.Equal(t, "notes", site.Subtitle)
	require.Equal(t, "https://example.com", site.URL, "trailing slash is trimmed")
	require.Equal(t, "2 January 2006", site.DateHumanFormat)
	require.Equal(t, []MenuEntry{{"Home", "/"}, {"Blog", "/blog/"}}, site.Menu)

	blog := site.ContentDirs["blog"]
	require.Equal(t, "Weblog", blog.Title)
	require.Equal(t, "b", blog.Slug)
	require.True(t, blog.GenerateIndex)
	require.True(t, blog.GenerateRSS, "string booleans are accepted")

	pages := site.ContentDirs["pages"]
	require.Equal(t, "Pages", pages.Title, "title defaults to title-cased dir name")
	require.Equal(t, "pages", pages.Slug)
	require.False(t, pages.GenerateIndex)
	require.False(t, pages.GenerateRSS)
}

func TestLoad_ExtraKeysPassThrough(t *testing.T) {
	path := writeConfig(t, `{"author": "A", "analytics_id": "UA-1", "nav_style": "minimal"}`)

	site, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "UA-1", site.Extra["analytics_id"])
	require.Equal(t, "minimal", site.Extra["nav_style"])
	require.NotContains(t, site.Extra, "author", "typed keys are not duplicated into Extra")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	require.True(t, sgerrors.IsCategory(err, sgerrors.CategoryConfig))
}

func TestLoad_MalformedJSON(t *testing.T) {
	path := writeConfig(t, `{"author": `)
	_, err := Load(path)
	require.Error(t, err)
	require.True(t, sgerrors.IsCategory(err, sgerrors.CategoryConfig))
}

func TestLoad_MenuObjectForm(t *testing.T) {
	path := writeConfig(t, `{"menu": [
		{"label": "Home", "target": "/"},
		["Blog", "/blog/"]
	]}`)

	site, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, []MenuEntry{{"Home", "/"}, {"Blog", "/blog/"}}, site.Menu, "pair and object entries may be mixed")
}

func TestLoad_BadMenuShape(t *testing.T) {
	for _, menu := range []string{
		`[["only-one-element"]]`,
		`[{"label": "no target"}]`,
		`["bare-string"]`,
	} {
		path := writeConfig(t, `{"menu": `+menu+`}`)
		_, err := Load(path)
		require.Error(t, err, menu)
		require.True(t, sgerrors.IsCategory(err, sgerrors.CategoryValidation), menu)
	}
}

func TestLoad_EnvExpansion(t *testing.T) {
	t.Setenv("SITEGEN_TEST_AUTHOR", "From Env")
	path := writeConfig(t, `{"author": "${SITEGEN_TEST_AUTHOR}"}`)

	site, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "From Env", site.Author)
}

func TestLoad_AppliesDefaults(t *testing.T) {
	path := writeConfig(t, `{}`)
	site, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "Admin", site.Author)
	require.Equal(t, "02 Jan, 2006", site.DateHumanFormat)
	require.Empty(t, site.ContentDirs)
	require.NotNil(t, site.Extra)
}

func TestToBool(t *testing.T) {
	cases := []struct {
		in   any
		want bool
	}{
		{true, true},
		{false, false},
		{float64(1), true},
		{float64(0), false},
		{"yes", true},
		{"True", true},
		{"1", true},
		{"no", false},
		{"", false},
		{nil, false},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, ToBool(tc.in), "input: %v", tc.in)
	}
}
