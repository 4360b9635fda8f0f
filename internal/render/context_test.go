package render

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/sitegen/internal/config"
	"git.home.luguber.info/inful/sitegen/internal/content"
)

func testSite() *config.Site {
	return &config.Site{
		Author:          "Jane",
		Subtitle:        "notes",
		Description:     "a site",
		URL:             "https://example.com",
		DateHumanFormat: "02 Jan, 2006",
		Menu:            []config.MenuEntry{{Label: "Home", Target: "/"}},
		ContentDirs:     map[string]config.DirConfig{},
		Extra:           map[string]any{"analytics_id": "UA-1", "body_class": "wide"},
	}
}

func TestSiteContext_ConfigAndExtras(t *testing.T) {
	b := NewContextBuilder(testSite())
	ctx := b.Site()

	require.Equal(t, "Jane", ctx["author"])
	require.Equal(t, "notes", ctx["site_subtitle"])
	require.Equal(t, "UA-1", ctx["analytics_id"], "extra keys pass through verbatim")
	require.Equal(t, "wide", ctx["body_class"], "extras override contract defaults")
	require.Equal(t, "", ctx["social"], "contract keys always present")
	require.Equal(t, time.Now().Year(), ctx["current_year"])

	menu, ok := ctx["menu"].([]map[string]string)
	require.True(t, ok)
	require.Equal(t, "Home", menu[0]["label"])
	require.Equal(t, "/", menu[0]["target"])
}

func TestDocumentContext(t *testing.T) {
	dc := &config.DirConfig{Name: "blog", Title: "Blog", Slug: "blog", GenerateIndex: true}
	doc := &content.Document{
		Slug:  "hello",
		Title: "Hello",
		Date:  time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		HTML:  "<h1>Hi</h1>",
		Dir:   dc,
		Meta:  map[string]any{"body_class": "post", "custom": "v"},
	}

	ctx := NewContextBuilder(testSite()).Document(doc, "..")

	require.Equal(t, "Hello", ctx["title"])
	require.Equal(t, "hello", ctx["slug"])
	require.Equal(t, "<h1>Hi</h1>", ctx["content"])
	require.Equal(t, "..", ctx["base_path"])
	require.Equal(t, "2024-03-01", ctx["short_date"])
	require.Equal(t, "01 Mar, 2024", ctx["human_date"])
	require.Equal(t, "Fri, 01 Mar 2024 00:00:00 +0000", ctx["rfc_2822_date"])
	require.Equal(t, "post", ctx["body_class"], "header fields override extras")
	require.Equal(t, "v", ctx["custom"])

	cur, ok := ctx["current_content_dir"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "blog", cur["name"])
	require.Equal(t, true, cur["generate_index"])
}

func TestDocumentContext_RootHasNilContentDir(t *testing.T) {
	doc := &content.Document{Slug: "about", Title: "About", Date: time.Now(), Meta: map[string]any{}}
	ctx := NewContextBuilder(testSite()).Document(doc, ".")
	require.Nil(t, ctx["current_content_dir"])
}

func TestDirectoryContext_UsesProvidedUpdatedTime(t *testing.T) {
	dc := &config.DirConfig{Name: "blog", Title: "Blog", Slug: "blog"}
	updated := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	ctx := NewContextBuilder(testSite()).Directory(dc, ".", updated)
	require.Equal(t, "Blog", ctx["title"])
	require.Equal(t, "2024-03-01", ctx["short_date"])
	require.Equal(t, "2024-03-01T00:00:00Z", ctx["rfc_3339_date"])
}
