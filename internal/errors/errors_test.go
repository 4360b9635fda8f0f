package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorFormatting(t *testing.T) {
	err := New(CategoryConfig, SeverityFatal, "configuration file not found")
	require.Equal(t, "config (fatal): configuration file not found", err.Error())

	cause := errors.New("unexpected end of JSON input")
	wrapped := Wrap(cause, CategoryConfig, SeverityFatal, "configuration file is not valid JSON")
	require.Contains(t, wrapped.Error(), "unexpected end of JSON input")
	require.ErrorIs(t, wrapped, cause)
}

func TestCategoryHelpers(t *testing.T) {
	err := ContentReadError("content/post.md", errors.New("permission denied"))
	require.True(t, IsCategory(err, CategoryContent))
	require.False(t, IsCategory(err, CategoryConfig))
	require.Equal(t, CategoryContent, GetCategory(err))

	require.Equal(t, CategoryInternal, GetCategory(fmt.Errorf("plain")))
}

func TestWithContext(t *testing.T) {
	err := TemplateNotFound("list.html")
	require.Equal(t, "list.html", err.Context["template"])
}

func TestExitCodes(t *testing.T) {
	adapter := NewCLIErrorAdapter(false, nil)

	cases := []struct {
		err  error
		code int
	}{
		{nil, 0},
		{errors.New("plain"), 1},
		{ConfigNotFound("site.json"), 7},
		{ValidationFailed("menu", "not a list"), 2},
		{TemplateNotFound("page.html"), 11},
		{OutputWriteError("public/index.html", errors.New("disk full")), 11},
		{GitCloneError("https://example.com/repo.git", errors.New("404")), 11},
		{InternalError("unexpected state", nil), 10},
	}

	for _, tc := range cases {
		require.Equal(t, tc.code, adapter.ExitCodeFor(tc.err), "error: %v", tc.err)
	}
}

func TestFormatErrorVerbosity(t *testing.T) {
	err := ConfigNotFound("site.json")

	terse := NewCLIErrorAdapter(false, nil).FormatError(err)
	require.Equal(t, "configuration file not found", terse)

	verbose := NewCLIErrorAdapter(true, nil).FormatError(err)
	require.Contains(t, verbose, "config (fatal)")
}
