package gitfetch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sgerrors "git.home.luguber.info/inful/sitegen/internal/errors"
)

func TestLocalPath(t *testing.T) {
	assert.True(t, LocalPath(t.TempDir()))
	assert.False(t, LocalPath("https://example.org/site.git"))
	assert.False(t, LocalPath("/no/such/directory"))
}

func TestCheckoutBadURL(t *testing.T) {
	_, err := Checkout(t.TempDir(), "/no/such/repo", "main")
	require.Error(t, err)
	assert.True(t, sgerrors.IsCategory(err, sgerrors.CategoryGit))
}
