package workspace

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCreateAndCleanup(t *testing.T) {
	m := NewManager(t.TempDir())

	require.NoError(t, m.Create())
	path := m.Path()
	require.NotEmpty(t, path)
	require.DirExists(t, path)

	require.NoError(t, m.Cleanup())
	_, err := os.Stat(path)
	require.True(t, os.IsNotExist(err))
	require.Empty(t, m.Path())
}

func TestCleanupWithoutCreateIsNoop(t *testing.T) {
	m := NewManager(t.TempDir())
	require.NoError(t, m.Cleanup())
}
