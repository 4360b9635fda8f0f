// Package workspace manages ephemeral workspace directories for builds that
// check content out of a remote repository.
package workspace

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"git.home.luguber.info/inful/sitegen/internal/logfields"
)

// Manager handles the lifecycle of a temporary workspace directory.
type Manager struct {
	baseDir string
	tempDir string
}

// NewManager creates a workspace manager rooted at baseDir (os.TempDir when empty).
func NewManager(baseDir string) *Manager {
	if baseDir == "" {
		baseDir = os.TempDir()
	}
	return &Manager{baseDir: baseDir}
}

// Create creates a timestamped workspace directory.
func (m *Manager) Create() error {
	timestamp := time.Now().Format("20060102-150405")
	tempDir := filepath.Join(m.baseDir, fmt.Sprintf("sitegen-%s", timestamp))

	if err := os.MkdirAll(tempDir, 0o750); err != nil {
		return fmt.Errorf("failed to create workspace directory: %w", err)
	}

	m.tempDir = tempDir
	slog.Debug("Created workspace", logfields.Path(tempDir))
	return nil
}

// Path returns the path to the workspace directory.
func (m *Manager) Path() string {
	return m.tempDir
}

// Cleanup removes the workspace directory.
func (m *Manager) Cleanup() error {
	if m.tempDir == "" {
		return nil
	}
	if err := os.RemoveAll(m.tempDir); err != nil {
		return fmt.Errorf("failed to cleanup workspace: %w", err)
	}
	slog.Debug("Cleaned up workspace", logfields.Path(m.tempDir))
	m.tempDir = ""
	return nil
}
