package site

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	sgerrors "git.home.luguber.info/inful/sitegen/internal/errors"
	"git.home.luguber.info/inful/sitegen/internal/logfields"
)

// Writer realizes the output tree. All paths are relative to the output root;
// escapes are rejected, parent directories are created, and existing files are
// overwritten unconditionally (every build is a full rebuild).
type Writer struct {
	root string
}

// NewWriter creates a writer rooted at the output directory.
func NewWriter(root string) *Writer {
	return &Writer{root: filepath.Clean(root)}
}

// Reset removes and recreates the output directory.
func (w *Writer) Reset() error {
	if err := os.RemoveAll(w.root); err != nil {
		return sgerrors.OutputWriteError(w.root, err)
	}
	if err := os.MkdirAll(w.root, 0o755); err != nil {
		return sgerrors.OutputWriteError(w.root, err)
	}
	return nil
}

// Write stores content at the given output-relative path.
func (w *Writer) Write(relPath string, content []byte) error {
	fullPath, err := w.resolve(relPath)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return sgerrors.OutputWriteError(fullPath, err)
	}

	if _, err := os.Stat(fullPath); err == nil {
		slog.Debug("Overwriting existing output file", logfields.Path(fullPath))
	}

	// #nosec G306 -- generated pages are public assets
	if err := os.WriteFile(fullPath, content, 0o644); err != nil {
		return sgerrors.OutputWriteError(fullPath, err)
	}
	return nil
}

// CopyTree recursively copies srcDir into the output root, overwriting
// generated files on name collision.
func (w *Writer) CopyTree(srcDir string) (int, error) {
	copied := 0
	err := filepath.WalkDir(srcDir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(srcDir, path)
		if err != nil {
			return err
		}
		if d.IsDir() {
			if rel == "." {
				return nil
			}
			target, rerr := w.resolve(rel)
			if rerr != nil {
				return rerr
			}
			return os.MkdirAll(target, 0o755)
		}
		if err := w.copyFile(path, rel); err != nil {
			return err
		}
		copied++
		return nil
	})
	if err != nil {
		if sge, ok := err.(*sgerrors.SiteGenError); ok {
			return copied, sge
		}
		return copied, sgerrors.OutputWriteError(srcDir, err)
	}
	return copied, nil
}

func (w *Writer) copyFile(src, rel string) error {
	target, err := w.resolve(rel)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return sgerrors.OutputWriteError(target, err)
	}

	in, err := os.Open(src)
	if err != nil {
		return sgerrors.OutputWriteError(src, err)
	}
	defer func() { _ = in.Close() }()

	out, err := os.Create(target)
	if err != nil {
		return sgerrors.OutputWriteError(target, err)
	}
	defer func() { _ = out.Close() }()

	if _, err := io.Copy(out, in); err != nil {
		return sgerrors.OutputWriteError(target, err)
	}
	return nil
}

// resolve joins rel onto the root and rejects path escapes.
func (w *Writer) resolve(relPath string) (string, error) {
	clean := filepath.Clean(relPath)
	if filepath.IsAbs(clean) || strings.HasPrefix(clean, "..") {
		return "", sgerrors.OutputWriteError(relPath, os.ErrInvalid).
			WithContext("reason", "path escapes output directory")
	}
	full := filepath.Join(w.root, clean)
	if rel, err := filepath.Rel(w.root, full); err != nil || strings.HasPrefix(rel, "..") {
		return "", sgerrors.OutputWriteError(relPath, os.ErrInvalid).
			WithContext("reason", "path escapes output directory")
	}
	return full, nil
}
