// Package gitfetch checks site content out of a git repository so a build can
// run against a remote source tree instead of a local directory.
package gitfetch

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	sgerrors "git.home.luguber.info/inful/sitegen/internal/errors"
	"git.home.luguber.info/inful/sitegen/internal/logfields"
)

// Checkout clones url into workspaceDir and returns the checkout path.
// The clone is shallow and single-branch; builds never need history.
func Checkout(workspaceDir, url, branch string) (string, error) {
	repoPath := filepath.Join(workspaceDir, "checkout")
	slog.Info("Cloning content repository", logfields.URL(url), logfields.Path(repoPath))

	options := &git.CloneOptions{
		URL:   url,
		Depth: 1,
	}
	if branch != "" {
		options.ReferenceName = plumbing.ReferenceName("refs/heads/" + branch)
		options.SingleBranch = true
	}

	repository, err := git.PlainClone(repoPath, false, options)
	if err != nil {
		return "", sgerrors.GitCloneError(url, err)
	}

	if ref, herr := repository.Head(); herr == nil {
		slog.Info("Content repository cloned", logfields.URL(url), slog.String("commit", ref.Hash().String()[:8]))
	}
	return repoPath, nil
}

// LocalPath reports whether the URL refers to an existing local directory,
// in which case no clone is needed.
func LocalPath(url string) bool {
	fi, err := os.Stat(url)
	return err == nil && fi.IsDir()
}
