// Package git reads working-tree state through go-git and renders it as
// porcelain-style status text, one "<XY> <path>" line per change. Nothing
// here shells out; the repository is read in-process.
package git

import (
	"fmt"
	"sort"
	"strings"

	gogit "github.com/go-git/go-git/v5"
)

// OpenError is returned when the path is not inside a git repository.
type OpenError struct {
	Path  string
	Cause error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("failed to open repository at %s: %v", e.Path, e.Cause)
}
func (e *OpenError) Unwrap() error { return e.Cause }

// StatusError is returned when the working tree state cannot be read.
type StatusError struct {
	Path  string
	Cause error
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("failed to read status of %s: %v", e.Path, e.Cause)
}
func (e *StatusError) Unwrap() error { return e.Cause }

// Repository wraps an opened go-git repository rooted at or above path.
type Repository struct {
	path string
	repo *gogit.Repository
}

// Open locates the repository containing path, walking up parent
// directories the way the git CLI does.
func Open(path string) (*Repository, error) {
	repo, err := gogit.PlainOpenWithOptions(path, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, &OpenError{Path: path, Cause: err}
	}
	return &Repository{path: path, repo: repo}, nil
}

// StatusText renders the current working-tree status as porcelain-style
// text sorted by path. A clean tree yields the empty string.
func (r *Repository) StatusText() (string, error) {
	wt, err := r.repo.Worktree()
	if err != nil {
		return "", &StatusError{Path: r.path, Cause: err}
	}
	status, err := wt.Status()
	if err != nil {
		return "", &StatusError{Path: r.path, Cause: err}
	}
	return formatStatus(status), nil
}

// ConfigSection returns the options of one section of the repository's
// configuration as a flat key/value map. A missing section yields an
// empty map, not an error.
func (r *Repository) ConfigSection(name string) (map[string]string, error) {
	cfg, err := r.repo.Config()
	if err != nil {
		return nil, &StatusError{Path: r.path, Cause: err}
	}
	options := map[string]string{}
	for _, opt := range cfg.Raw.Section(name).Options {
		options[opt.Key] = opt.Value
	}
	return options, nil
}

// formatStatus renders a go-git status map in porcelain shape. go-git's own
// String() iterates the map unordered; sorting keeps snapshots of the same
// tree byte-identical.
func formatStatus(status gogit.Status) string {
	paths := make([]string, 0, len(status))
	for path := range status {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	var b strings.Builder
	for _, path := range paths {
		fileStatus := status[path]
		if fileStatus.Staging == gogit.Unmodified && fileStatus.Worktree == gogit.Unmodified {
			continue
		}
		name := path
		if fileStatus.Staging == gogit.Renamed {
			name = fmt.Sprintf("%s -> %s", path, fileStatus.Extra)
		}
		fmt.Fprintf(&b, "%c%c %s\n", fileStatus.Staging, fileStatus.Worktree, name)
	}
	return b.String()
}
