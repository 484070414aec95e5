// Package testhelpers provides shared utilities for pipeline and CLI tests.
package testhelpers

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/Cyclone1070/cmsg/internal/message"
	"github.com/Cyclone1070/cmsg/internal/ui"
	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// MockInteractor implements ui.Interactor for testing
type MockInteractor struct {
	mu       sync.Mutex
	Statuses []string
	Rendered []string

	SelectTypeFunc     func(ctx context.Context, candidates []message.Candidate) (string, error)
	ReadFooterFunc     func(ctx context.Context, prompt string) (string, error)
	ConfirmMessageFunc func(ctx context.Context, rendered string) (ui.Confirmation, error)
}

// SelectType returns the top-ranked candidate unless overridden
func (m *MockInteractor) SelectType(ctx context.Context, candidates []message.Candidate) (string, error) {
	if m.SelectTypeFunc != nil {
		return m.SelectTypeFunc(ctx, candidates)
	}
	if len(candidates) == 0 {
		return "", errors.New("no candidates")
	}
	return candidates[0].Type, nil
}

// ReadFooter returns an empty footer unless overridden
func (m *MockInteractor) ReadFooter(ctx context.Context, prompt string) (string, error) {
	if m.ReadFooterFunc != nil {
		return m.ReadFooterFunc(ctx, prompt)
	}
	return "", nil
}

// ConfirmMessage records the rendered message and accepts unless overridden
func (m *MockInteractor) ConfirmMessage(ctx context.Context, rendered string) (ui.Confirmation, error) {
	m.mu.Lock()
	m.Rendered = append(m.Rendered, rendered)
	m.mu.Unlock()

	if m.ConfirmMessageFunc != nil {
		return m.ConfirmMessageFunc(ctx, rendered)
	}
	return ui.ConfirmAccept, nil
}

// WriteStatus records the status update
func (m *MockInteractor) WriteStatus(phase, message string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Statuses = append(m.Statuses, phase+": "+message)
}

// GetStatuses returns a copy of the recorded status updates
func (m *MockInteractor) GetStatuses() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	statuses := make([]string, len(m.Statuses))
	copy(statuses, m.Statuses)
	return statuses
}

// GetRendered returns a copy of every message shown for confirmation
func (m *MockInteractor) GetRendered() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	rendered := make([]string, len(m.Rendered))
	copy(rendered, m.Rendered)
	return rendered
}

// InitTestRepo creates a temporary git repository and returns its path
func InitTestRepo(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if _, err := gogit.PlainInit(dir, false); err != nil {
		t.Fatalf("init test repo: %v", err)
	}
	return dir
}

// WriteTestFile writes content to a file inside the repository
func WriteTestFile(t *testing.T, repoPath, name, content string) {
	t.Helper()
	path := filepath.Join(repoPath, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for test file: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write test file: %v", err)
	}
}

// CommitAll stages every pending change and commits it, so later edits show
// up as modifications of tracked files.
func CommitAll(t *testing.T, repoPath string) {
	t.Helper()
	repo, err := gogit.PlainOpen(repoPath)
	if err != nil {
		t.Fatalf("open test repo: %v", err)
	}
	wt, err := repo.Worktree()
	if err != nil {
		t.Fatalf("worktree of test repo: %v", err)
	}
	if err := wt.AddWithOptions(&gogit.AddOptions{All: true}); err != nil {
		t.Fatalf("stage test files: %v", err)
	}
	_, err = wt.Commit("setup", &gogit.CommitOptions{
		Author: &object.Signature{Name: "test", Email: "test@example.com", When: time.Now()},
	})
	if err != nil {
		t.Fatalf("commit test files: %v", err)
	}
}
