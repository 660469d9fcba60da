// Package allowlist restricts sign-in to the accounts listed in a TOML file.
//
// The file has a single key:
//
//	emails = ["creator@example.com", "manager@example.com"]
//
// A missing file denies everyone. Watch reloads the list when the file changes.
package allowlist

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/time/rate"

	"github.com/custodia-labs/tubedash/internal/core/ports/driven"
	"github.com/custodia-labs/tubedash/internal/logger"
)

// Ensure File implements the interface.
var _ driven.AllowList = (*File)(nil)

// reloadInterval bounds how often a burst of file events triggers a reload.
const reloadInterval = 250 * time.Millisecond

type fileFormat struct {
	Emails []string `toml:"emails"`
}

// File is an allow-list backed by a TOML file.
type File struct {
	path    string
	limiter *rate.Limiter

	mu     sync.RWMutex
	emails map[string]struct{}
}

// NewFile loads the allow-list at path.
func NewFile(path string) (*File, error) {
	f := &File{
		path:    path,
		limiter: rate.NewLimiter(rate.Every(reloadInterval), 1),
		emails:  make(map[string]struct{}),
	}
	if err := f.Reload(); err != nil {
		return nil, err
	}
	return f, nil
}

// Path returns the allow-list file path.
func (f *File) Path() string {
	return f.path
}

// Len returns the number of allowed accounts.
func (f *File) Len() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.emails)
}

// IsAllowed reports whether email is listed. Matching is case-insensitive.
func (f *File) IsAllowed(_ context.Context, email string) (bool, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	_, ok := f.emails[normalise(email)]
	return ok, nil
}

// Reload re-reads the file. On a parse error the previous list is kept.
func (f *File) Reload() error {
	emails, err := load(f.path)
	if err != nil {
		return err
	}

	f.mu.Lock()
	f.emails = emails
	f.mu.Unlock()

	logger.Debug("allowlist: loaded %d account(s) from %s", len(emails), f.path)
	return nil
}

// Watch reloads the list whenever the file changes, until ctx is done.
// The parent directory is watched so editors that replace the file are seen.
func (f *File) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(f.path)); err != nil {
		watcher.Close()
		return fmt.Errorf("watching %s: %w", filepath.Dir(f.path), err)
	}

	go f.watchLoop(ctx, watcher)
	return nil
}

func (f *File) watchLoop(ctx context.Context, watcher *fsnotify.Watcher) {
	defer watcher.Close()

	target := filepath.Clean(f.path)
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if err := f.limiter.Wait(ctx); err != nil {
				return
			}
			if err := f.Reload(); err != nil {
				logger.Warn("allowlist: keeping previous list: %v", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			logger.Warn("allowlist: watcher error: %v", err)
		}
	}
}

func load(path string) (map[string]struct{}, error) {
	emails := make(map[string]struct{})

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return emails, nil
		}
		return nil, fmt.Errorf("reading allowlist: %w", err)
	}

	var parsed fileFormat
	if err := toml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("parsing allowlist %s: %w", path, err)
	}

	for _, e := range parsed.Emails {
		if e = normalise(e); e != "" {
			emails[e] = struct{}{}
		}
	}
	return emails, nil
}

func normalise(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
