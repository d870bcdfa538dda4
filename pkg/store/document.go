// Package store provides the flat-document persistence primitive behind the
// order repository: one JSON document, read whole and replaced whole.
//
// There is no partial update, no versioning, and no cross-process isolation —
// two processes writing the same document race with last-write-wins semantics
// at whole-document granularity. The deployment model is single-process,
// single-writer; the known upgrade path (compare-and-swap on a version tag, or
// a transactional store) is documented in DESIGN.md rather than silently
// applied, since applying it changes observable behavior.
package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// DocumentStore reads and replaces a single document on an afero filesystem.
// Inject afero.NewOsFs() in production and afero.NewMemMapFs() in tests.
type DocumentStore struct {
	fs   afero.Fs
	path string
}

// New returns a DocumentStore over the given filesystem and document path.
func New(fs afero.Fs, path string) *DocumentStore {
	return &DocumentStore{fs: fs, path: path}
}

// Read returns the full document contents. A missing document is not an
// error: callers get (nil, nil) and treat it as an empty collection. This is
// the lenient-read policy — availability over strictness on the read path.
func (s *DocumentStore) Read(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("store: read %s: %w", s.path, err)
	}
	return data, nil
}

// Replace atomically swaps the document contents: the new bytes are written
// to a temp file in the same directory and renamed over the target, so a
// crash mid-write never leaves a truncated document behind. The parent
// directory is created on first write.
func (s *DocumentStore) Replace(ctx context.Context, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	if err := s.fs.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("store: mkdir %s: %w", dir, err)
	}

	tmp := s.path + ".tmp"
	if err := afero.WriteFile(s.fs, tmp, data, 0o644); err != nil {
		return fmt.Errorf("store: write %s: %w", tmp, err)
	}
	if err := s.fs.Rename(tmp, s.path); err != nil {
		_ = s.fs.Remove(tmp)
		return fmt.Errorf("store: rename %s: %w", s.path, err)
	}
	return nil
}

// Ping checks that the backing directory is reachable. The document itself
// may legitimately not exist yet.
func (s *DocumentStore) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	dir := filepath.Dir(s.path)
	if _, err := s.fs.Stat(dir); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("store: stat %s: %w", dir, err)
	}
	return nil
}

// Path returns the document path, for logging.
func (s *DocumentStore) Path() string {
	return s.path
}
