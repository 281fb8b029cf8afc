// Package snapshot persists dependency version snapshots for deploys.
package snapshot

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/asset-bender/bender/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.VersionSnapshotStore = (*Store)(nil)

// Store writes the project->version snapshot to a flat JSON file under a
// project root. The file is what the deploy tooling ships to production as
// frozen_at_deploy_version_snapshot.json, guaranteeing prod never resolves
// an older dependency build than the one verified on QA.
type Store struct {
	rel string
	mu  sync.Mutex
}

// NewStore creates a store writing to the given path, resolved against the
// project root passed to Write.
func NewStore(path string) *Store {
	return &Store{rel: filepath.Clean(path)}
}

// Write persists the snapshot under root, replacing any previous one. The
// file must land under the same root the loader reads, so a later load
// against that root sees the frozen versions.
func (s *Store) Write(root string, versions map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := filepath.Join(root, s.rel)

	data, err := json.MarshalIndent(versions, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal version snapshot")
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create snapshot directory"), "path", dir)
	}

	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write version snapshot"), "path", path)
	}

	return nil
}
