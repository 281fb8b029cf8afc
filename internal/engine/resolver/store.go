// Package resolver implements the asset resolution engine: the config
// snapshot store, version selection and URL construction.
package resolver

import (
	"sync/atomic"

	"github.com/asset-bender/bender/internal/core/domain"
	"github.com/asset-bender/bender/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/singleflight"
)

// Snapshot is one immutable generation of resolved configuration. Everything
// a resolution call reads lives here, so concurrent resolutions never lock
// and a refresh can never expose a half-built graph.
type Snapshot struct {
	Settings domain.Settings
	Manifest domain.AssetManifest
	Graph    *domain.Graph
	// CurrentVersion is the current project's own published version.
	CurrentVersion string

	scaffolds *scaffoldCache
}

// Store owns the active Snapshot. Readers take the current pointer; Refresh
// builds a whole new snapshot and installs it with an atomic swap, keeping
// the previous one in service if anything goes wrong.
type Store struct {
	loader ports.ConfigLoader
	log    ports.Logger

	snap  atomic.Pointer[Snapshot]
	group singleflight.Group
}

// NewStore creates a Store around the given loader.
func NewStore(loader ports.ConfigLoader, log ports.Logger) *Store {
	return &Store{loader: loader, log: log}
}

// Current returns the active snapshot, or nil before the first load.
func (s *Store) Current() *Snapshot {
	return s.snap.Load()
}

// Load returns the active snapshot, performing the initial load if none is
// installed yet. Concurrent first loads collapse into one.
func (s *Store) Load(root string) (*Snapshot, error) {
	if snap := s.snap.Load(); snap != nil {
		return snap, nil
	}
	return s.Refresh(root)
}

// Refresh rebuilds the snapshot from disk and atomically installs it.
// On failure the previous snapshot, if any, stays in service.
func (s *Store) Refresh(root string) (*Snapshot, error) {
	snap, err, _ := s.group.Do("refresh:"+root, func() (any, error) {
		built, err := s.build(root)
		if err != nil {
			if s.snap.Load() != nil {
				s.log.Warn("config refresh failed, keeping previous snapshot")
			}
			return nil, err
		}
		s.snap.Store(built)
		return built, nil
	})
	if err != nil {
		return nil, err
	}
	return snap.(*Snapshot), nil
}

func (s *Store) build(root string) (*Snapshot, error) {
	cfg, err := s.loader.Load(root)
	if err != nil {
		return nil, err
	}

	graph, err := domain.BuildGraph(cfg.Deps, cfg.Frozen)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to build dependency graph")
	}

	return &Snapshot{
		Settings:       cfg.Settings,
		Manifest:       cfg.Manifest,
		Graph:          graph,
		CurrentVersion: cfg.Build,
		scaffolds:      newScaffoldCache(),
	}, nil
}
