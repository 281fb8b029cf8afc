package resolver

import (
	"github.com/asset-bender/bender/internal/core/domain"
	"go.trai.ch/zerr"
)

// Resolver selects versions and builds URLs against a config snapshot. It is
// stateless: for a fixed snapshot and fixed overrides every method is a pure
// function, so rendered HTML fragments can be cached safely by callers.
type Resolver struct{}

// NewResolver creates a Resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// Version decides the effective version for a reference.
//
// Precedence: a per-request forced version wins outright (it bypasses the
// graph entirely); the current project resolves to its own published
// version; everything else must be a node in the dependency graph.
func (r *Resolver) Version(snap *Snapshot, ref domain.AssetReference, ov domain.Overrides) (string, error) {
	if forced, ok := ov.ForcedVersion(ref.Project); ok {
		return forced, nil
	}
	if ref.Project == snap.Manifest.Project {
		return snap.CurrentVersion, nil
	}
	entry, ok := snap.Graph.Lookup(ref.Project)
	if !ok {
		err := zerr.Wrap(domain.ErrUnresolvedDependency, "project not in dependency graph")
		err = zerr.With(err, "project", ref.Project.String())
		return "", zerr.With(err, "reference", ref.Raw)
	}
	return entry.Version, nil
}

// Resolve resolves a single parsed reference to its version and URL.
func (r *Resolver) Resolve(snap *Snapshot, ref domain.AssetReference, ov domain.Overrides) (domain.ResolvedAsset, error) {
	version, err := r.Version(snap, ref, ov)
	if err != nil {
		return domain.ResolvedAsset{}, err
	}
	dev := ov.Dev || snap.Settings.LocalMode
	return domain.ResolvedAsset{
		Reference: ref,
		Version:   version,
		URL:       buildURL(snap.Settings, dev, ref.Project, version, ref.Path),
	}, nil
}

// ResolveAll resolves a batch of logical paths into a scaffold, preserving
// the caller's order within each kind group. The first unresolvable
// reference aborts the whole batch; partial scaffolds are never returned.
func (r *Resolver) ResolveAll(snap *Snapshot, refs []string, ov domain.Overrides) (*domain.Scaffold, error) {
	cacheable := ov.Empty() && !snap.Settings.LocalMode

	var key uint64
	if cacheable {
		key = scaffoldKey(refs)
		if cached, ok := snap.scaffolds.get(key); ok {
			return cached, nil
		}
	}

	scaffold := &domain.Scaffold{Version: snap.CurrentVersion}
	for _, raw := range refs {
		ref, err := domain.ParseReference(raw)
		if err != nil {
			return nil, err
		}
		asset, err := r.Resolve(snap, ref, ov)
		if err != nil {
			return nil, err
		}
		scaffold.Add(asset)
	}

	if cacheable {
		snap.scaffolds.put(key, scaffold)
	}
	return scaffold, nil
}

// Versions lists the resolved version of every graph project plus the
// current project. Debug mode marks each version with the "-debug" suffix
// used by the expanded asset variants, except in dev mode where the daemon
// serves sources directly.
func (r *Resolver) Versions(snap *Snapshot, ov domain.Overrides) map[string]string {
	dev := ov.Dev || snap.Settings.LocalMode
	out := make(map[string]string, snap.Graph.Len()+1)

	add := func(project domain.InternedName, version string) {
		if forced, ok := ov.ForcedVersion(project); ok {
			version = forced
		}
		if ov.Debug && !dev {
			version += "-debug"
		}
		out[project.String()] = version
	}

	for _, project := range snap.Graph.Projects() {
		entry, _ := snap.Graph.Lookup(project)
		add(project, entry.Version)
	}
	add(snap.Manifest.Project, snap.CurrentVersion)

	return out
}
