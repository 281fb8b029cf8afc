// Package app implements the application layer for bender: the public
// facade the request/rendering layer talks to.
package app

import (
	"github.com/asset-bender/bender/internal/core/domain"
	"github.com/asset-bender/bender/internal/core/ports"
	"github.com/asset-bender/bender/internal/engine/resolver"
	"go.trai.ch/zerr"
)

// Template context keys, kept stable for the rendering layer.
const (
	ScaffoldContextKey       = "bender_scaffold"
	DomainContextKey         = "bender_domain"
	PrefixedDomainContextKey = "bender_domain_with_prefix"
	HostProjectContextKey    = "host_project_name"
	VersionContextKey        = "bender_build_version"
)

// App orchestrates the config store and resolver. One App serves the whole
// process; every method is safe for concurrent use.
type App struct {
	store    *resolver.Store
	resolver *resolver.Resolver
	log      ports.Logger
	root     string
}

// New creates a new App instance resolving against the current directory
// until SetRoot is called.
func New(store *resolver.Store, res *resolver.Resolver, log ports.Logger) *App {
	return &App{
		store:    store,
		resolver: res,
		log:      log,
		root:     ".",
	}
}

// SetRoot points the app at a project root directory.
func (a *App) SetRoot(root string) {
	if root != "" {
		a.root = root
	}
}

func (a *App) snapshot() (*resolver.Snapshot, error) {
	snap, err := a.store.Load(a.root)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load asset configuration")
	}
	return snap, nil
}

// ResolveAll resolves a batch of logical asset paths into a scaffold of
// final URLs grouped by kind, in the caller's order. Any unresolvable
// reference fails the whole batch.
func (a *App) ResolveAll(refs []string, ov domain.Overrides) (*domain.Scaffold, error) {
	snap, err := a.snapshot()
	if err != nil {
		return nil, err
	}
	return a.resolver.ResolveAll(snap, refs, ov)
}

// ResolveOne resolves a single logical asset path to its final URL, with
// semantics identical to the batch path. This is the hook for ad-hoc inline
// references from any templating layer.
func (a *App) ResolveOne(raw string, ov domain.Overrides) (string, error) {
	snap, err := a.snapshot()
	if err != nil {
		return "", err
	}
	ref, err := domain.ParseReference(raw)
	if err != nil {
		return "", err
	}
	asset, err := a.resolver.Resolve(snap, ref, ov)
	if err != nil {
		return "", err
	}
	return asset.URL, nil
}

// Scaffold resolves the manifest's default bundles plus any extra paths.
func (a *App) Scaffold(extra []string, ov domain.Overrides) (*domain.Scaffold, error) {
	snap, err := a.snapshot()
	if err != nil {
		return nil, err
	}

	refs := make([]string, 0, len(snap.Manifest.Bundles)+len(extra))
	for _, b := range snap.Manifest.Bundles {
		refs = append(refs, b.Path)
	}
	refs = append(refs, extra...)

	return a.resolver.ResolveAll(snap, refs, ov)
}

// DependencyVersions lists the resolved version of every dependency project
// plus the current project. Deploy tooling snapshots this on QA so prod is
// guaranteed to serve the verified versions.
func (a *App) DependencyVersions(ov domain.Overrides) (map[string]string, error) {
	snap, err := a.snapshot()
	if err != nil {
		return nil, err
	}
	return a.resolver.Versions(snap, ov), nil
}

// URLPrefixes maps each project to its "/<project>/<version>" URL prefix,
// ready for direct interpolation by client-side loaders.
func (a *App) URLPrefixes(ov domain.Overrides) (map[string]string, error) {
	versions, err := a.DependencyVersions(ov)
	if err != nil {
		return nil, err
	}
	prefixes := make(map[string]string, len(versions))
	for project, version := range versions {
		prefixes[project] = "/" + project + "/" + version
	}
	return prefixes, nil
}

// CurrentVersion returns the current project's own resolved version.
func (a *App) CurrentVersion() (string, error) {
	snap, err := a.snapshot()
	if err != nil {
		return "", err
	}
	return snap.CurrentVersion, nil
}

// ContextValues assembles everything a page render needs in its template
// context: the scaffold for the default bundles plus extras, the serving
// domain and the host project identity.
func (a *App) ContextValues(extra []string, ov domain.Overrides) (map[string]any, error) {
	snap, err := a.snapshot()
	if err != nil {
		return nil, err
	}

	scaffold, err := a.Scaffold(extra, ov)
	if err != nil {
		return nil, err
	}

	domainName := snap.Settings.Domain()
	if ov.Dev || snap.Settings.LocalMode {
		domainName = snap.Settings.DaemonDomain
	}

	return map[string]any{
		ScaffoldContextKey:       scaffold,
		DomainContextKey:         domainName,
		PrefixedDomainContextKey: resolver.PrefixedDomain(domainName),
		HostProjectContextKey:    snap.Manifest.Project.String(),
		VersionContextKey:        snap.CurrentVersion,
	}, nil
}

// Refresh rebuilds the configuration snapshot, keeping the previous one in
// service if the rebuild fails.
func (a *App) Refresh() error {
	if _, err := a.store.Refresh(a.root); err != nil {
		return zerr.Wrap(err, "failed to refresh asset configuration")
	}
	a.log.Info("asset configuration refreshed")
	return nil
}
