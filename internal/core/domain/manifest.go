package domain

import "strings"

// ForcedBuildEnvVar names the environment variable that pins the current
// project's own build on nodes that have not been through a publish,
// e.g. BENDER_FORCED_BUILD_VERSION_STYLE_GUIDE.
func ForcedBuildEnvVar(project InternedName) string {
	mapped := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z':
			return r - ('a' - 'A')
		case (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9'):
			return r
		default:
			return '_'
		}
	}, project.String())
	return "BENDER_FORCED_BUILD_VERSION_" + mapped
}

// BundleDecl is a single bundle declared in a project's asset manifest.
type BundleDecl struct {
	// Path is the logical reference, e.g. "shop/static/js/app.js".
	Path string
	// Kind groups the bundle in the scaffold output.
	Kind Kind
}

// AssetManifest is a project's own declaration of the bundles it owns,
// in the order they must be included.
type AssetManifest struct {
	// Project is the owning (current) project name.
	Project InternedName
	// Bundles is the ordered default include list.
	Bundles []BundleDecl
}

// DependencyEntry is one edge of the dependency graph: a transitive
// dependency project with the version currently selected for production
// and the project that declared it.
type DependencyEntry struct {
	Project InternedName
	Version string
	// Parent is the declaring project, empty for roots.
	Parent InternedName
}

// Settings holds the environment configuration the resolver consumes.
type Settings struct {
	// CDNDomain fronts the storage domain; empty means serve from storage directly.
	CDNDomain string
	// StorageDomain is the origin where asset bytes reside.
	StorageDomain string
	// DaemonDomain is the local dev daemon, used in dev mode.
	DaemonDomain string
	// LocalMode makes every resolution behave as if the dev override was set.
	LocalMode bool
}

// Domain returns the serving domain: CDN when configured, storage otherwise.
func (s Settings) Domain() string {
	if s.CDNDomain != "" {
		return s.CDNDomain
	}
	return s.StorageDomain
}

// ProjectConfig is the raw result of loading all configuration documents
// for a project root. It is flattened into a resolution snapshot by the
// config store.
type ProjectConfig struct {
	Settings Settings
	Manifest AssetManifest
	// Build is the current project's own published version.
	Build string
	// Deps are the raw recursive-manifest entries, pre graph build.
	Deps []DependencyEntry
	// Frozen maps project to the minimum version frozen at deploy time.
	Frozen map[string]string
}
