package domain

import (
	"net/url"
	"strings"
)

// ForcedVersionParamPrefix marks query parameters that pin a project to a
// specific build for one request, e.g. "forceBuildFor-cart=static-4.59".
const ForcedVersionParamPrefix = "forceBuildFor-"

// DebugParam toggles debug asset variants, e.g. "hsDebug=true".
const DebugParam = "hsDebug"

// DevParam forces resolution against the local dev daemon for one request.
const DevParam = "hsLocal"

// Overrides is the closed set of per-call knobs the resolver recognizes.
// Values are scoped to a single resolution call and never persisted.
type Overrides struct {
	// ForcedVersions maps project name to a version used verbatim,
	// bypassing the dependency graph.
	ForcedVersions map[string]string
	// Dev serves from the local daemon instead of the CDN.
	Dev bool
	// Debug selects the expanded, unminified asset variants.
	Debug bool
}

// ParseOverrides extracts recognized overrides from query-style parameters.
// Unrecognized keys are ignored rather than passed through.
func ParseOverrides(params url.Values) Overrides {
	ov := Overrides{}
	for key := range params {
		switch {
		case strings.HasPrefix(key, ForcedVersionParamPrefix):
			project := strings.TrimPrefix(key, ForcedVersionParamPrefix)
			if project == "" {
				continue
			}
			if ov.ForcedVersions == nil {
				ov.ForcedVersions = make(map[string]string)
			}
			ov.ForcedVersions[project] = params.Get(key)
		case key == DebugParam:
			ov.Debug = params.Get(key) != "false"
		case key == DevParam:
			ov.Dev = params.Get(key) != "false"
		}
	}
	return ov
}

// ForcedVersion returns the forced version for a project, if any.
func (o Overrides) ForcedVersion(project InternedName) (string, bool) {
	v, ok := o.ForcedVersions[project.String()]
	return v, ok
}

// Empty reports whether the overrides change resolution at all. Cached
// scaffolds are only reused for empty overrides.
func (o Overrides) Empty() bool {
	return len(o.ForcedVersions) == 0 && !o.Dev && !o.Debug
}
