package domain

import "slices"

// ResolvedAsset pairs a reference with the version and URL it resolved to.
// Produced fresh per resolution call.
type ResolvedAsset struct {
	Reference AssetReference
	Version   string
	URL       string
}

// Scaffold is the template-facing result of a batch resolution: final URLs
// grouped by kind, preserving the caller's include order within each kind.
type Scaffold struct {
	Scripts     []string `json:"scripts"`
	Stylesheets []string `json:"stylesheets"`
	// Version is the current project's resolved version, for diagnostics.
	Version string `json:"version"`
}

// Clone returns a copy the caller may append to without affecting the
// receiver.
func (s *Scaffold) Clone() *Scaffold {
	return &Scaffold{
		Scripts:     slices.Clone(s.Scripts),
		Stylesheets: slices.Clone(s.Stylesheets),
		Version:     s.Version,
	}
}

// Add appends a resolved asset to its kind group.
func (s *Scaffold) Add(asset ResolvedAsset) {
	switch asset.Reference.Kind {
	case KindStylesheet:
		s.Stylesheets = append(s.Stylesheets, asset.URL)
	default:
		s.Scripts = append(s.Scripts, asset.URL)
	}
}
