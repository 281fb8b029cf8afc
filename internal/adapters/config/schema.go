package config

// SettingsFilename is the runtime settings document, relative to the project root.
const SettingsFilename = "bender.yaml"

// Asset documents produced by the build pipeline and bundled with the
// distributable package. Their JSON formats are fixed by that tooling.
const (
	StaticConfFilename    = "static/static_conf.json"
	RecursiveConfFilename = "static/prebuilt_recursive_static_conf.json"
	FrozenConfFilename    = "static/frozen_at_deploy_version_snapshot.json"
)

// settingsFile represents the structure of bender.yaml.
type settingsFile struct {
	CDNDomain     string `yaml:"cdnDomain"`
	StorageDomain string `yaml:"storageDomain"`
	DaemonDomain  string `yaml:"daemonDomain"`
	LocalMode     bool   `yaml:"localMode"`
}

// staticConf represents static_conf.json: the project's own asset manifest.
type staticConf struct {
	Name    string       `json:"name"`
	Bundles []bundleDecl `json:"bundles"`
}

type bundleDecl struct {
	Path string `json:"path"`
	Kind string `json:"kind,omitempty"`
}

// recursiveConf represents prebuilt_recursive_static_conf.json: the current
// project's published build plus every transitive dependency with its pinned
// version and the project that declared it.
type recursiveConf struct {
	Build string     `json:"build"`
	Deps  []depEntry `json:"deps"`
}

type depEntry struct {
	Project string `json:"project"`
	Version string `json:"version"`
	Parent  string `json:"parent,omitempty"`
}
