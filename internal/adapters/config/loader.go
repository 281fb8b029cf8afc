// Package config loads the declarative configuration documents for bender.
package config

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/asset-bender/bender/internal/core/domain"
	"github.com/asset-bender/bender/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader from local files under a project root.
type Loader struct {
	log ports.Logger
}

// NewLoader creates a new Loader.
func NewLoader(log ports.Logger) *Loader {
	return &Loader{log: log}
}

// Load reads bender.yaml, the project's asset manifest, the recursive
// dependency manifest and the optional frozen deploy snapshot. A missing or
// malformed required document fails with ErrConfigInvalid naming the path.
func (l *Loader) Load(root string) (*domain.ProjectConfig, error) {
	settings, err := loadSettings(filepath.Join(root, SettingsFilename))
	if err != nil {
		return nil, err
	}

	manifest, err := loadStaticConf(root)
	if err != nil {
		return nil, err
	}

	recursivePath := filepath.Join(root, RecursiveConfFilename)
	var recursive recursiveConf
	if err := readJSON(recursivePath, &recursive); err != nil {
		return nil, err
	}

	build := recursive.Build
	if build == "" {
		// Escape hatch for nodes that have not been through a publish yet.
		build = os.Getenv(domain.ForcedBuildEnvVar(manifest.Project))
	}
	if build == "" {
		return nil, configErr(recursivePath, "no published build for current project",
			"project", manifest.Project.String())
	}

	deps := make([]domain.DependencyEntry, 0, len(recursive.Deps))
	for _, d := range recursive.Deps {
		if d.Project == "" || d.Version == "" {
			return nil, configErr(recursivePath, "dependency entry missing project or version",
				"entry_project", d.Project)
		}
		deps = append(deps, domain.DependencyEntry{
			Project: domain.NewInternedName(d.Project),
			Version: d.Version,
			Parent:  domain.NewInternedName(d.Parent),
		})
	}

	frozen, err := loadFrozen(filepath.Join(root, FrozenConfFilename))
	if err != nil {
		return nil, err
	}

	l.log.Info("loaded asset configuration for " + manifest.Project.String())

	return &domain.ProjectConfig{
		Settings: settings,
		Manifest: manifest,
		Build:    build,
		Deps:     deps,
		Frozen:   frozen,
	}, nil
}

// loadStaticConf locates static_conf.json under the project root, falling
// back to the parent directory the way deployed packages are laid out.
func loadStaticConf(root string) (domain.AssetManifest, error) {
	path := filepath.Join(root, StaticConfFilename)
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		parentPath := filepath.Join(root, "..", StaticConfFilename)
		if _, perr := os.Stat(parentPath); perr == nil {
			path = parentPath
		}
	}

	var conf staticConf
	if err := readJSON(path, &conf); err != nil {
		return domain.AssetManifest{}, err
	}
	if conf.Name == "" {
		return domain.AssetManifest{}, configErr(path, "manifest missing project name")
	}

	bundles := make([]domain.BundleDecl, 0, len(conf.Bundles))
	for _, b := range conf.Bundles {
		kind := domain.Kind(b.Kind)
		ref, err := domain.ParseReference(b.Path)
		if err != nil {
			return domain.AssetManifest{}, zerr.With(zerr.With(err, "path", path), "bundle", b.Path)
		}
		if kind == "" {
			kind = ref.Kind
		}
		bundles = append(bundles, domain.BundleDecl{Path: b.Path, Kind: kind})
	}

	return domain.AssetManifest{
		Project: domain.NewInternedName(conf.Name),
		Bundles: bundles,
	}, nil
}

func loadSettings(path string) (domain.Settings, error) {
	//nolint:gosec // path is derived from the user-supplied project root
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Settings{}, configErr(path, err.Error())
	}

	var file settingsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return domain.Settings{}, configErr(path, err.Error())
	}

	settings := domain.Settings{
		CDNDomain:     file.CDNDomain,
		StorageDomain: file.StorageDomain,
		DaemonDomain:  file.DaemonDomain,
		LocalMode:     file.LocalMode,
	}
	if settings.DaemonDomain == "" {
		settings.DaemonDomain = "localhost:3333"
	}
	if settings.Domain() == "" {
		return domain.Settings{}, configErr(path, "no cdnDomain or storageDomain configured")
	}
	return settings, nil
}

// loadFrozen reads the deploy snapshot. A missing file just means nothing
// was frozen yet.
func loadFrozen(path string) (map[string]string, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	frozen := map[string]string{}
	if err := readJSON(path, &frozen); err != nil {
		return nil, err
	}
	return frozen, nil
}

func readJSON(path string, v any) error {
	//nolint:gosec // path is derived from the user-supplied project root
	data, err := os.ReadFile(path)
	if err != nil {
		return configErr(path, err.Error())
	}
	if err := json.Unmarshal(data, v); err != nil {
		return configErr(path, err.Error())
	}
	return nil
}

func configErr(path, cause string, kv ...string) error {
	err := zerr.With(zerr.Wrap(domain.ErrConfigInvalid, cause), "path", path)
	for i := 0; i+1 < len(kv); i += 2 {
		err = zerr.With(err, kv[i], kv[i+1])
	}
	return err
}
