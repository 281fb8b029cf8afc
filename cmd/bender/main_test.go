package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/asset-bender/bender/internal/adapters/config"
	"github.com/asset-bender/bender/internal/adapters/logger"
	"github.com/asset-bender/bender/internal/adapters/snapshot"
	"github.com/asset-bender/bender/internal/app"
	"github.com/asset-bender/bender/internal/engine/resolver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeProject(t *testing.T, dir string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "static"), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bender.yaml"),
		[]byte("cdnDomain: cdn.example.com\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.StaticConfFilename),
		[]byte(`{"name":"shop","bundles":[{"path":"shop/static/js/app.js"}]}`), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.RecursiveConfFilename),
		[]byte(`{"build":"3","deps":[{"project":"cart","version":"7","parent":"shop"}]}`), 0o600))
}

// testProvider mirrors the graft wiring, including the default snapshot
// store path.
func testProvider() ComponentProvider {
	return func(context.Context) (*app.Components, error) {
		log := logger.New()
		store := resolver.NewStore(config.NewLoader(log), log)
		return &app.Components{
			App:       app.New(store, resolver.NewResolver(), log),
			Logger:    log,
			Snapshots: snapshot.NewStore(config.FrozenConfFilename),
		}, nil
	}
}

func TestRun(t *testing.T) {
	tests := []struct {
		name         string
		setup        func(t *testing.T, tmpDir string)
		args         func(tmpDir string) []string
		expectedExit int
	}{
		{
			name:  "Success with valid project",
			setup: writeProject,
			args: func(tmpDir string) []string {
				return []string{"-r", tmpDir, "resolve", "shop/static/js/app.js"}
			},
			expectedExit: 0,
		},
		{
			name:  "Success resolving pinned dependency",
			setup: writeProject,
			args: func(tmpDir string) []string {
				return []string{"-r", tmpDir, "resolve", "cart/static/js/widget.js"}
			},
			expectedExit: 0,
		},
		{
			name:  "Error with missing settings",
			setup: func(*testing.T, string) {},
			args: func(tmpDir string) []string {
				return []string{"-r", tmpDir, "resolve", "shop/static/js/app.js"}
			},
			expectedExit: 1,
		},
		{
			name:  "Error with unknown project",
			setup: writeProject,
			args: func(tmpDir string) []string {
				return []string{"-r", tmpDir, "resolve", "payments/static/js/app.js"}
			},
			expectedExit: 1,
		},
		{
			name:  "Snapshot writes frozen versions",
			setup: writeProject,
			args: func(tmpDir string) []string {
				return []string{"-r", tmpDir, "snapshot"}
			},
			expectedExit: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			tt.setup(t, tmpDir)

			var stderr bytes.Buffer
			exitCode := run(context.Background(), tt.args(tmpDir), &stderr, testProvider())
			assert.Equal(t, tt.expectedExit, exitCode, "stderr: %s", stderr.String())
		})
	}
}

func TestRun_ProviderFailure(t *testing.T) {
	var stderr bytes.Buffer
	exitCode := run(context.Background(), []string{"version"}, &stderr,
		func(context.Context) (*app.Components, error) {
			return nil, assert.AnError
		})
	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), assert.AnError.Error())
}

func TestRun_SnapshotDefaultPathFollowsRoot(t *testing.T) {
	tmpDir := t.TempDir()
	writeProject(t, tmpDir)

	// No -o: the snapshot must land under the root, where the loader
	// reads it back on the next resolution.
	exitCode := run(context.Background(),
		[]string{"-r", tmpDir, "snapshot"}, os.Stderr, testProvider())
	require.Equal(t, 0, exitCode)

	data, err := os.ReadFile(filepath.Join(tmpDir, config.FrozenConfFilename))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"shop": "3"`)
	assert.Contains(t, string(data), `"cart": "7"`)
}

func TestRun_SnapshotExplicitOutputPath(t *testing.T) {
	tmpDir := t.TempDir()
	writeProject(t, tmpDir)

	out := filepath.Join(tmpDir, "frozen.json")
	exitCode := run(context.Background(),
		[]string{"-r", tmpDir, "snapshot", "-o", out}, os.Stderr, testProvider())
	require.Equal(t, 0, exitCode)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"shop": "3"`)
	assert.Contains(t, string(data), `"cart": "7"`)
}
