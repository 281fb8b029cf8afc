package app

import (
	"context"

	"github.com/asset-bender/bender/internal/adapters/logger"   //nolint:depguard // Wired in app layer
	"github.com/asset-bender/bender/internal/adapters/snapshot" //nolint:depguard // Wired in app layer
	"github.com/asset-bender/bender/internal/core/ports"
	"github.com/asset-bender/bender/internal/engine/resolver"
	"github.com/grindlemire/graft"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			resolver.StoreNodeID,
			resolver.ResolverNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			store, err := graft.Dep[*resolver.Store](ctx)
			if err != nil {
				return nil, err
			}
			res, err := graft.Dep[*resolver.Resolver](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(store, res, log), nil
		},
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			snapshot.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			snapshots, err := graft.Dep[ports.VersionSnapshotStore](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{
				App:       a,
				Logger:    log,
				Snapshots: snapshots,
			}, nil
		},
	})
}
