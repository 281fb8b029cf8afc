package resolver

import (
	"context"

	"github.com/asset-bender/bender/internal/adapters/config" //nolint:depguard // Wired in engine wiring
	"github.com/asset-bender/bender/internal/adapters/logger" //nolint:depguard // Wired in engine wiring
	"github.com/asset-bender/bender/internal/core/ports"
	"github.com/grindlemire/graft"
)

const (
	// StoreNodeID identifies the config snapshot store node.
	StoreNodeID graft.ID = "engine.config_store"
	// ResolverNodeID identifies the resolver node.
	ResolverNodeID graft.ID = "engine.resolver"
)

func init() {
	graft.Register(graft.Node[*Store]{
		ID:        StoreNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Store, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewStore(loader, log), nil
		},
	})

	graft.Register(graft.Node[*Resolver]{
		ID:        ResolverNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (*Resolver, error) {
			return NewResolver(), nil
		},
	})
}
