package snapshot

import (
	"context"

	"github.com/asset-bender/bender/internal/adapters/config"
	"github.com/asset-bender/bender/internal/core/ports"
	"github.com/grindlemire/graft"
)

const NodeID graft.ID = "adapter.snapshot_store"

func init() {
	graft.Register(graft.Node[ports.VersionSnapshotStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.VersionSnapshotStore, error) {
			return NewStore(config.FrozenConfFilename), nil
		},
	})
}
