package plan

import (
	"context"

	"github.com/grindlemire/graft"
	"go.autols.dev/autols/pkg/ports"
)

// NodeID is the unique identifier for the plan-recording activator Graft node.
const NodeID graft.ID = "adapter.plan"

func init() {
	graft.Register(graft.Node[ports.Activator]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Activator, error) {
			return NewService(), nil
		},
	})
}
