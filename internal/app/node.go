package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.autols.dev/autols/internal/adapters/config"
	"go.autols.dev/autols/internal/adapters/logger"
	"go.autols.dev/autols/internal/adapters/plan"
	"go.autols.dev/autols/internal/adapters/shell"
	"go.autols.dev/autols/internal/adapters/telemetry"
	"go.autols.dev/autols/pkg/ports"
)

const (
	// AppNodeID is the unique identifier for the application Graft node.
	AppNodeID graft.ID = "app.main"

	// ComponentsNodeID is the unique identifier for the components Graft
	// node. It is the entry point the CLI resolves.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			shell.NodeID,
			plan.NodeID,
			telemetry.TracerNodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{AppNodeID, logger.NodeID},
		Run:       runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}
	environment, err := graft.Dep[ports.Environment](ctx)
	if err != nil {
		return nil, err
	}
	activator, err := graft.Dep[ports.Activator](ctx)
	if err != nil {
		return nil, err
	}
	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}
	return New(loader, environment, activator, tracer, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	application, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}
	return &Components{App: application, Logger: log}, nil
}
