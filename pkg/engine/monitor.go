package engine

import (
	"context"

	"go.autols.dev/autols/pkg/domain"
	"go.autols.dev/autols/pkg/ports"
)

// Monitor stops running servers once their last buffer detaches. It reacts
// to host detach notifications, so a server whose buffers all closed is
// shut down instead of idling until the host exits.
type Monitor struct {
	policy  domain.StopPolicy
	source  ports.DetachSource
	runtime ports.Runtime
	log     ports.Logger
}

// NewMonitor creates a Monitor applying the given stop policy.
func NewMonitor(policy domain.StopPolicy, source ports.DetachSource, runtime ports.Runtime, log ports.Logger) *Monitor {
	return &Monitor{
		policy:  policy,
		source:  source,
		runtime: runtime,
		log:     log,
	}
}

// Run consumes detach events until ctx is canceled or the source closes.
// With the policy disabled it returns immediately. It always returns nil;
// per-event failures are logged and the loop keeps going.
func (m *Monitor) Run(ctx context.Context) error {
	if !m.policy.Enable {
		return nil
	}

	events := m.source.Events()
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-events:
			if !ok {
				return nil
			}
			m.handle(ctx, event)
		}
	}
}

// handle stops the event's client when it is still alive, serves no other
// buffer and its server is not excluded from the stop policy. The host
// settles its bookkeeping before emitting the event, so the detached
// buffer is already gone from the client snapshot.
func (m *Monitor) handle(ctx context.Context, event ports.DetachEvent) {
	client, ok := m.runtime.Client(ctx, event.Client)
	if !ok {
		return
	}
	if len(client.Buffers) > 0 {
		return
	}
	if m.policy.Exclude.Contains(client.Server) {
		return
	}

	if err := m.runtime.Stop(ctx, client.ID); err != nil {
		m.log.Warn("failed to stop idle server",
			"server", client.Server.String(),
			"client", int(client.ID),
			"error", err,
		)
		return
	}

	m.log.Info("stopped idle server", "server", client.Server.String())
}
