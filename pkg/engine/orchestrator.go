// Package engine drives language-server activation: it discovers servers
// through the cache or a registry scan, filters and resolves each one, and
// hands the survivors to the host activator in a single batch.
package engine

import (
	"context"
	"time"

	"go.autols.dev/autols/pkg/domain"
	"go.autols.dev/autols/pkg/ports"
	"go.trai.ch/zerr"
)

// Orchestrator runs the detection pipeline.
type Orchestrator struct {
	opts      domain.Options
	registry  ports.Registry
	env       ports.Environment
	store     ports.CacheStore
	activator ports.Activator
	log       ports.Logger
	tracer    ports.Tracer

	now func() time.Time
}

// New creates an Orchestrator with the given dependencies. The options are
// resolved against the stock defaults.
func New(
	opts domain.Options,
	registry ports.Registry,
	env ports.Environment,
	store ports.CacheStore,
	activator ports.Activator,
	log ports.Logger,
	tracer ports.Tracer,
) *Orchestrator {
	return &Orchestrator{
		opts:      domain.ResolveOptions(opts),
		registry:  registry,
		env:       env,
		store:     store,
		activator: activator,
		log:       log,
		tracer:    tracer,
		now:       time.Now,
	}
}

// Setup runs one detection pass and activates every eligible installed
// server. Per-server failures are recorded in the report and skipped; the
// returned error is reserved for a missing registry, an unreadable
// registry directory, or a rejected activation batch. When activation is
// rejected the report is still returned alongside the error.
func (o *Orchestrator) Setup(ctx context.Context) (*Report, error) {
	ctx, span := o.tracer.Start(ctx, "Detecting Servers")
	defer span.End()

	servers, fromCache, scannedAt, err := o.discover(ctx)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	span.SetAttribute("autols.servers", len(servers))
	span.SetAttribute("autols.cached", fromCache)

	report := &Report{
		Decisions: make([]Decision, 0, len(servers)),
		FromCache: fromCache,
		Timestamp: scannedAt,
	}

	batch := make([]ports.Activation, 0, len(servers))
	for _, id := range servers {
		decision := o.decide(ctx, id)
		report.Decisions = append(report.Decisions, decision)
		if decision.Outcome == OutcomeEnabled {
			batch = append(batch, ports.Activation{Server: id, Config: decision.Config})
		}
	}

	if len(batch) > 0 {
		if err := o.activator.Activate(ctx, batch); err != nil {
			wrapped := zerr.Wrap(err, domain.ErrActivationFailed.Error())
			span.RecordError(wrapped)
			return report, wrapped
		}
	}

	o.log.Info("language servers activated",
		"enabled", len(batch),
		"discovered", len(servers),
		"cached", fromCache,
	)

	return report, nil
}

// discover produces the server identifiers to judge. With the cache
// enabled and a valid record on disk the list comes straight from the
// cache and the registry is never touched; a refresh skips that lookup.
// Otherwise the registry is scanned and, with the cache enabled, the
// unfiltered scan result is written back so later runs can re-filter it
// under different options.
func (o *Orchestrator) discover(ctx context.Context) ([]domain.ServerID, bool, time.Time, error) {
	if o.opts.Cache.Enable && !o.opts.Cache.Refresh {
		if record, ok := o.store.Read(); ok && !record.Expired(o.now(), o.opts.Cache.TTL) {
			o.log.Debug("using cached server list",
				"servers", len(record.Servers),
				"age", o.now().Sub(record.Timestamp).Round(time.Second).String(),
			)
			return record.Servers, true, record.Timestamp, nil
		}
	}

	servers, err := o.registry.List(ctx)
	if err != nil {
		return nil, false, time.Time{}, err
	}
	scannedAt := o.now()

	if o.opts.Cache.Enable {
		// A failed cache write only costs the next run a rescan.
		if err := o.store.Write(servers); err != nil {
			o.log.Warn("failed to cache server list", "error", err)
		}
	}

	return servers, false, scannedAt, nil
}

// decide judges a single server. Every failure stays scoped to the
// decision so one bad server never blocks the rest of the run.
func (o *Orchestrator) decide(ctx context.Context, id domain.ServerID) Decision {
	_, span := o.tracer.Start(ctx, id.String())
	defer span.End()

	decision := o.judge(ctx, id)
	span.SetAttribute("autols.outcome", string(decision.Outcome))

	switch decision.Outcome {
	case OutcomeConfigError:
		span.RecordError(decision.Err)
		o.log.Warn("skipping server", "server", id.String(), "error", decision.Err)
	case OutcomeEnabled:
	default:
		o.log.Debug("skipping server", "server", id.String(), "reason", string(decision.Outcome))
	}

	return decision
}

func (o *Orchestrator) judge(ctx context.Context, id domain.ServerID) Decision {
	if domain.ShouldSkip(id, o.opts.Exclude, o.opts.Deprecated) {
		if o.opts.Exclude.Contains(id) {
			return Decision{Server: id, Outcome: OutcomeExcluded}
		}
		return Decision{Server: id, Outcome: OutcomeDeprecated}
	}

	defaults, err := o.registry.DefaultConfig(ctx, id)
	if err != nil {
		return Decision{Server: id, Outcome: OutcomeConfigError, Err: err}
	}

	resolved, err := domain.Resolve(id, defaults, o.opts.Servers[id])
	if err != nil {
		return Decision{Server: id, Outcome: OutcomeConfigError, Err: err}
	}

	if resolved.Command == "" {
		return Decision{Server: id, Outcome: OutcomeNoCommand}
	}

	path, err := o.env.LookPath(resolved.Command)
	if err != nil {
		return Decision{Server: id, Outcome: OutcomeNotInstalled, Command: resolved.Command}
	}

	return Decision{
		Server:  id,
		Outcome: OutcomeEnabled,
		Command: resolved.Command,
		Path:    path,
		Config:  resolved,
	}
}
