// Package app implements the application layer of the CLI. It loads the
// user configuration, assembles the detection engine around the injected
// adapters and renders the resulting reports.
package app

import (
	"context"
	"errors"
	"io"
	"os"
	"sync"

	"go.autols.dev/autols/internal/adapters/detector"
	"go.autols.dev/autols/internal/adapters/telemetry"
	"go.autols.dev/autols/internal/adapters/watcher"
	"go.autols.dev/autols/pkg/cache"
	"go.autols.dev/autols/pkg/domain"
	"go.autols.dev/autols/pkg/engine"
	"go.autols.dev/autols/pkg/ports"
	"go.autols.dev/autols/pkg/registry"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	environment  ports.Environment
	activator    ports.Activator
	tracer       ports.Tracer
	logger       ports.Logger

	out      io.Writer
	otelOnce sync.Once
}

// New creates a new App instance with the given dependencies. Reports are
// rendered to standard output.
func New(
	loader ports.ConfigLoader,
	env ports.Environment,
	activator ports.Activator,
	tracer ports.Tracer,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		environment:  env,
		activator:    activator,
		tracer:       tracer,
		logger:       log,
		out:          os.Stdout,
	}
}

// WithOutput redirects report rendering to w and returns the App for
// chaining.
func (a *App) WithOutput(w io.Writer) *App {
	a.out = w
	return a
}

// ConfigureLogging applies the log format flag and verbosity to the logger.
// Format is "auto", "pretty" or "json"; auto follows terminal detection.
func (a *App) ConfigureLogging(format string, verbose bool) {
	mode := detector.ResolveMode(detector.DetectEnvironment(), format)
	a.logger.SetJSON(mode == detector.ModeJSON)
	a.logger.SetVerbose(verbose)
}

// ScanOptions configures a single detection pass.
type ScanOptions struct {
	// ConfigPath is an explicit configuration file. Empty means the
	// default location.
	ConfigPath string

	// NoCache ignores the stored detection record for this run. The
	// registry is rescanned and the fresh result replaces the record.
	NoCache bool

	// JSON switches the report from a table to a JSON document.
	JSON bool
}

// Scan runs one detection pass and renders the report. When activation is
// rejected the report is rendered anyway so the user can see what the run
// decided before it failed.
func (a *App) Scan(ctx context.Context, opts ScanOptions) error {
	options, err := a.loadOptions(opts.ConfigPath)
	if err != nil {
		return err
	}
	if opts.NoCache {
		options.Cache.Refresh = true
	}

	a.setupOTel()

	orchestrator := engine.New(
		options,
		registry.New(options.SearchPaths),
		a.environment,
		cache.New(options.Cache),
		a.activator,
		a.logger,
		a.tracer,
	)

	report, err := orchestrator.Setup(ctx)
	if report == nil {
		return err
	}
	if renderErr := a.renderReport(report, opts.JSON); renderErr != nil {
		err = errors.Join(err, renderErr)
	}
	return err
}

// Watch runs Scan once, then re-runs it whenever the registry directory
// changes. It blocks until ctx is canceled.
func (a *App) Watch(ctx context.Context, opts ScanOptions) error {
	options, err := a.loadOptions(opts.ConfigPath)
	if err != nil {
		return err
	}

	dir, err := registry.New(options.SearchPaths).Locate()
	if err != nil {
		return err
	}

	// A failing pass must not end the watch; the registry may be mid-edit.
	if err := a.Scan(ctx, opts); err != nil {
		a.logger.Error(err)
	}

	fingerprint, err := watcher.Fingerprint(dir)
	if err != nil {
		return err
	}

	fsw, err := watcher.NewWatcher(a.logger)
	if err != nil {
		return err
	}
	defer func() { _ = fsw.Stop() }()

	if err := fsw.Start(ctx, dir); err != nil {
		return err
	}
	a.logger.Info("watching registry", "dir", dir)

	// The trigger channel holds at most one pending rescan; bursts that
	// arrive while a pass is running collapse into a single follow-up.
	trigger := make(chan struct{}, 1)
	debouncer := watcher.NewDebouncer(watcher.DefaultDebounceWindow, func([]string) {
		select {
		case trigger <- struct{}{}:
		default:
		}
	})

	group, ctx := errgroup.WithContext(ctx)

	group.Go(func() error {
		for event := range fsw.Events() {
			debouncer.Add(event.Path)
		}
		return nil
	})

	group.Go(func() error {
		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-trigger:
				current, err := watcher.Fingerprint(dir)
				switch {
				case err != nil:
					a.logger.Warn("failed to fingerprint registry", "error", err.Error())
				case current == fingerprint:
					a.logger.Debug("registry unchanged, skipping rescan")
					continue
				default:
					fingerprint = current
				}
				if err := a.Scan(ctx, opts); err != nil {
					a.logger.Error(err)
				}
			}
		}
	})

	if err := group.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// CacheClear removes the persisted detection cache.
func (a *App) CacheClear(_ context.Context, configPath string) error {
	options, err := a.loadOptions(configPath)
	if err != nil {
		return err
	}

	removed, err := cache.New(options.Cache).Clear()
	if err != nil {
		return err
	}
	if removed {
		a.logger.Info("detection cache cleared", "path", options.Cache.Path)
	} else {
		a.logger.Info("no detection cache to clear", "path", options.Cache.Path)
	}
	return nil
}

// CacheStatus renders the state of the persisted detection cache.
func (a *App) CacheStatus(_ context.Context, configPath string) error {
	options, err := a.loadOptions(configPath)
	if err != nil {
		return err
	}

	record, ok := cache.New(options.Cache).Read()
	return a.renderCacheStatus(options, record, ok)
}

// loadOptions loads the configuration file and resolves it against the
// stock defaults.
func (a *App) loadOptions(configPath string) (domain.Options, error) {
	options, err := a.configLoader.Load(configPath)
	if err != nil {
		return domain.Options{}, zerr.Wrap(err, "failed to load configuration")
	}
	return domain.ResolveOptions(options), nil
}

// setupOTel installs a tracer provider that reports span lifecycles to the
// logger. The provider is process global, so it is installed once.
func (a *App) setupOTel() {
	a.otelOnce.Do(func() {
		provider := sdktrace.NewTracerProvider(
			sdktrace.WithSpanProcessor(telemetry.NewBridge(a.logger)),
		)
		otel.SetTracerProvider(provider)
	})
}
