package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/haukened/bindgate/internal/gen/common/clock"
	"github.com/haukened/bindgate/internal/gen/common/log"
	"github.com/haukened/bindgate/internal/gen/config"
	"github.com/haukened/bindgate/internal/gen/gateways/descriptors"
	"github.com/haukened/bindgate/internal/gen/repos/denylist"
	"github.com/haukened/bindgate/internal/gen/repos/denylist/bloom"
	boltstore "github.com/haukened/bindgate/internal/gen/repos/denylist/bolt"
	"github.com/haukened/bindgate/internal/gen/repos/denylist/lru"
	"github.com/haukened/bindgate/internal/gen/repos/denylist/parsers"
	"github.com/haukened/bindgate/internal/gen/services/admission"
)

const (
	// Version information
	version = "0.1.0-dev"
	appName = "bindgate"
)

// Application holds the wired admission pipeline.
type Application struct {
	config  *config.AppConfig
	filter  *admission.Filter
	overlay denylist.Repository // nil when no overlay is configured
}

func main() {
	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}

	// Configure global logging
	err = log.Configure(cfg.Env, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Logging configuration error: %v\n", err)
		os.Exit(1)
	}

	log.Info(map[string]any{
		"version":       version,
		"env":           cfg.Env,
		"log_level":     cfg.LogLevel,
		"input":         cfg.Input,
		"output":        cfg.Output,
		"denylist_path": cfg.DenylistPath,
	}, "Starting bindgate")

	// Build application with all dependencies
	app, err := buildApplication(cfg, clock.RealClock{})
	if err != nil {
		log.Fatal(map[string]any{"error": err}, "Failed to build application")
	}
	defer app.Close()

	// A generation pass is one-shot, but the parser front-end upstream can
	// stall; allow operators to abandon the pass cleanly.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		log.Info(map[string]any{"signal": sig.String()}, "Shutdown signal received")
		cancel()
	}()

	if err := app.Run(ctx); err != nil {
		log.Fatal(map[string]any{"error": err}, "Screening pass failed")
	}
}

// buildApplication constructs all components and wires them together.
func buildApplication(cfg *config.AppConfig, clk clock.Clock) (*Application, error) {
	logger := log.GetLogger()

	app := &Application{config: cfg}

	if cfg.DenylistPath != "" {
		overlay, err := buildOverlay(cfg, clk, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to build overlay denylist: %w", err)
		}
		app.overlay = overlay
	}

	opts := admission.Options{Logger: logger}
	if app.overlay != nil {
		opts.Overlay = app.overlay
	}
	app.filter = admission.New(opts)

	return app, nil
}

// buildOverlay opens the Bolt store, loads the overlay file, and performs a
// snapshot update so the repository serves the current file contents.
func buildOverlay(cfg *config.AppConfig, clk clock.Clock, logger log.Logger) (denylist.Repository, error) {
	store, err := boltstore.New(cfg.DenylistDB)
	if err != nil {
		return nil, fmt.Errorf("opening denylist db %q: %w", cfg.DenylistDB, err)
	}

	cache, err := lru.New(cfg.CacheSize)
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	repo := denylist.NewRepository(store, cache, bloom.NewFactory(), cfg.BloomFPRate)

	f, err := os.Open(cfg.DenylistPath)
	if err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("opening denylist file %q: %w", cfg.DenylistPath, err)
	}
	defer f.Close()

	now := clk.Now()
	rules, err := parsers.ParsePlainList(f, cfg.DenylistPath, cfg.Reason(), logger, now)
	if err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("parsing denylist file %q: %w", cfg.DenylistPath, err)
	}

	if err := repo.UpdateAll(rules, uint64(now.Unix()), now.Unix()); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("loading denylist snapshot: %w", err)
	}

	logger.Info(map[string]any{
		"source": cfg.DenylistPath,
		"rules":  len(rules),
	}, "Overlay denylist loaded")
	return repo, nil
}

// Run screens the descriptor stream end to end and logs a pass summary.
func (app *Application) Run(ctx context.Context) error {
	in, err := openInput(app.config.Input)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := openOutput(app.config.Output)
	if err != nil {
		return err
	}
	defer out.Close()

	logger := log.GetLogger()
	reader := descriptors.NewReader(in, logger)
	writer := descriptors.NewWriter(out)

	sum, err := app.filter.Screen(ctx, reader, writer)
	if ferr := writer.Flush(); ferr != nil && err == nil {
		err = ferr
	}
	if err != nil {
		return err
	}

	fields := map[string]any{
		"total":    sum.Total,
		"admitted": sum.Admitted,
		"excluded": sum.Excluded,
		"skipped":  reader.Skipped(),
	}
	for reason, n := range sum.ByReason {
		fields["excluded_"+reason.String()] = n
	}
	if app.overlay != nil {
		st := app.overlay.RepoStats()
		fields["overlay_hits"] = st.Hits
		fields["overlay_misses"] = st.Misses
		fields["overlay_version"] = st.Store.Version
	}
	log.Info(fields, "Screening pass complete")
	return nil
}

// Close releases the overlay store, if any.
func (app *Application) Close() {
	if app.overlay != nil {
		if err := app.overlay.Close(); err != nil {
			log.Warn(map[string]any{"error": err}, "Failed to close overlay denylist")
		}
	}
}

// openInput resolves the descriptor stream; "-" means stdin.
func openInput(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening input %q: %w", path, err)
	}
	return f, nil
}

// openOutput resolves the decision stream; "-" means stdout.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "-" {
		return nopWriteCloser{os.Stdout}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("opening output %q: %w", path, err)
	}
	return f, nil
}

// nopWriteCloser keeps stdout open across Close.
type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
