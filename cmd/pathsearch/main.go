// Command pathsearch computes measurement orderings of a circuit.
//
// It reads CIRCUIT_jabalize.json from a document store, computes either the
// greedy ordering or, with -s, every Pareto-optimal ordering, and writes
// CIRCUIT_analyzed.json back to the store.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/QSI-BAQS/pathsearch"
	"github.com/QSI-BAQS/pathsearch/codec"
	"github.com/QSI-BAQS/pathsearch/config"
	"github.com/QSI-BAQS/pathsearch/persistence"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes the command and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	a, err := parseArgs(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		_, _ = fmt.Fprintln(stderr, "pathsearch:", err)
		return 1
	}
	cfg, err := a.loadConfig()
	if err != nil {
		_, _ = fmt.Fprintln(stderr, "pathsearch:", err)
		return 1
	}

	log := newLogger(cfg.Log, stderr).WithCircuit(a.circuit)
	name, err := execute(ctx, a.circuit, cfg, log)
	if err != nil {
		log.Error("run failed", "error", err)
		return 1
	}
	_, _ = fmt.Fprintln(stdout, name)
	return 0
}

func newLogger(cfg config.LogConfig, w io.Writer) *pathsearch.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if cfg.Format == "json" {
		return pathsearch.NewLogger(slog.NewJSONHandler(w, opts))
	}
	return pathsearch.NewLogger(slog.NewTextHandler(w, opts))
}

// execute loads the instance, runs the configured mode and stores the
// analysis. It returns the name of the written document.
func execute(ctx context.Context, circuit string, cfg config.Config, log *pathsearch.Logger) (string, error) {
	var metrics pathsearch.MetricsCollector = pathsearch.NoopMetricsCollector{}
	if cfg.Metrics.Addr != "" {
		reg := prometheus.NewRegistry()
		metrics = NewPrometheusCollector(reg)
		srv, addr, err := serveMetrics(cfg.Metrics.Addr, reg, log.Logger)
		if err != nil {
			return "", fmt.Errorf("metrics: %w", err)
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()
		log.Info("serving metrics", "addr", addr.String())
	}

	store, err := openStore(ctx, cfg)
	if err != nil {
		return "", err
	}
	c, _ := codec.ByName(cfg.Codec)
	comp, err := persistence.ParseCompression(cfg.Compression)
	if err != nil {
		return "", err
	}
	mgr := persistence.NewManager(store, persistence.ManagerOptions{Codec: c, Compression: comp})

	in, name, err := mgr.LoadInstance(ctx, circuit)
	if err != nil {
		return "", err
	}
	log.Debug("instance loaded", "name", name, "items", in.Items())

	opts := []pathsearch.Option{
		pathsearch.WithThreads(cfg.Threads),
		pathsearch.WithTaskBound(cfg.TaskBound),
		pathsearch.WithLogger(log),
		pathsearch.WithMetricsCollector(metrics),
		pathsearch.WithProgressRate(cfg.ProgressPerSec),
	}
	var res *pathsearch.Result
	if cfg.Search {
		res, err = pathsearch.Search(ctx, in.Dependencies, in.Graph, opts...)
	} else {
		res, err = pathsearch.Greedy(ctx, in.Dependencies, in.Graph, opts...)
	}
	if err != nil {
		return "", err
	}

	name, err = mgr.SaveAnalysis(ctx, circuit, &persistence.Analysis{
		Paths:     persistence.Paths(res.Frontier),
		Mode:      string(res.Mode),
		Threads:   res.Threads,
		TaskBound: res.TaskBound,
		Tasks:     res.Tasks,
		Duration:  res.Duration,
		Instance:  *in,
	})
	if err != nil {
		return "", err
	}
	log.Info("analysis written", "name", name, "paths", len(res.Frontier))
	return name, nil
}
