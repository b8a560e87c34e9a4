package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/aretw0/clif"
	"github.com/aretw0/clif/internal/adapters/http"
	"github.com/aretw0/clif/internal/config"
	"github.com/aretw0/clif/internal/demo"
	"github.com/aretw0/clif/internal/presentation/tui"
	"github.com/aretw0/clif/pkg/domain"
	"github.com/aretw0/clif/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// abandonAfter bounds how long a cancelled run may take to notice.
const abandonAfter = 200 * time.Millisecond

// RunDemo runs the demo pools until every pool is exited, input ends or a
// signal arrives.
func RunDemo(opts RunOptions) error {
	return runDemo(context.Background(), opts)
}

func runDemo(parent context.Context, opts RunOptions) error {
	if opts.Stdin == nil {
		opts.Stdin = os.Stdin
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}

	cfg, err := config.Load(opts.ConfigPath, opts.ConfigRequired, opts.Overrides)
	if err != nil {
		return err
	}
	logger, err := createLogger(opts.Stderr, opts.Debug, cfg.LogLevel)
	if err != nil {
		return err
	}

	interactive := !opts.JSON && isTerminal(opts.Stdin)
	if interactive && cfg.Banner {
		tui.PrintBanner(opts.Stdout, clif.Version)
	}

	sigCtx := NewSignalContext(parent)
	defer sigCtx.Cancel()

	hooks := domain.LifecycleHooks{}
	if opts.Debug {
		hooks = createDebugHooks(logger)
	}

	var reg *prometheus.Registry
	if cfg.MetricsAddr != "" {
		reg = prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		metrics, err := observability.NewMetrics(reg)
		if err != nil {
			return fmt.Errorf("metrics: %w", err)
		}
		hooks = domain.ChainHooks(hooks, metrics.Hooks())
	}

	c := createCLI(opts, cfg, interactive, logger, hooks)

	if reg != nil {
		handler := http.NewHandler(reg, http.Info{Version: clif.Version, EngineID: c.ID()})
		wait, err := http.Start(sigCtx, cfg.MetricsAddr, handler, logger)
		if err != nil {
			return err
		}
		defer func() {
			sigCtx.Cancel()
			if err := wait(); err != nil {
				logger.Warn("Metrics server error", "err", err)
			}
		}()
	}

	root := demo.Root(createRenderer(cfg, interactive, logger))

	// The read loop may stay blocked on a terminal read after a signal, so
	// Run gets its own goroutine and is abandoned if it does not return in
	// time. The engine is still only ever touched from that goroutine.
	type result struct {
		err  error
		pool string
	}
	done := make(chan result, 1)
	go func() {
		err := c.Run(sigCtx, root)
		pool, _ := c.PoolName()
		done <- result{err: err, pool: pool}
	}()

	var res result
	select {
	case res = <-done:
	case <-sigCtx.Done():
		select {
		case res = <-done:
		case <-time.After(abandonAfter):
			res = result{err: sigCtx.Err()}
		}
	}

	logger.Debug("Run finished", "err", res.err)
	logCompletion(opts.Stdout, res.pool, res.err, sigCtx.Signal())
	return handleExecutionError(res.err)
}
