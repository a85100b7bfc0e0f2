package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/chronogrid/generator"
)

type batchFlags struct {
	levelFlags
	count       int
	workers     int
	seed        int64
	outDir      string
	compress    bool
	metricsAddr string
}

func newBatchCmd(a *app) *cobra.Command {
	var bf batchFlags
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Generate many levels concurrently into a directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if bf.count <= 0 || bf.workers <= 0 {
				return fmt.Errorf("--count and --workers must be positive")
			}
			if !cmd.Flags().Changed("seed") {
				bf.seed = time.Now().UnixNano()
			}
			return runBatch(cmd.Context(), a, bf)
		},
	}
	bf.register(cmd)
	fs := cmd.Flags()
	fs.IntVar(&bf.count, "count", 10, "number of levels")
	fs.IntVar(&bf.workers, "workers", 4, "concurrent generators")
	fs.Int64Var(&bf.seed, "seed", 0, "base seed; each worker derives its own stream")
	fs.StringVar(&bf.outDir, "out-dir", "levels", "output directory")
	fs.BoolVar(&bf.compress, "compress", true, "write zstd-compressed .json.zst files")
	fs.StringVar(&bf.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address while running")
	return cmd
}

func runBatch(ctx context.Context, a *app, bf batchFlags) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := os.MkdirAll(bf.outDir, 0o755); err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	metrics := generator.NewMetrics(reg)
	if bf.metricsAddr != "" {
		stop, err := serveMetrics(bf.metricsAddr, reg, a)
		if err != nil {
			return err
		}
		defer stop()
	}

	workers := min(bf.workers, bf.count)
	var fallbacks atomic.Int64
	eg, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		eg.Go(func() error {
			g, err := generator.New(
				generator.WithConfig(a.cfg),
				generator.WithSeed(generator.DeriveSeed(bf.seed, uint64(w))),
				generator.WithLogger(a.log.With("worker", w)),
				generator.WithMetrics(metrics),
			)
			if err != nil {
				return err
			}
			for i := w; i < bf.count; i += workers {
				if err := ctx.Err(); err != nil {
					return err
				}
				level, err := g.Generate(bf.width, bf.height, bf.difficulty, bf.options())
				if err != nil {
					return err
				}
				if level.Fallback {
					fallbacks.Add(1)
				}
				if err := writeLevelFile(filepath.Join(bf.outDir, levelFileName(i, bf.compress)), level); err != nil {
					return err
				}
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "generated %d levels in %s (%d fallback)\n", bf.count, bf.outDir, fallbacks.Load())
	return nil
}

func levelFileName(i int, compress bool) string {
	name := fmt.Sprintf("level-%04d.json", i)
	if compress {
		name += zstdExt
	}
	return name
}

// serveMetrics exposes reg over HTTP until the returned stop func is called.
func serveMetrics(addr string, reg *prometheus.Registry, a *app) (stop func(), err error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("--metrics-addr: %w", err)
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.log.Error("metrics server stopped", "err", err)
		}
	}()
	a.log.Info("serving metrics", "addr", ln.Addr().String())
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}, nil
}
