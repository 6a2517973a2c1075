// Command seamcarve shrinks an image by content-aware seam removal.
//
//	seamcarve -in in.png -out out.png -width 300 -height 200 \
//	          -finder adjacency -solver toposort
//
// See internal/config for every flag, its SEAMCARVE_* variable and the
// YAML keys accepted by -config.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/seamcarve/carver"
	"github.com/katalvlaran/seamcarve/energy"
	"github.com/katalvlaran/seamcarve/internal/config"
	"github.com/katalvlaran/seamcarve/internal/logging"
	"github.com/katalvlaran/seamcarve/internal/metrics"
	"github.com/katalvlaran/seamcarve/picture"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "seamcarve:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stderr io.Writer) error {
	cfg, err := config.Load(args)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := logging.New(stderr, cfg.Logging.Level, cfg.Logging.Pretty).
		With().Str("run_id", uuid.NewString()).Logger()

	opts := []carver.Option{carver.WithLogger(logger)}
	if cfg.ValidateSeams {
		opts = append(opts, carver.WithValidation())
	}
	if cfg.MetricsAddr != "" {
		rec := metrics.New()
		shutdown := serveMetrics(cfg.MetricsAddr, rec, logger)
		defer shutdown()
		opts = append(opts, carver.WithRecorder(rec))
	}

	finder, err := newFinder(cfg)
	if err != nil {
		return err
	}

	pic, err := picture.Load(cfg.Input)
	if err != nil {
		return err
	}
	logger.Info().
		Str("input", cfg.Input).
		Int("width", pic.Width()).
		Int("height", pic.Height()).
		Str("finder", cfg.Finder).
		Str("solver", cfg.Solver).
		Msg("picture loaded")

	c, err := carver.New(pic, energy.DualGradient{}, finder, opts...)
	if err != nil {
		return err
	}

	width, height := cfg.Width, cfg.Height
	if width == 0 {
		width = pic.Width()
	}
	if height == 0 {
		height = pic.Height()
	}
	if err := c.Resize(ctx, width, height); err != nil {
		return err
	}

	if err := c.Picture().Save(cfg.Output); err != nil {
		return err
	}
	logger.Info().Str("output", cfg.Output).Msg("picture saved")

	return nil
}

// serveMetrics exposes rec on addr until the returned function is called.
func serveMetrics(addr string, rec *metrics.Recorder, logger zerolog.Logger) func() {
	mux := http.NewServeMux()
	mux.Handle("/metrics", rec.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 2 * time.Second}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error().Err(err).Str("addr", addr).Msg("metrics server")
		}
	}()
	logger.Info().Str("addr", addr).Msg("serving metrics")

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}
}
