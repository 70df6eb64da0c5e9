package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/graphtrace/engine"
	"github.com/katalvlaran/graphtrace/internal/config"
	"github.com/katalvlaran/graphtrace/internal/logging"
	"github.com/katalvlaran/graphtrace/internal/server"
	"github.com/katalvlaran/graphtrace/internal/store"
	"github.com/katalvlaran/graphtrace/internal/store/badgerstore"
	"github.com/katalvlaran/graphtrace/internal/store/memstore"
	"github.com/katalvlaran/graphtrace/internal/store/pgstore"
)

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	logger := logging.New(cfg.Log.Level, cfg.Log.Format, cmd.ErrOrStderr())

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := openStore(ctx, cfg.Store, logger)
	if err != nil {
		return err
	}
	defer st.Close()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	tpOpts := []sdktrace.TracerProviderOption{}
	if cfg.Trace.Stdout {
		exp, err := stdouttrace.New(stdouttrace.WithWriter(cmd.ErrOrStderr()))
		if err != nil {
			return fmt.Errorf("trace exporter: %w", err)
		}
		tpOpts = append(tpOpts, sdktrace.WithBatcher(exp))
	}
	tp := sdktrace.NewTracerProvider(tpOpts...)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		_ = tp.Shutdown(shutdownCtx)
	}()

	eng := engine.New(
		engine.WithLogger(logger),
		engine.WithRegisterer(reg),
		engine.WithTracerProvider(tp),
	)

	gin.SetMode(gin.ReleaseMode)
	srv := server.New(server.Deps{
		Engine:   eng,
		Store:    st,
		Gatherer: reg,
		Logger:   logger,
	}, server.Options{
		RateLimit: cfg.Server.RateLimit,
		Burst:     cfg.Server.Burst,
	})

	httpSrv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("listening", slog.String("addr", cfg.Server.Addr), slog.String("store", cfg.Store.Backend))
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return httpSrv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// openStore builds the configured snapshot backend.
func openStore(ctx context.Context, cfg config.StoreConfig, logger *slog.Logger) (store.Store, error) {
	switch cfg.Backend {
	case config.BackendBadger:
		bc := badgerstore.DefaultConfig(cfg.BadgerPath)
		bc.Logger = logger.With(slog.String("component", "badger"))
		return badgerstore.Open(bc)
	case config.BackendPostgres:
		return pgstore.Connect(ctx, cfg.PostgresURL)
	default:
		return memstore.New(), nil
	}
}
