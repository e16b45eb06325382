// Package server boots the Kirana back-office: config, database, cache,
// storage, the HTTP stack and the gRPC health sidecar, then blocks until a
// shutdown signal drains everything gracefully.
package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shashiranjanraj/kirana/app/routes"
	"github.com/shashiranjanraj/kirana/config"
	"github.com/shashiranjanraj/kirana/pkg/cache"
	"github.com/shashiranjanraj/kirana/pkg/database"
	kgrpc "github.com/shashiranjanraj/kirana/pkg/grpc"
	"github.com/shashiranjanraj/kirana/pkg/logger"
	"github.com/shashiranjanraj/kirana/pkg/metrics"
	"github.com/shashiranjanraj/kirana/pkg/middleware"
	"github.com/shashiranjanraj/kirana/pkg/orm"
	"github.com/shashiranjanraj/kirana/pkg/reqid"
	"github.com/shashiranjanraj/kirana/pkg/router"
	"github.com/shashiranjanraj/kirana/pkg/storage"
)

const shutdownTimeout = 15 * time.Second

// Start boots every subsystem and serves until SIGINT/SIGTERM.
func Start() error {
	if err := config.Load(); err != nil {
		return fmt.Errorf("server: load config: %w", err)
	}

	// Persisted logs: fan the slog output into MongoDB when configured.
	var mongoSink interface{ Close() }
	if uri := config.MongoLogURI(); uri != "" {
		sink, err := logger.AttachMongo(uri, config.MongoLogDatabase(), "logs")
		if err != nil {
			logger.Warn("server: mongo log sink disabled", "error", err)
		} else {
			mongoSink = sink
		}
	}

	if err := database.Connect(); err != nil {
		return fmt.Errorf("server: connect database: %w", err)
	}
	cache.Connect()
	orm.CacheStore = cache.Store{}
	storage.Connect()

	routes.WireEvents()

	r := router.New()
	r.Use(
		metrics.Middleware(),
		middleware.Recovery,
		reqid.Middleware(),
		middleware.Logger,
		middleware.CORS(middleware.DefaultCORSOptions()),
		middleware.RateLimit(300, time.Minute),
	)
	routes.RegisterAPI(r)

	grpcSrv, _, err := kgrpc.Start(config.GRPCPort())
	if err != nil {
		return fmt.Errorf("server: start grpc: %w", err)
	}

	addr := ":" + config.AppPort()
	httpSrv := &http.Server{
		Addr:              addr,
		Handler:           r.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Kirana running", "addr", addr, "env", config.AppEnv())
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server: serve: %w", err)
	case sig := <-quit:
		logger.Info("server: shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := httpSrv.Shutdown(ctx); err != nil {
		logger.Error("server: http shutdown", "error", err)
	}
	kgrpc.Stop(grpcSrv)
	if mongoSink != nil {
		mongoSink.Close()
	}

	logger.Info("server: stopped")
	return nil
}
