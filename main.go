package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/yumyai/netalign/logger"
	"github.com/yumyai/netalign/pkg/config"
	"github.com/yumyai/netalign/pkg/db"
	"github.com/yumyai/netalign/pkg/handler"
	"github.com/yumyai/netalign/pkg/metrics"
	"github.com/yumyai/netalign/pkg/middle"
	"github.com/yumyai/netalign/pkg/pipeline"
	"go.uber.org/zap"
)

const VERSION = "0.1.0"

func main() {
	// Establish logger before reading the environment so its warnings show.
	if err := logger.InitLogger(logger.ParseLevel(os.Getenv("NETALIGN_LOG_LEVEL"))); err != nil {
		panic(err)
	}
	defer logger.Sync() // Make sure that the buffered is flushed.

	env := config.LoadEnv()
	logger.SetLevel(logger.ParseLevel(env.LogLevel)) // .env may set it

	logger.Info("Start:", zap.String("Version", VERSION))

	manifest, err := config.LoadDataset(env.DatasetFile)
	if err != nil {
		logger.Fatal("Failed to load dataset manifest", zap.Error(err))
	}

	// Connect to db
	netdb, err := db.Open(env.IdentifierDB)
	if err != nil {
		logger.Fatal("Failed to open identifier database", zap.Error(err))
	}
	defer netdb.Close()
	logger.Info("Open database on", zap.String("DB_LOC", env.IdentifierDB))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ds, err := pipeline.Load(ctx, manifest, netdb.Identifiers)
	if err != nil {
		logger.Fatal("Failed to load dataset", zap.Error(err))
	}

	nctx := &handler.NetContext{
		Dataset: ds,
		Metrics: metrics.NewCollector("netalign"),
	}
	mux := handler.NewRouter(nctx)

	// Apply middleware
	app := middle.Chain(mux,
		middle.RequestIDMiddleware(logger.L()),
		middle.LoggingMiddleware(logger.L()),
		middle.MetricsMiddleware(nctx.Metrics),
	)

	srv := &http.Server{
		Addr:              env.Addr,
		Handler:           app,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Shutdown failed", zap.Error(err))
		}
	}()

	logger.Info("Server starting", zap.String("addr", env.Addr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("Error starting server:", zap.String("error message", err.Error()))
	}
}
