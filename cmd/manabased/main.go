package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/klauspost/compress/gzhttp"
	"github.com/labstack/echo/v4"

	httpadapter "github.com/randomtoy/manabase-go/internal/adapters/http"
	"github.com/randomtoy/manabase-go/internal/adapters/lands"
	"github.com/randomtoy/manabase-go/internal/app"
	"github.com/randomtoy/manabase-go/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	catalog := lands.NewEmbeddedCatalog()
	if _, err := catalog.Lands(context.Background()); err != nil {
		logger.Error("failed to load land catalog", "error", err)
		os.Exit(1)
	}

	svc := app.NewLandService(catalog)

	handler, err := httpadapter.NewHandler(svc, cfg.DefaultTotalLands)
	if err != nil {
		logger.Error("failed to build handler", "error", err)
		os.Exit(1)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(httpadapter.RequestIDMiddleware())
	e.Use(httpadapter.LoggingMiddleware(logger))

	handler.Register(e)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           gzhttp.GzipHandler(e),
		ReadHeaderTimeout: 5 * time.Second,
	}

	// Graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		logger.Info("starting server", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
}
