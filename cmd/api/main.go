package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/01moynul/smilespa-golang/internal/catalog"
	"github.com/01moynul/smilespa-golang/internal/config"
	"github.com/01moynul/smilespa-golang/internal/handlers"
	"github.com/01moynul/smilespa-golang/internal/logger"
	"github.com/01moynul/smilespa-golang/internal/routes"
)

func main() {
	// 0. --- Configuration (.env, then environment) ---
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// 1. --- Logger ---
	zl, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer zl.Sync()

	// 2. --- Catalog (loaded once, immutable afterwards) ---
	cat, err := loadCatalog(cfg.CatalogFile)
	if err != nil {
		zl.Fatal("failed to load catalog", zap.Error(err))
	}
	zl.Info("catalog loaded",
		zap.Int("products", cat.Len()),
		zap.String("etag", cat.ETag()),
		zap.String("source", catalogSource(cfg.CatalogFile)),
	)
	for id, missing := range cat.DanglingRelations() {
		zl.Warn("related products do not resolve", zap.String("product", id), zap.Strings("missing", missing))
	}

	// --- Application Setup ---
	app := &handlers.Handlers{
		Catalog:     cat,
		Logger:      zl,
		BookingURL:  cfg.BookingURL,
		CacheMaxAge: cfg.CacheMaxAge,
	}

	// --- Router Setup ---
	gin.SetMode(cfg.GinMode)
	router := routes.SetupRouter(app, cfg.CORSAllowOrigin, zl)

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: router,
	}

	// --- Start Server ---
	go func() {
		zl.Info("starting catalog API server", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Fatal("server failed", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	zl.Info("shutting down", zap.Duration("timeout", cfg.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zl.Error("graceful shutdown failed", zap.Error(err))
	}
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.LoadDefault()
	}
	return catalog.LoadFile(path)
}

func catalogSource(path string) string {
	if path == "" {
		return "embedded"
	}
	return path
}
