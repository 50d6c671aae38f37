package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"time"

	_ "github.com/lib/pq"

	"propertytag/internal/artifact"
	"propertytag/internal/platform/config"
	"propertytag/internal/platform/httpserver"
	"propertytag/internal/platform/logger"
	"propertytag/internal/platform/metrics"
	"propertytag/internal/property/service"
	"propertytag/internal/property/store"
	httptransport "propertytag/internal/transport/http"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()
	m := metrics.New()

	var st store.Store
	if cfg.DatabaseURL != "" {
		db, err := sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			log.Error("open database", "error", err.Error())
			os.Exit(1)
		}
		pg := store.NewPostgres(db)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		err = pg.ApplySchema(ctx)
		cancel()
		if err != nil {
			log.Error("apply schema", "error", err.Error())
			os.Exit(1)
		}
		st = pg
	} else {
		log.Warn("DATABASE_URL not set, records will not survive a restart")
		st = store.NewInMemory()
	}

	if err := os.MkdirAll(cfg.QRCodeDir, 0o755); err != nil {
		log.Error("create qr code directory", "dir", cfg.QRCodeDir, "error", err.Error())
		os.Exit(1)
	}

	compositor := artifact.NewCompositor(cfg.TemplatePath, cfg.FontPath)
	svc := service.New(st, compositor, cfg.QRCodeDir, cfg.PageSize, log, m)
	handler := httptransport.New(svc, log)
	router := httptransport.NewRouter(handler)

	srv := httpserver.New(cfg.Addr, router)

	log.Info("starting property tag service", "addr", cfg.Addr)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err.Error())
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", "error", err.Error())
		os.Exit(1)
	}
}
