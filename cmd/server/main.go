// Platepick - Restaurant Discovery and Personalized Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/platepick

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/tomtom215/platepick/internal/api"
	"github.com/tomtom215/platepick/internal/catalog"
	"github.com/tomtom215/platepick/internal/config"
	"github.com/tomtom215/platepick/internal/logging"
	"github.com/tomtom215/platepick/internal/metrics"
	"github.com/tomtom215/platepick/internal/store"
	"github.com/tomtom215/platepick/internal/supervisor"
	"github.com/tomtom215/platepick/internal/supervisor/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(cfg.LoggingOptions())
	metrics.AppInfo.WithLabelValues(api.Version, runtime.Version()).Set(1)

	logging.Info().
		Str("version", api.Version).
		Str("config_file", cfg.File).
		Str("addr", cfg.Server.Addr()).
		Str("log_level", logging.GetLevel().String()).
		Msg("Starting Platepick with supervisor tree")

	st, err := store.Open(cfg.StoreOptions(), logging.Logger())
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to open preference store")
	}
	defer func() {
		if err := st.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing preference store")
		}
	}()
	logging.Info().
		Bool("in_memory", cfg.Store.InMemory).
		Str("path", cfg.Store.Path).
		Msg("Preference store opened")

	cat, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		// Close explicitly: Fatal exits without running defers.
		_ = st.Close()
		logging.Fatal().Err(err).Str("path", cfg.Catalog.Path).Msg("Failed to load restaurant catalog")
	}
	metrics.SetCatalogSize(cat.Len(), len(cat.Cuisines()))
	logging.Info().
		Int("restaurants", cat.Len()).
		Int("cuisines", len(cat.Cuisines())).
		Msg("Restaurant catalog loaded")

	engine, err := initEngine(cfg, logging.Logger())
	if err != nil {
		_ = st.Close()
		logging.Fatal().Err(err).Msg("Failed to create recommendation engine")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// sutureslog needs slog; the adapter writes through zerolog.
	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
		_ = st.Close()
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	handler := api.NewHandler(st, cat, engine)
	router := api.NewRouter(handler, api.NewChiMiddleware(middlewareConfig(cfg)))

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.SetupChi(),
		ReadTimeout:       cfg.Server.Timeout,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}

	// === ADD SERVICES TO SUPERVISOR TREE ===

	if cfg.Store.GCInterval > 0 && !cfg.Store.InMemory {
		tree.AddDataService(services.NewStoreGCService(st, cfg.Store.GCInterval, logging.WithComponent("store")))
		logging.Info().Dur("interval", cfg.Store.GCInterval).Msg("Store GC service added to supervisor tree")
	}

	if cfg.File != "" {
		reloader := newEngineReloader(engine, logging.WithComponent("config"))
		tree.AddDataService(services.NewConfigReloadService(cfg.File, config.WatchConfigFile, reloader.Reload, logging.WithComponent("config")))
		logging.Info().Str("path", cfg.File).Msg("Config reload service added to supervisor tree")
	}

	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server added to supervisor tree")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish...")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	if len(unstopped) > 0 {
		logging.Warn().Int("count", len(unstopped)).Msg("Services failed to stop within timeout")
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
		}
	}

	logging.Info().Msg("Platepick stopped gracefully")
}

// middlewareConfig maps the security section onto the chi middleware.
func middlewareConfig(cfg *config.Config) *api.ChiMiddlewareConfig {
	mw := api.DefaultChiMiddlewareConfig()
	mw.CORSAllowedOrigins = cfg.Security.CORSOrigins
	mw.RateLimitRequests = cfg.Security.RateLimitReqs
	mw.RateLimitWindow = cfg.Security.RateLimitWindow
	mw.RateLimitDisabled = cfg.Security.RateLimitDisabled

	if cfg.HasWildcardCORS() {
		logging.Warn().Msg("CORS allows any origin (CORS_ORIGINS=*); restrict it in production")
	}
	if cfg.Security.RateLimitDisabled {
		logging.Warn().Msg("Rate limiting disabled (DISABLE_RATE_LIMIT=true)")
	}
	return mw
}
