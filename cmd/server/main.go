// Canopy STAPI - Satellite tasking API backend for Umbra Canopy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stapi-canopy

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/tomtom215/stapi-canopy/docs" // Swagger spec for /swagger
	"github.com/tomtom215/stapi-canopy/internal/api"
	"github.com/tomtom215/stapi-canopy/internal/backend"
	"github.com/tomtom215/stapi-canopy/internal/canopy"
	"github.com/tomtom215/stapi-canopy/internal/catalog"
	"github.com/tomtom215/stapi-canopy/internal/config"
	"github.com/tomtom215/stapi-canopy/internal/logging"
	"github.com/tomtom215/stapi-canopy/internal/metrics"
	"github.com/tomtom215/stapi-canopy/internal/supervisor"
	"github.com/tomtom215/stapi-canopy/internal/supervisor/services"
)

// Set at build time:
//
//	go build -ldflags "-X main.version=1.2.0 -X main.commit=$(git rev-parse --short HEAD)"
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	cfg, err := config.LoadWithKoanf()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
	})
	metrics.SetBuildInfo(version, commit)

	logging.Info().
		Str("version", version).
		Str("canopy_api_url", cfg.Canopy.APIURL).
		Str("public_url", cfg.Server.BaseURL()).
		Bool("token_configured", cfg.Canopy.Token != "").
		Bool("forward_authorization", cfg.Canopy.ForwardAuthorization).
		Bool("archive_catalog", cfg.Catalog.ArchiveCatalogEnabled).
		Dur("feasibility_timeout", cfg.Canopy.FeasibilityTimeout).
		Msg("Starting Canopy STAPI")

	if cfg.Canopy.ForwardAuthorization && cfg.HasWildcardCORS() {
		logging.Warn().Msg("Caller tokens are forwarded to Canopy while CORS allows any origin; set CORS_ORIGINS")
	}

	products := catalog.New(cfg.Catalog)
	client := canopy.NewClient(cfg.Canopy)
	stapi := backend.NewCanopyBackend(cfg, products, client)

	handler := api.NewHandler(cfg, stapi, client, version)
	router := api.NewRouter(handler, api.NewChiMiddleware(api.ChiMiddlewareConfigFromSecurity(cfg.Security)))

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router.SetupChi(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	if cfg.Canopy.Token != "" {
		tree.AddVendorService(services.NewTokenMonitorService(client, 0, 0))
	}
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Shutdown signal received, draining requests")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree stopped with error")
		}
	}

	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	if unstopped, _ := tree.UnstoppedServiceReport(); len(unstopped) > 0 {
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
		}
		stop()
		os.Exit(1)
	}

	logging.Info().Msg("Canopy STAPI stopped")
}
