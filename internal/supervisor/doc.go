// Canopy STAPI - Satellite tasking API backend for Umbra Canopy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stapi-canopy

/*
Package supervisor runs the long-lived parts of the service under a suture v4
supervision tree.

# Overview

	RootSupervisor ("stapi-canopy")
	├── VendorSupervisor ("vendor-layer")
	│   └── TokenMonitorService (when a Canopy token is configured)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

A crashed service is restarted with suture's failure decay and backoff.
Canceling the context passed to Serve stops every service; each gets
TreeConfig.ShutdownTimeout to return.

# Logging

Supervisor events go through sutureslog to a *slog.Logger, which main builds
with logging.NewSlogLogger so they land in the same zerolog stream as the
rest of the service.

# Usage

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
	    ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	if err != nil {
	    logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
	    logging.Error().Err(err).Msg("Supervisor stopped with error")
	}

See package services for the service wrappers.
*/
package supervisor
