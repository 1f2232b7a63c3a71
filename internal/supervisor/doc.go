// Platepick - Restaurant Discovery and Personalized Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/platepick

/*
Package supervisor runs Platepick's long-lived services under suture v4.

The tree has two layers so that a failing maintenance task never takes the
API down with it:

	RootSupervisor ("platepick")
	├── DataSupervisor ("data-layer")
	│   ├── StoreGCService (if STORE_GC_INTERVAL > 0)
	│   └── ConfigReloadService (if a config file was loaded)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Crashed services are restarted with suture's backoff. Supervisor events are
logged through sutureslog on the slog adapter from the logging package.

# Usage

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddDataService(services.NewStoreGCService(st, cfg.Store.GCInterval, logger))
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	errCh := tree.ServeBackground(ctx)
	<-ctx.Done()
	<-errCh

When the context is canceled every service receives the cancellation and
gets ShutdownTimeout to return. Services that miss the deadline are listed
by UnstoppedServiceReport.
*/
package supervisor
