// Platepick - Restaurant Discovery and Personalized Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/platepick

/*
Package main is the entry point for the Platepick server.

Platepick serves a restaurant catalog, records per-user ratings and saved
lists, learns cuisine affinities from those ratings and returns ranked,
diversified recommendations over a JSON REST API.

# Application Architecture

	RootSupervisor ("platepick")
	├── DataSupervisor ("data-layer")
	│   ├── StoreGCService (BadgerDB value log GC)
	│   └── ConfigReloadService (when a config file is present)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService (chi router)

Component initialization order:

 1. Configuration: Koanf v2 defaults, YAML file, environment
 2. Logging: zerolog with JSON or console output
 3. Preference store: BadgerDB, on disk or in memory
 4. Catalog: embedded dataset or CATALOG_PATH
 5. Recommendation engine with the configured diversity reranker
 6. Supervisor tree and HTTP server

# Quick Start

	STORE_IN_MEMORY=true LOG_FORMAT=console ./platepick

	curl localhost:3858/api/v1/restaurants
	curl -X POST localhost:3858/api/v1/users/alice/ratings \
	  -d '{"restaurant_id":"sf-001","rating":5}'
	curl 'localhost:3858/api/v1/users/alice/recommendations?mode=feed'

# Signal Handling

SIGINT and SIGTERM cancel the supervisor context. The HTTP server drains
in-flight requests for up to 10s, then the store is closed.

# Port 3858

The default port sits next to the usual 3857 so both can run side by side.
*/
package main
