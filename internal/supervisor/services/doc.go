// Platepick - Restaurant Discovery and Personalized Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/platepick

/*
Package services wraps Platepick components as suture.Service values.

Each wrapper translates its component's lifecycle into suture's
Serve(ctx) error contract and implements fmt.Stringer so supervisor
events name the service:

  - HTTPServerService: ListenAndServe with graceful Shutdown on cancel
  - StoreGCService: periodic BadgerDB value log garbage collection
  - ConfigReloadService: watches the config file and applies changes

Returning ctx.Err() after cancellation is normal shutdown. Any other
error makes the supervisor restart the service with backoff.
*/
package services
