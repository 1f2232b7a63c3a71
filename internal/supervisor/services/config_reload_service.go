// Platepick - Restaurant Discovery and Personalized Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/platepick

package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

// WatchFunc starts watching path and calls onChange on every modification.
// config.WatchConfigFile has this signature.
type WatchFunc func(path string, onChange func()) (stop func() error, err error)

// ConfigReloadService re-applies configuration when the config file changes.
type ConfigReloadService struct {
	path   string
	watch  WatchFunc
	reload func() error
	logger zerolog.Logger
	name   string
}

// NewConfigReloadService creates the reload service. reload is called on
// the watcher goroutine and must be safe to run concurrently with requests.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewConfigReloadService(path string, watch WatchFunc, reload func() error, logger zerolog.Logger) *ConfigReloadService {
	return &ConfigReloadService{
		path:   path,
		watch:  watch,
		reload: reload,
		logger: logger.With().Str("service", "config-reload").Str("path", path).Logger(),
		name:   "config-reload",
	}
}

// Serve implements suture.Service. A rejected reload keeps the running
// configuration.
func (s *ConfigReloadService) Serve(ctx context.Context) error {
	stop, err := s.watch(s.path, s.onChange)
	if err != nil {
		return fmt.Errorf("config watch failed: %w", err)
	}

	s.logger.Info().Msg("watching config file")
	<-ctx.Done()

	if err := stop(); err != nil {
		s.logger.Warn().Err(err).Msg("config unwatch failed")
	}
	return ctx.Err()
}

func (s *ConfigReloadService) onChange() {
	if err := s.reload(); err != nil {
		s.logger.Warn().Err(err).Msg("config reload rejected, keeping current settings")
		return
	}
	s.logger.Info().Msg("config reloaded")
}

// String implements fmt.Stringer.
func (s *ConfigReloadService) String() string {
	return s.name
}
