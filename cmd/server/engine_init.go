// Platepick - Restaurant Discovery and Personalized Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/platepick

package main

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tomtom215/platepick/internal/config"
	"github.com/tomtom215/platepick/internal/recommend"
	"github.com/tomtom215/platepick/internal/recommend/reranking"
)

// initEngine creates the recommendation engine and registers the diversity
// reranker selected by RECOMMEND_DIVERSITY_STRATEGY.
//
//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func initEngine(cfg *config.Config, logger zerolog.Logger) (*recommend.Engine, error) {
	ec := cfg.EngineConfig()

	logger.Info().
		Int("default_count", ec.Limits.DefaultCount).
		Int("max_count", ec.Limits.MaxCount).
		Bool("diversity", ec.Diversity.Enabled).
		Str("strategy", ec.Diversity.Strategy).
		Msg("initializing recommendation engine")

	engine, err := recommend.NewEngine(ec, logger)
	if err != nil {
		return nil, err
	}

	if rr := reranking.FromConfig(ec.Diversity); rr != nil {
		engine.RegisterReranker(rr)
	}
	return engine, nil
}

// engineReloader re-reads configuration and applies the recommend section
// to a running engine. Other sections need a restart.
type engineReloader struct {
	engine *recommend.Engine
	load   func() (*config.Config, error)
	logger zerolog.Logger
}

//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func newEngineReloader(engine *recommend.Engine, logger zerolog.Logger) *engineReloader {
	return &engineReloader{
		engine: engine,
		load:   config.Load,
		logger: logger,
	}
}

// Reload loads and validates the configuration, then swaps the engine
// limits and reranker chain. On error the engine is left unchanged.
func (r *engineReloader) Reload() error {
	cfg, err := r.load()
	if err != nil {
		return fmt.Errorf("reload config: %w", err)
	}

	ec := cfg.EngineConfig()
	if err := r.engine.UpdateConfig(ec); err != nil {
		return err
	}
	r.engine.SetRerankers(reranking.FromConfig(ec.Diversity))

	r.logger.Info().
		Int("max_count", ec.Limits.MaxCount).
		Str("strategy", ec.Diversity.Strategy).
		Bool("diversity", ec.Diversity.Enabled).
		Msg("recommendation settings reloaded")
	return nil
}
