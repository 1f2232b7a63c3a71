// Platepick - Restaurant Discovery and Personalized Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/platepick

package reranking

import (
	"github.com/tomtom215/platepick/internal/recommend"
)

// FromConfig returns the reranker selected by cfg, or nil when diversity is
// disabled.
func FromConfig(cfg recommend.DiversityConfig) recommend.Reranker {
	if !cfg.Enabled {
		return nil
	}
	if cfg.Strategy == recommend.StrategyMMR {
		return NewMMR(cfg.MMRLambda)
	}
	return NewCuisineDiversity()
}
