// Platepick - Restaurant Discovery and Personalized Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/platepick

package recommend

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Note: this package does not import the store or catalog. Callers load the
// profile and candidates and pass them in the Request.

// Engine runs the ranking pipeline. It holds no per-user state and is safe
// for concurrent use.
type Engine struct {
	config   *Config
	configMu sync.RWMutex
	logger   zerolog.Logger

	rerankers []Reranker
	rrMu      sync.RWMutex

	requestCount atomic.Int64
	errorCount   atomic.Int64
	modeCounts   sync.Map // mode name -> *atomic.Int64
}

// NewEngine creates a new recommendation engine.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg *Config, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Engine{
		config:    cfg.Clone(),
		logger:    logger.With().Str("component", "recommend").Logger(),
		rerankers: make([]Reranker, 0),
	}, nil
}

// RegisterReranker adds a reranker applied to ModeDiverse results.
func (e *Engine) RegisterReranker(rr Reranker) {
	e.rrMu.Lock()
	defer e.rrMu.Unlock()

	e.rerankers = append(e.rerankers, rr)
	e.logger.Info().Str("reranker", rr.Name()).Msg("registered reranker")
}

// SetRerankers replaces the registered rerankers. Nil entries are skipped,
// so SetRerankers(nil) clears the chain.
func (e *Engine) SetRerankers(rrs ...Reranker) {
	chain := make([]Reranker, 0, len(rrs))
	names := make([]string, 0, len(rrs))
	for _, rr := range rrs {
		if rr == nil {
			continue
		}
		chain = append(chain, rr)
		names = append(names, rr.Name())
	}

	e.rrMu.Lock()
	e.rerankers = chain
	e.rrMu.Unlock()

	e.logger.Info().Strs("rerankers", names).Msg("reranker chain replaced")
}

// Recommend produces an ordered list of restaurants for one request.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) Recommend(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	e.requestCount.Add(1)

	req = e.prepareRequest(req)
	e.countMode(req.Mode)
	logger := e.createRequestLogger(req)
	logger.Debug().Int("restaurants", len(req.Restaurants)).Msg("processing recommendation request")

	if err := ctx.Err(); err != nil {
		e.errorCount.Add(1)
		return nil, fmt.Errorf("recommend: %w", err)
	}

	cfg := e.GetConfig()
	if len(req.Restaurants) > cfg.Limits.MaxCandidates {
		e.errorCount.Add(1)
		return nil, fmt.Errorf("candidate set of %d exceeds limit %d", len(req.Restaurants), cfg.Limits.MaxCandidates)
	}

	var (
		items     []ScoredRestaurant
		rerankers []string
	)

	switch req.Mode {
	case ModeBrowse:
		items = Browse(req.Restaurants, req.Preferences, req.Location)
	case ModeRanked:
		items = Rank(req.Restaurants, req.Preferences, e.rankOptions(req))
	case ModeDiverse:
		items = Rank(req.Restaurants, req.Preferences, e.rankOptions(req))
	default:
		e.errorCount.Add(1)
		return nil, fmt.Errorf("unsupported mode %d", req.Mode)
	}

	// Counted before reranking truncates to K.
	total := len(items)
	if req.Mode == ModeDiverse {
		items, rerankers = e.applyRerankers(ctx, items, req.K)
	}
	if len(items) > req.K {
		items = items[:req.K]
	}

	resp := &Response{
		Items:           items,
		TotalCandidates: total,
		Metadata: ResponseMetadata{
			RequestID:    req.RequestID,
			UserID:       req.UserID,
			Mode:         req.Mode.String(),
			Rerankers:    rerankers,
			Personalized: req.Mode != ModeBrowse,
			LatencyMS:    time.Since(start).Milliseconds(),
			Timestamp:    time.Now(),
		},
	}

	logger.Debug().
		Int("candidates", total).
		Int("returned", len(items)).
		Int64("latency_ms", resp.Metadata.LatencyMS).
		Msg("recommendation complete")

	return resp, nil
}

// Feed serves the home feed: diverse recommendations once the profile holds
// enough ratings, browse order before that.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) Feed(ctx context.Context, req Request) (*Response, error) {
	req.Mode = ModeBrowse
	if req.Preferences != nil && req.Preferences.TotalRatings >= e.GetConfig().Feed.MinRatings {
		req.Mode = ModeDiverse
	}
	return e.Recommend(ctx, req)
}

// prepareRequest applies defaults and generates a request ID if needed.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) prepareRequest(req Request) Request {
	if req.RequestID == "" {
		req.RequestID = uuid.New().String()
	}

	limits := e.GetConfig().Limits
	if req.K <= 0 {
		req.K = limits.DefaultCount
	}
	if req.K > limits.MaxCount {
		req.K = limits.MaxCount
	}

	return req
}

//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) createRequestLogger(req Request) zerolog.Logger {
	return e.logger.With().
		Str("request_id", req.RequestID).
		Str("user_id", req.UserID).
		Str("mode", req.Mode.String()).
		Logger()
}

//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) rankOptions(req Request) RankOptions {
	return RankOptions{
		Location:      req.Location,
		ExcludeRated:  req.ExcludeRated,
		RatingHistory: req.RatingHistory,
	}
}

// applyRerankers runs every registered reranker in registration order.
func (e *Engine) applyRerankers(ctx context.Context, items []ScoredRestaurant, k int) ([]ScoredRestaurant, []string) {
	e.rrMu.RLock()
	rerankers := e.rerankers
	e.rrMu.RUnlock()

	names := make([]string, 0, len(rerankers))
	for _, rr := range rerankers {
		items = rr.Rerank(ctx, items, k)
		names = append(names, rr.Name())
	}
	return items, names
}

func (e *Engine) countMode(m RecommendMode) {
	counter, _ := e.modeCounts.LoadOrStore(m.String(), new(atomic.Int64))
	counter.(*atomic.Int64).Add(1)
}

// GetMetrics returns the current engine counters.
func (e *Engine) GetMetrics() Metrics {
	m := Metrics{
		RequestCount: e.requestCount.Load(),
		ErrorCount:   e.errorCount.Load(),
		ModeCounts:   make(map[string]int64),
	}
	e.modeCounts.Range(func(key, value any) bool {
		m.ModeCounts[key.(string)] = value.(*atomic.Int64).Load()
		return true
	})
	return m
}

// GetConfig returns a copy of the current configuration.
func (e *Engine) GetConfig() *Config {
	e.configMu.RLock()
	defer e.configMu.RUnlock()
	return e.config.Clone()
}

// UpdateConfig replaces the engine configuration.
func (e *Engine) UpdateConfig(cfg *Config) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	e.configMu.Lock()
	e.config = cfg.Clone()
	e.configMu.Unlock()

	e.logger.Info().Msg("configuration updated")
	return nil
}
