// Platepick - Restaurant Discovery and Personalized Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/platepick

package config

import (
	"fmt"
	"time"

	"github.com/tomtom215/platepick/internal/logging"
	"github.com/tomtom215/platepick/internal/recommend"
	"github.com/tomtom215/platepick/internal/store"
)

// Config holds all application configuration loaded from defaults, an
// optional YAML file and environment variables.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: Built-in sensible defaults for all settings
//  2. Config File: Optional YAML config file (config.yaml) for persistent settings
//  3. Environment Variables: Override any setting via environment variables
//
// Example:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal("Failed to load config:", err)
//	}
//	st, err := store.Open(cfg.StoreOptions(), logger)
//
// Config is immutable after Load() and safe for concurrent read access.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Logging   LoggingConfig   `koanf:"logging"`
	Store     StoreConfig     `koanf:"store"`
	Catalog   CatalogConfig   `koanf:"catalog"`
	Recommend RecommendConfig `koanf:"recommend"`
	Security  SecurityConfig  `koanf:"security"`

	// File is the config file that was loaded, empty when none was found.
	File string `koanf:"-"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port    int           `koanf:"port"`
	Host    string        `koanf:"host"`
	Timeout time.Duration `koanf:"timeout"`
}

// Addr returns the listen address in host:port form.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// LoggingConfig holds logging settings.
//
// Environment Variables:
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: true/false - include caller file:line (default: false)
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	// Default: json
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	// Default: false
	Caller bool `koanf:"caller"`
}

// StoreConfig holds preference store settings.
//
// Environment Variables:
//   - STORE_PATH: BadgerDB directory (default: /data/platepick)
//   - STORE_IN_MEMORY: keep all data in memory, lost on restart (default: false)
//   - STORE_SYNC_WRITES: fsync after every write (default: true)
//   - STORE_COMPRESSION: Snappy block compression (default: true)
//   - STORE_GC_INTERVAL: value log GC interval, 0 disables (default: 10m)
//   - STORE_GC_RATIO: value log GC discard ratio (default: 0.5)
type StoreConfig struct {
	Path        string        `koanf:"path"`
	InMemory    bool          `koanf:"in_memory"`
	SyncWrites  bool          `koanf:"sync_writes"`
	Compression bool          `koanf:"compression"`
	GCInterval  time.Duration `koanf:"gc_interval"`
	GCRatio     float64       `koanf:"gc_ratio"`
}

// CatalogConfig holds restaurant catalog settings.
type CatalogConfig struct {
	// Path is a JSON or YAML restaurant dataset. Empty uses the built-in dataset.
	Path string `koanf:"path"`
}

// RecommendConfig holds recommendation engine settings.
//
// Environment Variables:
//   - RECOMMEND_DEFAULT_COUNT: results when no count is requested (default: 10)
//   - RECOMMEND_MAX_COUNT: upper bound on requested count (default: 50)
//   - RECOMMEND_MAX_CANDIDATES: largest candidate set per request (default: 5000)
//   - RECOMMEND_DIVERSITY_ENABLED: register the diversity reranker (default: true)
//   - RECOMMEND_DIVERSITY_STRATEGY: cuisine or mmr (default: cuisine)
//   - RECOMMEND_MMR_LAMBDA: score vs. similarity balance for mmr (default: 0.7)
//   - RECOMMEND_FEED_MIN_RATINGS: ratings before the feed personalizes (default: 1)
type RecommendConfig struct {
	DefaultCount      int     `koanf:"default_count"`
	MaxCount          int     `koanf:"max_count"`
	MaxCandidates     int     `koanf:"max_candidates"`
	DiversityEnabled  bool    `koanf:"diversity_enabled"`
	DiversityStrategy string  `koanf:"diversity_strategy"`
	MMRLambda         float64 `koanf:"mmr_lambda"`
	FeedMinRatings    int     `koanf:"feed_min_ratings"`
}

// SecurityConfig holds CORS and rate limiting settings
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingOptions converts the logging section for logging.Init.
func (c *Config) LoggingOptions() logging.Config {
	lc := logging.DefaultConfig()
	lc.Level = c.Logging.Level
	lc.Format = c.Logging.Format
	lc.Caller = c.Logging.Caller
	return lc
}

// StoreOptions converts the store section for store.Open.
func (c *Config) StoreOptions() store.Config {
	return store.Config{
		Path:        c.Store.Path,
		InMemory:    c.Store.InMemory,
		SyncWrites:  c.Store.SyncWrites,
		Compression: c.Store.Compression,
		GCRatio:     c.Store.GCRatio,
	}
}

// EngineConfig converts the recommend section for recommend.NewEngine.
func (c *Config) EngineConfig() *recommend.Config {
	rc := recommend.DefaultConfig()
	rc.Limits.DefaultCount = c.Recommend.DefaultCount
	rc.Limits.MaxCount = c.Recommend.MaxCount
	rc.Limits.MaxCandidates = c.Recommend.MaxCandidates
	rc.Diversity.Enabled = c.Recommend.DiversityEnabled
	rc.Diversity.Strategy = c.Recommend.DiversityStrategy
	rc.Diversity.MMRLambda = c.Recommend.MMRLambda
	rc.Feed.MinRatings = c.Recommend.FeedMinRatings
	return rc
}

// Load reads configuration from all sources in priority order:
//  1. Built-in defaults
//  2. Config file (config.yaml if exists, or path specified in CONFIG_PATH env var)
//  3. Environment variables
//
// See LoadWithKoanf() for the underlying implementation.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
