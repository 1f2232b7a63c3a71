// Platepick - Restaurant Discovery and Personalized Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/platepick

package config

import (
	"strings"
	"testing"
	"time"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"port zero", func(c *Config) { c.Server.Port = 0 }, "HTTP_PORT"},
		{"zero timeout", func(c *Config) { c.Server.Timeout = 0 }, "HTTP_TIMEOUT"},
		{"missing store path", func(c *Config) { c.Store.Path = "" }, "STORE_PATH"},
		{"in memory without path", func(c *Config) { c.Store.Path = ""; c.Store.InMemory = true }, ""},
		{"negative gc interval", func(c *Config) { c.Store.GCInterval = -time.Second }, "STORE_GC_INTERVAL"},
		{"gc ratio zero", func(c *Config) { c.Store.GCRatio = 0 }, "STORE_GC_RATIO"},
		{"default count zero", func(c *Config) { c.Recommend.DefaultCount = 0 }, "RECOMMEND_DEFAULT_COUNT"},
		{"max below default", func(c *Config) { c.Recommend.MaxCount = 5 }, "RECOMMEND_MAX_COUNT"},
		{"no candidates", func(c *Config) { c.Recommend.MaxCandidates = 0 }, "RECOMMEND_MAX_CANDIDATES"},
		{"unknown strategy", func(c *Config) { c.Recommend.DiversityStrategy = "random" }, "RECOMMEND_DIVERSITY_STRATEGY"},
		{"lambda above one", func(c *Config) { c.Recommend.MMRLambda = 1.1 }, "RECOMMEND_MMR_LAMBDA"},
		{"feed min ratings zero", func(c *Config) { c.Recommend.FeedMinRatings = 0 }, "RECOMMEND_FEED_MIN_RATINGS"},
		{"no cors origins", func(c *Config) { c.Security.CORSOrigins = nil }, "CORS_ORIGINS"},
		{"rate limit requests zero", func(c *Config) { c.Security.RateLimitReqs = 0 }, "RATE_LIMIT_REQUESTS"},
		{"rate limit window too long", func(c *Config) { c.Security.RateLimitWindow = 2 * time.Hour }, "RATE_LIMIT_WINDOW"},
		{"rate limit disabled skips bounds", func(c *Config) {
			c.Security.RateLimitDisabled = true
			c.Security.RateLimitReqs = 0
		}, ""},
		{"bad log level", func(c *Config) { c.Logging.Level = "loud" }, "LOG_LEVEL"},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }, "LOG_FORMAT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := defaultConfig()
			tt.modify(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() expected error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %q, want it to mention %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestServerConfig_Addr(t *testing.T) {
	s := ServerConfig{Host: "127.0.0.1", Port: 8080}
	if got := s.Addr(); got != "127.0.0.1:8080" {
		t.Errorf("Addr() = %q, want 127.0.0.1:8080", got)
	}
}

func TestHasWildcardCORS(t *testing.T) {
	cfg := defaultConfig()
	if !cfg.HasWildcardCORS() {
		t.Error("default CORS origins should contain the wildcard")
	}
	cfg.Security.CORSOrigins = []string{"https://app.example.com"}
	if cfg.HasWildcardCORS() {
		t.Error("explicit origins should not report a wildcard")
	}
}

func TestConversions(t *testing.T) {
	cfg := defaultConfig()
	cfg.Logging.Level = "debug"
	cfg.Logging.Caller = true
	cfg.Store.InMemory = true
	cfg.Store.GCRatio = 0.6
	cfg.Recommend.DefaultCount = 5
	cfg.Recommend.MaxCount = 20
	cfg.Recommend.DiversityStrategy = "mmr"
	cfg.Recommend.MMRLambda = 0.3
	cfg.Recommend.FeedMinRatings = 3

	t.Run("logging", func(t *testing.T) {
		lc := cfg.LoggingOptions()
		if lc.Level != "debug" || !lc.Caller || lc.Format != "json" {
			t.Errorf("LoggingOptions() = %+v", lc)
		}
		if !lc.Timestamp {
			t.Error("LoggingOptions() should keep timestamps on")
		}
	})

	t.Run("store", func(t *testing.T) {
		sc := cfg.StoreOptions()
		if !sc.InMemory || sc.GCRatio != 0.6 || sc.Path != "/data/platepick" {
			t.Errorf("StoreOptions() = %+v", sc)
		}
		if err := sc.Validate(); err != nil {
			t.Errorf("StoreOptions().Validate() = %v", err)
		}
	})

	t.Run("engine", func(t *testing.T) {
		rc := cfg.EngineConfig()
		if rc.Limits.DefaultCount != 5 || rc.Limits.MaxCount != 20 {
			t.Errorf("limits = %+v", rc.Limits)
		}
		if rc.Diversity.Strategy != "mmr" || rc.Diversity.MMRLambda != 0.3 {
			t.Errorf("diversity = %+v", rc.Diversity)
		}
		if rc.Feed.MinRatings != 3 {
			t.Errorf("feed = %+v", rc.Feed)
		}
		if err := rc.Validate(); err != nil {
			t.Errorf("EngineConfig().Validate() = %v", err)
		}
	})
}
