// Platepick - Restaurant Discovery and Personalized Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/platepick

package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestSlogHandler(t *testing.T) {
	tests := []struct {
		name  string
		log   func(l *slog.Logger)
		wants []string
	}{
		{
			name:  "info with string attr",
			log:   func(l *slog.Logger) { l.Info("service started", "service", "http-server") },
			wants: []string{`"level":"info"`, `"service":"http-server"`, `"message":"service started"`},
		},
		{
			name:  "warn with int and duration",
			log:   func(l *slog.Logger) { l.Warn("backoff", "failures", 5, "wait", 15*time.Second) },
			wants: []string{`"level":"warn"`, `"failures":5`, `"wait":`},
		},
		{
			name:  "error level",
			log:   func(l *slog.Logger) { l.Error("service panicked") },
			wants: []string{`"level":"error"`},
		},
		{
			name:  "grouped attrs",
			log:   func(l *slog.Logger) { l.WithGroup("supervisor").Info("event", "name", "api-layer") },
			wants: []string{`"supervisor.name":"api-layer"`},
		},
		{
			name:  "with attrs",
			log:   func(l *slog.Logger) { l.With("tree", "platepick").Info("event") },
			wants: []string{`"tree":"platepick"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := slog.New(NewSlogHandlerWithLogger(NewTestLogger(&buf)))
			tt.log(l)

			out := buf.String()
			for _, want := range tt.wants {
				if !strings.Contains(out, want) {
					t.Errorf("output %s missing %s", out, want)
				}
			}
		})
	}
}
