// Platepick - Restaurant Discovery and Personalized Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/platepick

package api

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/platepick/internal/catalog"
	"github.com/tomtom215/platepick/internal/models"
	"github.com/tomtom215/platepick/internal/recommend"
	"github.com/tomtom215/platepick/internal/recommend/reranking"
	"github.com/tomtom215/platepick/internal/store"
)

// testEnvelope mirrors models.APIResponse with the data left raw.
type testEnvelope struct {
	Status   string           `json:"status"`
	Data     json.RawMessage  `json:"data"`
	Metadata models.Metadata  `json:"metadata"`
	Error    *models.APIError `json:"error"`
}

type testServer struct {
	handler *Handler
	router  http.Handler
	store   *store.Store
}

// newTestServer builds the full router over an in-memory store and the
// built-in catalog. Rate limiting is off unless mwCfg enables it.
func newTestServer(t *testing.T, mwCfg *ChiMiddlewareConfig) *testServer {
	t.Helper()

	st, err := store.Open(store.Config{InMemory: true, Compression: true, GCRatio: 0.5}, zerolog.Nop())
	if err != nil {
		t.Fatalf("store.Open() error = %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })

	cat, err := catalog.Default()
	if err != nil {
		t.Fatalf("catalog.Default() error = %v", err)
	}

	cfg := recommend.DefaultConfig()
	engine, err := recommend.NewEngine(cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("recommend.NewEngine() error = %v", err)
	}
	if rr := reranking.FromConfig(cfg.Diversity); rr != nil {
		engine.RegisterReranker(rr)
	}

	if mwCfg == nil {
		mwCfg = DefaultChiMiddlewareConfig()
		mwCfg.CORSAllowedOrigins = []string{"*"}
		mwCfg.RateLimitDisabled = true
	}

	h := NewHandler(st, cat, engine)
	return &testServer{
		handler: h,
		router:  NewRouter(h, NewChiMiddleware(mwCfg)).SetupChi(),
		store:   st,
	}
}

// do sends a request through the router and decodes the envelope.
func (s *testServer) do(t *testing.T, method, path, body string) (*httptest.ResponseRecorder, testEnvelope) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	var env testEnvelope
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
			t.Fatalf("%s %s: decode envelope: %v (body %q)", method, path, err, rec.Body.String())
		}
	}
	return rec, env
}

// decodeData unmarshals the envelope data into v.
func decodeData(t *testing.T, env testEnvelope, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(env.Data, v); err != nil {
		t.Fatalf("decode data: %v (data %s)", err, string(env.Data))
	}
}

// expectError asserts an error envelope with the given status and code.
func expectError(t *testing.T, rec *httptest.ResponseRecorder, env testEnvelope, status int, code string) {
	t.Helper()
	if rec.Code != status {
		t.Errorf("status = %d, want %d (body %s)", rec.Code, status, rec.Body.String())
	}
	if env.Status != "error" {
		t.Errorf("envelope status = %q, want error", env.Status)
	}
	if env.Error == nil || env.Error.Code != code {
		t.Errorf("error = %+v, want code %s", env.Error, code)
	}
}
