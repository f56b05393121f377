// AngelaMos | 2026
// handler_test.go

package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
)

type fakeChecker struct {
	err error
}

func (f *fakeChecker) Ping(_ context.Context) error {
	return f.err
}

func TestHealth(t *testing.T) {
	t.Run("healthy database", func(t *testing.T) {
		h := NewHandler(&fakeChecker{}, nil, "1.2.3")

		rec := httptest.NewRecorder()
		h.Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}

		var env struct {
			Success bool              `json:"success"`
			Data    map[string]string `json:"data"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if !env.Success {
			t.Error("expected success envelope")
		}
		if env.Data["database"] != "connected" {
			t.Errorf("database = %q", env.Data["database"])
		}
		if env.Data["version"] != "1.2.3" {
			t.Errorf("version = %q", env.Data["version"])
		}
	})

	t.Run("served from the root router", func(t *testing.T) {
		h := NewHandler(&fakeChecker{}, nil, "1.2.3")

		r := chi.NewRouter()
		h.RegisterRoutes(r)

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		if rec.Code != http.StatusOK {
			t.Fatalf("GET /health = %d, want 200", rec.Code)
		}
	})

	t.Run("unreachable database is a 503", func(t *testing.T) {
		h := NewHandler(&fakeChecker{err: errors.New("refused")}, nil, "1.2.3")

		rec := httptest.NewRecorder()
		h.Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		if rec.Code != http.StatusServiceUnavailable {
			t.Fatalf("status = %d, want 503", rec.Code)
		}

		var env struct {
			Error *struct {
				Code string `json:"code"`
			} `json:"error"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if env.Error == nil || env.Error.Code != "DB_CONNECTION_FAILED" {
			t.Errorf("error = %+v, want DB_CONNECTION_FAILED", env.Error)
		}
	})
}

func TestReadiness(t *testing.T) {
	t.Run("ready with healthy checks", func(t *testing.T) {
		h := NewHandler(&fakeChecker{}, &fakeChecker{}, "1.2.3")

		rec := httptest.NewRecorder()
		h.Readiness(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}

		var resp ReadinessResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if resp.Status != "ok" || len(resp.Checks) != 2 {
			t.Errorf("response = %+v", resp)
		}
	})

	t.Run("nil redis checker is skipped, not degraded", func(t *testing.T) {
		h := NewHandler(&fakeChecker{}, nil, "1.2.3")

		rec := httptest.NewRecorder()
		h.Readiness(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}

		var resp ReadinessResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if len(resp.Checks) != 1 {
			t.Errorf("checks = %+v, want database only", resp.Checks)
		}
	})

	t.Run("failing redis degrades readiness", func(t *testing.T) {
		h := NewHandler(&fakeChecker{}, &fakeChecker{err: errors.New("refused")}, "1.2.3")

		rec := httptest.NewRecorder()
		h.Readiness(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

		if rec.Code != http.StatusServiceUnavailable {
			t.Errorf("status = %d, want 503", rec.Code)
		}
	})

	t.Run("not ready before SetReady", func(t *testing.T) {
		h := NewHandler(&fakeChecker{}, nil, "1.2.3")
		h.SetReady(false)

		rec := httptest.NewRecorder()
		h.Readiness(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

		if rec.Code != http.StatusServiceUnavailable {
			t.Errorf("status = %d, want 503", rec.Code)
		}
	})
}

func TestLivenessDuringShutdown(t *testing.T) {
	h := NewHandler(&fakeChecker{}, nil, "1.2.3")

	rec := httptest.NewRecorder()
	h.Liveness(rec, httptest.NewRequest(http.MethodGet, "/livez", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 before shutdown", rec.Code)
	}

	h.SetShutdown()

	rec = httptest.NewRecorder()
	h.Liveness(rec, httptest.NewRequest(http.MethodGet, "/livez", nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503 during shutdown", rec.Code)
	}

	rec = httptest.NewRecorder()
	h.Readiness(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("readiness status = %d, want 503 during shutdown", rec.Code)
	}
}
