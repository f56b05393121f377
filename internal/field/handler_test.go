// AngelaMos | 2026
// handler_test.go

package field

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/agrovia/farmconnect/internal/middleware"
)

type failingRepository struct {
	Repository
	err error
}

func (f *failingRepository) Create(_ context.Context, _ *Field) error {
	return f.err
}

func (f *failingRepository) ListForOwner(
	_ context.Context,
	_ string,
	_ ListFieldsParams,
) ([]Field, error) {
	return nil, f.err
}

func authedRequest(method, target, body string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	ctx := context.WithValue(req.Context(), middleware.UserIDKey, "farmer-1")
	return req.WithContext(ctx)
}

func responseErrorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var env struct {
		Error *struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if env.Error == nil {
		t.Fatal("expected an error body")
	}
	return env.Error.Code
}

func TestHandlerStoreFailureCodes(t *testing.T) {
	handler := NewHandler(NewService(&failingRepository{err: errors.New("connection reset")}))

	t.Run("create failure", func(t *testing.T) {
		body := `{"field_name":"north plot","area_hectares":2.5,` +
			`"coordinates":[{"lat":28.61,"lng":77.21}]}`
		rec := httptest.NewRecorder()
		handler.Create(rec, authedRequest(http.MethodPost, "/fields", body))

		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("status = %d, want 500", rec.Code)
		}
		if code := responseErrorCode(t, rec); code != "CREATE_FIELD_FAILED" {
			t.Errorf("code = %q, want CREATE_FIELD_FAILED", code)
		}
	})

	t.Run("list failure", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.List(rec, authedRequest(http.MethodGet, "/fields", ""))

		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("status = %d, want 500", rec.Code)
		}
		if code := responseErrorCode(t, rec); code != "GET_FIELDS_FAILED" {
			t.Errorf("code = %q, want GET_FIELDS_FAILED", code)
		}
	})
}
