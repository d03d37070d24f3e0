package admin

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
)

func TestRoutes(t *testing.T) {
	r := chi.NewRouter()
	RegisterRoutes(r)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 index, got %d", rec.Code)
	}
	var body []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode index: %v body=%s", err, rec.Body.String())
	}
	if len(body) != len(Sections()) {
		t.Fatalf("expected %d sections, got %d", len(Sections()), len(body))
	}

	for _, s := range Sections() {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/"+s.Key, nil))
		if !s.Available && rec.Code != http.StatusNotImplemented {
			t.Fatalf("%s: expected 501, got %d", s.Key, rec.Code)
		}
	}
}
