package routes

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"biltyledger/handlers"
	"biltyledger/models"
	"biltyledger/repository"
)

type stubRepo struct{}

func (stubRepo) ListBilty() ([]*models.Bilty, error)       { return nil, nil }
func (stubRepo) GetBiltyByID(int64) (*models.Bilty, error) { return nil, nil }
func (stubRepo) CreateBilty(b *models.Bilty) error         { b.ID = 1; return nil }
func (stubRepo) UpdateBilty(*models.Bilty) error           { return repository.ErrNotFound }
func (stubRepo) DeleteBilty(int64) error                   { return repository.ErrNotFound }

func testMux() *http.ServeMux {
	allowed := []string{"http://localhost:5173"}
	bh := &handlers.BiltyHandler{Repo: stubRepo{}}
	ph := &handlers.PDFHandler{Repo: stubRepo{}, CompanyName: "Test"}
	return SetupRoutes(allowed, bh, ph)
}

func TestOriginGate(t *testing.T) {
	mux := testMux()

	// Non-browser caller, no Origin header
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/bilty", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("no origin: expected 200 got %d", w.Code)
	}

	// Allowed origin is echoed back
	req := httptest.NewRequest(http.MethodGet, "/api/bilty", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("allowed origin: expected 200 got %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Errorf("Access-Control-Allow-Origin = %q", got)
	}

	// Disallowed origin is rejected before the handler, plain text
	req = httptest.NewRequest(http.MethodGet, "/api/bilty", nil)
	req.Header.Set("Origin", "https://evil.example")
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	if w.Code != http.StatusForbidden {
		t.Fatalf("disallowed origin: expected 403 got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); strings.Contains(ct, "application/json") {
		t.Errorf("origin rejection should not be a JSON body, got %q", ct)
	}
}

func TestPreflight(t *testing.T) {
	mux := testMux()

	req := httptest.NewRequest(http.MethodOptions, "/api/bilty", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("preflight: expected 200 got %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Methods"); !strings.Contains(got, "PUT") {
		t.Errorf("Access-Control-Allow-Methods = %q", got)
	}
}

func TestRouteDispatch(t *testing.T) {
	mux := testMux()

	// Method not allowed on the collection
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/api/bilty", nil))
	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("PATCH /api/bilty: expected 405 got %d", w.Code)
	}

	// Create routes to the POST handler
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/bilty",
		strings.NewReader(`{"bilty_sl_no":"BL-1","weight":1}`)))
	if w.Code != http.StatusCreated {
		t.Errorf("POST /api/bilty: expected 201 got %d: %s", w.Code, w.Body.String())
	}

	// Id-scoped routes
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/api/bilty/7", strings.NewReader(`{}`)))
	if w.Code != http.StatusNotFound {
		t.Errorf("PUT unknown id: expected 404 got %d", w.Code)
	}

	w = httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/bilty/7", nil))
	if w.Code != http.StatusNotFound {
		t.Errorf("DELETE unknown id: expected 404 got %d", w.Code)
	}

	// Missing id segment
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/api/bilty/", nil))
	if w.Code != http.StatusNotFound {
		t.Errorf("PUT /api/bilty/: expected 404 got %d", w.Code)
	}
}
