package routes

import (
	"log"
	"net/http"
	"strings"

	"biltyledger/handlers"
)

// withOriginGate checks the Origin header against the configured
// allow-list. Requests without one (curl, server-to-server) pass
// through; a disallowed origin is rejected at the transport layer
// before any handler runs.
func withOriginGate(allowed []string, next http.Handler) http.Handler {
	allowedSet := make(map[string]bool, len(allowed))
	for _, o := range allowed {
		allowedSet[o] = true
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin != "" {
			if !allowedSet[origin] {
				log.Printf("rejected origin %q for %s %s", origin, r.Method, r.URL.Path)
				http.Error(w, "origin not allowed", http.StatusForbidden)
				return
			}
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Add("Vary", "Origin")
		}
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		// Handle preflight request
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func SetupRoutes(
	allowedOrigins []string,
	biltyHandler *handlers.BiltyHandler,
	pdfHandler *handlers.PDFHandler,
) *http.ServeMux {
	mux := http.NewServeMux()

	gate := func(h http.HandlerFunc) http.Handler {
		return withOriginGate(allowedOrigins, handlers.RecoverWrapper(h))
	}

	mux.Handle("/api/bilty/pdf", gate(pdfHandler.BiltySlipPDF))

	mux.Handle("/api/bilty", gate(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			biltyHandler.ListBilty(w, r)
		case http.MethodPost:
			biltyHandler.CreateBilty(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}))

	// Update / delete by ID
	mux.Handle("/api/bilty/", gate(func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimPrefix(r.URL.Path, "/api/bilty/")
		if id == "" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		switch r.Method {
		case http.MethodPut:
			biltyHandler.UpdateBilty(w, r, id)
		case http.MethodDelete:
			biltyHandler.DeleteBilty(w, r, id)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}))

	return mux
}
