package handler

import (
	"net/http"
)

// NewRouter wires every route of the viewer service.
func NewRouter(nctx *NetContext) *http.ServeMux {
	mux := http.NewServeMux()

	// Error route
	mux.HandleFunc("GET /favicon.ico", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Not Found", http.StatusNotFound)
	})

	// Main routes
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/view", http.StatusFound)
	})
	mux.HandleFunc("GET /view", nctx.ViewPage)

	// API routes
	mux.HandleFunc("GET /api/v1/health", nctx.HealthCheck)
	mux.HandleFunc("GET /api/v1/network/orthology", nctx.GetOrthologyHandler)
	mux.HandleFunc("GET /api/v1/network/alignment", nctx.GetAlignmentHandler)

	if nctx.Metrics != nil {
		mux.Handle("GET /metrics", nctx.Metrics.Handler())
	}

	return mux
}
