// Handler for miscellaneous endpoints such as health check

package handler

import (
	"net/http"
	"time"
)

type HealthResponse struct {
	Health    string    `json:"health"`
	Timestamp time.Time `json:"timestamp"`
	Species   []string  `json:"species,omitempty"`
}

// HealthCheck reports liveness and which species pair is loaded.
func (nctx *NetContext) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Health:    "ok",
		Timestamp: time.Now(),
		Species:   []string{nctx.Dataset.Species[0].Name, nctx.Dataset.Species[1].Name},
	})
}
