package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"time"

	"github.com/yumyai/netalign/logger"
	"github.com/yumyai/netalign/pkg/metrics"
	"github.com/yumyai/netalign/pkg/middle"
	"github.com/yumyai/netalign/pkg/network"
	"github.com/yumyai/netalign/pkg/pipeline"
	"github.com/yumyai/netalign/pkg/render"
	"go.uber.org/zap"
)

type ErrorResponse struct {
	Status string `json:"status"`
	Error  string `json:"error"`
}

// GetOrthologyHandler serves the orthology view of ?q1=&q2=.
func (nctx *NetContext) GetOrthologyHandler(w http.ResponseWriter, r *http.Request) {
	res, ok := nctx.run(w, r)
	if !ok {
		return
	}
	nctx.observeView(render.ModeOrthology, len(res.Orthology))
	writeJSON(w, http.StatusOK, res.Orthology)
}

// GetAlignmentHandler serves the alignment view of ?q1=&q2=.
func (nctx *NetContext) GetAlignmentHandler(w http.ResponseWriter, r *http.Request) {
	res, ok := nctx.run(w, r)
	if !ok {
		return
	}
	nctx.observeView(render.ModeAlignment, len(res.Alignment))
	writeJSON(w, http.StatusOK, res.Alignment)
}

// ViewPage renders the cytoscape page; the page fetches its elements from
// the matching API route.
func (nctx *NetContext) ViewPage(w http.ResponseWriter, r *http.Request) {
	q1, q2 := nctx.queries(r)
	mode := render.ParseMode(r.URL.Query().Get("mode"))

	params := url.Values{}
	params.Set("q1", q1)
	params.Set("q2", q2)

	data := render.ViewPageData{
		Mode:     mode,
		Query1:   q1,
		Query2:   q2,
		Species1: nctx.Dataset.Species[0].Name,
		Species2: nctx.Dataset.Species[1].Name,
		DataURL:  "/api/v1/network/" + mode + "?" + params.Encode(),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := render.RenderViewPage(w, data); err != nil {
		middle.Logger(r.Context(), logger.L()).Error("Failed to render view page", zap.Error(err))
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
	}
}

func (nctx *NetContext) queries(r *http.Request) (string, string) {
	q1 := r.URL.Query().Get("q1")
	q2 := r.URL.Query().Get("q2")
	if q1 == "" {
		q1 = nctx.Dataset.Defaults[0]
	}
	if q2 == "" {
		q2 = nctx.Dataset.Defaults[1]
	}
	return q1, q2
}

// run executes the pipeline and writes the error response itself when it
// fails.
func (nctx *NetContext) run(w http.ResponseWriter, r *http.Request) (*pipeline.Result, bool) {
	log := middle.Logger(r.Context(), logger.L())
	q1, q2 := nctx.queries(r)

	start := time.Now()
	res, err := nctx.Dataset.Run(r.Context(), q1, q2)
	outcome := metrics.OutcomeOK

	switch {
	case err == nil:
	case errors.Is(err, network.ErrUnknownProtein):
		outcome = metrics.OutcomeUnknown
		log.Info("Unknown query protein", zap.String("query1", q1), zap.String("query2", q2), zap.Error(err))
		writeError(w, http.StatusNotFound, err)
	case errors.Is(err, context.Canceled):
		outcome = metrics.OutcomeError
		log.Debug("Request cancelled", zap.Error(err))
	default:
		outcome = metrics.OutcomeError
		log.Error("Pipeline failed", zap.String("query1", q1), zap.String("query2", q2), zap.Error(err))
		writeError(w, http.StatusInternalServerError, err)
	}

	if nctx.Metrics != nil {
		nctx.Metrics.ObservePipeline(outcome, time.Since(start))
	}
	return res, err == nil
}

func (nctx *NetContext) observeView(view string, n int) {
	if nctx.Metrics != nil {
		nctx.Metrics.ObserveView(view, n)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("Failed to encode response", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, ErrorResponse{Status: "error", Error: err.Error()})
}
