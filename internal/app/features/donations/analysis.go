// internal/app/features/donations/analysis.go
package donations

import (
	"context"
	"net/http"

	"github.com/foodfindapp/foodfind/internal/app/lifecycle"
	"github.com/foodfindapp/foodfind/internal/app/system/httpapi"
	"github.com/foodfindapp/foodfind/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ServeAnalysis handles POST /donations/{donationID}/analysis.
//
// Forwards the post's image to the analysis service and relays the
// report verbatim. 503 when no service is configured, 502 when the
// service fails.
func (h *Handler) ServeAnalysis(w http.ResponseWriter, r *http.Request) {
	if h.Analyzer == nil || !h.Analyzer.Enabled() {
		httpapi.Error(w, http.StatusServiceUnavailable, "analysis not configured")
		return
	}

	id := chi.URLParam(r, "donationID")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Analysis())
	defer cancel()

	post, err := h.Store.Get(ctx, id)
	if err != nil {
		h.writeLifecycleError(w, err)
		return
	}
	if post == nil {
		h.writeLifecycleError(w, lifecycle.ErrNotFound)
		return
	}

	report, err := h.Analyzer.Analyze(ctx, post.ImageRef)
	if err != nil {
		h.Log.Warn("image analysis failed",
			zap.String("donation_id", id),
			zap.Error(err))
		httpapi.Error(w, http.StatusBadGateway, "analysis service unavailable")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(report)
}
