// internal/app/features/deliveries/stream.go
package deliveries

import (
	"encoding/json"
	"net/http"

	"github.com/foodfindapp/foodfind/internal/app/system/httpapi"
	"github.com/foodfindapp/foodfind/internal/domain/models"
	"go.uber.org/zap"
)

// ServeStream handles GET /deliveries/stream as server-sent events.
//
// Full newest-first snapshots, codes redacted, until the client
// disconnects.
func (h *Handler) ServeStream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		httpapi.Error(w, http.StatusInternalServerError, "streaming unsupported")
		return
	}

	snaps, err := h.Store.Watch(r.Context())
	if err != nil {
		h.Log.Error("delivery watch failed", zap.Error(err))
		httpapi.Error(w, http.StatusInternalServerError, "internal error")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	enc := json.NewEncoder(w)
	for snap := range snaps {
		redacted := make([]models.DeliveryRequest, 0, len(snap))
		for _, req := range snap {
			redacted = append(redacted, req.Redacted())
		}
		if _, err := w.Write([]byte("data: ")); err != nil {
			return
		}
		if err := enc.Encode(redacted); err != nil {
			return
		}
		if _, err := w.Write([]byte("\n")); err != nil {
			return
		}
		flusher.Flush()
	}
}
