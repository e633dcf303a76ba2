// internal/app/features/donations/stream.go
package donations

import (
	"encoding/json"
	"net/http"

	"github.com/foodfindapp/foodfind/internal/app/system/httpapi"
	"go.uber.org/zap"
)

// ServeStream handles GET /donations/stream as server-sent events.
//
// The client gets a full newest-first snapshot immediately and again
// after every change, so it can re-render the whole board without
// tracking deltas. The stream runs until the client disconnects.
func (h *Handler) ServeStream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		httpapi.Error(w, http.StatusInternalServerError, "streaming unsupported")
		return
	}

	snaps, err := h.Store.Watch(r.Context())
	if err != nil {
		h.Log.Error("donation watch failed", zap.Error(err))
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
		if _, err := w.Write([]byte("data: ")); err != nil {
			return
		}
		if err := enc.Encode(snap); err != nil {
			return
		}
		if _, err := w.Write([]byte("\n")); err != nil {
			return
		}
		flusher.Flush()
	}
}
