// internal/app/features/deliveries/finish.go
package deliveries

import (
	"context"
	"net/http"

	"github.com/foodfindapp/foodfind/internal/app/system/httpapi"
	"github.com/foodfindapp/foodfind/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
)

type otpRequest struct {
	OTP string `json:"otp"`
}

// ServeFinish handles POST /deliveries/{requestID}/finish.
//
// The recipient's one-time code gates completion. On success the request
// is gone for good: 204. 403 on a wrong code.
func (h *Handler) ServeFinish(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "requestID")

	var req otpRequest
	if err := httpapi.Decode(w, r, &req); err != nil {
		httpapi.Error(w, http.StatusBadRequest, "malformed request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := h.Coord.FinishDelivery(ctx, id, req.OTP); err != nil {
		h.writeLifecycleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
