// internal/app/features/deliveries/dismiss.go
package deliveries

import (
	"context"
	"net/http"

	"github.com/foodfindapp/foodfind/internal/app/system/httpapi"
	"github.com/foodfindapp/foodfind/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
)

// ServeDismiss handles POST /deliveries/{requestID}/dismiss.
//
// Gated by the same one-time code as finishing. The volunteer is
// detached and the request reverts to pending for someone else to pick
// up. 200 and the reverted request, code redacted.
func (h *Handler) ServeDismiss(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "requestID")

	var req otpRequest
	if err := httpapi.Decode(w, r, &req); err != nil {
		httpapi.Error(w, http.StatusBadRequest, "malformed request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	reverted, err := h.Coord.DismissVolunteer(ctx, id, req.OTP)
	if err != nil {
		h.writeLifecycleError(w, err)
		return
	}

	httpapi.WriteJSON(w, http.StatusOK, reverted.Redacted())
}
