// internal/app/features/deliveries/accept.go
package deliveries

import (
	"context"
	"net/http"

	"github.com/foodfindapp/foodfind/internal/app/lifecycle"
	"github.com/foodfindapp/foodfind/internal/app/system/httpapi"
	"github.com/foodfindapp/foodfind/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
)

type acceptRequest struct {
	VolunteerName    string `json:"volunteer_name"`
	VolunteerContact string `json:"volunteer_contact"`
}

// ServeAccept handles POST /deliveries/{requestID}/accept.
//
// Anyone holding the request id may volunteer; there is no credential on
// this step. 200 and the accepted request, code redacted.
func (h *Handler) ServeAccept(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "requestID")

	var req acceptRequest
	if err := httpapi.Decode(w, r, &req); err != nil {
		httpapi.Error(w, http.StatusBadRequest, "malformed request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	accepted, err := h.Coord.AcceptRequest(ctx, id, lifecycle.VolunteerInfo{
		Name:    req.VolunteerName,
		Contact: req.VolunteerContact,
	})
	if err != nil {
		h.writeLifecycleError(w, err)
		return
	}

	httpapi.WriteJSON(w, http.StatusOK, accepted.Redacted())
}
