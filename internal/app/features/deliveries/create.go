// internal/app/features/deliveries/create.go
package deliveries

import (
	"context"
	"errors"
	"net/http"

	"github.com/foodfindapp/foodfind/internal/app/lifecycle"
	"github.com/foodfindapp/foodfind/internal/app/system/httpapi"
	"github.com/foodfindapp/foodfind/internal/app/system/timeouts"
)

type createRequest struct {
	DonationID        string `json:"donation_id"`
	RecipientName     string `json:"recipient_name"`
	RecipientContact  string `json:"recipient_contact"`
	RecipientLocation string `json:"recipient_location"`
}

// ServeCreate handles POST /deliveries.
//
// On success: 201 and the stored request. This is the only response that
// ever carries the one-time code; the recipient must keep it to finish
// or dismiss the delivery.
func (h *Handler) ServeCreate(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := httpapi.Decode(w, r, &req); err != nil {
		httpapi.Error(w, http.StatusBadRequest, "malformed request body")
		return
	}
	if req.DonationID == "" {
		httpapi.Error(w, http.StatusUnprocessableEntity, "donation_id is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	created, err := h.Coord.RequestDelivery(ctx, req.DonationID, lifecycle.RecipientInfo{
		Name:     req.RecipientName,
		Contact:  req.RecipientContact,
		Location: req.RecipientLocation,
	})
	if err != nil {
		if errors.Is(err, lifecycle.ErrNotFound) {
			httpapi.Error(w, http.StatusNotFound, "donation not found")
			return
		}
		h.writeLifecycleError(w, err)
		return
	}

	httpapi.WriteJSON(w, http.StatusCreated, created)
}
