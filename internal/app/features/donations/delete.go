// internal/app/features/donations/delete.go
package donations

import (
	"context"
	"net/http"

	"github.com/foodfindapp/foodfind/internal/app/system/httpapi"
	"github.com/foodfindapp/foodfind/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
)

type deleteRequest struct {
	PostPassword string `json:"post_password"`
}

// ServeDelete handles DELETE /donations/{donationID}.
//
// The post password gates the delete. Outstanding delivery requests keep
// their snapshot of this post. 204 on success.
func (h *Handler) ServeDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "donationID")

	var req deleteRequest
	if err := httpapi.Decode(w, r, &req); err != nil {
		httpapi.Error(w, http.StatusBadRequest, "malformed request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := h.Coord.DeleteDonation(ctx, id, req.PostPassword); err != nil {
		h.writeLifecycleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
