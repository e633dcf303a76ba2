// internal/app/features/donations/status.go
package donations

import (
	"context"
	"net/http"

	"github.com/foodfindapp/foodfind/internal/app/system/httpapi"
	"github.com/foodfindapp/foodfind/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
)

type changeStatusRequest struct {
	PostPassword string `json:"post_password"`
	Status       string `json:"status"`
}

// ServeChangeStatus handles POST /donations/{donationID}/status.
//
// The post password gates the change. 403 on a wrong password, 404 when
// the post is gone, 422 when the new status is empty.
func (h *Handler) ServeChangeStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "donationID")

	var req changeStatusRequest
	if err := httpapi.Decode(w, r, &req); err != nil {
		httpapi.Error(w, http.StatusBadRequest, "malformed request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	post, err := h.Coord.ChangeDonationStatus(ctx, id, req.PostPassword, req.Status)
	if err != nil {
		h.writeLifecycleError(w, err)
		return
	}

	httpapi.WriteJSON(w, http.StatusOK, post)
}
