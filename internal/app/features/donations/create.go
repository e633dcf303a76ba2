// internal/app/features/donations/create.go
package donations

import (
	"context"
	"net/http"
	"time"

	"github.com/foodfindapp/foodfind/internal/app/lifecycle"
	"github.com/foodfindapp/foodfind/internal/app/system/httpapi"
	"github.com/foodfindapp/foodfind/internal/app/system/timeouts"
)

type createRequest struct {
	Name               string    `json:"name"`
	Contact            string    `json:"contact"`
	Location           string    `json:"location"`
	Email              string    `json:"email"`
	Date               string    `json:"date"`
	PostTitle          string    `json:"post_title"`
	Description        string    `json:"description"`
	ImageRef           string    `json:"image_ref"`
	ServingSize        string    `json:"serving_size"`
	CustomServingSize  bool      `json:"custom_serving_size"`
	CustomServingValue string    `json:"custom_serving_value"`
	PostPassword       string    `json:"post_password"`
	ExpiresAt          time.Time `json:"expires_at"`
}

// ServeCreate handles POST /donations.
//
// On success: 201 and the stored post. Validation failures are 422; the
// missing-field variant enumerates the offending field names.
func (h *Handler) ServeCreate(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := httpapi.Decode(w, r, &req); err != nil {
		httpapi.Error(w, http.StatusBadRequest, "malformed request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	post, err := h.Coord.SubmitDonation(ctx, lifecycle.SubmissionInput{
		Name:               req.Name,
		Contact:            req.Contact,
		Location:           req.Location,
		Email:              req.Email,
		Date:               req.Date,
		PostTitle:          req.PostTitle,
		Description:        req.Description,
		ImageRef:           req.ImageRef,
		ServingSize:        req.ServingSize,
		CustomServingSize:  req.CustomServingSize,
		CustomServingValue: req.CustomServingValue,
		PostPassword:       req.PostPassword,
		ExpiresAt:          req.ExpiresAt,
	})
	if err != nil {
		h.writeLifecycleError(w, err)
		return
	}

	httpapi.WriteJSON(w, http.StatusCreated, post)
}
