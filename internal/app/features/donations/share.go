// internal/app/features/donations/share.go
package donations

import (
	"context"
	"fmt"
	"net/http"

	"github.com/foodfindapp/foodfind/internal/app/lifecycle"
	"github.com/foodfindapp/foodfind/internal/app/system/httpapi"
	"github.com/foodfindapp/foodfind/internal/app/system/timeouts"
	"github.com/foodfindapp/foodfind/internal/domain/models"
	"github.com/go-chi/chi/v5"
)

type shareResponse struct {
	Title    string `json:"title"`
	Message  string `json:"message"`
	ImageRef string `json:"image_ref,omitempty"`
}

// ServeShare handles GET /donations/{donationID}/share.
//
// Returns the ready-to-send share text for the post, formatted the way
// the mobile clients present it.
func (h *Handler) ServeShare(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "donationID")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
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

	httpapi.WriteJSON(w, http.StatusOK, shareResponse{
		Title:    post.PostTitle,
		Message:  ShareMessage(*post),
		ImageRef: post.ImageRef,
	})
}

// ShareMessage renders the share text for a post.
func ShareMessage(p models.DonationPost) string {
	serves := p.ServingSize + " people"
	if p.CustomServingSize {
		serves = p.CustomServingValue + " people"
	}
	return fmt.Sprintf(`🍱 Title: %s
📝 Description: %s
📍 Location: %s
📅 Date: %s
👤 Contact: %s
📞 Phone: %s
✉️ Email: %s
🍽️ Serves: %s

-Sent from FoodFind app
`, p.PostTitle, p.Description, p.Location, p.Date, p.Name, p.Contact, p.Email, serves)
}
