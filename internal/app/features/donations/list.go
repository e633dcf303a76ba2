// internal/app/features/donations/list.go
package donations

import (
	"context"
	"net/http"

	"github.com/foodfindapp/foodfind/internal/app/system/httpapi"
	"github.com/foodfindapp/foodfind/internal/app/system/search"
	"github.com/foodfindapp/foodfind/internal/app/system/timeouts"
	"github.com/foodfindapp/foodfind/internal/domain/models"
)

// ServeList handles GET /donations?q=…
//
// The list is newest-first. With a query, every search term must match
// somewhere in the post; recipients narrow as they type.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	posts, err := h.Store.List(ctx)
	if err != nil {
		h.writeLifecycleError(w, err)
		return
	}

	if q := r.URL.Query().Get("q"); q != "" {
		posts = search.Filter(posts, q, search.MatchAll, models.DonationPost.SearchFields)
	}
	if posts == nil {
		posts = []models.DonationPost{}
	}

	httpapi.WriteJSON(w, http.StatusOK, posts)
}
