// internal/app/features/deliveries/list.go
package deliveries

import (
	"context"
	"net/http"

	"github.com/foodfindapp/foodfind/internal/app/system/httpapi"
	"github.com/foodfindapp/foodfind/internal/app/system/search"
	"github.com/foodfindapp/foodfind/internal/app/system/timeouts"
	"github.com/foodfindapp/foodfind/internal/domain/models"
)

// ServeList handles GET /deliveries?q=…
//
// Volunteers browse broadly, so any search term may match. The one-time
// codes are redacted from every record.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	reqs, err := h.Store.List(ctx)
	if err != nil {
		h.writeLifecycleError(w, err)
		return
	}

	if q := r.URL.Query().Get("q"); q != "" {
		reqs = search.Filter(reqs, q, search.MatchAny, models.DeliveryRequest.SearchFields)
	}

	out := make([]models.DeliveryRequest, 0, len(reqs))
	for _, req := range reqs {
		out = append(out, req.Redacted())
	}

	httpapi.WriteJSON(w, http.StatusOK, out)
}
