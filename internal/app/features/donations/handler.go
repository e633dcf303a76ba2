// internal/app/features/donations/handler.go
package donations

import (
	"context"
	"errors"
	"net/http"

	"github.com/foodfindapp/foodfind/internal/app/lifecycle"
	"github.com/foodfindapp/foodfind/internal/app/system/httpapi"
	"github.com/foodfindapp/foodfind/internal/app/system/inputval"
	"github.com/foodfindapp/foodfind/internal/app/system/nutrition"
	"github.com/foodfindapp/foodfind/internal/domain/models"
	"go.uber.org/zap"
)

// Store is the donation persistence this feature reads from directly.
// Mutations go through the coordinator.
type Store interface {
	Get(ctx context.Context, id string) (*models.DonationPost, error)
	List(ctx context.Context) ([]models.DonationPost, error)
	Watch(ctx context.Context) (<-chan []models.DonationPost, error)
}

// Handler is the feature-level entry point for donation posts.
type Handler struct {
	Coord    *lifecycle.Coordinator
	Store    Store
	Analyzer *nutrition.Client
	Log      *zap.Logger
}

// NewHandler constructs a donations handler.
func NewHandler(coord *lifecycle.Coordinator, store Store, analyzer *nutrition.Client, logger *zap.Logger) *Handler {
	return &Handler{
		Coord:    coord,
		Store:    store,
		Analyzer: analyzer,
		Log:      logger,
	}
}

// writeLifecycleError maps coordinator errors onto HTTP statuses. Unknown
// errors become a 500 with a generic body; the detail goes to the log.
func (h *Handler) writeLifecycleError(w http.ResponseWriter, err error) {
	var missing *inputval.MissingFieldsError
	switch {
	case errors.As(err, &missing):
		httpapi.WriteJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"error":          "missing mandatory fields",
			"missing_fields": missing.Fields,
		})
	case errors.Is(err, inputval.ErrInvalidEmail),
		errors.Is(err, inputval.ErrInvalidServingSize),
		errors.Is(err, inputval.ErrExpiryInPast),
		errors.Is(err, lifecycle.ErrInvalidStatus):
		httpapi.Error(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, lifecycle.ErrIncorrectPassword):
		httpapi.Error(w, http.StatusForbidden, err.Error())
	case errors.Is(err, lifecycle.ErrNotFound):
		httpapi.Error(w, http.StatusNotFound, "donation not found")
	default:
		h.Log.Error("donation request failed", zap.Error(err))
		httpapi.Error(w, http.StatusInternalServerError, "internal error")
	}
}
