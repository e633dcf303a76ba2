// internal/app/features/deliveries/handler.go
package deliveries

import (
	"context"
	"errors"
	"net/http"

	"github.com/foodfindapp/foodfind/internal/app/lifecycle"
	"github.com/foodfindapp/foodfind/internal/app/system/httpapi"
	"github.com/foodfindapp/foodfind/internal/app/system/inputval"
	"github.com/foodfindapp/foodfind/internal/domain/models"
	"go.uber.org/zap"
)

// Store is the delivery-request persistence this feature reads from
// directly. Mutations go through the coordinator.
type Store interface {
	List(ctx context.Context) ([]models.DeliveryRequest, error)
	Watch(ctx context.Context) (<-chan []models.DeliveryRequest, error)
}

// Handler is the feature-level entry point for delivery requests.
type Handler struct {
	Coord *lifecycle.Coordinator
	Store Store
	Log   *zap.Logger
}

// NewHandler constructs a deliveries handler.
func NewHandler(coord *lifecycle.Coordinator, store Store, logger *zap.Logger) *Handler {
	return &Handler{
		Coord: coord,
		Store: store,
		Log:   logger,
	}
}

func (h *Handler) writeLifecycleError(w http.ResponseWriter, err error) {
	var missing *inputval.MissingFieldsError
	switch {
	case errors.As(err, &missing):
		httpapi.WriteJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"error":          "missing mandatory fields",
			"missing_fields": missing.Fields,
		})
	case errors.Is(err, lifecycle.ErrInvalidOTP):
		httpapi.Error(w, http.StatusForbidden, err.Error())
	case errors.Is(err, lifecycle.ErrNotFound):
		httpapi.Error(w, http.StatusNotFound, "delivery request not found")
	default:
		h.Log.Error("delivery request failed", zap.Error(err))
		httpapi.Error(w, http.StatusInternalServerError, "internal error")
	}
}
