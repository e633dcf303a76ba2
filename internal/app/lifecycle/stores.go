// internal/app/lifecycle/stores.go
package lifecycle

import (
	"context"
	"time"

	"github.com/foodfindapp/foodfind/internal/domain/models"
)

// DonationStore is the persistence the coordinator needs for donation
// posts. Get returns (nil, nil) when the record does not exist.
type DonationStore interface {
	Insert(ctx context.Context, post models.DonationPost) error
	Get(ctx context.Context, id string) (*models.DonationPost, error)
	UpdateStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
}

// DeliveryStore is the persistence the coordinator needs for delivery
// requests. Get returns (nil, nil) when the record does not exist.
type DeliveryStore interface {
	Insert(ctx context.Context, req models.DeliveryRequest) error
	Get(ctx context.Context, id string) (*models.DeliveryRequest, error)
	SetVolunteer(ctx context.Context, id, name, contact string, at time.Time) error
	ClearVolunteer(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}
