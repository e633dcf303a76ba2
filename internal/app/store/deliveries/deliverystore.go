// internal/app/store/deliveries/deliverystore.go
package deliverystore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/foodfindapp/foodfind/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// Collection is the delivery-request collection name.
const Collection = "deliveryRequests"

// Store persists delivery requests in MongoDB.
type Store struct {
	c   *mongo.Collection
	log *zap.Logger
}

func New(db *mongo.Database, logger *zap.Logger) *Store {
	return &Store{c: db.Collection(Collection), log: logger}
}

// Insert writes a new request. The caller mints the id and OTP.
func (s *Store) Insert(ctx context.Context, req models.DeliveryRequest) error {
	if _, err := s.c.InsertOne(ctx, req); err != nil {
		return fmt.Errorf("insert delivery request: %w", err)
	}
	return nil
}

// Get returns the request by id, or (nil, nil) when it does not exist.
func (s *Store) Get(ctx context.Context, id string) (*models.DeliveryRequest, error) {
	var req models.DeliveryRequest
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&req)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get delivery request: %w", err)
	}
	return &req, nil
}

// SetVolunteer attaches the volunteer and moves the request to accepted.
func (s *Store) SetVolunteer(ctx context.Context, id, name, contact string, at time.Time) error {
	_, err := s.c.UpdateByID(ctx, id, bson.M{"$set": bson.M{
		"volunteer_name":        name,
		"volunteer_contact":     contact,
		"volunteer_accepted_at": at,
		"status":                models.RequestAccepted,
	}})
	if err != nil {
		return fmt.Errorf("set volunteer: %w", err)
	}
	return nil
}

// ClearVolunteer detaches the volunteer and reverts the request to pending.
func (s *Store) ClearVolunteer(ctx context.Context, id string) error {
	_, err := s.c.UpdateByID(ctx, id, bson.M{
		"$set":   bson.M{"status": models.RequestPending},
		"$unset": bson.M{"volunteer_name": "", "volunteer_contact": "", "volunteer_accepted_at": ""},
	})
	if err != nil {
		return fmt.Errorf("clear volunteer: %w", err)
	}
	return nil
}

// Delete removes a request by id.
func (s *Store) Delete(ctx context.Context, id string) error {
	if _, err := s.c.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("delete delivery request: %w", err)
	}
	return nil
}

// List returns all requests newest-first.
func (s *Store) List(ctx context.Context) ([]models.DeliveryRequest, error) {
	find := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := s.c.Find(ctx, bson.M{}, find)
	if err != nil {
		return nil, fmt.Errorf("list delivery requests: %w", err)
	}
	defer cur.Close(ctx)

	var reqs []models.DeliveryRequest
	if err := cur.All(ctx, &reqs); err != nil {
		return nil, fmt.Errorf("decode delivery requests: %w", err)
	}
	return reqs, nil
}

// Watch subscribes to the collection and delivers a full newest-first
// snapshot on subscription and after every change. The channel closes
// when ctx is canceled or the change stream ends.
func (s *Store) Watch(ctx context.Context) (<-chan []models.DeliveryRequest, error) {
	cs, err := s.c.Watch(ctx, mongo.Pipeline{})
	if err != nil {
		return nil, fmt.Errorf("watch delivery requests: %w", err)
	}

	out := make(chan []models.DeliveryRequest, 1)
	go func() {
		defer close(out)
		defer cs.Close(context.Background())

		s.push(ctx, out)
		for cs.Next(ctx) {
			s.push(ctx, out)
		}
		if err := cs.Err(); err != nil && ctx.Err() == nil {
			s.log.Warn("delivery change stream ended", zap.Error(err))
		}
	}()
	return out, nil
}

func (s *Store) push(ctx context.Context, out chan<- []models.DeliveryRequest) {
	snap, err := s.List(ctx)
	if err != nil {
		if ctx.Err() == nil {
			s.log.Warn("delivery snapshot failed", zap.Error(err))
		}
		return
	}
	select {
	case out <- snap:
	case <-ctx.Done():
	}
}
