// internal/app/store/donations/donationstore.go
package donationstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/foodfindapp/foodfind/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// Collection is the donation-post collection name.
const Collection = "surplusFood"

// Store persists donation posts in MongoDB.
type Store struct {
	c   *mongo.Collection
	log *zap.Logger
}

func New(db *mongo.Database, logger *zap.Logger) *Store {
	return &Store{c: db.Collection(Collection), log: logger}
}

// Insert writes a new post. The caller mints the id.
func (s *Store) Insert(ctx context.Context, post models.DonationPost) error {
	if _, err := s.c.InsertOne(ctx, post); err != nil {
		return fmt.Errorf("insert donation post: %w", err)
	}
	return nil
}

// Get returns the post by id, or (nil, nil) when it does not exist.
func (s *Store) Get(ctx context.Context, id string) (*models.DonationPost, error) {
	var post models.DonationPost
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&post)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get donation post: %w", err)
	}
	return &post, nil
}

// UpdateStatus sets the status label on a post.
func (s *Store) UpdateStatus(ctx context.Context, id, status string) error {
	_, err := s.c.UpdateByID(ctx, id, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return fmt.Errorf("update donation status: %w", err)
	}
	return nil
}

// Delete removes a post by id. Deleting an absent post is not an error;
// the coordinator resolves existence before calling.
func (s *Store) Delete(ctx context.Context, id string) error {
	if _, err := s.c.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("delete donation post: %w", err)
	}
	return nil
}

// List returns all posts newest-first.
func (s *Store) List(ctx context.Context) ([]models.DonationPost, error) {
	find := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := s.c.Find(ctx, bson.M{}, find)
	if err != nil {
		return nil, fmt.Errorf("list donation posts: %w", err)
	}
	defer cur.Close(ctx)

	var posts []models.DonationPost
	if err := cur.All(ctx, &posts); err != nil {
		return nil, fmt.Errorf("decode donation posts: %w", err)
	}
	return posts, nil
}

// Watch subscribes to the collection and delivers a full newest-first
// snapshot on subscription and again after every change, mirroring the
// push-based listen the mobile clients were built around. The channel
// closes when ctx is canceled or the change stream ends.
func (s *Store) Watch(ctx context.Context) (<-chan []models.DonationPost, error) {
	cs, err := s.c.Watch(ctx, mongo.Pipeline{})
	if err != nil {
		return nil, fmt.Errorf("watch donation posts: %w", err)
	}

	out := make(chan []models.DonationPost, 1)
	go func() {
		defer close(out)
		defer cs.Close(context.Background())

		s.push(ctx, out)
		for cs.Next(ctx) {
			s.push(ctx, out)
		}
		if err := cs.Err(); err != nil && ctx.Err() == nil {
			s.log.Warn("donation change stream ended", zap.Error(err))
		}
	}()
	return out, nil
}

func (s *Store) push(ctx context.Context, out chan<- []models.DonationPost) {
	snap, err := s.List(ctx)
	if err != nil {
		if ctx.Err() == nil {
			s.log.Warn("donation snapshot failed", zap.Error(err))
		}
		return
	}
	select {
	case out <- snap:
	case <-ctx.Done():
	}
}
