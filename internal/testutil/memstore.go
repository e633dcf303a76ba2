// Package testutil provides helpers for handler and lifecycle tests:
// in-memory store fakes and small HTTP assertion wrappers. The fakes keep
// tests runnable without a MongoDB instance.
package testutil

import (
	"context"
	"sync"
	"time"

	"github.com/foodfindapp/foodfind/internal/domain/models"
)

// MemDonations is an in-memory donation store. List returns records
// newest-first (reverse insertion order), matching the real store's
// created-at-descending reads.
type MemDonations struct {
	mu    sync.Mutex
	posts []models.DonationPost
}

func NewMemDonations() *MemDonations { return &MemDonations{} }

func (m *MemDonations) Insert(_ context.Context, post models.DonationPost) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.posts = append(m.posts, post)
	return nil
}

func (m *MemDonations) Get(_ context.Context, id string) (*models.DonationPost, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.posts {
		if p.ID == id {
			cp := p
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *MemDonations) UpdateStatus(_ context.Context, id, status string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.posts {
		if m.posts[i].ID == id {
			m.posts[i].Status = status
		}
	}
	return nil
}

func (m *MemDonations) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.posts {
		if m.posts[i].ID == id {
			m.posts = append(m.posts[:i], m.posts[i+1:]...)
			return nil
		}
	}
	return nil
}

func (m *MemDonations) List(_ context.Context) ([]models.DonationPost, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.DonationPost, 0, len(m.posts))
	for i := len(m.posts) - 1; i >= 0; i-- {
		out = append(out, m.posts[i])
	}
	return out, nil
}

// Watch emits the current snapshot once and closes the channel.
func (m *MemDonations) Watch(ctx context.Context) (<-chan []models.DonationPost, error) {
	snap, _ := m.List(ctx)
	ch := make(chan []models.DonationPost, 1)
	ch <- snap
	close(ch)
	return ch, nil
}

// MemDeliveries is an in-memory delivery-request store.
type MemDeliveries struct {
	mu   sync.Mutex
	reqs []models.DeliveryRequest
}

func NewMemDeliveries() *MemDeliveries { return &MemDeliveries{} }

func (m *MemDeliveries) Insert(_ context.Context, req models.DeliveryRequest) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reqs = append(m.reqs, req)
	return nil
}

func (m *MemDeliveries) Get(_ context.Context, id string) (*models.DeliveryRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.reqs {
		if r.ID == id {
			cp := r
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *MemDeliveries) SetVolunteer(_ context.Context, id, name, contact string, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.reqs {
		if m.reqs[i].ID == id {
			m.reqs[i].VolunteerName = name
			m.reqs[i].VolunteerContact = contact
			t := at
			m.reqs[i].VolunteerAcceptedAt = &t
			m.reqs[i].Status = models.RequestAccepted
		}
	}
	return nil
}

func (m *MemDeliveries) ClearVolunteer(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.reqs {
		if m.reqs[i].ID == id {
			m.reqs[i].VolunteerName = ""
			m.reqs[i].VolunteerContact = ""
			m.reqs[i].VolunteerAcceptedAt = nil
			m.reqs[i].Status = models.RequestPending
		}
	}
	return nil
}

func (m *MemDeliveries) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.reqs {
		if m.reqs[i].ID == id {
			m.reqs = append(m.reqs[:i], m.reqs[i+1:]...)
			return nil
		}
	}
	return nil
}

func (m *MemDeliveries) List(_ context.Context) ([]models.DeliveryRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.DeliveryRequest, 0, len(m.reqs))
	for i := len(m.reqs) - 1; i >= 0; i-- {
		out = append(out, m.reqs[i])
	}
	return out, nil
}

// Watch emits the current snapshot once and closes the channel.
func (m *MemDeliveries) Watch(ctx context.Context) (<-chan []models.DeliveryRequest, error) {
	snap, _ := m.List(ctx)
	ch := make(chan []models.DeliveryRequest, 1)
	ch <- snap
	close(ch)
	return ch, nil
}
