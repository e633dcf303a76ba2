// Package lifecycle orchestrates the donation and delivery state machines.
//
// The coordinator holds no record state of its own. Every gated mutation
// re-fetches the authoritative record immediately before comparing the
// credential and writing, so a comparison never runs against a cached
// value. The store is the single serialization point; concurrent writers
// are last-write-wins.
//
// Delivery requests carry a snapshot of the donation taken at creation
// time. Deleting or editing the donation afterwards does not cascade into
// outstanding requests; the snapshot stays authoritative for delivery.
package lifecycle

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/foodfindapp/foodfind/internal/app/system/auth"
	"github.com/foodfindapp/foodfind/internal/app/system/htmlsanitize"
	"github.com/foodfindapp/foodfind/internal/app/system/inputval"
	"github.com/foodfindapp/foodfind/internal/app/system/token"
	"github.com/foodfindapp/foodfind/internal/domain/models"
	"go.uber.org/zap"
)

// Coordinator ties the two record models together. Construct with New and
// share; all methods are safe for concurrent use.
type Coordinator struct {
	donations  DonationStore
	deliveries DeliveryStore
	log        *zap.Logger

	// now is swapped in tests.
	now func() time.Time
}

// New creates a coordinator over the given stores.
func New(donations DonationStore, deliveries DeliveryStore, logger *zap.Logger) *Coordinator {
	return &Coordinator{
		donations:  donations,
		deliveries: deliveries,
		log:        logger,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// SubmissionInput is a donor's surplus-food form.
type SubmissionInput struct {
	Name               string
	Contact            string
	Location           string
	Email              string
	Date               string
	PostTitle          string
	Description        string
	ImageRef           string
	ServingSize        string
	CustomServingSize  bool
	CustomServingValue string
	PostPassword       string
	ExpiresAt          time.Time
}

// RecipientInfo identifies the recipient on a delivery request.
type RecipientInfo struct {
	Name     string
	Contact  string
	Location string
}

// VolunteerInfo identifies the volunteer accepting a delivery request.
type VolunteerInfo struct {
	Name    string
	Contact string
}

// SubmitDonation validates the submission and persists a new post with
// status "Accepting". No partial writes: any validation failure blocks
// the operation entirely.
func (c *Coordinator) SubmitDonation(ctx context.Context, in SubmissionInput) (models.DonationPost, error) {
	missing := inputval.Missing(
		[]string{"name", "contact", "location", "email", "date", "postTitle", "description", "imageRef", "postPassword"},
		[]string{in.Name, in.Contact, in.Location, in.Email, in.Date, in.PostTitle, in.Description, in.ImageRef, in.PostPassword},
	)
	if len(missing) > 0 {
		return models.DonationPost{}, &inputval.MissingFieldsError{Fields: missing}
	}
	if !inputval.IsValidEmail(in.Email) {
		return models.DonationPost{}, inputval.ErrInvalidEmail
	}
	if err := inputval.CheckServingSize(in.ServingSize, in.CustomServingSize, in.CustomServingValue, models.IsAllowedServingSize); err != nil {
		return models.DonationPost{}, err
	}
	now := c.now()
	if !in.ExpiresAt.After(now) {
		return models.DonationPost{}, inputval.ErrExpiryInPast
	}

	hash, err := auth.HashPassword(in.PostPassword)
	if err != nil {
		return models.DonationPost{}, err
	}

	post := models.DonationPost{
		ID:                 token.NewID(),
		Name:               htmlsanitize.Strip(in.Name),
		Contact:            strings.TrimSpace(in.Contact),
		Location:           htmlsanitize.Strip(in.Location),
		Email:              strings.TrimSpace(in.Email),
		Date:               in.Date,
		PostTitle:          htmlsanitize.Strip(in.PostTitle),
		Description:        htmlsanitize.Strip(in.Description),
		ImageRef:           in.ImageRef,
		ServingSize:        in.ServingSize,
		CustomServingSize:  in.CustomServingSize,
		CustomServingValue: strings.TrimSpace(in.CustomServingValue),
		PasswordHash:       hash,
		Status:             models.DefaultStatus,
		ExpiresAt:          in.ExpiresAt,
		CreatedAt:          now,
	}

	if err := c.donations.Insert(ctx, post); err != nil {
		return models.DonationPost{}, fmt.Errorf("insert donation: %w", err)
	}

	c.log.Info("donation submitted",
		zap.String("id", post.ID),
		zap.String("title", post.PostTitle))
	return post, nil
}

// ChangeDonationStatus sets a new status label on the post after the
// password gate passes. newStatus may be a fixed label or any non-empty
// custom string.
func (c *Coordinator) ChangeDonationStatus(ctx context.Context, id, password, newStatus string) (models.DonationPost, error) {
	newStatus = strings.TrimSpace(htmlsanitize.Strip(newStatus))
	if newStatus == "" {
		return models.DonationPost{}, ErrInvalidStatus
	}

	post, err := c.donations.Get(ctx, id)
	if err != nil {
		return models.DonationPost{}, fmt.Errorf("fetch donation: %w", err)
	}
	if post == nil {
		return models.DonationPost{}, ErrNotFound
	}
	if auth.CheckPassword(password, post.PasswordHash) != nil {
		return models.DonationPost{}, ErrIncorrectPassword
	}

	if err := c.donations.UpdateStatus(ctx, id, newStatus); err != nil {
		return models.DonationPost{}, fmt.Errorf("update donation status: %w", err)
	}

	post.Status = newStatus
	c.log.Info("donation status changed",
		zap.String("id", id),
		zap.String("status", newStatus))
	return *post, nil
}

// DeleteDonation removes the post after the password gate passes.
// Outstanding delivery requests that snapshot this post are untouched.
func (c *Coordinator) DeleteDonation(ctx context.Context, id, password string) error {
	post, err := c.donations.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("fetch donation: %w", err)
	}
	if post == nil {
		return ErrNotFound
	}
	if auth.CheckPassword(password, post.PasswordHash) != nil {
		return ErrIncorrectPassword
	}

	if err := c.donations.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete donation: %w", err)
	}

	c.log.Info("donation deleted", zap.String("id", id))
	return nil
}

// RequestDelivery creates a pending delivery request for the given
// donation, snapshotting the donor and food fields as they are right now,
// and mints the one-time code that authorizes finish and dismiss.
func (c *Coordinator) RequestDelivery(ctx context.Context, donationID string, rec RecipientInfo) (models.DeliveryRequest, error) {
	missing := inputval.Missing(
		[]string{"recipientName", "recipientContact", "recipientLocation"},
		[]string{rec.Name, rec.Contact, rec.Location},
	)
	if len(missing) > 0 {
		return models.DeliveryRequest{}, &inputval.MissingFieldsError{Fields: missing}
	}

	post, err := c.donations.Get(ctx, donationID)
	if err != nil {
		return models.DeliveryRequest{}, fmt.Errorf("fetch donation: %w", err)
	}
	if post == nil {
		return models.DeliveryRequest{}, ErrNotFound
	}

	req := models.DeliveryRequest{
		ID:                token.NewID(),
		DonorName:         post.Name,
		DonorContact:      post.Contact,
		DonorLocation:     post.Location,
		FoodTitle:         post.PostTitle,
		FoodDescription:   post.Description,
		RecipientName:     htmlsanitize.Strip(rec.Name),
		RecipientContact:  strings.TrimSpace(rec.Contact),
		RecipientLocation: htmlsanitize.Strip(rec.Location),
		OTP:               token.NewOTP(),
		Status:            models.RequestPending,
		ExpiresAt:         post.ExpiresAt,
		CreatedAt:         c.now(),
	}

	if err := c.deliveries.Insert(ctx, req); err != nil {
		return models.DeliveryRequest{}, fmt.Errorf("insert delivery request: %w", err)
	}

	c.log.Info("delivery requested",
		zap.String("id", req.ID),
		zap.String("donation_id", donationID))
	return req, nil
}

// AcceptRequest attaches a volunteer to a request and moves it to
// accepted. There is deliberately no credential here: anyone holding the
// request id may volunteer, matching the app's open trust model.
func (c *Coordinator) AcceptRequest(ctx context.Context, id string, vol VolunteerInfo) (models.DeliveryRequest, error) {
	missing := inputval.Missing(
		[]string{"volunteerName", "volunteerContact"},
		[]string{vol.Name, vol.Contact},
	)
	if len(missing) > 0 {
		return models.DeliveryRequest{}, &inputval.MissingFieldsError{Fields: missing}
	}

	req, err := c.deliveries.Get(ctx, id)
	if err != nil {
		return models.DeliveryRequest{}, fmt.Errorf("fetch delivery request: %w", err)
	}
	if req == nil {
		return models.DeliveryRequest{}, ErrNotFound
	}

	name := htmlsanitize.Strip(vol.Name)
	contact := strings.TrimSpace(vol.Contact)
	at := c.now()
	if err := c.deliveries.SetVolunteer(ctx, id, name, contact, at); err != nil {
		return models.DeliveryRequest{}, fmt.Errorf("accept delivery request: %w", err)
	}

	req.VolunteerName = name
	req.VolunteerContact = contact
	req.VolunteerAcceptedAt = &at
	req.Status = models.RequestAccepted
	c.log.Info("delivery accepted", zap.String("id", id))
	return *req, nil
}

// FinishDelivery removes the request entirely once the recipient's
// one-time code checks out. This is the only way a request is deleted.
func (c *Coordinator) FinishDelivery(ctx context.Context, id, otp string) error {
	req, err := c.deliveries.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("fetch delivery request: %w", err)
	}
	if req == nil {
		return ErrNotFound
	}
	if req.OTP != otp {
		return ErrInvalidOTP
	}

	if err := c.deliveries.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete delivery request: %w", err)
	}

	c.log.Info("delivery finished", zap.String("id", id))
	return nil
}

// DismissVolunteer detaches the volunteer and reverts the request to
// pending, gated by the same one-time code as finishing.
func (c *Coordinator) DismissVolunteer(ctx context.Context, id, otp string) (models.DeliveryRequest, error) {
	req, err := c.deliveries.Get(ctx, id)
	if err != nil {
		return models.DeliveryRequest{}, fmt.Errorf("fetch delivery request: %w", err)
	}
	if req == nil {
		return models.DeliveryRequest{}, ErrNotFound
	}
	if req.OTP != otp {
		return models.DeliveryRequest{}, ErrInvalidOTP
	}

	if err := c.deliveries.ClearVolunteer(ctx, id); err != nil {
		return models.DeliveryRequest{}, fmt.Errorf("dismiss volunteer: %w", err)
	}

	req.VolunteerName = ""
	req.VolunteerContact = ""
	req.VolunteerAcceptedAt = nil
	req.Status = models.RequestPending
	c.log.Info("volunteer dismissed", zap.String("id", id))
	return *req, nil
}
