// internal/domain/models/delivery.go
package models

import "time"

// Request statuses. A request is pending until a volunteer accepts it and
// reverts to pending when the volunteer is dismissed.
const (
	RequestPending  = "pending"
	RequestAccepted = "accepted"
)

// DeliveryRequest is a recipient's ask to have a specific donation
// delivered by a volunteer. The donor/food fields are copied from the
// donation at creation time and are never re-synced: the donation may be
// edited or deleted afterwards without affecting outstanding requests.
type DeliveryRequest struct {
	ID string `bson:"_id" json:"id"`

	DonorName       string `bson:"donor_name" json:"donor_name"`
	DonorContact    string `bson:"donor_contact" json:"donor_contact"`
	DonorLocation   string `bson:"donor_location" json:"donor_location"`
	FoodTitle       string `bson:"food_title" json:"food_title"`
	FoodDescription string `bson:"food_description" json:"food_description"`

	RecipientName     string `bson:"recipient_name" json:"recipient_name"`
	RecipientContact  string `bson:"recipient_contact" json:"recipient_contact"`
	RecipientLocation string `bson:"recipient_location" json:"recipient_location"`

	// OTP is the 6-digit code minted at creation. It is the sole
	// authorization token for finishing or dismissing the delivery and is
	// only ever revealed in the creation response.
	OTP string `bson:"otp" json:"otp,omitempty"`

	Status string `bson:"status" json:"status"`

	VolunteerName       string     `bson:"volunteer_name,omitempty" json:"volunteer_name,omitempty"`
	VolunteerContact    string     `bson:"volunteer_contact,omitempty" json:"volunteer_contact,omitempty"`
	VolunteerAcceptedAt *time.Time `bson:"volunteer_accepted_at,omitempty" json:"volunteer_accepted_at,omitempty"`

	// ExpiresAt is the expiry snapshot of the referenced donation.
	ExpiresAt time.Time `bson:"expires_at" json:"expires_at"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// Redacted returns a copy with the OTP cleared, for list and stream
// responses where the code must not leak.
func (r DeliveryRequest) Redacted() DeliveryRequest {
	r.OTP = ""
	return r
}

// SearchFields returns the stringified fields the query engine matches
// delivery searches against.
func (r DeliveryRequest) SearchFields() []string {
	return []string{
		r.DonorLocation,
		r.RecipientLocation,
		r.FoodTitle,
		r.DonorName,
		r.RecipientName,
	}
}
