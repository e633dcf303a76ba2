// internal/domain/models/donation.go
package models

import "time"

// DonationPost is a donor's post describing surplus food available for
// pickup. Posts live in the surplusFood collection and are only ever
// mutated (status) or deleted by the donor through the post-password gate.
type DonationPost struct {
	ID       string `bson:"_id" json:"id"`
	Name     string `bson:"name" json:"name"`
	Contact  string `bson:"contact" json:"contact"`
	Location string `bson:"location" json:"location"`
	Email    string `bson:"email" json:"email"`

	// Date is the pickup date as entered by the donor (YYYY-MM-DD).
	Date string `bson:"date" json:"date"`

	PostTitle   string `bson:"post_title" json:"post_title"`
	Description string `bson:"description" json:"description"`

	// ImageRef is an opaque reference to the externally stored image
	// payload (data URI or storage handle). Never interpreted here.
	ImageRef string `bson:"image_ref" json:"image_ref"`

	// ServingSize is one of ServingSizeOptions. When CustomServingSize is
	// set, ServingSize is empty and CustomServingValue holds a positive
	// integer string. The two are mutually exclusive.
	ServingSize        string `bson:"serving_size,omitempty" json:"serving_size,omitempty"`
	CustomServingSize  bool   `bson:"custom_serving_size,omitempty" json:"custom_serving_size,omitempty"`
	CustomServingValue string `bson:"custom_serving_value,omitempty" json:"custom_serving_value,omitempty"`

	// PasswordHash is the bcrypt hash of the donor-chosen post password.
	// The plaintext is never stored.
	PasswordHash string `bson:"password_hash" json:"-"`

	// Status is one of StatusOptions or a donor-supplied custom label.
	Status string `bson:"status" json:"status"`

	ExpiresAt time.Time `bson:"expires_at" json:"expires_at"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// DefaultStatus is assigned to every new post.
const DefaultStatus = "Accepting"

// StatusOptions are the fixed status labels in display order. A donor may
// also set an arbitrary non-empty custom label.
var StatusOptions = []string{
	"Accepting",
	"Not Accepting",
	"Food Expiring Soon",
	"Some People Have Approached But Still Accepting",
	"All Portions Reserved",
	"Limited Portions Left",
	"Collection in Progress",
	"Special Dietary Requirements Available",
	"Vegetarian Only",
	"Non-Veg Available",
	"First Come First Serve",
}

// ServingSizeOptions are the selectable serving sizes.
var ServingSizeOptions = []string{"1", "3", "5", "10", "20", "30", "50", "50+"}

// IsKnownStatus reports whether s is one of the fixed status labels.
func IsKnownStatus(s string) bool {
	for _, opt := range StatusOptions {
		if s == opt {
			return true
		}
	}
	return false
}

// IsAllowedServingSize reports whether s is a selectable serving size.
func IsAllowedServingSize(s string) bool {
	for _, opt := range ServingSizeOptions {
		if s == opt {
			return true
		}
	}
	return false
}

// SearchFields returns the stringified fields the query engine matches
// donation searches against.
func (p DonationPost) SearchFields() []string {
	return []string{
		p.Location,
		p.Date,
		p.Name,
		p.Email,
		p.ServingSize,
		p.CustomServingValue,
		p.PostTitle,
		p.Description,
	}
}
