package token

import (
	"regexp"
	"testing"
)

func TestNewOTP_Format(t *testing.T) {
	format := regexp.MustCompile(`^[1-9]\d{5}$`)

	for i := 0; i < 10000; i++ {
		otp := NewOTP()
		if !format.MatchString(otp) {
			t.Fatalf("NewOTP() = %q, want six digits with no leading zero", otp)
		}
	}
}

func TestNewOTP_Spread(t *testing.T) {
	// 1000 draws from a 900000-value space should not collapse onto a
	// handful of codes. Allow for birthday collisions.
	seen := make(map[string]struct{})
	for i := 0; i < 1000; i++ {
		seen[NewOTP()] = struct{}{}
	}
	if len(seen) < 990 {
		t.Errorf("1000 draws produced only %d distinct codes", len(seen))
	}
}

func TestNewID_Unique(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 10000; i++ {
		id := NewID()
		if id == "" {
			t.Fatal("NewID() returned empty string")
		}
		if _, dup := seen[id]; dup {
			t.Fatalf("NewID() repeated %q", id)
		}
		seen[id] = struct{}{}
	}
}
