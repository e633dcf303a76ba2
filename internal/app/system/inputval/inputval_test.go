package inputval

import (
	"reflect"
	"testing"

	"github.com/foodfindapp/foodfind/internal/domain/models"
)

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"user@example.com", true},
		{"user.name@example.com", true},
		{"user+tag@example.co.uk", true},
		{"a@b.co", true},

		{"", false},
		{"   ", false},
		{"user", false},
		{"user@", false},
		{"@example.com", false},
		{"user@localhost", false}, // no dotted domain
		{"user @example.com", false},
		{"user@ example.com", false},
		{"user@exam ple.com", false},
		{"user@@example.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			if got := IsValidEmail(tt.email); got != tt.want {
				t.Errorf("IsValidEmail(%q) = %v, want %v", tt.email, got, tt.want)
			}
		})
	}
}

func TestMissing(t *testing.T) {
	names := []string{"name", "contact", "location"}

	got := Missing(names, []string{"Asha", "", "   "})
	want := []string{"contact", "location"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Missing() = %v, want %v", got, want)
	}

	if got := Missing(names, []string{"a", "b", "c"}); got != nil {
		t.Errorf("Missing() with all fields set = %v, want nil", got)
	}
}

func TestCheckServingSize(t *testing.T) {
	tests := []struct {
		name        string
		size        string
		custom      bool
		customValue string
		wantErr     bool
	}{
		{"fixed option", "5", false, "", false},
		{"fifty plus", "50+", false, "", false},
		{"custom positive", "", true, "12", false},
		{"custom with spaces", "", true, " 7 ", false},

		{"unknown fixed", "2", false, "", true},
		{"empty fixed", "", false, "", true},
		{"both set", "5", true, "12", true},
		{"fixed with stray custom value", "5", false, "12", true},
		{"custom zero", "", true, "0", true},
		{"custom negative", "", true, "-3", true},
		{"custom non-numeric", "", true, "lots", true},
		{"custom empty", "", true, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckServingSize(tt.size, tt.custom, tt.customValue, models.IsAllowedServingSize)
			if (err != nil) != tt.wantErr {
				t.Errorf("CheckServingSize(%q, %v, %q) error = %v, wantErr %v",
					tt.size, tt.custom, tt.customValue, err, tt.wantErr)
			}
		})
	}
}
