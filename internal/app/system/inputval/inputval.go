// Package inputval validates donor and recipient submitted form values.
package inputval

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrInvalidServingSize = errors.New("invalid serving size")
	ErrExpiryInPast       = errors.New("expiry must be in the future")
)

// MissingFieldsError enumerates exactly the mandatory fields that were
// left empty, in form order.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return fmt.Sprintf("missing mandatory fields: %s", strings.Join(e.Fields, ", "))
}

// emailPattern is deliberately loose: one '@', no whitespace, and a dotted
// domain. Deliverability is the mail system's problem, not a form check.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IsValidEmail reports whether s looks like an email address.
func IsValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// Missing returns the names whose values are empty after trimming, in the
// order given.
func Missing(names []string, values []string) []string {
	var missing []string
	for i, name := range names {
		if strings.TrimSpace(values[i]) == "" {
			missing = append(missing, name)
		}
	}
	return missing
}

// CheckServingSize validates the serving-size pair. Exactly one of the
// fixed size and the custom value may be set: a fixed size from the
// selectable options, or a positive integer custom value when the custom
// flag is on.
func CheckServingSize(size string, custom bool, customValue string, allowed func(string) bool) error {
	if custom {
		if size != "" {
			return ErrInvalidServingSize
		}
		n, err := strconv.Atoi(strings.TrimSpace(customValue))
		if err != nil || n <= 0 {
			return ErrInvalidServingSize
		}
		return nil
	}
	if customValue != "" || !allowed(size) {
		return ErrInvalidServingSize
	}
	return nil
}
