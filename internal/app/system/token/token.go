// Package token mints record identifiers and delivery one-time codes.
package token

import (
	"crypto/rand"
	"math/big"

	"github.com/google/uuid"
)

// NewID returns a fresh opaque record identifier.
func NewID() string {
	return uuid.New().String()
}

// otpSpan covers "100000".."999999": six digits, no leading zero.
var otpSpan = big.NewInt(900000)

// NewOTP returns a uniformly random 6-digit delivery code.
func NewOTP() string {
	n, err := rand.Int(rand.Reader, otpSpan)
	if err != nil {
		// crypto/rand only fails when the platform source is broken;
		// there is no useful recovery for a code mint.
		panic(err)
	}
	code := n.Int64() + 100000
	return big.NewInt(code).String()
}
