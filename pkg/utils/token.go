package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// GenerateResetToken returns a random 6-digit verification code. The code is
// short enough to be typed from an email on a phone, and crypto/rand keeps it
// unguessable within the 15-minute validity window.
func GenerateResetToken() string {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		// crypto/rand only fails when the OS entropy source is broken
		panic(fmt.Sprintf("failed to generate reset token: %v", err))
	}
	return fmt.Sprintf("%06d", n.Int64())
}
