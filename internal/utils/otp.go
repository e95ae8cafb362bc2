package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

var otpCodeSpace = big.NewInt(1000000)

// GenerateOTPCode returns a uniform random 6-digit numeric code with
// leading zeros preserved.
func GenerateOTPCode() (string, error) {
	n, err := rand.Int(rand.Reader, otpCodeSpace)
	if err != nil {
		return "", fmt.Errorf("failed to generate OTP code: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
