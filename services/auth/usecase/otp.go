package usecase

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// otpCodeLength is fixed: clients render six input boxes and the delivery
// templates assume six characters
const otpCodeLength = 6

var otpCodeMax = big.NewInt(1000000)

// generateOTPCode returns a uniformly random 6-digit numeric code.
// The zero-padded formatting matters: "004821" must stay 6 characters,
// never collapse to "4821".
func generateOTPCode() (string, error) {
	n, err := rand.Int(rand.Reader, otpCodeMax)
	if err != nil {
		return "", fmt.Errorf("failed to generate otp code: %w", err)
	}
	return fmt.Sprintf("%0*d", otpCodeLength, n), nil
}
