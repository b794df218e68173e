package auth

import "errors"

var (
	// Credential verifier errors
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrUpstreamUnavailable = errors.New("identity service unavailable")

	// OTP session errors
	ErrSessionNotFound = errors.New("otp session not found")
	ErrOTPExpired      = errors.New("otp code expired")
	ErrInvalidOTP      = errors.New("invalid otp code")
)
