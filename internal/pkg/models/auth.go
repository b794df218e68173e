package models

import (
	"time"
)

// UserProfile is the minimal profile returned by the identity collaborator
type UserProfile struct {
	ID       string `json:"_id"`
	Email    string `json:"email"`
	FullName string `json:"fullname"`
}

// OtpSession represents one in-flight OTP challenge, keyed by SessionID.
// The raw code never leaves the server; clients only ever see SessionID.
type OtpSession struct {
	SessionID string      `json:"session_id"`
	Code      string      `json:"code"`
	User      UserProfile `json:"user"`
	IssuedAt  time.Time   `json:"issued_at"`
	ExpiresAt time.Time   `json:"expires_at"`
	Attempts  int         `json:"attempts"`
}

// LoginRequest represents a credential submission starting the OTP flow
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// VerifyRequest represents an OTP verification submission
type VerifyRequest struct {
	SessionID string `json:"otp_session_id" validate:"required"`
	Code      string `json:"code" validate:"required"`
}

// OtpPendingResponse is returned after a successful credential check.
// It carries the opaque session handle only, never the code itself.
type OtpPendingResponse struct {
	SessionID string `json:"otp_session_id"`
}

// AuthResponse represents the response after successful OTP verification
type AuthResponse struct {
	Token     string      `json:"token"`
	User      UserProfile `json:"user"`
	ExpiresAt int64       `json:"expires_at"`
}

// Auth event kinds recorded in the audit trail
const (
	AuthEventOtpIssued   = "otp_issued"
	AuthEventOtpVerified = "otp_verified"
	AuthEventOtpFailed   = "otp_failed"
	AuthEventLogout      = "logout"
)

// AuthEvent is one audit trail entry for the authentication flow
type AuthEvent struct {
	ID        string    `json:"id" db:"id"`
	UserID    string    `json:"user_id" db:"user_id"`
	Email     string    `json:"email" db:"email"`
	Kind      string    `json:"kind" db:"kind"`
	ClientIP  string    `json:"client_ip" db:"client_ip"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// OtpNotification is the payload published for the delivery channel.
// Standing in for a real SMS/email integration; the notifier consumes it.
type OtpNotification struct {
	Email     string `json:"email"`
	Code      string `json:"code"`
	ExpiresIn int    `json:"expires_in_seconds"`
}
