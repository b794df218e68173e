package auth

import (
	"context"
	"time"

	"github.com/piresc/taskgate/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateways.go -package=mocks github.com/piresc/taskgate/services/auth IdentityGW,DeliveryGW

// IdentityGW adapts the external identity collaborator. Credential truth
// lives there; this service never stores or hashes passwords.
type IdentityGW interface {
	VerifyCredentials(ctx context.Context, email, password string) (*models.UserProfile, error)
}

// DeliveryGW hands a freshly issued code to the delivery channel.
// The current implementation logs the code and publishes a notification;
// a real SMS/email integration replaces it behind this same contract.
type DeliveryGW interface {
	SendOTP(ctx context.Context, user *models.UserProfile, code string, ttl time.Duration) error
}
