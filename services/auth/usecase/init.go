package usecase

import (
	"github.com/piresc/taskgate/internal/pkg/models"
	"github.com/piresc/taskgate/services/auth"
)

type AuthUC struct {
	sessions   auth.SessionStore
	registry   auth.SessionRegistry
	auditRepo  auth.AuditRepo
	identityGW auth.IdentityGW
	deliveryGW auth.DeliveryGW
	cfg        *models.Config
}

// NewAuthUC creates a new authentication usecase instance
func NewAuthUC(
	sessions auth.SessionStore,
	registry auth.SessionRegistry,
	auditRepo auth.AuditRepo,
	identityGW auth.IdentityGW,
	deliveryGW auth.DeliveryGW,
	cfg *models.Config,
) *AuthUC {
	return &AuthUC{
		sessions:   sessions,
		registry:   registry,
		auditRepo:  auditRepo,
		identityGW: identityGW,
		deliveryGW: deliveryGW,
		cfg:        cfg,
	}
}
