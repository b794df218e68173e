package gateway_http

import (
	"context"
	"errors"
	"fmt"
	nethttp "net/http"
	"time"

	httpclient "github.com/piresc/taskgate/internal/pkg/http"
	"github.com/piresc/taskgate/internal/pkg/logger"
	"github.com/piresc/taskgate/internal/pkg/models"
	"github.com/piresc/taskgate/internal/utils"
	"github.com/piresc/taskgate/services/auth"
)

// IdentityClient is an HTTP client for the external identity collaborator
type IdentityClient struct {
	client *httpclient.Client
}

// NewIdentityClient creates a new identity HTTP client
func NewIdentityClient(identityServiceURL string, timeout time.Duration) *IdentityClient {
	return &IdentityClient{
		client: httpclient.NewClient(identityServiceURL, timeout),
	}
}

type loginResponse struct {
	Success bool               `json:"success"`
	Message string             `json:"message"`
	User    models.UserProfile `json:"user"`
}

// VerifyCredentials checks an email/password pair against the identity
// collaborator. The collaborator owns credential truth; this adapter only
// maps its response shape. No automatic retries: the human resubmits.
func (c *IdentityClient) VerifyCredentials(ctx context.Context, email, password string) (*models.UserProfile, error) {
	var result loginResponse
	err := c.client.PostJSON(ctx, "/api/auth/login", models.LoginRequest{
		Email:    email,
		Password: password,
	}, &result)
	if err != nil {
		var statusErr *httpclient.StatusError
		if errors.As(err, &statusErr) {
			if statusErr.StatusCode == nethttp.StatusUnauthorized || statusErr.StatusCode == nethttp.StatusForbidden {
				return nil, auth.ErrInvalidCredentials
			}
			logger.Warn("Identity service returned unexpected status",
				logger.Int("status", statusErr.StatusCode))
			return nil, auth.ErrUpstreamUnavailable
		}

		// Transport failure or an undecodable body
		logger.Warn("Identity service call failed",
			logger.String("email", utils.MaskEmail(email)),
			logger.Err(err))
		return nil, auth.ErrUpstreamUnavailable
	}

	if result.User.ID == "" {
		return nil, fmt.Errorf("identity service response missing user profile")
	}

	return &result.User, nil
}
