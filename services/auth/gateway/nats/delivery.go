package gateway_nats

import (
	"context"
	"encoding/json"
	"time"

	"github.com/piresc/taskgate/internal/pkg/constants"
	"github.com/piresc/taskgate/internal/pkg/logger"
	"github.com/piresc/taskgate/internal/pkg/models"
	natspkg "github.com/piresc/taskgate/internal/pkg/nats"
	"github.com/piresc/taskgate/internal/utils"
)

// publisher is the slice of the NATS client the gateway needs
type publisher interface {
	Publish(subject string, data []byte) error
}

var _ publisher = (*natspkg.Client)(nil)

// DeliveryClient publishes one-time codes to the notification subject.
// Downstream consumers own the actual delivery channel (email, SMS);
// this process never sends the code back to the requesting client.
type DeliveryClient struct {
	natsClient publisher
}

// NewDeliveryClient creates a new OTP delivery gateway
func NewDeliveryClient(natsClient *natspkg.Client) *DeliveryClient {
	return &DeliveryClient{
		natsClient: natsClient,
	}
}

// SendOTP publishes the code for out-of-band delivery to the user.
func (c *DeliveryClient) SendOTP(ctx context.Context, user *models.UserProfile, code string, ttl time.Duration) error {
	notification := models.OtpNotification{
		Email:     user.Email,
		Code:      code,
		ExpiresIn: int(ttl.Seconds()),
	}

	data, err := json.Marshal(notification)
	if err != nil {
		return err
	}

	if err := c.natsClient.Publish(constants.SubjectOtpNotify, data); err != nil {
		return err
	}

	// Operational log stands in for a real SMS/email provider. The only
	// place the raw code may appear.
	logger.Info("OTP dispatched for delivery",
		logger.String("email", utils.MaskEmail(user.Email)),
		logger.String("code", code),
		logger.Int("expires_in", notification.ExpiresIn))
	return nil
}
