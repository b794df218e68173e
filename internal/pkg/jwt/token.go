package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/piresc/taskgate/internal/pkg/models"
)

// GenerateToken mints a verified-session token for the given user profile.
// The amr claim marks that both factors (credentials and OTP) succeeded;
// the session gate requires it. Returns the signed token, its token id
// (jti) and the expiry as a unix timestamp.
func GenerateToken(user *models.UserProfile, cfg models.JWTConfig) (string, string, int64, error) {
	expirationTime := time.Now().Add(time.Duration(cfg.Expiration) * time.Minute)
	expiresAt := expirationTime.Unix()
	tokenID := uuid.New().String()

	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"name":    user.FullName,
		"amr":     "otp",
		"jti":     tokenID,
		"exp":     expiresAt,
		"iss":     cfg.Issuer,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(cfg.Secret))
	if err != nil {
		return "", "", 0, err
	}

	return tokenString, tokenID, expiresAt, nil
}

// ValidateToken validates a session token and returns the claims
func ValidateToken(tokenString string, secret string) (*jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return &claims, nil
	}

	return nil, fmt.Errorf("invalid token claims")
}
