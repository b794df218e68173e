package gateway_http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/piresc/taskgate/internal/pkg/models"
	"github.com/piresc/taskgate/services/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyCredentials_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/login", r.URL.Path)

		var req models.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "a@b.com", req.Email)
		assert.Equal(t, "secret1", req.Password)

		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"message": "Login successful",
			"user": map[string]string{
				"_id":      "u-1",
				"email":    "a@b.com",
				"fullname": "Test User",
			},
		})
	}))
	defer srv.Close()

	client := NewIdentityClient(srv.URL, 5*time.Second)

	user, err := client.VerifyCredentials(context.Background(), "a@b.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "u-1", user.ID)
	assert.Equal(t, "a@b.com", user.Email)
	assert.Equal(t, "Test User", user.FullName)
}

func TestVerifyCredentials_InvalidCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"message": "Invalid credentials"})
	}))
	defer srv.Close()

	client := NewIdentityClient(srv.URL, 5*time.Second)

	_, err := client.VerifyCredentials(context.Background(), "a@b.com", "wrong")
	assert.True(t, errors.Is(err, auth.ErrInvalidCredentials))
}

func TestVerifyCredentials_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewIdentityClient(srv.URL, 5*time.Second)

	_, err := client.VerifyCredentials(context.Background(), "a@b.com", "secret1")
	assert.True(t, errors.Is(err, auth.ErrUpstreamUnavailable))
}

func TestVerifyCredentials_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // Shut down before the call

	client := NewIdentityClient(srv.URL, time.Second)

	_, err := client.VerifyCredentials(context.Background(), "a@b.com", "secret1")
	assert.True(t, errors.Is(err, auth.ErrUpstreamUnavailable))
}

func TestVerifyCredentials_MalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	client := NewIdentityClient(srv.URL, 5*time.Second)

	_, err := client.VerifyCredentials(context.Background(), "a@b.com", "secret1")
	assert.True(t, errors.Is(err, auth.ErrUpstreamUnavailable))
}
