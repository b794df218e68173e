package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	nethttp "net/http"
	"time"

	"github.com/piresc/taskgate/internal/pkg/logger"
	"github.com/piresc/taskgate/internal/pkg/requestcontext"
)

// DefaultTimeout for HTTP requests
const DefaultTimeout = 10 * time.Second

// Client is a generic JSON HTTP client for communicating with collaborators
type Client struct {
	BaseURL    string
	HTTPClient *nethttp.Client
}

// NewClient creates a new HTTP client
func NewClient(serviceURL string, timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		BaseURL: serviceURL,
		HTTPClient: &nethttp.Client{
			Timeout: timeout,
		},
	}
}

// Get performs a GET request
func (c *Client) Get(ctx context.Context, endpoint string) (*nethttp.Response, error) {
	return c.doRequest(ctx, nethttp.MethodGet, endpoint, nil)
}

// Post performs a POST request with a JSON body
func (c *Client) Post(ctx context.Context, endpoint string, body interface{}) (*nethttp.Response, error) {
	return c.doRequest(ctx, nethttp.MethodPost, endpoint, body)
}

// Put performs a PUT request with a JSON body
func (c *Client) Put(ctx context.Context, endpoint string, body interface{}) (*nethttp.Response, error) {
	return c.doRequest(ctx, nethttp.MethodPut, endpoint, body)
}

// Delete performs a DELETE request
func (c *Client) Delete(ctx context.Context, endpoint string) (*nethttp.Response, error) {
	return c.doRequest(ctx, nethttp.MethodDelete, endpoint, nil)
}

// GetJSON performs a GET request and decodes the JSON response
func (c *Client) GetJSON(ctx context.Context, endpoint string, result interface{}) error {
	resp, err := c.Get(ctx, endpoint)
	if err != nil {
		return err
	}
	return decodeResponse(resp, result)
}

// PostJSON performs a POST request with a JSON body and decodes the response
func (c *Client) PostJSON(ctx context.Context, endpoint string, body interface{}, result interface{}) error {
	resp, err := c.Post(ctx, endpoint, body)
	if err != nil {
		return err
	}
	return decodeResponse(resp, result)
}

// PutJSON performs a PUT request with a JSON body and decodes the response
func (c *Client) PutJSON(ctx context.Context, endpoint string, body interface{}, result interface{}) error {
	resp, err := c.Put(ctx, endpoint, body)
	if err != nil {
		return err
	}
	return decodeResponse(resp, result)
}

// DeleteJSON performs a DELETE request and checks the response status
func (c *Client) DeleteJSON(ctx context.Context, endpoint string) error {
	resp, err := c.Delete(ctx, endpoint)
	if err != nil {
		return err
	}
	return decodeResponse(resp, nil)
}

// StatusError is returned by the JSON helpers for non-2xx responses. It
// preserves the status code so gateways can map specific statuses to
// domain errors.
type StatusError struct {
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP error: %d %s", e.StatusCode, e.Status)
}

func decodeResponse(resp *nethttp.Response, result interface{}) error {
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		// Drain the body so the connection can be reused
		_, _ = io.Copy(io.Discard, resp.Body)
		return &StatusError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	if result != nil {
		return json.NewDecoder(resp.Body).Decode(result)
	}

	return nil
}

// doRequest performs the actual HTTP request
func (c *Client) doRequest(ctx context.Context, method, endpoint string, body interface{}) (*nethttp.Response, error) {
	url := c.BaseURL + endpoint

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := nethttp.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	if requestID := requestcontext.RequestID(ctx); requestID != "" {
		req.Header.Set("X-Request-ID", requestID)
	}

	logger.Debug("Making HTTP request",
		logger.String("method", method),
		logger.String("url", url))

	return c.HTTPClient.Do(req)
}
