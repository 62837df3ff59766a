// Package notifier pushes payment status updates back to the host
// commerce platform after an IPN notification is applied.
package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// PaymentUpdateRequest is the DTO sent to the host platform.
type PaymentUpdateRequest struct {
	Reference     string    `json:"reference"`
	OrderID       string    `json:"order_id"`
	Status        string    `json:"status"`
	PayerName     string    `json:"payer_name,omitempty"`
	PayerEmail    string    `json:"payer_email,omitempty"`
	PaymentType   string    `json:"payment_type,omitempty"`
	PaymentMethod string    `json:"payment_method,omitempty"`
	PaymentLink   string    `json:"payment_link,omitempty"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Client defines the interface for the host platform client.
// This allows for different implementations (HTTP, gRPC).
type Client interface {
	SendPaymentUpdate(ctx context.Context, req PaymentUpdateRequest) error
	Close() error
}

// HTTPClient implements Client using HTTP.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	retryCfg   RetryConfig
}

// HTTPClientConfig holds configuration for HTTPClient.
type HTTPClientConfig struct {
	BaseURL        string
	Timeout        time.Duration
	RetryAttempts  int
	RetryBaseDelay time.Duration
	RetryMaxDelay  time.Duration
}

// NewHTTPClient creates a new HTTP client for the host platform.
func NewHTTPClient(cfg HTTPClientConfig) *HTTPClient {
	return &HTTPClient{
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		retryCfg: RetryConfig{
			MaxAttempts: cfg.RetryAttempts,
			BaseDelay:   cfg.RetryBaseDelay,
			MaxDelay:    cfg.RetryMaxDelay,
		},
	}
}

// SendPaymentUpdate sends a payment status update to the host platform.
func (c *HTTPClient) SendPaymentUpdate(ctx context.Context, req PaymentUpdateRequest) error {
	return DoWithRetry(ctx, c.retryCfg, func() error {
		return c.sendRequest(ctx, "/internal/updates/payments", req)
	})
}

// Close releases any resources held by the client.
func (c *HTTPClient) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}

func (c *HTTPClient) sendRequest(ctx context.Context, path string, body any) error {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	url := c.baseURL + path
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonBody))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	return c.handleResponse(resp)
}

func (c *HTTPClient) handleResponse(resp *http.Response) error {
	// Read response body for error messages
	body, _ := io.ReadAll(resp.Body)

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode == http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, string(body))
	case resp.StatusCode == http.StatusNotFound:
		return ErrOrderNotFound
	case resp.StatusCode == http.StatusConflict:
		return ErrConflict
	case resp.StatusCode == http.StatusUnprocessableEntity:
		return fmt.Errorf("%w: %s", ErrInvalidStatus, string(body))
	case resp.StatusCode >= 500:
		return fmt.Errorf("%w: status %d, body: %s", ErrServiceUnavailable, resp.StatusCode, string(body))
	default:
		return fmt.Errorf("unexpected status code %d: %s", resp.StatusCode, string(body))
	}
}
