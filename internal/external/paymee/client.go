// Package paymee implements the HTTP client for PayMee's checkout API.
package paymee

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"paymee-bridge/internal/domain/checkout"
	"paymee-bridge/pkg/metrics"
)

const (
	productionBaseURL = "https://api.paymee.com.br"
	sandboxBaseURL    = "https://apisandbox.paymee.com.br"

	checkoutPath    = "/v1/checkout"
	redirectBaseURL = "https://www2.paymee.com.br/redir/"

	defaultTimeout = 60 * time.Second

	// messagePrefix labels every provider-sourced message shown to the merchant.
	messagePrefix = "PayMee: "
)

// Config holds client construction parameters.
type Config struct {
	APIKey   string
	APIToken string
	// Sandbox selects the apisandbox hostname.
	Sandbox bool
	// BaseURL overrides the hostname entirely; used by tests and local mocks.
	BaseURL string
	Timeout time.Duration
	// Debug enables a log line per classification branch.
	Debug bool
}

// Client calls PayMee's checkout endpoint and classifies every outcome
// into exactly one checkout.Result variant.
type Client struct {
	baseURL  string
	apiKey   string
	apiToken string
	debug    bool
	http     *http.Client
}

func New(cfg Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		if cfg.Sandbox {
			baseURL = sandboxBaseURL
		} else {
			baseURL = productionBaseURL
		}
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		baseURL:  baseURL,
		apiKey:   cfg.APIKey,
		apiToken: cfg.APIToken,
		debug:    cfg.Debug,
		http:     &http.Client{Timeout: timeout},
	}
}

// BaseURL reports the resolved API hostname, useful for health checks.
func (c *Client) BaseURL() string {
	return c.baseURL
}

type checkoutResponse struct {
	Status   *int `json:"status"`
	Response []struct {
		TransactionToken string `json:"transactionToken"`
	} `json:"response"`
	Error []struct {
		Code json.Number `json:"code"`
	} `json:"error"`
}

// CreateCheckout POSTs the payload and classifies the response in strict
// precedence order: transport failure, credential rejection, unparseable
// body, success shape, error array, generic fallback. Never retried.
func (c *Client) CreateCheckout(ctx context.Context, payload checkout.Payload) checkout.Result {
	body, err := json.Marshal(payload)
	if err != nil {
		return checkout.TransportFailure("marshal checkout payload: " + err.Error())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+checkoutPath, bytes.NewReader(body))
	if err != nil {
		return checkout.TransportFailure("create checkout request: " + err.Error())
	}
	req.Header.Set("Content-Type", "application/json;charset=UTF-8")
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("x-api-token", c.apiToken)

	start := time.Now()
	resp, err := c.http.Do(req)
	metrics.CheckoutRequestDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		c.debugLog(ctx, "checkout request failed", "error", err)
		return checkout.TransportFailure(err.Error())
	}
	defer func() { _ = resp.Body.Close() }()
	raw, _ := io.ReadAll(resp.Body)

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		c.debugLog(ctx, "checkout rejected credentials", "status", resp.StatusCode)
		return checkout.CredentialFailure(credentialsErrorMessage)
	}

	var parsed checkoutResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		c.debugLog(ctx, "checkout response unparseable", "error", err)
		return checkout.APIFailure(messagePrefix + genericErrorMessage)
	}

	if parsed.Status != nil && *parsed.Status == 0 && len(parsed.Response) > 0 && parsed.Response[0].TransactionToken != "" {
		token := parsed.Response[0].TransactionToken
		c.debugLog(ctx, "checkout token created", "token", token)
		return checkout.Success(redirectBaseURL+token, token)
	}

	if len(parsed.Error) > 0 {
		messages := make([]string, 0, len(parsed.Error))
		for _, e := range parsed.Error {
			messages = append(messages, messagePrefix+ErrorMessage(e.Code.String()))
		}
		c.debugLog(ctx, "checkout rejected", "status", resp.StatusCode, "errors", len(parsed.Error))
		return checkout.APIFailure(messages...)
	}

	// Any status other than 0 without an error array is indistinguishable
	// from a malformed response and falls through here.
	c.debugLog(ctx, "checkout response unrecognized", "status", resp.StatusCode)
	return checkout.APIFailure(messagePrefix + genericErrorMessage)
}

func (c *Client) debugLog(ctx context.Context, msg string, args ...any) {
	if c.debug {
		slog.DebugContext(ctx, msg, args...)
	}
}
