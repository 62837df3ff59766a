package notifier

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPClient_SendPaymentUpdate(t *testing.T) {
	t.Run("successful request", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/internal/updates/payments", r.URL.Path)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

			var req PaymentUpdateRequest
			err := json.NewDecoder(r.Body).Decode(&req)
			require.NoError(t, err)
			assert.Equal(t, "WC-1542", req.Reference)
			assert.Equal(t, "1542", req.OrderID)
			assert.Equal(t, "paid", req.Status)

			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := NewHTTPClient(HTTPClientConfig{
			BaseURL:        server.URL,
			Timeout:        5 * time.Second,
			RetryAttempts:  1,
			RetryBaseDelay: 10 * time.Millisecond,
			RetryMaxDelay:  100 * time.Millisecond,
		})

		err := client.SendPaymentUpdate(context.Background(), PaymentUpdateRequest{
			Reference: "WC-1542",
			OrderID:   "1542",
			Status:    "paid",
		})

		assert.NoError(t, err)
	})

	t.Run("returns ErrOrderNotFound on 404", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		client := NewHTTPClient(HTTPClientConfig{
			BaseURL:       server.URL,
			Timeout:       5 * time.Second,
			RetryAttempts: 1,
		})

		err := client.SendPaymentUpdate(context.Background(), PaymentUpdateRequest{})

		assert.ErrorIs(t, err, ErrOrderNotFound)
	})

	t.Run("returns ErrInvalidStatus on 422", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			_, _ = w.Write([]byte(`{"message": "invalid status transition"}`))
		}))
		defer server.Close()

		client := NewHTTPClient(HTTPClientConfig{
			BaseURL:       server.URL,
			Timeout:       5 * time.Second,
			RetryAttempts: 1,
		})

		err := client.SendPaymentUpdate(context.Background(), PaymentUpdateRequest{})

		assert.ErrorIs(t, err, ErrInvalidStatus)
	})

	t.Run("returns ErrConflict on 409 without retrying", func(t *testing.T) {
		attempts := 0
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			attempts++
			w.WriteHeader(http.StatusConflict)
		}))
		defer server.Close()

		client := NewHTTPClient(HTTPClientConfig{
			BaseURL:        server.URL,
			Timeout:        5 * time.Second,
			RetryAttempts:  3,
			RetryBaseDelay: time.Millisecond,
			RetryMaxDelay:  10 * time.Millisecond,
		})

		err := client.SendPaymentUpdate(context.Background(), PaymentUpdateRequest{})

		assert.ErrorIs(t, err, ErrConflict)
		assert.Equal(t, 1, attempts)
	})

	t.Run("retries on 500 until the host recovers", func(t *testing.T) {
		attempts := 0
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			attempts++
			if attempts < 3 {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := NewHTTPClient(HTTPClientConfig{
			BaseURL:        server.URL,
			Timeout:        5 * time.Second,
			RetryAttempts:  3,
			RetryBaseDelay: time.Millisecond,
			RetryMaxDelay:  10 * time.Millisecond,
		})

		err := client.SendPaymentUpdate(context.Background(), PaymentUpdateRequest{})

		assert.NoError(t, err)
		assert.Equal(t, 3, attempts)
	})

	t.Run("gives up after exhausting retries", func(t *testing.T) {
		attempts := 0
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			attempts++
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		client := NewHTTPClient(HTTPClientConfig{
			BaseURL:        server.URL,
			Timeout:        5 * time.Second,
			RetryAttempts:  2,
			RetryBaseDelay: time.Millisecond,
			RetryMaxDelay:  10 * time.Millisecond,
		})

		err := client.SendPaymentUpdate(context.Background(), PaymentUpdateRequest{})

		assert.ErrorIs(t, err, ErrServiceUnavailable)
		assert.Equal(t, 2, attempts)
	})

	t.Run("treats connection failure as service unavailable", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		client := NewHTTPClient(HTTPClientConfig{
			BaseURL:       server.URL,
			Timeout:       time.Second,
			RetryAttempts: 1,
		})

		err := client.SendPaymentUpdate(context.Background(), PaymentUpdateRequest{})

		assert.ErrorIs(t, err, ErrServiceUnavailable)
	})
}
