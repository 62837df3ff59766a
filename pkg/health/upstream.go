package health

import (
	"context"
	"net/http"
	"time"
)

// UpstreamChecker checks reachability of an upstream HTTP API.
// Any HTTP response counts as up; only transport failures count as down.
type UpstreamChecker struct {
	name   string
	url    string
	client *http.Client
}

// NewUpstreamChecker creates a checker that probes the given URL.
func NewUpstreamChecker(name, url string) *UpstreamChecker {
	return &UpstreamChecker{
		name:   name,
		url:    url,
		client: &http.Client{Timeout: DefaultTimeout},
	}
}

// Name returns the upstream component name.
func (c *UpstreamChecker) Name() string {
	return c.name
}

// Check issues a GET against the upstream URL.
func (c *UpstreamChecker) Check(ctx context.Context) Result {
	ctx, cancel := context.WithTimeout(ctx, DefaultTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return Result{Status: StatusDown, Message: err.Error()}
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		return Result{Status: StatusDown, Message: err.Error()}
	}
	defer resp.Body.Close()

	return Result{Status: StatusUp, Message: "responded in " + time.Since(start).Round(time.Millisecond).String()}
}
