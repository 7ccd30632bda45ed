package analytics

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"eventbook/internal/domain"
)

type posthogClient struct {
	client *http.Client
	host   string
	apiKey string
}

// NewPostHogClient returns an AnalyticsTracker that sends capture events to
// PostHog. An empty apiKey disables tracking.
func NewPostHogClient(client *http.Client, host, apiKey string) domain.AnalyticsTracker {
	if client == nil {
		client = http.DefaultClient
	}
	if host == "" {
		host = "https://us.i.posthog.com"
	}
	return &posthogClient{client: client, host: host, apiKey: apiKey}
}

func (p *posthogClient) Track(ctx context.Context, event string, properties map[string]any) error {
	if p.apiKey == "" {
		return nil
	}
	payload := map[string]any{
		"api_key":     p.apiKey,
		"event":       event,
		"distinct_id": "eventbook-api",
		"properties":  properties,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode capture event: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.host+"/capture/", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create capture request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send capture event: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("posthog returned status: %d", resp.StatusCode)
	}
	return nil
}
