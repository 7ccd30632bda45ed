package revalidate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"eventbook/internal/domain"
)

type httpTrigger struct {
	client *http.Client
	url    string
	secret string
}

// NewHTTPTrigger returns a RevalidationTrigger that posts to the frontend's
// revalidation endpoint. An empty url disables the trigger.
func NewHTTPTrigger(client *http.Client, url, secret string) domain.RevalidationTrigger {
	if client == nil {
		client = http.DefaultClient
	}
	return &httpTrigger{client: client, url: url, secret: secret}
}

func (t *httpTrigger) Revalidate(ctx context.Context, path string) error {
	if t.url == "" {
		return nil
	}
	body, err := json.Marshal(map[string]string{"path": path})
	if err != nil {
		return fmt.Errorf("failed to encode revalidation request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create revalidation request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if t.secret != "" {
		req.Header.Set("Authorization", "Bearer "+t.secret)
	}
	resp, err := t.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call revalidation endpoint: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("revalidation endpoint returned status: %d", resp.StatusCode)
	}
	return nil
}
