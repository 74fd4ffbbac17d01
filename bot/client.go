package bot

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/vmashkova/restopick/models"
)

// APIClient calls the recommendation service. Requests are retried with
// increasing backoff before the failure is surfaced to the user.
type APIClient struct {
	baseURL    string
	httpClient *http.Client
	retries    int
	backoff    time.Duration
}

func NewAPIClient(baseURL string, retries int) *APIClient {
	if retries < 1 {
		retries = 3
	}

	return &APIClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		retries: retries,
		backoff: 500 * time.Millisecond,
	}
}

// Recommend fetches recommendations for the filter set. A nil, nil return
// means the service answered with its no-matches message.
func (c *APIClient) Recommend(ctx context.Context, filters models.FilterSet) ([]models.Recommendation, error) {
	params := url.Values{}
	for _, category := range filters.Present() {
		value, _ := filters.Get(category)
		params.Set(string(category), value)
	}

	endpoint := c.baseURL + "/recommend?" + params.Encode()

	var lastErr error
	for attempt := 0; attempt < c.retries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(time.Duration(attempt) * c.backoff):
			}
		}

		recs, retryable, err := c.fetch(ctx, endpoint)
		if err == nil {
			return recs, nil
		}

		lastErr = err
		if !retryable {
			return nil, err
		}
		slog.Warn("recommendation request failed", "attempt", attempt+1, "error", err)
	}

	return nil, fmt.Errorf("recommendation API unavailable after %d attempts: %w", c.retries, lastErr)
}

func (c *APIClient) fetch(ctx context.Context, endpoint string) ([]models.Recommendation, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, false, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, true, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, true, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, true, fmt.Errorf("unexpected status code: %s", resp.Status)
	}

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var recs []models.Recommendation
		if err := json.Unmarshal(trimmed, &recs); err != nil {
			return nil, false, fmt.Errorf("failed to decode recommendations: %w", err)
		}
		return recs, false, nil
	}

	// Not an array: the service's no-matches message object.
	return nil, false, nil
}
