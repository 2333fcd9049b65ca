package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"
)

const (
	defaultBaseURL = "https://recherche-entreprises.api.gouv.fr/search"
	httpTimeout    = 15 * time.Second
)

// Client queries the public company registry. A rate limiter enforces
// the politeness delay between outbound calls.
type Client struct {
	BaseURL string

	client  *http.Client
	limiter *rate.Limiter
}

// NewClient builds a registry client with the given minimum delay
// between requests.
func NewClient(baseURL string, delay time.Duration) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if delay <= 0 {
		delay = 500 * time.Millisecond
	}
	return &Client{
		BaseURL: baseURL,
		client:  &http.Client{Timeout: httpTimeout},
		limiter: rate.NewLimiter(rate.Every(delay), 1),
	}
}

type searchResponse struct {
	Results []json.RawMessage `json:"results"`
}

func (c *Client) Lookup(ctx context.Context, name string) ([]Candidate, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	q := url.Values{}
	q.Set("q", name)
	q.Set("minimal", "true")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("registry request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, fmt.Errorf("registry response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("registry status %d", resp.StatusCode)
	}

	var parsed searchResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("registry decode: %w", err)
	}

	out := make([]Candidate, 0, len(parsed.Results))
	for _, raw := range parsed.Results {
		var c Candidate
		if err := json.Unmarshal(raw, &c); err != nil {
			continue
		}
		c.Raw = append([]byte(nil), raw...)
		out = append(out, c)
	}
	return out, nil
}
