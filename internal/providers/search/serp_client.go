package search

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const httpTimeout = 15 * time.Second

// SerpClient fetches job postings from a SerpApi-style google_jobs
// endpoint: free-text query, locale, optional continuation token.
type SerpClient struct {
	BaseURL string
	APIKey  string
	Locale  string // "fr", "gb", ...

	client *http.Client
}

func NewSerpClient(baseURL, apiKey, locale string) *SerpClient {
	if baseURL == "" {
		baseURL = "https://serpapi.com/search"
	}
	if locale == "" {
		locale = "fr"
	}
	return &SerpClient{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Locale:  locale,
		client:  &http.Client{Timeout: httpTimeout},
	}
}

type serpResponse struct {
	Error       string            `json:"error"`
	JobsResults []json.RawMessage `json:"jobs_results"`
	Pagination  struct {
		NextPageToken string `json:"next_page_token"`
	} `json:"serpapi_pagination"`
}

type serpJob struct {
	JobID       string `json:"job_id"`
	Title       string `json:"title"`
	CompanyName string `json:"company_name"`
	Location    string `json:"location"`
	ApplyLink   string `json:"share_link"`
}

func (c *SerpClient) FetchPage(ctx context.Context, query, location, token string) (*Page, error) {
	q := url.Values{}
	q.Set("engine", "google_jobs")
	q.Set("q", joinQuery(query, location))
	q.Set("api_key", c.APIKey)
	q.Set("gl", c.Locale)
	q.Set("hl", c.Locale)
	if token != "" {
		q.Set("next_page_token", token)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 10<<20))
	if err != nil {
		return nil, fmt.Errorf("search response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search status %d", resp.StatusCode)
	}

	var parsed serpResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("search decode: %w", err)
	}
	if parsed.Error != "" {
		return nil, fmt.Errorf("search api: %s", parsed.Error)
	}

	page := &Page{NextToken: parsed.Pagination.NextPageToken}
	for _, raw := range parsed.JobsResults {
		var j serpJob
		if err := json.Unmarshal(raw, &j); err != nil || j.JobID == "" {
			continue
		}
		page.Results = append(page.Results, Result{
			JobID:       j.JobID,
			Title:       j.Title,
			CompanyName: j.CompanyName,
			Location:    j.Location,
			ApplyLink:   j.ApplyLink,
			Raw:         append([]byte(nil), raw...),
		})
	}
	return page, nil
}

func joinQuery(query, location string) string {
	if location == "" {
		return query
	}
	return query + " " + location
}
