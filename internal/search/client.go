package search

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/group8-health/health/internal"
)

const maxResults = 3

// Client queries the Google Custom Search API for the dashboard chatbot.
// Results feed the presentation layer only; no decision logic depends on it.
type Client struct {
	apiKey     string
	engineID   string
	baseURL    string
	httpClient *http.Client
	logger     internal.Logger
}

func NewClient(apiKey, engineID string, logger internal.Logger) *Client {
	return &Client{
		apiKey:     apiKey,
		engineID:   engineID,
		baseURL:    "https://www.googleapis.com/customsearch/v1",
		httpClient: &http.Client{Timeout: 10 * time.Second},
		logger:     logger,
	}
}

// NewClientWithBaseURL is used by tests to point at a stub server.
func NewClientWithBaseURL(apiKey, engineID, baseURL string, logger internal.Logger) *Client {
	c := NewClient(apiKey, engineID, logger)
	c.baseURL = baseURL
	return c
}

type searchResponse struct {
	Items []struct {
		Title   string `json:"title"`
		Link    string `json:"link"`
		Snippet string `json:"snippet"`
	} `json:"items"`
}

func (c *Client) Search(ctx context.Context, query string) ([]internal.SearchResult, error) {
	params := url.Values{}
	params.Set("key", c.apiKey)
	params.Set("cx", c.engineID)
	params.Set("q", query)
	params.Set("num", strconv.Itoa(maxResults))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Errorf("search: request failed: %v", err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Errorf("search: API returned %d", resp.StatusCode)
		return nil, fmt.Errorf("search API returned %d", resp.StatusCode)
	}

	var out searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}

	results := make([]internal.SearchResult, 0, len(out.Items))
	for _, item := range out.Items {
		results = append(results, internal.SearchResult{
			Title:   item.Title,
			Link:    item.Link,
			Snippet: item.Snippet,
		})
		if len(results) == maxResults {
			break
		}
	}
	return results, nil
}
