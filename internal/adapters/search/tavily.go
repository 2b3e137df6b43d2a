package search

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"travel-discovery-service/internal/platform/obs"
)

// TavilyClient implements the WebSearcher port against the Tavily search API.
type TavilyClient struct {
	session *http.Client
	apiKey  string
	baseURL string
}

func NewTavilyClient(apiKey string) (*TavilyClient, error) {
	if apiKey == "" {
		return nil, errors.New("tavily api key is empty")
	}

	return &TavilyClient{
		session: &http.Client{Timeout: 15 * time.Second},
		apiKey:  apiKey,
		baseURL: "https://api.tavily.com",
	}, nil
}

type tavilyRequest struct {
	Query      string `json:"query"`
	MaxResults int    `json:"max_results"`
}

type tavilyResult struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Content string `json:"content"`
}

type tavilyResponse struct {
	Results []tavilyResult `json:"results"`
}

// Search runs a web search and returns the result snippets joined into a
// single text blob suitable for model consumption.
func (c *TavilyClient) Search(ctx context.Context, query string) (_ string, err error) {
	defer obs.Time(ctx, "search.Search")(&err)

	payload, err := json.Marshal(tavilyRequest{Query: query, MaxResults: 5})
	if err != nil {
		return "", fmt.Errorf("marshal search request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/search", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("create search request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.session.Do(req)
	if err != nil {
		return "", fmt.Errorf("execute search request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("search status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}

	var decoded tavilyResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("decode search response: %w", err)
	}

	// Zero results is not a failure; extraction runs on whatever text exists.
	blocks := make([]string, 0, len(decoded.Results))
	for _, r := range decoded.Results {
		blocks = append(blocks, r.Title+"\n"+r.Content)
	}

	return strings.Join(blocks, "\n\n"), nil
}
