package llm

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

// OpenAIClient implements the Completer port against the OpenAI chat
// completions API. Model and temperature are fixed per client so callers
// with different needs (extraction vs. rendering) construct separate clients.
type OpenAIClient struct {
	session     *http.Client
	apiKey      string
	baseURL     string
	model       string
	temperature float64
}

func NewOpenAIClient(apiKey, model string, temperature float64) (*OpenAIClient, error) {
	if apiKey == "" {
		return nil, errors.New("openai api key is empty")
	}
	if model == "" {
		return nil, errors.New("openai model is empty")
	}

	return &OpenAIClient{
		session:     &http.Client{Timeout: 60 * time.Second},
		apiKey:      apiKey,
		baseURL:     "https://api.openai.com/v1",
		model:       model,
		temperature: temperature,
	}, nil
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Complete sends a single-turn prompt and returns the model's text response.
func (c *OpenAIClient) Complete(ctx context.Context, prompt string) (_ string, err error) {
	defer obs.Time(ctx, "llm.Complete")(&err)

	payload, err := json.Marshal(chatRequest{
		Model:       c.model,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		Temperature: c.temperature,
	})
	if err != nil {
		return "", fmt.Errorf("marshal completion request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("create completion request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.session.Do(req)
	if err != nil {
		return "", fmt.Errorf("execute completion request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("completion status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}

	var decoded chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("decode completion response: %w", err)
	}

	if decoded.Error != nil {
		return "", fmt.Errorf("completion error: %s", decoded.Error.Message)
	}
	if len(decoded.Choices) == 0 {
		return "", errors.New("completion returned no choices")
	}

	return decoded.Choices[0].Message.Content, nil
}
