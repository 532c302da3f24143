package generator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const coachPrompt = "You are a motivational coach. Generate a short, punchy, and encouraging message for the user's goal. Keep it to one or two sentences.\n\nGoal Description: %s\n\nMotivational Message:"

// HTTPGenerator calls an external text-generation endpoint. Errors bubble up
// to the motivation service, which falls open to its fixed message.
type HTTPGenerator struct {
	endpoint string
	apiKey   string
	client   *http.Client
}

func NewHTTPGenerator(endpoint, apiKey string) *HTTPGenerator {
	return &HTTPGenerator{
		endpoint: endpoint,
		apiKey:   apiKey,
		client: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

type generateRequest struct {
	Prompt string `json:"prompt"`
}

type generateResponse struct {
	Text string `json:"text"`
}

func (g *HTTPGenerator) Generate(ctx context.Context, goalDescription string) (string, error) {
	body, err := json.Marshal(generateRequest{
		Prompt: fmt.Sprintf(coachPrompt, goalDescription),
	})
	if err != nil {
		return "", fmt.Errorf("generator: encode request failed: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("generator: build request failed: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if g.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+g.apiKey)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("generator: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("generator: unexpected status %d", resp.StatusCode)
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("generator: decode response failed: %w", err)
	}

	return out.Text, nil
}
