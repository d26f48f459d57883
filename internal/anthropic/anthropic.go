package anthropic

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/discshelf/discnamer/internal/providers"
)

// Anthropic is a provider for the Claude Messages API
type Anthropic struct{}

// New returns a new Anthropic provider
func New() *Anthropic {
	return &Anthropic{}
}

// APIKey returns the configured Claude API key, or empty if unset.
func APIKey() string {
	return os.Getenv("CLAUDE_API")
}

// IdentifyTitle identifies a movie title from a disc photo using Claude vision
func (a *Anthropic) IdentifyTitle(ctx context.Context, req providers.Request) (string, error) {
	apiKey := APIKey()
	if apiKey == "" {
		return "", fmt.Errorf("CLAUDE_API environment variable not set")
	}

	url := "https://api.anthropic.com/v1/messages"

	imageData := base64.StdEncoding.EncodeToString(req.ImageData)

	requestBody, err := json.Marshal(map[string]interface{}{
		"model":      req.Model,
		"max_tokens": 1024,
		"messages": []map[string]interface{}{
			{
				"role": "user",
				"content": []map[string]interface{}{
					{
						"type": "image",
						"source": map[string]string{
							"type":       "base64",
							"media_type": req.MediaType,
							"data":       imageData,
						},
					},
					{
						"type": "text",
						"text": req.Prompt,
					},
				},
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request body: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(requestBody))
	if err != nil {
		return "", fmt.Errorf("failed to create new request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-api-key", apiKey)
	httpReq.Header.Set("anthropic-version", "2023-06-01")

	client := &http.Client{}
	resp, err := client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("received non-200 status code: %d - %s", resp.StatusCode, string(body))
	}

	var response struct {
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"content"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return "", fmt.Errorf("failed to decode response body: %w", err)
	}

	if len(response.Content) == 0 {
		return "", fmt.Errorf("no content returned from Anthropic")
	}

	return strings.TrimSpace(response.Content[0].Text), nil
}
