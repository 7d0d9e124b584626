package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const (
	// AnthropicModel is the model requested from the Messages API.
	AnthropicModel = "claude-3-5-sonnet-20241022"

	anthropicBaseURL   = "https://api.anthropic.com/v1"
	anthropicVersion   = "2023-06-01"
	anthropicMaxTokens = 100
	anthropicTemp      = 0.7
)

// AnthropicProvider calls the Anthropic Messages API with an API key.
type AnthropicProvider struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewAnthropicProvider creates a provider authenticated with apiKey.
func NewAnthropicProvider(apiKey string) *AnthropicProvider {
	return &AnthropicProvider{
		apiKey:  apiKey,
		baseURL: anthropicBaseURL,
		client:  &http.Client{},
	}
}

// WithBaseURL points the provider at another endpoint. Used by tests.
func (p *AnthropicProvider) WithBaseURL(baseURL string) *AnthropicProvider {
	p.baseURL = strings.TrimRight(baseURL, "/")
	return p
}

func (p *AnthropicProvider) Name() string { return "anthropic" }

// Generate sends one user message and returns the first text block, trimmed.
func (p *AnthropicProvider) Generate(ctx context.Context, system, user string) (string, error) {
	reqBody := map[string]interface{}{
		"model":       AnthropicModel,
		"max_tokens":  anthropicMaxTokens,
		"temperature": anthropicTemp,
		"messages": []map[string]string{
			{"role": "user", "content": user},
		},
	}
	if system != "" {
		reqBody["system"] = system
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", p.baseURL+"/messages", bytes.NewReader(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-api-key", p.apiKey)
	httpReq.Header.Set("anthropic-version", anthropicVersion)

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return "", withHint(p.Name(), fmt.Errorf("failed to send request: %w", err), 0, "")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", p.parseAPIError(resp.StatusCode, body)
	}

	var apiResp struct {
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text,omitempty"`
		} `json:"content"`
	}
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}

	for _, block := range apiResp.Content {
		if block.Type != "" && block.Type != "text" {
			continue
		}
		if text := strings.TrimSpace(block.Text); text != "" {
			return text, nil
		}
		break
	}
	return "", withHint(p.Name(), ErrEmptyResponse, resp.StatusCode, "")
}

func (p *AnthropicProvider) parseAPIError(statusCode int, body []byte) error {
	// {"type":"error","error":{"type":"...","message":"..."}}
	var apiErr struct {
		Type  string `json:"type"`
		Error struct {
			Type    string `json:"type"`
			Message string `json:"message"`
		} `json:"error"`
	}

	errMsg := string(body)
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Error.Message != "" {
		errMsg = apiErr.Error.Message
		if apiErr.Error.Type != "" {
			errMsg = apiErr.Error.Type + ": " + errMsg
		}
	}

	rawErr := fmt.Errorf("API request failed with status code %d: %s", statusCode, errMsg)
	return withHint(p.Name(), rawErr, statusCode, "")
}
