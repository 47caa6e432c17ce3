package openai

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
)

// ErrNoAPIKey is returned before any network call when the client was
// built without a credential. Callers use it to switch to their
// deterministic fallback path immediately.
var ErrNoAPIKey = errors.New("openai: API key is not configured")

// Client manages requests to the OpenAI chat completions REST API.
type Client struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewClient creates a new OpenAI client. An empty apiKey is allowed;
// every call will then fail fast with ErrNoAPIKey.
func NewClient(baseURL, apiKey, model string) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
		model:   model,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// ChatMessage is one message of a chat completion conversation.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatCompletionRequest is the request body of /chat/completions.
type ChatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []ChatMessage `json:"messages"`
	MaxTokens int `json:"max_tokens,omitempty"`
	// Temperature 0 is a meaningful request for deterministic output
	// and must not be dropped from the payload.
	Temperature float32 `json:"temperature"`
}

// ChatCompletionResponse is the response body of /chat/completions.
type ChatCompletionResponse struct {
	ID      string `json:"id"`
	Object  string `json:"object"`
	Created int64  `json:"created"`
	Model   string `json:"model"`
	Choices []struct {
		Index   int `json:"index"`
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage"`
}

// ErrorResponse is the error envelope returned on non-2xx responses.
type ErrorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// Complete sends a system + user prompt pair and returns the text of
// the first choice.
func (c *Client) Complete(ctx context.Context, systemPrompt, userPrompt string, maxTokens int, temperature float32) (string, error) {
	messages := []ChatMessage{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: userPrompt},
	}

	response, err := c.ChatCompletion(ctx, messages, maxTokens, temperature)
	if err != nil {
		return "", err
	}

	if len(response.Choices) == 0 {
		return "", fmt.Errorf("openai: response contained no choices")
	}
	return response.Choices[0].Message.Content, nil
}

// ChatCompletion executes a chat completion call.
func (c *Client) ChatCompletion(ctx context.Context, messages []ChatMessage, maxTokens int, temperature float32) (*ChatCompletionResponse, error) {
	url := c.baseURL + "/chat/completions"

	request := ChatCompletionRequest{
		Model:       c.model,
		Messages:    messages,
		MaxTokens:   maxTokens,
		Temperature: temperature,
	}

	var response ChatCompletionResponse
	if err := c.doRequest(ctx, url, request, &response); err != nil {
		return nil, fmt.Errorf("openai chat completion failed: %w", err)
	}
	return &response, nil
}

// doRequest executes the HTTP call and handles the shared response
// processing for all API methods.
func (c *Client) doRequest(ctx context.Context, url string, requestData interface{}, responseData interface{}) error {
	if c.apiKey == "" {
		return ErrNoAPIKey
	}

	requestBody, err := json.Marshal(requestData)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(requestBody))
	if err != nil {
		return fmt.Errorf("failed to create HTTP request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute HTTP request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errorResp ErrorResponse
		if err := json.Unmarshal(body, &errorResp); err == nil && errorResp.Error.Message != "" {
			return fmt.Errorf("OpenAI API error (status: %d): %s", resp.StatusCode, errorResp.Error.Message)
		}
		return fmt.Errorf("OpenAI API error (status: %d): %s", resp.StatusCode, string(body))
	}

	if err := json.Unmarshal(body, responseData); err != nil {
		return fmt.Errorf("failed to parse response JSON: %w", err)
	}

	return nil
}
