package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompleteReturnsFirstChoice(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req ChatCompletionRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "gpt-4o-mini", req.Model)
		if assert.Len(t, req.Messages, 2) {
			assert.Equal(t, "system", req.Messages[0].Role)
			assert.Equal(t, "user", req.Messages[1].Role)
		}

		w.Write([]byte(`{
			"id": "chatcmpl-1",
			"choices": [{"index": 0, "message": {"role": "assistant", "content": "Hi there!"}, "finish_reason": "stop"}]
		}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", "gpt-4o-mini")

	reply, err := client.Complete(context.Background(), "You are helpful.", "Say hi.", 100, 0.7)
	assert.NoError(t, err)
	assert.Equal(t, "Hi there!", reply)
}

func TestCompleteSendsZeroTemperature(t *testing.T) {
	var rawBody map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&rawBody))
		w.Write([]byte(`{"choices":[{"index":0,"message":{"role":"assistant","content":"{}"},"finish_reason":"stop"}]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", "gpt-4o-mini")

	_, err := client.Complete(context.Background(), "system", "user", 200, 0)
	assert.NoError(t, err)

	temperature, present := rawBody["temperature"]
	assert.True(t, present, "an explicit temperature of zero must be serialized")
	assert.Equal(t, float64(0), temperature)
}

func TestCompleteWithoutAPIKey(t *testing.T) {
	client := NewClient("http://127.0.0.1:0", "", "gpt-4o-mini")

	_, err := client.Complete(context.Background(), "system", "user", 100, 0)
	assert.ErrorIs(t, err, ErrNoAPIKey)
}

func TestCompleteSurfacesAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error": {"code": "invalid_api_key", "message": "Incorrect API key provided", "type": "invalid_request_error"}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "bad-key", "gpt-4o-mini")

	_, err := client.Complete(context.Background(), "system", "user", 100, 0)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Incorrect API key provided")
	assert.Contains(t, err.Error(), "401")
}

func TestCompleteEmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id": "chatcmpl-2", "choices": []}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", "gpt-4o-mini")

	_, err := client.Complete(context.Background(), "system", "user", 100, 0)
	assert.Error(t, err)
}
