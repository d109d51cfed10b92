package llm

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenAIComplete(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"{\"summary\":\"A joyful celebration\"}"}}]}`))
	}))
	defer srv.Close()

	client := &OpenAIClient{
		apiKey:   "test-key",
		model:    "gpt-4o-mini",
		endpoint: srv.URL,
		client:   srv.Client(),
	}

	text, err := client.Complete(context.Background(), Request{
		Prompt:      "Describe the wedding",
		Temperature: 0.4,
		MaxTokens:   512,
	})
	require.NoError(t, err)
	assert.Contains(t, text, "joyful celebration")
}

func TestOpenAICompleteNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"rate limited"}}`))
	}))
	defer srv.Close()

	client := &OpenAIClient{
		apiKey:   "test-key",
		model:    "gpt-4o-mini",
		endpoint: srv.URL,
		client:   srv.Client(),
	}

	_, err := client.Complete(context.Background(), Request{Prompt: "hello"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limited")
}

func TestOpenAICompleteTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	client := &OpenAIClient{
		apiKey:   "test-key",
		model:    "gpt-4o-mini",
		endpoint: srv.URL,
		client:   &http.Client{Timeout: 20 * time.Millisecond},
	}

	_, err := client.Complete(context.Background(), Request{Prompt: "hello"})
	require.Error(t, err)
}

func TestOpenAICompleteNoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	client := &OpenAIClient{
		apiKey:   "test-key",
		model:    "gpt-4o-mini",
		endpoint: srv.URL,
		client:   srv.Client(),
	}

	_, err := client.Complete(context.Background(), Request{Prompt: "hello"})
	require.Error(t, err)
}
