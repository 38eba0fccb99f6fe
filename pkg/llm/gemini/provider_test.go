package gemini_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"ai-chat-be/pkg/llm/gemini"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_ForwardsPromptAndExtractsReply(t *testing.T) {
	var gotPath, gotAPIKey string
	var gotBody map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAPIKey = r.Header.Get("x-goog-api-key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"a reply"}],"role":"model"}}]}`))
	}))
	defer srv.Close()

	provider := gemini.NewGeminiProvider("test-key", "gemini-1.5-flash-8b")
	provider.BaseURL = srv.URL

	reply, err := provider.Generate(context.Background(), "what is go?")
	require.NoError(t, err)
	assert.Equal(t, "a reply", reply)

	assert.Equal(t, "/v1/models/gemini-1.5-flash-8b:generateContent", gotPath)
	assert.Equal(t, "test-key", gotAPIKey)

	contents := gotBody["contents"].([]any)
	require.Len(t, contents, 1)
	content := contents[0].(map[string]any)
	assert.Equal(t, "user", content["role"])
	parts := content["parts"].([]any)
	require.Len(t, parts, 1)
	assert.Equal(t, "what is go?", parts[0].(map[string]any)["text"])
}

func TestGenerate_SurfacesUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":"quota exceeded"}`))
	}))
	defer srv.Close()

	provider := gemini.NewGeminiProvider("test-key", "")
	provider.BaseURL = srv.URL

	_, err := provider.Generate(context.Background(), "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestGenerate_NoCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	}))
	defer srv.Close()

	provider := gemini.NewGeminiProvider("test-key", "")
	provider.BaseURL = srv.URL

	_, err := provider.Generate(context.Background(), "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no candidates")
}

func TestNewGeminiProvider_DefaultModel(t *testing.T) {
	provider := gemini.NewGeminiProvider("key", "")
	assert.Equal(t, gemini.DefaultModel, provider.ModelName)
	assert.Equal(t, gemini.DefaultBaseURL, provider.BaseURL)
}
