package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testGeminiClient(serverURL string) *GeminiClient {
	return &GeminiClient{
		client: resty.New().
			SetBaseURL(serverURL).
			SetTimeout(5 * time.Second).
			SetQueryParam("key", "test-key"),
		model:  "gemini-2.0-flash",
		logger: zap.NewNop(),
	}
}

func TestGeminiGenerate(t *testing.T) {
	var received geminiRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/models/gemini-2.0-flash:generateContent", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates": [{"content": {"parts": [{"text": "Hello "}, {"text": "world"}]}}]}`))
	}))
	defer server.Close()

	client := testGeminiClient(server.URL)
	text, err := client.Generate(context.Background(), GenerateRequest{
		System:       "Be terse.",
		Prompt:       "Say hello.",
		JSONResponse: true,
		WebSearch:    true,
	})
	require.NoError(t, err)
	assert.Equal(t, "Hello world", text)

	require.NotNil(t, received.SystemInstruction)
	assert.Equal(t, "Be terse.", received.SystemInstruction.Parts[0].Text)
	require.Len(t, received.Contents, 1)
	assert.Equal(t, "Say hello.", received.Contents[0].Parts[0].Text)
	require.Len(t, received.Tools, 1)
	assert.NotNil(t, received.Tools[0].GoogleSearch)
	require.NotNil(t, received.GenerationConfig)
	assert.Equal(t, "application/json", received.GenerationConfig.ResponseMIMEType)
}

func TestGeminiGenerateErrors(t *testing.T) {
	t.Run("non-200 status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer server.Close()

		_, err := testGeminiClient(server.URL).Generate(context.Background(), GenerateRequest{Prompt: "hi"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "429")
	})

	t.Run("no candidates", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"candidates": []}`))
		}))
		defer server.Close()

		_, err := testGeminiClient(server.URL).Generate(context.Background(), GenerateRequest{Prompt: "hi"})
		assert.Error(t, err)
	})

	t.Run("empty text", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"candidates": [{"content": {"parts": [{"text": "  "}]}}]}`))
		}))
		defer server.Close()

		_, err := testGeminiClient(server.URL).Generate(context.Background(), GenerateRequest{Prompt: "hi"})
		assert.Error(t, err)
	})
}

func TestCarveJSON(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{"bare object", `{"a": 1}`, `{"a": 1}`, false},
		{"fenced", "```json\n{\"a\": 1}\n```", `{"a": 1}`, false},
		{"surrounded by prose", `Here you go: {"a": 1} Enjoy!`, `{"a": 1}`, false},
		{"nested braces", `{"a": {"b": 2}}`, `{"a": {"b": 2}}`, false},
		{"empty", "   ", "", true},
		{"no object", "no recipe here", "", true},
		{"reversed braces", "} {", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CarveJSON(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
