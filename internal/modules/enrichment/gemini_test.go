package enrichment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func geminiReply(text string) geminiResponse {
	return geminiResponse{
		Candidates: []struct {
			Content geminiContent `json:"content"`
		}{
			{Content: geminiContent{Parts: []geminiPart{{Text: text}}}},
		},
	}
}

func TestGeminiGenerator_Generate(t *testing.T) {
	var gotPath string
	var gotBody geminiRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		json.NewEncoder(w).Encode(geminiReply("Moderate"))
	}))
	defer srv.Close()

	g := NewGeminiGenerator("test-key", "gemini-1.5-pro", WithBaseURL(srv.URL))
	out, err := g.Generate(context.Background(), "classify this")
	require.NoError(t, err)
	assert.Equal(t, "Moderate", out)
	assert.Equal(t, "/v1beta/models/gemini-1.5-pro:generateContent", gotPath)
	require.Len(t, gotBody.Contents, 1)
	require.Len(t, gotBody.Contents[0].Parts, 1)
	assert.Equal(t, "classify this", gotBody.Contents[0].Parts[0].Text)
}

func TestGeminiGenerator_RetriesRateLimit(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		json.NewEncoder(w).Encode(geminiReply("7"))
	}))
	defer srv.Close()

	g := NewGeminiGenerator("k", "m", WithBaseURL(srv.URL))
	out, err := g.Generate(context.Background(), "estimate")
	require.NoError(t, err)
	assert.Equal(t, "7", out)
	assert.Equal(t, 2, calls)
}

func TestGeminiGenerator_BadRequestIsPermanent(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	g := NewGeminiGenerator("k", "m", WithBaseURL(srv.URL))
	_, err := g.Generate(context.Background(), "p")
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Equal(t, 1, calls, "4xx must not be retried")
}
