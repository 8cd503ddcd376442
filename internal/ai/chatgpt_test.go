package ai

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWordInfoPureJSON(t *testing.T) {
	info, err := parseWordInfo(`{
		"meaning": "a small domesticated feline",
		"antonyms": "",
		"synonyms": "kitty, feline",
		"examples": "The cat sleeps.",
		"transcription": "kæt",
		"syllables": "cat"
	}`)
	require.NoError(t, err)
	assert.Equal(t, "a small domesticated feline", info.Meaning)
	assert.Equal(t, "cat", info.Syllables)
}

func TestParseWordInfoExamplesList(t *testing.T) {
	info, err := parseWordInfo(`{
		"meaning": "a small domesticated feline",
		"examples": ["The cat sleeps.", "A cat purrs.", "My cat is old."]
	}`)
	require.NoError(t, err)
	assert.Equal(t, "The cat sleeps., A cat purrs., My cat is old.", info.Examples)
}

func TestParseWordInfoEmbeddedFragment(t *testing.T) {
	info, err := parseWordInfo("Sure! Here is the entry:\n```json\n" +
		`{"meaning": "a small domesticated feline", "syllables": "cat"}` +
		"\n```\nLet me know if you need more.")
	require.NoError(t, err)
	assert.Equal(t, "a small domesticated feline", info.Meaning)
}

func TestParseWordInfoUnparseable(t *testing.T) {
	_, err := parseWordInfo("I cannot help with that.")
	assert.Error(t, err)
}

func TestWordInfoAgainstFakeAPI(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req ChatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Messages, 1)
		assert.Contains(t, req.Messages[0].Content, "'cat'")

		reply := `{"meaning": "a small domesticated feline", "syllables": "cat"}`
		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"content": reply}},
			},
		})
	}))
	defer server.Close()

	t.Setenv("OPENAI_API_KEY", "test-key")
	t.Setenv("OPENAI_API_URL", server.URL)

	client, err := New()
	require.NoError(t, err)

	info, err := client.WordInfo("cat")
	require.NoError(t, err)
	assert.Equal(t, "a small domesticated feline", info.Meaning)
}

func TestWordInfoAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]string{"message": "rate limited"},
		})
	}))
	defer server.Close()

	t.Setenv("OPENAI_API_KEY", "test-key")
	t.Setenv("OPENAI_API_URL", server.URL)

	client, err := New()
	require.NoError(t, err)

	_, err = client.WordInfo("cat")
	require.Error(t, err)

	var enrichErr *EnrichmentError
	require.True(t, errors.As(err, &enrichErr))
	assert.Equal(t, "cat", enrichErr.Word)
}

func TestNewRequiresAPIKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	_, err := New()
	assert.Error(t, err)
}
