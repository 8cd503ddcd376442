package ai

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/example/readcoach/pkg/models"
)

// Enricher produces structured linguistic data for a single word
type Enricher interface {
	WordInfo(word string) (*models.WordInfo, error)
}

// EnrichmentError signals that the enrichment service could not produce
// parseable structured data for a word
type EnrichmentError struct {
	Word string
	Err  error
}

func (e *EnrichmentError) Error() string {
	return fmt.Sprintf("enrichment failed for %q: %v", e.Word, e.Err)
}

func (e *EnrichmentError) Unwrap() error { return e.Err }

// ChatGPT represents a client for the OpenAI ChatGPT API
type ChatGPT struct {
	apiKey      string
	apiURL      string
	model       string
	maxTokens   int
	temperature float64
	client      *http.Client
}

// New creates a new ChatGPT client
func New() (*ChatGPT, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY environment variable is not set")
	}

	apiURL := os.Getenv("OPENAI_API_URL")
	if apiURL == "" {
		apiURL = "https://api.openai.com/v1/chat/completions"
	}

	return &ChatGPT{
		apiKey:      apiKey,
		apiURL:      apiURL,
		model:       "gpt-4o-mini",
		maxTokens:   256,
		temperature: 0.2,
		client:      &http.Client{Timeout: 30 * time.Second},
	}, nil
}

// Message represents a message in the ChatGPT conversation
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest represents a request to the ChatGPT API
type ChatRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	MaxTokens   int       `json:"max_tokens"`
	Temperature float64   `json:"temperature"`
}

// ChatResponse represents a response from the ChatGPT API
type ChatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// WordInfo asks the model for the meaning, antonyms, synonyms, examples,
// IPA transcription and syllable segmentation of an English word
func (c *ChatGPT) WordInfo(word string) (*models.WordInfo, error) {
	prompt := fmt.Sprintf(
		"For the English word '%s', provide the following as a JSON object with these keys:\n"+
			"- meaning: the meaning of the word\n"+
			"- antonyms: a comma-separated string of antonyms\n"+
			"- synonyms: a comma-separated string of synonyms\n"+
			"- examples: three example sentences using the word\n"+
			"- transcription: the IPA transcription of the word\n"+
			"- syllables: the word broken down into syllables, separated by hyphens\n"+
			"Return only the JSON object.",
		word,
	)

	reply, err := c.chat(prompt)
	if err != nil {
		return nil, &EnrichmentError{Word: word, Err: err}
	}

	info, err := parseWordInfo(reply)
	if err != nil {
		return nil, &EnrichmentError{Word: word, Err: err}
	}
	return info, nil
}

// chat sends a single-message conversation and returns the trimmed reply
func (c *ChatGPT) chat(prompt string) (string, error) {
	request := ChatRequest{
		Model:       c.model,
		Messages:    []Message{{Role: "user", Content: prompt}},
		MaxTokens:   c.maxTokens,
		Temperature: c.temperature,
	}

	requestData, err := json.Marshal(request)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequest("POST", c.apiURL, bytes.NewBuffer(requestData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	var response ChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if response.Error != nil {
		return "", fmt.Errorf("API error: %s", response.Error.Message)
	}

	if len(response.Choices) == 0 {
		return "", fmt.Errorf("no response choices returned")
	}

	return strings.TrimSpace(response.Choices[0].Message.Content), nil
}

// rawWordInfo tolerates examples arriving either as a string or as a list
// of sentences
type rawWordInfo struct {
	Meaning       string          `json:"meaning"`
	Antonyms      string          `json:"antonyms"`
	Synonyms      string          `json:"synonyms"`
	Examples      json.RawMessage `json:"examples"`
	Transcription string          `json:"transcription"`
	Syllables     string          `json:"syllables"`
}

// parseWordInfo decodes the model reply. If the reply is not pure JSON, it
// falls back to the fragment between the first '{' and the last '}'.
func parseWordInfo(reply string) (*models.WordInfo, error) {
	var raw rawWordInfo
	if err := json.Unmarshal([]byte(reply), &raw); err != nil {
		fragment, ok := extractJSONFragment(reply)
		if !ok {
			return nil, fmt.Errorf("reply contains no JSON object")
		}
		if err := json.Unmarshal([]byte(fragment), &raw); err != nil {
			return nil, fmt.Errorf("failed to parse reply as JSON: %w", err)
		}
	}

	examples, err := joinExamples(raw.Examples)
	if err != nil {
		return nil, err
	}

	return &models.WordInfo{
		Meaning:       raw.Meaning,
		Antonyms:      raw.Antonyms,
		Synonyms:      raw.Synonyms,
		Examples:      examples,
		Transcription: raw.Transcription,
		Syllables:     raw.Syllables,
	}, nil
}

// joinExamples normalizes the examples field to a single ", "-joined string
func joinExamples(raw json.RawMessage) (string, error) {
	if len(raw) == 0 {
		return "", nil
	}

	var single string
	if err := json.Unmarshal(raw, &single); err == nil {
		return single, nil
	}

	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return strings.Join(list, ", "), nil
	}

	return "", fmt.Errorf("examples field is neither a string nor a list")
}

func extractJSONFragment(s string) (string, bool) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end < start {
		return "", false
	}
	return s[start : end+1], true
}
