package ai

import (
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Speech converts text to audio
type Speech interface {
	Synthesize(text string) (string, error)
}

// GoogleTTS fetches spoken audio from the Google Translate TTS endpoint
type GoogleTTS struct {
	baseURL  string
	language string
	client   *http.Client
}

// NewGoogleTTS creates a TTS client for the given language code
func NewGoogleTTS(language string) *GoogleTTS {
	return &GoogleTTS{
		baseURL:  "https://translate.google.com/translate_tts",
		language: language,
		client:   &http.Client{Timeout: 30 * time.Second},
	}
}

// Synthesize returns the base64-encoded MP3 pronunciation of the text
func (g *GoogleTTS) Synthesize(text string) (string, error) {
	query := url.Values{}
	query.Set("ie", "UTF-8")
	query.Set("q", text)
	query.Set("tl", g.language)
	query.Set("client", "tw-ob")

	resp, err := g.client.Get(g.baseURL + "?" + query.Encode())
	if err != nil {
		return "", fmt.Errorf("failed to fetch TTS audio: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("TTS service returned status %d", resp.StatusCode)
	}

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read TTS audio: %w", err)
	}

	return base64.StdEncoding.EncodeToString(audio), nil
}
