package ai

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/example/readcoach/pkg/models"
)

// Analyzer runs the external transcription and scoring pipeline on a
// recorded attempt
type Analyzer interface {
	Analyze(audioBase64, referenceText string) (*models.AnalysisResult, error)
}

// AnalysisClient calls the external speech-analysis service
type AnalysisClient struct {
	apiURL string
	model  string
	client *http.Client
}

// NewAnalysisClient creates a client for the given service URL. The model
// name selects the word-complexity predictor on the service side.
func NewAnalysisClient(apiURL, model string) *AnalysisClient {
	return &AnalysisClient{
		apiURL: apiURL,
		model:  model,
		// transcription of a full fragment can take a while
		client: &http.Client{Timeout: 120 * time.Second},
	}
}

type analysisRequest struct {
	Audio         string `json:"audio"`
	DisplayedText string `json:"displayed_text"`
	Model         string `json:"model"`
}

// Analyze submits base64 audio plus the reference text and returns the
// transcription, distance and keyword analysis
func (c *AnalysisClient) Analyze(audioBase64, referenceText string) (*models.AnalysisResult, error) {
	requestData, err := json.Marshal(analysisRequest{
		Audio:         audioBase64,
		DisplayedText: referenceText,
		Model:         c.model,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal analysis request: %w", err)
	}

	resp, err := c.client.Post(c.apiURL, "application/json", bytes.NewBuffer(requestData))
	if err != nil {
		return nil, fmt.Errorf("failed to call analysis service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("analysis service returned status %d", resp.StatusCode)
	}

	var result models.AnalysisResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode analysis response: %w", err)
	}
	return &result, nil
}
