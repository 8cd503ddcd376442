package models

// AnalysisResult is the payload returned by the external transcription and
// scoring pipeline for one audio attempt
type AnalysisResult struct {
	Transcription       string             `json:"transcription"`
	LevenshteinDistance int                `json:"levenshtein_distance"`
	MissedKeywords      []string           `json:"missed_keywords"`
	NewKeywords         []string           `json:"new_keywords"`
	WordComplexities    map[string]float64 `json:"word_complexities,omitempty"`
	ReadabilityMetrics  map[string]float64 `json:"readability_metrics,omitempty"`
}
