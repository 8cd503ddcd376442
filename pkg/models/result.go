package models

// TextAttempt stores the analysis of one reading attempt, keyed by the
// exact part of the text the student read
type TextAttempt struct {
	TextIndex       int64  `json:"text_index" db:"text_index"`
	StudentIndex    int64  `json:"student_index" db:"student_index"`
	ReadPart        string `json:"read_part" db:"read_part"`
	ResultsAnalysis string `json:"results_analysis" db:"results_analysis"`
}
