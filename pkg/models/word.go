package models

// WordEntry is a dictionary entry for an English word, enriched on first
// encounter and never updated afterwards
type WordEntry struct {
	ID            int64  `json:"id" db:"id"`
	Word          string `json:"word" db:"word"`
	Meaning       string `json:"meaning" db:"meaning"`
	Antonyms      string `json:"antonyms" db:"antonyms"` // comma-joined
	Synonyms      string `json:"synonyms" db:"synonyms"` // comma-joined
	Examples      string `json:"examples" db:"examples"` // comma-joined sentences
	Transcription string `json:"transcription" db:"transcription"` // IPA
	Syllables     string `json:"syllables" db:"syllables"` // hyphen-delimited
}

// WordInfo is the structured payload produced by the enrichment service
// for a single word
type WordInfo struct {
	Meaning       string `json:"meaning"`
	Antonyms      string `json:"antonyms"`
	Synonyms      string `json:"synonyms"`
	Examples      string `json:"examples"`
	Transcription string `json:"transcription"`
	Syllables     string `json:"syllables"`
}
