package models

// MeaningCard is one entry of the meaning-recognition review deck. Options
// holds three random distractors plus the correct meaning appended last.
type MeaningCard struct {
	ID                  int64    `json:"id"`
	RecognizedByMeaning int      `json:"recognized_by_meaning"`
	Word                string   `json:"word"`
	Meaning             string   `json:"meaning"`
	Antonyms            string   `json:"antonyms"`
	Synonyms            string   `json:"synonyms"`
	Examples            string   `json:"examples"`
	Options             []string `json:"options"`
}

// PronunciationCard is one entry of the pronunciation drill deck
type PronunciationCard struct {
	ID                  int64    `json:"id"`
	PronouncedCorrectly int      `json:"pronounced_correctly"`
	Word                string   `json:"word"`
	IPA                 string   `json:"ipa"`
	Segments            []string `json:"segments"`
}

// SegmentFeedback marks one syllable of a drilled word as correct or not
type SegmentFeedback struct {
	Segment string `json:"segment"`
	Status  string `json:"status"`
}
