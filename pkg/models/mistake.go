package models

// MaxMasteryLevel is the ceiling for both mastery counters
const MaxMasteryLevel = 5

// MistakeRecord tracks how well a student knows a word they previously
// missed. Both counters start at 0 and are clamped at MaxMasteryLevel.
type MistakeRecord struct {
	MistakeIndex        int64 `json:"mistake_index" db:"mistake_index"`
	StudentIndex        int64 `json:"student_index" db:"student_index"`
	WordIndex           int64 `json:"word_index" db:"word_index"`
	RecognizedByMeaning int   `json:"recognized_by_meaning" db:"recognized_by_meaning"`
	PronouncedCorrectly int   `json:"pronounced_correctly" db:"pronounced_correctly"`
}

// Mastered reports whether both counters have reached the ceiling
func (m *MistakeRecord) Mastered() bool {
	return m.RecognizedByMeaning == MaxMasteryLevel && m.PronouncedCorrectly == MaxMasteryLevel
}
