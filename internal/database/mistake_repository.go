package database

import (
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"github.com/example/readcoach/pkg/models"
)

// DefaultStudentIndex identifies the learner in single-student deployments
const DefaultStudentIndex = 1

// MistakeRepository handles database operations for the mistake ledger
type MistakeRepository struct {
	log *zap.SugaredLogger
}

// NewMistakeRepository creates a new repository instance
func NewMistakeRepository(log *zap.SugaredLogger) *MistakeRepository {
	return &MistakeRepository{log: log}
}

// Record upserts a ledger row for (student, word) with both counters at 0.
// Recording the same word again is a no-op, so exactly one row exists per
// (student, word).
func (r *MistakeRepository) Record(studentIndex, wordID int64) error {
	var count int
	if err := ResultsDB.Get(&count, "SELECT COUNT(*) FROM mistakes"); err != nil {
		return fmt.Errorf("failed to count mistakes: %w", err)
	}
	if count == 0 {
		r.log.Infow("mistake ledger is currently empty", "word_id", wordID)
	}

	_, err := ResultsDB.Exec(`
		INSERT INTO mistakes (student_index, word_index, recognized_by_meaning, pronounced_correctly)
		VALUES (?, ?, 0, 0)
		ON CONFLICT(student_index, word_index) DO NOTHING
	`, studentIndex, wordID)
	if err != nil {
		return fmt.Errorf("failed to record mistake: %w", err)
	}
	return nil
}

// IsMastered reports whether both counters for the word have reached the
// ceiling. A word with no ledger row is not mastered.
func (r *MistakeRepository) IsMastered(wordID int64) (bool, error) {
	var record models.MistakeRecord
	err := ResultsDB.Get(&record, `
		SELECT recognized_by_meaning, pronounced_correctly
		FROM mistakes
		WHERE word_index = ?
	`, wordID)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check word mastery: %w", err)
	}
	return record.Mastered(), nil
}

// IncreaseRecognition bumps recognized_by_meaning by 1 for the word,
// clamped at the ceiling
func (r *MistakeRepository) IncreaseRecognition(wordID int64) error {
	_, err := ResultsDB.Exec(`
		UPDATE mistakes
		SET recognized_by_meaning = recognized_by_meaning + 1
		WHERE word_index = ? AND recognized_by_meaning < ?
	`, wordID, models.MaxMasteryLevel)
	if err != nil {
		return fmt.Errorf("failed to increase recognition: %w", err)
	}
	return nil
}

// IncreasePronunciation bumps pronounced_correctly by 1 for the word,
// clamped at the ceiling
func (r *MistakeRepository) IncreasePronunciation(wordID int64) error {
	_, err := ResultsDB.Exec(`
		UPDATE mistakes
		SET pronounced_correctly = pronounced_correctly + 1
		WHERE word_index = ? AND pronounced_correctly < ?
	`, wordID, models.MaxMasteryLevel)
	if err != nil {
		return fmt.Errorf("failed to increase pronunciation: %w", err)
	}
	return nil
}

// GetByWord returns the ledger row for a word, or nil when absent
func (r *MistakeRepository) GetByWord(wordID int64) (*models.MistakeRecord, error) {
	var record models.MistakeRecord
	err := ResultsDB.Get(&record, "SELECT * FROM mistakes WHERE word_index = ?", wordID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get mistake record: %w", err)
	}
	return &record, nil
}

// UnmasteredByMeaning returns ledger rows whose recognition counter is
// below the ceiling
func (r *MistakeRepository) UnmasteredByMeaning() ([]models.MistakeRecord, error) {
	var records []models.MistakeRecord
	err := ResultsDB.Select(&records, `
		SELECT * FROM mistakes
		WHERE recognized_by_meaning < ?
		ORDER BY mistake_index
	`, models.MaxMasteryLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to get unmastered meanings: %w", err)
	}
	return records, nil
}

// UnmasteredByPronunciation returns ledger rows whose pronunciation counter
// is below the ceiling
func (r *MistakeRepository) UnmasteredByPronunciation() ([]models.MistakeRecord, error) {
	var records []models.MistakeRecord
	err := ResultsDB.Select(&records, `
		SELECT * FROM mistakes
		WHERE pronounced_correctly < ?
		ORDER BY mistake_index
	`, models.MaxMasteryLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to get unmastered pronunciations: %w", err)
	}
	return records, nil
}
