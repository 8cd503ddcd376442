package database

import (
	"database/sql"
	"fmt"
)

// ResultRepository handles database operations for reading-attempt records
type ResultRepository struct{}

// NewResultRepository creates a new repository instance
func NewResultRepository() *ResultRepository {
	return &ResultRepository{}
}

// FindByReadPart returns the index of the attempt record for the exact
// read text part. The second return value is false when no record exists.
func (r *ResultRepository) FindByReadPart(readPart string) (int64, bool, error) {
	var index int64
	err := ResultsDB.Get(&index, "SELECT text_index FROM text_attempts WHERE read_part = ?", readPart)
	if err == sql.ErrNoRows {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to find attempt record: %w", err)
	}
	return index, true, nil
}

// Insert stores a new attempt record
func (r *ResultRepository) Insert(studentIndex int64, readPart, analysis string) error {
	_, err := ResultsDB.Exec(
		"INSERT INTO text_attempts (student_index, read_part, results_analysis) VALUES (?, ?, ?)",
		studentIndex, readPart, analysis,
	)
	if err != nil {
		return fmt.Errorf("failed to insert attempt record: %w", err)
	}
	return nil
}

// UpdateByReadPart replaces the stored analysis of an existing attempt
// record. Returns false when no record matched.
func (r *ResultRepository) UpdateByReadPart(readPart, analysis string) (bool, error) {
	result, err := ResultsDB.Exec(
		"UPDATE text_attempts SET results_analysis = ? WHERE read_part = ?",
		analysis, readPart,
	)
	if err != nil {
		return false, fmt.Errorf("failed to update attempt record: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rows > 0, nil
}

// Upsert inserts a new attempt record or replaces the analysis of the
// record with the same read part
func (r *ResultRepository) Upsert(studentIndex int64, readPart, analysis string) error {
	_, found, err := r.FindByReadPart(readPart)
	if err != nil {
		return err
	}
	if found {
		_, err := r.UpdateByReadPart(readPart, analysis)
		return err
	}
	return r.Insert(studentIndex, readPart, analysis)
}
