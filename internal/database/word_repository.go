package database

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/example/readcoach/pkg/models"
)

// WordRepository handles database operations for the word dictionary
type WordRepository struct{}

// NewWordRepository creates a new repository instance
func NewWordRepository() *WordRepository {
	return &WordRepository{}
}

// Lookup returns the id of the given word, case-sensitively. The second
// return value is false when the word is empty or not stored.
func (r *WordRepository) Lookup(word string) (int64, bool, error) {
	if word == "" {
		return 0, false, nil
	}

	var id int64
	err := BookDB.Get(&id, "SELECT id FROM existing_words WHERE word = ? LIMIT 1", word)
	if err == sql.ErrNoRows {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to look up word: %w", err)
	}
	return id, true, nil
}

// Create inserts a new dictionary entry and fills in its id. A duplicate
// word does not create a second row; the existing id is returned instead.
func (r *WordRepository) Create(entry *models.WordEntry) error {
	result, err := BookDB.Exec(`
		INSERT INTO existing_words (word, meaning, antonyms, synonyms, examples, transcription, syllables)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(word) DO NOTHING
	`,
		entry.Word,
		entry.Meaning,
		entry.Antonyms,
		entry.Synonyms,
		entry.Examples,
		entry.Transcription,
		entry.Syllables,
	)
	if err != nil {
		return fmt.Errorf("failed to create word entry: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows > 0 {
		id, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to get last insert ID: %w", err)
		}
		entry.ID = id
		return nil
	}

	// Word was already stored; resolve the existing id
	id, ok, err := r.Lookup(entry.Word)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("word %q vanished during insert", entry.Word)
	}
	entry.ID = id
	return nil
}

// GetByID returns a dictionary entry, or nil when absent
func (r *WordRepository) GetByID(id int64) (*models.WordEntry, error) {
	var entry models.WordEntry
	err := BookDB.Get(&entry, "SELECT * FROM existing_words WHERE id = ?", id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get word by ID: %w", err)
	}
	return &entry, nil
}

// GetByIDs batch-fetches dictionary entries, keyed by id. Missing ids are
// simply absent from the map.
func (r *WordRepository) GetByIDs(ids []int64) (map[int64]models.WordEntry, error) {
	entries := make(map[int64]models.WordEntry, len(ids))
	if len(ids) == 0 {
		return entries, nil
	}

	query, args, err := sqlx.In("SELECT * FROM existing_words WHERE id IN (?)", ids)
	if err != nil {
		return nil, fmt.Errorf("failed to build word batch query: %w", err)
	}

	var rows []models.WordEntry
	if err := BookDB.Select(&rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to get words by IDs: %w", err)
	}

	for _, entry := range rows {
		entries[entry.ID] = entry
	}
	return entries, nil
}

// SyllablesOf returns the stored syllable segments of a word. The second
// return value is false when the word is not stored.
func (r *WordRepository) SyllablesOf(word string) ([]string, bool, error) {
	if word == "" {
		return nil, false, nil
	}

	var syllables string
	err := BookDB.Get(&syllables, "SELECT syllables FROM existing_words WHERE word = ? LIMIT 1", word)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get syllables: %w", err)
	}
	return SplitSyllables(syllables), true, nil
}

// RandomMeaningsExcluding returns up to k distinct stored meanings other
// than the given one, in random order. Fewer qualifying rows than k is not
// an error.
func (r *WordRepository) RandomMeaningsExcluding(meaning string, k int) ([]string, error) {
	var meanings []string
	err := BookDB.Select(&meanings, `
		SELECT DISTINCT meaning
		FROM existing_words
		WHERE meaning != ?
		ORDER BY RANDOM()
		LIMIT ?
	`, meaning, k)
	if err != nil {
		return nil, fmt.Errorf("failed to get random meanings: %w", err)
	}
	return meanings, nil
}

// SplitSyllables splits a hyphen-delimited segmentation string into
// segments. An empty string yields an empty slice, not [""].
func SplitSyllables(syllables string) []string {
	if syllables == "" {
		return []string{}
	}
	return strings.Split(syllables, "-")
}
