package database

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

// BookDB holds book content: books, reading fragments and the word dictionary
var BookDB *sqlx.DB

// ResultsDB holds per-student results: reading attempts and the mistake ledger
var ResultsDB *sqlx.DB

// Connect opens both SQLite stores and initializes their schemas.
// ":memory:" paths are accepted for tests.
func Connect(bookPath, resultsPath string) error {
	book, err := open(bookPath)
	if err != nil {
		return fmt.Errorf("failed to connect to book database: %w", err)
	}
	results, err := open(resultsPath)
	if err != nil {
		book.Close()
		return fmt.Errorf("failed to connect to results database: %w", err)
	}

	BookDB = book
	ResultsDB = results

	if err := initBookSchema(); err != nil {
		return err
	}
	return initResultsSchema()
}

// Close closes both store connections
func Close() error {
	var firstErr error
	if BookDB != nil {
		if err := BookDB.Close(); err != nil {
			firstErr = err
		}
	}
	if ResultsDB != nil {
		if err := ResultsDB.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func open(path string) (*sqlx.DB, error) {
	if path != ":memory:" {
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create data directory: %w", err)
			}
		}
	}

	db, err := sqlx.Connect("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	// SQLite doesn't support multiple writers
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	return db, nil
}

func initBookSchema() error {
	_, err := BookDB.Exec(`
		CREATE TABLE IF NOT EXISTS existing_words (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			word TEXT NOT NULL UNIQUE,
			meaning TEXT,
			antonyms TEXT,
			synonyms TEXT,
			examples TEXT,
			transcription TEXT,
			syllables TEXT
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create existing_words table: %w", err)
	}

	_, err = BookDB.Exec(`
		CREATE TABLE IF NOT EXISTS books (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL UNIQUE
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create books table: %w", err)
	}

	_, err = BookDB.Exec(`
		CREATE TABLE IF NOT EXISTS book_fragments (
			fragment_id INTEGER PRIMARY KEY AUTOINCREMENT,
			book_id INTEGER NOT NULL,
			chapter_name TEXT,
			text TEXT NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create book_fragments table: %w", err)
	}

	return nil
}

func initResultsSchema() error {
	_, err := ResultsDB.Exec(`
		CREATE TABLE IF NOT EXISTS text_attempts (
			text_index INTEGER PRIMARY KEY AUTOINCREMENT,
			student_index INTEGER NOT NULL,
			read_part TEXT NOT NULL,
			results_analysis TEXT
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create text_attempts table: %w", err)
	}

	_, err = ResultsDB.Exec(`
		CREATE TABLE IF NOT EXISTS mistakes (
			mistake_index INTEGER PRIMARY KEY AUTOINCREMENT,
			student_index INTEGER NOT NULL,
			word_index INTEGER NOT NULL,
			recognized_by_meaning INTEGER NOT NULL DEFAULT 0
				CHECK(recognized_by_meaning BETWEEN 0 AND 5),
			pronounced_correctly INTEGER NOT NULL DEFAULT 0
				CHECK(pronounced_correctly BETWEEN 0 AND 5),
			UNIQUE(student_index, word_index)
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create mistakes table: %w", err)
	}

	return nil
}
