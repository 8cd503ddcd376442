package database

import (
	"database/sql"
	"fmt"

	"github.com/example/readcoach/pkg/models"
)

// BookRepository handles database operations for books and their fragments
type BookRepository struct{}

// NewBookRepository creates a new repository instance
func NewBookRepository() *BookRepository {
	return &BookRepository{}
}

// GetAll returns all books ordered by id
func (r *BookRepository) GetAll() ([]models.Book, error) {
	var books []models.Book
	err := BookDB.Select(&books, "SELECT id, name FROM books ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to get books: %w", err)
	}
	return books, nil
}

// GetByID returns a book, or nil when absent
func (r *BookRepository) GetByID(id int64) (*models.Book, error) {
	var book models.Book
	err := BookDB.Get(&book, "SELECT id, name FROM books WHERE id = ?", id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get book: %w", err)
	}
	return &book, nil
}

// EnsureBook returns the id of the named book, creating it when missing
func (r *BookRepository) EnsureBook(name string) (int64, error) {
	var id int64
	err := BookDB.Get(&id, "SELECT id FROM books WHERE name = ?", name)
	if err == nil {
		return id, nil
	}
	if err != sql.ErrNoRows {
		return 0, fmt.Errorf("failed to find book: %w", err)
	}

	result, err := BookDB.Exec("INSERT INTO books (name) VALUES (?)", name)
	if err != nil {
		return 0, fmt.Errorf("failed to create book: %w", err)
	}
	id, err = result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get last insert ID: %w", err)
	}
	return id, nil
}

// FirstFragmentID returns the lowest fragment id of a book, or 0 when the
// book has no fragments
func (r *BookRepository) FirstFragmentID(bookID int64) (int64, error) {
	return r.boundaryFragmentID("MIN", bookID)
}

// LastFragmentID returns the highest fragment id of a book, or 0 when the
// book has no fragments
func (r *BookRepository) LastFragmentID(bookID int64) (int64, error) {
	return r.boundaryFragmentID("MAX", bookID)
}

func (r *BookRepository) boundaryFragmentID(fn string, bookID int64) (int64, error) {
	var id sql.NullInt64
	query := fmt.Sprintf("SELECT %s(fragment_id) FROM book_fragments WHERE book_id = ?", fn)
	err := BookDB.Get(&id, query, bookID)
	if err != nil {
		return 0, fmt.Errorf("failed to get %s fragment id: %w", fn, err)
	}
	if !id.Valid {
		return 0, nil
	}
	return id.Int64, nil
}

// FragmentByID returns a fragment, or nil when absent
func (r *BookRepository) FragmentByID(fragmentID int64) (*models.Fragment, error) {
	var fragment models.Fragment
	err := BookDB.Get(&fragment, "SELECT * FROM book_fragments WHERE fragment_id = ?", fragmentID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get fragment: %w", err)
	}
	return &fragment, nil
}

// InsertFragments appends fragments to a book in order
func (r *BookRepository) InsertFragments(bookID int64, fragments []string) error {
	tx, err := BookDB.Beginx()
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}

	for _, text := range fragments {
		_, err := tx.Exec(
			"INSERT INTO book_fragments (book_id, chapter_name, text) VALUES (?, NULL, ?)",
			bookID, text,
		)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to insert fragment: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
