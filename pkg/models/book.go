package models

import "database/sql"

// Book represents one imported book
type Book struct {
	ID   int64  `json:"book_id" db:"id"`
	Name string `json:"name" db:"name"`
}

// Fragment is a fixed-size group of sentences from a book, stored as one
// row for sequential reading practice
type Fragment struct {
	FragmentID  int64          `json:"fragment_id" db:"fragment_id"`
	BookID      int64          `json:"book_id" db:"book_id"`
	ChapterName sql.NullString `json:"-" db:"chapter_name"`
	Text        string         `json:"text" db:"text"`
}
