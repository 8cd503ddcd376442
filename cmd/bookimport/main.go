// bookimport splits a .docx book into reading fragments and stores them
// in the book database.
package main

import (
	"flag"
	"log"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"github.com/example/readcoach/internal/database"
	"github.com/example/readcoach/internal/ingest"
	"github.com/example/readcoach/internal/server"
)

func main() {
	_ = godotenv.Load()
	cfg := server.LoadConfig()

	file := flag.String("file", "", "path to the .docx file to import")
	name := flag.String("name", "", "book name (defaults to the file name without extension)")
	sentences := flag.Int("sentences", ingest.DefaultSentencesPerFragment, "sentences per fragment")
	bookDB := flag.String("book-db", cfg.BookDBPath, "path to the book database")
	flag.Parse()

	if *file == "" {
		log.Fatal("-file is required")
	}

	bookName := *name
	if bookName == "" {
		base := filepath.Base(*file)
		bookName = strings.TrimSuffix(base, filepath.Ext(base))
	}

	if err := database.Connect(*bookDB, cfg.ResultsDBPath); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	books := database.NewBookRepository()
	bookID, count, err := ingest.ImportBook(books, bookName, *file, *sentences)
	if err != nil {
		log.Fatalf("Failed to import book: %v", err)
	}

	log.Printf("Inserted %d fragments for book %q (id %d)", count, bookName, bookID)
}
