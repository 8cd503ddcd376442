// wordimport bulk-loads pre-enriched dictionary entries from a spreadsheet
// into the book database, skipping words that are already stored.
package main

import (
	"flag"
	"log"

	"github.com/joho/godotenv"

	"github.com/example/readcoach/internal/database"
	"github.com/example/readcoach/internal/excel"
	"github.com/example/readcoach/internal/server"
)

func main() {
	_ = godotenv.Load()
	cfg := server.LoadConfig()

	config := excel.DefaultImportConfig()
	flag.StringVar(&config.FilePath, "file", "", "path to the .xlsx or .csv file to import")
	flag.StringVar(&config.SheetName, "sheet", config.SheetName, "sheet name (Excel only)")
	flag.IntVar(&config.StartRow, "start-row", config.StartRow, "first data row (1-based)")
	bookDB := flag.String("book-db", cfg.BookDBPath, "path to the book database")
	flag.Parse()

	if config.FilePath == "" {
		log.Fatal("-file is required")
	}

	if err := database.Connect(*bookDB, cfg.ResultsDBPath); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	result, err := excel.ImportWords(config)
	if err != nil {
		log.Fatalf("Failed to import words: %v", err)
	}

	log.Printf("Processed %d rows: %d created, %d skipped", result.TotalProcessed, result.Created, result.Skipped)
	for _, e := range result.Errors {
		log.Printf("import error: %s", e)
	}
}
