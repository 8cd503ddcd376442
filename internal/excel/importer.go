package excel

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/example/readcoach/internal/database"
	"github.com/example/readcoach/pkg/models"
)

// ImportConfig defines the dictionary import configuration
type ImportConfig struct {
	FilePath            string // Path to the Excel or CSV file
	WordColumn          string // Column with the word
	MeaningColumn       string // Column with the meaning
	AntonymsColumn      string // Column with the antonyms
	SynonymsColumn      string // Column with the synonyms
	ExamplesColumn      string // Column with the example sentences
	TranscriptionColumn string // Column with the IPA transcription
	SyllablesColumn     string // Column with the syllable segmentation
	SheetName           string // Name of the sheet to import
	StartRow            int    // The row to start importing from (1-based index)
}

// DefaultImportConfig returns the default import configuration
func DefaultImportConfig() ImportConfig {
	return ImportConfig{
		WordColumn:          "A",
		MeaningColumn:       "B",
		AntonymsColumn:      "C",
		SynonymsColumn:      "D",
		ExamplesColumn:      "E",
		TranscriptionColumn: "F",
		SyllablesColumn:     "G",
		SheetName:           "Sheet1",
		StartRow:            2, // By default, start from the second row (skip header)
	}
}

// ImportResult holds the result of an import operation
type ImportResult struct {
	TotalProcessed int
	Created        int
	Skipped        int
	Errors         []string
}

// ImportWords imports pre-enriched dictionary entries from an Excel or CSV
// file. Words already stored are skipped, not overwritten.
func ImportWords(config ImportConfig) (*ImportResult, error) {
	ext := strings.ToLower(filepath.Ext(config.FilePath))
	if ext == ".csv" {
		return importFromCSV(config)
	}
	return importFromExcel(config)
}

// importFromExcel imports entries from an Excel file
func importFromExcel(config ImportConfig) (*ImportResult, error) {
	f, err := excelize.OpenFile(config.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(config.SheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to get rows: %w", err)
	}

	wordRepo := database.NewWordRepository()
	result := &ImportResult{Errors: make([]string, 0)}

	for i, row := range rows {
		if i < config.StartRow-1 {
			continue
		}
		result.TotalProcessed++
		if err := processRow(row, config, wordRepo, result); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", i+1, err))
		}
	}

	return result, nil
}

// importFromCSV imports entries from a CSV file with the same column layout
func importFromCSV(config ImportConfig) (*ImportResult, error) {
	file, err := os.Open(config.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // Allow variable number of fields
	reader.LazyQuotes = true

	wordRepo := database.NewWordRepository()
	result := &ImportResult{Errors: make([]string, 0)}

	rowNum := 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading CSV: %w", err)
		}

		rowNum++
		if rowNum < config.StartRow {
			continue
		}

		result.TotalProcessed++
		if err := processRow(row, config, wordRepo, result); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", rowNum, err))
		}
	}

	return result, nil
}

// processRow maps one row onto a dictionary entry and stores it
func processRow(row []string, config ImportConfig, wordRepo *database.WordRepository, result *ImportResult) error {
	entry := models.WordEntry{
		Word:          cell(row, config.WordColumn),
		Meaning:       cell(row, config.MeaningColumn),
		Antonyms:      cell(row, config.AntonymsColumn),
		Synonyms:      cell(row, config.SynonymsColumn),
		Examples:      cell(row, config.ExamplesColumn),
		Transcription: cell(row, config.TranscriptionColumn),
		Syllables:     cell(row, config.SyllablesColumn),
	}

	if entry.Word == "" {
		result.Skipped++
		return nil
	}

	if _, ok, err := wordRepo.Lookup(entry.Word); err != nil {
		return err
	} else if ok {
		result.Skipped++
		return nil
	}

	if err := wordRepo.Create(&entry); err != nil {
		return err
	}
	result.Created++
	return nil
}

func cell(row []string, column string) string {
	if column == "" {
		return ""
	}
	idx := columnToIndex(column)
	if idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// columnToIndex converts a spreadsheet column letter ("A", "B", ..., "AA")
// to a zero-based index
func columnToIndex(column string) int {
	index := 0
	for _, r := range strings.ToUpper(column) {
		index = index*26 + int(r-'A') + 1
	}
	return index - 1
}
