// Package ingest turns word-processor documents into reading fragments:
// the document text is split into sentences and grouped into fixed-size
// fragments, one database row each.
package ingest

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/example/readcoach/internal/database"
)

// DefaultSentencesPerFragment is how many sentences one reading fragment
// holds unless configured otherwise
const DefaultSentencesPerFragment = 3

// ReadDocxText extracts the plain text of a .docx file, one line per
// paragraph. A .docx is a zip archive whose main part is
// word/document.xml.
func ReadDocxText(path string) (string, error) {
	archive, err := zip.OpenReader(path)
	if err != nil {
		return "", fmt.Errorf("failed to open document: %w", err)
	}
	defer archive.Close()

	for _, file := range archive.File {
		if file.Name != "word/document.xml" {
			continue
		}
		rc, err := file.Open()
		if err != nil {
			return "", fmt.Errorf("failed to open document body: %w", err)
		}
		defer rc.Close()
		return extractParagraphs(rc)
	}
	return "", fmt.Errorf("document has no word/document.xml part")
}

// extractParagraphs walks the document XML collecting the text runs of
// each paragraph
func extractParagraphs(r io.Reader) (string, error) {
	decoder := xml.NewDecoder(r)

	var paragraphs []string
	var current strings.Builder
	inParagraph := false

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("failed to parse document XML: %w", err)
		}

		switch t := token.(type) {
		case xml.StartElement:
			if t.Name.Local == "p" {
				inParagraph = true
				current.Reset()
			}
			if t.Name.Local == "t" && inParagraph {
				var text string
				if err := decoder.DecodeElement(&text, &t); err != nil {
					return "", fmt.Errorf("failed to decode text run: %w", err)
				}
				current.WriteString(text)
			}
		case xml.EndElement:
			if t.Name.Local == "p" && inParagraph {
				inParagraph = false
				paragraphs = append(paragraphs, current.String())
			}
		}
	}

	return strings.Join(paragraphs, "\n"), nil
}

// SplitIntoFragments splits text into sentences and joins every
// sentencesPerFragment of them into one fragment. Empty fragments are
// dropped.
func SplitIntoFragments(text string, sentencesPerFragment int) []string {
	if sentencesPerFragment < 1 {
		sentencesPerFragment = DefaultSentencesPerFragment
	}

	sentences := splitSentences(text)
	var fragments []string
	for i := 0; i < len(sentences); i += sentencesPerFragment {
		end := i + sentencesPerFragment
		if end > len(sentences) {
			end = len(sentences)
		}
		fragment := strings.TrimSpace(strings.Join(sentences[i:end], " "))
		if fragment != "" {
			fragments = append(fragments, fragment)
		}
	}
	return fragments
}

// splitSentences breaks text at runs of sentence-ending punctuation
// followed by whitespace, keeping the punctuation with its sentence
func splitSentences(text string) []string {
	var sentences []string
	var current strings.Builder

	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		current.WriteRune(runes[i])
		if !isSentenceEnd(runes[i]) {
			continue
		}
		// consume trailing punctuation like "?!" or "..."
		for i+1 < len(runes) && isSentenceEnd(runes[i+1]) {
			i++
			current.WriteRune(runes[i])
		}
		if i+1 >= len(runes) || unicode.IsSpace(runes[i+1]) {
			sentence := strings.TrimSpace(current.String())
			if sentence != "" {
				sentences = append(sentences, sentence)
			}
			current.Reset()
		}
	}

	if tail := strings.TrimSpace(current.String()); tail != "" {
		sentences = append(sentences, tail)
	}
	return sentences
}

func isSentenceEnd(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

// ImportBook registers the book by name and appends the document's
// fragments to it. Returns the book id and the number of fragments added.
func ImportBook(books *database.BookRepository, name, docPath string, sentencesPerFragment int) (int64, int, error) {
	text, err := ReadDocxText(docPath)
	if err != nil {
		return 0, 0, err
	}

	fragments := SplitIntoFragments(text, sentencesPerFragment)
	if len(fragments) == 0 {
		return 0, 0, fmt.Errorf("document %q contains no sentences", docPath)
	}

	bookID, err := books.EnsureBook(name)
	if err != nil {
		return 0, 0, err
	}
	if err := books.InsertFragments(bookID, fragments); err != nil {
		return 0, 0, err
	}
	return bookID, len(fragments), nil
}
