// Package review builds quiz material from the mistake ledger and the word
// dictionary: multiple-choice meaning questions and pronunciation drills,
// filtered to words the student has not mastered yet.
package review

import (
	"github.com/example/readcoach/internal/database"
	"github.com/example/readcoach/pkg/models"
)

// DistractorCount is how many wrong meanings accompany the correct one in
// a meaning question
const DistractorCount = 3

// Generator produces review decks
type Generator struct {
	words    *database.WordRepository
	mistakes *database.MistakeRepository
}

// NewGenerator creates a deck generator over the given repositories
func NewGenerator(words *database.WordRepository, mistakes *database.MistakeRepository) *Generator {
	return &Generator{words: words, mistakes: mistakes}
}

// MeaningDeck returns one card per ledger row whose recognition counter is
// below the ceiling. Ledger rows without a dictionary counterpart are
// skipped rather than failing the whole deck.
func (g *Generator) MeaningDeck() ([]models.MeaningCard, error) {
	records, err := g.mistakes.UnmasteredByMeaning()
	if err != nil {
		return nil, err
	}

	entries, err := g.words.GetByIDs(wordIDs(records))
	if err != nil {
		return nil, err
	}

	deck := make([]models.MeaningCard, 0, len(records))
	for _, record := range records {
		entry, ok := entries[record.WordIndex]
		if !ok {
			continue
		}

		options, err := g.words.RandomMeaningsExcluding(entry.Meaning, DistractorCount)
		if err != nil {
			return nil, err
		}
		// the correct meaning always goes last
		options = append(options, entry.Meaning)

		deck = append(deck, models.MeaningCard{
			ID:                  record.WordIndex,
			RecognizedByMeaning: record.RecognizedByMeaning,
			Word:                entry.Word,
			Meaning:             entry.Meaning,
			Antonyms:            entry.Antonyms,
			Synonyms:            entry.Synonyms,
			Examples:            entry.Examples,
			Options:             options,
		})
	}
	return deck, nil
}

// PronunciationDeck returns one card per ledger row whose pronunciation
// counter is below the ceiling, with the word split into syllable segments
func (g *Generator) PronunciationDeck() ([]models.PronunciationCard, error) {
	records, err := g.mistakes.UnmasteredByPronunciation()
	if err != nil {
		return nil, err
	}

	entries, err := g.words.GetByIDs(wordIDs(records))
	if err != nil {
		return nil, err
	}

	deck := make([]models.PronunciationCard, 0, len(records))
	for _, record := range records {
		entry, ok := entries[record.WordIndex]
		if !ok {
			continue
		}

		deck = append(deck, models.PronunciationCard{
			ID:                  record.WordIndex,
			PronouncedCorrectly: record.PronouncedCorrectly,
			Word:                entry.Word,
			IPA:                 entry.Transcription,
			Segments:            database.SplitSyllables(entry.Syllables),
		})
	}
	return deck, nil
}

// SegmentFeedback marks each syllable segment as correct unless it is
// listed among the incorrect ones
func SegmentFeedback(segments, incorrect []string) []models.SegmentFeedback {
	wrong := make(map[string]bool, len(incorrect))
	for _, segment := range incorrect {
		wrong[segment] = true
	}

	feedback := make([]models.SegmentFeedback, 0, len(segments))
	for _, segment := range segments {
		status := "correct"
		if wrong[segment] {
			status = "incorrect"
		}
		feedback = append(feedback, models.SegmentFeedback{Segment: segment, Status: status})
	}
	return feedback
}

func wordIDs(records []models.MistakeRecord) []int64 {
	ids := make([]int64, 0, len(records))
	for _, record := range records {
		ids = append(ids, record.WordIndex)
	}
	return ids
}
