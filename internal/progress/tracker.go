// Package progress implements mastery progression: turning missed keywords
// into dictionary entries and ledger rows, and moving the two mastery
// counters as the student succeeds.
package progress

import (
	"go.uber.org/zap"

	"github.com/example/readcoach/internal/ai"
	"github.com/example/readcoach/internal/database"
	"github.com/example/readcoach/internal/textutil"
	"github.com/example/readcoach/pkg/models"
)

// Tracker combines the word dictionary, the mistake ledger and the
// enrichment client
type Tracker struct {
	words    *database.WordRepository
	mistakes *database.MistakeRepository
	enricher ai.Enricher
	log      *zap.SugaredLogger
}

// NewTracker creates a tracker over the given collaborators
func NewTracker(words *database.WordRepository, mistakes *database.MistakeRepository, enricher ai.Enricher, log *zap.SugaredLogger) *Tracker {
	return &Tracker{words: words, mistakes: mistakes, enricher: enricher, log: log}
}

// EnsureWord returns the dictionary id of a word, enriching and inserting
// it on first encounter
func (t *Tracker) EnsureWord(word string) (int64, error) {
	id, ok, err := t.words.Lookup(word)
	if err != nil {
		return 0, err
	}
	if ok {
		return id, nil
	}

	info, err := t.enricher.WordInfo(word)
	if err != nil {
		return 0, err
	}

	entry := &models.WordEntry{
		Word:          word,
		Meaning:       info.Meaning,
		Antonyms:      info.Antonyms,
		Synonyms:      info.Synonyms,
		Examples:      info.Examples,
		Transcription: info.Transcription,
		Syllables:     info.Syllables,
	}
	if err := t.words.Create(entry); err != nil {
		return 0, err
	}
	return entry.ID, nil
}

// TrackMissed records every missed keyword as a mistake, creating the
// dictionary entry first when needed. A mistake is recorded whenever a word
// is flagged as missed, regardless of prior mastery: mastered words are
// filtered out later at deck-generation time. A keyword whose enrichment
// fails is logged and skipped so the remaining keywords are still tracked.
func (t *Tracker) TrackMissed(keywords []string) error {
	for _, word := range textutil.CleanKeywords(keywords) {
		id, err := t.EnsureWord(word)
		if err != nil {
			t.log.Errorw("failed to ensure dictionary entry", "word", word, "error", err)
			continue
		}
		if err := t.mistakes.Record(database.DefaultStudentIndex, id); err != nil {
			return err
		}
		t.log.Infow("tracked missed word", "word", word, "word_id", id)
	}
	return nil
}

// IsMastered reports whether both counters of the word are at the ceiling
func (t *Tracker) IsMastered(wordID int64) (bool, error) {
	return t.mistakes.IsMastered(wordID)
}

// IncreaseRecognition bumps the recognition counter of the word
func (t *Tracker) IncreaseRecognition(wordID int64) error {
	return t.mistakes.IncreaseRecognition(wordID)
}

// IncreasePronunciation bumps the pronunciation counter of the word
func (t *Tracker) IncreasePronunciation(wordID int64) error {
	return t.mistakes.IncreasePronunciation(wordID)
}
