package review

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/example/readcoach/internal/database"
	"github.com/example/readcoach/pkg/models"
)

func setupGenerator(t *testing.T) (*Generator, *database.WordRepository, *database.MistakeRepository) {
	t.Helper()
	require.NoError(t, database.Connect(":memory:", ":memory:"))
	t.Cleanup(func() { database.Close() })

	words := database.NewWordRepository()
	mistakes := database.NewMistakeRepository(zap.NewNop().Sugar())
	return NewGenerator(words, mistakes), words, mistakes
}

func addWord(t *testing.T, words *database.WordRepository, word, meaning, syllables string) int64 {
	t.Helper()
	entry := &models.WordEntry{
		Word:      word,
		Meaning:   meaning,
		Syllables: syllables,
	}
	require.NoError(t, words.Create(entry))
	return entry.ID
}

func TestMeaningDeckExcludesMasteredWords(t *testing.T) {
	gen, words, mistakes := setupGenerator(t)

	learning := addWord(t, words, "apple", "a round fruit", "ap-ple")
	mastered := addWord(t, words, "banana", "a long yellow fruit", "ba-na-na")
	require.NoError(t, mistakes.Record(database.DefaultStudentIndex, learning))
	require.NoError(t, mistakes.Record(database.DefaultStudentIndex, mastered))

	for i := 0; i < models.MaxMasteryLevel; i++ {
		require.NoError(t, mistakes.IncreaseRecognition(mastered))
	}

	deck, err := gen.MeaningDeck()
	require.NoError(t, err)
	require.Len(t, deck, 1)
	assert.Equal(t, "apple", deck[0].Word)
}

func TestMeaningDeckOptionsContainCorrectMeaningOnce(t *testing.T) {
	gen, words, mistakes := setupGenerator(t)

	target := addWord(t, words, "apple", "a round fruit", "ap-ple")
	addWord(t, words, "banana", "a long yellow fruit", "")
	addWord(t, words, "cherry", "a small red fruit", "")
	addWord(t, words, "date", "a sweet brown fruit", "")
	addWord(t, words, "elderberry", "a dark purple berry", "")
	require.NoError(t, mistakes.Record(database.DefaultStudentIndex, target))

	deck, err := gen.MeaningDeck()
	require.NoError(t, err)
	require.Len(t, deck, 1)

	card := deck[0]
	assert.Len(t, card.Options, DistractorCount+1)
	// the correct meaning is present exactly once, appended last
	occurrences := 0
	for _, option := range card.Options {
		if option == card.Meaning {
			occurrences++
		}
	}
	assert.Equal(t, 1, occurrences)
	assert.Equal(t, card.Meaning, card.Options[len(card.Options)-1])
}

func TestMeaningDeckWithFewDistractors(t *testing.T) {
	gen, words, mistakes := setupGenerator(t)

	target := addWord(t, words, "apple", "a round fruit", "")
	addWord(t, words, "banana", "a long yellow fruit", "")
	require.NoError(t, mistakes.Record(database.DefaultStudentIndex, target))

	deck, err := gen.MeaningDeck()
	require.NoError(t, err)
	require.Len(t, deck, 1)
	// one distractor available plus the correct meaning
	assert.Equal(t, []string{"a long yellow fruit", "a round fruit"}, deck[0].Options)
}

func TestDecksSkipOrphanedLedgerRows(t *testing.T) {
	gen, words, mistakes := setupGenerator(t)

	tracked := addWord(t, words, "apple", "a round fruit", "ap-ple")
	require.NoError(t, mistakes.Record(database.DefaultStudentIndex, tracked))
	// ledger row with no dictionary counterpart
	require.NoError(t, mistakes.Record(database.DefaultStudentIndex, 9999))

	meaningDeck, err := gen.MeaningDeck()
	require.NoError(t, err)
	assert.Len(t, meaningDeck, 1)

	pronunciationDeck, err := gen.PronunciationDeck()
	require.NoError(t, err)
	assert.Len(t, pronunciationDeck, 1)
}

func TestPronunciationDeckSegments(t *testing.T) {
	gen, words, mistakes := setupGenerator(t)

	syllabled := addWord(t, words, "apple", "a round fruit", "ap-ple")
	plain := addWord(t, words, "hm", "an interjection", "")
	require.NoError(t, mistakes.Record(database.DefaultStudentIndex, syllabled))
	require.NoError(t, mistakes.Record(database.DefaultStudentIndex, plain))

	deck, err := gen.PronunciationDeck()
	require.NoError(t, err)
	require.Len(t, deck, 2)

	byWord := map[string][]string{}
	for _, card := range deck {
		byWord[card.Word] = card.Segments
	}
	assert.Equal(t, []string{"ap", "ple"}, byWord["apple"])
	assert.Empty(t, byWord["hm"])
}

func TestPronunciationDeckExcludesMasteredPronunciation(t *testing.T) {
	gen, words, mistakes := setupGenerator(t)

	done := addWord(t, words, "apple", "a round fruit", "ap-ple")
	require.NoError(t, mistakes.Record(database.DefaultStudentIndex, done))
	for i := 0; i < models.MaxMasteryLevel; i++ {
		require.NoError(t, mistakes.IncreasePronunciation(done))
	}

	deck, err := gen.PronunciationDeck()
	require.NoError(t, err)
	assert.Empty(t, deck)
}

func TestSegmentFeedback(t *testing.T) {
	feedback := SegmentFeedback([]string{"ap", "ple"}, []string{"ple"})
	assert.Equal(t, []models.SegmentFeedback{
		{Segment: "ap", Status: "correct"},
		{Segment: "ple", Status: "incorrect"},
	}, feedback)

	assert.Empty(t, SegmentFeedback(nil, nil))
}
