package progress

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/example/readcoach/internal/ai"
	"github.com/example/readcoach/internal/database"
	"github.com/example/readcoach/pkg/models"
)

// fakeEnricher serves canned word info and records which words it was
// asked about
type fakeEnricher struct {
	calls []string
	fail  map[string]bool
}

func (f *fakeEnricher) WordInfo(word string) (*models.WordInfo, error) {
	f.calls = append(f.calls, word)
	if f.fail[word] {
		return nil, &ai.EnrichmentError{Word: word}
	}
	return &models.WordInfo{
		Meaning:   "meaning of " + word,
		Syllables: word,
	}, nil
}

func setupTracker(t *testing.T) (*Tracker, *fakeEnricher, *database.WordRepository, *database.MistakeRepository) {
	t.Helper()
	require.NoError(t, database.Connect(":memory:", ":memory:"))
	t.Cleanup(func() { database.Close() })

	words := database.NewWordRepository()
	mistakes := database.NewMistakeRepository(zap.NewNop().Sugar())
	enricher := &fakeEnricher{fail: map[string]bool{}}
	tracker := NewTracker(words, mistakes, enricher, zap.NewNop().Sugar())
	return tracker, enricher, words, mistakes
}

func TestEnsureWordEnrichesOnlyOnce(t *testing.T) {
	tracker, enricher, words, _ := setupTracker(t)

	id1, err := tracker.EnsureWord("cat")
	require.NoError(t, err)
	id2, err := tracker.EnsureWord("cat")
	require.NoError(t, err)

	assert.Equal(t, id1, id2)
	assert.Equal(t, []string{"cat"}, enricher.calls)

	entry, err := words.GetByID(id1)
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, "meaning of cat", entry.Meaning)
}

func TestTrackMissedCreatesSingleLedgerRow(t *testing.T) {
	tracker, _, words, mistakes := setupTracker(t)

	require.NoError(t, tracker.TrackMissed([]string{"cat"}))
	// the same word flagged again in a later attempt
	require.NoError(t, tracker.TrackMissed([]string{"cat"}))

	id, ok, err := words.Lookup("cat")
	require.NoError(t, err)
	require.True(t, ok)

	record, err := mistakes.GetByWord(id)
	require.NoError(t, err)
	require.NotNil(t, record)

	var count int
	require.NoError(t, database.ResultsDB.Get(&count, "SELECT COUNT(*) FROM mistakes"))
	assert.Equal(t, 1, count)
}

func TestTrackMissedRecordsRegardlessOfMastery(t *testing.T) {
	tracker, _, words, mistakes := setupTracker(t)

	require.NoError(t, tracker.TrackMissed([]string{"cat"}))
	id, _, err := words.Lookup("cat")
	require.NoError(t, err)

	for i := 0; i < models.MaxMasteryLevel; i++ {
		require.NoError(t, mistakes.IncreaseRecognition(id))
		require.NoError(t, mistakes.IncreasePronunciation(id))
	}

	// flagging a mastered word keeps its ledger row and counters intact
	require.NoError(t, tracker.TrackMissed([]string{"cat"}))

	record, err := mistakes.GetByWord(id)
	require.NoError(t, err)
	assert.Equal(t, models.MaxMasteryLevel, record.RecognizedByMeaning)
	assert.Equal(t, models.MaxMasteryLevel, record.PronouncedCorrectly)
}

func TestTrackMissedCleansKeywords(t *testing.T) {
	tracker, enricher, _, _ := setupTracker(t)

	require.NoError(t, tracker.TrackMissed([]string{"cat!", "42", "  "}))
	assert.Equal(t, []string{"cat"}, enricher.calls)
}

func TestTrackMissedSkipsFailedEnrichment(t *testing.T) {
	tracker, enricher, words, _ := setupTracker(t)
	enricher.fail["cat"] = true

	require.NoError(t, tracker.TrackMissed([]string{"cat", "dog"}))

	_, ok, err := words.Lookup("cat")
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = words.Lookup("dog")
	require.NoError(t, err)
	assert.True(t, ok)
}
