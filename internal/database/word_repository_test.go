package database

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/readcoach/pkg/models"
)

func setupTestDB(t *testing.T) {
	t.Helper()
	require.NoError(t, Connect(":memory:", ":memory:"))
	t.Cleanup(func() { Close() })
}

func TestLookupEmptyStoreAndEmptyWord(t *testing.T) {
	setupTestDB(t)
	repo := NewWordRepository()

	_, ok, err := repo.Lookup("cat")
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = repo.Lookup("")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestEnrichAndInsertScenario(t *testing.T) {
	setupTestDB(t)
	repo := NewWordRepository()

	_, ok, err := repo.Lookup("cat")
	require.NoError(t, err)
	require.False(t, ok)

	entry := &models.WordEntry{
		Word:          "cat",
		Meaning:       "a small domesticated feline",
		Transcription: "kæt",
		Syllables:     "cat",
	}
	require.NoError(t, repo.Create(entry))
	require.NotZero(t, entry.ID)

	id, ok, err := repo.Lookup("cat")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, entry.ID, id)

	// repeated lookups return a consistent id
	id2, ok, err := repo.Lookup("cat")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, id, id2)

	segments, ok, err := repo.SyllablesOf("cat")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []string{"cat"}, segments)
}

func TestCreateDuplicateResolvesExistingID(t *testing.T) {
	setupTestDB(t)
	repo := NewWordRepository()

	first := &models.WordEntry{Word: "dog", Meaning: "a domesticated canine"}
	require.NoError(t, repo.Create(first))

	second := &models.WordEntry{Word: "dog", Meaning: "something else entirely"}
	require.NoError(t, repo.Create(second))
	assert.Equal(t, first.ID, second.ID)

	// the original entry is not overwritten
	stored, err := repo.GetByID(first.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "a domesticated canine", stored.Meaning)
}

func TestExamplesStoredCommaJoined(t *testing.T) {
	setupTestDB(t)
	repo := NewWordRepository()

	joined := strings.Join([]string{
		"The cat sleeps.",
		"A cat purrs.",
		"My cat is old.",
	}, ", ")

	entry := &models.WordEntry{Word: "cat", Examples: joined}
	require.NoError(t, repo.Create(entry))

	stored, err := repo.GetByID(entry.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, joined, stored.Examples)
}

func TestSyllablesOfUnknownWord(t *testing.T) {
	setupTestDB(t)
	repo := NewWordRepository()

	_, ok, err := repo.SyllablesOf("missing")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSyllablesOfEmptyColumn(t *testing.T) {
	setupTestDB(t)
	repo := NewWordRepository()

	require.NoError(t, repo.Create(&models.WordEntry{Word: "hm"}))

	segments, ok, err := repo.SyllablesOf("hm")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Empty(t, segments)
}

func TestRandomMeaningsExcluding(t *testing.T) {
	setupTestDB(t)
	repo := NewWordRepository()

	meanings := []string{"first meaning", "second meaning", "third meaning", "fourth meaning"}
	words := []string{"alpha", "beta", "gamma", "delta"}
	for i, word := range words {
		require.NoError(t, repo.Create(&models.WordEntry{Word: word, Meaning: meanings[i]}))
	}

	got, err := repo.RandomMeaningsExcluding("first meaning", 3)
	require.NoError(t, err)
	assert.Len(t, got, 3)
	assert.NotContains(t, got, "first meaning")
}

func TestRandomMeaningsExcludingFewerThanK(t *testing.T) {
	setupTestDB(t)
	repo := NewWordRepository()

	require.NoError(t, repo.Create(&models.WordEntry{Word: "alpha", Meaning: "first meaning"}))
	require.NoError(t, repo.Create(&models.WordEntry{Word: "beta", Meaning: "second meaning"}))

	got, err := repo.RandomMeaningsExcluding("first meaning", 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"second meaning"}, got)
}

func TestGetByIDsBatch(t *testing.T) {
	setupTestDB(t)
	repo := NewWordRepository()

	a := &models.WordEntry{Word: "alpha"}
	b := &models.WordEntry{Word: "beta"}
	require.NoError(t, repo.Create(a))
	require.NoError(t, repo.Create(b))

	entries, err := repo.GetByIDs([]int64{a.ID, b.ID, 9999})
	require.NoError(t, err)
	assert.Len(t, entries, 2)
	assert.Equal(t, "alpha", entries[a.ID].Word)
	assert.Equal(t, "beta", entries[b.ID].Word)

	empty, err := repo.GetByIDs(nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
