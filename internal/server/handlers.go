package server

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/example/readcoach/internal/ai"
	"github.com/example/readcoach/internal/database"
	"github.com/example/readcoach/internal/progress"
	"github.com/example/readcoach/internal/review"
	"github.com/example/readcoach/internal/textutil"
)

// successRatio is the normalized Levenshtein threshold below which a
// pronunciation attempt counts as correct
const successRatio = 0.3

// Handlers holds the HTTP handlers and their collaborators
type Handlers struct {
	log      *zap.SugaredLogger
	words    *database.WordRepository
	books    *database.BookRepository
	results  *database.ResultRepository
	review   *review.Generator
	tracker  *progress.Tracker
	analyzer ai.Analyzer
	speech   ai.Speech
	sessions *Sessions
}

// NewHandlers creates the handler set
func NewHandlers(
	log *zap.SugaredLogger,
	words *database.WordRepository,
	books *database.BookRepository,
	results *database.ResultRepository,
	generator *review.Generator,
	tracker *progress.Tracker,
	analyzer ai.Analyzer,
	speech ai.Speech,
) *Handlers {
	return &Handlers{
		log:      log,
		words:    words,
		books:    books,
		results:  results,
		review:   generator,
		tracker:  tracker,
		analyzer: analyzer,
		speech:   speech,
		sessions: NewSessions(),
	}
}

// Home returns the welcome payload
func (h *Handlers) Home(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Welcome to the Language Learning App!",
		"info":    "This is the home endpoint.",
	})
}

// SelectBook binds a book to the caller's session
func (h *Handlers) SelectBook(c *gin.Context) {
	var body struct {
		BookID int64 `json:"book_id"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.BookID == 0 {
		body.BookID = DefaultBookID
	}

	book, err := h.books.GetByID(body.BookID)
	if err != nil {
		h.serverError(c, "failed to select book", err)
		return
	}
	if book == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "book not found"})
		return
	}

	h.sessions.Select(c, body.BookID)
	c.JSON(http.StatusOK, gin.H{
		"message": "Book selected successfully",
		"book_id": body.BookID,
	})
}

// GetBooks lists all imported books
func (h *Handlers) GetBooks(c *gin.Context) {
	books, err := h.books.GetAll()
	if err != nil {
		h.serverError(c, "failed to list books", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"books": books})
}

// GetReadingText returns one fragment of the selected book, addressed by
// a 1-based offset within the book's fragment range
func (h *Handlers) GetReadingText(c *gin.Context) {
	var body struct {
		FragmentID int64 `json:"fragment_id"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "fragment_id is required"})
		return
	}

	bookID := h.sessions.SelectedBook(c)
	first, err := h.books.FirstFragmentID(bookID)
	if err != nil {
		h.serverError(c, "failed to resolve fragment range", err)
		return
	}

	fragment, err := h.books.FragmentByID(first + body.FragmentID - 1)
	if err != nil {
		h.serverError(c, "failed to get fragment", err)
		return
	}
	if fragment == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "fragment not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"fragment_id":  fragment.FragmentID,
		"chapter_name": fragment.ChapterName.String,
		"text":         fragment.Text,
		"book_id":      fragment.BookID,
	})
}

// GetMinMaxFragmentID returns the fragment id range of the selected book
func (h *Handlers) GetMinMaxFragmentID(c *gin.Context) {
	bookID := h.sessions.SelectedBook(c)

	min, err := h.books.FirstFragmentID(bookID)
	if err != nil {
		h.serverError(c, "failed to get first fragment id", err)
		return
	}
	max, err := h.books.LastFragmentID(bookID)
	if err != nil {
		h.serverError(c, "failed to get last fragment id", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"min_fragment_id": min,
		"max_fragment_id": max,
	})
}

// ProcessRecordedText runs the analysis pipeline on a recorded reading
// attempt, tracks missed keywords and stores the attempt record
func (h *Handlers) ProcessRecordedText(c *gin.Context) {
	var body struct {
		Audio         string `json:"audio"`
		DisplayedText string `json:"displayed_text"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Audio == "" || body.DisplayedText == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "audio and displayed_text are required"})
		return
	}

	result, err := h.analyzer.Analyze(body.Audio, body.DisplayedText)
	if err != nil {
		h.log.Errorw("analysis pipeline failed", "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to analyze recording"})
		return
	}

	if len(result.MissedKeywords) > 0 {
		if err := h.tracker.TrackMissed(result.MissedKeywords); err != nil {
			// attempt analysis is still worth returning
			h.log.Errorw("failed to track missed keywords", "error", err)
		}
	}

	analysis, err := json.Marshal(result)
	if err != nil {
		h.serverError(c, "failed to serialize analysis", err)
		return
	}
	if err := h.results.Upsert(database.DefaultStudentIndex, body.DisplayedText, string(analysis)); err != nil {
		h.serverError(c, "failed to store attempt record", err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetPronunciationWords returns the pronunciation drill deck
func (h *Handlers) GetPronunciationWords(c *gin.Context) {
	deck, err := h.review.PronunciationDeck()
	if err != nil {
		h.serverError(c, "failed to build pronunciation deck", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"words": deck})
}

// GetVocabularyWords returns the meaning-recognition review deck
func (h *Handlers) GetVocabularyWords(c *gin.Context) {
	deck, err := h.review.MeaningDeck()
	if err != nil {
		h.serverError(c, "failed to build meaning deck", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"words": deck})
}

// IncreaseRecognition bumps the recognition counter of a word
func (h *Handlers) IncreaseRecognition(c *gin.Context) {
	var body struct {
		WordID *int64 `json:"word_id"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.WordID == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "word_id is required"})
		return
	}

	if err := h.tracker.IncreaseRecognition(*body.WordID); err != nil {
		h.serverError(c, "failed to increase recognition", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Recognition increased successfully"})
}

// AnalyzePronunciation scores one drilled word against its reference
// pronunciation and returns per-syllable feedback
func (h *Handlers) AnalyzePronunciation(c *gin.Context) {
	var body struct {
		Audio string `json:"audio"`
		Word  string `json:"word"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Audio == "" || body.Word == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing audio or word data"})
		return
	}

	word := textutil.NormalizeWord(body.Word)

	result, err := h.analyzer.Analyze(body.Audio, word)
	if err != nil {
		h.log.Errorw("pronunciation analysis failed", "word", word, "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to analyze pronunciation"})
		return
	}

	success := pronunciationSuccess(result.LevenshteinDistance, result.Transcription, word)
	if success {
		if id, ok, err := h.words.Lookup(word); err == nil && ok {
			if err := h.tracker.IncreasePronunciation(id); err != nil {
				h.log.Errorw("failed to increase pronunciation", "word", word, "error", err)
			}
		}
	}

	segments, _, err := h.words.SyllablesOf(word)
	if err != nil {
		h.serverError(c, "failed to get syllables", err)
		return
	}

	referenceAudio, err := h.speech.Synthesize(word)
	if err != nil {
		h.log.Warnw("failed to synthesize reference audio", "word", word, "error", err)
	}

	segmentAudios := make(map[string]string, len(segments))
	for _, segment := range segments {
		audio, err := h.speech.Synthesize(segment)
		if err != nil {
			h.log.Warnw("failed to synthesize segment audio", "segment", segment, "error", err)
			continue
		}
		segmentAudios[segment] = audio
	}

	sentence := "Nice try! You had a few small mistakes."
	if success {
		sentence = "Great job! That sounded right."
	}

	c.JSON(http.StatusOK, gin.H{
		"transcription":     result.Transcription,
		"feedback":          review.SegmentFeedback(segments, nil),
		"feedback_sentence": sentence,
		"correct_audio":     referenceAudio,
		"segment_audios":    segmentAudios,
	})
}

// pronunciationSuccess normalizes the Levenshtein distance by the longer
// of the two strings and compares against the success threshold
func pronunciationSuccess(distance int, transcription, word string) bool {
	longest := len(transcription)
	if len(word) > longest {
		longest = len(word)
	}
	if longest == 0 {
		return false
	}
	return float64(distance)/float64(longest) < successRatio
}

func (h *Handlers) serverError(c *gin.Context, msg string, err error) {
	h.log.Errorw(msg, "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
}
