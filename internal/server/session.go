package server

import (
	"crypto/rand"
	"encoding/hex"
	"sync"

	"github.com/gin-gonic/gin"
)

const sessionCookie = "session_id"

// DefaultBookID is used for sessions that never selected a book
const DefaultBookID = 1

// Sessions tracks the selected book per client session. The selection used
// to be a process-wide variable shared across all requests; here every
// session carries its own.
type Sessions struct {
	mu    sync.Mutex
	books map[string]int64
}

// NewSessions creates an empty session store
func NewSessions() *Sessions {
	return &Sessions{books: make(map[string]int64)}
}

// SelectedBook returns the book selected by the request's session, or
// DefaultBookID when the session never selected one
func (s *Sessions) SelectedBook(c *gin.Context) int64 {
	id, err := c.Cookie(sessionCookie)
	if err != nil {
		return DefaultBookID
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if bookID, ok := s.books[id]; ok {
		return bookID
	}
	return DefaultBookID
}

// Select binds a book to the request's session, creating the session
// cookie when absent
func (s *Sessions) Select(c *gin.Context, bookID int64) {
	id, err := c.Cookie(sessionCookie)
	if err != nil || id == "" {
		id = newSessionID()
		c.SetCookie(sessionCookie, id, 0, "/", "", false, true)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.books[id] = bookID
}

func newSessionID() string {
	buf := make([]byte, 16)
	rand.Read(buf)
	return hex.EncodeToString(buf)
}
