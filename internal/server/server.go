// Package server wires the HTTP API: route registration, CORS, per-session
// book selection and the request handlers.
package server

import (
	"context"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter builds the gin engine with CORS and all routes registered
func NewRouter(cfg *Config, h *Handlers) *gin.Engine {
	router := gin.Default()

	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowOrigins) == 1 && cfg.AllowOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.AllowOrigins
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Content-Type"}
	router.Use(cors.New(corsConfig))

	router.GET("/home", h.Home)

	// recording screen
	router.POST("/get-reading-text", h.GetReadingText)
	router.POST("/get-min-max-fragment-id", h.GetMinMaxFragmentID)
	router.POST("/process-recorded-text", h.ProcessRecordedText)

	// pronunciation screen
	router.GET("/get-pronunciation-words", h.GetPronunciationWords)
	router.POST("/analyze-pronunciation", h.AnalyzePronunciation)

	// vocabulary screen
	router.GET("/get-vocabulary-words", h.GetVocabularyWords)
	router.POST("/increase-recognition", h.IncreaseRecognition)

	// book screen
	router.POST("/select-book", h.SelectBook)
	router.GET("/get-books", h.GetBooks)

	return router
}

// Server wraps the HTTP server for graceful shutdown
type Server struct {
	http *http.Server
}

// NewServer creates a server listening on the configured address
func NewServer(cfg *Config, h *Handlers) *Server {
	return &Server{
		http: &http.Server{
			Addr:    cfg.Addr,
			Handler: NewRouter(cfg, h),
		},
	}
}

// Run blocks serving HTTP until Shutdown is called
func (s *Server) Run() error {
	err := s.http.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Shutdown stops the server, waiting for in-flight requests
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
