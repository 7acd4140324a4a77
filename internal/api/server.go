package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"sync"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/kumarlokesh/triedict/internal/trie"
)

// Server is the HTTP surface over a single trie. The trie itself expects a
// single owner, so the server supplies the reader/writer exclusion with an
// RWMutex: lookups and prefix listings run concurrently, inserts are
// exclusive.
type Server struct {
	mu     sync.RWMutex
	trie   *trie.Trie
	server *http.Server
	log    zerolog.Logger
}

// NewServer creates a new API server around the given trie
func NewServer(addr string, t *trie.Trie, logger zerolog.Logger) *Server {
	s := &Server{
		trie: t,
		log:  logger,
	}

	r := mux.NewRouter()

	// Request logging middleware
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			s.log.Debug().Str("method", req.Method).Str("path", req.URL.Path).Msg("Received request")
			next.ServeHTTP(w, req)
		})
	})

	r.HandleFunc("/words", s.listWords).Methods("GET")
	r.HandleFunc("/words/{word}", s.putWord).Methods("PUT")
	r.HandleFunc("/words/{word}", s.getWord).Methods("GET")
	r.HandleFunc("/root", s.rootSummary).Methods("GET")

	s.server = &http.Server{
		Addr:    addr,
		Handler: r,
	}

	return s
}

// Handler returns the HTTP handler for the server
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

// Start starts the HTTP server and blocks until it is shut down
func (s *Server) Start() error {
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info().Msg("Shutting down server")
	return s.server.Shutdown(ctx)
}

// respond writes a JSON response with the given status
func (s *Server) respond(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// storedForm is the key Insert actually records: lowercased, with
// characters outside a-z dropped.
func storedForm(word string) string {
	return strings.Map(func(r rune) rune {
		if r < 'a' || r > 'z' {
			return -1
		}
		return r
	}, strings.ToLower(word))
}

// putWord handles PUT /words/{word} - insert a word
func (s *Server) putWord(w http.ResponseWriter, r *http.Request) {
	word := mux.Vars(r)["word"]

	s.mu.Lock()
	s.trie.Insert(word)
	s.mu.Unlock()

	s.respond(w, http.StatusOK, map[string]string{
		"word":   word,
		"stored": storedForm(word),
	})
}

// getWord handles GET /words/{word} - exact membership lookup
func (s *Server) getWord(w http.ResponseWriter, r *http.Request) {
	word := mux.Vars(r)["word"]

	s.mu.RLock()
	found := s.trie.Contains(word)
	s.mu.RUnlock()

	s.respond(w, http.StatusOK, map[string]interface{}{
		"word":  word,
		"found": found,
	})
}

// listWords handles GET /words?prefix= - ordered prefix enumeration
func (s *Server) listWords(w http.ResponseWriter, r *http.Request) {
	prefix := r.URL.Query().Get("prefix")

	s.mu.RLock()
	words := s.trie.Words(prefix)
	s.mu.RUnlock()

	s.respond(w, http.StatusOK, map[string]interface{}{
		"prefix": prefix,
		"words":  words,
	})
}

// rootSummary handles GET /root - shallow diagnostic view of the root node
func (s *Server) rootSummary(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	summary := s.trie.Root().String()
	s.mu.RUnlock()

	s.respond(w, http.StatusOK, map[string]string{
		"root": summary,
	})
}
