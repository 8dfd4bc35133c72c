package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/quantum-travel/quantumchat/pkg/usecase"
)

const defaultMaxUploadSize = 10 << 20 // 10MiB

type Server struct {
	router        *chi.Mux
	uc            *usecase.UseCases
	maxUploadSize int64
}

type Options func(*Server)

// WithMaxUploadSize caps the accepted size of uploaded files
func WithMaxUploadSize(n int64) Options {
	return func(s *Server) {
		s.maxUploadSize = n
	}
}

func New(uc *usecase.UseCases, opts ...Options) *Server {
	r := chi.NewRouter()

	s := &Server{
		router:        r,
		uc:            uc,
		maxUploadSize: defaultMaxUploadSize,
	}
	for _, opt := range opts {
		opt(s)
	}

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(accessLogger)
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", s.handleHealth)
		r.Get("/models", s.handleModels)
		r.Post("/chat", s.handleChat)
		r.Get("/history/{conversation_id}", s.handleHistory)
		r.Post("/upload", s.handleUpload)
		r.Get("/stats", s.handleStats)
	})

	r.Get("/ws/{client_id}", s.handleWebSocket)

	r.Get("/", s.handleRoot)

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}
