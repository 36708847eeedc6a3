package httpserver

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
)

type Options struct {
	CORSOrigins []string
	ContactRPS  int
	Timeout     time.Duration
}

type Server struct {
	mux  *chi.Mux
	opts Options
}

func New(opts Options) *Server {
	if opts.Timeout <= 0 {
		opts.Timeout = 15 * time.Second
	}
	if len(opts.CORSOrigins) == 0 {
		opts.CORSOrigins = []string{"*"}
	}
	m := chi.NewRouter()

	// All middlewares go here (before any routes are added)
	m.Use(PeerAddr)
	m.Use(chimw.RealIP)
	m.Use(chimw.RequestID)
	m.Use(chimw.Recoverer)
	m.Use(CORS(opts.CORSOrigins))
	m.Use(Timeout(opts.Timeout))
	m.Use(Metrics)
	m.Use(Logger(log.Logger))

	return &Server{mux: m, opts: opts}
}

func (s *Server) Mux() http.Handler { return s.mux }

// Mount attaches any extra handler (e.g. /metrics) to the router.
func (s *Server) Mount(path string, h http.Handler) {
	s.mux.Handle(path, h)
}
