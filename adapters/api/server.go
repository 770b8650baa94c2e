package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"bayesgrid/app"
	"bayesgrid/internal"
	"bayesgrid/internal/config"
	"bayesgrid/ports"
)

// Server exposes the estimation services as a read-only JSON API for
// charting frontends. Every endpoint is a pure computation over request
// parameters; nothing is stored. Query parameters omitted by the caller
// fall back to the configured estimation and sampling defaults.
type Server struct {
	router   *chi.Mux
	cfg      *config.Config
	estimate *app.EstimateService
	compare  *app.CompareService
	sweep    *app.SweepService
	laplace  ports.LaplacePort
	sampler  ports.SamplerPort
	log      *internal.Logger
}

// NewServer wires the services into a chi router.
func NewServer(
	cfg *config.Config,
	estimate *app.EstimateService,
	compare *app.CompareService,
	sweep *app.SweepService,
	laplace ports.LaplacePort,
	sampler ports.SamplerPort,
	log *internal.Logger,
) *Server {
	s := &Server{
		cfg:      cfg,
		estimate: estimate,
		compare:  compare,
		sweep:    sweep,
		laplace:  laplace,
		sampler:  sampler,
		log:      log,
	}
	s.router = chi.NewRouter()
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router.Get("/healthz", s.handleHealth)
	s.router.Route("/v1", func(r chi.Router) {
		r.Get("/estimate", s.handleEstimate)
		r.Get("/laplace", s.handleLaplace)
		r.Get("/compare", s.handleCompare)
		r.Get("/sweep", s.handleSweep)
		r.Get("/sample", s.handleSample)
	})
}

// Handler returns the underlying HTTP handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start blocks serving HTTP on the given port.
func (s *Server) Start(port string) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      s.router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
	s.log.Info("api server listening on :%s", port)
	return srv.ListenAndServe()
}
