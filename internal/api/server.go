package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	_ "github.com/limbo/ramadan/docs"
	"github.com/limbo/ramadan/internal/service"
	"github.com/limbo/ramadan/pkg/cleanup"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

const defaultRequestTimeout = 10 * time.Second

type Server struct {
	mx                *chi.Mux
	srv               *http.Server
	userService       service.UserServiceI
	entriesService    service.EntriesServiceI
	challengesService service.ChallengesServiceI
	progressService   service.ProgressServiceI
	jwtService        JWTServiceI
	requestTimeout    time.Duration
}

type ServicesList struct {
	UserService       service.UserServiceI
	EntriesService    service.EntriesServiceI
	ChallengesService service.ChallengesServiceI
	ProgressService   service.ProgressServiceI
	JwtService        JWTServiceI
	RequestTimeout    time.Duration
}

func New(servicesOptions *ServicesList) *Server {
	s := &Server{
		mx:                chi.NewMux(),
		userService:       servicesOptions.UserService,
		entriesService:    servicesOptions.EntriesService,
		challengesService: servicesOptions.ChallengesService,
		progressService:   servicesOptions.ProgressService,
		jwtService:        servicesOptions.JwtService,
		requestTimeout:    servicesOptions.RequestTimeout,
	}
	if s.requestTimeout <= 0 {
		s.requestTimeout = defaultRequestTimeout
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mx.Use(s.RequestIDMiddleware, s.SettingUpLoggerMiddleware)
	s.mx.Handle("/metrics", promhttp.Handler())
	s.mx.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Route("/calendar", func(r chi.Router) {
			r.Get("/hijri", s.ToHijri)
			r.Get("/gregorian", s.ToGregorian)
			r.Get("/ramadan/{year}", s.RamadanBounds)
		})
		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware, s.LoggerExtensionMiddleware)

			r.Get("/entries/today", s.GetToday)
			r.Get("/entries/date/{date}", s.GetEntryByDate)
			r.Get("/entries/{id}", s.GetEntry)
			r.Get("/entries/{id}/lock", s.GetEntryLock)
			r.Put("/entries/{id}/fields/{key}", s.SaveField)
			r.Post("/entries/{id}/reset", s.ResetDay)

			r.Put("/settings/timezone", s.UpdateTimezone)

			r.Post("/challenges", s.CreateChallenge)
			r.Get("/challenges", s.ListChallenges)
			r.Post("/challenges/{id}/deactivate", s.DeactivateChallenge)
			r.Post("/challenges/{id}/periods", s.EnsurePeriods)
			r.Get("/challenges/{id}/periods", s.ListPeriods)

			r.Put("/periods/{id}/progress/{date}", s.RecordProgress)
			r.Get("/periods/{id}/status", s.GetPeriodStatus)
		})
	})
}

// ServeHTTP exposes the router, mostly for httptest.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mx.ServeHTTP(w, r)
}

// Run blocks serving on addr until the server is shut down through cleanup.
func (s *Server) Run(addr string) error {
	s.srv = &http.Server{
		Addr:              addr,
		Handler:           s.mx,
		ReadHeaderTimeout: 5 * time.Second,
	}
	cleanup.Register(&cleanup.Job{
		Name: "shutting down http server",
		F: func(ctx context.Context) error {
			return s.srv.Shutdown(ctx)
		},
	})
	slog.Info("http server starting", slog.String("address", addr))
	err := s.srv.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (s *Server) requestContext(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), s.requestTimeout)
}
