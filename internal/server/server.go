// internal/server/server.go
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	apperrors "design-missions/internal/common/errors"
	"design-missions/internal/common/logger"
	"design-missions/internal/mission"
	"design-missions/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Orchestrator is the read side the ops endpoints need.
type Orchestrator interface {
	Status() mission.Status
	List() []models.BusinessMission
	Mission(id string) (models.BusinessMission, error)
	Result(id string) (*models.DesignMissionResult, error)
}

// Check is a named readiness check.
type Check struct {
	Name string
	Ping func(ctx context.Context) error
}

type Server struct {
	orchestrator Orchestrator
	checks       []Check
	logger       logger.Logger
}

func New(o Orchestrator, checks []Check, log logger.Logger) *Server {
	return &Server{orchestrator: o, checks: checks, logger: log}
}

// Handler builds the ops router.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/health", s.health)
	r.Get("/ready", s.ready)
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/status", s.status)

	r.Route("/missions", func(r chi.Router) {
		r.Get("/", s.listMissions)
		r.Get("/{id}", s.getMission)
		r.Get("/{id}/result", s.getResult)
	})
	return r
}

// ListenAndServe serves until ctx is done, then shuts down within shutdownTimeout.
func (s *Server) ListenAndServe(ctx context.Context, addr string, shutdownTimeout time.Duration) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("ops server listening", map[string]interface{}{"address": addr})
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	failed := map[string]string{}
	for _, c := range s.checks {
		if err := c.Ping(ctx); err != nil {
			failed[c.Name] = err.Error()
		}
	}
	if len(failed) > 0 {
		s.logger.Warn("readiness check failed", map[string]interface{}{"failed": failed})
		writeJSON(w, http.StatusServiceUnavailable, map[string]interface{}{"status": "unavailable", "failed": failed})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

func (s *Server) status(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.orchestrator.Status())
}

func (s *Server) listMissions(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.orchestrator.List())
}

func (s *Server) getMission(w http.ResponseWriter, r *http.Request) {
	m, err := s.orchestrator.Mission(chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, m)
}

func (s *Server) getResult(w http.ResponseWriter, r *http.Request) {
	res, err := s.orchestrator.Result(chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	stdErr := apperrors.Normalize(err)
	code := http.StatusInternalServerError
	switch stdErr.Code {
	case apperrors.ErrCodeMissionNotFound:
		code = http.StatusNotFound
	case apperrors.ErrCodeValidationFailed, apperrors.ErrCodeInvalidCommand:
		code = http.StatusBadRequest
	}
	writeJSON(w, code, stdErr)
}

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
