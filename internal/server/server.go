// Package server exposes the apero clipboard API over HTTP.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"

	"github.com/GustavoCaso/apero/internal/config"
	"github.com/GustavoCaso/apero/internal/crypto"
	"github.com/GustavoCaso/apero/internal/store"
)

const (
	maxBodySize     = 1 << 20 // sealed payloads larger than this are rejected
	shutdownTimeout = 5 * time.Second
	readTimeout     = 10 * time.Second
)

// Server handles the /api/v1 endpoints.
type Server struct {
	conf   config.ServerConfig
	store  store.Store
	logger zerolog.Logger
	router chi.Router
}

// New creates a server. conf is expected to be validated.
func New(conf config.ServerConfig, st store.Store, logger zerolog.Logger) *Server {
	s := &Server{
		conf:   conf,
		store:  st,
		logger: logger,
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()

	r.Use(hlog.NewHandler(s.logger))
	r.Use(hlog.RemoteAddrHandler("remote"))
	r.Use(hlog.AccessHandler(func(req *http.Request, status, size int, elapsed time.Duration) {
		hlog.FromRequest(req).Info().
			Str("method", req.Method).
			Str("path", req.URL.Path).
			Int("status", status).
			Int("size", size).
			Dur("elapsed", elapsed).
			Msg("request")
	}))

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		responseStatusCode(w, http.StatusNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		responseStatusCode(w, http.StatusMethodNotAllowed)
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(httprate.Limit(
			s.conf.RequestsPerMinute(),
			time.Minute,
			httprate.WithKeyFuncs(httprate.KeyByIP),
			httprate.WithLimitHandler(func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Retry-After", "60")
				responseStatusCode(w, http.StatusTooManyRequests)
			}),
		))

		r.Post("/copy", s.handleCopy)
		r.Delete("/move", s.handleMove)
		r.Post("/paste", s.handlePaste)
		r.Post("/list", s.handleList)
	})

	return r
}

func (s *Server) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	s.router.ServeHTTP(w, req)
}

// Run listens on the configured address until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:              s.conf.ListenAddr,
		Handler:           s,
		ReadHeaderTimeout: readTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", s.conf.ListenAddr).Msg("listening")
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	s.logger.Info().Msg("shutting down")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

type validator interface {
	Validate() error
}

// openRequest reads the sealed body of req into payload. On failure the
// response is written and false is returned.
func (s *Server) openRequest(w http.ResponseWriter, req *http.Request, name string, payload validator) bool {
	logger := hlog.FromRequest(req)

	data, err := io.ReadAll(http.MaxBytesReader(w, req.Body, maxBodySize))
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			responseStatusCode(w, http.StatusRequestEntityTooLarge)
			return false
		}
		responseStatusCode(w, http.StatusInternalServerError)
		return false
	}
	defer req.Body.Close()

	data, ok := crypto.SecretBoxOpen(data, s.conf.PSKey)
	if !ok {
		logger.Warn().Msg("unable to open box")
		responseStatusCode(w, http.StatusBadRequest)
		return false
	}

	if err := json.Unmarshal(data, payload); err != nil {
		logger.Warn().Err(err).Msgf("unable to unmarshal %s request payload", name)
		responseString(w, "invalid "+name+" request", http.StatusBadRequest)
		return false
	}
	if err := payload.Validate(); err != nil {
		logger.Warn().Err(err).Msgf("%s request payload invalid", name)
		responseString(w, "invalid "+name+" request", http.StatusBadRequest)
		return false
	}

	return true
}

func (s *Server) verify(w http.ResponseWriter, req *http.Request, content, signature []byte) bool {
	if !crypto.Verify(s.conf.SignPublicKey, content, signature) {
		hlog.FromRequest(req).Warn().Msg("invalid signature")
		responseString(w, "invalid signature", http.StatusBadRequest)
		return false
	}
	return true
}

// respondSealed seals content with the pre-shared key and writes it.
func (s *Server) respondSealed(w http.ResponseWriter, req *http.Request, content []byte, code int) {
	data, err := crypto.SecretBoxSeal(content, s.conf.PSKey)
	if err != nil {
		hlog.FromRequest(req).Error().Err(err).Msg("unable to seal response")
		responseString(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/octet-stream")
	w.WriteHeader(code)
	_, _ = w.Write(data)
}

func responseStatusCode(w http.ResponseWriter, code int) {
	w.WriteHeader(code)
	_, _ = w.Write([]byte(http.StatusText(code)))
}

func responseString(w http.ResponseWriter, s string, code int) {
	w.WriteHeader(code)
	_, _ = w.Write([]byte(s))
}
