package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/secmon-lab/atelier/pkg/domain/interfaces"
	"github.com/secmon-lab/atelier/pkg/domain/types"
	"github.com/secmon-lab/atelier/pkg/utils/errutil"
	"github.com/secmon-lab/atelier/pkg/utils/logging"
)

type Server struct {
	mux *chi.Mux
}

func safeWrite(w http.ResponseWriter, code int, body []byte) {
	w.WriteHeader(code)

	if _, err := w.Write(body); err != nil {
		logging.Default().Error("fail to write response", slog.Any("error", err))
	}
}

func respondJSON(w http.ResponseWriter, code int, body any) {
	data, err := json.Marshal(body)
	if err != nil {
		logging.Default().Error("fail to marshal response", slog.Any("error", err))
		safeWrite(w, http.StatusInternalServerError, []byte(`{"error":"internal error"}`))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	safeWrite(w, code, data)
}

func respondError(r *http.Request, w http.ResponseWriter, msg string, err error) {
	code := statusOf(err)
	if code >= http.StatusInternalServerError {
		errutil.HandleError(r.Context(), msg, err)
	} else {
		logging.From(r.Context()).Warn(msg, slog.Any("error", err))
	}
	respondJSON(w, code, map[string]string{"error": err.Error()})
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, types.ErrAuthRequired):
		return http.StatusUnauthorized
	case errors.Is(err, types.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, types.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, types.ErrInvalidInput), errors.Is(err, types.ErrInvalidOption):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

type config struct {
	maxUploadSize int64
}

type Option func(*config)

func WithMaxUploadSize(size int64) Option {
	return func(cfg *config) {
		cfg.maxUploadSize = size
	}
}

func New(uc interfaces.UseCase, options ...Option) *Server {
	cfg := &config{
		maxUploadSize: 32 << 20,
	}
	for _, opt := range options {
		opt(cfg)
	}

	r := chi.NewRouter()
	r.Use(preProcess)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		safeWrite(w, http.StatusOK, []byte("ok"))
	})
	r.Route("/api", func(r chi.Router) {
		r.Get("/artworks", handleListArtworks(uc))
		r.Post("/artworks", handlePublishArtwork(uc, cfg.maxUploadSize))
		r.Delete("/artworks/{id}", handleDeleteArtwork(uc))
		r.Get("/repo", handleRepoDetails(uc))
		r.Put("/settings", handleSaveSettings(uc))
	})

	return &Server{
		mux: r,
	}
}

func (x *Server) Mux() *chi.Mux {
	return x.mux
}
