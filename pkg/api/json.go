package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/Duaa3/seat-swarm/pkg/core/placement"
	"github.com/Duaa3/seat-swarm/pkg/core/services"
)

const maxBodyBytes = 10 << 20

type errorBody struct {
	Detail string `json:"detail"`
}

func (h *Handler) readJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("request body is empty")
		}
		return fmt.Errorf("malformed JSON body: %w", err)
	}
	return nil
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		h.logger.Error("Failed to encode response", zap.String("path", r.URL.Path), zap.Error(err))
		http.Error(w, `{"detail":"internal server error"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(append(body, '\n'))
}

func (h *Handler) badRequest(w http.ResponseWriter, r *http.Request, err error) {
	h.writeJSON(w, r, http.StatusBadRequest, errorBody{Detail: err.Error()})
}

func (h *Handler) internalServerError(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.Error("Internal server error", zap.String("method", r.Method), zap.String("path", r.URL.Path), zap.Error(err))
	h.writeJSON(w, r, http.StatusInternalServerError, errorBody{Detail: "internal server error"})
}

// serviceError maps caller mistakes and configuration problems to 400 and anything else to 500
func (h *Handler) serviceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidRequest),
		errors.Is(err, services.ErrRunStoreUnavailable),
		errors.Is(err, placement.ErrOptimalSolverUnavailable):
		h.badRequest(w, r, err)
	default:
		h.internalServerError(w, r, err)
	}
}
