package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/Duaa3/seat-swarm/pkg/core/services"
)

// Handler serves the seat assignment API
type Handler struct {
	planner *services.Planner
	logger  *zap.Logger

	Mux *chi.Mux
}

// NewHandler creates a handler with every route registered
func NewHandler(planner *services.Planner, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	h := &Handler{
		planner: planner,
		logger:  logger,
		Mux:     chi.NewRouter(),
	}
	h.registerRoutes()
	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.Mux.ServeHTTP(w, r)
}

func (h *Handler) registerRoutes() {
	h.Mux.Use(h.requestLogger)
	h.Mux.Use(h.recoverer)

	h.Mux.Get("/health", h.Health)
	h.Mux.Post("/assign", h.Assign)
	h.Mux.Post("/optimize/schedule", h.ScheduleWeek)
	h.Mux.Post("/predict/{kind}", h.Predict)

	h.Mux.NotFound(func(w http.ResponseWriter, r *http.Request) {
		h.writeJSON(w, r, http.StatusNotFound, errorBody{Detail: "not found"})
	})
	h.Mux.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		h.writeJSON(w, r, http.StatusMethodNotAllowed, errorBody{Detail: "method not allowed"})
	})
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, http.StatusOK, h.planner.Health())
}

func (h *Handler) Assign(w http.ResponseWriter, r *http.Request) {
	var req services.AssignRequest
	if err := h.readJSON(w, r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	resp, err := h.planner.AssignSeats(r.Context(), req)
	if err != nil {
		h.serviceError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, resp)
}

func (h *Handler) ScheduleWeek(w http.ResponseWriter, r *http.Request) {
	var req services.ScheduleRequest
	if err := h.readJSON(w, r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	resp, err := h.planner.ScheduleWeek(r.Context(), req)
	if err != nil {
		h.serviceError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, resp)
}

func (h *Handler) Predict(w http.ResponseWriter, r *http.Request) {
	kind := services.PredictionKind(chi.URLParam(r, "kind"))

	var req services.PredictRequest
	if err := h.readJSON(w, r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	prediction, err := h.planner.PredictRequest(r.Context(), kind, req)
	if err != nil {
		h.serviceError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, prediction)
}
