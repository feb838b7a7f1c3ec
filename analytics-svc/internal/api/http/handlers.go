package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"housing-reviews/analytics-svc/internal/domain"
	"housing-reviews/analytics-svc/internal/service"
	"housing-reviews/logger"

	"github.com/gorilla/mux"
)

type Handler struct {
	Analytics service.AnalyticsInterface
}

func NewHandler(svc service.AnalyticsInterface) *Handler {
	return &Handler{Analytics: svc}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	api := r.PathPrefix("/api/analytics").Subrouter()
	api.HandleFunc("/top-rated", h.getTopRated).Methods("GET")
	api.HandleFunc("/trending", h.getTrending).Methods("GET")
	api.HandleFunc("/housings/{id}/stats", h.getHousingStats).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "analytics-svc",
		"timestamp": time.Now().UTC(),
	})
}

func (h *Handler) getTopRated(w http.ResponseWriter, r *http.Request) {
	data, err := h.Analytics.TopRated(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, data)
}

func (h *Handler) getTrending(w http.ResponseWriter, r *http.Request) {
	data, err := h.Analytics.Trending(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, data)
}

func (h *Handler) getHousingStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Analytics.HousingStats(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, domain.ErrHousingNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
		return
	}
	logger.Error(logger.EventDBError, "analytics query failed", logger.Fields(
		"path", r.URL.Path, "error", err.Error()))
	writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
}
