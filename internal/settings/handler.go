// Package settings exposes the stored UI preferences. Currently that is
// only the theme.
package settings

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/geraietalase/gerai-pos/internal/domain"
	"github.com/geraietalase/gerai-pos/internal/store"
)

type Handler struct {
	store  store.Store
	logger *slog.Logger
}

func NewHandler(st store.Store, logger *slog.Logger) *Handler {
	return &Handler{store: st, logger: logger}
}

type themePayload struct {
	Theme domain.Theme `json:"theme"`
}

func (h *Handler) HandleGetTheme(w http.ResponseWriter, r *http.Request) {
	theme, err := h.store.LoadTheme(r.Context())
	if err != nil {
		h.logger.Error("failed to load theme", "error", err)
		h.writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.writeJSON(w, http.StatusOK, themePayload{Theme: theme})
}

func (h *Handler) HandlePutTheme(w http.ResponseWriter, r *http.Request) {
	var payload themePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if payload.Theme != domain.ThemeLight && payload.Theme != domain.ThemeDark {
		h.writeError(w, http.StatusBadRequest, "invalid theme")
		return
	}

	if err := h.store.SaveTheme(r.Context(), payload.Theme); err != nil {
		h.logger.Error("failed to save theme", "error", err)
		h.writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.logger.Info("theme updated", "theme", payload.Theme)
	h.writeJSON(w, http.StatusOK, payload)
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]string{"error": message})
}
