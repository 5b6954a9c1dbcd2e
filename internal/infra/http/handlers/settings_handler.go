package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/xavierca1/ligue-outreach/internal/entity"
	"github.com/xavierca1/ligue-outreach/internal/infra/http/middleware"
)

type SettingsHandler struct {
	SettingsRepo entity.SettingsRepositoryInterface
}

func NewSettingsHandler(repo entity.SettingsRepositoryInterface) *SettingsHandler {
	return &SettingsHandler{SettingsRepo: repo}
}

func (h *SettingsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())

	settings, err := h.SettingsRepo.Find(r.Context(), userID)
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "DATABASE_ERROR", "could not load settings")
		return
	}

	writeJSON(w, http.StatusOK, settings)
}

func (h *SettingsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())

	var input struct {
		Theme string `json:"theme"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "invalid JSON body")
		return
	}

	if input.Theme != entity.ThemeLight && input.Theme != entity.ThemeDark {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_THEME", "theme must be LIGHT or DARK")
		return
	}

	settings := &entity.UserSettings{UserID: userID, Theme: input.Theme}
	if err := h.SettingsRepo.Upsert(r.Context(), settings); err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "DATABASE_ERROR", "could not save settings")
		return
	}

	writeJSON(w, http.StatusOK, settings)
}
