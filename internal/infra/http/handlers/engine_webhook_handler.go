package handlers

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"

	"github.com/xavierca1/ligue-outreach/internal/usecase"
)

// EngineWebhookHandler receives status callbacks from the channel engine.
// The engine authenticates with a shared token header, not a user session.
type EngineWebhookHandler struct {
	EventUC *usecase.RecordChannelEventUseCase
	Token   string
}

func NewEngineWebhookHandler(eventUC *usecase.RecordChannelEventUseCase, token string) *EngineWebhookHandler {
	return &EngineWebhookHandler{EventUC: eventUC, Token: token}
}

func (h *EngineWebhookHandler) HandleEvent(w http.ResponseWriter, r *http.Request) {
	if h.Token == "" {
		writeErrorResponse(w, http.StatusServiceUnavailable, "NOT_CONFIGURED", "engine webhook token is not configured")
		return
	}
	got := r.Header.Get("X-Engine-Token")
	if subtle.ConstantTimeCompare([]byte(got), []byte(h.Token)) != 1 {
		writeErrorResponse(w, http.StatusUnauthorized, "INVALID_TOKEN", "invalid engine token")
		return
	}

	var input usecase.RecordChannelEventInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "invalid JSON body")
		return
	}

	output, err := h.EventUC.Execute(r.Context(), input)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, output)
}
