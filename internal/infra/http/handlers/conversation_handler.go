package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/xavierca1/ligue-outreach/internal/entity"
	"github.com/xavierca1/ligue-outreach/internal/infra/http/middleware"
)

type ConversationHandler struct {
	ConversationRepo entity.ConversationRepositoryInterface
	LeadRepo         entity.LeadRepositoryInterface
}

func NewConversationHandler(
	conversationRepo entity.ConversationRepositoryInterface,
	leadRepo entity.LeadRepositoryInterface,
) *ConversationHandler {
	return &ConversationHandler{ConversationRepo: conversationRepo, LeadRepo: leadRepo}
}

func (h *ConversationHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())
	leadID := chi.URLParam(r, "leadId")

	messages, err := h.ConversationRepo.ListByLead(r.Context(), userID, leadID)
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "DATABASE_ERROR", "could not load conversation")
		return
	}
	if messages == nil {
		messages = []*entity.ConversationMessage{}
	}

	writeJSON(w, http.StatusOK, messages)
}

type appendMessageInput struct {
	Direction  string    `json:"direction"`
	Channel    string    `json:"channel"`
	Body       string    `json:"body"`
	OccurredAt time.Time `json:"occurred_at"`
}

func (h *ConversationHandler) HandleAppend(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())
	leadID := chi.URLParam(r, "leadId")

	// Confirm the lead belongs to the caller before writing to its log.
	lead, err := h.LeadRepo.FindByID(r.Context(), userID, leadID)
	if err != nil {
		if errors.Is(err, entity.ErrLeadNotFound) {
			writeErrorResponse(w, http.StatusNotFound, "LEAD_NOT_FOUND", "lead not found")
			return
		}
		writeErrorResponse(w, http.StatusInternalServerError, "DATABASE_ERROR", "could not load lead")
		return
	}

	var input appendMessageInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "invalid JSON body")
		return
	}

	message, err := entity.NewConversationMessage(
		leadID, lead.CampaignID, input.Direction, input.Channel, input.Body, input.OccurredAt,
	)
	if err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	if err := h.ConversationRepo.Append(r.Context(), message); err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "DATABASE_ERROR", "could not save message")
		return
	}

	writeJSON(w, http.StatusCreated, message)
}
