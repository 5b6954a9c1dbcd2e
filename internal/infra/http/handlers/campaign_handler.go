package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/xavierca1/ligue-outreach/internal/entity"
	"github.com/xavierca1/ligue-outreach/internal/infra/http/middleware"
	"github.com/xavierca1/ligue-outreach/internal/usecase"
)

type CampaignHandler struct {
	CreateUC     *usecase.CreateCampaignUseCase
	StartUC      *usecase.StartCampaignUseCase
	EngineUC     *usecase.TriggerEngineUseCase
	CampaignRepo entity.CampaignRepositoryInterface
}

func NewCampaignHandler(
	createUC *usecase.CreateCampaignUseCase,
	startUC *usecase.StartCampaignUseCase,
	engineUC *usecase.TriggerEngineUseCase,
	repo entity.CampaignRepositoryInterface,
) *CampaignHandler {
	return &CampaignHandler{
		CreateUC:     createUC,
		StartUC:      startUC,
		EngineUC:     engineUC,
		CampaignRepo: repo,
	}
}

func (h *CampaignHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateCampaignInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "invalid JSON body")
		return
	}

	userID := middleware.UserIDFromContext(r.Context())
	output, err := h.CreateUC.Execute(r.Context(), userID, input)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, output)
}

func (h *CampaignHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())

	campaigns, err := h.CampaignRepo.ListByUser(r.Context(), userID)
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "DATABASE_ERROR", "could not list campaigns")
		return
	}
	if campaigns == nil {
		campaigns = []*entity.Campaign{}
	}

	writeJSON(w, http.StatusOK, campaigns)
}

func (h *CampaignHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())
	campaignID := chi.URLParam(r, "campaignId")

	campaign, err := h.CampaignRepo.FindByID(r.Context(), userID, campaignID)
	if err != nil {
		if errors.Is(err, entity.ErrCampaignNotFound) {
			writeErrorResponse(w, http.StatusNotFound, "CAMPAIGN_NOT_FOUND", "campaign not found")
			return
		}
		writeErrorResponse(w, http.StatusInternalServerError, "DATABASE_ERROR", "could not load campaign")
		return
	}

	writeJSON(w, http.StatusOK, campaign)
}

func (h *CampaignHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())
	campaignID := chi.URLParam(r, "campaignId")

	var input usecase.CreateCampaignInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "invalid JSON body")
		return
	}

	campaign, err := h.CampaignRepo.FindByID(r.Context(), userID, campaignID)
	if err != nil {
		writeErrorResponse(w, http.StatusNotFound, "CAMPAIGN_NOT_FOUND", "campaign not found")
		return
	}

	campaign.Name = input.Name
	campaign.Offer = input.Offer
	campaign.CalendarLink = input.CalendarLink
	campaign.Goal = input.Goal

	if err := campaign.Validate(); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	if err := h.CampaignRepo.Update(r.Context(), campaign); err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "DATABASE_ERROR", "could not update campaign")
		return
	}

	writeJSON(w, http.StatusOK, campaign)
}

func (h *CampaignHandler) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())
	campaignID := chi.URLParam(r, "campaignId")

	var input struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "invalid JSON body")
		return
	}

	if !entity.IsValidCampaignStatus(input.Status) {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_STATUS", "status must be DRAFT, ACTIVE, PAUSED or COMPLETED")
		return
	}

	if err := h.CampaignRepo.UpdateStatus(r.Context(), userID, campaignID, input.Status); err != nil {
		if errors.Is(err, entity.ErrCampaignNotFound) {
			writeErrorResponse(w, http.StatusNotFound, "CAMPAIGN_NOT_FOUND", "campaign not found")
			return
		}
		writeErrorResponse(w, http.StatusInternalServerError, "DATABASE_ERROR", "could not update status")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"id": campaignID, "status": input.Status})
}

func (h *CampaignHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())
	campaignID := chi.URLParam(r, "campaignId")

	if err := h.CampaignRepo.Delete(r.Context(), userID, campaignID); err != nil {
		if errors.Is(err, entity.ErrCampaignNotFound) {
			writeErrorResponse(w, http.StatusNotFound, "CAMPAIGN_NOT_FOUND", "campaign not found")
			return
		}
		writeErrorResponse(w, http.StatusInternalServerError, "DATABASE_ERROR", "could not delete campaign")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *CampaignHandler) HandleStart(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())
	campaignID := chi.URLParam(r, "campaignId")

	output, err := h.StartUC.Execute(r.Context(), userID, campaignID)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	middleware.RecordCampaignStarted()
	if output.WebhookWarning != "" {
		middleware.RecordWebhookFailure("start_campaign")
	}

	writeJSON(w, http.StatusOK, output)
}

func (h *CampaignHandler) HandleTriggerEngine(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())
	campaignID := chi.URLParam(r, "campaignId")

	var input struct {
		Channel            string `json:"channel"`
		TrainingResourceID string `json:"training_resource_id"`
	}
	// Body is optional; an empty trigger hits all channels.
	_ = json.NewDecoder(r.Body).Decode(&input)

	err := h.EngineUC.Execute(r.Context(), usecase.TriggerEngineInput{
		CampaignID:         campaignID,
		UserID:             userID,
		Channel:            input.Channel,
		TrainingResourceID: input.TrainingResourceID,
	})
	if err != nil {
		if usecase.IsTechnicalError(err) {
			middleware.RecordWebhookFailure("trigger_engine")
			writeErrorResponse(w, http.StatusBadGateway, "WEBHOOK_FAILED", "channel engine webhook failed")
			return
		}
		writeUseCaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"triggered": true})
}
