package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/xavierca1/ligue-outreach/internal/entity"
	"github.com/xavierca1/ligue-outreach/internal/infra/http/middleware"
	"github.com/xavierca1/ligue-outreach/internal/usecase"
)

type SequenceHandler struct {
	SequenceRepo entity.SequenceRepositoryInterface
	CampaignRepo entity.CampaignRepositoryInterface
	TestSendUC   *usecase.SendTestStepUseCase
}

func NewSequenceHandler(
	sequenceRepo entity.SequenceRepositoryInterface,
	campaignRepo entity.CampaignRepositoryInterface,
	testSendUC *usecase.SendTestStepUseCase,
) *SequenceHandler {
	return &SequenceHandler{
		SequenceRepo: sequenceRepo,
		CampaignRepo: campaignRepo,
		TestSendUC:   testSendUC,
	}
}

type sequenceStepInput struct {
	Channel    string `json:"channel"`
	Content    string `json:"content"`
	DelayHours int    `json:"delay_hours"`
}

func (h *SequenceHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())
	campaignID := chi.URLParam(r, "campaignId")

	// Ownership check first; steps have no user_id of their own.
	if _, err := h.CampaignRepo.FindByID(r.Context(), userID, campaignID); err != nil {
		writeErrorResponse(w, http.StatusNotFound, "CAMPAIGN_NOT_FOUND", "campaign not found")
		return
	}

	steps, err := h.SequenceRepo.ListByCampaign(r.Context(), campaignID)
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "DATABASE_ERROR", "could not load sequence")
		return
	}
	if steps == nil {
		steps = []*entity.SequenceStep{}
	}

	writeJSON(w, http.StatusOK, steps)
}

// HandleReplace takes the whole ordered step list; order is the array
// order, so the UI never has to manage step_order itself.
func (h *SequenceHandler) HandleReplace(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())
	campaignID := chi.URLParam(r, "campaignId")

	if _, err := h.CampaignRepo.FindByID(r.Context(), userID, campaignID); err != nil {
		writeErrorResponse(w, http.StatusNotFound, "CAMPAIGN_NOT_FOUND", "campaign not found")
		return
	}

	var inputs []sequenceStepInput
	if err := json.NewDecoder(r.Body).Decode(&inputs); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "expected a JSON array of steps")
		return
	}

	steps := make([]*entity.SequenceStep, 0, len(inputs))
	for i, in := range inputs {
		step, err := entity.NewSequenceStep(campaignID, i+1, in.Channel, in.Content, in.DelayHours)
		if err != nil {
			writeErrorResponse(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
			return
		}
		steps = append(steps, step)
	}

	if err := h.SequenceRepo.Replace(r.Context(), campaignID, steps); err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "DATABASE_ERROR", "could not save sequence")
		return
	}

	writeJSON(w, http.StatusOK, steps)
}

func (h *SequenceHandler) HandleTestSend(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())
	campaignID := chi.URLParam(r, "campaignId")

	var input usecase.SendTestStepInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "invalid JSON body")
		return
	}
	input.CampaignID = campaignID

	if err := h.TestSendUC.Execute(r.Context(), userID, input); err != nil {
		if usecase.IsTechnicalError(err) {
			writeErrorResponse(w, http.StatusBadGateway, "SEND_FAILED", err.Error())
			return
		}
		writeUseCaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"sent": true})
}
