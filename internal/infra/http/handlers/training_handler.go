package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/xavierca1/ligue-outreach/internal/entity"
	"github.com/xavierca1/ligue-outreach/internal/infra/http/middleware"
)

// 5 MB cap on training files; these end up inline in engine webhooks.
const maxTrainingFileSize = 5 << 20

type TrainingHandler struct {
	TrainingRepo entity.TrainingRepositoryInterface
	CampaignRepo entity.CampaignRepositoryInterface
}

func NewTrainingHandler(trainingRepo entity.TrainingRepositoryInterface, campaignRepo entity.CampaignRepositoryInterface) *TrainingHandler {
	return &TrainingHandler{TrainingRepo: trainingRepo, CampaignRepo: campaignRepo}
}

type trainingResourceInput struct {
	Kind    string `json:"kind"`
	Title   string `json:"title"`
	Content string `json:"content"`
	URL     string `json:"url"`
}

// HandleCreate accepts JSON for NOTE/LINK resources and multipart for
// FILE uploads.
func (h *TrainingHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())
	campaignID := chi.URLParam(r, "campaignId")

	if _, err := h.CampaignRepo.FindByID(r.Context(), userID, campaignID); err != nil {
		writeErrorResponse(w, http.StatusNotFound, "CAMPAIGN_NOT_FOUND", "campaign not found")
		return
	}

	var resource *entity.TrainingResource
	var err error

	if isMultipart(r) {
		resource, err = h.fileResourceFromUpload(r, userID, campaignID)
	} else {
		resource, err = resourceFromJSON(r, userID, campaignID)
	}
	if err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	if err := resource.Validate(); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	if err := h.TrainingRepo.Create(r.Context(), resource); err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "DATABASE_ERROR", "could not save resource")
		return
	}

	writeJSON(w, http.StatusCreated, resource)
}

func (h *TrainingHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())
	campaignID := chi.URLParam(r, "campaignId")

	resources, err := h.TrainingRepo.ListByCampaign(r.Context(), userID, campaignID)
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "DATABASE_ERROR", "could not list resources")
		return
	}
	if resources == nil {
		resources = []*entity.TrainingResource{}
	}

	writeJSON(w, http.StatusOK, resources)
}

func (h *TrainingHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())
	resourceID := chi.URLParam(r, "resourceId")

	resource, err := h.TrainingRepo.FindByID(r.Context(), userID, resourceID)
	if err != nil {
		if errors.Is(err, entity.ErrTrainingResourceNotFound) {
			writeErrorResponse(w, http.StatusNotFound, "RESOURCE_NOT_FOUND", "training resource not found")
			return
		}
		writeErrorResponse(w, http.StatusInternalServerError, "DATABASE_ERROR", "could not load resource")
		return
	}

	var input trainingResourceInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "invalid JSON body")
		return
	}

	// Kind is immutable; only the editable fields move.
	if input.Title != "" {
		resource.Title = input.Title
	}
	resource.Content = input.Content
	resource.URL = input.URL

	if err := resource.Validate(); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	if err := h.TrainingRepo.Update(r.Context(), resource); err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "DATABASE_ERROR", "could not update resource")
		return
	}

	writeJSON(w, http.StatusOK, resource)
}

func (h *TrainingHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())
	resourceID := chi.URLParam(r, "resourceId")

	if err := h.TrainingRepo.Delete(r.Context(), userID, resourceID); err != nil {
		if errors.Is(err, entity.ErrTrainingResourceNotFound) {
			writeErrorResponse(w, http.StatusNotFound, "RESOURCE_NOT_FOUND", "training resource not found")
			return
		}
		writeErrorResponse(w, http.StatusInternalServerError, "DATABASE_ERROR", "could not delete resource")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func resourceFromJSON(r *http.Request, userID, campaignID string) (*entity.TrainingResource, error) {
	var input trainingResourceInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		return nil, errors.New("invalid JSON body")
	}

	resource, err := entity.NewTrainingResource(campaignID, userID, input.Kind, input.Title)
	if err != nil {
		return nil, err
	}
	resource.Content = input.Content
	resource.URL = input.URL
	return resource, nil
}

func (h *TrainingHandler) fileResourceFromUpload(r *http.Request, userID, campaignID string) (*entity.TrainingResource, error) {
	if err := r.ParseMultipartForm(maxTrainingFileSize); err != nil {
		return nil, errors.New("expected a multipart upload with a 'file' part")
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		return nil, errors.New("'file' part is required")
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxTrainingFileSize+1))
	if err != nil {
		return nil, errors.New("could not read uploaded file")
	}
	if len(data) > maxTrainingFileSize {
		return nil, errors.New("file exceeds the 5MB limit")
	}

	title := r.FormValue("title")
	if title == "" {
		title = header.Filename
	}

	resource, err := entity.NewTrainingResource(campaignID, userID, entity.TrainingKindFile, title)
	if err != nil {
		return nil, err
	}
	resource.FileName = header.Filename
	resource.Content = string(data)
	return resource, nil
}

func isMultipart(r *http.Request) bool {
	ct := r.Header.Get("Content-Type")
	return len(ct) >= 19 && ct[:19] == "multipart/form-data"
}
