package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/xavierca1/ligue-outreach/internal/entity"
	"github.com/xavierca1/ligue-outreach/internal/infra/http/handlers"
	"github.com/xavierca1/ligue-outreach/internal/infra/http/middleware"
	"github.com/xavierca1/ligue-outreach/internal/usecase"
)

func authRequest(method, target string, body io.Reader) *http.Request {
	req := httptest.NewRequest(method, target, body)
	return req.WithContext(middleware.WithUser(req.Context(), "user-1", entity.RoleMember))
}

func testCampaign(userID string) *entity.Campaign {
	c, _ := entity.NewCampaign(userID, "Q3 Outreach", "demo call", "https://cal.example.com/me", "book 20 calls")
	return c
}

func campaignRouter(h *handlers.CampaignHandler) *chi.Mux {
	r := chi.NewRouter()
	r.Post("/campaigns", h.HandleCreate)
	r.Get("/campaigns", h.HandleList)
	r.Get("/campaigns/{campaignId}", h.HandleGet)
	r.Put("/campaigns/{campaignId}", h.HandleUpdate)
	r.Patch("/campaigns/{campaignId}/status", h.HandleUpdateStatus)
	r.Delete("/campaigns/{campaignId}", h.HandleDelete)
	r.Post("/campaigns/{campaignId}/start", h.HandleStart)
	return r
}

func TestHandleCreateCampaign(t *testing.T) {
	repo := new(MockCampaignRepository)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)
	h := handlers.NewCampaignHandler(usecase.NewCreateCampaignUseCase(repo), nil, nil, repo)

	body := bytes.NewBufferString(`{"name":"Q3 Outreach","offer":"demo call"}`)
	rec := httptest.NewRecorder()
	campaignRouter(h).ServeHTTP(rec, authRequest("POST", "/campaigns", body))

	assert.Equal(t, http.StatusCreated, rec.Code)

	var out usecase.CreateCampaignOutput
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, entity.CampaignStatusDraft, out.Status)
}

func TestHandleCreateCampaignRejectsInvalidBody(t *testing.T) {
	repo := new(MockCampaignRepository)
	h := handlers.NewCampaignHandler(usecase.NewCreateCampaignUseCase(repo), nil, nil, repo)

	rec := httptest.NewRecorder()
	campaignRouter(h).ServeHTTP(rec, authRequest("POST", "/campaigns", bytes.NewBufferString("not json")))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_JSON")
}

func TestHandleCreateCampaignValidationError(t *testing.T) {
	repo := new(MockCampaignRepository)
	h := handlers.NewCampaignHandler(usecase.NewCreateCampaignUseCase(repo), nil, nil, repo)

	rec := httptest.NewRecorder()
	campaignRouter(h).ServeHTTP(rec, authRequest("POST", "/campaigns", bytes.NewBufferString(`{"name":""}`)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestHandleGetCampaignScopedToUser(t *testing.T) {
	repo := new(MockCampaignRepository)
	repo.On("FindByID", mock.Anything, "user-1", "camp-1").Return(nil, entity.ErrCampaignNotFound)
	h := handlers.NewCampaignHandler(nil, nil, nil, repo)

	rec := httptest.NewRecorder()
	campaignRouter(h).ServeHTTP(rec, authRequest("GET", "/campaigns/camp-1", nil))

	// Another user's campaign reads as missing, never as forbidden.
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "CAMPAIGN_NOT_FOUND")
}

func TestHandleListCampaignsReturnsEmptyArray(t *testing.T) {
	repo := new(MockCampaignRepository)
	repo.On("ListByUser", mock.Anything, "user-1").Return(nil, nil)
	h := handlers.NewCampaignHandler(nil, nil, nil, repo)

	rec := httptest.NewRecorder()
	campaignRouter(h).ServeHTTP(rec, authRequest("GET", "/campaigns", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]\n", rec.Body.String())
}

func TestHandleUpdateStatusRejectsUnknownStatus(t *testing.T) {
	repo := new(MockCampaignRepository)
	h := handlers.NewCampaignHandler(nil, nil, nil, repo)

	body := bytes.NewBufferString(`{"status":"ARCHIVED"}`)
	rec := httptest.NewRecorder()
	campaignRouter(h).ServeHTTP(rec, authRequest("PATCH", "/campaigns/camp-1/status", body))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_STATUS")
	repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestHandleStartCampaignConflictWhenActive(t *testing.T) {
	campaignRepo := new(MockCampaignRepository)
	leadRepo := new(MockLeadRepository)
	campaign := testCampaign("user-1")
	campaign.Status = entity.CampaignStatusActive
	campaignRepo.On("FindByID", mock.Anything, "user-1", campaign.ID).Return(campaign, nil)

	startUC := usecase.NewStartCampaignUseCase(campaignRepo, leadRepo, nil, nil)
	h := handlers.NewCampaignHandler(nil, startUC, nil, campaignRepo)

	rec := httptest.NewRecorder()
	campaignRouter(h).ServeHTTP(rec, authRequest("POST", "/campaigns/"+campaign.ID+"/start", nil))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "ALREADY_ACTIVE")
}

func TestHandleDeleteCampaign(t *testing.T) {
	repo := new(MockCampaignRepository)
	repo.On("Delete", mock.Anything, "user-1", "camp-1").Return(nil)
	h := handlers.NewCampaignHandler(nil, nil, nil, repo)

	rec := httptest.NewRecorder()
	campaignRouter(h).ServeHTTP(rec, authRequest("DELETE", "/campaigns/camp-1", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
}
