package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/xavierca1/ligue-outreach/internal/entity"
	"github.com/xavierca1/ligue-outreach/internal/infra/integration/automation"
	"github.com/xavierca1/ligue-outreach/internal/infra/queue"
	"github.com/xavierca1/ligue-outreach/internal/usecase"
)

func newStartFixture() (*usecase.StartCampaignUseCase, *MockCampaignRepository, *MockLeadRepository, *MockAutomationService, *MockQueueProducer) {
	campaignRepo := new(MockCampaignRepository)
	leadRepo := new(MockLeadRepository)
	automationSvc := new(MockAutomationService)
	producer := new(MockQueueProducer)
	uc := usecase.NewStartCampaignUseCase(campaignRepo, leadRepo, automationSvc, producer)
	return uc, campaignRepo, leadRepo, automationSvc, producer
}

func campaignLeads(campaignID, userID string, n int) []*entity.UploadedLead {
	leads := make([]*entity.UploadedLead, 0, n)
	for i := 0; i < n; i++ {
		leads = append(leads, entity.NewUploadedLead(campaignID, userID))
	}
	return leads
}

func TestStartCampaignActivatesAndNotifies(t *testing.T) {
	uc, campaignRepo, leadRepo, automationSvc, producer := newStartFixture()
	campaign := ownedCampaign("user-1")

	campaignRepo.On("FindByID", mock.Anything, "user-1", campaign.ID).Return(campaign, nil)
	leadRepo.On("ListByCampaign", mock.Anything, "user-1", campaign.ID).
		Return(campaignLeads(campaign.ID, "user-1", 3), nil)
	campaignRepo.On("UpdateStatus", mock.Anything, "user-1", campaign.ID, entity.CampaignStatusActive).Return(nil)
	automationSvc.On("StartCampaign", mock.Anything, mock.MatchedBy(func(in automation.StartCampaignInput) bool {
		return in.CampaignID == campaign.ID && in.LeadCount == 3
	})).Return(nil)
	producer.On("PublishCampaignStart", mock.Anything, mock.MatchedBy(func(p queue.CampaignStartPayload) bool {
		return p.CampaignID == campaign.ID && p.Origin == "API"
	})).Return(nil)

	out, err := uc.Execute(context.Background(), "user-1", campaign.ID)

	require.NoError(t, err)
	assert.Equal(t, entity.CampaignStatusActive, out.Status)
	assert.Equal(t, 3, out.LeadCount)
	assert.Empty(t, out.WebhookWarning)
	campaignRepo.AssertExpectations(t)
	automationSvc.AssertExpectations(t)
	producer.AssertExpectations(t)
}

func TestStartCampaignWebhookFailureIsWarningOnly(t *testing.T) {
	uc, campaignRepo, leadRepo, automationSvc, producer := newStartFixture()
	campaign := ownedCampaign("user-1")

	campaignRepo.On("FindByID", mock.Anything, "user-1", campaign.ID).Return(campaign, nil)
	leadRepo.On("ListByCampaign", mock.Anything, "user-1", campaign.ID).
		Return(campaignLeads(campaign.ID, "user-1", 2), nil)
	campaignRepo.On("UpdateStatus", mock.Anything, "user-1", campaign.ID, entity.CampaignStatusActive).Return(nil)
	automationSvc.On("StartCampaign", mock.Anything, mock.Anything).Return(errors.New("dial tcp: connection refused"))
	producer.On("PublishCampaignStart", mock.Anything, mock.Anything).Return(nil)

	out, err := uc.Execute(context.Background(), "user-1", campaign.ID)

	// The status write already happened, so the caller still gets a success.
	require.NoError(t, err)
	assert.Equal(t, entity.CampaignStatusActive, out.Status)
	assert.NotEmpty(t, out.WebhookWarning)
	campaignRepo.AssertCalled(t, "UpdateStatus", mock.Anything, "user-1", campaign.ID, entity.CampaignStatusActive)
}

func TestStartCampaignQueueFailureIsWarningOnly(t *testing.T) {
	uc, campaignRepo, leadRepo, automationSvc, producer := newStartFixture()
	campaign := ownedCampaign("user-1")

	campaignRepo.On("FindByID", mock.Anything, "user-1", campaign.ID).Return(campaign, nil)
	leadRepo.On("ListByCampaign", mock.Anything, "user-1", campaign.ID).
		Return(campaignLeads(campaign.ID, "user-1", 1), nil)
	campaignRepo.On("UpdateStatus", mock.Anything, "user-1", campaign.ID, entity.CampaignStatusActive).Return(nil)
	automationSvc.On("StartCampaign", mock.Anything, mock.Anything).Return(nil)
	producer.On("PublishCampaignStart", mock.Anything, mock.Anything).Return(errors.New("channel closed"))

	out, err := uc.Execute(context.Background(), "user-1", campaign.ID)

	require.NoError(t, err)
	assert.Contains(t, out.WebhookWarning, "could not be queued")
}

func TestStartCampaignRejectsAlreadyActive(t *testing.T) {
	uc, campaignRepo, _, automationSvc, _ := newStartFixture()
	campaign := ownedCampaign("user-1")
	campaign.Status = entity.CampaignStatusActive
	campaignRepo.On("FindByID", mock.Anything, "user-1", campaign.ID).Return(campaign, nil)

	_, err := uc.Execute(context.Background(), "user-1", campaign.ID)

	require.Error(t, err)
	assert.True(t, usecase.IsDomainError(err))
	assert.Contains(t, err.Error(), "already active")
	automationSvc.AssertNotCalled(t, "StartCampaign", mock.Anything, mock.Anything)
}

func TestStartCampaignRejectsCompleted(t *testing.T) {
	uc, campaignRepo, _, _, _ := newStartFixture()
	campaign := ownedCampaign("user-1")
	campaign.Status = entity.CampaignStatusCompleted
	campaignRepo.On("FindByID", mock.Anything, "user-1", campaign.ID).Return(campaign, nil)

	_, err := uc.Execute(context.Background(), "user-1", campaign.ID)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot be restarted")
}

func TestStartCampaignRejectsEmptyCampaign(t *testing.T) {
	uc, campaignRepo, leadRepo, _, _ := newStartFixture()
	campaign := ownedCampaign("user-1")
	campaignRepo.On("FindByID", mock.Anything, "user-1", campaign.ID).Return(campaign, nil)
	leadRepo.On("ListByCampaign", mock.Anything, "user-1", campaign.ID).
		Return([]*entity.UploadedLead{}, nil)

	_, err := uc.Execute(context.Background(), "user-1", campaign.ID)

	require.Error(t, err)
	assert.True(t, usecase.IsDomainError(err))
	assert.Contains(t, err.Error(), "no leads")
	campaignRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestStartCampaignNotFoundForOtherUser(t *testing.T) {
	uc, campaignRepo, _, _, _ := newStartFixture()
	campaignRepo.On("FindByID", mock.Anything, "user-2", "camp-1").Return(nil, entity.ErrCampaignNotFound)

	_, err := uc.Execute(context.Background(), "user-2", "camp-1")

	require.Error(t, err)
	assert.True(t, usecase.IsDomainError(err))
}
