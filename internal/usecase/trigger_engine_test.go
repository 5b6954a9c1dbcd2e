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
	"github.com/xavierca1/ligue-outreach/internal/usecase"
)

func newEngineFixture() (*usecase.TriggerEngineUseCase, *MockCampaignRepository, *MockTrainingRepository, *MockAutomationService) {
	campaignRepo := new(MockCampaignRepository)
	trainingRepo := new(MockTrainingRepository)
	automationSvc := new(MockAutomationService)
	uc := usecase.NewTriggerEngineUseCase(campaignRepo, trainingRepo, automationSvc)
	return uc, campaignRepo, trainingRepo, automationSvc
}

func TestTriggerEngineForActiveCampaign(t *testing.T) {
	uc, campaignRepo, _, automationSvc := newEngineFixture()
	campaign := ownedCampaign("user-1")
	campaign.Status = entity.CampaignStatusActive

	campaignRepo.On("FindByID", mock.Anything, "user-1", campaign.ID).Return(campaign, nil)
	automationSvc.On("TriggerEngine", mock.Anything, mock.MatchedBy(func(in automation.TriggerEngineInput) bool {
		return in.CampaignID == campaign.ID && in.Channel == entity.ChannelCall && in.TrainingFile == nil
	})).Return(nil)

	err := uc.Execute(context.Background(), usecase.TriggerEngineInput{
		CampaignID: campaign.ID,
		UserID:     "user-1",
		Channel:    entity.ChannelCall,
	})

	require.NoError(t, err)
	automationSvc.AssertExpectations(t)
}

func TestTriggerEngineRejectsInactiveCampaign(t *testing.T) {
	uc, campaignRepo, _, automationSvc := newEngineFixture()
	campaign := ownedCampaign("user-1") // still DRAFT
	campaignRepo.On("FindByID", mock.Anything, "user-1", campaign.ID).Return(campaign, nil)

	err := uc.Execute(context.Background(), usecase.TriggerEngineInput{
		CampaignID: campaign.ID,
		UserID:     "user-1",
	})

	require.Error(t, err)
	assert.True(t, usecase.IsDomainError(err))
	assert.Contains(t, err.Error(), "active campaigns")
	automationSvc.AssertNotCalled(t, "TriggerEngine", mock.Anything, mock.Anything)
}

func TestTriggerEngineRejectsUnknownChannel(t *testing.T) {
	uc, campaignRepo, _, _ := newEngineFixture()
	campaign := ownedCampaign("user-1")
	campaign.Status = entity.CampaignStatusActive
	campaignRepo.On("FindByID", mock.Anything, "user-1", campaign.ID).Return(campaign, nil)

	err := uc.Execute(context.Background(), usecase.TriggerEngineInput{
		CampaignID: campaign.ID,
		UserID:     "user-1",
		Channel:    "CARRIER_PIGEON",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "channel must be")
}

func TestTriggerEngineAttachesFileResource(t *testing.T) {
	uc, campaignRepo, trainingRepo, automationSvc := newEngineFixture()
	campaign := ownedCampaign("user-1")
	campaign.Status = entity.CampaignStatusActive

	resource, err := entity.NewTrainingResource(campaign.ID, "user-1", entity.TrainingKindFile, "Sales playbook")
	require.NoError(t, err)
	resource.FileName = "playbook.pdf"
	resource.Content = "always be closing"

	campaignRepo.On("FindByID", mock.Anything, "user-1", campaign.ID).Return(campaign, nil)
	trainingRepo.On("FindByID", mock.Anything, "user-1", resource.ID).Return(resource, nil)
	automationSvc.On("TriggerEngine", mock.Anything, mock.MatchedBy(func(in automation.TriggerEngineInput) bool {
		return in.TrainingFile != nil &&
			in.TrainingFile.Name == "playbook.pdf" &&
			string(in.TrainingFile.Content) == "always be closing"
	})).Return(nil)

	err = uc.Execute(context.Background(), usecase.TriggerEngineInput{
		CampaignID:         campaign.ID,
		UserID:             "user-1",
		TrainingResourceID: resource.ID,
	})

	require.NoError(t, err)
	automationSvc.AssertExpectations(t)
}

func TestTriggerEngineRejectsNonFileResource(t *testing.T) {
	uc, campaignRepo, trainingRepo, automationSvc := newEngineFixture()
	campaign := ownedCampaign("user-1")
	campaign.Status = entity.CampaignStatusActive

	resource, err := entity.NewTrainingResource(campaign.ID, "user-1", entity.TrainingKindNote, "Tone notes")
	require.NoError(t, err)

	campaignRepo.On("FindByID", mock.Anything, "user-1", campaign.ID).Return(campaign, nil)
	trainingRepo.On("FindByID", mock.Anything, "user-1", resource.ID).Return(resource, nil)

	err = uc.Execute(context.Background(), usecase.TriggerEngineInput{
		CampaignID:         campaign.ID,
		UserID:             "user-1",
		TrainingResourceID: resource.ID,
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "FILE resources")
	automationSvc.AssertNotCalled(t, "TriggerEngine", mock.Anything, mock.Anything)
}

func TestTriggerEngineWebhookFailureIsTechnical(t *testing.T) {
	uc, campaignRepo, _, automationSvc := newEngineFixture()
	campaign := ownedCampaign("user-1")
	campaign.Status = entity.CampaignStatusActive

	campaignRepo.On("FindByID", mock.Anything, "user-1", campaign.ID).Return(campaign, nil)
	automationSvc.On("TriggerEngine", mock.Anything, mock.Anything).Return(errors.New("502 bad gateway"))

	err := uc.Execute(context.Background(), usecase.TriggerEngineInput{
		CampaignID: campaign.ID,
		UserID:     "user-1",
	})

	require.Error(t, err)
	assert.True(t, usecase.IsTechnicalError(err))
}
