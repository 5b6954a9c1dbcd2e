package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/xavierca1/ligue-outreach/internal/entity"
	"github.com/xavierca1/ligue-outreach/internal/infra/integration/whatsapp"
	"github.com/xavierca1/ligue-outreach/internal/infra/mail"
	"github.com/xavierca1/ligue-outreach/internal/usecase"
)

func newTestStepFixture() (*usecase.SendTestStepUseCase, *MockCampaignRepository, *MockSequenceRepository, *MockEmailService, *MockWhatsAppService) {
	campaignRepo := new(MockCampaignRepository)
	sequenceRepo := new(MockSequenceRepository)
	email := new(MockEmailService)
	wa := new(MockWhatsAppService)
	uc := usecase.NewSendTestStepUseCase(campaignRepo, sequenceRepo, email, wa)
	return uc, campaignRepo, sequenceRepo, email, wa
}

func TestSendTestStepEmail(t *testing.T) {
	uc, campaignRepo, sequenceRepo, email, _ := newTestStepFixture()
	campaign := ownedCampaign("user-1")
	step, err := entity.NewSequenceStep(campaign.ID, 2, entity.ChannelEmail, "Hi {{name}}, quick question", 24)
	require.NoError(t, err)

	campaignRepo.On("FindByID", mock.Anything, "user-1", campaign.ID).Return(campaign, nil)
	sequenceRepo.On("FindByID", mock.Anything, campaign.ID, step.ID).Return(step, nil)
	email.On("SendStep", "me@example.com", "[test] Q3 Outreach - step 2", mock.MatchedBy(func(d mail.StepEmailData) bool {
		return d.Body == step.Content && d.CampaignName == campaign.Name
	})).Return(nil)

	err = uc.Execute(context.Background(), "user-1", usecase.SendTestStepInput{
		CampaignID: campaign.ID,
		StepID:     step.ID,
		Recipient:  "me@example.com",
		LeadName:   "Ana",
	})

	require.NoError(t, err)
	email.AssertExpectations(t)
}

func TestSendTestStepWhatsAppNormalizesPhone(t *testing.T) {
	uc, campaignRepo, sequenceRepo, _, wa := newTestStepFixture()
	campaign := ownedCampaign("user-1")
	step, err := entity.NewSequenceStep(campaign.ID, 1, entity.ChannelWhatsApp, "Oi, tudo bem?", 0)
	require.NoError(t, err)

	campaignRepo.On("FindByID", mock.Anything, "user-1", campaign.ID).Return(campaign, nil)
	sequenceRepo.On("FindByID", mock.Anything, campaign.ID, step.ID).Return(step, nil)
	wa.On("SendMessage", whatsapp.SendMessageInput{
		PhoneNumber: "5511999990001",
		Body:        step.Content,
	}).Return(nil)

	err = uc.Execute(context.Background(), "user-1", usecase.SendTestStepInput{
		CampaignID: campaign.ID,
		StepID:     step.ID,
		Recipient:  "+55 (11) 99999-0001",
	})

	require.NoError(t, err)
	wa.AssertExpectations(t)
}

func TestSendTestStepRejectsCallAndSMS(t *testing.T) {
	uc, campaignRepo, sequenceRepo, email, wa := newTestStepFixture()
	campaign := ownedCampaign("user-1")

	for _, channel := range []string{entity.ChannelCall, entity.ChannelSMS} {
		step, err := entity.NewSequenceStep(campaign.ID, 1, channel, "call script", 0)
		require.NoError(t, err)

		campaignRepo.On("FindByID", mock.Anything, "user-1", campaign.ID).Return(campaign, nil)
		sequenceRepo.On("FindByID", mock.Anything, campaign.ID, step.ID).Return(step, nil)

		err = uc.Execute(context.Background(), "user-1", usecase.SendTestStepInput{
			CampaignID: campaign.ID,
			StepID:     step.ID,
			Recipient:  "me@example.com",
		})

		require.Error(t, err)
		assert.True(t, usecase.IsDomainError(err))
		assert.Contains(t, err.Error(), "test sends")
	}

	email.AssertNotCalled(t, "SendStep", mock.Anything, mock.Anything, mock.Anything)
	wa.AssertNotCalled(t, "SendMessage", mock.Anything)
}

func TestSendTestStepRejectsInvalidEmailRecipient(t *testing.T) {
	uc, campaignRepo, sequenceRepo, email, _ := newTestStepFixture()
	campaign := ownedCampaign("user-1")
	step, err := entity.NewSequenceStep(campaign.ID, 1, entity.ChannelEmail, "hello", 0)
	require.NoError(t, err)

	campaignRepo.On("FindByID", mock.Anything, "user-1", campaign.ID).Return(campaign, nil)
	sequenceRepo.On("FindByID", mock.Anything, campaign.ID, step.ID).Return(step, nil)

	err = uc.Execute(context.Background(), "user-1", usecase.SendTestStepInput{
		CampaignID: campaign.ID,
		StepID:     step.ID,
		Recipient:  "not-an-address",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "valid email")
	email.AssertNotCalled(t, "SendStep", mock.Anything, mock.Anything, mock.Anything)
}

func TestSendTestStepRequiresRecipient(t *testing.T) {
	uc, campaignRepo, sequenceRepo, _, _ := newTestStepFixture()
	campaign := ownedCampaign("user-1")
	step, err := entity.NewSequenceStep(campaign.ID, 1, entity.ChannelEmail, "hello", 0)
	require.NoError(t, err)

	campaignRepo.On("FindByID", mock.Anything, "user-1", campaign.ID).Return(campaign, nil)
	sequenceRepo.On("FindByID", mock.Anything, campaign.ID, step.ID).Return(step, nil)

	err = uc.Execute(context.Background(), "user-1", usecase.SendTestStepInput{
		CampaignID: campaign.ID,
		StepID:     step.ID,
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "recipient is required")
}

func TestSendTestStepEmailFailureIsTechnical(t *testing.T) {
	uc, campaignRepo, sequenceRepo, email, _ := newTestStepFixture()
	campaign := ownedCampaign("user-1")
	step, err := entity.NewSequenceStep(campaign.ID, 1, entity.ChannelEmail, "hello", 0)
	require.NoError(t, err)

	campaignRepo.On("FindByID", mock.Anything, "user-1", campaign.ID).Return(campaign, nil)
	sequenceRepo.On("FindByID", mock.Anything, campaign.ID, step.ID).Return(step, nil)
	email.On("SendStep", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("smtp refused"))

	err = uc.Execute(context.Background(), "user-1", usecase.SendTestStepInput{
		CampaignID: campaign.ID,
		StepID:     step.ID,
		Recipient:  "me@example.com",
	})

	require.Error(t, err)
	assert.True(t, usecase.IsTechnicalError(err))
}
