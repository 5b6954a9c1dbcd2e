package usecase_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/xavierca1/ligue-outreach/internal/entity"
	"github.com/xavierca1/ligue-outreach/internal/infra/integration/automation"
	"github.com/xavierca1/ligue-outreach/internal/infra/integration/whatsapp"
	"github.com/xavierca1/ligue-outreach/internal/infra/mail"
	"github.com/xavierca1/ligue-outreach/internal/infra/queue"
)

// MockCampaignRepository
type MockCampaignRepository struct {
	mock.Mock
}

func (m *MockCampaignRepository) Create(ctx context.Context, c *entity.Campaign) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCampaignRepository) FindByID(ctx context.Context, userID, id string) (*entity.Campaign, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Campaign), args.Error(1)
}

func (m *MockCampaignRepository) UpdateStatus(ctx context.Context, userID, id, status string) error {
	args := m.Called(ctx, userID, id, status)
	return args.Error(0)
}

// MockLeadRepository
type MockLeadRepository struct {
	mock.Mock
}

func (m *MockLeadRepository) CreateBatch(ctx context.Context, leads []*entity.UploadedLead) error {
	args := m.Called(ctx, leads)
	return args.Error(0)
}

func (m *MockLeadRepository) ListByCampaign(ctx context.Context, userID, campaignID string) ([]*entity.UploadedLead, error) {
	args := m.Called(ctx, userID, campaignID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.UploadedLead), args.Error(1)
}

func (m *MockLeadRepository) ExistingEmails(ctx context.Context, campaignID string, emails []string) (map[string]bool, error) {
	args := m.Called(ctx, campaignID, emails)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]bool), args.Error(1)
}

func (m *MockLeadRepository) ExistingPhones(ctx context.Context, campaignID string, phones []string) (map[string]bool, error) {
	args := m.Called(ctx, campaignID, phones)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]bool), args.Error(1)
}

func (m *MockLeadRepository) UpdateChannelStatus(ctx context.Context, id, channel, status string) error {
	args := m.Called(ctx, id, channel, status)
	return args.Error(0)
}

// MockProgressRepository
type MockProgressRepository struct {
	mock.Mock
}

func (m *MockProgressRepository) CreateBatch(ctx context.Context, items []*entity.SequenceProgress) error {
	args := m.Called(ctx, items)
	return args.Error(0)
}

func (m *MockProgressRepository) FindByLead(ctx context.Context, leadID string) (*entity.SequenceProgress, error) {
	args := m.Called(ctx, leadID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.SequenceProgress), args.Error(1)
}

func (m *MockProgressRepository) Advance(ctx context.Context, leadID string, totalSteps int) error {
	args := m.Called(ctx, leadID, totalSteps)
	return args.Error(0)
}

// MockImportHistoryRepository
type MockImportHistoryRepository struct {
	mock.Mock
}

func (m *MockImportHistoryRepository) Create(ctx context.Context, h *entity.ImportHistory) error {
	args := m.Called(ctx, h)
	return args.Error(0)
}

// MockSequenceRepository
type MockSequenceRepository struct {
	mock.Mock
}

func (m *MockSequenceRepository) ListByCampaign(ctx context.Context, campaignID string) ([]*entity.SequenceStep, error) {
	args := m.Called(ctx, campaignID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.SequenceStep), args.Error(1)
}

func (m *MockSequenceRepository) FindByID(ctx context.Context, campaignID, id string) (*entity.SequenceStep, error) {
	args := m.Called(ctx, campaignID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.SequenceStep), args.Error(1)
}

// MockTrainingRepository
type MockTrainingRepository struct {
	mock.Mock
}

func (m *MockTrainingRepository) FindByID(ctx context.Context, userID, id string) (*entity.TrainingResource, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.TrainingResource), args.Error(1)
}

// MockAutomationService
type MockAutomationService struct {
	mock.Mock
}

func (m *MockAutomationService) StartCampaign(ctx context.Context, input automation.StartCampaignInput) error {
	args := m.Called(ctx, input)
	return args.Error(0)
}

func (m *MockAutomationService) TriggerEngine(ctx context.Context, input automation.TriggerEngineInput) error {
	args := m.Called(ctx, input)
	return args.Error(0)
}

// MockQueueProducer
type MockQueueProducer struct {
	mock.Mock
}

func (m *MockQueueProducer) PublishCampaignStart(ctx context.Context, payload queue.CampaignStartPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendStep(to, subject string, data mail.StepEmailData) error {
	args := m.Called(to, subject, data)
	return args.Error(0)
}

// MockWhatsAppService
type MockWhatsAppService struct {
	mock.Mock
}

func (m *MockWhatsAppService) SendMessage(input whatsapp.SendMessageInput) error {
	args := m.Called(input)
	return args.Error(0)
}
