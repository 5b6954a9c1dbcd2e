package handlers_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/xavierca1/ligue-outreach/internal/entity"
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

func (m *MockCampaignRepository) ListByUser(ctx context.Context, userID string) ([]*entity.Campaign, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Campaign), args.Error(1)
}

func (m *MockCampaignRepository) Update(ctx context.Context, c *entity.Campaign) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCampaignRepository) UpdateStatus(ctx context.Context, userID, id, status string) error {
	args := m.Called(ctx, userID, id, status)
	return args.Error(0)
}

func (m *MockCampaignRepository) Delete(ctx context.Context, userID, id string) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

// MockBookingRepository
type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Create(ctx context.Context, b *entity.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBookingRepository) ListByCampaign(ctx context.Context, userID, campaignID string) ([]*entity.Booking, error) {
	args := m.Called(ctx, userID, campaignID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Booking), args.Error(1)
}

func (m *MockBookingRepository) FindByID(ctx context.Context, userID, id string) (*entity.Booking, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Booking), args.Error(1)
}

func (m *MockBookingRepository) UpdateStatus(ctx context.Context, userID, id, status string) error {
	args := m.Called(ctx, userID, id, status)
	return args.Error(0)
}

func (m *MockBookingRepository) Delete(ctx context.Context, userID, id string) error {
	args := m.Called(ctx, userID, id)
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

func (m *MockSequenceRepository) Replace(ctx context.Context, campaignID string, steps []*entity.SequenceStep) error {
	args := m.Called(ctx, campaignID, steps)
	return args.Error(0)
}

func (m *MockSequenceRepository) FindByID(ctx context.Context, campaignID, id string) (*entity.SequenceStep, error) {
	args := m.Called(ctx, campaignID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.SequenceStep), args.Error(1)
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

func (m *MockLeadRepository) FindByID(ctx context.Context, userID, id string) (*entity.UploadedLead, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.UploadedLead), args.Error(1)
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

func (m *MockLeadRepository) Delete(ctx context.Context, userID, id string) error {
	args := m.Called(ctx, userID, id)
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

func (m *MockImportHistoryRepository) ListByCampaign(ctx context.Context, userID, campaignID string) ([]*entity.ImportHistory, error) {
	args := m.Called(ctx, userID, campaignID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.ImportHistory), args.Error(1)
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
