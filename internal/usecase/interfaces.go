package usecase

import (
	"context"

	"github.com/xavierca1/ligue-outreach/internal/entity"
	"github.com/xavierca1/ligue-outreach/internal/infra/integration/automation"
	"github.com/xavierca1/ligue-outreach/internal/infra/integration/whatsapp"
	"github.com/xavierca1/ligue-outreach/internal/infra/mail"
	"github.com/xavierca1/ligue-outreach/internal/infra/queue"
)

// Narrow views over the repositories; concrete implementations live in
// infra/database.

type CampaignRepositoryInterface interface {
	Create(ctx context.Context, c *entity.Campaign) error
	FindByID(ctx context.Context, userID, id string) (*entity.Campaign, error)
	UpdateStatus(ctx context.Context, userID, id, status string) error
}

type LeadRepositoryInterface interface {
	CreateBatch(ctx context.Context, leads []*entity.UploadedLead) error
	ListByCampaign(ctx context.Context, userID, campaignID string) ([]*entity.UploadedLead, error)
	ExistingEmails(ctx context.Context, campaignID string, emails []string) (map[string]bool, error)
	ExistingPhones(ctx context.Context, campaignID string, phones []string) (map[string]bool, error)
	UpdateChannelStatus(ctx context.Context, id, channel, status string) error
}

type ProgressRepositoryInterface interface {
	CreateBatch(ctx context.Context, items []*entity.SequenceProgress) error
	FindByLead(ctx context.Context, leadID string) (*entity.SequenceProgress, error)
	Advance(ctx context.Context, leadID string, totalSteps int) error
}

type ImportHistoryRepositoryInterface interface {
	Create(ctx context.Context, h *entity.ImportHistory) error
}

type SequenceRepositoryInterface interface {
	ListByCampaign(ctx context.Context, campaignID string) ([]*entity.SequenceStep, error)
	FindByID(ctx context.Context, campaignID, id string) (*entity.SequenceStep, error)
}

type TrainingRepositoryInterface interface {
	FindByID(ctx context.Context, userID, id string) (*entity.TrainingResource, error)
}

// Outbound collaborators.

type AutomationService interface {
	StartCampaign(ctx context.Context, input automation.StartCampaignInput) error
	TriggerEngine(ctx context.Context, input automation.TriggerEngineInput) error
}

type QueueProducerInterface interface {
	PublishCampaignStart(ctx context.Context, payload queue.CampaignStartPayload) error
}

type EmailService interface {
	SendStep(to, subject string, data mail.StepEmailData) error
}

type WhatsAppService interface {
	SendMessage(input whatsapp.SendMessageInput) error
}
