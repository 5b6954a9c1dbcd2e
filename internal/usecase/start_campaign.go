package usecase

import (
	"context"
	"log"

	"github.com/xavierca1/ligue-outreach/internal/entity"
	"github.com/xavierca1/ligue-outreach/internal/infra/integration/automation"
	"github.com/xavierca1/ligue-outreach/internal/infra/queue"
)

type StartCampaignUseCase struct {
	CampaignRepo CampaignRepositoryInterface
	LeadRepo     LeadRepositoryInterface
	Automation   AutomationService
	Queue        QueueProducerInterface
}

func NewStartCampaignUseCase(
	campaignRepo CampaignRepositoryInterface,
	leadRepo LeadRepositoryInterface,
	automationSvc AutomationService,
	producer QueueProducerInterface,
) *StartCampaignUseCase {
	return &StartCampaignUseCase{
		CampaignRepo: campaignRepo,
		LeadRepo:     leadRepo,
		Automation:   automationSvc,
		Queue:        producer,
	}
}

// Execute flips the campaign ACTIVE and notifies the automation service.
// The status write is the source of truth: webhook and queue failures are
// reported as warnings, never rolled back.
func (uc *StartCampaignUseCase) Execute(ctx context.Context, userID, campaignID string) (*StartCampaignOutput, error) {
	campaign, err := uc.CampaignRepo.FindByID(ctx, userID, campaignID)
	if err != nil {
		return nil, NewDomainError("CAMPAIGN_NOT_FOUND", "campaign not found")
	}

	if campaign.Status == entity.CampaignStatusActive {
		return nil, NewDomainError("ALREADY_ACTIVE", "campaign is already active")
	}
	if campaign.Status == entity.CampaignStatusCompleted {
		return nil, NewDomainError("CAMPAIGN_COMPLETED", "completed campaigns cannot be restarted")
	}

	leads, err := uc.LeadRepo.ListByCampaign(ctx, userID, campaignID)
	if err != nil {
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: err.Error()}
	}
	if len(leads) == 0 {
		return nil, NewDomainError("NO_LEADS", "campaign has no leads to contact")
	}

	if err := uc.CampaignRepo.UpdateStatus(ctx, userID, campaignID, entity.CampaignStatusActive); err != nil {
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: err.Error()}
	}

	out := &StartCampaignOutput{
		ID:        campaignID,
		Status:    entity.CampaignStatusActive,
		LeadCount: len(leads),
	}

	// 1. Direct webhook so the automation side reacts immediately.
	err = uc.Automation.StartCampaign(ctx, automation.StartCampaignInput{
		CampaignID:   campaign.ID,
		UserID:       userID,
		CampaignName: campaign.Name,
		Offer:        campaign.Offer,
		CalendarLink: campaign.CalendarLink,
		Goal:         campaign.Goal,
		LeadCount:    len(leads),
	})
	if err != nil {
		log.Printf("[START] campaign %s active, but start webhook failed: %v", campaignID, err)
		out.WebhookWarning = "campaign started, but the automation webhook could not be reached"
	}

	// 2. Queue event for the engine trigger (replayable via DLQ).
	err = uc.Queue.PublishCampaignStart(ctx, queue.CampaignStartPayload{
		CampaignID:   campaign.ID,
		UserID:       userID,
		CampaignName: campaign.Name,
		Offer:        campaign.Offer,
		CalendarLink: campaign.CalendarLink,
		LeadCount:    len(leads),
		Origin:       "API",
	})
	if err != nil {
		log.Printf("[START] campaign %s active, but queue publish failed: %v", campaignID, err)
		if out.WebhookWarning == "" {
			out.WebhookWarning = "campaign started, but the engine event could not be queued"
		}
	}

	log.Printf("[START] campaign %s is ACTIVE with %d leads", campaign.Name, len(leads))
	return out, nil
}
