package usecase

import (
	"context"
	"log"

	"github.com/xavierca1/ligue-outreach/internal/entity"
	"github.com/xavierca1/ligue-outreach/internal/infra/integration/automation"
)

type TriggerEngineUseCase struct {
	CampaignRepo CampaignRepositoryInterface
	TrainingRepo TrainingRepositoryInterface
	Automation   AutomationService
}

func NewTriggerEngineUseCase(
	campaignRepo CampaignRepositoryInterface,
	trainingRepo TrainingRepositoryInterface,
	automationSvc AutomationService,
) *TriggerEngineUseCase {
	return &TriggerEngineUseCase{
		CampaignRepo: campaignRepo,
		TrainingRepo: trainingRepo,
		Automation:   automationSvc,
	}
}

// Execute fires the channel-engine webhook for an active campaign,
// optionally attaching one FILE training resource for AI context.
func (uc *TriggerEngineUseCase) Execute(ctx context.Context, input TriggerEngineInput) error {
	campaign, err := uc.CampaignRepo.FindByID(ctx, input.UserID, input.CampaignID)
	if err != nil {
		return NewDomainError("CAMPAIGN_NOT_FOUND", "campaign not found")
	}

	if campaign.Status != entity.CampaignStatusActive {
		return NewDomainError("CAMPAIGN_NOT_ACTIVE", "engine can only be triggered for active campaigns")
	}

	if input.Channel != "" && !entity.IsValidChannel(input.Channel) {
		return NewDomainError("INVALID_CHANNEL", "channel must be CALL, SMS, WHATSAPP or EMAIL")
	}

	payload := automation.TriggerEngineInput{
		CampaignID: input.CampaignID,
		UserID:     input.UserID,
		Channel:    input.Channel,
	}

	if input.TrainingResourceID != "" {
		resource, err := uc.TrainingRepo.FindByID(ctx, input.UserID, input.TrainingResourceID)
		if err != nil {
			return NewDomainError("RESOURCE_NOT_FOUND", "training resource not found")
		}
		if resource.Kind != entity.TrainingKindFile {
			return NewDomainError("RESOURCE_NOT_FILE", "only FILE resources can be attached")
		}
		payload.TrainingFile = &automation.FileAttachment{
			Name:    resource.FileName,
			Content: []byte(resource.Content),
		}
	}

	if err := uc.Automation.TriggerEngine(ctx, payload); err != nil {
		// Non-fatal by contract, but the caller deserves the truth.
		log.Printf("[ENGINE] trigger failed for campaign %s: %v", input.CampaignID, err)
		return &TechnicalError{Code: "WEBHOOK_FAILED", Message: "channel engine webhook failed"}
	}

	return nil
}
