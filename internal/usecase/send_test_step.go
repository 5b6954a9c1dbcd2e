package usecase

import (
	"context"
	"fmt"

	"github.com/xavierca1/ligue-outreach/internal/entity"
	"github.com/xavierca1/ligue-outreach/internal/infra/integration/whatsapp"
	"github.com/xavierca1/ligue-outreach/internal/infra/mail"
)

type SendTestStepUseCase struct {
	CampaignRepo CampaignRepositoryInterface
	SequenceRepo SequenceRepositoryInterface
	Email        EmailService
	WhatsApp     WhatsAppService
}

func NewSendTestStepUseCase(
	campaignRepo CampaignRepositoryInterface,
	sequenceRepo SequenceRepositoryInterface,
	email EmailService,
	wa WhatsAppService,
) *SendTestStepUseCase {
	return &SendTestStepUseCase{
		CampaignRepo: campaignRepo,
		SequenceRepo: sequenceRepo,
		Email:        email,
		WhatsApp:     wa,
	}
}

// Execute sends one sequence step to the caller's own address so they can
// see what a lead would receive. CALL and SMS belong to the external
// engine and are rejected here.
func (uc *SendTestStepUseCase) Execute(ctx context.Context, userID string, input SendTestStepInput) error {
	campaign, err := uc.CampaignRepo.FindByID(ctx, userID, input.CampaignID)
	if err != nil {
		return NewDomainError("CAMPAIGN_NOT_FOUND", "campaign not found")
	}

	step, err := uc.SequenceRepo.FindByID(ctx, input.CampaignID, input.StepID)
	if err != nil {
		return NewDomainError("STEP_NOT_FOUND", "sequence step not found")
	}

	if input.Recipient == "" {
		return NewDomainError("RECIPIENT_REQUIRED", "recipient is required")
	}

	leadName := input.LeadName
	if leadName == "" {
		leadName = "there"
	}

	switch step.Channel {
	case entity.ChannelEmail:
		if !isValidEmail(input.Recipient) {
			return NewDomainError("INVALID_RECIPIENT", "recipient must be a valid email address")
		}
		subject := fmt.Sprintf("[test] %s - step %d", campaign.Name, step.StepOrder)
		err = uc.Email.SendStep(input.Recipient, subject, mail.StepEmailData{
			LeadName:     leadName,
			CampaignName: campaign.Name,
			Body:         step.Content,
			CalendarLink: campaign.CalendarLink,
		})
		if err != nil {
			return &TechnicalError{Code: "EMAIL_FAILED", Message: err.Error()}
		}
		return nil

	case entity.ChannelWhatsApp:
		if !isValidPhoneNumber(input.Recipient) {
			return NewDomainError("INVALID_RECIPIENT", "recipient must be a valid phone number")
		}
		err = uc.WhatsApp.SendMessage(whatsapp.SendMessageInput{
			PhoneNumber: NormalizePhone(input.Recipient),
			Body:        step.Content,
		})
		if err != nil {
			return &TechnicalError{Code: "WHATSAPP_FAILED", Message: err.Error()}
		}
		return nil

	default:
		return NewDomainError("CHANNEL_NOT_TESTABLE", "only EMAIL and WHATSAPP steps support test sends")
	}
}
