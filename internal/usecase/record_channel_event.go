package usecase

import (
	"context"
	"errors"
	"log"

	"github.com/xavierca1/ligue-outreach/internal/entity"
)

// RecordChannelEventUseCase applies a status callback from the channel
// engine: the lead's per-channel status is updated and, when the event is
// a SENT, the lead's sequence cursor moves to the next step.
type RecordChannelEventUseCase struct {
	LeadRepo     LeadRepositoryInterface
	ProgressRepo ProgressRepositoryInterface
	SequenceRepo SequenceRepositoryInterface
}

func NewRecordChannelEventUseCase(
	leadRepo LeadRepositoryInterface,
	progressRepo ProgressRepositoryInterface,
	sequenceRepo SequenceRepositoryInterface,
) *RecordChannelEventUseCase {
	return &RecordChannelEventUseCase{
		LeadRepo:     leadRepo,
		ProgressRepo: progressRepo,
		SequenceRepo: sequenceRepo,
	}
}

func (uc *RecordChannelEventUseCase) Execute(ctx context.Context, input RecordChannelEventInput) (*RecordChannelEventOutput, error) {
	if !entity.IsValidChannel(input.Channel) {
		return nil, NewDomainError("INVALID_CHANNEL", "channel must be CALL, SMS, WHATSAPP or EMAIL")
	}
	if !entity.IsValidChannelEventStatus(input.Status) {
		return nil, NewDomainError("INVALID_STATUS", "status must be SENT, REPLIED or FAILED")
	}

	if err := uc.LeadRepo.UpdateChannelStatus(ctx, input.LeadID, input.Channel, input.Status); err != nil {
		if errors.Is(err, entity.ErrLeadNotFound) {
			return nil, NewDomainError("LEAD_NOT_FOUND", "lead not found")
		}
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: err.Error()}
	}

	out := &RecordChannelEventOutput{
		LeadID:  input.LeadID,
		Channel: input.Channel,
		Status:  input.Status,
	}

	// The status write is the record; a cursor that lags behind is
	// recoverable, so advancing never fails the event.
	if input.Status == entity.LeadChannelSent {
		progress, err := uc.ProgressRepo.FindByLead(ctx, input.LeadID)
		if err != nil {
			log.Printf("[ENGINE] no sequence cursor for lead %s: %v", input.LeadID, err)
			return out, nil
		}

		steps, err := uc.SequenceRepo.ListByCampaign(ctx, progress.CampaignID)
		if err != nil {
			log.Printf("[ENGINE] loading sequence for campaign %s: %v", progress.CampaignID, err)
			return out, nil
		}

		if err := uc.ProgressRepo.Advance(ctx, input.LeadID, len(steps)); err != nil {
			log.Printf("[ENGINE] advancing cursor for lead %s: %v", input.LeadID, err)
			return out, nil
		}
		out.Advanced = true
	}

	return out, nil
}
