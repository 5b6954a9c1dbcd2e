package entity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Channels a sequence step can use. CALL and SMS are executed by the
// external channel engine only; EMAIL and WHATSAPP can also be test-sent
// directly from this service.
const (
	ChannelCall     = "CALL"
	ChannelSMS      = "SMS"
	ChannelWhatsApp = "WHATSAPP"
	ChannelEmail    = "EMAIL"
)

// SequenceStep is one ordered action in a campaign's follow-up plan.
type SequenceStep struct {
	ID         string    `json:"id"`
	CampaignID string    `json:"campaign_id"`
	StepOrder  int       `json:"step_order"` // 1-based, dense per campaign
	Channel    string    `json:"channel"`    // CALL, SMS, WHATSAPP, EMAIL
	Content    string    `json:"content"`
	DelayHours int       `json:"delay_hours"` // wait after the previous step
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func NewSequenceStep(campaignID string, order int, channel, content string, delayHours int) (*SequenceStep, error) {
	s := &SequenceStep{
		ID:         uuid.New().String(),
		CampaignID: campaignID,
		StepOrder:  order,
		Channel:    channel,
		Content:    content,
		DelayHours: delayHours,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *SequenceStep) Validate() error {
	if s.CampaignID == "" {
		return errors.New("campaign_id is required")
	}
	if s.StepOrder < 1 {
		return errors.New("step_order must be >= 1")
	}
	if !IsValidChannel(s.Channel) {
		return errors.New("channel must be CALL, SMS, WHATSAPP or EMAIL")
	}
	if s.Content == "" && s.Channel != ChannelCall {
		return errors.New("content is required")
	}
	if s.DelayHours < 0 {
		return errors.New("delay_hours must be >= 0")
	}
	return nil
}

func IsValidChannel(channel string) bool {
	switch channel {
	case ChannelCall, ChannelSMS, ChannelWhatsApp, ChannelEmail:
		return true
	}
	return false
}

type SequenceRepositoryInterface interface {
	ListByCampaign(ctx context.Context, campaignID string) ([]*SequenceStep, error)
	// Replace swaps the campaign's whole ordered step list in one transaction.
	Replace(ctx context.Context, campaignID string, steps []*SequenceStep) error
	FindByID(ctx context.Context, campaignID, id string) (*SequenceStep, error)
}
