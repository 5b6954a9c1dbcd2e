package entity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

const (
	DirectionInbound  = "INBOUND"
	DirectionOutbound = "OUTBOUND"
)

// ConversationMessage is one entry in a lead's message log, regardless of
// which channel carried it.
type ConversationMessage struct {
	ID         string    `json:"id"`
	LeadID     string    `json:"lead_id"`
	CampaignID string    `json:"campaign_id"`
	Direction  string    `json:"direction"` // INBOUND, OUTBOUND
	Channel    string    `json:"channel"`   // CALL, SMS, WHATSAPP, EMAIL
	Body       string    `json:"body"`
	OccurredAt time.Time `json:"occurred_at"`
	CreatedAt  time.Time `json:"created_at"`
}

func NewConversationMessage(leadID, campaignID, direction, channel, body string, occurredAt time.Time) (*ConversationMessage, error) {
	if leadID == "" {
		return nil, errors.New("lead_id is required")
	}
	if direction != DirectionInbound && direction != DirectionOutbound {
		return nil, errors.New("direction must be INBOUND or OUTBOUND")
	}
	if !IsValidChannel(channel) {
		return nil, errors.New("channel must be CALL, SMS, WHATSAPP or EMAIL")
	}
	if body == "" {
		return nil, errors.New("body is required")
	}
	if occurredAt.IsZero() {
		occurredAt = time.Now()
	}

	return &ConversationMessage{
		ID:         uuid.New().String(),
		LeadID:     leadID,
		CampaignID: campaignID,
		Direction:  direction,
		Channel:    channel,
		Body:       body,
		OccurredAt: occurredAt,
		CreatedAt:  time.Now(),
	}, nil
}

type ConversationRepositoryInterface interface {
	Append(ctx context.Context, m *ConversationMessage) error
	ListByLead(ctx context.Context, userID, leadID string) ([]*ConversationMessage, error)
}
