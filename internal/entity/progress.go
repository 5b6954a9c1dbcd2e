package entity

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// SequenceProgress is the per-lead cursor into a campaign's sequence.
// CurrentStep 0 means no step has run yet.
type SequenceProgress struct {
	ID              string     `json:"id"`
	LeadID          string     `json:"lead_id"`
	CampaignID      string     `json:"campaign_id"`
	CurrentStep     int        `json:"current_step"`
	LastContactedAt *time.Time `json:"last_contacted_at,omitempty"`
	Completed       bool       `json:"completed"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func NewSequenceProgress(leadID, campaignID string) *SequenceProgress {
	return &SequenceProgress{
		ID:         uuid.New().String(),
		LeadID:     leadID,
		CampaignID: campaignID,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}
}

type ProgressRepositoryInterface interface {
	CreateBatch(ctx context.Context, items []*SequenceProgress) error
	FindByLead(ctx context.Context, leadID string) (*SequenceProgress, error)
	// Advance moves the cursor forward and stamps the contact time. Marks
	// the row completed when the cursor passes totalSteps.
	Advance(ctx context.Context, leadID string, totalSteps int) error
}
