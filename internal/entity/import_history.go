package entity

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const (
	ImportStatusCompleted = "COMPLETED"
	ImportStatusPartial   = "PARTIAL" // some rows rejected
	ImportStatusFailed    = "FAILED"
)

// ImportHistory records one CSV import run against a campaign.
type ImportHistory struct {
	ID           string    `json:"id"`
	CampaignID   string    `json:"campaign_id"`
	UserID       string    `json:"user_id"`
	FileName     string    `json:"file_name"`
	TotalRows    int       `json:"total_rows"`
	ImportedRows int       `json:"imported_rows"`
	SkippedRows  int       `json:"skipped_rows"` // duplicates
	InvalidRows  int       `json:"invalid_rows"`
	Status       string    `json:"status"` // COMPLETED, PARTIAL, FAILED
	CreatedAt    time.Time `json:"created_at"`
}

func NewImportHistory(campaignID, userID, fileName string) *ImportHistory {
	return &ImportHistory{
		ID:         uuid.New().String(),
		CampaignID: campaignID,
		UserID:     userID,
		FileName:   fileName,
		CreatedAt:  time.Now(),
	}
}

type ImportHistoryRepositoryInterface interface {
	Create(ctx context.Context, h *ImportHistory) error
	ListByCampaign(ctx context.Context, userID, campaignID string) ([]*ImportHistory, error)
}
