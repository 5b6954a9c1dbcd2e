package entity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrCampaignNotFound = errors.New("campaign not found")

// Campaign status lifecycle: DRAFT -> ACTIVE -> PAUSED/COMPLETED
const (
	CampaignStatusDraft     = "DRAFT"
	CampaignStatusActive    = "ACTIVE"
	CampaignStatusPaused    = "PAUSED"
	CampaignStatusCompleted = "COMPLETED"
)

type Campaign struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	Name         string    `json:"name"`
	Offer        string    `json:"offer"`
	CalendarLink string    `json:"calendar_link"`
	Goal         string    `json:"goal"`
	Status       string    `json:"status"` // DRAFT, ACTIVE, PAUSED, COMPLETED
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Factory
func NewCampaign(userID, name, offer, calendarLink, goal string) (*Campaign, error) {
	c := &Campaign{
		ID:           uuid.New().String(),
		UserID:       userID,
		Name:         name,
		Offer:        offer,
		CalendarLink: calendarLink,
		Goal:         goal,
		Status:       CampaignStatusDraft,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Campaign) Validate() error {
	if c.UserID == "" {
		return errors.New("user_id is required")
	}
	if c.Name == "" {
		return errors.New("name is required")
	}
	if c.Offer == "" {
		return errors.New("offer is required")
	}
	return nil
}

func IsValidCampaignStatus(status string) bool {
	switch status {
	case CampaignStatusDraft, CampaignStatusActive, CampaignStatusPaused, CampaignStatusCompleted:
		return true
	}
	return false
}

type CampaignRepositoryInterface interface {
	Create(ctx context.Context, c *Campaign) error
	FindByID(ctx context.Context, userID, id string) (*Campaign, error)
	ListByUser(ctx context.Context, userID string) ([]*Campaign, error)
	Update(ctx context.Context, c *Campaign) error
	UpdateStatus(ctx context.Context, userID, id, status string) error
	Delete(ctx context.Context, userID, id string) error
}
