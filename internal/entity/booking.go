package entity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrBookingNotFound = errors.New("booking not found")

const (
	BookingStatusScheduled = "SCHEDULED"
	BookingStatusCompleted = "COMPLETED"
	BookingStatusCancelled = "CANCELLED"
	BookingStatusNoShow    = "NO_SHOW"
)

type Booking struct {
	ID          string    `json:"id"`
	CampaignID  string    `json:"campaign_id"`
	LeadID      string    `json:"lead_id"`
	UserID      string    `json:"user_id"`
	ScheduledAt time.Time `json:"scheduled_at"`
	Status      string    `json:"status"` // SCHEDULED, COMPLETED, CANCELLED, NO_SHOW
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func NewBooking(campaignID, leadID, userID string, scheduledAt time.Time, notes string) (*Booking, error) {
	if campaignID == "" {
		return nil, errors.New("campaign_id is required")
	}
	if leadID == "" {
		return nil, errors.New("lead_id is required")
	}
	if scheduledAt.IsZero() {
		return nil, errors.New("scheduled_at is required")
	}

	return &Booking{
		ID:          uuid.New().String(),
		CampaignID:  campaignID,
		LeadID:      leadID,
		UserID:      userID,
		ScheduledAt: scheduledAt,
		Status:      BookingStatusScheduled,
		Notes:       notes,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}, nil
}

// CanTransitionTo enforces that only SCHEDULED bookings move; terminal
// states are immutable.
func (b *Booking) CanTransitionTo(status string) bool {
	if b.Status != BookingStatusScheduled {
		return false
	}
	switch status {
	case BookingStatusCompleted, BookingStatusCancelled, BookingStatusNoShow:
		return true
	}
	return false
}

func IsValidBookingStatus(status string) bool {
	switch status {
	case BookingStatusScheduled, BookingStatusCompleted, BookingStatusCancelled, BookingStatusNoShow:
		return true
	}
	return false
}

type BookingRepositoryInterface interface {
	Create(ctx context.Context, b *Booking) error
	ListByCampaign(ctx context.Context, userID, campaignID string) ([]*Booking, error)
	FindByID(ctx context.Context, userID, id string) (*Booking, error)
	UpdateStatus(ctx context.Context, userID, id, status string) error
	Delete(ctx context.Context, userID, id string) error
}
