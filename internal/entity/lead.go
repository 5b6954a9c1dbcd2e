package entity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrLeadNotFound = errors.New("lead not found")

// Per-channel contact status for an uploaded lead.
const (
	LeadChannelPending = "PENDING"
	LeadChannelSent    = "SENT"
	LeadChannelReplied = "REPLIED"
	LeadChannelFailed  = "FAILED"
)

// UploadedLead is a contact record imported into a campaign from a CSV file.
type UploadedLead struct {
	ID         string `json:"id"`
	CampaignID string `json:"campaign_id"`
	UserID     string `json:"user_id"`
	FirstName  string `json:"first_name,omitempty"`
	LastName   string `json:"last_name,omitempty"`
	Email      string `json:"email,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Company    string `json:"company,omitempty"`
	JobTitle   string `json:"job_title,omitempty"`

	// One status per outreach channel
	CallStatus     string `json:"call_status"`
	SMSStatus      string `json:"sms_status"`
	WhatsAppStatus string `json:"whatsapp_status"`
	EmailStatus    string `json:"email_status"`

	SourceFile string    `json:"source_file,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func NewUploadedLead(campaignID, userID string) *UploadedLead {
	return &UploadedLead{
		ID:             uuid.New().String(),
		CampaignID:     campaignID,
		UserID:         userID,
		CallStatus:     LeadChannelPending,
		SMSStatus:      LeadChannelPending,
		WhatsAppStatus: LeadChannelPending,
		EmailStatus:    LeadChannelPending,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}
}

func (l *UploadedLead) Validate() error {
	if l.CampaignID == "" {
		return errors.New("campaign_id is required")
	}
	if l.Email == "" && l.Phone == "" {
		return errors.New("lead needs at least an email or a phone")
	}
	return nil
}

// IsValidChannelEventStatus accepts the statuses the channel engine can
// report back. PENDING is the seed value only, never an event.
func IsValidChannelEventStatus(status string) bool {
	switch status {
	case LeadChannelSent, LeadChannelReplied, LeadChannelFailed:
		return true
	}
	return false
}

type LeadRepositoryInterface interface {
	CreateBatch(ctx context.Context, leads []*UploadedLead) error
	ListByCampaign(ctx context.Context, userID, campaignID string) ([]*UploadedLead, error)
	FindByID(ctx context.Context, userID, id string) (*UploadedLead, error)
	// ExistingEmails returns, from the given set, the emails already present
	// in the campaign. Used to skip duplicates on import.
	ExistingEmails(ctx context.Context, campaignID string, emails []string) (map[string]bool, error)
	// ExistingPhones does the same for digits-only phone numbers, covering
	// rows that carry no email.
	ExistingPhones(ctx context.Context, campaignID string, phones []string) (map[string]bool, error)
	UpdateChannelStatus(ctx context.Context, id, channel, status string) error
	Delete(ctx context.Context, userID, id string) error
}
