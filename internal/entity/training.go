package entity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrTrainingResourceNotFound = errors.New("training resource not found")

const (
	TrainingKindNote = "NOTE"
	TrainingKindLink = "LINK"
	TrainingKindFile = "FILE"
)

// TrainingResource feeds context to the external AI channel engine: free
// notes, reference links, or uploaded file contents.
type TrainingResource struct {
	ID         string    `json:"id"`
	CampaignID string    `json:"campaign_id"`
	UserID     string    `json:"user_id"`
	Kind       string    `json:"kind"` // NOTE, LINK, FILE
	Title      string    `json:"title"`
	Content    string    `json:"content,omitempty"` // note text or file body
	URL        string    `json:"url,omitempty"`
	FileName   string    `json:"file_name,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func NewTrainingResource(campaignID, userID, kind, title string) (*TrainingResource, error) {
	if campaignID == "" {
		return nil, errors.New("campaign_id is required")
	}
	if title == "" {
		return nil, errors.New("title is required")
	}
	switch kind {
	case TrainingKindNote, TrainingKindLink, TrainingKindFile:
	default:
		return nil, errors.New("kind must be NOTE, LINK or FILE")
	}

	return &TrainingResource{
		ID:         uuid.New().String(),
		CampaignID: campaignID,
		UserID:     userID,
		Kind:       kind,
		Title:      title,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}, nil
}

func (t *TrainingResource) Validate() error {
	switch t.Kind {
	case TrainingKindNote:
		if t.Content == "" {
			return errors.New("content is required for NOTE resources")
		}
	case TrainingKindLink:
		if t.URL == "" {
			return errors.New("url is required for LINK resources")
		}
	case TrainingKindFile:
		if t.FileName == "" {
			return errors.New("file_name is required for FILE resources")
		}
	default:
		return errors.New("kind must be NOTE, LINK or FILE")
	}
	return nil
}

type TrainingRepositoryInterface interface {
	Create(ctx context.Context, t *TrainingResource) error
	ListByCampaign(ctx context.Context, userID, campaignID string) ([]*TrainingResource, error)
	FindByID(ctx context.Context, userID, id string) (*TrainingResource, error)
	Update(ctx context.Context, t *TrainingResource) error
	Delete(ctx context.Context, userID, id string) error
}
