package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/xavierca1/ligue-outreach/internal/entity"
)

type ProgressRepository struct {
	DB *sql.DB
}

func NewProgressRepository(db *sql.DB) *ProgressRepository {
	return &ProgressRepository{DB: db}
}

// CreateBatch seeds one cursor per imported lead, same transaction shape
// as the lead batch insert.
func (r *ProgressRepository) CreateBatch(ctx context.Context, items []*entity.SequenceProgress) error {
	if len(items) == 0 {
		return nil
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `
		INSERT INTO lead_sequence_progress (id, lead_id, campaign_id, current_step, last_contacted_at, completed, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	for _, p := range items {
		_, err := tx.ExecContext(ctx, query,
			p.ID, p.LeadID, p.CampaignID, p.CurrentStep, p.LastContactedAt, p.Completed, p.CreatedAt, p.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("inserting progress for lead %s: %w", p.LeadID, err)
		}
	}

	return tx.Commit()
}

func (r *ProgressRepository) FindByLead(ctx context.Context, leadID string) (*entity.SequenceProgress, error) {
	query := `
		SELECT id, lead_id, campaign_id, current_step, last_contacted_at, completed, created_at, updated_at
		FROM lead_sequence_progress
		WHERE lead_id = $1
	`

	var p entity.SequenceProgress
	err := r.DB.QueryRowContext(ctx, query, leadID).Scan(
		&p.ID, &p.LeadID, &p.CampaignID, &p.CurrentStep,
		&p.LastContactedAt, &p.Completed, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.New("sequence progress not found")
		}
		return nil, err
	}

	return &p, nil
}

func (r *ProgressRepository) Advance(ctx context.Context, leadID string, totalSteps int) error {
	query := `
		UPDATE lead_sequence_progress
		SET current_step = current_step + 1,
			last_contacted_at = NOW(),
			completed = (current_step + 1 >= $2),
			updated_at = NOW()
		WHERE lead_id = $1 AND NOT completed
	`

	res, err := r.DB.ExecContext(ctx, query, leadID, totalSteps)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errors.New("no active sequence progress for lead")
	}
	return nil
}
