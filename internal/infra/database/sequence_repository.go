package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/xavierca1/ligue-outreach/internal/entity"
)

type SequenceRepository struct {
	DB *sql.DB
}

func NewSequenceRepository(db *sql.DB) *SequenceRepository {
	return &SequenceRepository{DB: db}
}

func (r *SequenceRepository) ListByCampaign(ctx context.Context, campaignID string) ([]*entity.SequenceStep, error) {
	query := `
		SELECT id, campaign_id, step_order, channel, content, delay_hours, created_at, updated_at
		FROM campaign_sequences
		WHERE campaign_id = $1
		ORDER BY step_order ASC
	`

	rows, err := r.DB.QueryContext(ctx, query, campaignID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var steps []*entity.SequenceStep
	for rows.Next() {
		var s entity.SequenceStep
		if err := rows.Scan(
			&s.ID, &s.CampaignID, &s.StepOrder, &s.Channel,
			&s.Content, &s.DelayHours, &s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, err
		}
		steps = append(steps, &s)
	}

	return steps, rows.Err()
}

// Replace swaps the whole ordered step list inside one transaction so a
// half-written sequence can never be observed.
func (r *SequenceRepository) Replace(ctx context.Context, campaignID string, steps []*entity.SequenceStep) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM campaign_sequences WHERE campaign_id = $1`, campaignID); err != nil {
		return fmt.Errorf("clearing old sequence: %w", err)
	}

	insert := `
		INSERT INTO campaign_sequences (id, campaign_id, step_order, channel, content, delay_hours, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	for _, s := range steps {
		if _, err := tx.ExecContext(ctx, insert,
			s.ID, s.CampaignID, s.StepOrder, s.Channel, s.Content, s.DelayHours, s.CreatedAt, s.UpdatedAt,
		); err != nil {
			return fmt.Errorf("inserting step %d: %w", s.StepOrder, err)
		}
	}

	return tx.Commit()
}

func (r *SequenceRepository) FindByID(ctx context.Context, campaignID, id string) (*entity.SequenceStep, error) {
	query := `
		SELECT id, campaign_id, step_order, channel, content, delay_hours, created_at, updated_at
		FROM campaign_sequences
		WHERE id = $1 AND campaign_id = $2
	`

	var s entity.SequenceStep
	err := r.DB.QueryRowContext(ctx, query, id, campaignID).Scan(
		&s.ID, &s.CampaignID, &s.StepOrder, &s.Channel,
		&s.Content, &s.DelayHours, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.New("sequence step not found")
		}
		return nil, err
	}

	return &s, nil
}
