package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/xavierca1/ligue-outreach/internal/entity"
)

type TrainingRepository struct {
	DB *sql.DB
}

func NewTrainingRepository(db *sql.DB) *TrainingRepository {
	return &TrainingRepository{DB: db}
}

func (r *TrainingRepository) Create(ctx context.Context, t *entity.TrainingResource) error {
	query := `
		INSERT INTO training_resources (id, campaign_id, user_id, kind, title, content, url, file_name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.DB.ExecContext(ctx, query,
		t.ID, t.CampaignID, t.UserID, t.Kind, t.Title,
		nullString(t.Content), nullString(t.URL), nullString(t.FileName),
		t.CreatedAt, t.UpdatedAt,
	)
	return err
}

func (r *TrainingRepository) ListByCampaign(ctx context.Context, userID, campaignID string) ([]*entity.TrainingResource, error) {
	query := `
		SELECT id, campaign_id, user_id, kind, title, content, url, file_name, created_at, updated_at
		FROM training_resources
		WHERE campaign_id = $1 AND user_id = $2
		ORDER BY created_at DESC
	`

	rows, err := r.DB.QueryContext(ctx, query, campaignID, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var resources []*entity.TrainingResource
	for rows.Next() {
		t, err := scanTraining(rows.Scan)
		if err != nil {
			return nil, err
		}
		resources = append(resources, t)
	}

	return resources, rows.Err()
}

func (r *TrainingRepository) FindByID(ctx context.Context, userID, id string) (*entity.TrainingResource, error) {
	query := `
		SELECT id, campaign_id, user_id, kind, title, content, url, file_name, created_at, updated_at
		FROM training_resources
		WHERE id = $1 AND user_id = $2
	`

	t, err := scanTraining(func(dest ...any) error {
		return r.DB.QueryRowContext(ctx, query, id, userID).Scan(dest...)
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrTrainingResourceNotFound
		}
		return nil, err
	}

	return t, nil
}

func (r *TrainingRepository) Update(ctx context.Context, t *entity.TrainingResource) error {
	query := `
		UPDATE training_resources
		SET title = $1, content = $2, url = $3, updated_at = NOW()
		WHERE id = $4 AND user_id = $5
	`

	res, err := r.DB.ExecContext(ctx, query,
		t.Title, nullString(t.Content), nullString(t.URL), t.ID, t.UserID,
	)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return entity.ErrTrainingResourceNotFound
	}
	return nil
}

func (r *TrainingRepository) Delete(ctx context.Context, userID, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM training_resources WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return entity.ErrTrainingResourceNotFound
	}
	return nil
}

func scanTraining(scan func(dest ...any) error) (*entity.TrainingResource, error) {
	var t entity.TrainingResource
	var content, url, fileName *string

	err := scan(
		&t.ID, &t.CampaignID, &t.UserID, &t.Kind, &t.Title,
		&content, &url, &fileName, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	t.Content = strOrEmpty(content)
	t.URL = strOrEmpty(url)
	t.FileName = strOrEmpty(fileName)
	return &t, nil
}
