package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/xavierca1/ligue-outreach/internal/entity"
)

type SettingsRepository struct {
	DB *sql.DB
}

func NewSettingsRepository(db *sql.DB) *SettingsRepository {
	return &SettingsRepository{DB: db}
}

// Find returns defaults for users who never saved settings.
func (r *SettingsRepository) Find(ctx context.Context, userID string) (*entity.UserSettings, error) {
	query := `SELECT user_id, theme, updated_at FROM user_settings WHERE user_id = $1`

	var s entity.UserSettings
	err := r.DB.QueryRowContext(ctx, query, userID).Scan(&s.UserID, &s.Theme, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.DefaultSettings(userID), nil
		}
		return nil, err
	}

	return &s, nil
}

func (r *SettingsRepository) Upsert(ctx context.Context, s *entity.UserSettings) error {
	query := `
		INSERT INTO user_settings (user_id, theme, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (user_id)
		DO UPDATE SET theme = EXCLUDED.theme, updated_at = NOW()
	`

	_, err := r.DB.ExecContext(ctx, query, s.UserID, s.Theme)
	return err
}
