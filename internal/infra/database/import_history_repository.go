package database

import (
	"context"
	"database/sql"

	"github.com/xavierca1/ligue-outreach/internal/entity"
)

type ImportHistoryRepository struct {
	DB *sql.DB
}

func NewImportHistoryRepository(db *sql.DB) *ImportHistoryRepository {
	return &ImportHistoryRepository{DB: db}
}

func (r *ImportHistoryRepository) Create(ctx context.Context, h *entity.ImportHistory) error {
	query := `
		INSERT INTO lead_import_history (id, campaign_id, user_id, file_name, total_rows, imported_rows, skipped_rows, invalid_rows, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.DB.ExecContext(ctx, query,
		h.ID, h.CampaignID, h.UserID, h.FileName,
		h.TotalRows, h.ImportedRows, h.SkippedRows, h.InvalidRows,
		h.Status, h.CreatedAt,
	)
	return err
}

func (r *ImportHistoryRepository) ListByCampaign(ctx context.Context, userID, campaignID string) ([]*entity.ImportHistory, error) {
	query := `
		SELECT id, campaign_id, user_id, file_name, total_rows, imported_rows, skipped_rows, invalid_rows, status, created_at
		FROM lead_import_history
		WHERE campaign_id = $1 AND user_id = $2
		ORDER BY created_at DESC
	`

	rows, err := r.DB.QueryContext(ctx, query, campaignID, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var history []*entity.ImportHistory
	for rows.Next() {
		var h entity.ImportHistory
		if err := rows.Scan(
			&h.ID, &h.CampaignID, &h.UserID, &h.FileName,
			&h.TotalRows, &h.ImportedRows, &h.SkippedRows, &h.InvalidRows,
			&h.Status, &h.CreatedAt,
		); err != nil {
			return nil, err
		}
		history = append(history, &h)
	}

	return history, rows.Err()
}
