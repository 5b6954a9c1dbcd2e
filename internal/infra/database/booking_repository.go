package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/xavierca1/ligue-outreach/internal/entity"
)

type BookingRepository struct {
	DB *sql.DB
}

func NewBookingRepository(db *sql.DB) *BookingRepository {
	return &BookingRepository{DB: db}
}

func (r *BookingRepository) Create(ctx context.Context, b *entity.Booking) error {
	query := `
		INSERT INTO bookings (id, campaign_id, lead_id, user_id, scheduled_at, status, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.DB.ExecContext(ctx, query,
		b.ID, b.CampaignID, b.LeadID, b.UserID,
		b.ScheduledAt, b.Status, nullString(b.Notes), b.CreatedAt, b.UpdatedAt,
	)
	return err
}

func (r *BookingRepository) ListByCampaign(ctx context.Context, userID, campaignID string) ([]*entity.Booking, error) {
	query := `
		SELECT id, campaign_id, lead_id, user_id, scheduled_at, status, notes, created_at, updated_at
		FROM bookings
		WHERE campaign_id = $1 AND user_id = $2
		ORDER BY scheduled_at ASC
	`

	rows, err := r.DB.QueryContext(ctx, query, campaignID, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		var b entity.Booking
		var notes *string

		if err := rows.Scan(
			&b.ID, &b.CampaignID, &b.LeadID, &b.UserID,
			&b.ScheduledAt, &b.Status, &notes, &b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, err
		}

		b.Notes = strOrEmpty(notes)
		bookings = append(bookings, &b)
	}

	return bookings, rows.Err()
}

func (r *BookingRepository) FindByID(ctx context.Context, userID, id string) (*entity.Booking, error) {
	query := `
		SELECT id, campaign_id, lead_id, user_id, scheduled_at, status, notes, created_at, updated_at
		FROM bookings
		WHERE id = $1 AND user_id = $2
	`

	var b entity.Booking
	var notes *string

	err := r.DB.QueryRowContext(ctx, query, id, userID).Scan(
		&b.ID, &b.CampaignID, &b.LeadID, &b.UserID,
		&b.ScheduledAt, &b.Status, &notes, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrBookingNotFound
		}
		return nil, err
	}

	b.Notes = strOrEmpty(notes)
	return &b, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, userID, id, status string) error {
	query := `UPDATE bookings SET status = $1, updated_at = NOW() WHERE id = $2 AND user_id = $3`

	res, err := r.DB.ExecContext(ctx, query, status, id, userID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return entity.ErrBookingNotFound
	}
	return nil
}

func (r *BookingRepository) Delete(ctx context.Context, userID, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM bookings WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return entity.ErrBookingNotFound
	}
	return nil
}
