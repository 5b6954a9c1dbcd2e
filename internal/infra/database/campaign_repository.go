package database

import (
	"context"
	"database/sql"
	"errors"
	"log"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/xavierca1/ligue-outreach/internal/entity"
)

type CampaignRepository struct {
	DB *sql.DB
}

func NewCampaignRepository(db *sql.DB) *CampaignRepository {
	return &CampaignRepository{DB: db}
}

func (r *CampaignRepository) Create(ctx context.Context, c *entity.Campaign) error {
	query := `
		INSERT INTO campaigns (id, user_id, name, offer, calendar_link, goal, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.DB.ExecContext(ctx, query,
		c.ID,
		c.UserID,
		c.Name,
		c.Offer,
		nullString(c.CalendarLink),
		nullString(c.Goal),
		c.Status,
		c.CreatedAt,
		c.UpdatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return errors.New("campaign name already in use")
		}
		log.Printf("[REPO CAMPAIGN] insert failed: %v", err)
		return err
	}

	return nil
}

func (r *CampaignRepository) FindByID(ctx context.Context, userID, id string) (*entity.Campaign, error) {
	query := `
		SELECT id, user_id, name, offer, calendar_link, goal, status, created_at, updated_at
		FROM campaigns
		WHERE id = $1 AND user_id = $2
	`

	var c entity.Campaign
	var calendarLink, goal *string

	err := r.DB.QueryRowContext(ctx, query, id, userID).Scan(
		&c.ID,
		&c.UserID,
		&c.Name,
		&c.Offer,
		&calendarLink,
		&goal,
		&c.Status,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrCampaignNotFound
		}
		return nil, err
	}

	c.CalendarLink = strOrEmpty(calendarLink)
	c.Goal = strOrEmpty(goal)
	return &c, nil
}

func (r *CampaignRepository) ListByUser(ctx context.Context, userID string) ([]*entity.Campaign, error) {
	query := `
		SELECT id, user_id, name, offer, calendar_link, goal, status, created_at, updated_at
		FROM campaigns
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var campaigns []*entity.Campaign
	for rows.Next() {
		var c entity.Campaign
		var calendarLink, goal *string

		if err := rows.Scan(
			&c.ID, &c.UserID, &c.Name, &c.Offer,
			&calendarLink, &goal, &c.Status, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, err
		}

		c.CalendarLink = strOrEmpty(calendarLink)
		c.Goal = strOrEmpty(goal)
		campaigns = append(campaigns, &c)
	}

	return campaigns, rows.Err()
}

func (r *CampaignRepository) Update(ctx context.Context, c *entity.Campaign) error {
	query := `
		UPDATE campaigns
		SET name = $1, offer = $2, calendar_link = $3, goal = $4, updated_at = NOW()
		WHERE id = $5 AND user_id = $6
	`

	res, err := r.DB.ExecContext(ctx, query,
		c.Name, c.Offer, nullString(c.CalendarLink), nullString(c.Goal), c.ID, c.UserID,
	)
	if err != nil {
		return err
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return entity.ErrCampaignNotFound
	}
	return nil
}

func (r *CampaignRepository) UpdateStatus(ctx context.Context, userID, id, status string) error {
	query := `UPDATE campaigns SET status = $1, updated_at = NOW() WHERE id = $2 AND user_id = $3`

	res, err := r.DB.ExecContext(ctx, query, status, id, userID)
	if err != nil {
		return err
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return entity.ErrCampaignNotFound
	}
	return nil
}

func (r *CampaignRepository) Delete(ctx context.Context, userID, id string) error {
	// Children (sequence steps, leads, bookings...) go with it via FK cascades.
	query := `DELETE FROM campaigns WHERE id = $1 AND user_id = $2`

	res, err := r.DB.ExecContext(ctx, query, id, userID)
	if err != nil {
		return err
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return entity.ErrCampaignNotFound
	}
	return nil
}
