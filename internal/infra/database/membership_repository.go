package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/xavierca1/ligue-outreach/internal/entity"
)

var ErrMembershipNotFound = errors.New("membership not found")

type MembershipRepository struct {
	DB *sql.DB
}

func NewMembershipRepository(db *sql.DB) *MembershipRepository {
	return &MembershipRepository{DB: db}
}

func (r *MembershipRepository) FindByUserID(ctx context.Context, userID string) (*entity.Membership, error) {
	query := `SELECT user_id, email, role FROM memberships WHERE user_id = $1`

	var m entity.Membership
	err := r.DB.QueryRowContext(ctx, query, userID).Scan(&m.UserID, &m.Email, &m.Role)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMembershipNotFound
		}
		return nil, err
	}

	return &m, nil
}

func (r *MembershipRepository) List(ctx context.Context) ([]*entity.Membership, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT user_id, email, role FROM memberships ORDER BY email ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []*entity.Membership
	for rows.Next() {
		var m entity.Membership
		if err := rows.Scan(&m.UserID, &m.Email, &m.Role); err != nil {
			return nil, err
		}
		members = append(members, &m)
	}

	return members, rows.Err()
}

// Upsert seeds the role row on first login and carries admin role
// changes. An empty incoming email keeps the stored one.
func (r *MembershipRepository) Upsert(ctx context.Context, m *entity.Membership) error {
	query := `
		INSERT INTO memberships (user_id, email, role)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id)
		DO UPDATE SET email = COALESCE(NULLIF(EXCLUDED.email, ''), memberships.email), role = EXCLUDED.role
	`

	_, err := r.DB.ExecContext(ctx, query, m.UserID, m.Email, m.Role)
	return err
}
