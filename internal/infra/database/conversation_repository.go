package database

import (
	"context"
	"database/sql"

	"github.com/xavierca1/ligue-outreach/internal/entity"
)

type ConversationRepository struct {
	DB *sql.DB
}

func NewConversationRepository(db *sql.DB) *ConversationRepository {
	return &ConversationRepository{DB: db}
}

func (r *ConversationRepository) Append(ctx context.Context, m *entity.ConversationMessage) error {
	query := `
		INSERT INTO conversation_history (id, lead_id, campaign_id, direction, channel, body, occurred_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.DB.ExecContext(ctx, query,
		m.ID, m.LeadID, m.CampaignID, m.Direction, m.Channel, m.Body, m.OccurredAt, m.CreatedAt,
	)
	return err
}

// ListByLead joins through uploaded_leads so one user can never read
// another user's conversation log.
func (r *ConversationRepository) ListByLead(ctx context.Context, userID, leadID string) ([]*entity.ConversationMessage, error) {
	query := `
		SELECT ch.id, ch.lead_id, ch.campaign_id, ch.direction, ch.channel, ch.body, ch.occurred_at, ch.created_at
		FROM conversation_history ch
		JOIN uploaded_leads ul ON ul.id = ch.lead_id
		WHERE ch.lead_id = $1 AND ul.user_id = $2
		ORDER BY ch.occurred_at ASC
	`

	rows, err := r.DB.QueryContext(ctx, query, leadID, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []*entity.ConversationMessage
	for rows.Next() {
		var m entity.ConversationMessage
		if err := rows.Scan(
			&m.ID, &m.LeadID, &m.CampaignID, &m.Direction,
			&m.Channel, &m.Body, &m.OccurredAt, &m.CreatedAt,
		); err != nil {
			return nil, err
		}
		messages = append(messages, &m)
	}

	return messages, rows.Err()
}
