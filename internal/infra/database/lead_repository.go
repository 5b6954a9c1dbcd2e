package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/xavierca1/ligue-outreach/internal/entity"
)

type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

const leadColumns = `
	id, campaign_id, user_id, first_name, last_name, email, phone, company, job_title,
	call_status, sms_status, whatsapp_status, email_status, source_file, created_at, updated_at
`

// CreateBatch inserts all leads of an import in one transaction.
func (r *LeadRepository) CreateBatch(ctx context.Context, leads []*entity.UploadedLead) error {
	if len(leads) == 0 {
		return nil
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `
		INSERT INTO uploaded_leads (` + leadColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`

	for _, l := range leads {
		_, err := tx.ExecContext(ctx, query,
			l.ID, l.CampaignID, l.UserID,
			nullString(l.FirstName), nullString(l.LastName),
			nullString(l.Email), nullString(l.Phone),
			nullString(l.Company), nullString(l.JobTitle),
			l.CallStatus, l.SMSStatus, l.WhatsAppStatus, l.EmailStatus,
			nullString(l.SourceFile), l.CreatedAt, l.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("inserting lead %s: %w", l.ID, err)
		}
	}

	return tx.Commit()
}

func (r *LeadRepository) ListByCampaign(ctx context.Context, userID, campaignID string) ([]*entity.UploadedLead, error) {
	query := `
		SELECT ` + leadColumns + `
		FROM uploaded_leads
		WHERE campaign_id = $1 AND user_id = $2
		ORDER BY created_at ASC
	`

	rows, err := r.DB.QueryContext(ctx, query, campaignID, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var leads []*entity.UploadedLead
	for rows.Next() {
		l, err := scanLead(rows.Scan)
		if err != nil {
			return nil, err
		}
		leads = append(leads, l)
	}

	return leads, rows.Err()
}

func (r *LeadRepository) FindByID(ctx context.Context, userID, id string) (*entity.UploadedLead, error) {
	query := `SELECT ` + leadColumns + ` FROM uploaded_leads WHERE id = $1 AND user_id = $2`

	l, err := scanLead(func(dest ...any) error {
		return r.DB.QueryRowContext(ctx, query, id, userID).Scan(dest...)
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrLeadNotFound
		}
		return nil, err
	}

	return l, nil
}

// ExistingEmails reports which of the given emails are already in the
// campaign, so imports can skip duplicates.
func (r *LeadRepository) ExistingEmails(ctx context.Context, campaignID string, emails []string) (map[string]bool, error) {
	existing := make(map[string]bool)
	if len(emails) == 0 {
		return existing, nil
	}

	query := `SELECT email FROM uploaded_leads WHERE campaign_id = $1 AND email = ANY($2)`

	rows, err := r.DB.QueryContext(ctx, query, campaignID, emails)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var email string
		if err := rows.Scan(&email); err != nil {
			return nil, err
		}
		existing[email] = true
	}

	return existing, rows.Err()
}

// ExistingPhones is the phone counterpart of ExistingEmails. Both sides
// are compared digits-only, so formatting differences still match.
func (r *LeadRepository) ExistingPhones(ctx context.Context, campaignID string, phones []string) (map[string]bool, error) {
	existing := make(map[string]bool)
	if len(phones) == 0 {
		return existing, nil
	}

	query := `
		SELECT regexp_replace(phone, '\D', '', 'g')
		FROM uploaded_leads
		WHERE campaign_id = $1
		  AND phone IS NOT NULL
		  AND regexp_replace(phone, '\D', '', 'g') = ANY($2)
	`

	rows, err := r.DB.QueryContext(ctx, query, campaignID, phones)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var phone string
		if err := rows.Scan(&phone); err != nil {
			return nil, err
		}
		existing[phone] = true
	}

	return existing, rows.Err()
}

func (r *LeadRepository) UpdateChannelStatus(ctx context.Context, id, channel, status string) error {
	var column string
	switch channel {
	case entity.ChannelCall:
		column = "call_status"
	case entity.ChannelSMS:
		column = "sms_status"
	case entity.ChannelWhatsApp:
		column = "whatsapp_status"
	case entity.ChannelEmail:
		column = "email_status"
	default:
		return fmt.Errorf("unknown channel %q", channel)
	}

	query := fmt.Sprintf(`UPDATE uploaded_leads SET %s = $1, updated_at = NOW() WHERE id = $2`, column)
	res, err := r.DB.ExecContext(ctx, query, status, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return entity.ErrLeadNotFound
	}
	return nil
}

func (r *LeadRepository) Delete(ctx context.Context, userID, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM uploaded_leads WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return entity.ErrLeadNotFound
	}
	return nil
}

func scanLead(scan func(dest ...any) error) (*entity.UploadedLead, error) {
	var l entity.UploadedLead
	var firstName, lastName, email, phone, company, jobTitle, sourceFile *string

	err := scan(
		&l.ID, &l.CampaignID, &l.UserID,
		&firstName, &lastName, &email, &phone, &company, &jobTitle,
		&l.CallStatus, &l.SMSStatus, &l.WhatsAppStatus, &l.EmailStatus,
		&sourceFile, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	l.FirstName = strOrEmpty(firstName)
	l.LastName = strOrEmpty(lastName)
	l.Email = strOrEmpty(email)
	l.Phone = strOrEmpty(phone)
	l.Company = strOrEmpty(company)
	l.JobTitle = strOrEmpty(jobTitle)
	l.SourceFile = strOrEmpty(sourceFile)
	return &l, nil
}
