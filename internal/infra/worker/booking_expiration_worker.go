package worker

import (
	"context"
	"database/sql"
	"log"
	"time"
)

// BookingExpirationWorker sweeps bookings that stayed SCHEDULED past their
// slot and marks them NO_SHOW, so dashboards don't show stale meetings.
type BookingExpirationWorker struct {
	db           *sql.DB
	graceWindow  time.Duration
	tickInterval time.Duration
}

func NewBookingExpirationWorker(db *sql.DB) *BookingExpirationWorker {
	return &BookingExpirationWorker{
		db:           db,
		graceWindow:  2 * time.Hour,
		tickInterval: 15 * time.Minute,
	}
}

func (w *BookingExpirationWorker) Start(ctx context.Context) {
	log.Println("[BOOKINGS] expiration worker started (2h grace window)")

	ticker := time.NewTicker(w.tickInterval)
	defer ticker.Stop()

	w.expireStaleBookings(ctx)

	for {
		select {
		case <-ctx.Done():
			log.Println("[BOOKINGS] expiration worker stopped")
			return
		case <-ticker.C:
			w.expireStaleBookings(ctx)
		}
	}
}

func (w *BookingExpirationWorker) expireStaleBookings(ctx context.Context) {
	query := `
		UPDATE bookings
		SET
			status = 'NO_SHOW',
			updated_at = NOW()
		WHERE
			status = 'SCHEDULED'
			AND scheduled_at < NOW() - INTERVAL '2 hours'
		RETURNING id, campaign_id, scheduled_at
	`

	rows, err := w.db.QueryContext(ctx, query)
	if err != nil {
		log.Printf("[BOOKINGS] sweep query failed: %v", err)
		return
	}
	defer rows.Close()

	expired := 0
	for rows.Next() {
		var bookingID, campaignID string
		var scheduledAt time.Time

		if err := rows.Scan(&bookingID, &campaignID, &scheduledAt); err != nil {
			log.Printf("[BOOKINGS] scan failed: %v", err)
			continue
		}

		log.Printf("[BOOKINGS] no-show: booking=%s campaign=%s slot=%s",
			bookingID, campaignID, scheduledAt.Format(time.RFC3339))
		expired++
	}

	if expired > 0 {
		log.Printf("[BOOKINGS] %d booking(s) marked NO_SHOW", expired)
	}
}
