package database

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // Postgres driver
)

// NewDBConnection opens the pool and proves it with a ping.
func NewDBConnection(connString string) (*sql.DB, error) {
	db, err := sql.Open("pgx", connString)
	if err != nil {
		return nil, err
	}

	// Pool limits matter here; the managed backend caps connections.
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}

	return db, nil
}

// nullString maps "" to SQL NULL on optional text columns.
func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// strOrEmpty is the inverse of nullString for scans.
func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
