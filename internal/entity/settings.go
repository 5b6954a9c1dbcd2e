package entity

import (
	"context"
	"time"
)

const (
	ThemeLight = "LIGHT"
	ThemeDark  = "DARK"
)

// UserSettings holds per-user UI preferences the front-end reads back.
type UserSettings struct {
	UserID    string    `json:"user_id"`
	Theme     string    `json:"theme"` // LIGHT, DARK
	UpdatedAt time.Time `json:"updated_at"`
}

func DefaultSettings(userID string) *UserSettings {
	return &UserSettings{
		UserID: userID,
		Theme:  ThemeLight,
	}
}

type SettingsRepositoryInterface interface {
	Find(ctx context.Context, userID string) (*UserSettings, error)
	Upsert(ctx context.Context, s *UserSettings) error
}
