package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/playforge/tictactoe-web/internal/apperror"
)

// PreferenceRepository stores the one preference that survives across
// sessions: the visual theme, keyed per session.
type PreferenceRepository interface {
	SetTheme(ctx context.Context, sessionID, theme string) error
	GetTheme(ctx context.Context, sessionID string) (string, error)
}

type dbPreference struct {
	client *redis.Client
}

func NewPreferenceRepository(client *redis.Client) PreferenceRepository {
	return &dbPreference{
		client: client,
	}
}

func (that *dbPreference) SetTheme(ctx context.Context, sessionID, theme string) error {
	themeKey := "theme:" + sessionID

	if err := that.client.Set(ctx, themeKey, theme, 0).Err(); err != nil {
		return fmt.Errorf("failed to set theme: %w", err)
	}

	return nil
}

func (that *dbPreference) GetTheme(ctx context.Context, sessionID string) (string, error) {
	themeKey := "theme:" + sessionID

	response, err := that.client.Get(ctx, themeKey).Result()

	if errors.Is(err, redis.Nil) {
		return "", apperror.ErrThemeNotFound
	}

	if err != nil {
		return "", fmt.Errorf("failed to get theme by session ID: %w", err)
	}

	return response, nil
}
