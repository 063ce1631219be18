package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/playforge/tictactoe-web/internal/apperror"
	"github.com/playforge/tictactoe-web/internal/entity"
	"github.com/playforge/tictactoe-web/testing/suite"
)

func TestPreferenceRepository_SetTheme(t *testing.T) {
	ctx, st := suite.New(t)

	preferenceRepo := NewPreferenceRepository(st.Storage)

	// Given: a session picking the dark theme
	// When: SetTheme is called
	err := preferenceRepo.SetTheme(ctx, "session-123", entity.ThemeDark)

	// Then: no error should be returned
	require.NoError(t, err)
}

func TestPreferenceRepository_GetTheme(t *testing.T) {
	t.Run("GetTheme_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		preferenceRepo := NewPreferenceRepository(st.Storage)

		// Given: a stored theme for the session
		err := preferenceRepo.SetTheme(ctx, "session-123", entity.ThemeLight)
		require.NoError(t, err)

		// When: GetTheme is called for the same session
		theme, err := preferenceRepo.GetTheme(ctx, "session-123")

		// Then: the stored theme should be returned
		require.NoError(t, err)
		require.Equal(t, entity.ThemeLight, theme)
	})

	t.Run("GetTheme_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		preferenceRepo := NewPreferenceRepository(st.Storage)

		// When: GetTheme is called for a session that stored nothing
		theme, err := preferenceRepo.GetTheme(ctx, "session-without-theme")

		// Then: an ErrThemeNotFound error should be returned
		require.Error(t, err)
		assert.ErrorIs(t, err, apperror.ErrThemeNotFound)
		assert.Empty(t, theme)
	})

	t.Run("GetTheme_OverwriteKeepsLatest", func(t *testing.T) {
		ctx, st := suite.New(t)

		preferenceRepo := NewPreferenceRepository(st.Storage)

		// Given: a session that changed its mind
		require.NoError(t, preferenceRepo.SetTheme(ctx, "session-123", entity.ThemeLight))
		require.NoError(t, preferenceRepo.SetTheme(ctx, "session-123", entity.ThemeSystem))

		// When: GetTheme is called
		theme, err := preferenceRepo.GetTheme(ctx, "session-123")

		// Then: the latest value should win
		require.NoError(t, err)
		assert.Equal(t, entity.ThemeSystem, theme)
	})
}
