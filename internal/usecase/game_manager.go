package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/playforge/tictactoe-web/internal/apperror"
	"github.com/playforge/tictactoe-web/internal/entity"
	"github.com/playforge/tictactoe-web/internal/game"
	"github.com/playforge/tictactoe-web/internal/metrics"
)

type preferenceRepo interface {
	SetTheme(ctx context.Context, sessionID, theme string) error
	GetTheme(ctx context.Context, sessionID string) (string, error)
}

// GameManager owns one live game per browser session. Games live in memory
// only and are created lazily; the theme preference is the only thing that
// reaches the store.
type GameManager struct {
	logger         *slog.Logger
	preferenceRepo preferenceRepo

	mu    sync.Mutex
	games map[string]*game.Game
}

func NewGameManager(logger *slog.Logger, preferenceRepo preferenceRepo) *GameManager {
	return &GameManager{
		logger: logger,

		preferenceRepo: preferenceRepo,
		games:          make(map[string]*game.Game),
	}
}

// CurrentGame - returns the session's game state, creating an empty game on
// first use.
func (that *GameManager) CurrentGame(sessionID string) entity.GameState {
	that.mu.Lock()
	defer that.mu.Unlock()

	return entity.NewGameState(that.currentGame(sessionID))
}

// MakeTurn - applies a cell click to the session's game. A rejected move
// leaves the game untouched; the unchanged state is returned alongside the
// sentinel so callers can ignore the click.
func (that *GameManager) MakeTurn(sessionID string, cell int) (entity.GameState, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	gameInstance := that.currentGame(sessionID)

	if err := gameInstance.MakeMove(cell); err != nil {
		metrics.MovesTotal.WithLabelValues("rejected").Inc()

		return entity.NewGameState(gameInstance), fmt.Errorf("failed to make move: %w", err)
	}

	metrics.MovesTotal.WithLabelValues("applied").Inc()

	if result := gameInstance.Result(); result != "" {
		metrics.GamesFinishedTotal.WithLabelValues(outcomeLabel(result)).Inc()
		that.logger.Info("game finished", "result", result)
	}

	return entity.NewGameState(gameInstance), nil
}

// Restart - discards the session's board and starts over with X to move.
func (that *GameManager) Restart(sessionID string) entity.GameState {
	that.mu.Lock()
	defer that.mu.Unlock()

	gameInstance := that.currentGame(sessionID)
	gameInstance.Reset()

	return entity.NewGameState(gameInstance)
}

// Theme - resolves the session's stored theme. A missing or unrecognized
// stored value falls back to the default.
func (that *GameManager) Theme(ctx context.Context, sessionID string) (string, error) {
	theme, err := that.preferenceRepo.GetTheme(ctx, sessionID)
	if errors.Is(err, apperror.ErrThemeNotFound) {
		return entity.DefaultTheme, nil
	}

	if err != nil {
		return "", fmt.Errorf("failed to get theme: %w", err)
	}

	if !entity.IsKnownTheme(theme) {
		return entity.DefaultTheme, nil
	}

	return theme, nil
}

// SaveTheme - persists the session's theme. Values outside the closed set
// are rejected.
func (that *GameManager) SaveTheme(ctx context.Context, sessionID, theme string) error {
	if !entity.IsKnownTheme(theme) {
		return fmt.Errorf("%w: %q", apperror.ErrUnknownTheme, theme)
	}

	if err := that.preferenceRepo.SetTheme(ctx, sessionID, theme); err != nil {
		return fmt.Errorf("failed to save theme: %w", err)
	}

	return nil
}

func (that *GameManager) currentGame(sessionID string) *game.Game {
	gameInstance, ok := that.games[sessionID]
	if !ok {
		gameInstance = game.NewGame()
		that.games[sessionID] = gameInstance
	}

	return gameInstance
}

func outcomeLabel(result string) string {
	switch result {
	case game.PlayerX:
		return "win_x"
	case game.PlayerO:
		return "win_o"
	default:
		return "draw"
	}
}
