package rest

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/playforge/tictactoe-web/internal/entity"
)

type gameManager interface {
	CurrentGame(sessionID string) entity.GameState
	MakeTurn(sessionID string, cell int) (entity.GameState, error)
	Restart(sessionID string) entity.GameState
	Theme(ctx context.Context, sessionID string) (string, error)
	SaveTheme(ctx context.Context, sessionID, theme string) error
}

type Server struct {
	logger    *slog.Logger
	manager   gameManager
	staticDir string
}

func New(logger *slog.Logger, manager gameManager, staticDir string) *Server {
	return &Server{
		logger:    logger,
		manager:   manager,
		staticDir: staticDir,
	}
}

// Start - starts the HTTP server that carries the page and the game API.
func (that *Server) Start(port string) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      that.routes(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	if err := srv.ListenAndServe(); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

func (that *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/ping", that.handlePing)
	mux.Handle("/metrics", promhttp.Handler())

	mux.HandleFunc("/api/game", that.withSession(that.handleGameState))
	mux.HandleFunc("/api/game/move", that.withSession(that.handleMove))
	mux.HandleFunc("/api/game/restart", that.withSession(that.handleRestart))
	mux.HandleFunc("/api/theme", that.withSession(that.handleTheme))

	if that.staticDir != "" {
		mux.Handle("/", http.FileServer(http.Dir(that.staticDir)))
	}

	return mux
}
