package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/playforge/tictactoe-web/internal/entity"
	"github.com/playforge/tictactoe-web/internal/pkg"
)

const sessionCookieName = "user_session"

type gameManager interface {
	CurrentGame(sessionID string) entity.GameState
	MakeTurn(sessionID string, cell int) (entity.GameState, error)
	Restart(sessionID string) entity.GameState
}

type Server struct {
	logger   *slog.Logger
	manager  gameManager
	upgrader websocket.Upgrader
	handlers map[string]func(conn *websocket.Conn, sessionID string, message *Message) error
}

func New(logger *slog.Logger, manager gameManager) *Server {
	server := &Server{
		logger:  logger,
		manager: manager,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(_ *http.Request) bool { return true },
		},
		handlers: make(map[string]func(*websocket.Conn, string, *Message) error),
	}

	server.handlers[ActionConnect] = server.handleConnect
	server.handlers[ActionGameState] = server.handleGameState
	server.handlers[ActionGameTurn] = server.handleGameTurn
	server.handlers[ActionGameRestart] = server.handleGameRestart

	return server
}

// Start - starts the WebSocket server.
func (that *Server) Start(ctx context.Context, port string) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", that.serveWS)

	srv := &http.Server{
		Addr:        ":" + port,
		Handler:     mux,
		IdleTimeout: 30 * time.Second,
	}

	go func() {
		<-ctx.Done()
		_ = srv.Close()
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

func (that *Server) serveWS(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "serveWS")

	sessionID, responseHeader := that.resolveSession(r)

	conn, err := that.upgrader.Upgrade(w, r, responseHeader)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}

	defer conn.Close()

	log.Info("WebSocket connection established")

	that.handleMessages(conn, sessionID)
}

// handleMessages - processes messages from the client until the connection closes.
func (that *Server) handleMessages(conn *websocket.Conn, sessionID string) {
	log := that.logger.With("method", "handleMessages")

	for {
		var message Message
		if err := conn.ReadJSON(&message); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Error("error reading message", "error", err)
			}
			return
		}

		handler, ok := that.handlers[message.Action]
		if !ok {
			log.Error("unknown action", "action", message.Action)
			continue
		}

		if err := handler(conn, sessionID, &message); err != nil {
			log.Error("error processing message", "error", err)
		}
	}
}

// resolveSession - reads the session cookie, minting one on first contact.
// The Set-Cookie header has to travel with the upgrade response.
func (that *Server) resolveSession(r *http.Request) (string, http.Header) {
	if cookie, err := r.Cookie(sessionCookieName); err == nil {
		return cookie.Value, nil
	}

	cookie := &http.Cookie{
		Name:    sessionCookieName,
		Value:   pkg.GenerateNewSessionID(),
		Expires: time.Now().Add(24 * time.Hour),
		Path:    "/",
	}

	responseHeader := http.Header{}
	responseHeader.Add("Set-Cookie", cookie.String())

	return cookie.Value, responseHeader
}

func (that *Server) send(conn *websocket.Conn, action string, payload ResponsePayload) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	response := Message{
		Action:  action,
		Payload: raw,
	}

	if err := conn.WriteJSON(response); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}
