package websocket

import (
	"encoding/json"
	"fmt"

	"github.com/gorilla/websocket"

	"github.com/playforge/tictactoe-web/internal/apperror"
)

func (that *Server) handleConnect(conn *websocket.Conn, sessionID string, message *Message) error {
	state := that.manager.CurrentGame(sessionID)

	return that.send(conn, message.Action, ResponsePayload{
		Session: sessionID,
		Game:    &state,
	})
}

func (that *Server) handleGameState(conn *websocket.Conn, sessionID string, message *Message) error {
	state := that.manager.CurrentGame(sessionID)

	return that.send(conn, message.Action, ResponsePayload{Game: &state})
}

func (that *Server) handleGameTurn(conn *websocket.Conn, sessionID string, message *Message) error {
	var payload TurnPayload
	if err := json.Unmarshal(message.Payload, &payload); err != nil {
		return fmt.Errorf("failed to unmarshal turn payload: %w", err)
	}

	if payload.Cell == nil {
		return fmt.Errorf("%w: missing cell", apperror.ErrInvalidCell)
	}

	state, err := that.manager.MakeTurn(sessionID, *payload.Cell)
	if err != nil && !apperror.IsRejectedMove(err) {
		return fmt.Errorf("failed to make turn: %w", err)
	}

	// a rejected click is ignored: the client re-renders the unchanged state
	return that.send(conn, message.Action, ResponsePayload{Game: &state})
}

func (that *Server) handleGameRestart(conn *websocket.Conn, sessionID string, message *Message) error {
	state := that.manager.Restart(sessionID)

	return that.send(conn, message.Action, ResponsePayload{Game: &state})
}
