package websocket

import (
	"encoding/json"

	"github.com/playforge/tictactoe-web/internal/entity"
)

const (
	ActionConnect     = "connect"
	ActionGameState   = "game:state"
	ActionGameTurn    = "game:turn"
	ActionGameRestart = "game:restart"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type TurnPayload struct {
	Cell *int `json:"cell"`
}

type ResponsePayload struct {
	Session string            `json:"session,omitempty"`
	Game    *entity.GameState `json:"game,omitempty"`
}
