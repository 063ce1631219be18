package entity

import "github.com/playforge/tictactoe-web/internal/game"

const (
	StatusOngoing  = "ongoing"
	StatusFinished = "finished"
)

// GameState is the wire form of a game. Winner and status are computed from
// the board when the state is built, so they can never go stale.
type GameState struct {
	Board  [9]string `json:"board"`
	Turn   string    `json:"turn"`
	Winner string    `json:"winner"`
	Status string    `json:"status"`
}

// NewGameState - snapshots the game for a client. The turn is blanked once
// the game is finished, it carries no meaning in a terminal state.
func NewGameState(gameInstance *game.Game) GameState {
	state := GameState{
		Board:  gameInstance.Board,
		Turn:   gameInstance.Turn,
		Status: StatusOngoing,
	}

	if result := gameInstance.Result(); result != "" {
		state.Winner = result
		state.Status = StatusFinished
		state.Turn = ""
	}

	return state
}
