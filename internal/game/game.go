package game

import (
	"github.com/playforge/tictactoe-web/internal/apperror"
)

const (
	PlayerX   = "X"
	PlayerO   = "O"
	PlayerTie = "-"

	EmptyCell = ""
)

// WinCombos - the 8 fixed lines that end the game: 3 rows, 3 columns, 2 diagonals.
var WinCombos = [][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Game holds the board and whose mark moves next. Cells are indexed 0-8 in
// row-major order. The outcome is never stored; it is derived from the board
// by Result on every call.
type Game struct {
	Board [9]string `json:"board"`
	Turn  string    `json:"turn"`
}

// NewGame - returns an all-empty board with X to move. X opens after every
// restart as well.
func NewGame() *Game {
	return &Game{
		Board: [9]string{},
		Turn:  PlayerX,
	}
}

// Result - scans the win lines in fixed order and returns the winning mark,
// PlayerTie for a full board with no winner, or an empty string while the
// game is still in progress. A board reachable via legal moves has at most
// one winning mark, so the scan order is not observable.
func (that *Game) Result() string {
	for _, combo := range WinCombos {
		a, b, c := that.Board[combo[0]], that.Board[combo[1]], that.Board[combo[2]]
		if a != EmptyCell && a == b && b == c {
			return a
		}
	}

	for _, cell := range that.Board {
		if cell == EmptyCell {
			return ""
		}
	}

	return PlayerTie
}

// IsFinished - reports whether the game reached a terminal state (win or tie).
func (that *Game) IsFinished() bool {
	return that.Result() != ""
}

// MakeMove - places the current turn's mark on cell and flips the turn.
// A move on an out-of-range index, an occupied cell, or a finished game is
// rejected with a sentinel error and leaves the state untouched.
func (that *Game) MakeMove(cell int) error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	if cell < 0 || cell >= len(that.Board) {
		return apperror.ErrInvalidCell
	}

	if that.Board[cell] != EmptyCell {
		return apperror.ErrCellOccupied
	}

	that.Board[cell] = that.Turn
	that.Turn = toggleMark(that.Turn)

	return nil
}

// Reset - discards the board and starts over, identical to NewGame.
func (that *Game) Reset() {
	*that = *NewGame()
}

func toggleMark(currentMark string) string {
	if currentMark == PlayerX {
		return PlayerO
	}
	return PlayerX
}
