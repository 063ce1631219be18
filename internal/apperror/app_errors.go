package apperror

import "errors"

var (
	ErrGameFinished  = errors.New("game is already finished")
	ErrCellOccupied  = errors.New("cell is already occupied")
	ErrInvalidCell   = errors.New("invalid cell index")
	ErrUnknownTheme  = errors.New("unknown theme")
	ErrThemeNotFound = errors.New("theme not found")
)

// IsRejectedMove - reports whether err is one of the sentinels for an illegal
// click. Callers ignore such a click and keep the previous state.
func IsRejectedMove(err error) bool {
	return errors.Is(err, ErrGameFinished) ||
		errors.Is(err, ErrCellOccupied) ||
		errors.Is(err, ErrInvalidCell)
}
