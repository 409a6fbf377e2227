package equity

import "errors"

var (
	// ErrTooManyPlayers is returned when CalcEquity is called with zero
	// ranges or more than the 6-player limit.
	ErrTooManyPlayers = errors.New("equity: too many players")
	// ErrInvalidBoard is returned when the dead-card mask carries more than
	// 5 cards (more than a full board's worth).
	ErrInvalidBoard = errors.New("equity: invalid board")
)
