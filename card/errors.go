package card

import (
	"errors"
	"fmt"
)

// ErrInvalidCard is returned by ParseCard/ParseCards on a malformed token.
var ErrInvalidCard = errors.New("invalid card")

// ErrDuplicateCard is returned when a card appears more than once in a
// context that requires uniqueness (a combo, a board, a dead mask).
var ErrDuplicateCard = errors.New("duplicate card")

func duplicateCardError(c Card) error {
	return fmt.Errorf("%w: %s", ErrDuplicateCard, c)
}
