package ranges

import "errors"

var (
	// ErrInvalidRangeSyntax is returned for unknown tokens, malformed ranks,
	// or an out-of-bounds weight.
	ErrInvalidRangeSyntax = errors.New("ranges: invalid range syntax")
	// ErrDuplicateCard is returned when an explicit combo names the same
	// card twice (e.g. "AsAs").
	ErrDuplicateCard = errors.New("ranges: duplicate card in combo")
	// ErrImpossibleRange is returned when a range string parses to zero
	// combos.
	ErrImpossibleRange = errors.New("ranges: range contains no combos")
)
