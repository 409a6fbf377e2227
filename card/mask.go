package card

import "math/bits"

// MaskOf, Has, Add, Count and GetCardMask live below.

// Mask is a 52-bit occupancy bitmask over card indices 0..51, used as the
// spec's DeadMask and wherever a set of cards needs O(1) membership tests.
type Mask uint64

// MaskOf ORs the given cards into a Mask. A duplicate card within the input
// is reported via DuplicateCard rather than silently merged.
func MaskOf(cards ...Card) (Mask, error) {
	var m Mask
	for _, c := range cards {
		bit := Mask(1) << uint(c)
		if m&bit != 0 {
			return 0, duplicateCardError(c)
		}
		m |= bit
	}
	return m, nil
}

// Has reports whether c is set in m.
func (m Mask) Has(c Card) bool {
	return m&(Mask(1)<<uint(c)) != 0
}

// Add returns m with c set.
func (m Mask) Add(c Card) Mask {
	return m | (Mask(1) << uint(c))
}

// Count returns the number of cards set in m.
func (m Mask) Count() int {
	return bits.OnesCount64(uint64(m))
}

// GetCardMask parses a concatenation of 2-character card tokens into a Mask,
// matching spec's external interface get_card_mask("2h3d4c") -> u64. The
// empty string maps to the empty mask. A repeated card yields ErrDuplicateCard.
func GetCardMask(s string) (Mask, error) {
	cards, err := ParseCards(s)
	if err != nil {
		return 0, err
	}
	return MaskOf(cards...)
}
