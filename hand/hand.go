// Package hand implements the additive, bit-packed Hand representation the
// evaluator is built around. A Hand aggregates, in O(1) per card, everything
// Evaluate needs: a rank-count fingerprint key, per-suit card counters, a
// running card count, and a 52-bit occupancy mask — all maintained purely by
// addition, so combining two hands is a single pair of machine-word ops.
package hand

import (
	"math/bits"

	"github.com/lox/pokerequity/card"
)

const (
	cardCountShift = 32
	suitsShift     = 48

	// flushCheckMask matches a nonzero high nibble in any of the four suit
	// counter lanes once that lane has accumulated >=5 cards (each suit
	// lane starts biased at 3, see Empty, so 5 cards pushes the lane's bit
	// 3 high: 3+5=8=0b1000).
	flushCheckMask uint64 = 0x8888 << suitsShift

	// emptyKey biases each of the four 4-bit suit-counter lanes to 3 so
	// that up to 7 cards can be added to (or removed from) any one lane
	// without the lane borrowing from or overflowing into its neighbor.
	emptyKey uint64 = 0x3333 << suitsShift
)

// Hand is a compact, value-typed aggregate of a set of distinct cards.
type Hand struct {
	key  uint64
	mask uint64
}

// Empty is the additive identity: the hand containing no cards.
func Empty() Hand {
	return Hand{key: emptyKey}
}

// cardHand returns the Hand holding only c (Empty plus c), used by Add.
func cardHand(c card.Card) Hand {
	rank := uint8(c.Rank())
	suit := uint64(c.Suit())

	suitCounterBit := uint64(1) << (4*suit + suitsShift)
	cardCountBit := uint64(1) << cardCountShift
	rankKeyBits := RankKeyWeight(rank)

	// Suits are packed in 16-bit lanes of the occupancy mask, highest suit
	// first, matching the teacher's GetSuitMask(suit) convention.
	maskBit := uint64(1) << ((3-suit)*16 + uint64(rank))

	return Hand{key: emptyKey + suitCounterBit + cardCountBit + rankKeyBits, mask: maskBit}
}

// Add returns h with card c added. Precondition: c is not already present in
// h; violating this is a caller contract violation per the evaluator's
// undefined-behavior-on-misuse policy, not a checked error.
func (h Hand) Add(c card.Card) Hand {
	return h.Merge(cardHand(c))
}

// Merge combines two hands additively. Used for composing precomputed
// prefixes (board + hole cards) and for building a Hand from a card.Mask.
// Both hands carry Empty's suit-counter bias, so one copy of it is removed.
func (h Hand) Merge(other Hand) Hand {
	return Hand{key: h.key + other.key - emptyKey, mask: h.mask | other.mask}
}

// FromCards builds a Hand from a set of distinct cards.
func FromCards(cards ...card.Card) Hand {
	h := Empty()
	for _, c := range cards {
		h = h.Add(c)
	}
	return h
}

// FromMask builds a Hand from a card.Mask.
func FromMask(m card.Mask) Hand {
	h := Empty()
	for c := card.Card(0); c < 52; c++ {
		if m.Has(c) {
			h = h.Add(c)
		}
	}
	return h
}

// HasCard reports whether c is present in h.
func (h Hand) HasCard(c card.Card) bool {
	rank := uint8(c.Rank())
	suit := uint64(c.Suit())
	bit := uint64(1) << ((3-suit)*16 + uint64(rank))
	return h.mask&bit != 0
}

// GetRankKey returns the low 32 bits of the key: the index into the rank
// table's perfect hash.
func (h Hand) GetRankKey() uint32 {
	return uint32(h.key)
}

// HasFlush reports whether any suit has accumulated 5 or more cards.
func (h Hand) HasFlush() bool {
	return h.key&flushCheckMask != 0
}

// GetFlushKey returns the 13-bit suited-rank mask for the flushing suit, or 0
// if the hand has no flush.
func (h Hand) GetFlushKey() uint16 {
	if !h.HasFlush() {
		return 0
	}
	counters := uint32(h.key >> 32)
	flushCheckBits := counters & (0x8888 << (suitsShift - 32))
	shift := uint(bits.LeadingZeros32(flushCheckBits)) << 2
	return uint16(h.mask >> shift)
}

// CountCards returns the number of cards in h.
func (h Hand) CountCards() int {
	return int((uint32(h.key>>32) >> (cardCountShift - 32)) & 0xf)
}

// SuitCount returns the number of cards of the given suit in h.
func (h Hand) SuitCount(suit card.Suit) int {
	shift := 4*uint(suit) + (suitsShift - 32)
	counters := uint32(h.key >> 32)
	return int((counters>>shift)&0xf) - 3
}

// GetSuitMask returns the 13-bit rank mask of cards of the given suit.
func (h Hand) GetSuitMask(suit card.Suit) uint16 {
	shift := (3 - uint64(suit)) * 16
	return uint16(h.mask >> shift)
}

// Equal reports whether h and other represent the same set of cards.
func (h Hand) Equal(other Hand) bool {
	return h.key == other.key && h.mask == other.mask
}
