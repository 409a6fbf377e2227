package tables

import "github.com/lox/pokerequity/hand"

// maxCardsPerHand is the largest number of cards ever passed to Evaluate: two
// hole cards plus a five-card board.
const maxCardsPerHand = 7

// fingerprint pairs a legal rank-count vector with the 32-bit additive key
// Hand.GetRankKey produces for it.
type fingerprint struct {
	counts [13]int
	key    uint32
}

// enumerateFingerprints walks every legal rank-count vector: 13 ranks, each
// present 0..4 times, total card count 0..7. There are 76,155 such vectors
// (49,205 of them with exactly 7 cards); the rank table's perfect hash is
// sized from this count.
func enumerateFingerprints() []fingerprint {
	var out []fingerprint
	var counts [13]int

	var walk func(rank, remaining int, key uint64)
	walk = func(rank, remaining int, key uint64) {
		if rank == 13 {
			out = append(out, fingerprint{counts: counts, key: uint32(key)})
			return
		}
		maxCount := 4
		if remaining < maxCount {
			maxCount = remaining
		}
		for c := 0; c <= maxCount; c++ {
			counts[rank] = c
			walk(rank+1, remaining-c, key+uint64(c)*hand.RankKeyWeight(uint8(rank)))
		}
		counts[rank] = 0
	}
	walk(0, maxCardsPerHand, 0)
	return out
}
