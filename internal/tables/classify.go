package tables

import "sort"

// Category enumerates the 9 poker hand categories in ascending strength
// order. Flush and StraightFlush are never produced by classifyRanks: those
// two bands come exclusively from the flush table (see flush.go); every
// other band comes from the rank-count fingerprint table built here.
type Category int

const (
	CategoryHighCard Category = iota
	CategoryOnePair
	CategoryTwoPair
	CategoryThreeOfAKind
	CategoryStraight
	CategoryFlush
	CategoryFullHouse
	CategoryFourOfAKind
	CategoryStraightFlush
	numCategories
)

// noRank is the encode() sentinel for a kicker slot with no card available
// (only possible when the fingerprint has fewer than 7 cards).
const noRank = -1

// encode packs a sequence of rank values (each -1..12) into a single
// comparable integer via a fixed-radix Horner scheme. The radix (14) leaves
// room for the "no rank" sentinel alongside the 13 real ranks, so two
// fingerprints that differ only in whether a kicker slot is populated never
// collide.
func encode(ranks ...int) int64 {
	var key int64
	for _, r := range ranks {
		key = key*14 + int64(r+1)
	}
	return key
}

// fingerprintScore is the outcome of classifying one rank-count fingerprint:
// which Category it falls in, and a tiebreak key that sorts consistently
// with hand strength within that Category.
type fingerprintScore struct {
	Category Category
	tiebreak int64
}

// classifyRanks scores a rank-count fingerprint (counts[r] = number of cards
// of rank r present, 0..4, for 0..7 total cards) by the best non-flush
// 5-card (or fewer) poker hand it can produce. Straights are included here
// (they don't depend on suit); flushes and straight flushes are not — those
// are resolved separately by the flush table.
func classifyRanks(counts [13]int) fingerprintScore {
	var quads, trips, pairs, singles []int
	present := [13]bool{}
	for r := 12; r >= 0; r-- {
		switch counts[r] {
		case 4:
			quads = append(quads, r)
			present[r] = true
		case 3:
			trips = append(trips, r)
			present[r] = true
		case 2:
			pairs = append(pairs, r)
			present[r] = true
		case 1:
			singles = append(singles, r)
			present[r] = true
		}
	}

	if len(quads) >= 1 {
		q := quads[0]
		kicker := bestOther(present, q)
		return fingerprintScore{CategoryFourOfAKind, encode(q, kicker)}
	}

	if len(trips) >= 1 && (len(trips) >= 2 || len(pairs) >= 1) {
		tripRank := trips[0]
		var pairRank int
		if len(trips) >= 2 {
			pairRank = trips[1]
		} else {
			pairRank = pairs[0]
		}
		return fingerprintScore{CategoryFullHouse, encode(tripRank, pairRank)}
	}

	if sk, ok := straightKey(present); ok {
		return fingerprintScore{CategoryStraight, int64(sk)}
	}

	if len(trips) >= 1 {
		tripRank := trips[0]
		k1, k2 := bestTwoOther(present, tripRank, noRank)
		return fingerprintScore{CategoryThreeOfAKind, encode(tripRank, k1, k2)}
	}

	if len(pairs) >= 2 {
		p1, p2 := pairs[0], pairs[1]
		kicker := bestOther(present, p1, p2)
		return fingerprintScore{CategoryTwoPair, encode(p1, p2, kicker)}
	}

	if len(pairs) == 1 {
		pairRank := pairs[0]
		k1, k2, k3 := bestThreeOther(present, pairRank)
		return fingerprintScore{CategoryOnePair, encode(pairRank, k1, k2, k3)}
	}

	top := topRanks(present, 5)
	for len(top) < 5 {
		top = append(top, noRank)
	}
	return fingerprintScore{CategoryHighCard, encode(top[0], top[1], top[2], top[3], top[4])}
}

// straightKey reports the straight present in the given ranks (if any) and a
// tiebreak key in 0..9, the wheel (A-2-3-4-5) being lowest.
func straightKey(present [13]bool) (int, bool) {
	for high := 12; high >= 4; high-- {
		if present[high] && present[high-1] && present[high-2] && present[high-3] && present[high-4] {
			return high - 3, true // 1..9
		}
	}
	if present[12] && present[0] && present[1] && present[2] && present[3] {
		return 0, true // wheel, lowest straight
	}
	return 0, false
}

func topRanks(present [13]bool, exclude ...int) []int {
	excluded := make(map[int]bool, len(exclude))
	for _, e := range exclude {
		excluded[e] = true
	}
	var ranks []int
	for r := 12; r >= 0; r-- {
		if present[r] && !excluded[r] {
			ranks = append(ranks, r)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(ranks)))
	return ranks
}

func bestOther(present [13]bool, exclude ...int) int {
	ranks := topRanks(present, exclude...)
	if len(ranks) == 0 {
		return noRank
	}
	return ranks[0]
}

func bestTwoOther(present [13]bool, exclude ...int) (int, int) {
	ranks := topRanks(present, exclude...)
	k1, k2 := noRank, noRank
	if len(ranks) > 0 {
		k1 = ranks[0]
	}
	if len(ranks) > 1 {
		k2 = ranks[1]
	}
	return k1, k2
}

func bestThreeOther(present [13]bool, exclude ...int) (int, int, int) {
	ranks := topRanks(present, exclude...)
	k1, k2, k3 := noRank, noRank, noRank
	if len(ranks) > 0 {
		k1 = ranks[0]
	}
	if len(ranks) > 1 {
		k2 = ranks[1]
	}
	if len(ranks) > 2 {
		k3 = ranks[2]
	}
	return k1, k2, k3
}
