package eval

import (
	"sort"

	"github.com/lox/pokerequity/card"
	"github.com/lox/pokerequity/internal/tables"
)

// ReferenceCategory brute-forces the best poker hand category among all
// 5-card subsets of cards (or the whole set, if fewer than 5 are given).
// This is the naive combinatorial evaluator spec §9 calls for: Evaluate's
// table-driven result must agree with this on category for every 7-card
// hand, independent of any shared table-construction bug.
func ReferenceCategory(cards []card.Card) tables.Category {
	if len(cards) <= 5 {
		return categoryOfFive(cards)
	}
	best := tables.Category(0)
	combinations(cards, 5, func(subset []card.Card) {
		if c := categoryOfFive(subset); c > best {
			best = c
		}
	})
	return best
}

func categoryOfFive(cards []card.Card) tables.Category {
	var rankCounts [13]int
	var suitCounts [4]int
	for _, c := range cards {
		rankCounts[c.Rank()]++
		suitCounts[c.Suit()]++
	}

	isFlush := len(cards) >= 5
	for _, n := range suitCounts {
		if n > 0 && n < len(cards) {
			isFlush = false
		}
	}

	var ranksDesc []int
	for r := 12; r >= 0; r-- {
		if rankCounts[r] > 0 {
			ranksDesc = append(ranksDesc, r)
		}
	}
	isStraight := len(ranksDesc) == 5 && (ranksDesc[0]-ranksDesc[4] == 4 ||
		(ranksDesc[0] == 12 && ranksDesc[1] == 3 && ranksDesc[2] == 2 && ranksDesc[3] == 1 && ranksDesc[4] == 0))

	counts := make([]int, 0, 13)
	for _, n := range rankCounts {
		if n > 0 {
			counts = append(counts, n)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(counts)))

	switch {
	case isStraight && isFlush:
		return tables.CategoryStraightFlush
	case len(counts) > 0 && counts[0] == 4:
		return tables.CategoryFourOfAKind
	case len(counts) >= 2 && counts[0] == 3 && counts[1] >= 2:
		return tables.CategoryFullHouse
	case isFlush:
		return tables.CategoryFlush
	case isStraight:
		return tables.CategoryStraight
	case len(counts) > 0 && counts[0] == 3:
		return tables.CategoryThreeOfAKind
	case len(counts) >= 2 && counts[0] == 2 && counts[1] == 2:
		return tables.CategoryTwoPair
	case len(counts) > 0 && counts[0] == 2:
		return tables.CategoryOnePair
	default:
		return tables.CategoryHighCard
	}
}

func combinations(items []card.Card, k int, yield func([]card.Card)) {
	n := len(items)
	if k > n {
		return
	}
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	for {
		subset := make([]card.Card, k)
		for i, j := range idx {
			subset[i] = items[j]
		}
		yield(subset)

		i := k - 1
		for i >= 0 && idx[i] == i+n-k {
			i--
		}
		if i < 0 {
			return
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}
