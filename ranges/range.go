// Package ranges parses the compact range grammar ("AK,22+,T9s") into
// normalized, weighted lists of 2-card starting hands that seed the equity
// simulator.
package ranges

import "github.com/lox/pokerequity/card"

// Combo is one concrete 2-card starting hand with a sampling weight in
// 0..100. A is always the lower card by index (A < B).
type Combo struct {
	A, B   card.Card
	Weight uint8
}

// HandRange is a deduplicated list of Combos, sorted ascending by (A, B) so
// that equal inputs always produce the same order regardless of how the
// range string was written.
type HandRange struct {
	Combos []Combo
}

// TotalWeight sums the weights of every combo in the range.
func (hr *HandRange) TotalWeight() int {
	total := 0
	for _, c := range hr.Combos {
		total += int(c.Weight)
	}
	return total
}
