// Package eval exposes the public evaluator contract: a single Evaluate call
// turning any 0-to-7-card Hand into a totally ordered 16-bit score.
package eval

import (
	"github.com/lox/pokerequity/hand"
	"github.com/lox/pokerequity/internal/tables"
)

// Evaluate scores h by one table lookup on the flush channel and one on the
// rank channel, returning the stronger of the two. Hands of 0 to 7 cards are
// all scored. Evaluating a Hand built from more than 7 cards, or containing a
// duplicate card, is a caller contract violation: the result is unspecified,
// not an error.
func Evaluate(h hand.Hand) uint16 {
	return EvaluateWith(tables.Default(), h)
}

// EvaluateWith scores h against an explicit table set, letting callers swap
// in tables loaded from a blob (tables.Unmarshal) instead of the process
// default.
func EvaluateWith(t *tables.Tables, h hand.Hand) uint16 {
	var flushScore uint16
	if h.HasFlush() {
		flushScore = t.LookupFlush(h.GetFlushKey())
	}
	rankScore := t.LookupRank(h.GetRankKey())
	if flushScore > rankScore {
		return flushScore
	}
	return rankScore
}
