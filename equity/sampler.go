package equity

import (
	"fmt"
	"math/rand/v2"
	"sort"

	"github.com/lox/pokerequity/card"
	"github.com/lox/pokerequity/ranges"
)

// maxRejectionRetries bounds how many times draw resamples a single
// player's combo before the whole trial is abandoned and restarted from
// scratch, per spec's rejection-sampling retry budget R.
const maxRejectionRetries = 1000

// weightedRange is a HandRange reduced to the combos that survive a fixed
// dead-card mask, with a prefix sum over weights enabling an O(log n)
// weighted draw via binary search — the "acceptable for small ranges"
// alternative to an alias method.
type weightedRange struct {
	combos []ranges.Combo
	prefix []int
}

func newWeightedRange(hr *ranges.HandRange, deadMask card.Mask) (*weightedRange, error) {
	wr := &weightedRange{}
	running := 0
	for _, c := range hr.Combos {
		if deadMask.Has(c.A) || deadMask.Has(c.B) {
			continue
		}
		running += int(c.Weight)
		wr.combos = append(wr.combos, c)
		wr.prefix = append(wr.prefix, running)
	}
	if len(wr.combos) == 0 || running == 0 {
		return nil, fmt.Errorf("%w: no combos survive the dead-card mask", ranges.ErrImpossibleRange)
	}
	return wr, nil
}

// draw samples a weighted-random combo from the full distribution and
// rejects it post-hoc if either card collides with taken, rather than
// pre-filtering the distribution — pre-filtering conditional on other
// players' draws would require rebuilding the prefix sum every trial.
func (wr *weightedRange) draw(rng *rand.Rand, taken card.Mask) (ranges.Combo, bool) {
	total := wr.prefix[len(wr.prefix)-1]
	for attempt := 0; attempt < maxRejectionRetries; attempt++ {
		target := rng.IntN(total) + 1
		idx := sort.SearchInts(wr.prefix, target)
		c := wr.combos[idx]
		if !taken.Has(c.A) && !taken.Has(c.B) {
			return c, true
		}
	}
	return ranges.Combo{}, false
}
