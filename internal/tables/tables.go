// Package tables builds and holds the rank table, flush table, and the
// perfect hash that indexes the rank table by rank-count
// fingerprint — the "ground truth" the evaluator package does one table
// lookup against per spec §4.2/§9.
package tables

import "sync"

// Tables holds the two lookup arrays plus the perfect hash used to index
// RankTable. FlushTable is addressed directly by its 13-bit mask and needs
// no hash.
type Tables struct {
	RankTable  []uint16
	FlushTable []uint16

	hash  *perfectHash
	bases [numCategories]uint16
}

// CategoryOf reports which hand category a score returned by LookupRank or
// LookupFlush (or by eval.Evaluate) falls into.
func (t *Tables) CategoryOf(score uint16) Category {
	c := Category(0)
	for i := Category(1); i < numCategories; i++ {
		if t.bases[i] > score {
			break
		}
		c = i
	}
	return c
}

// LookupRank returns the non-flush score for a rank-count fingerprint key
// (Hand.GetRankKey()).
func (t *Tables) LookupRank(key uint32) uint16 {
	return t.RankTable[t.hash.Index(key)]
}

// LookupFlush returns the flush-Category score for a 13-bit suited-rank
// mask (Hand.GetFlushKey()), or 0 if the mask is not itself a flush (the
// flush table's own contract — Evaluate only calls this once Hand.HasFlush
// has already confirmed a flushing suit).
func (t *Tables) LookupFlush(mask uint16) uint16 {
	return t.FlushTable[mask]
}

var (
	defaultOnce   sync.Once
	defaultTables *Tables
)

// Default returns the process-wide table set, building it on first use.
// Construction enumerates the 76,155 legal rank-count fingerprints, scores
// each one, builds the perfect hash over their keys, and separately
// scores all 8192 possible 13-bit flush masks. This happens once per
// process and the result is immutable thereafter, matching spec §5's
// "tables are allocated once at process start and never freed."
func Default() *Tables {
	defaultOnce.Do(func() {
		defaultTables = build()
	})
	return defaultTables
}

// categoryRanking turns the set of distinct tiebreak keys observed for one
// Category into a dense, ascending rank-within-Category lookup, and reports
// how many distinct keys the Category contains (used to size the next
// Category's base offset).
type categoryRanking struct {
	index map[int64]int
	count int
}

func rankCategory(keys map[int64]bool) categoryRanking {
	sorted := make([]int64, 0, len(keys))
	for k := range keys {
		sorted = append(sorted, k)
	}
	sortInt64(sorted)
	index := make(map[int64]int, len(sorted))
	for i, k := range sorted {
		index[k] = i
	}
	return categoryRanking{index: index, count: len(sorted)}
}

func build() *Tables {
	fps := enumerateFingerprints()
	keys := make([]uint32, len(fps))
	rankScores := make([]fingerprintScore, len(fps))
	for i, fp := range fps {
		keys[i] = fp.key
		rankScores[i] = classifyRanks(fp.counts)
	}
	h := buildPerfectHash(keys)

	flushScores := make([]fingerprintScore, 1<<13)
	flushPresent := make([]bool, 1<<13)
	for mask := 0; mask < 1<<13; mask++ {
		if popcount13(uint16(mask)) < 5 {
			continue
		}
		flushScores[mask] = classifyFlushMask(uint16(mask))
		flushPresent[mask] = true
	}

	// Collect distinct tiebreak keys per Category across both tables, so
	// that Flush/StraightFlush (which only ever appear via flushScores)
	// interleave correctly with the rank-table-only categories.
	distinct := make([]map[int64]bool, numCategories)
	for c := range distinct {
		distinct[c] = map[int64]bool{}
	}
	for _, s := range rankScores {
		distinct[s.Category][s.tiebreak] = true
	}
	for mask, ok := range flushPresent {
		if !ok {
			continue
		}
		s := flushScores[mask]
		distinct[s.Category][s.tiebreak] = true
	}

	rankings := make([]categoryRanking, numCategories)
	var bases [numCategories]uint16
	running := 0
	for c := Category(0); c < numCategories; c++ {
		rankings[c] = rankCategory(distinct[c])
		bases[c] = uint16(running)
		running += rankings[c].count
	}

	score := func(s fingerprintScore) uint16 {
		return bases[s.Category] + uint16(rankings[s.Category].index[s.tiebreak])
	}

	rankTable := make([]uint16, h.tableSize)
	for i, fp := range fps {
		rankTable[h.Index(fp.key)] = score(rankScores[i])
	}

	flushTable := make([]uint16, 1<<13)
	for mask := 0; mask < 1<<13; mask++ {
		if flushPresent[mask] {
			flushTable[mask] = score(flushScores[mask])
		}
	}

	return &Tables{RankTable: rankTable, FlushTable: flushTable, hash: h, bases: bases}
}

func sortInt64(s []int64) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j-1] > s[j]; j-- {
			s[j-1], s[j] = s[j], s[j-1]
		}
	}
}
