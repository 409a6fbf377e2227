package hand

// rankKeyWeights and flushRankBits are the per-rank magic constants the
// additive Hand key is built from. Copied verbatim from the original
// hand-evaluator crate's constants table: rankKeyWeights are chosen so that
// summing them for any legal multiset of 0..7 cards (at most 4 per rank) never
// collides with a different multiset, and so the resulting 32-bit key can be
// perfect-hashed by internal/tables; flushRankBits are the independent
// per-rank bit weights used to build the 13-bit suited-rank key.
var rankKeyWeights = [13]uint64{
	8192, 32769, 69632, 237568, 593920, 1531909, 3563520,
	4300819, 4685870, 4690024, 4767972, 4780561, 4801683,
}

var flushRankBits = [13]uint64{
	1, 2, 4, 8, 16, 32, 64, 128, 256, 512, 1024, 2048, 4096,
}

// RankKeyWeight returns the additive key contribution of a single card of
// the given rank (0..12).
func RankKeyWeight(rank uint8) uint64 {
	return rankKeyWeights[rank]
}

// FlushRankBit returns the flush-table bit contribution of a single card of
// the given rank (0..12).
func FlushRankBit(rank uint8) uint64 {
	return flushRankBits[rank]
}
