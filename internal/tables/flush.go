package tables

// classifyFlushMask scores a 13-bit suited-rank mask (bit r set means a card
// of rank r is present in the flushing suit). Only masks with 5 or more bits
// set represent a flush-Category hand; callers must check popcount before
// trusting the result, matching the flush table's "returns 0 if the pattern
// does not make a flush-Category hand" contract.
func classifyFlushMask(mask uint16) fingerprintScore {
	var present [13]bool
	for r := 0; r < 13; r++ {
		if mask&(1<<uint(r)) != 0 {
			present[r] = true
		}
	}

	if sk, ok := straightKey(present); ok {
		return fingerprintScore{CategoryStraightFlush, int64(sk)}
	}

	top := topRanks(present)
	for len(top) > 5 {
		top = top[:5]
	}
	for len(top) < 5 {
		top = append(top, noRank)
	}
	return fingerprintScore{CategoryFlush, encode(top[0], top[1], top[2], top[3], top[4])}
}

func popcount13(mask uint16) int {
	n := 0
	for mask != 0 {
		n += int(mask & 1)
		mask >>= 1
	}
	return n
}
