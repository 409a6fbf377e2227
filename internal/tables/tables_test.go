package tables

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultBuildsOnce(t *testing.T) {
	t.Parallel()
	a := Default()
	b := Default()
	require.Same(t, a, b)
}

func TestCategoryOrdering(t *testing.T) {
	t.Parallel()
	tb := Default()

	// Four deuces (quads) must score higher than any full house.
	quadTwos := [13]int{0: 4}
	fullHouse := [13]int{11: 3, 10: 2} // KKK QQ

	quadScore := classifyRanks(quadTwos)
	fhScore := classifyRanks(fullHouse)
	require.Greater(t, quadScore.Category, fhScore.Category)

	quadKey := uint32(0)
	fhKey := uint32(0)
	for r, c := range quadTwos {
		quadKey += uint32(c) * uint32(rankWeightForTest(r))
	}
	for r, c := range fullHouse {
		fhKey += uint32(c) * uint32(rankWeightForTest(r))
	}
	require.Greater(t, tb.LookupRank(quadKey), tb.LookupRank(fhKey))
}

func TestStraightWheelIsLowest(t *testing.T) {
	t.Parallel()
	wheel := [13]int{12: 1, 0: 1, 1: 1, 2: 1, 3: 1} // A2345
	sixHigh := [13]int{0: 1, 1: 1, 2: 1, 3: 1, 4: 1} // 23456

	wheelScore := classifyRanks(wheel)
	sixHighScore := classifyRanks(sixHigh)
	require.Equal(t, CategoryStraight, wheelScore.Category)
	require.Equal(t, CategoryStraight, sixHighScore.Category)
	require.Less(t, wheelScore.tiebreak, sixHighScore.tiebreak)
}

func TestFlushMaskClassification(t *testing.T) {
	t.Parallel()
	// Royal flush mask: T,J,Q,K,A = ranks 8,9,10,11,12
	royal := uint16(0b1_1111_0000_0000)
	sc := classifyFlushMask(royal)
	require.Equal(t, CategoryStraightFlush, sc.Category)

	// Non-straight flush: 2,4,6,8,T = ranks 0,2,4,6,8
	plain := uint16(0)
	for _, r := range []int{0, 2, 4, 6, 8} {
		plain |= 1 << uint(r)
	}
	sc2 := classifyFlushMask(plain)
	require.Equal(t, CategoryFlush, sc2.Category)
}

func rankWeightForTest(rank int) uint64 {
	return testRankWeights[rank]
}

var testRankWeights = [13]uint64{
	8192, 32769, 69632, 237568, 593920, 1531909, 3563520,
	4300819, 4685870, 4690024, 4767972, 4780561, 4801683,
}
