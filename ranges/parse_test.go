package ranges_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lox/pokerequity/ranges"
)

func combos(t *testing.T, s string) []ranges.Combo {
	t.Helper()
	hr, err := ranges.Parse(s)
	require.NoError(t, err)
	return hr.Combos
}

func TestParseRandom(t *testing.T) {
	t.Parallel()
	require.Len(t, combos(t, "random"), 1326)
}

func TestParsePocketPair(t *testing.T) {
	t.Parallel()
	require.Len(t, combos(t, "33"), 6)
}

func TestParseOffsuit(t *testing.T) {
	t.Parallel()
	require.Len(t, combos(t, "a2o"), 12)
}

func TestParseSuited(t *testing.T) {
	t.Parallel()
	require.Len(t, combos(t, "a2s"), 4)
}

func TestParsePlusUnpairedIncludesTopPair(t *testing.T) {
	t.Parallel()
	require.Len(t, combos(t, "a2+"), 198)
}

func TestParseOffsuitPlus(t *testing.T) {
	t.Parallel()
	require.Len(t, combos(t, "a2o+"), 150)
}

func TestParseSuitedPlus(t *testing.T) {
	t.Parallel()
	require.Len(t, combos(t, "a2s+"), 48)
}

func TestParseMultiplePartsNoOverlap(t *testing.T) {
	t.Parallel()
	require.Len(t, combos(t, "22,a2s+"), 54)
}

func TestParseOverlappingPlusRangesDeduplicate(t *testing.T) {
	t.Parallel()
	require.Len(t, combos(t, "a2s+,a4s+"), 48)
}

func TestParseExplicitAndWeights(t *testing.T) {
	t.Parallel()
	hr, err := ranges.Parse("As2h:50,AA:25,KK:100")
	require.NoError(t, err)
	require.Len(t, hr.Combos, 13)

	byWeight := map[uint8]int{}
	for _, c := range hr.Combos {
		byWeight[c.Weight]++
	}
	require.Equal(t, 1, byWeight[50])
	require.Equal(t, 6, byWeight[25])
	require.Equal(t, 6, byWeight[100])
}

func TestParseDashRangePocketPairs(t *testing.T) {
	t.Parallel()
	require.Len(t, combos(t, "22-55"), 4*6)
}

func TestParseDashRangeSuited(t *testing.T) {
	t.Parallel()
	require.Len(t, combos(t, "A5s-A2s"), 4*4)
}

func TestParseDuplicateLastWriterWins(t *testing.T) {
	t.Parallel()
	hr, err := ranges.Parse("AA:50,AA:90")
	require.NoError(t, err)
	require.Len(t, hr.Combos, 6)
	for _, c := range hr.Combos {
		require.Equal(t, uint8(90), c.Weight)
	}
}

func TestParseDeterministicOrder(t *testing.T) {
	t.Parallel()
	hr1, err := ranges.Parse("AKs,72o,JTs")
	require.NoError(t, err)
	hr2, err := ranges.Parse("JTs,AKs,72o")
	require.NoError(t, err)
	require.Equal(t, hr1.Combos, hr2.Combos)

	for i := 1; i < len(hr1.Combos); i++ {
		prev, cur := hr1.Combos[i-1], hr1.Combos[i]
		require.True(t, prev.A < cur.A || (prev.A == cur.A && prev.B < cur.B))
	}
}

func TestParseInvalidSyntax(t *testing.T) {
	t.Parallel()
	_, err := ranges.Parse("ZZ")
	require.ErrorIs(t, err, ranges.ErrInvalidRangeSyntax)
}

func TestParseDuplicateCardInExplicitCombo(t *testing.T) {
	t.Parallel()
	_, err := ranges.Parse("AsAs")
	require.ErrorIs(t, err, ranges.ErrDuplicateCard)
}

func TestParseEmptyRangeIsImpossible(t *testing.T) {
	t.Parallel()
	_, err := ranges.Parse("   ")
	require.ErrorIs(t, err, ranges.ErrImpossibleRange)
}
