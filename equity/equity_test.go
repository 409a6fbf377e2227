package equity_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lox/pokerequity/card"
	"github.com/lox/pokerequity/equity"
	"github.com/lox/pokerequity/ranges"
)

func mustParse(t *testing.T, s string) *ranges.HandRange {
	t.Helper()
	hr, err := ranges.Parse(s)
	require.NoError(t, err)
	return hr
}

func TestCalcEquityAAvsKK(t *testing.T) {
	t.Parallel()
	rgs := []*ranges.HandRange{mustParse(t, "AA"), mustParse(t, "KK")}
	res, err := equity.CalcEquityWithSeed(context.Background(), rgs, 0, 4, 50_000, 1)
	require.NoError(t, err)

	eq := res.Equities()
	require.Len(t, eq, 2)
	require.InDelta(t, 0.82, eq[0], 0.05)
}

func TestCalcEquityRandomVsRandomIsCoinFlip(t *testing.T) {
	t.Parallel()
	rgs := []*ranges.HandRange{mustParse(t, "random"), mustParse(t, "random")}
	res, err := equity.CalcEquityWithSeed(context.Background(), rgs, 0, 4, 50_000, 2)
	require.NoError(t, err)

	eq := res.Equities()
	require.InDelta(t, 0.5, eq[0], 0.03)
	require.InDelta(t, 0.5, eq[1], 0.03)
}

func TestCalcEquityKnownFlop(t *testing.T) {
	t.Parallel()
	board, err := card.GetCardMask("JsTs2c")
	require.NoError(t, err)

	rgs := []*ranges.HandRange{mustParse(t, "AsKs"), mustParse(t, "QhQd")}
	res, err := equity.CalcEquityWithSeed(context.Background(), rgs, board, 4, 50_000, 3)
	require.NoError(t, err)

	eq := res.Equities()
	require.InDelta(t, 0.59, eq[0], 0.06)
}

func TestCalcEquitySumInvariant(t *testing.T) {
	t.Parallel()
	rgs := []*ranges.HandRange{mustParse(t, "AKs"), mustParse(t, "QQ"), mustParse(t, "76s")}
	res, err := equity.CalcEquityWithSeed(context.Background(), rgs, 0, 2, 20_000, 4)
	require.NoError(t, err)

	sum := 0.0
	for _, e := range res.Equities() {
		sum += e
	}
	require.InDelta(t, 1.0, sum, 1e-9)
}

func TestCalcEquityDeterministic(t *testing.T) {
	t.Parallel()
	rgs := func() []*ranges.HandRange {
		return []*ranges.HandRange{mustParse(t, "AA"), mustParse(t, "random")}
	}

	res1, err := equity.CalcEquityWithSeed(context.Background(), rgs(), 0, 3, 10_000, 42)
	require.NoError(t, err)
	res2, err := equity.CalcEquityWithSeed(context.Background(), rgs(), 0, 3, 10_000, 42)
	require.NoError(t, err)

	require.Equal(t, res1, res2)
}

func TestCalcEquityDeadCardBlockingNotImpossible(t *testing.T) {
	t.Parallel()
	dead, err := card.GetCardMask("AsAh")
	require.NoError(t, err)

	rgs := []*ranges.HandRange{mustParse(t, "AA")}
	_, err = equity.CalcEquityWithSeed(context.Background(), rgs, dead, 2, 1000, 5)
	require.NoError(t, err)
}

func TestCalcEquityDeadCardBlockingImpossible(t *testing.T) {
	t.Parallel()
	dead, err := card.GetCardMask("As")
	require.NoError(t, err)

	rgs := []*ranges.HandRange{mustParse(t, "AsAh")}
	_, err = equity.CalcEquityWithSeed(context.Background(), rgs, dead, 2, 1000, 6)
	require.ErrorIs(t, err, ranges.ErrImpossibleRange)
}

func TestCalcEquityTooManyPlayers(t *testing.T) {
	t.Parallel()
	rgs := make([]*ranges.HandRange, 7)
	for i := range rgs {
		rgs[i] = mustParse(t, "random")
	}
	_, err := equity.CalcEquityWithSeed(context.Background(), rgs, 0, 2, 1000, 7)
	require.ErrorIs(t, err, equity.ErrTooManyPlayers)
}

func TestCalcEquityInvalidBoard(t *testing.T) {
	t.Parallel()
	dead, err := card.GetCardMask("2c3c4c5c6c7c")
	require.NoError(t, err)

	rgs := []*ranges.HandRange{mustParse(t, "random"), mustParse(t, "random")}
	_, err = equity.CalcEquityWithSeed(context.Background(), rgs, dead, 2, 1000, 8)
	require.ErrorIs(t, err, equity.ErrInvalidBoard)
}
