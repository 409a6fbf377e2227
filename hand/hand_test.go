package hand

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lox/pokerequity/card"
)

func TestEmptyHand(t *testing.T) {
	t.Parallel()
	h := Empty()
	require.Equal(t, 0, h.CountCards())
	require.False(t, h.HasFlush())
}

func TestAddCommutative(t *testing.T) {
	t.Parallel()
	a := card.NewCard(card.Ace, card.Spades)
	b := card.NewCard(card.King, card.Hearts)

	h1 := Empty().Add(a).Add(b)
	h2 := Empty().Add(b).Add(a)
	require.True(t, h1.Equal(h2))
}

func TestCountAndHasCard(t *testing.T) {
	t.Parallel()
	as := card.NewCard(card.Ace, card.Spades)
	kh := card.NewCard(card.King, card.Hearts)
	qd := card.NewCard(card.Queen, card.Diamonds)

	h := FromCards(as, kh)
	require.True(t, h.HasCard(as))
	require.True(t, h.HasCard(kh))
	require.False(t, h.HasCard(qd))
	require.Equal(t, 2, h.CountCards())

	h = h.Add(qd)
	require.True(t, h.HasCard(qd))
	require.Equal(t, 3, h.CountCards())
}

func TestGetSuitMask(t *testing.T) {
	t.Parallel()
	var cards []card.Card
	for r := card.Rank(0); r < 13; r++ {
		cards = append(cards, card.NewCard(r, card.Spades))
	}
	h := FromCards(cards...)

	require.Equal(t, uint16(0x1FFF), h.GetSuitMask(card.Spades))
	require.Equal(t, uint16(0), h.GetSuitMask(card.Hearts))
}

func TestHasFlush(t *testing.T) {
	t.Parallel()
	var suited []card.Card
	for _, r := range []card.Rank{card.Two, card.Four, card.Six, card.Eight, card.Ten} {
		suited = append(suited, card.NewCard(r, card.Clubs))
	}
	h := FromCards(suited...)
	require.True(t, h.HasFlush())
	require.NotZero(t, h.GetFlushKey())

	noFlush := FromCards(suited[:4]...)
	require.False(t, noFlush.HasFlush())
	require.Zero(t, noFlush.GetFlushKey())
}

func TestSuitCount(t *testing.T) {
	t.Parallel()
	h := FromCards(
		card.NewCard(card.Two, card.Spades),
		card.NewCard(card.Three, card.Spades),
		card.NewCard(card.Four, card.Hearts),
	)
	require.Equal(t, 2, h.SuitCount(card.Spades))
	require.Equal(t, 1, h.SuitCount(card.Hearts))
	require.Equal(t, 0, h.SuitCount(card.Clubs))
}

func TestFromMask(t *testing.T) {
	t.Parallel()
	as := card.NewCard(card.Ace, card.Spades)
	kh := card.NewCard(card.King, card.Hearts)
	m, err := card.MaskOf(as, kh)
	require.NoError(t, err)

	h := FromMask(m)
	require.Equal(t, 2, h.CountCards())
	require.True(t, h.HasCard(as))
	require.True(t, h.HasCard(kh))
}

func TestMergeAssociative(t *testing.T) {
	t.Parallel()
	a := FromCards(card.NewCard(card.Two, card.Clubs))
	b := FromCards(card.NewCard(card.Three, card.Diamonds))
	c := FromCards(card.NewCard(card.Four, card.Hearts))

	left := a.Merge(b).Merge(c)
	right := a.Merge(b.Merge(c))
	require.True(t, left.Equal(right))
}
