package boardtexture_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lox/pokerequity/card"
	"github.com/lox/pokerequity/hand"
	"github.com/lox/pokerequity/internal/boardtexture"
)

func mustHand(t *testing.T, s string) hand.Hand {
	t.Helper()
	cs, err := card.ParseCards(s)
	require.NoError(t, err)
	return hand.FromCards(cs...)
}

func TestAnalyzeTextureUnderThreeCardsIsDry(t *testing.T) {
	require.Equal(t, boardtexture.Dry, boardtexture.AnalyzeTexture(mustHand(t, "2c7h")))
}

func TestAnalyzeTextureRainbowDisconnectedIsDry(t *testing.T) {
	require.Equal(t, boardtexture.Dry, boardtexture.AnalyzeTexture(mustHand(t, "2c7d9h")))
}

func TestAnalyzeTextureMonotoneConnectedIsVeryWet(t *testing.T) {
	require.Equal(t, boardtexture.VeryWet, boardtexture.AnalyzeTexture(mustHand(t, "8s9sTs")))
}

func TestAnalyzeTexturePairedTwoToneIsWetter(t *testing.T) {
	dry := boardtexture.AnalyzeTexture(mustHand(t, "2c7d9h"))
	paired := boardtexture.AnalyzeTexture(mustHand(t, "2c2d9c"))
	require.Greater(t, paired, dry)
}

func TestAnalyzeFlushPotentialMonotone(t *testing.T) {
	info := boardtexture.AnalyzeFlushPotential(mustHand(t, "2s7sJs"))
	require.True(t, info.IsMonotone)
	require.False(t, info.IsRainbow)
	require.Equal(t, 3, info.MaxSuitCount)
	require.NotNil(t, info.DominantSuit)
	require.Equal(t, card.Spades, *info.DominantSuit)
}

func TestAnalyzeFlushPotentialRainbow(t *testing.T) {
	info := boardtexture.AnalyzeFlushPotential(mustHand(t, "2s7dJh"))
	require.True(t, info.IsRainbow)
	require.False(t, info.IsMonotone)
	require.Equal(t, 1, info.MaxSuitCount)
}

func TestAnalyzeStraightPotentialConnected(t *testing.T) {
	info := boardtexture.AnalyzeStraightPotential(mustHand(t, "7s8d9h"))
	require.Equal(t, 3, info.ConnectedCards)
}

func TestAnalyzeStraightPotentialWheel(t *testing.T) {
	info := boardtexture.AnalyzeStraightPotential(mustHand(t, "Ac2d3h"))
	require.True(t, info.HasAce)
	require.Equal(t, 3, info.ConnectedCards)
}

func TestAnalyzeStraightPotentialBroadway(t *testing.T) {
	info := boardtexture.AnalyzeStraightPotential(mustHand(t, "TcJdQh"))
	require.Equal(t, 3, info.BroadwayCards)
}

func TestDetectDrawsFlushDraw(t *testing.T) {
	hole := mustHand(t, "AsKs")
	board := mustHand(t, "2s7sJh")
	info := boardtexture.DetectDraws(hole, board)
	require.Contains(t, info.Draws, boardtexture.NutFlushDraw)
	require.Equal(t, 9, info.Outs)
	require.True(t, info.HasStrongDraw())
}

func TestDetectDrawsOpenEndedStraightDraw(t *testing.T) {
	hole := mustHand(t, "9h8d")
	board := mustHand(t, "7c6dAs")
	info := boardtexture.DetectDraws(hole, board)
	require.Contains(t, info.Draws, boardtexture.OpenEndedStraightDraw)
	require.Equal(t, 8, info.Outs)
}

func TestDetectDrawsNoDrawPreflop(t *testing.T) {
	hole := mustHand(t, "AsKs")
	board := hand.Empty()
	info := boardtexture.DetectDraws(hole, board)
	require.Equal(t, []boardtexture.DrawType{boardtexture.NoDraw}, info.Draws)
}

func TestDetectDrawsComboDraw(t *testing.T) {
	hole := mustHand(t, "9s8s")
	board := mustHand(t, "7s6dAh")
	info := boardtexture.DetectDraws(hole, board)
	require.True(t, info.HasStrongDraw())
	require.GreaterOrEqual(t, info.Outs, 12)
}
