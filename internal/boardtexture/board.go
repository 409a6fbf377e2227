// Package boardtexture classifies community-card coordination (wetness,
// flush/straight potential) and hole-card draws against a board. It is
// read-only analytics over an already-built hand.Hand: neither the
// evaluator nor the equity simulator consult it.
package boardtexture

import (
	"math/bits"

	"github.com/lox/pokerequity/card"
	"github.com/lox/pokerequity/hand"
)

// Texture represents the "wetness" of a board from dry to very wet.
type Texture int

const (
	Dry Texture = iota
	SemiWet
	Wet
	VeryWet
)

func (t Texture) String() string {
	switch t {
	case Dry:
		return "dry"
	case SemiWet:
		return "semi-wet"
	case Wet:
		return "wet"
	case VeryWet:
		return "very wet"
	default:
		return "unknown"
	}
}

// FlushInfo describes flush potential on a board.
type FlushInfo struct {
	MaxSuitCount int
	DominantSuit *card.Suit
	IsMonotone   bool // single suit, 3+ cards
	IsRainbow    bool // all different suits
}

// StraightInfo describes straight potential on a board.
type StraightInfo struct {
	ConnectedCards int // longest run of connected ranks
	Gaps           int // total gap width across disjoint runs
	HasAce         bool
	BroadwayCards  int // count of T,J,Q,K,A present
}

// AnalyzeTexture scores how coordinated/dangerous a board is. Boards under
// three cards are always Dry: texture is undefined before the flop.
func AnalyzeTexture(board hand.Hand) Texture {
	if board.CountCards() < 3 {
		return Dry
	}

	var wetness int

	flushInfo := AnalyzeFlushPotential(board)
	switch {
	case flushInfo.IsMonotone:
		wetness += 4
	case flushInfo.MaxSuitCount >= 4:
		wetness += 4
	case flushInfo.MaxSuitCount == 3:
		wetness += 3
	case flushInfo.MaxSuitCount == 2:
		wetness += 1
	}

	straightInfo := AnalyzeStraightPotential(board)
	switch {
	case straightInfo.ConnectedCards >= 4:
		wetness += 4
	case straightInfo.ConnectedCards == 3:
		wetness += 3
	case straightInfo.ConnectedCards == 2:
		wetness += 1
	}

	if countBoardPairs(board) >= 1 {
		wetness += 1
	}
	if countHighCards(board) >= 3 {
		wetness += 1
	}

	switch {
	case wetness <= 0:
		return Dry
	case wetness <= 3:
		return SemiWet
	case wetness <= 5:
		return Wet
	default:
		return VeryWet
	}
}

// AnalyzeFlushPotential reports per-suit card counts and the dominant suit.
// Ties in suit count are broken toward the higher-ranked suit-top card,
// mirroring the bit-packed rank mask's natural ordering.
func AnalyzeFlushPotential(board hand.Hand) FlushInfo {
	var suitCounts [4]int
	var suitMasks [4]uint16
	for s := card.Clubs; s <= card.Spades; s++ {
		suitMasks[s] = board.GetSuitMask(s)
		suitCounts[s] = bits.OnesCount16(suitMasks[s])
	}

	var maxCount int
	var dominantSuit *card.Suit
	bestRankForSuit := -1
	nonZeroSuits := 0

	for s := card.Suit(3); ; s-- {
		count := suitCounts[s]
		if count > 0 {
			nonZeroSuits++

			highestRank := bits.Len16(suitMasks[s]) - 1
			if count > maxCount || (count == maxCount && highestRank > bestRankForSuit) {
				maxCount = count
				bestRankForSuit = highestRank
				suit := s
				dominantSuit = &suit
			}
		}
		if s == 0 {
			break
		}
	}

	cardCount := board.CountCards()
	return FlushInfo{
		MaxSuitCount: maxCount,
		DominantSuit: dominantSuit,
		IsMonotone:   nonZeroSuits == 1 && cardCount >= 3,
		IsRainbow:    nonZeroSuits == cardCount && cardCount >= 3,
	}
}

// AnalyzeStraightPotential reports the longest connected rank run on the
// board, including wheel (A-2-3-4-5) connectivity.
func AnalyzeStraightPotential(board hand.Hand) StraightInfo {
	cardCount := board.CountCards()
	if cardCount == 0 {
		return StraightInfo{}
	}

	rankMask := boardRankMask(board)
	hasAce := rankMask&(1<<card.Ace) != 0

	broadwayCount := 0
	for r := card.Ten; r <= card.Ace; r++ {
		if rankMask&(1<<r) != 0 {
			broadwayCount++
		}
	}

	if cardCount == 1 {
		return StraightInfo{ConnectedCards: 1, HasAce: hasAce, BroadwayCards: broadwayCount}
	}

	var ranks []int
	for r := 0; r < 13; r++ {
		if rankMask&(1<<r) != 0 {
			ranks = append(ranks, r)
		}
	}

	maxConnected := 1
	currentConnected := 1
	totalGaps := 0
	for i := 1; i < len(ranks); i++ {
		gap := ranks[i] - ranks[i-1] - 1
		if gap == 0 {
			currentConnected++
			continue
		}
		if currentConnected > maxConnected {
			maxConnected = currentConnected
		}
		currentConnected = 1
		totalGaps += gap
	}
	if currentConnected > maxConnected {
		maxConnected = currentConnected
	}

	// Wheel connectivity treats the ace as rank -1 alongside any low ranks
	// present, without double-counting other runs.
	if hasAce {
		var lowRanks []int
		for _, r := range ranks {
			if r <= 3 {
				lowRanks = append(lowRanks, r)
			}
		}
		if len(lowRanks) >= 2 {
			wheelRanks := append([]int{-1}, lowRanks...)
			wheelConnected, wheelMax := 1, 1
			for i := 1; i < len(wheelRanks); i++ {
				if wheelRanks[i]-wheelRanks[i-1] == 1 {
					wheelConnected++
				} else {
					if wheelConnected > wheelMax {
						wheelMax = wheelConnected
					}
					wheelConnected = 1
				}
			}
			if wheelConnected > wheelMax {
				wheelMax = wheelConnected
			}
			if wheelMax > maxConnected {
				maxConnected = wheelMax
			}
		}
	}

	return StraightInfo{
		ConnectedCards: maxConnected,
		Gaps:           totalGaps,
		HasAce:         hasAce,
		BroadwayCards:  broadwayCount,
	}
}

func boardRankMask(board hand.Hand) uint16 {
	var m uint16
	for s := card.Clubs; s <= card.Spades; s++ {
		m |= board.GetSuitMask(s)
	}
	return m
}

func countBoardPairs(board hand.Hand) int {
	var counts [13]int
	for s := card.Clubs; s <= card.Spades; s++ {
		suitMask := board.GetSuitMask(s)
		for r := 0; r < 13; r++ {
			if suitMask&(1<<r) != 0 {
				counts[r]++
			}
		}
	}
	pairs := 0
	for _, c := range counts {
		if c >= 2 {
			pairs++
		}
	}
	return pairs
}

func countHighCards(board hand.Hand) int {
	n := 0
	for s := card.Clubs; s <= card.Spades; s++ {
		n += bits.OnesCount16(board.GetSuitMask(s) & 0x1F00)
	}
	return n
}
