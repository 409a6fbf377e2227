package boardtexture

import (
	"math/bits"

	"github.com/lox/pokerequity/card"
	"github.com/lox/pokerequity/hand"
)

// DrawType is a kind of draw a hole-card + board combination can hold.
type DrawType int

const (
	FlushDraw DrawType = iota
	NutFlushDraw
	OpenEndedStraightDraw
	Gutshot
	ComboDraw
	BackdoorFlush
	Overcards
	NoDraw
)

func (d DrawType) String() string {
	switch d {
	case FlushDraw:
		return "flush draw"
	case NutFlushDraw:
		return "nut flush draw"
	case OpenEndedStraightDraw:
		return "open-ended straight draw"
	case Gutshot:
		return "gutshot"
	case ComboDraw:
		return "combo draw"
	case BackdoorFlush:
		return "backdoor flush"
	case Overcards:
		return "overcards"
	case NoDraw:
		return "no draw"
	default:
		return "unknown"
	}
}

// DrawInfo summarizes every draw detected for a hole+board combination.
type DrawInfo struct {
	Draws []DrawType
	Outs  int
}

// HasStrongDraw reports whether any detected draw is a flush draw, an
// open-ended straight draw, or a combo draw.
func (d DrawInfo) HasStrongDraw() bool {
	for _, dt := range d.Draws {
		switch dt {
		case FlushDraw, NutFlushDraw, OpenEndedStraightDraw, ComboDraw:
			return true
		}
	}
	return false
}

// DetectDraws analyzes hole cards against a board of three or more cards.
// Outs across all detected draws are deduplicated via a shared set of cards
// so a card counted for one draw isn't recounted for another.
func DetectDraws(holeCards, board hand.Hand) DrawInfo {
	if board.CountCards() < 3 {
		return DrawInfo{Draws: []DrawType{NoDraw}}
	}

	var draws []DrawType
	outsSeen := make(map[card.Card]bool)
	addOuts := func(cards ...card.Card) {
		for _, c := range cards {
			outsSeen[c] = true
		}
	}

	flush := detectFlushDraw(holeCards, board)
	if flush.has {
		if flush.isNut {
			draws = append(draws, NutFlushDraw)
		} else {
			draws = append(draws, FlushDraw)
		}
		addOuts(flush.outs...)
	}

	straight := detectStraightDraws(holeCards, board)
	if straight.hasOESD {
		draws = append(draws, OpenEndedStraightDraw)
		addOuts(straight.oesdOuts...)
	}
	if straight.hasGutshot {
		draws = append(draws, Gutshot)
		addOuts(straight.gutshotOuts...)
	}

	if board.CountCards() == 3 {
		if detectBackdoorFlush(holeCards, board) {
			draws = append(draws, BackdoorFlush)
		}
	}

	if !flush.has && !straight.hasOESD {
		over := detectOvercards(holeCards, board)
		if len(over) > 0 {
			draws = append(draws, Overcards)
			addOuts(over...)
		}
	}

	totalOuts := len(outsSeen)
	if len(draws) >= 2 && totalOuts >= 12 {
		draws = append(draws, ComboDraw)
	}
	if len(draws) == 0 {
		draws = []DrawType{NoDraw}
	}

	return DrawInfo{Draws: draws, Outs: totalOuts}
}

type flushDrawResult struct {
	has   bool
	isNut bool
	outs  []card.Card
}

// detectFlushDraw treats three or more cards of a suit as a flush draw as
// long as at least one comes from the hole cards.
func detectFlushDraw(holeCards, board hand.Hand) flushDrawResult {
	for s := card.Clubs; s <= card.Spades; s++ {
		holeMask := holeCards.GetSuitMask(s)
		boardMask := board.GetSuitMask(s)
		holeCount := bits.OnesCount16(holeMask)
		total := holeCount + bits.OnesCount16(boardMask)

		if total >= 3 && holeCount > 0 {
			used := holeMask | boardMask
			available := uint16(0x1FFF) &^ used

			var outs []card.Card
			for r := 0; r < 13; r++ {
				if available&(1<<r) != 0 {
					outs = append(outs, card.NewCard(card.Rank(r), s))
				}
			}

			return flushDrawResult{
				has:   true,
				isNut: holeMask&(1<<card.Ace) != 0,
				outs:  outs,
			}
		}
	}
	return flushDrawResult{}
}

type straightDrawResult struct {
	hasOESD     bool
	hasGutshot  bool
	oesdOuts    []card.Card
	gutshotOuts []card.Card
}

func detectStraightDraws(holeCards, board hand.Hand) straightDrawResult {
	rankMask := boardRankMask(holeCards.Merge(board))

	var info straightDrawResult

	for start := 0; start <= 9; start++ {
		consecutive := 0
		for i := 0; i < 4; i++ {
			if rankMask&(1<<(start+i)) != 0 {
				consecutive++
			}
		}
		if consecutive != 4 {
			continue
		}
		lowRank, highRank := start-1, start+4
		if lowRank < 0 || highRank > 12 {
			continue
		}
		if rankMask&(1<<lowRank) == 0 && rankMask&(1<<highRank) == 0 {
			info.hasOESD = true
			for s := card.Clubs; s <= card.Spades; s++ {
				info.oesdOuts = append(info.oesdOuts, card.NewCard(card.Rank(lowRank), s), card.NewCard(card.Rank(highRank), s))
			}
		}
	}

	for start := 0; start <= 8 && !info.hasGutshot; start++ {
		var present []int
		for i := 0; i < 5; i++ {
			if rankMask&(1<<(start+i)) != 0 {
				present = append(present, start+i)
			}
		}
		if len(present) != 4 {
			continue
		}
		first, last := present[0], present[len(present)-1]
		if last-first == 3 {
			// Already a run of 4 consecutive ranks; covered by OESD above
			// unless both outer cards are blocked, in which case it isn't a
			// live draw at all.
			continue
		}

		missing := -1
		for r := start; r < start+5; r++ {
			if rankMask&(1<<r) == 0 {
				missing = r
				break
			}
		}
		if missing < 0 {
			continue
		}
		info.hasGutshot = true
		for s := card.Clubs; s <= card.Spades; s++ {
			info.gutshotOuts = append(info.gutshotOuts, card.NewCard(card.Rank(missing), s))
		}
	}

	return info
}

func detectBackdoorFlush(holeCards, board hand.Hand) bool {
	if board.CountCards() != 3 {
		return false
	}
	for s := card.Clubs; s <= card.Spades; s++ {
		holeCount := bits.OnesCount16(holeCards.GetSuitMask(s))
		boardCount := bits.OnesCount16(board.GetSuitMask(s))
		if holeCount >= 1 && holeCount+boardCount == 2 {
			return true
		}
	}
	return false
}

func detectOvercards(holeCards, board hand.Hand) []card.Card {
	boardRanks := boardRankMask(board)
	highestBoardRank := -1
	for r := 12; r >= 0; r-- {
		if boardRanks&(1<<r) != 0 {
			highestBoardRank = r
			break
		}
	}

	holeRanks := boardRankMask(holeCards)
	var outs []card.Card
	for r := highestBoardRank + 1; r <= 12; r++ {
		if holeRanks&(1<<r) == 0 {
			continue
		}
		for s := card.Clubs; s <= card.Spades; s++ {
			c := card.NewCard(card.Rank(r), s)
			if !holeCards.HasCard(c) && !board.HasCard(c) {
				outs = append(outs, c)
			}
		}
	}
	return outs
}
