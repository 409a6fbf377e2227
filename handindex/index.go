// Package handindex canonicalizes hole+board card sets under suit
// isomorphism and assigns each canonical class a dense index via a minimal
// perfect hash. It is an optional adjunct for CFR-style solvers: the
// evaluator and equity simulator never import it.
package handindex

import (
	"errors"
	"fmt"
	"sort"

	"github.com/opencoff/go-chd"

	"github.com/lox/pokerequity/card"
)

// ErrUnknownHand is returned when Lookup is called with a card count that
// doesn't match the Index's Round. Lookup does not check whether a
// canonical key lies in the built perfect hash's domain.
var ErrUnknownHand = errors.New("handindex: hand not found in canonical index")

// Round identifies how many hole and community cards participate in a
// canonical index. Preflop carries no board; later rounds add three, four,
// or five community cards.
type Round struct {
	Hole  int
	Board int
}

var (
	Preflop = Round{Hole: 2, Board: 0}
	Flop    = Round{Hole: 2, Board: 3}
	Turn    = Round{Hole: 2, Board: 4}
	River   = Round{Hole: 2, Board: 5}
)

// Canonicalize reduces a hole+board card set to its suit-isomorphism
// representative. Suits are relabeled by sorting the four original suits on
// the rank sequence of cards they hold, hole cards first and then board
// cards, each part in descending rank order (ties broken by original suit
// index, which is safe since tied suits hold identical hole and board ranks
// and are strategically interchangeable). Sorting on content rather than on
// encounter order or raw suit id is what makes the result depend only on
// the suit partition of the cards, not on how a permutation happens to
// relabel the suits underneath it — so swapping every card's suit under any
// fixed permutation before canonicalizing yields an identical result.
func Canonicalize(hole, board []card.Card) []card.Card {
	var ranksBySuit [4][]int
	collect := func(cards []card.Card, offset int) {
		for _, c := range cards {
			ranksBySuit[c.Suit()] = append(ranksBySuit[c.Suit()], int(c.Rank())+offset)
		}
	}
	// Hole ranks are lifted above every board rank, so each suit's sorted
	// sequence lists its hole cards before its board cards.
	collect(hole, 13)
	collect(board, 0)
	for s := range ranksBySuit {
		sort.Slice(ranksBySuit[s], func(i, j int) bool { return ranksBySuit[s][i] > ranksBySuit[s][j] })
	}

	order := []int{0, 1, 2, 3}
	sort.SliceStable(order, func(i, j int) bool {
		a, b := ranksBySuit[order[i]], ranksBySuit[order[j]]
		for k := 0; k < len(a) && k < len(b); k++ {
			if a[k] != b[k] {
				return a[k] > b[k]
			}
		}
		return len(a) > len(b)
	})

	var relabel [4]card.Suit
	for newSuit, origSuit := range order {
		relabel[origSuit] = card.Suit(newSuit)
	}

	remap := func(cards []card.Card) []card.Card {
		out := make([]card.Card, len(cards))
		for i, c := range cards {
			out[i] = card.NewCard(c.Rank(), relabel[c.Suit()])
		}
		sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
		return out
	}

	canon := make([]card.Card, 0, len(hole)+len(board))
	canon = append(canon, remap(hole)...)
	canon = append(canon, remap(board)...)
	return canon
}

// Index maps every canonical hand class of a Round to a dense integer in
// [0, Size()), via a CHD minimal perfect hash over the enumerated classes.
type Index struct {
	round Round
	hash  *chd.CHDHash
	size  int
}

// BuildIndex enumerates every hole+board combination for round, reduces
// each to its canonical form, deduplicates, and builds the perfect hash
// over the resulting classes. Preflop walks 1,326 raw combinations (169
// classes); Flop walks ≈26M, Turn ≈305M and River ≈2.8G raw hole+board
// combinations, so build time grows steeply with the round.
func BuildIndex(round Round) (*Index, error) {
	classes := enumerateCanonical(round)
	keys := make([][]byte, len(classes))
	for i, c := range classes {
		keys[i] = encodeCards(c)
	}

	h, err := chd.Build(keys)
	if err != nil {
		return nil, fmt.Errorf("handindex: build perfect hash for %d classes: %w", len(classes), err)
	}

	return &Index{round: round, hash: h, size: len(classes)}, nil
}

// Size returns the number of distinct canonical classes in the index.
func (idx *Index) Size() int { return idx.size }

// Lookup canonicalizes hole+board and returns its dense index. Any
// hole+board combination matching the Index's Round canonicalizes to one
// of the classes BuildIndex enumerated, so every well-formed call succeeds;
// ErrUnknownHand only fires on a card-count mismatch.
func (idx *Index) Lookup(hole, board []card.Card) (uint32, error) {
	if len(hole) != idx.round.Hole || len(board) != idx.round.Board {
		return 0, fmt.Errorf("%w: want %d hole + %d board cards, got %d + %d",
			ErrUnknownHand, idx.round.Hole, idx.round.Board, len(hole), len(board))
	}
	canon := Canonicalize(hole, board)
	return idx.hash.Find(encodeCards(canon)), nil
}

func encodeCards(cards []card.Card) []byte {
	b := make([]byte, len(cards))
	for i, c := range cards {
		b[i] = byte(c)
	}
	return b
}

// enumerateCanonical walks every choice of round.Hole hole cards and
// round.Board board cards from the rest of the 52-card deck and returns the
// deduplicated set of canonical forms.
func enumerateCanonical(round Round) [][]card.Card {
	total := round.Hole + round.Board
	seen := make(map[string]bool)
	var out [][]card.Card

	combo := make([]card.Card, 0, total)
	var rec func(start int)
	rec = func(start int) {
		if len(combo) == total {
			hole := append([]card.Card(nil), combo[:round.Hole]...)
			board := append([]card.Card(nil), combo[round.Hole:]...)
			canon := Canonicalize(hole, board)
			key := string(encodeCards(canon))
			if !seen[key] {
				seen[key] = true
				out = append(out, canon)
			}
			return
		}
		for i := start; i < 52; i++ {
			c := card.Card(i)
			used := false
			for _, u := range combo {
				used = used || u == c
			}
			if used {
				continue
			}
			next := i + 1
			if len(combo)+1 == round.Hole {
				next = 0 // board cards range over the whole deck minus the hole
			}
			combo = append(combo, c)
			rec(next)
			combo = combo[:len(combo)-1]
		}
	}
	rec(0)
	return out
}
