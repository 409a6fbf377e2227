package ranges

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/lox/pokerequity/card"
)

const rankChars = "23456789TJQKA"

func parseRankChar(c byte) (card.Rank, bool) {
	idx := strings.IndexByte(rankChars, toUpper(c))
	if idx < 0 {
		return 0, false
	}
	return card.Rank(idx), true
}

func toUpper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}

func isSuitChar(c byte) bool {
	return strings.IndexByte("cdhs", c) >= 0
}

// looksExplicit reports whether s is a two-card explicit token such as
// "AsKh": rank, suit, rank, suit. pair_expr and nonpair_expr tokens never
// have a suit character in position 1, so this is unambiguous.
func looksExplicit(s string) bool {
	if len(s) != 4 {
		return false
	}
	_, ok0 := parseRankChar(s[0])
	ok1 := isSuitChar(s[1])
	_, ok2 := parseRankChar(s[2])
	ok3 := isSuitChar(s[3])
	return ok0 && ok1 && ok2 && ok3
}

// builder accumulates combos keyed by canonical (low, high) card pair so
// that later specifications of the same combo silently overwrite earlier
// ones, per spec's "duplicate combos: last specification wins."
type builder struct {
	combos map[[2]card.Card]uint8
}

func newBuilder() *builder {
	return &builder{combos: make(map[[2]card.Card]uint8)}
}

func (b *builder) set(a, c card.Card, weight uint8) {
	if a > c {
		a, c = c, a
	}
	b.combos[[2]card.Card{a, c}] = weight
}

func (b *builder) addExplicit(a, c card.Card, weight uint8) error {
	if a == c {
		return fmt.Errorf("%w: %s%s", ErrDuplicateCard, a, c)
	}
	b.set(a, c, weight)
	return nil
}

func (b *builder) addExplicitToken(cardsPart string, weight uint8) error {
	a, err := card.ParseCard(cardsPart[0:2])
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRangeSyntax, err)
	}
	c, err := card.ParseCard(cardsPart[2:4])
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRangeSyntax, err)
	}
	return b.addExplicit(a, c, weight)
}

func (b *builder) addRandom(weight uint8) {
	for a := card.Card(0); a < 52; a++ {
		for c := a + 1; c < 52; c++ {
			b.set(a, c, weight)
		}
	}
}

func (b *builder) addPocketPair(rank card.Rank, weight uint8) {
	for s1 := card.Suit(0); s1 < 4; s1++ {
		for s2 := s1 + 1; s2 < 4; s2++ {
			b.set(card.NewCard(rank, s1), card.NewCard(rank, s2), weight)
		}
	}
}

func (b *builder) addSuited(r1, r2 card.Rank, weight uint8) error {
	if r1 == r2 {
		return fmt.Errorf("%w: suited pocket pair", ErrInvalidRangeSyntax)
	}
	for s := card.Suit(0); s < 4; s++ {
		b.set(card.NewCard(r1, s), card.NewCard(r2, s), weight)
	}
	return nil
}

func (b *builder) addOffsuit(r1, r2 card.Rank, weight uint8) error {
	if r1 == r2 {
		return fmt.Errorf("%w: offsuit pocket pair", ErrInvalidRangeSyntax)
	}
	for s1 := card.Suit(0); s1 < 4; s1++ {
		for s2 := card.Suit(0); s2 < 4; s2++ {
			if s1 != s2 {
				b.set(card.NewCard(r1, s1), card.NewCard(r2, s2), weight)
			}
		}
	}
	return nil
}

// addSingleClass handles a bare pair_expr/nonpair_expr token with no "+" or
// "-" suffix: "22", "AK", "AKs", "AKo".
func (b *builder) addSingleClass(token string, weight uint8) error {
	if len(token) < 2 || len(token) > 3 {
		return fmt.Errorf("%w: %q", ErrInvalidRangeSyntax, token)
	}
	r1, ok1 := parseRankChar(token[0])
	r2, ok2 := parseRankChar(token[1])
	if !ok1 || !ok2 {
		return fmt.Errorf("%w: %q", ErrInvalidRangeSyntax, token)
	}

	if r1 == r2 {
		if len(token) == 3 {
			return fmt.Errorf("%w: pocket pair with modifier %q", ErrInvalidRangeSyntax, token)
		}
		b.addPocketPair(r1, weight)
		return nil
	}

	if len(token) == 2 {
		if err := b.addSuited(r1, r2, weight); err != nil {
			return err
		}
		return b.addOffsuit(r1, r2, weight)
	}

	switch token[2] {
	case 's':
		return b.addSuited(r1, r2, weight)
	case 'o':
		return b.addOffsuit(r1, r2, weight)
	default:
		return fmt.Errorf("%w: modifier %q", ErrInvalidRangeSyntax, token)
	}
}

// addPlusRange handles "22+" and "ATs+"/"KJo+"/"AT+": the top rank (the
// first one typed) stays fixed and the second rank walks up to and
// including it. Reaching the top rank degenerates into that rank's pocket
// pair when the offsuit half is requested — matching the reference parser's
// add_combos_plus, whose own test fixtures assert this ("a2+" is 198 combos,
// the 12 AX offsuit-or-suited combos plus AA; "a2s+" is 48, since a pair has
// no suited combos to contribute).
func (b *builder) addPlusRange(token string, weight uint8) error {
	base := strings.TrimSuffix(token, "+")
	if len(base) < 2 || len(base) > 3 {
		return fmt.Errorf("%w: %q", ErrInvalidRangeSyntax, token)
	}
	r1, ok1 := parseRankChar(base[0])
	r2, ok2 := parseRankChar(base[1])
	if !ok1 || !ok2 {
		return fmt.Errorf("%w: %q", ErrInvalidRangeSyntax, token)
	}

	if r1 == r2 {
		for r := r1; r <= card.Ace; r++ {
			b.addPocketPair(r, weight)
		}
		return nil
	}
	if r2 > r1 {
		return fmt.Errorf("%w: %q (expected higher rank first)", ErrInvalidRangeSyntax, token)
	}

	suited, offsuit := false, false
	switch {
	case len(base) == 2:
		suited, offsuit = true, true
	case base[2] == 's':
		suited = true
	case base[2] == 'o':
		offsuit = true
	default:
		return fmt.Errorf("%w: modifier %q", ErrInvalidRangeSyntax, token)
	}

	for r := r2; r <= r1; r++ {
		if r == r1 {
			if offsuit {
				b.addPocketPair(r1, weight)
			}
			continue
		}
		if suited {
			if err := b.addSuited(r1, r, weight); err != nil {
				return err
			}
		}
		if offsuit {
			if err := b.addOffsuit(r1, r, weight); err != nil {
				return err
			}
		}
	}
	return nil
}

// addDashRange handles "22-55" and "A5s-A2s": an inclusive range between two
// same-shape bounds.
func (b *builder) addDashRange(token string, weight uint8) error {
	parts := strings.SplitN(token, "-", 2)
	if len(parts) != 2 {
		return fmt.Errorf("%w: %q", ErrInvalidRangeSyntax, token)
	}
	start, end := parts[0], parts[1]
	if len(start) < 2 || len(end) < 2 {
		return fmt.Errorf("%w: %q", ErrInvalidRangeSyntax, token)
	}

	sr1, ok1 := parseRankChar(start[0])
	sr2, ok2 := parseRankChar(start[1])
	er1, ok3 := parseRankChar(end[0])
	er2, ok4 := parseRankChar(end[1])
	if !ok1 || !ok2 || !ok3 || !ok4 {
		return fmt.Errorf("%w: %q", ErrInvalidRangeSyntax, token)
	}

	if sr1 == sr2 && er1 == er2 {
		lo, hi := er1, sr1
		if lo > hi {
			lo, hi = hi, lo
		}
		for r := lo; r <= hi; r++ {
			b.addPocketPair(r, weight)
		}
		return nil
	}

	if sr1 != er1 {
		return fmt.Errorf("%w: mismatched high card in %q", ErrInvalidRangeSyntax, token)
	}

	suited := len(start) == 3 && start[2] == 's'
	offsuit := len(start) == 3 && start[2] == 'o'
	if len(start) == 2 {
		suited, offsuit = true, true
	}
	if !suited && !offsuit {
		return fmt.Errorf("%w: modifier %q", ErrInvalidRangeSyntax, start)
	}

	lo, hi := er2, sr2
	if lo > hi {
		lo, hi = hi, lo
	}
	for r := lo; r <= hi; r++ {
		if suited {
			if err := b.addSuited(sr1, r, weight); err != nil {
				return err
			}
		}
		if offsuit {
			if err := b.addOffsuit(sr1, r, weight); err != nil {
				return err
			}
		}
	}
	return nil
}

func (b *builder) addRangePart(part string) error {
	if strings.EqualFold(part, "random") {
		b.addRandom(100)
		return nil
	}

	weight := uint8(100)
	if idx := strings.IndexByte(part, ':'); idx >= 0 {
		var weightPart string
		part, weightPart = part[:idx], part[idx+1:]
		w, err := strconv.Atoi(weightPart)
		if err != nil || w < 0 || w > 100 {
			return fmt.Errorf("%w: weight %q", ErrInvalidRangeSyntax, weightPart)
		}
		weight = uint8(w)
	}

	if looksExplicit(part) {
		return b.addExplicitToken(part, weight)
	}
	if strings.Contains(part, "+") {
		return b.addPlusRange(part, weight)
	}
	if strings.Contains(part, "-") {
		return b.addDashRange(part, weight)
	}
	return b.addSingleClass(part, weight)
}

func (b *builder) build() *HandRange {
	combos := make([]Combo, 0, len(b.combos))
	for k, w := range b.combos {
		combos = append(combos, Combo{A: k[0], B: k[1], Weight: w})
	}
	sort.Slice(combos, func(i, j int) bool {
		if combos[i].A != combos[j].A {
			return combos[i].A < combos[j].A
		}
		return combos[i].B < combos[j].B
	})
	return &HandRange{Combos: combos}
}

// Parse converts a comma-separated range string into a HandRange. Parts are
// trimmed and applied left to right: later parts overwrite the weight of
// any combo they share with an earlier part.
func Parse(s string) (*HandRange, error) {
	b := newBuilder()
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if err := b.addRangePart(part); err != nil {
			return nil, fmt.Errorf("range part %q: %w", part, err)
		}
	}
	if len(b.combos) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrImpossibleRange, s)
	}
	return b.build(), nil
}
