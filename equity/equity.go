// Package equity runs the multithreaded Monte Carlo range-vs-range
// simulation: sample hole cards per player from their weighted ranges,
// complete the board, evaluate, and accumulate win/tie statistics.
package equity

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/lox/pokerequity/card"
	"github.com/lox/pokerequity/eval"
	"github.com/lox/pokerequity/hand"
	"github.com/lox/pokerequity/internal/randutil"
	"github.com/lox/pokerequity/internal/tables"
	"github.com/lox/pokerequity/ranges"
)

const maxPlayers = 6

// chunkSize bounds how many trials a worker runs between context-done
// checks. Accumulator merges still happen once per worker at the very end,
// not once per chunk — this is purely cancellation granularity.
const chunkSize = 256

// maxResamplesPerTrial bounds the rejection-sampling retry loop per spec's
// retry budget R: a trial whose joint range/dead-mask configuration can't
// produce a non-colliding deal within R attempts is discarded outright
// rather than retried forever.
const maxResamplesPerTrial = 1000

// SimResult holds per-player accumulators from a completed simulation.
// Final equity per player is (Wins+TiesWeighted)/HandsPlayed.
type SimResult struct {
	Wins           []uint64
	TiesWeighted   []float64
	HandsPlayed    uint64
	RejectedTrials uint64
}

// Equities converts the raw accumulators into a per-player equity share.
// Σ Equities() == 1.0 (within floating-point error) for any completed
// simulation.
func (r SimResult) Equities() []float64 {
	out := make([]float64, len(r.Wins))
	for i := range out {
		out[i] = (float64(r.Wins[i]) + r.TiesWeighted[i]) / float64(r.HandsPlayed)
	}
	return out
}

// CalcEquity runs a range-vs-range Monte Carlo simulation with a
// time-derived seed. Use CalcEquityWithSeed for reproducible runs.
func CalcEquity(ctx context.Context, ranges []*ranges.HandRange, deadMask card.Mask, nWorkers int, nGames uint64) (SimResult, error) {
	return calcEquity(ctx, ranges, deadMask, nWorkers, nGames, time.Now().UnixNano())
}

// CalcEquityWithSeed runs CalcEquity with an explicit base seed. The same
// seed, worker count, and input always produce bit-identical output;
// changing the worker count changes the per-worker seed stream and so may
// change the result.
func CalcEquityWithSeed(ctx context.Context, handRanges []*ranges.HandRange, deadMask card.Mask, nWorkers int, nGames uint64, baseSeed int64) (SimResult, error) {
	return calcEquity(ctx, handRanges, deadMask, nWorkers, nGames, baseSeed)
}

func calcEquity(ctx context.Context, handRanges []*ranges.HandRange, deadMask card.Mask, nWorkers int, nGames uint64, baseSeed int64) (SimResult, error) {
	n := len(handRanges)
	if n < 1 || n > maxPlayers {
		return SimResult{}, fmt.Errorf("%w: %d players", ErrTooManyPlayers, n)
	}
	if deadMask.Count() > 5 {
		return SimResult{}, fmt.Errorf("%w: dead mask has %d cards", ErrInvalidBoard, deadMask.Count())
	}
	if nWorkers < 1 {
		nWorkers = 1
	}
	if nGames < 1 {
		nGames = 1
	}

	weighted := make([]*weightedRange, n)
	for i, hr := range handRanges {
		wr, err := newWeightedRange(hr, deadMask)
		if err != nil {
			return SimResult{}, fmt.Errorf("player %d: %w", i, err)
		}
		weighted[i] = wr
	}

	tb := tables.Default()
	boardPrefix := cardsInMask(deadMask)
	boardNeeded := 5 - len(boardPrefix)

	perWorkerTotals := make([]workerTotals, nWorkers)
	perWorker := nGames / uint64(nWorkers)
	remainder := nGames % uint64(nWorkers)

	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < nWorkers; w++ {
		trials := perWorker
		if uint64(w) < remainder {
			trials++
		}
		seed := baseSeed + int64(w)
		g.Go(func() error {
			rng := randutil.New(seed)
			perWorkerTotals[w] = runWorker(gctx, tb, weighted, deadMask, boardPrefix, boardNeeded, n, trials, rng)
			return gctx.Err()
		})
	}
	if err := g.Wait(); err != nil {
		return SimResult{}, err
	}

	// Reduced in worker-index order, never goroutine-completion order: wins
	// (uint64) would be safe either way, but tiesWeighted is float64 and
	// non-associative, so a nondeterministic merge order would make equal
	// seeds produce ULP-different outputs across runs.
	acc := newAccumulator(n)
	for _, totals := range perWorkerTotals {
		acc.merge(totals)
	}

	return SimResult{
		Wins:           acc.wins,
		TiesWeighted:   acc.tiesWeighted,
		HandsPlayed:    acc.handsPlayed,
		RejectedTrials: acc.rejectedTrials,
	}, nil
}

// accumulator folds per-worker totals together after all workers have
// finished; merge is called strictly in worker-index order from a single
// goroutine, so no locking is needed here.
type accumulator struct {
	wins           []uint64
	tiesWeighted   []float64
	handsPlayed    uint64
	rejectedTrials uint64
}

func newAccumulator(n int) *accumulator {
	return &accumulator{wins: make([]uint64, n), tiesWeighted: make([]float64, n)}
}

func (a *accumulator) merge(w workerTotals) {
	for i := range w.wins {
		a.wins[i] += w.wins[i]
		a.tiesWeighted[i] += w.tiesWeighted[i]
	}
	a.handsPlayed += w.handsPlayed
	a.rejectedTrials += w.rejectedTrials
}

// workerTotals is purely thread-local; no synchronization needed until it
// is handed to accumulator.merge.
type workerTotals struct {
	wins           []uint64
	tiesWeighted   []float64
	handsPlayed    uint64
	rejectedTrials uint64
}

func runWorker(ctx context.Context, tb *tables.Tables, weighted []*weightedRange, deadMask card.Mask, boardPrefix []card.Card, boardNeeded, n int, trials uint64, rng *rand.Rand) workerTotals {
	totals := workerTotals{wins: make([]uint64, n), tiesWeighted: make([]float64, n)}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	combos := make([]ranges.Combo, n)
	scores := make([]uint16, n)

	var done uint64
	for done < trials {
		batch := trials - done
		if batch > chunkSize {
			batch = chunkSize
		}

		for t := uint64(0); t < batch; t++ {
			rng.Shuffle(n, func(i, j int) { order[i], order[j] = order[j], order[i] })

			var taken card.Mask
			drawn := false
			for attempt := 0; attempt < maxResamplesPerTrial; attempt++ {
				taken = deadMask
				success := true
				for _, p := range order {
					c, drew := weighted[p].draw(rng, taken)
					if !drew {
						success = false
						break
					}
					combos[p] = c
					taken = taken.Add(c.A).Add(c.B)
				}
				if success {
					drawn = true
					break
				}
			}
			if !drawn {
				totals.rejectedTrials++
				continue
			}

			board := completeBoard(rng, taken, boardPrefix, boardNeeded)

			var best uint16
			for p := 0; p < n; p++ {
				h := hand.FromCards(combos[p].A, combos[p].B)
				for _, bc := range board {
					h = h.Add(bc)
				}
				scores[p] = eval.EvaluateWith(tb, h)
				if scores[p] > best {
					best = scores[p]
				}
			}

			winners := 0
			for p := 0; p < n; p++ {
				if scores[p] == best {
					winners++
				}
			}
			for p := 0; p < n; p++ {
				if scores[p] != best {
					continue
				}
				if winners == 1 {
					totals.wins[p]++
				} else {
					totals.tiesWeighted[p] += 1.0 / float64(winners)
				}
			}
			totals.handsPlayed++
		}

		done += batch
		select {
		case <-ctx.Done():
			return totals
		default:
		}
	}
	return totals
}

func cardsInMask(m card.Mask) []card.Card {
	var out []card.Card
	for c := card.Card(0); c < 52; c++ {
		if m.Has(c) {
			out = append(out, c)
		}
	}
	return out
}

func completeBoard(rng *rand.Rand, taken card.Mask, boardPrefix []card.Card, boardNeeded int) []card.Card {
	board := make([]card.Card, len(boardPrefix), len(boardPrefix)+boardNeeded)
	copy(board, boardPrefix)
	if boardNeeded <= 0 {
		return board
	}

	pool := make([]card.Card, 0, 52-taken.Count())
	for c := card.Card(0); c < 52; c++ {
		if !taken.Has(c) {
			pool = append(pool, c)
		}
	}
	for i := 0; i < boardNeeded && i < len(pool); i++ {
		j := i + rng.IntN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
		board = append(board, pool[i])
	}
	return board
}
