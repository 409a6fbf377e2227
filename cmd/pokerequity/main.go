// Command pokerequity is a thin CLI wrapper over the range parser and the
// equity simulator. It is explicitly out-of-core convenience tooling, not
// part of the library surface: config is flags only, no config file or
// environment variables, per this project's ambient convention.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lox/pokerequity/card"
	"github.com/lox/pokerequity/equity"
	"github.com/lox/pokerequity/ranges"
)

func main() {
	board := flag.String("board", "", "known community cards, e.g. \"JsTs2c\"")
	dead := flag.String("dead", "", "additional dead cards blocked from dealing, beyond -board")
	nWorkers := flag.Int("n-threads", runtime.NumCPU(), "number of simulation worker goroutines")
	nGames := flag.Uint64("n-games", 100_000, "number of Monte Carlo trials to run")
	seed := flag.Int64("seed", 0, "base RNG seed; 0 derives a seed from the current time")
	verbose := flag.Bool("verbose", false, "log progress and timing to stderr")
	flag.Usage = usage
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{Level: log.WarnLevel})
	if *verbose {
		logger.SetLevel(log.InfoLevel)
	}

	rangeArgs := flag.Args()
	if len(rangeArgs) < 2 {
		fmt.Fprintln(os.Stderr, "pokerequity: need at least two ranges")
		flag.Usage()
		os.Exit(2)
	}

	handRanges := make([]*ranges.HandRange, len(rangeArgs))
	for i, s := range rangeArgs {
		hr, err := ranges.Parse(s)
		if err != nil {
			logger.Fatal("parse range", "range", s, "err", err)
		}
		handRanges[i] = hr
	}

	deadMask, err := parseDeadMask(*board, *dead)
	if err != nil {
		logger.Fatal("parse board/dead cards", "err", err)
	}

	logger.Info("starting simulation",
		"ranges", strings.Join(rangeArgs, " vs "),
		"board", *board,
		"workers", *nWorkers,
		"games", *nGames,
	)

	start := time.Now()
	var res equity.SimResult
	if *seed != 0 {
		res, err = equity.CalcEquityWithSeed(context.Background(), handRanges, deadMask, *nWorkers, *nGames, *seed)
	} else {
		res, err = equity.CalcEquity(context.Background(), handRanges, deadMask, *nWorkers, *nGames)
	}
	if err != nil {
		logger.Fatal("calc equity", "err", err)
	}
	elapsed := time.Since(start)

	printResults(rangeArgs, res)
	logger.Info("simulation complete",
		"hands_played", res.HandsPlayed,
		"rejected_trials", res.RejectedTrials,
		"elapsed", elapsed.Truncate(time.Millisecond),
	)
}

func parseDeadMask(board, dead string) (card.Mask, error) {
	var mask card.Mask
	for _, s := range []string{board, dead} {
		if s == "" {
			continue
		}
		cards, err := card.ParseCards(s)
		if err != nil {
			return 0, err
		}
		for _, c := range cards {
			if mask.Has(c) {
				return 0, fmt.Errorf("duplicate card %s", c)
			}
			mask = mask.Add(c)
		}
	}
	return mask, nil
}

func printResults(labels []string, res equity.SimResult) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "range\tequity\twin\ttie\n")
	eq := res.Equities()
	for i, label := range labels {
		winPct := float64(res.Wins[i]) / float64(res.HandsPlayed) * 100
		tiePct := res.TiesWeighted[i] / float64(res.HandsPlayed) * 100
		fmt.Fprintf(w, "%s\t%.2f%%\t%.2f%%\t%.2f%%\n", label, eq[i]*100, winPct, tiePct)
	}
	w.Flush()
}

func usage() {
	fmt.Fprintf(os.Stderr, `usage: pokerequity [flags] <range> <range> [range...]

Computes range-vs-range equity via Monte Carlo simulation.

Example:
  pokerequity -board JsTs2c AsKs QhQd

flags:
`)
	flag.PrintDefaults()
}
