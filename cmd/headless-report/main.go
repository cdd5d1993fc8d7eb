package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/Garsondee/Term-Match/assets"
	"github.com/Garsondee/Term-Match/internal/deck"
	"github.com/Garsondee/Term-Match/internal/game"
	"github.com/Garsondee/Term-Match/internal/match"
)

type options struct {
	runs      int
	maxTicks  int
	seedBase  int64
	seedStep  int64
	dataFile  string
	strategy  string
	think     int
	verbose   bool
	withDump  bool
	restartAt int
}

type runStats struct {
	runIndex int
	seed     int64
	pairs    int

	won       bool
	ticks     int
	misses    int
	attempts  int
	firstHit  int // tick of the first correct evaluation, -1 if none
	firstMiss int
	restarts  int
	session   string
}

func main() {
	opts := &options{}
	cobra.CheckErr(newCmd(opts, os.Stdout).Execute())
}

func newCmd(opts *options, out io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "headless-report",
		Short: "Play simulated Term Match sessions and print a summary.",
		Args:  cobra.ExactArgs(0),
		RunE: func(_ *cobra.Command, _ []string) error {
			return run(opts, out)
		},
	}
	fs := cmd.Flags()
	fs.IntVar(&opts.runs, "runs", 5, "number of headless sessions")
	fs.IntVar(&opts.maxTicks, "ticks", 36000, "tick limit per session")
	fs.Int64Var(&opts.seedBase, "seed-base", 42, "base RNG seed for run 1")
	fs.Int64Var(&opts.seedStep, "seed-step", 1, "seed increment between runs")
	fs.StringVarP(&opts.dataFile, "data", "d", "", "pairs document, embedded sample deck when empty")
	fs.StringVar(&opts.strategy, "strategy", "random", "simulated player: random, memory or perfect")
	fs.IntVar(&opts.think, "think", 20, "ticks between simulated moves")
	fs.IntVar(&opts.restartAt, "restart-at", 0, "press restart once after this many ticks, 0 to never restart")
	fs.BoolVarP(&opts.verbose, "verbose", "v", false, "log controller events to stderr")
	fs.BoolVar(&opts.withDump, "journal", false, "print each run's journal")

	cmd.CompletionOptions.HiddenDefaultCmd = true
	cmd.SetHelpCommand(&cobra.Command{Hidden: true})
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true
	return cmd
}

func run(opts *options, out io.Writer) error {
	if opts.runs <= 0 {
		return errors.New("--runs must be > 0")
	}
	if opts.maxTicks <= 0 {
		return errors.New("--ticks must be > 0")
	}
	strategy, err := game.ParseStrategy(opts.strategy)
	if err != nil {
		return err
	}
	d, source, err := loadDeck(opts.dataFile)
	if err != nil {
		return err
	}

	logger := zerolog.Nop()
	if opts.verbose {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(zerolog.DebugLevel)
	}

	fmt.Fprintf(out, "=== Headless Match Report ===\n")
	fmt.Fprintf(out, "deck=%s pairs=%d strategy=%s runs=%d think=%d seed_base=%d seed_step=%d\n\n",
		source, d.Len(), strategy, opts.runs, opts.think, opts.seedBase, opts.seedStep)

	all := make([]runStats, 0, opts.runs)
	for i := 0; i < opts.runs; i++ {
		seed := opts.seedBase + int64(i)*opts.seedStep
		sim := game.NewSim(
			game.WithDeck(d),
			game.WithSeed(seed),
			game.WithStrategy(strategy),
			game.WithThinkTicks(opts.think),
			game.WithLogger(logger),
		)
		rs := playRun(sim, i+1, seed, opts)
		all = append(all, rs)
		printRun(out, rs)
		if opts.withDump {
			fmt.Fprint(out, sim.Ctrl.Journal().Dump())
		}
	}
	printAggregate(out, all)
	return nil
}

func loadDeck(path string) (*match.Deck, string, error) {
	if path == "" {
		d, err := deck.ParseBytes(assets.SampleDeck, "json")
		return d, "embedded", err
	}
	d, err := deck.Load(path)
	return d, path, err
}

func playRun(sim *game.Sim, runIndex int, seed int64, opts *options) runStats {
	budget := opts.maxTicks
	restarts := 0
	if opts.restartAt > 0 && opts.restartAt < budget {
		spent, won := sim.PlayUntilWin(opts.restartAt)
		budget -= spent
		if !won && sim.Ctrl.Restart() {
			restarts++
			budget -= sim.Settle(budget)
		}
	}
	start := sim.Ctrl.Tick() - sim.Ctrl.Elapsed()
	_, won := sim.PlayUntilWin(budget)

	st := sim.Ctrl.State()
	gen := sim.Ctrl.Generation()
	j := sim.Ctrl.Journal()
	return runStats{
		runIndex:  runIndex,
		seed:      seed,
		pairs:     st.TotalPairs,
		won:       won,
		ticks:     sim.Ctrl.Elapsed(),
		misses:    st.Misses,
		attempts:  st.MatchesFound + st.Misses,
		firstHit:  firstTick(j.ForGeneration(gen), "correct", start),
		firstMiss: firstTick(j.ForGeneration(gen), "incorrect", start),
		restarts:  restarts,
		session:   sim.Ctrl.Session().String(),
	}
}

// firstTick returns the generation-relative tick of the first match entry
// with key, or -1.
func firstTick(entries []game.JournalEntry, key string, start int) int {
	for _, e := range entries {
		if e.Category == "match" && e.Key == key {
			return e.Tick - start
		}
	}
	return -1
}

func printRun(out io.Writer, rs runStats) {
	status := "solved"
	if !rs.won {
		status = "unsolved"
	}
	fmt.Fprintf(out, "--- Run %d (seed=%d session=%s) ---\n", rs.runIndex, rs.seed, rs.session)
	fmt.Fprintf(out, "result: %s pairs=%d ticks=%d (%.1fs) restarts=%d\n", status, rs.pairs, rs.ticks, seconds(rs.ticks), rs.restarts)
	fmt.Fprintf(out, "attempts=%d misses=%d accuracy=%s first_hit=%d first_miss=%d\n\n",
		rs.attempts, rs.misses, accuracy(rs), rs.firstHit, rs.firstMiss)
}

func printAggregate(out io.Writer, all []runStats) {
	solved := 0
	totalMisses := 0
	totalAttempts := 0
	var winTicks []int
	for _, rs := range all {
		totalMisses += rs.misses
		totalAttempts += rs.attempts
		if rs.won {
			solved++
			winTicks = append(winTicks, rs.ticks)
		}
	}

	fmt.Fprintln(out, "=== Aggregate ===")
	fmt.Fprintf(out, "runs=%d solved=%d (%.0f%%)\n", len(all), solved, pct(solved, len(all)))
	fmt.Fprintf(out, "avg_per_run: attempts=%.1f misses=%.1f\n", avg(totalAttempts, len(all)), avg(totalMisses, len(all)))
	fmt.Fprintf(out, "ticks_to_solve: avg=%s median=%s min=%s max=%s\n",
		avgTickString(winTicks), medianTickString(winTicks), extremeTickString(winTicks, false), extremeTickString(winTicks, true))
}

func accuracy(rs runStats) string {
	if rs.attempts == 0 {
		return "n/a"
	}
	return fmt.Sprintf("%.0f%%", pct(rs.attempts-rs.misses, rs.attempts))
}

func seconds(ticks int) float64 {
	return float64(ticks) / float64(60)
}

func pct(n, of int) float64 {
	if of <= 0 {
		return 0
	}
	return float64(n) / float64(of) * 100
}

func avg(sum int, n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

func avgTickString(vals []int) string {
	if len(vals) == 0 {
		return "n/a"
	}
	sum := 0
	for _, v := range vals {
		sum += v
	}
	return fmt.Sprintf("%.1f", float64(sum)/float64(len(vals)))
}

func medianTickString(vals []int) string {
	if len(vals) == 0 {
		return "n/a"
	}
	s := append([]int(nil), vals...)
	sort.Ints(s)
	mid := len(s) / 2
	if len(s)%2 == 1 {
		return fmt.Sprintf("%d", s[mid])
	}
	return fmt.Sprintf("%.1f", float64(s[mid-1]+s[mid])/2)
}

func extremeTickString(vals []int, largest bool) string {
	if len(vals) == 0 {
		return "n/a"
	}
	best := vals[0]
	for _, v := range vals[1:] {
		if (largest && v > best) || (!largest && v < best) {
			best = v
		}
	}
	return fmt.Sprintf("%d", best)
}
