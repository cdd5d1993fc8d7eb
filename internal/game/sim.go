package game

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/rs/zerolog"

	"github.com/Garsondee/Term-Match/assets"
	"github.com/Garsondee/Term-Match/internal/deck"
	"github.com/Garsondee/Term-Match/internal/match"
)

// Sim is a headless session harness used by tests and the batch reporter.
// It drives a Controller exactly as Game.Update does, minus ebiten, with
// deterministic seeding and an optional simulated player.
type Sim struct {
	Width  int
	Height int
	Ctrl   *Controller

	deck   *match.Deck
	src    match.Source
	rng    *rand.Rand
	log    zerolog.Logger
	player Player
	think  int // ticks between player moves
}

// simOptionKind controls the pass in which an option is applied.
type simOptionKind int

const (
	simOptInfra  simOptionKind = iota // size, seed, deck, logger: applied first
	simOptPlayer                      // player, needs the seeded rng
)

// SimOption is a builder function applied to a Sim during construction.
type SimOption struct {
	kind simOptionKind
	fn   func(*Sim)
}

// WithDeck plays d instead of the bundled sample deck.
func WithDeck(d *match.Deck) SimOption {
	return SimOption{simOptInfra, func(s *Sim) { s.deck = d }}
}

// WithPairs builds the deck from term/definition string pairs.
func WithPairs(pairs ...[2]string) SimOption {
	return SimOption{simOptInfra, func(s *Sim) {
		ps := make([]match.Pair, len(pairs))
		for i, p := range pairs {
			ps[i] = match.Pair{Term: p[0], Definition: p[1]}
		}
		s.deck = match.NewDeck(ps, "")
	}}
}

// WithSeed sets the RNG seed for deterministic runs.
func WithSeed(seed int64) SimOption {
	return SimOption{simOptInfra, func(s *Sim) {
		s.rng = rand.New(rand.NewSource(seed)) // #nosec G404 -- test harness
	}}
}

// WithOrder fixes every deal to present definitions in order (keys by slot).
func WithOrder(order ...match.Key) SimOption {
	return SimOption{simOptInfra, func(s *Sim) { s.src = match.FixedOrder(order...) }}
}

// WithBoardSize sets the surface dimensions.
func WithBoardSize(w, h int) SimOption {
	return SimOption{simOptInfra, func(s *Sim) {
		s.Width = w
		s.Height = h
	}}
}

// WithLogger routes controller logs to l.
func WithLogger(l zerolog.Logger) SimOption {
	return SimOption{simOptInfra, func(s *Sim) { s.log = l }}
}

// WithThinkTicks sets how long the simulated player waits between moves.
func WithThinkTicks(n int) SimOption {
	return SimOption{simOptInfra, func(s *Sim) {
		if n < 1 {
			n = 1
		}
		s.think = n
	}}
}

// WithPlayer installs a simulated player.
func WithPlayer(p Player) SimOption {
	return SimOption{simOptPlayer, func(s *Sim) { s.player = p }}
}

// WithStrategy installs the named built-in player, seeded from the sim rng.
func WithStrategy(st Strategy) SimOption {
	return SimOption{simOptPlayer, func(s *Sim) { s.player = st.player(s.rng) }}
}

// NewSim constructs a Sim and deals the first board.
func NewSim(opts ...SimOption) *Sim {
	s := &Sim{
		Width:  1280,
		Height: 800,
		log:    zerolog.Nop(),
		think:  20,
	}
	for _, kind := range []simOptionKind{simOptInfra, simOptPlayer} {
		if kind == simOptPlayer && s.rng == nil {
			s.rng = rand.New(rand.NewSource(1)) // #nosec G404 -- test harness
		}
		for _, o := range opts {
			if o.kind == kind {
				o.fn(s)
			}
		}
	}
	if s.deck == nil {
		s.deck = sampleDeck()
	}
	if s.src == nil {
		s.src = s.rng
	}
	s.Ctrl = NewController(s.deck, s.src, s.Width, s.Height, s.log)
	s.Ctrl.Init()
	return s
}

func sampleDeck() *match.Deck {
	d, err := deck.ParseBytes(assets.SampleDeck, "json")
	if err != nil {
		panic(fmt.Sprintf("embedded sample deck: %v", err))
	}
	return d
}

// RunTicks advances the session n ticks.
func (s *Sim) RunTicks(n int) {
	for i := 0; i < n; i++ {
		s.Ctrl.Update()
	}
}

// Settle runs until no animation is pending, up to maxTicks. It returns the
// ticks spent.
func (s *Sim) Settle(maxTicks int) int {
	n := 0
	for n < maxTicks && s.Ctrl.tl.Len() > 0 {
		s.Ctrl.Update()
		n++
	}
	return n
}

// ClickTerm clicks the centre of the term in row id.
func (s *Sim) ClickTerm(id match.ID) {
	s.Ctrl.ClickAt(s.Ctrl.Board().TermCenter(id))
}

// ClickDefinition clicks the centre of definition slot id.
func (s *Sim) ClickDefinition(id match.ID) {
	s.Ctrl.ClickAt(s.Ctrl.Board().DefinitionCenter(id))
}

// ClickRestart clicks the restart button.
func (s *Sim) ClickRestart() {
	s.Ctrl.ClickAt(s.Ctrl.Board().RestartCenter())
}

// Pair clicks term then definition slot in the same tick.
func (s *Sim) Pair(term, def match.ID) {
	s.ClickTerm(term)
	s.ClickDefinition(def)
}

// PlayUntilWin lets the installed player move every think ticks until the
// board is solved or maxTicks elapse. It returns the ticks spent.
func (s *Sim) PlayUntilWin(maxTicks int) (int, bool) {
	if s.player == nil {
		s.player = StrategyPerfect.player(s.rng)
	}
	for n := 0; n < maxTicks; n++ {
		if s.Ctrl.Won() {
			return n, true
		}
		if n%s.think == 0 {
			if term, def, ok := s.player.Next(s.Ctrl.State()); ok {
				s.Pair(term, def)
			}
		}
		s.Ctrl.Update()
	}
	return maxTicks, s.Ctrl.Won()
}

// Player picks the next term/definition pairing for a board.
type Player interface {
	Next(st *match.State) (term, def match.ID, ok bool)
}

// Strategy names a built-in Player.
type Strategy string

const (
	StrategyRandom  Strategy = "random"  // any open term against any open slot
	StrategyPerfect Strategy = "perfect" // always the right slot
	StrategyMemory  Strategy = "memory"  // random, never repeats a known miss
)

// ParseStrategy validates a strategy name.
func ParseStrategy(name string) (Strategy, error) {
	switch st := Strategy(strings.ToLower(strings.TrimSpace(name))); st {
	case StrategyRandom, StrategyPerfect, StrategyMemory:
		return st, nil
	}
	return "", fmt.Errorf("unknown strategy %q (want random, perfect or memory)", name)
}

func (st Strategy) player(rng *rand.Rand) Player {
	switch st {
	case StrategyPerfect:
		return PerfectPlayer{}
	case StrategyMemory:
		return NewRandomPlayer(rng, true)
	default:
		return NewRandomPlayer(rng, false)
	}
}

// PerfectPlayer always pairs the first open term with its true slot.
type PerfectPlayer struct{}

// Next implements Player.
func (PerfectPlayer) Next(st *match.State) (match.ID, match.ID, bool) {
	for _, t := range st.Terms {
		if !t.Matched {
			return t.ID, st.DefinitionFor(t.ID), true
		}
	}
	return match.None, match.None, false
}

// RandomPlayer guesses uniformly among open terms and slots. With a miss
// table it skips pairings it has already seen fail.
type RandomPlayer struct {
	rng    *rand.Rand
	misses map[[2]match.ID]bool
	last   [2]match.ID
	seen   int
}

// NewRandomPlayer returns a guesser; remember enables the miss table.
func NewRandomPlayer(rng *rand.Rand, remember bool) *RandomPlayer {
	p := &RandomPlayer{rng: rng}
	if remember {
		p.misses = map[[2]match.ID]bool{}
	}
	return p
}

// Next implements Player.
func (p *RandomPlayer) Next(st *match.State) (match.ID, match.ID, bool) {
	p.learn(st)
	var terms, defs []match.ID
	for _, t := range st.Terms {
		if !t.Matched {
			terms = append(terms, t.ID)
		}
	}
	for _, d := range st.Definitions {
		if !d.Matched {
			defs = append(defs, d.ID)
		}
	}
	if len(terms) == 0 || len(defs) == 0 {
		return match.None, match.None, false
	}
	term := terms[p.rng.Intn(len(terms))]
	var open []match.ID
	for _, d := range defs {
		if !p.misses[[2]match.ID{term, d}] {
			open = append(open, d)
		}
	}
	if len(open) == 0 {
		open = defs
	}
	def := open[p.rng.Intn(len(open))]
	p.last = [2]match.ID{term, def}
	return term, def, true
}

// learn records the previous guess as a miss when the counter moved.
func (p *RandomPlayer) learn(st *match.State) {
	if p.misses == nil {
		return
	}
	if st.Misses < p.seen {
		// New deal: slot ids no longer mean the same thing.
		clear(p.misses)
	} else if st.Misses > p.seen {
		p.misses[p.last] = true
	}
	p.seen = st.Misses
}
