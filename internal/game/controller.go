package game

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Garsondee/Term-Match/internal/match"
	"github.com/Garsondee/Term-Match/internal/tween"
)

// Controller owns the session lifecycle: it builds each generation from the
// deck, routes clicks into the state machine and hands the outcomes to the
// connectors and the animator.
type Controller struct {
	deck  *match.Deck
	src   match.Source
	board Board
	log   zerolog.Logger

	tl       *tween.Timeline
	state    *match.State
	anim     *Animator
	lines    *Connectors
	journal  *Journal
	attempts AttemptLog

	generation int
	session    uuid.UUID
	startTick  int

	restartLocked bool // restart input disabled
	exiting       bool // exit cue running, board input ignored
}

// NewController wires a controller for deck on a width x height surface.
// src supplies every shuffle, including those after restarts.
func NewController(deck *match.Deck, src match.Source, width, height int, log zerolog.Logger) *Controller {
	tl := tween.New()
	return &Controller{
		deck:    deck,
		src:     src,
		board:   NewBoard(width, height, deck.Len()),
		log:     log,
		tl:      tl,
		anim:    NewAnimator(tl),
		lines:   NewConnectors(tl),
		journal: NewJournal(),
	}
}

// Init discards the current generation, deals a fresh shuffle and plays the
// entrance cue.
func (c *Controller) Init() {
	c.tl.Clear()
	c.lines.Reset()
	c.attempts.Reset()
	c.state = match.NewState(c.deck, c.src)
	c.anim.Reset(c.deck.Len())
	c.exiting = false

	c.generation++
	c.session = uuid.New()
	c.startTick = c.tl.Tick()
	c.journal.Add(c.tl.Tick(), c.generation, catSession, keyInit,
		fmt.Sprintf("%s pairs=%d", c.session, c.state.TotalPairs))
	c.log.Info().
		Str("session", c.session.String()).
		Int("generation", c.generation).
		Int("pairs", c.state.TotalPairs).
		Msg("session started")

	c.anim.Entrance()
}

// Restart plays the exit cue, then re-initializes. It returns false, doing
// nothing, while a previous restart is still in progress.
func (c *Controller) Restart() bool {
	if c.state == nil {
		return false
	}
	if c.restartLocked {
		c.journal.Add(c.tl.Tick(), c.generation, catSession, keyRestartIgnored, "")
		c.log.Debug().Int("generation", c.generation).Msg("restart ignored, transition in progress")
		return false
	}
	c.restartLocked = true
	c.exiting = true
	c.journal.Add(c.tl.Tick(), c.generation, catSession, keyRestart,
		fmt.Sprintf("matched=%d/%d", c.state.MatchesFound, c.state.TotalPairs))
	c.log.Info().Int("generation", c.generation).Msg("restart requested")

	span := c.anim.Exit()
	if s := c.lines.FadeOut(lineExitTicks); s > span {
		span = s
	}
	c.tl.After(span, func() {
		c.Init()
		c.tl.After(restartCooldownTicks, func() { c.restartLocked = false })
	})
	return true
}

// ClickAt routes a pointer press at screen (x, y).
func (c *Controller) ClickAt(x, y int) {
	if c.board.RestartAt(x, y) {
		c.Restart()
		return
	}
	if id, ok := c.board.TermAt(x, y); ok {
		c.ClickTerm(id)
		return
	}
	if id, ok := c.board.DefinitionAt(x, y); ok {
		c.ClickDefinition(id)
	}
}

// ClickTerm handles a click on term id.
func (c *Controller) ClickTerm(id match.ID) {
	if c.exiting || c.state == nil {
		return
	}
	for _, ev := range c.state.SelectTerm(id) {
		c.journal.Add(c.tl.Tick(), c.generation, catSelect, keyTerm, c.state.Terms[ev.Term].Text)
		c.anim.Apply(ev)
	}
}

// ClickDefinition evaluates a click on definition slot id.
func (c *Controller) ClickDefinition(id match.ID) {
	if c.exiting || c.state == nil {
		return
	}
	for _, ev := range c.state.SelectDefinition(id) {
		switch ev.Kind {
		case match.EventCorrect, match.EventIncorrect:
			correct := ev.Kind == match.EventCorrect
			c.lines.Draw(c.board.TermAnchor(ev.Term), c.board.DefinitionAnchor(ev.Definition), correct)
			c.recordAttempt(ev, correct)
		case match.EventWin:
			c.journal.Add(c.tl.Tick(), c.generation, catWin, keyComplete,
				fmt.Sprintf("ticks=%d misses=%d", c.Elapsed(), c.state.Misses))
			c.log.Info().
				Str("session", c.session.String()).
				Int("ticks", c.Elapsed()).
				Int("misses", c.state.Misses).
				Msg("all pairs matched")
		}
		c.anim.Apply(ev)
	}
}

func (c *Controller) recordAttempt(ev match.Event, correct bool) {
	term := c.state.Terms[ev.Term].Text
	def := c.state.Definitions[ev.Definition].Text
	key := keyIncorrect
	if correct {
		key = keyCorrect
	}
	c.journal.Add(c.tl.Tick(), c.generation, catMatch, key, term+" → "+def)
	c.attempts.Add(Attempt{Tick: c.tl.Tick(), Term: term, Definition: def, Correct: correct})
	c.log.Debug().
		Int("generation", c.generation).
		Str("term", term).
		Str("definition", def).
		Bool("correct", correct).
		Int("matches", c.state.MatchesFound).
		Msg("evaluated")
}

// Update advances every animation by one tick.
func (c *Controller) Update() {
	c.tl.Update()
}

// State returns the current generation's state machine.
func (c *Controller) State() *match.State { return c.state }

// Board returns the layout in use.
func (c *Controller) Board() Board { return c.board }

// Journal returns the session journal.
func (c *Controller) Journal() *Journal { return c.journal }

// Connectors returns the live line set.
func (c *Controller) Connectors() *Connectors { return c.lines }

// Animator returns the feedback animator.
func (c *Controller) Animator() *Animator { return c.anim }

// Attempts returns the recent-attempt ring buffer.
func (c *Controller) Attempts() *AttemptLog { return &c.attempts }

// Won reports whether the current generation is solved.
func (c *Controller) Won() bool { return c.state != nil && c.state.Won() }

// RestartLocked reports whether restart input is currently disabled.
func (c *Controller) RestartLocked() bool { return c.restartLocked }

// Generation returns how many times the board has been dealt.
func (c *Controller) Generation() int { return c.generation }

// Session returns the current generation's id.
func (c *Controller) Session() uuid.UUID { return c.session }

// Tick returns the number of updates run so far.
func (c *Controller) Tick() int { return c.tl.Tick() }

// Elapsed returns ticks since the current generation was dealt.
func (c *Controller) Elapsed() int { return c.tl.Tick() - c.startTick }

// Summary renders a plain-text report of the current generation, suitable
// for the clipboard.
func (c *Controller) Summary() string {
	st := c.state
	var b strings.Builder
	fmt.Fprintf(&b, "Term Match session %s (deal %d)\n", c.session, c.generation)
	fmt.Fprintf(&b, "matched %d / %d, misses %d, elapsed %.1fs\n",
		st.MatchesFound, st.TotalPairs, st.Misses, float64(c.Elapsed())/60)
	if st.Won() {
		b.WriteString("status: complete\n")
	} else {
		b.WriteString("status: in progress\n")
	}
	for _, m := range st.Matches {
		fmt.Fprintf(&b, "  %s → %s\n", st.Terms[m.Term].Text, st.Definitions[m.Definition].Text)
	}
	return b.String()
}
