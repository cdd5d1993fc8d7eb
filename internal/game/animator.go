package game

import (
	"github.com/Garsondee/Term-Match/internal/match"
	"github.com/Garsondee/Term-Match/internal/tween"
)

// winMessage is shown once every pair is matched.
const winMessage = "Great job! You matched all correctly!"

// itemVisual is the display state of one term or definition. It carries no
// game state: Matched here only mirrors a correct event already decided.
type itemVisual struct {
	selected bool    // visual marker, not the logical selection
	picks    int     // times this item was selected
	matched  bool    // match colour applies
	matchMix float64 // 0..1 blend toward the match colour
	flash    float64 // 0..1 blend toward the error colour
	scale    float64
	dy       float64 // vertical offset in pixels
	alpha    float64
}

func newItemVisual() *itemVisual {
	return &itemVisual{scale: 1, alpha: 1}
}

// Animator turns state-machine events and lifecycle cues into tweens.
type Animator struct {
	tl    *tween.Timeline
	terms []*itemVisual
	defs  []*itemVisual

	bannerText  string
	bannerScale float64
	container   float64 // board-wide scale
	button      float64 // restart button scale
}

// NewAnimator creates an animator driving tweens on tl.
func NewAnimator(tl *tween.Timeline) *Animator {
	return &Animator{tl: tl, container: 1, button: 1}
}

// Reset discards every visual and builds fresh ones for n pairs.
func (a *Animator) Reset(n int) {
	a.terms = make([]*itemVisual, n)
	a.defs = make([]*itemVisual, n)
	for i := 0; i < n; i++ {
		a.terms[i] = newItemVisual()
		a.defs[i] = newItemVisual()
	}
	a.bannerText = ""
	a.bannerScale = 0
	a.container = 1
	a.button = 1
}

// Term returns term id's visual.
func (a *Animator) Term(id match.ID) *itemVisual { return a.terms[id] }

// Definition returns definition id's visual.
func (a *Animator) Definition(id match.ID) *itemVisual { return a.defs[id] }

// Banner returns the completion message ("" until the win) and its scale.
func (a *Animator) Banner() (string, float64) { return a.bannerText, a.bannerScale }

// Apply reacts to one already-decided event.
func (a *Animator) Apply(ev match.Event) {
	switch ev.Kind {
	case match.EventSelect:
		for _, v := range a.terms {
			v.selected = false
		}
		a.terms[ev.Term].selected = true
		a.terms[ev.Term].picks++
	case match.EventCorrect:
		a.commitMatch(a.terms[ev.Term], a.defs[ev.Definition])
	case match.EventIncorrect:
		a.flashMiss(a.terms[ev.Term], a.defs[ev.Definition])
	case match.EventWin:
		a.celebrate()
	}
}

func (a *Animator) commitMatch(term, def *itemVisual) {
	pair := []*itemVisual{term, def}
	for _, v := range pair {
		v.matched = true
		v.scale = 1.05
	}
	start := term.matchMix
	a.tl.Add(&tween.Tween{
		Duration: matchTintTicks,
		OnUpdate: func(x float64) {
			for _, v := range pair {
				v.matchMix = tween.Lerp(start, 1, x)
			}
		},
	})
	a.tl.Add(&tween.Tween{
		Duration: matchPopTicks,
		Ease:     tween.OutElastic(1, 0.5),
		OnUpdate: func(x float64) {
			for _, v := range pair {
				v.scale = tween.Lerp(1.05, 1, x)
			}
		},
	})
}

// flashMiss flashes both items red and back, then drops the term's visual
// selection marker unless the term was picked again meanwhile. The logical
// selection was already released.
func (a *Animator) flashMiss(term, def *itemVisual) {
	picks := term.picks
	a.tl.Add(&tween.Tween{
		Duration: flashTicks,
		Repeat:   1,
		Yoyo:     true,
		Ease:     tween.InOutQuad,
		OnUpdate: func(x float64) {
			term.flash = x
			def.flash = x
		},
		OnComplete: func() {
			if term.picks == picks {
				term.selected = false
			}
		},
	})
}

func (a *Animator) celebrate() {
	a.bannerText = winMessage
	a.bannerScale = 0
	a.tl.Add(&tween.Tween{
		Duration: bannerTicks,
		Ease:     tween.OutBack(1.7),
		OnUpdate: func(x float64) { a.bannerScale = x },
	})

	var hoppers []*itemVisual
	for _, v := range a.terms {
		if v.matched {
			hoppers = append(hoppers, v)
		}
	}
	for _, v := range a.defs {
		if v.matched {
			hoppers = append(hoppers, v)
		}
	}
	a.tl.Stagger(len(hoppers), bounceStagger, func(i int) *tween.Tween {
		v := hoppers[i]
		return &tween.Tween{
			Duration: bounceTicks,
			Repeat:   bounceRepeat,
			Yoyo:     true,
			Ease:     tween.InOutQuad,
			OnUpdate: func(x float64) { v.dy = -bounceHeight * x },
		}
	})
}

// Entrance reveals the board: terms rise in one by one, definitions follow a
// beat later, and the board settles from a slight shrink. It returns the
// cue's length in ticks.
func (a *Animator) Entrance() int {
	for _, v := range a.all() {
		v.alpha = 0
		v.dy = entranceRise
		v.scale = 0.98
	}
	reveal := func(col []*itemVisual, delay int) func(i int) *tween.Tween {
		return func(i int) *tween.Tween {
			v := col[i]
			return &tween.Tween{
				Delay:    delay,
				Duration: entranceTicks,
				Ease:     tween.OutBack(1.4),
				OnUpdate: func(x float64) {
					v.alpha = x
					v.dy = tween.Lerp(entranceRise, 0, x)
					v.scale = tween.Lerp(0.98, 1, x)
				},
			}
		}
	}
	span := a.tl.Stagger(len(a.terms), entranceStagger, reveal(a.terms, 0))
	if s := a.tl.Stagger(len(a.defs), entranceStagger, reveal(a.defs, entranceDefsDelay)); s > span {
		span = s
	}

	a.container = 0.995
	a.tl.Add(&tween.Tween{
		Duration: containerPopTicks,
		Ease:     tween.OutCubic,
		OnUpdate: func(x float64) { a.container = tween.Lerp(0.995, 1, x) },
	})
	if containerPopTicks > span {
		span = containerPopTicks
	}
	return span
}

// Exit dismisses every item with a short stagger and pulses the restart
// button. It returns the cue's length in ticks.
func (a *Animator) Exit() int {
	items := a.all()
	span := a.tl.Stagger(len(items), exitStagger, func(i int) *tween.Tween {
		v := items[i]
		var fromAlpha, fromDY, fromScale float64
		started := false
		return &tween.Tween{
			Duration: exitTicks,
			Ease:     tween.InQuad,
			OnUpdate: func(x float64) {
				if !started {
					fromAlpha, fromDY, fromScale = v.alpha, v.dy, v.scale
					started = true
				}
				v.alpha = tween.Lerp(fromAlpha, 0, x)
				v.dy = tween.Lerp(fromDY, -exitLift, x)
				v.scale = tween.Lerp(fromScale, 0.98, x)
			},
		}
	})

	a.tl.Add(&tween.Tween{
		Delay:    buttonPulseDelay,
		Duration: buttonPulseTicks,
		Ease:     tween.OutElastic(1, 0.6),
		OnUpdate: func(x float64) { a.button = tween.Lerp(0.98, 1, x) },
	})
	if end := buttonPulseDelay + buttonPulseTicks; end > span {
		span = end
	}
	return span
}

// all returns terms then definitions, the order items appear on the page.
func (a *Animator) all() []*itemVisual {
	out := make([]*itemVisual, 0, len(a.terms)+len(a.defs))
	out = append(out, a.terms...)
	return append(out, a.defs...)
}
