package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/Term-Match/internal/tween"
)

var (
	colorCorrect   = color.RGBA{R: 0x00, G: 0xff, B: 0x99, A: 0xff}
	colorIncorrect = color.RGBA{R: 0xff, G: 0x33, B: 0x33, A: 0xff}
)

const connectorWidth = 3

// Connector is a line from a term anchor to a definition anchor.
type Connector struct {
	From    Point
	To      Point
	Correct bool

	grow  float64 // 0 = collapsed at From, 1 = reaches To
	alpha float64
}

// Tip returns the current end of the line while it grows.
func (c *Connector) Tip() Point {
	return Point{
		X: c.From.X + (c.To.X-c.From.X)*float32(c.grow),
		Y: c.From.Y + (c.To.Y-c.From.Y)*float32(c.grow),
	}
}

// Grown reports whether the line has reached its definition anchor.
func (c *Connector) Grown() bool {
	return c.grow >= 1
}

// Alpha returns the current opacity in [0,1].
func (c *Connector) Alpha() float64 {
	return c.alpha
}

// Connectors renders and retires the session's lines. Correct lines stay
// until Reset; incorrect ones run their own hold/fade timers and remove
// themselves.
type Connectors struct {
	tl    *tween.Timeline
	lines []*Connector
}

// NewConnectors binds a line set to the timeline that animates it.
func NewConnectors(tl *tween.Timeline) *Connectors {
	return &Connectors{tl: tl}
}

// Draw starts a line growing from `from` toward `to`.
func (cs *Connectors) Draw(from, to Point, correct bool) *Connector {
	c := &Connector{From: from, To: to, Correct: correct, alpha: 1}
	cs.lines = append(cs.lines, c)
	cs.tl.Add(&tween.Tween{
		Duration: lineGrowTicks,
		Ease:     tween.InOutCubic,
		OnUpdate: func(v float64) { c.grow = v },
		OnComplete: func() {
			c.grow = 1
			if !c.Correct {
				cs.retire(c)
			}
		},
	})
	return c
}

func (cs *Connectors) retire(c *Connector) {
	cs.tl.Add(&tween.Tween{
		Delay:      lineHoldTicks,
		Duration:   lineFadeTicks,
		OnUpdate:   func(v float64) { c.alpha = 1 - v },
		OnComplete: func() { cs.remove(c) },
	})
}

func (cs *Connectors) remove(c *Connector) {
	for i, l := range cs.lines {
		if l == c {
			cs.lines = append(cs.lines[:i], cs.lines[i+1:]...)
			return
		}
	}
}

// FadeOut fades every line over ticks and returns the duration.
// Lines stay in the set until Reset.
func (cs *Connectors) FadeOut(ticks int) int {
	for _, c := range cs.lines {
		c := c
		start := c.alpha
		cs.tl.Add(&tween.Tween{
			Duration: ticks,
			OnUpdate: func(v float64) { c.alpha = start * (1 - v) },
		})
	}
	return ticks
}

// Reset drops every line. Tweens still pointing at old lines only touch
// detached values.
func (cs *Connectors) Reset() {
	cs.lines = nil
}

// Lines returns the live lines in draw order.
func (cs *Connectors) Lines() []*Connector {
	return cs.lines
}

// Len returns the number of live lines.
func (cs *Connectors) Len() int {
	return len(cs.lines)
}

// Persistent counts the correct lines.
func (cs *Connectors) Persistent() int {
	n := 0
	for _, c := range cs.lines {
		if c.Correct {
			n++
		}
	}
	return n
}

// render strokes every line with round caps.
func (cs *Connectors) render(screen *ebiten.Image) {
	for _, c := range cs.lines {
		if c.alpha <= 0 {
			continue
		}
		base := colorIncorrect
		if c.Correct {
			base = colorCorrect
		}
		col := withAlpha(base, c.alpha)
		tip := c.Tip()
		vector.StrokeLine(screen, c.From.X, c.From.Y, tip.X, tip.Y, connectorWidth, col, true)
		vector.FillCircle(screen, c.From.X, c.From.Y, connectorWidth/2.0, col, true)
		vector.FillCircle(screen, tip.X, tip.Y, connectorWidth/2.0, col, true)
	}
}
