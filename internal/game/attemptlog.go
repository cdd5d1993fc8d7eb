package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	attemptLogSize  = 5 // most recent evaluations kept on screen
	attemptLineH    = 18
	attemptDotSize  = 6
	attemptPanelPad = 8
)

// Attempt is one evaluated term/definition pairing.
type Attempt struct {
	Tick       int
	Term       string
	Definition string
	Correct    bool
}

// AttemptLog is a small ring buffer of recent evaluations drawn in the
// bottom-left corner.
type AttemptLog struct {
	entries [attemptLogSize]Attempt
	head    int
	count   int
}

// Add appends an attempt, overwriting the oldest when full.
func (al *AttemptLog) Add(a Attempt) {
	al.entries[al.head] = a
	al.head = (al.head + 1) % attemptLogSize
	if al.count < attemptLogSize {
		al.count++
	}
}

// Recent returns attempts oldest first.
func (al *AttemptLog) Recent() []Attempt {
	out := make([]Attempt, al.count)
	for i := 0; i < al.count; i++ {
		idx := (al.head - al.count + i + attemptLogSize) % attemptLogSize
		out[i] = al.entries[idx]
	}
	return out
}

// Reset empties the log.
func (al *AttemptLog) Reset() {
	*al = AttemptLog{}
}

// Draw renders the log with its bottom-left corner at (x, bottom).
func (al *AttemptLog) Draw(screen *ebiten.Image, face text.Face, x, bottom int) {
	recent := al.Recent()
	if len(recent) == 0 {
		return
	}
	y := bottom - len(recent)*attemptLineH - attemptPanelPad
	for i, a := range recent {
		dot := colorIncorrect
		if a.Correct {
			dot = colorCorrect
		}
		// Older lines fade out.
		fade := 0.4 + 0.6*float64(i+1)/float64(len(recent))
		ly := float32(y + i*attemptLineH)
		vector.FillRect(screen, float32(x), ly+6, attemptDotSize, attemptDotSize, withAlpha(dot, fade), false)

		op := &text.DrawOptions{}
		op.GeoM.Translate(float64(x+attemptDotSize+6), float64(ly))
		op.ColorScale.ScaleWithColor(color.White)
		op.ColorScale.ScaleAlpha(float32(fade))
		text.Draw(screen, truncate(a.Term, 18)+" → "+truncate(a.Definition, 28), face, op)
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
