// Package tween is a tick-driven animation scheduler: property tweens with
// delay, easing, yoyo and repeat, completion callbacks, staggered groups and
// plain timers. One Update call advances everything by one tick.
package tween

// Tween animates a value from 0 to 1 (eased) over Duration ticks after Delay
// ticks. OnUpdate receives the eased value every tick once the delay has
// passed; OnComplete runs once, on the tick the tween finishes.
type Tween struct {
	Delay    int
	Duration int
	Repeat   int  // extra cycles after the first
	Yoyo     bool // odd cycles run backwards
	Ease     Ease

	OnUpdate   func(v float64)
	OnComplete func()

	elapsed int
	done    bool
}

// Total returns the tween's length in ticks, delay included.
func (tw *Tween) Total() int {
	d := tw.Duration
	if d < 0 {
		d = 0
	}
	return tw.Delay + d*(tw.Repeat+1)
}

// Done reports whether the tween has completed or was cancelled.
func (tw *Tween) Done() bool {
	return tw.done
}

// Cancel stops the tween without running OnComplete.
func (tw *Tween) Cancel() {
	tw.done = true
}

// progress returns linear progress for the current elapsed tick count.
func (tw *Tween) progress() float64 {
	local := tw.elapsed - tw.Delay
	if tw.Duration <= 0 || local >= tw.Duration*(tw.Repeat+1) {
		if tw.Yoyo && tw.Repeat%2 == 1 {
			return 0
		}
		return 1
	}
	cycle := local / tw.Duration
	p := float64(local%tw.Duration) / float64(tw.Duration)
	if tw.Yoyo && cycle%2 == 1 {
		p = 1 - p
	}
	return p
}

func (tw *Tween) step() {
	tw.elapsed++
	if tw.elapsed <= tw.Delay && tw.elapsed < tw.Total() {
		return
	}
	if tw.OnUpdate != nil {
		ease := tw.Ease
		if ease == nil {
			ease = Linear
		}
		tw.OnUpdate(ease(tw.progress()))
	}
	if tw.elapsed >= tw.Total() {
		tw.done = true
		if tw.OnComplete != nil {
			tw.OnComplete()
		}
	}
}

// Timeline owns a set of running tweens.
type Timeline struct {
	tweens []*Tween
	gen    int
	tick   int
}

// New returns an empty Timeline.
func New() *Timeline {
	return &Timeline{}
}

// Add schedules tw, starting on the next Update.
func (tl *Timeline) Add(tw *Tween) *Tween {
	tl.tweens = append(tl.tweens, tw)
	return tw
}

// After runs fn once ticks updates from now (next Update when ticks <= 0).
func (tl *Timeline) After(ticks int, fn func()) *Tween {
	if ticks < 1 {
		ticks = 1
	}
	return tl.Add(&Tween{Duration: ticks, OnComplete: fn})
}

// Stagger adds n tweens built by build, offsetting the i-th by i*each ticks
// on top of its own Delay. It returns the span in ticks until the last one
// finishes.
func (tl *Timeline) Stagger(n, each int, build func(i int) *Tween) int {
	span := 0
	for i := 0; i < n; i++ {
		tw := build(i)
		if tw == nil {
			continue
		}
		tw.Delay += i * each
		tl.Add(tw)
		if t := tw.Total(); t > span {
			span = t
		}
	}
	return span
}

// Update advances every live tween by one tick. Tweens added from callbacks
// start on the following Update. A Clear from a callback stops the rest of
// the current pass.
func (tl *Timeline) Update() {
	tl.tick++
	gen := tl.gen
	for _, tw := range tl.tweens {
		if tl.gen != gen {
			break
		}
		if tw.done {
			continue
		}
		tw.step()
	}
	kept := tl.tweens[:0]
	for _, tw := range tl.tweens {
		if !tw.done {
			kept = append(kept, tw)
		}
	}
	for i := len(kept); i < len(tl.tweens); i++ {
		tl.tweens[i] = nil
	}
	tl.tweens = kept
}

// Clear cancels every scheduled tween. OnComplete callbacks do not run.
func (tl *Timeline) Clear() {
	for _, tw := range tl.tweens {
		tw.done = true
	}
	tl.tweens = nil
	tl.gen++
}

// Len returns the number of live tweens.
func (tl *Timeline) Len() int {
	return len(tl.tweens)
}

// Tick returns how many times Update has run.
func (tl *Timeline) Tick() int {
	return tl.tick
}
