package game

// All durations are in ticks at ebiten's default 60 TPS.
const (
	lineGrowTicks = 27 // ~0.45s, line draws from term to definition
	lineHoldTicks = 27 // incorrect line stays fully visible
	lineFadeTicks = 27 // then fades out and is removed
	lineExitTicks = 15 // ~0.25s, every line fades on restart

	matchTintTicks = 15 // ~0.25s, background shifts to the match colour
	matchPopTicks  = 21 // ~0.35s, 1.05 -> 1 settle
	flashTicks     = 15 // one half of the red flash; it yoyos once

	bannerTicks   = 36 // ~0.6s, completion banner pops in
	bounceTicks   = 11 // ~0.18s, one half of a celebration hop
	bounceRepeat  = 3
	bounceStagger = 5 // ~0.08s
	bounceHeight  = 6

	entranceTicks        = 27 // ~0.45s per item
	entranceStagger      = 5  // ~0.08s
	entranceDefsDelay    = 7  // ~0.12s, right column trails the left
	entranceRise         = 20 // items rise from this many pixels below
	containerPopTicks    = 30 // ~0.5s
	exitTicks            = 17 // ~0.28s per item
	exitStagger          = 2  // ~0.03s
	exitLift             = 12
	buttonPulseDelay     = 7  // ~0.12s
	buttonPulseTicks     = 11 // ~0.18s
	restartCooldownTicks = 42 // ~0.7s after the entrance starts
)
