package game

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	colorBackdrop  = color.RGBA{R: 14, G: 17, B: 26, A: 255}
	colorItem      = color.RGBA{R: 34, G: 41, B: 60, A: 235}
	colorItemEdge  = color.RGBA{R: 70, G: 84, B: 120, A: 255}
	colorSelected  = color.RGBA{R: 64, G: 112, B: 214, A: 245}
	colorSelectRim = color.RGBA{R: 150, G: 190, B: 255, A: 255}
	colorButton    = color.RGBA{R: 52, G: 62, B: 92, A: 255}
	colorButtonOff = color.RGBA{R: 40, G: 44, B: 56, A: 200}
	colorText      = color.RGBA{R: 235, G: 240, B: 250, A: 255}
	colorTextDark  = color.RGBA{R: 12, G: 30, B: 22, A: 255}
	colorHint      = color.RGBA{R: 150, G: 160, B: 185, A: 255}
)

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// withAlpha scales a premultiplied colour by a in [0,1].
func withAlpha(c color.RGBA, a float64) color.RGBA {
	a = clamp01(a)
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}

func mixColor(a, b color.RGBA, t float64) color.RGBA {
	t = clamp01(t)
	lerp := func(x, y uint8) uint8 { return uint8(float64(x) + (float64(y)-float64(x))*t) }
	return color.RGBA{R: lerp(a.R, b.R), G: lerp(a.G, b.G), B: lerp(a.B, b.B), A: lerp(a.A, b.A)}
}

// fill returns the item's current background colour.
func (v *itemVisual) fill() color.RGBA {
	c := colorItem
	if v.selected {
		c = colorSelected
	}
	if v.matched {
		c = mixColor(c, colorCorrect, v.matchMix)
	}
	return mixColor(c, colorIncorrect, v.flash)
}

// placed returns r after the item's offset and scale and the board-wide
// container scale around (cx, cy).
func placed(r rect, v *itemVisual, container, cx, cy float64) (x, y, w, h float64) {
	w = float64(r.w) * v.scale
	h = float64(r.h) * v.scale
	ix := float64(r.x) + float64(r.w)/2
	iy := float64(r.y) + float64(r.h)/2 + v.dy
	ix = cx + (ix-cx)*container
	iy = cy + (iy-cy)*container
	w *= container
	h *= container
	return ix - w/2, iy - h/2, w, h
}

func (g *Game) drawItem(screen *ebiten.Image, r rect, v *itemVisual, label string) {
	if v.alpha <= 0 {
		return
	}
	bw, bh := g.ctrl.Board().Size()
	x, y, w, h := placed(r, v, g.ctrl.Animator().container, float64(bw)/2, float64(bh)/2)
	alpha := clamp01(v.alpha)

	fx, fy, fw, fh := float32(x), float32(y), float32(w), float32(h)
	vector.FillRect(screen, fx+3, fy+3, fw, fh, withAlpha(color.RGBA{A: 90}, alpha), false)
	vector.FillRect(screen, fx, fy, fw, fh, withAlpha(v.fill(), alpha), false)
	edge := colorItemEdge
	if v.selected && !v.matched {
		edge = colorSelectRim
	}
	vector.StrokeRect(screen, fx, fy, fw, fh, 1.5, withAlpha(edge, alpha), true)

	txtCol := colorText
	if v.matched && v.matchMix > 0.5 {
		txtCol = colorTextDark
	}
	lines := wrapText(label, g.faces.item, w-24, 2)
	op := &text.DrawOptions{}
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.LineSpacing = g.faces.item.Size * 1.25
	op.GeoM.Scale(v.scale, v.scale)
	op.GeoM.Translate(x+w/2, y+h/2)
	op.ColorScale.ScaleWithColor(txtCol)
	op.ColorScale.ScaleAlpha(float32(alpha))
	text.Draw(screen, strings.Join(lines, "\n"), g.faces.item, op)
}

func (g *Game) drawBoard(screen *ebiten.Image) {
	st := g.ctrl.State()
	b := g.ctrl.Board()
	a := g.ctrl.Animator()
	for i, t := range st.Terms {
		g.drawItem(screen, b.terms[i], a.terms[i], t.Text)
	}
	for i, d := range st.Definitions {
		g.drawItem(screen, b.defs[i], a.defs[i], d.Text)
	}
}

func (g *Game) drawBackground(screen *ebiten.Image) {
	screen.Fill(colorBackdrop)
	if g.background == nil {
		return
	}
	sw, sh := g.background.Bounds().Dx(), g.background.Bounds().Dy()
	if sw == 0 || sh == 0 {
		return
	}
	// Cover: scale to fill, centre, crop the overflow.
	s := math.Max(float64(g.width)/float64(sw), float64(g.height)/float64(sh))
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(s, s)
	op.GeoM.Translate((float64(g.width)-float64(sw)*s)/2, (float64(g.height)-float64(sh)*s)/2)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(g.background, op)
	// Dim so the columns stay readable.
	vector.FillRect(screen, 0, 0, float32(g.width), float32(g.height), color.RGBA{A: 120}, false)
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(boardMargin, 28)
	op.ColorScale.ScaleWithColor(colorText)
	text.Draw(screen, "Match each term to its definition", g.faces.title, op)

	st := g.ctrl.State()
	status := fmt.Sprintf("matched %d / %d", st.MatchesFound, st.TotalPairs)
	op = &text.DrawOptions{}
	op.PrimaryAlign = text.AlignEnd
	op.GeoM.Translate(float64(g.width-boardMargin), 36)
	op.ColorScale.ScaleWithColor(colorHint)
	text.Draw(screen, status, g.faces.hud, op)

	op = &text.DrawOptions{}
	op.PrimaryAlign = text.AlignEnd
	op.GeoM.Translate(float64(g.width-boardMargin), float64(g.height-22))
	op.ColorScale.ScaleWithColor(colorHint)
	text.Draw(screen, "[R] restart  [C] copy summary", g.faces.hud, op)
}

func (g *Game) drawBanner(screen *ebiten.Image) {
	msg, scale := g.ctrl.Animator().Banner()
	if msg == "" || scale <= 0 {
		return
	}
	op := &text.DrawOptions{}
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(float64(g.width)/2, float64(g.height-boardBottom+40))
	op.ColorScale.ScaleWithColor(colorCorrect)
	text.Draw(screen, msg, g.faces.banner, op)
}

func (g *Game) drawRestartButton(screen *ebiten.Image) {
	r := g.ctrl.Board().restart
	s := g.ctrl.Animator().button
	cx, cy := r.center()
	w, h := float32(float64(r.w)*s), float32(float64(r.h)*s)
	x, y := cx-w/2, cy-h/2

	fill, label := colorButton, colorText
	if g.ctrl.RestartLocked() {
		fill, label = colorButtonOff, colorHint
	}
	vector.FillRect(screen, x, y, w, h, fill, false)
	vector.StrokeRect(screen, x, y, w, h, 1.5, colorItemEdge, true)

	op := &text.DrawOptions{}
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.GeoM.Translate(float64(cx), float64(cy))
	op.ColorScale.ScaleWithColor(label)
	text.Draw(screen, "Restart", g.faces.hud, op)
}
