package game

import "github.com/Garsondee/Term-Match/internal/match"

// Board geometry. All coordinates are screen pixels relative to the window's
// top-left corner, which is also the connector drawing surface origin.
const (
	boardMargin   = 48  // left/right window margin
	boardTop      = 96  // space reserved for the title and HUD
	boardBottom   = 150 // space reserved for the banner and restart button
	itemGap       = 12  // vertical gap between items in a column
	itemMaxHeight = 72
	itemMinHeight = 28
	columnGapMin  = 160 // minimum horizontal gap where connectors run
	buttonW       = 160
	buttonH       = 44
)

type rect struct {
	x int
	y int
	w int
	h int
}

func (r rect) contains(px, py int) bool {
	return px >= r.x && px < r.x+r.w && py >= r.y && py < r.y+r.h
}

func (r rect) center() (float32, float32) {
	return float32(r.x) + float32(r.w)/2, float32(r.y) + float32(r.h)/2
}

// Point is a position on the drawing surface.
type Point struct {
	X, Y float32
}

// Board lays out the two columns and the restart button for n pairs.
// Term i occupies row i; definition slot j occupies row j of the right column.
type Board struct {
	width   int
	height  int
	terms   []rect
	defs    []rect
	restart rect
}

// NewBoard computes the layout for an n-pair deck on a width x height surface.
func NewBoard(width, height, n int) Board {
	b := Board{width: width, height: height}

	gap := width / 4
	if gap < columnGapMin {
		gap = columnGapMin
	}
	colW := (width - 2*boardMargin - gap) / 2
	if colW < 1 {
		colW = 1
	}

	avail := height - boardTop - boardBottom
	itemH := itemMaxHeight
	if n > 0 {
		if fit := (avail - (n-1)*itemGap) / n; fit < itemH {
			itemH = fit
		}
	}
	if itemH < itemMinHeight {
		itemH = itemMinHeight
	}
	colH := n*itemH + (n-1)*itemGap
	y0 := boardTop + (avail-colH)/2
	if y0 < boardTop {
		y0 = boardTop
	}

	leftX := boardMargin
	rightX := width - boardMargin - colW
	b.terms = make([]rect, n)
	b.defs = make([]rect, n)
	for i := 0; i < n; i++ {
		y := y0 + i*(itemH+itemGap)
		b.terms[i] = rect{x: leftX, y: y, w: colW, h: itemH}
		b.defs[i] = rect{x: rightX, y: y, w: colW, h: itemH}
	}
	b.restart = rect{
		x: (width - buttonW) / 2,
		y: height - buttonH - 28,
		w: buttonW,
		h: buttonH,
	}
	return b
}

// Size returns the surface dimensions.
func (b Board) Size() (int, int) {
	return b.width, b.height
}

// Len returns the number of rows.
func (b Board) Len() int {
	return len(b.terms)
}

// TermAt returns the term under (x, y).
func (b Board) TermAt(x, y int) (match.ID, bool) {
	return hit(b.terms, x, y)
}

// DefinitionAt returns the definition slot under (x, y).
func (b Board) DefinitionAt(x, y int) (match.ID, bool) {
	return hit(b.defs, x, y)
}

// RestartAt reports whether (x, y) is on the restart button.
func (b Board) RestartAt(x, y int) bool {
	return b.restart.contains(x, y)
}

// TermAnchor is the midpoint of the term's right edge.
func (b Board) TermAnchor(id match.ID) Point {
	r := b.terms[id]
	return Point{X: float32(r.x + r.w), Y: float32(r.y) + float32(r.h)/2}
}

// DefinitionAnchor is the midpoint of the definition's left edge.
func (b Board) DefinitionAnchor(id match.ID) Point {
	r := b.defs[id]
	return Point{X: float32(r.x), Y: float32(r.y) + float32(r.h)/2}
}

// TermCenter and DefinitionCenter are click targets for scripted input.
func (b Board) TermCenter(id match.ID) (int, int) {
	r := b.terms[id]
	return r.x + r.w/2, r.y + r.h/2
}

func (b Board) DefinitionCenter(id match.ID) (int, int) {
	r := b.defs[id]
	return r.x + r.w/2, r.y + r.h/2
}

func (b Board) RestartCenter() (int, int) {
	return b.restart.x + b.restart.w/2, b.restart.y + b.restart.h/2
}

func hit(rs []rect, x, y int) (match.ID, bool) {
	for i, r := range rs {
		if r.contains(x, y) {
			return match.ID(i), true
		}
	}
	return match.None, false
}
