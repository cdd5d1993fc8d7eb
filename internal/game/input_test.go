package game

import (
	"errors"
	"strings"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"

	"github.com/Garsondee/Term-Match/internal/match"
)

type fakeInput struct {
	x, y    int
	clicked bool
	keys    map[ebiten.Key]bool
}

func (f *fakeInput) install(t *testing.T) {
	t.Helper()
	restore := SetInputForTest(
		func() (int, int) { return f.x, f.y },
		func(b ebiten.MouseButton) bool { return b == ebiten.MouseButtonLeft && f.clicked },
		func(k ebiten.Key) bool { return f.keys[k] },
	)
	t.Cleanup(restore)
}

// press sets up one tick of input and runs Game.Update.
func (f *fakeInput) press(t *testing.T, g *Game, x, y int, keys ...ebiten.Key) {
	t.Helper()
	f.x, f.y, f.clicked = x, y, x >= 0
	f.keys = map[ebiten.Key]bool{}
	for _, k := range keys {
		f.keys[k] = true
	}
	if err := g.Update(); err != nil {
		t.Fatalf("update: %v", err)
	}
	f.clicked = false
	f.keys = nil
}

func testGame(t *testing.T) *Game {
	t.Helper()
	d := match.NewDeck([]match.Pair{
		{Term: "A", Definition: "1"},
		{Term: "B", Definition: "2"},
	}, "")
	g, err := New(d, Options{Width: 1280, Height: 800, Seed: 7, Logger: zerolog.Nop()})
	if err != nil {
		t.Fatalf("new game: %v", err)
	}
	return g
}

func TestGame_ClickRoutesToBoard(t *testing.T) {
	g := testGame(t)
	in := &fakeInput{}
	in.install(t)

	b := g.Controller().Board()
	x, y := b.TermCenter(1)
	in.press(t, g, x, y)
	if id, ok := g.Controller().State().Selected(); !ok || id != 1 {
		t.Fatalf("click on term 1 should select it, got %d ok=%v", id, ok)
	}

	def := g.Controller().State().DefinitionFor(1)
	x, y = b.DefinitionCenter(def)
	in.press(t, g, x, y)
	if g.Controller().State().MatchesFound != 1 {
		t.Fatal("click on the true definition should match")
	}
}

func TestGame_NoClickNoChange(t *testing.T) {
	g := testGame(t)
	in := &fakeInput{}
	in.install(t)
	in.press(t, g, -1, -1)
	if _, ok := g.Controller().State().Selected(); ok {
		t.Fatal("an idle tick must not select anything")
	}
}

func TestGame_RestartKey(t *testing.T) {
	g := testGame(t)
	in := &fakeInput{}
	in.install(t)
	in.press(t, g, -1, -1, ebiten.KeyR)
	if !g.Controller().RestartLocked() {
		t.Fatal("R should start a restart")
	}
	in.press(t, g, -1, -1, ebiten.KeyR)
	if n := g.Controller().Journal().Count(catSession, keyRestartIgnored); n != 1 {
		t.Fatalf("second R during the transition should be ignored, got %d", n)
	}
}

func TestGame_CopySummary(t *testing.T) {
	g := testGame(t)
	in := &fakeInput{}
	in.install(t)

	var copied string
	old := writeClipboard
	writeClipboard = func(s string) error { copied = s; return nil }
	t.Cleanup(func() { writeClipboard = old })

	in.press(t, g, -1, -1, ebiten.KeyC)
	if !strings.Contains(copied, "matched 0 / 2") {
		t.Fatalf("clipboard got %q", copied)
	}

	writeClipboard = func(string) error { return errors.New("no clipboard") }
	in.press(t, g, -1, -1, ebiten.KeyC)
}

func TestNew_RejectsBadInput(t *testing.T) {
	if _, err := New(match.NewDeck(nil, ""), Options{Width: 10, Height: 10}); err == nil {
		t.Fatal("empty deck should be rejected")
	}
	d := match.NewDeck([]match.Pair{{Term: "A", Definition: "1"}}, "")
	if _, err := New(d, Options{}); err == nil {
		t.Fatal("zero surface should be rejected")
	}
}

func TestWithAlpha_ScalesAllChannels(t *testing.T) {
	c := withAlpha(colorCorrect, 0.5)
	if c.A != 127 || c.G != 127 || c.B != 76 {
		t.Fatalf("unexpected premultiplied colour %+v", c)
	}
	if z := withAlpha(colorCorrect, -1); z.A != 0 || z.G != 0 {
		t.Fatalf("negative alpha should clamp to 0, got %+v", z)
	}
}

func TestWrapText_EllipsizesOverflow(t *testing.T) {
	f, err := loadFaces()
	if err != nil {
		t.Fatalf("faces: %v", err)
	}
	long := strings.Repeat("channel ", 40)
	lines := wrapText(long, f.item, 200, 2)
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if !strings.HasSuffix(lines[1], "…") {
		t.Fatalf("last line should be ellipsized: %q", lines[1])
	}
	if got := wrapText("Goroutine", f.item, 200, 2); len(got) != 1 || got[0] != "Goroutine" {
		t.Fatalf("short text should pass through, got %v", got)
	}
}
