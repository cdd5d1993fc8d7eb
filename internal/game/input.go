package game

import (
	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input and clipboard hooks, swapped out by tests.
var (
	cursorPosition   = ebiten.CursorPosition
	mouseJustPressed = inpututil.IsMouseButtonJustPressed
	keyJustPressed   = inpututil.IsKeyJustPressed
	justPressedTouch = inpututil.AppendJustPressedTouchIDs
	touchPosition    = ebiten.TouchPosition
	writeClipboard   = clipboard.WriteAll
)

// SetInputForTest replaces the pointer and keyboard hooks and returns a
// function that restores the originals.
func SetInputForTest(
	cursor func() (int, int),
	mouse func(ebiten.MouseButton) bool,
	key func(ebiten.Key) bool,
) func() {
	oldCursor, oldMouse, oldKey := cursorPosition, mouseJustPressed, keyJustPressed
	oldTouch := justPressedTouch
	cursorPosition = cursor
	mouseJustPressed = mouse
	keyJustPressed = key
	justPressedTouch = func(ids []ebiten.TouchID) []ebiten.TouchID { return ids }
	return func() {
		cursorPosition = oldCursor
		mouseJustPressed = oldMouse
		keyJustPressed = oldKey
		justPressedTouch = oldTouch
	}
}

// handleInput maps this tick's presses to controller calls.
func (g *Game) handleInput() {
	if mouseJustPressed(ebiten.MouseButtonLeft) {
		x, y := cursorPosition()
		g.ctrl.ClickAt(x, y)
	}
	for _, id := range justPressedTouch(nil) {
		x, y := touchPosition(id)
		g.ctrl.ClickAt(x, y)
	}
	if keyJustPressed(ebiten.KeyR) {
		g.ctrl.Restart()
	}
	if keyJustPressed(ebiten.KeyC) {
		g.copySummary()
	}
}

func (g *Game) copySummary() {
	if err := writeClipboard(g.ctrl.Summary()); err != nil {
		g.log.Warn().Err(err).Msg("copy summary to clipboard")
		return
	}
	g.log.Info().Msg("session summary copied to clipboard")
}
