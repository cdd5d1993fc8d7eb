package game

import (
	"errors"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"

	"github.com/Garsondee/Term-Match/internal/match"
)

// Options configures a Game.
type Options struct {
	Width      int
	Height     int
	Seed       int64         // 0 picks a time-based seed
	Background *ebiten.Image // optional, drawn scaled to cover
	Logger     zerolog.Logger
}

// Game is the ebiten front end: it polls input, advances the controller and
// draws the board.
type Game struct {
	ctrl       *Controller
	faces      faces
	background *ebiten.Image
	log        zerolog.Logger

	width  int
	height int
}

// New builds a game for deck and deals the first board.
func New(deck *match.Deck, opts Options) (*Game, error) {
	if deck == nil || deck.Len() == 0 {
		return nil, errors.New("game needs a deck with at least one pair")
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, errors.New("game needs a positive surface size")
	}
	f, err := loadFaces()
	if err != nil {
		return nil, err
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed)) // #nosec G404 -- board shuffle, not security
	opts.Logger.Debug().Int64("seed", seed).Int("pairs", deck.Len()).Msg("dealing board")

	g := &Game{
		ctrl:       NewController(deck, rng, opts.Width, opts.Height, opts.Logger),
		faces:      f,
		background: opts.Background,
		log:        opts.Logger,
		width:      opts.Width,
		height:     opts.Height,
	}
	g.ctrl.Init()
	return g, nil
}

// Controller exposes the session controller.
func (g *Game) Controller() *Controller {
	return g.ctrl
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	g.handleInput()
	g.ctrl.Update()
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	g.drawBackground(screen)
	g.drawHUD(screen)
	g.drawBoard(screen)
	// Lines sit above the items so both ends stay visible.
	g.ctrl.Connectors().render(screen)
	g.ctrl.Attempts().Draw(screen, g.faces.hud, boardMargin, g.height-16)
	g.drawBanner(screen)
	g.drawRestartButton(screen)
}

// Layout implements ebiten.Game. The surface is fixed so the board geometry
// and the connector coordinates never drift apart.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}
