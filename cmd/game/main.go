package main

import (
	_ "image/jpeg"
	_ "image/png"
	"os"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	_ "golang.org/x/image/webp"

	"github.com/Garsondee/Term-Match/internal/config"
	"github.com/Garsondee/Term-Match/internal/deck"
	"github.com/Garsondee/Term-Match/internal/game"
)

func main() {
	cfg := config.Default()
	cobra.CheckErr(newCmd(&cfg).Execute())
}

func newCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "term-match",
		Short: "Match each term to its definition.",
		Args:  cobra.ExactArgs(0),
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := config.BindEnv(cmd.Flags()); err != nil {
				return err
			}
			return cfg.Validate()
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return run(cfg)
		},
	}
	cfg.RegisterFlags(cmd.Flags())

	cmd.CompletionOptions.HiddenDefaultCmd = true
	cmd.SetHelpCommand(&cobra.Command{Hidden: true})
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true
	return cmd
}

func run(cfg *config.Config) error {
	zerolog.SetGlobalLevel(cfg.Level())
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})

	d, err := deck.Load(cfg.DataFile)
	if err != nil {
		log.Fatal().Err(err).Str("data", cfg.DataFile).Msg("failed to load pairs")
	}
	log.Info().Str("data", cfg.DataFile).Int("pairs", d.Len()).Msg("deck loaded")

	g, err := game.New(d, game.Options{
		Width:      cfg.Width,
		Height:     cfg.Height,
		Seed:       cfg.Seed,
		Background: loadBackground(d.Background()),
		Logger:     log.Logger,
	})
	if err != nil {
		return err
	}

	ebiten.SetWindowTitle("Term Match")
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(cfg.Fullscreen)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal().Err(err).Msg("game exited")
	}
	return nil
}

// loadBackground decodes the deck's background image. Failure only costs
// the decoration, so it is logged and the plain backdrop is used.
func loadBackground(path string) *ebiten.Image {
	if path == "" {
		return nil
	}
	if strings.Contains(path, "://") {
		log.Warn().Str("background", path).Msg("remote backgrounds are not fetched")
		return nil
	}
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		log.Warn().Err(err).Str("background", path).Msg("background not loaded")
		return nil
	}
	return img
}
