//go:build ebiten

package main

import (
	"errors"
	"flag"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"lunar-lander/internal/app"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	world, log, err := cfg.Setup(os.Stderr)
	if err != nil {
		log.Fatal().Err(err).Msg("setup failed")
	}

	game := app.New(world, cfg.Scale, cfg.TPS, cfg.Seed)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("lunar lander")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal().Err(err).Msg("game loop failed")
	}
}
