//go:build ebiten

package main

import (
	"errors"
	"flag"
	"io"
	"log"
	"os"
	"time"

	"conway-ca/internal/app"
	"conway-ca/internal/sched"
	"conway-ca/internal/session"
	"conway-ca/internal/settings"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	policy, err := sched.ParseStablePolicy(cfg.Stable)
	if err != nil {
		log.Fatal(err)
	}
	logger := log.New(io.Discard, "life: ", log.LstdFlags)
	if cfg.Verbose {
		logger.SetOutput(os.Stderr)
	}

	sess, err := session.New(session.Options{
		Width:  cfg.Width,
		Height: cfg.Height,
		Store:  settings.FileStore{Dir: cfg.SettingsDir},
		Policy: policy,
		Seed:   cfg.Seed,
		Logger: logger,
	})
	if err != nil {
		log.Fatal(err)
	}
	if cfg.Message != "" {
		if err := sess.HandleMessage([]byte(cfg.Message), time.Now()); err != nil {
			log.Printf("ignoring startup config: %v", err)
		}
	}

	game := app.New(sess, logger)

	ebiten.SetWindowTitle("conway-ca")
	ebiten.SetWindowSize(cfg.Width*cfg.Zoom, cfg.Height*cfg.Zoom)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
