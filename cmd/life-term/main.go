package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"
	"time"

	"conway-ca/internal/app"
	"conway-ca/internal/sched"
	"conway-ca/internal/session"
	"conway-ca/internal/settings"
	"conway-ca/internal/term"

	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	scale := flag.Int("px", 5, "viewport pixels per terminal cell")
	logFile := flag.String("log", "", "write logs to this file instead of discarding them")
	flag.Parse()

	policy, err := sched.ParseStablePolicy(cfg.Stable)
	if err != nil {
		log.Fatal(err)
	}

	// The screen owns stdout, so logs only go to a file.
	logger := log.New(io.Discard, "life: ", log.LstdFlags)
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			log.Fatalf("opening log: %v", err)
		}
		defer f.Close()
		logger.SetOutput(f)
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

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("creating screen: %v", err)
	}
	if err = screen.Init(); err != nil {
		log.Fatalf("initializing screen: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err = term.Run(ctx, screen, sess, *scale, logger)
	stop()
	screen.Fini()
	if err != nil {
		log.Fatal(err)
	}
}
