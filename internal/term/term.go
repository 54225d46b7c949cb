package term

import (
	"context"
	"errors"
	"log"
	"time"

	"conway-ca/internal/render"
	"conway-ca/internal/sched"
	"conway-ca/internal/session"

	"github.com/gdamore/tcell/v2"
)

var runeControls = map[rune]session.Control{
	'r': session.ControlShake,
	' ': session.ControlShake,
	'+': session.ControlFaster,
	'=': session.ControlFaster,
	'-': session.ControlSlower,
	'w': session.ControlToggleWrap,
	']': session.ControlGrow,
	'[': session.ControlShrink,
}

// Run drives sess on scr until ctx is done or the user quits with q or Esc.
// The scheduler and every draw run on one goroutine; terminal events are
// read on another and handed over as commands.
func Run(ctx context.Context, scr tcell.Screen, sess *session.Session, scale int, logger *log.Logger) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	canvas := Canvas{Screen: scr, Scale: max(scale, 1)}
	// Resize fires the first tick itself when the terminal differs from the
	// configured viewport.
	w, h := viewport(canvas)
	if vw, vh := sess.Viewport(); vw == w && vh == h {
		sess.Start(time.Now())
	} else if err := sess.Resize(w, h, time.Now()); err != nil {
		return err
	}

	loop := sched.NewLoop(sess.Scheduler(), func() {
		cfg := sess.Settings()
		scr.Clear()
		render.Draw(canvas, sess.Frame(), int(cfg.CellSize), cfg.FG, cfg.BG)
		scr.Show()
	})

	go func() {
		for {
			ev := scr.PollEvent()
			if ev == nil {
				return
			}
			cmd, quit := handleEvent(ev, canvas, sess, logger)
			if quit {
				cancel()
				return
			}
			if cmd == nil {
				continue
			}
			if err := loop.Do(ctx, cmd); err != nil {
				return
			}
		}
	}()

	err := loop.Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func viewport(c Canvas) (int, int) {
	cols, rows := c.Screen.Size()
	return c.Viewport(cols, rows)
}

// handleEvent translates a terminal event into a command for the loop.
func handleEvent(ev tcell.Event, canvas Canvas, sess *session.Session, logger *log.Logger) (cmd func(time.Time), quit bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
			return nil, true
		}
		ctrl, ok := runeControls[ev.Rune()]
		if !ok {
			return nil, false
		}
		return func(now time.Time) {
			if err := sess.Do(ctrl, now); err != nil && logger != nil {
				logger.Printf("control %d: %v", ctrl, err)
			}
		}, false
	case *tcell.EventResize:
		return func(now time.Time) {
			canvas.Screen.Sync()
			w, h := viewport(canvas)
			if err := sess.Resize(w, h, now); err != nil && logger != nil {
				logger.Printf("resize: %v", err)
			}
		}, false
	}
	return nil, false
}
