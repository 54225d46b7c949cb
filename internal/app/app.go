//go:build ebiten

package app

import (
	"image/color"
	"log"
	"time"

	"conway-ca/internal/render"
	"conway-ca/internal/session"
	"conway-ca/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var keyControls = map[ebiten.Key]session.Control{
	ebiten.KeyR:            session.ControlShake,
	ebiten.KeyEqual:        session.ControlFaster,
	ebiten.KeyMinus:        session.ControlSlower,
	ebiten.KeyW:            session.ControlToggleWrap,
	ebiten.KeyBracketRight: session.ControlGrow,
	ebiten.KeyBracketLeft:  session.ControlShrink,
}

// Game adapts a session to the ebiten.Game interface. Update polls the
// scheduler and Draw reads the generation it left behind; ebiten calls
// both from the same goroutine.
type Game struct {
	sess    *session.Session
	painter *render.GridPainter
	hud     *ui.HUD
	logger  *log.Logger
}

// New constructs a Game for the provided session and fires its first tick.
func New(sess *session.Session, logger *log.Logger) *Game {
	sess.Start(time.Now())
	return &Game{
		sess:    sess,
		painter: render.NewGridPainter(sess.Size()),
		hud:     ui.NewHUD(sess),
		logger:  logger,
	}
}

// Update handles input and advances the simulation when a tick is due.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.hud.Toggle()
	}
	now := time.Now()
	for key, ctrl := range keyControls {
		if inpututil.IsKeyJustPressed(key) {
			if err := g.sess.Do(ctrl, now); err != nil && g.logger != nil {
				g.logger.Printf("control %d: %v", ctrl, err)
			}
		}
	}
	g.sess.Poll(now)
	if g.painter.Size() != g.sess.Size() {
		g.painter.Dispose()
		g.painter = render.NewGridPainter(g.sess.Size())
	}
	return nil
}

// Draw renders the current generation.
func (g *Game) Draw(screen *ebiten.Image) {
	cfg := g.sess.Settings()
	screen.Fill(cfg.BG)
	g.painter.Blit(screen, g.sess.Frame(), cfg.FG, cfg.BG, int(cfg.CellSize))
	g.hud.Draw(screen, color.RGBA{R: 0xC0, A: 0xFF})
}

// Layout returns the logical screen size, which is the viewport.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.sess.Viewport()
}
