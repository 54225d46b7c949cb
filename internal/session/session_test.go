package session

import (
	"testing"
	"time"

	"conway-ca/internal/core"
	"conway-ca/internal/life"
	"conway-ca/internal/settings"
)

var t0 = time.Unix(1700000000, 0)

func newSession(t *testing.T, st settings.Store) *Session {
	t.Helper()
	s, err := New(Options{Width: 144, Height: 168, Store: st, Seed: 3})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

func TestNewUsesDefaultsAndViewport(t *testing.T) {
	s := newSession(t, settings.NewMemStore())
	if got := s.Size(); got != (core.Size{W: 14, H: 16}) {
		t.Fatalf("size=%+v, expected 14x16", got)
	}
	if s.Settings() != settings.Default() {
		t.Fatalf("settings=%+v", s.Settings())
	}
	if f := s.Frame(); len(f.Bits) != core.PackedLen(16, 14) {
		t.Fatalf("frame has %d bytes, expected %d", len(f.Bits), core.PackedLen(16, 14))
	}
}

func TestNewUsesStoredSettings(t *testing.T) {
	st := settings.NewMemStore()
	cfg := settings.Default()
	cfg.CellSize = 4
	cfg.FPS = 25
	if err := settings.Save(st, cfg); err != nil {
		t.Fatal(err)
	}
	s := newSession(t, st)
	if got := s.Size(); got != (core.Size{W: 36, H: 42}) {
		t.Fatalf("size=%+v, expected 36x42", got)
	}
	if s.Scheduler().Interval() != 40*time.Millisecond {
		t.Fatalf("interval=%v, expected 40ms", s.Scheduler().Interval())
	}
}

func TestApplyFPSKeepsGrid(t *testing.T) {
	st := settings.NewMemStore()
	s := newSession(t, st)
	s.Start(t0)
	before := append([]byte(nil), s.Frame().Bits...)
	seed := s.Seed()

	if err := s.HandleMessage([]byte(`{"FPS": 50}`), t0); err != nil {
		t.Fatal(err)
	}
	if string(before) != string(s.Frame().Bits) || s.Seed() != seed {
		t.Fatal("FPS update must not reset the grid")
	}
	if s.Scheduler().Interval() != 20*time.Millisecond {
		t.Fatalf("interval=%v, expected 20ms", s.Scheduler().Interval())
	}
	if got := settings.Load(st); got.FPS != 50 {
		t.Fatalf("persisted FPS=%d, expected 50", got.FPS)
	}
}

func TestApplyCellSizeRebuilds(t *testing.T) {
	st := settings.NewMemStore()
	s := newSession(t, st)
	s.Start(t0)
	stale, _ := s.Scheduler().Pending()

	if err := s.Apply(settings.Update{CellSize: settings.Int(8)}, t0.Add(time.Millisecond)); err != nil {
		t.Fatal(err)
	}
	if got := s.Size(); got != (core.Size{W: 18, H: 21}) {
		t.Fatalf("size=%+v, expected 18x21", got)
	}
	if s.State() != life.Progressing || s.Frame().Generation != 1 {
		t.Fatalf("rebuild must fire one fresh step, state=%v gen=%d", s.State(), s.Frame().Generation)
	}
	if s.Scheduler().Fire(stale, t0.Add(time.Second)) {
		t.Fatal("tick armed for the old grid fired after the rebuild")
	}
	if got := settings.Load(st); got.CellSize != 8 {
		t.Fatalf("persisted cell size=%d, expected 8", got.CellSize)
	}
}

func TestApplyWrapTakesEffectWithoutReset(t *testing.T) {
	s := newSession(t, nil)
	s.Start(t0)
	seed := s.Seed()
	if err := s.Do(ControlToggleWrap, t0); err != nil {
		t.Fatal(err)
	}
	if s.Settings().WrapEdges {
		t.Fatal("toggle should disable wrapping")
	}
	if s.sim.Wrap() {
		t.Fatal("simulation did not pick up the edge policy")
	}
	if s.Seed() != seed {
		t.Fatal("wrap change must not reset the grid")
	}
}

func TestMalformedMessageIgnored(t *testing.T) {
	st := settings.NewMemStore()
	s := newSession(t, st)
	if err := s.HandleMessage([]byte(`not json`), t0); err == nil {
		t.Fatal("expected parse error")
	}
	if s.Settings() != settings.Default() {
		t.Fatal("malformed message changed settings")
	}
	if _, err := st.Read(settings.Key); err == nil {
		t.Fatal("malformed message must not persist anything")
	}
}

func TestShakeReseeds(t *testing.T) {
	s := newSession(t, nil)
	s.Start(t0)
	seed := s.Seed()
	s.Shake(t0.Add(time.Second))
	if s.Seed() == seed {
		t.Fatal("shake should pick a new seed")
	}
	if s.State() != life.Progressing || s.Frame().Generation != 1 {
		t.Fatalf("shake must restart from a fresh generation, state=%v gen=%d", s.State(), s.Frame().Generation)
	}
}

func TestResizeRebuilds(t *testing.T) {
	s := newSession(t, nil)
	s.Start(t0)
	if err := s.Resize(200, 100, t0); err != nil {
		t.Fatal(err)
	}
	if got := s.Size(); got != (core.Size{W: 20, H: 10}) {
		t.Fatalf("size=%+v, expected 20x10", got)
	}
	w, h := s.Viewport()
	if w != 200 || h != 100 {
		t.Fatalf("viewport=%dx%d", w, h)
	}
}

func TestControlsAdjustSettings(t *testing.T) {
	s := newSession(t, nil)
	s.Start(t0)
	_ = s.Do(ControlFaster, t0)
	if s.Settings().FPS != 13 {
		t.Fatalf("FPS=%d, expected 13", s.Settings().FPS)
	}
	_ = s.Do(ControlSlower, t0)
	_ = s.Do(ControlSlower, t0)
	if s.Settings().FPS != 11 {
		t.Fatalf("FPS=%d, expected 11", s.Settings().FPS)
	}
	_ = s.Do(ControlShrink, t0)
	if s.Settings().CellSize != 9 || s.Size() != (core.Size{W: 16, H: 18}) {
		t.Fatalf("shrink: cell=%d size=%+v", s.Settings().CellSize, s.Size())
	}
	_ = s.Do(ControlGrow, t0)
	if s.Settings().CellSize != 10 {
		t.Fatalf("grow: cell=%d", s.Settings().CellSize)
	}
}

func TestParameters(t *testing.T) {
	s := newSession(t, nil)
	s.Start(t0)
	snap := s.Parameters()
	if p, ok := snap.Lookup("fps"); !ok || p.Value != "12" {
		t.Fatalf("fps parameter=%+v ok=%v", p, ok)
	}
	if p, ok := snap.Lookup("state"); !ok || p.Value != "progressing" {
		t.Fatalf("state parameter=%+v ok=%v", p, ok)
	}
	if _, ok := snap.Lookup("missing"); ok {
		t.Fatal("unexpected parameter")
	}
}
