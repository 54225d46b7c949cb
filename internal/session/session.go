// Package session owns the running simulation: viewport, settings, the
// simulation context and its scheduler. It applies configuration updates
// and reset gestures and persists settings after each update.
//
// Session is not safe for concurrent use. Front ends call it from the
// goroutine that drives the scheduler.
package session

import (
	"fmt"
	"log"
	"strconv"
	"time"

	"conway-ca/internal/core"
	"conway-ca/internal/life"
	"conway-ca/internal/sched"
	"conway-ca/internal/settings"
)

// Options configures a Session.
type Options struct {
	Width, Height int // viewport in pixels
	Store         settings.Store
	Policy        sched.StablePolicy
	Seed          int64
	Logger        *log.Logger
}

// Session is the runtime owner of the simulation context.
type Session struct {
	width, height int
	store         settings.Store
	cfg           settings.Settings
	sim           *life.Sim
	sched         *sched.Scheduler
	seeds         *core.RNG
	seed          int64
	logger        *log.Logger
}

// New loads settings, builds the grid for the viewport and seeds it. The
// scheduler is idle until Start.
func New(opts Options) (*Session, error) {
	s := &Session{
		width:  opts.Width,
		height: opts.Height,
		store:  opts.Store,
		cfg:    settings.Load(opts.Store),
		seeds:  core.NewRNG(opts.Seed),
		seed:   opts.Seed,
		logger: opts.Logger,
	}
	sim, err := s.newSim()
	if err != nil {
		return nil, err
	}
	sim.Reset(s.seed)
	sc, err := sched.New(sim, int(s.cfg.FPS), sched.WithStablePolicy(opts.Policy), sched.WithLogger(opts.Logger))
	if err != nil {
		return nil, err
	}
	s.sim = sim
	s.sched = sc
	return s, nil
}

func (s *Session) newSim() (*life.Sim, error) {
	size := core.Dims(s.width, s.height, int(s.cfg.CellSize))
	sim, err := life.New(size.H, size.W, s.cfg.WrapEdges)
	if err != nil {
		return nil, fmt.Errorf("session: allocate %dx%d grid: %w", size.W, size.H, err)
	}
	return sim, nil
}

// Start fires the first tick.
func (s *Session) Start(now time.Time) { s.sched.Start(now) }

// Poll fires the pending tick if due and reports whether to redraw.
func (s *Session) Poll(now time.Time) bool { return s.sched.Poll(now) }

// Scheduler exposes the scheduler, e.g. to run it in a sched.Loop.
func (s *Session) Scheduler() *sched.Scheduler { return s.sched }

// Settings returns the active settings.
func (s *Session) Settings() settings.Settings { return s.cfg }

// Viewport returns the viewport size in pixels.
func (s *Session) Viewport() (int, int) { return s.width, s.height }

// Size returns the grid size in cells.
func (s *Session) Size() core.Size { return s.sim.Size() }

// State reports the simulation state.
func (s *Session) State() life.State { return s.sim.State() }

// Frame returns the generation to draw. It stays valid until the next tick.
func (s *Session) Frame() core.Frame { return s.sim.Frame() }

// Seed reports the seed of the current run.
func (s *Session) Seed() int64 { return s.seed }

// Shake re-randomizes the grid with a new seed.
func (s *Session) Shake(now time.Time) {
	s.seed = s.seeds.Int64()
	s.sched.Reset(s.seed, now)
}

// Resize changes the viewport and rebuilds the grid.
func (s *Session) Resize(width, height int, now time.Time) error {
	if width == s.width && height == s.height {
		return nil
	}
	s.width, s.height = width, height
	return s.rebuild(now)
}

// rebuild drops the current grid, allocates one sized for the current
// viewport and cell size, and hands it to the scheduler.
func (s *Session) rebuild(now time.Time) error {
	old := s.sim
	s.sim = nil
	sim, err := s.newSim()
	if err != nil {
		s.sim = old
		return err
	}
	s.seed = s.seeds.Int64()
	sim.Reset(s.seed)
	s.sim = sim
	s.sched.Replace(sim, now)
	size := sim.Size()
	s.logf("grid %dx%d cell=%d seed=%d", size.W, size.H, s.cfg.CellSize, s.seed)
	return nil
}

// Apply merges an update into the settings. Only a CellSize field rebuilds
// the grid; FPS and edge policy take effect from the next tick. The result
// is persisted.
func (s *Session) Apply(u settings.Update, now time.Time) error {
	if u.Empty() {
		return nil
	}
	reset := u.Apply(&s.cfg)
	if err := s.sched.SetFPS(int(s.cfg.FPS)); err != nil {
		return err
	}
	s.sim.SetWrap(s.cfg.WrapEdges)
	if reset {
		if err := s.rebuild(now); err != nil {
			return err
		}
	}
	if s.store == nil {
		return nil
	}
	return settings.Save(s.store, s.cfg)
}

// HandleMessage parses a JSON configuration message and applies it.
func (s *Session) HandleMessage(data []byte, now time.Time) error {
	u, err := settings.ParseUpdate(data)
	if err != nil {
		return err
	}
	return s.Apply(u, now)
}

// Parameters reports the values shown on the HUD.
func (s *Session) Parameters() core.ParameterSnapshot {
	size := s.sim.Size()
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				intParam("cols", "Cols", size.W),
				intParam("rows", "Rows", size.H),
				intParam("cell", "Cell size", int(s.cfg.CellSize)),
				boolParam("wrap", "Wrap edges", s.cfg.WrapEdges),
			},
		},
		{
			Name: "Run",
			Params: []core.Parameter{
				intParam("fps", "FPS", int(s.cfg.FPS)),
				{Key: "state", Label: "State", Type: core.ParamTypeString, Value: s.sim.State().String()},
				intParam("gen", "Generation", s.sim.Generation()),
				{Key: "seed", Label: "Seed", Type: core.ParamTypeInt, Value: strconv.FormatInt(s.seed, 10)},
			},
		},
	}}
}

func intParam(key, label string, v int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(v)}
}

func boolParam(key, label string, v bool) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeBool, Value: strconv.FormatBool(v)}
}

func (s *Session) logf(format string, args ...any) {
	if s.logger != nil {
		s.logger.Printf(format, args...)
	}
}
