package session

import (
	"time"

	"conway-ca/internal/settings"
)

// Control is a front-end action, typically bound to a key.
type Control int

const (
	ControlShake Control = iota
	ControlFaster
	ControlSlower
	ControlToggleWrap
	ControlGrow
	ControlShrink
)

// Do performs c. Setting changes go through the same path as an inbound
// configuration message.
func (s *Session) Do(c Control, now time.Time) error {
	cfg := s.cfg
	switch c {
	case ControlShake:
		s.Shake(now)
		return nil
	case ControlFaster:
		return s.Apply(settings.Update{FPS: settings.Int(int(cfg.FPS) + 1)}, now)
	case ControlSlower:
		return s.Apply(settings.Update{FPS: settings.Int(int(cfg.FPS) - 1)}, now)
	case ControlToggleWrap:
		wrap := 1
		if cfg.WrapEdges {
			wrap = 0
		}
		return s.Apply(settings.Update{EdgeWrap: settings.Int(wrap)}, now)
	case ControlGrow:
		return s.Apply(settings.Update{CellSize: settings.Int(int(cfg.CellSize) + 1)}, now)
	case ControlShrink:
		return s.Apply(settings.Update{CellSize: settings.Int(int(cfg.CellSize) - 1)}, now)
	}
	return nil
}
