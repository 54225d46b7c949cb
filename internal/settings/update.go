package settings

import (
	"encoding/json"
	"fmt"
)

// Update is an inbound configuration message. Every field is optional;
// absent fields leave the current value alone.
type Update struct {
	EdgeWrap *int `json:"EdgeWrap,omitempty"`
	FPS      *int `json:"FPS,omitempty"`
	CellSize *int `json:"CellSize,omitempty"`
	FGColor  *int `json:"FGColor,omitempty"`
	BGColor  *int `json:"BGColor,omitempty"`
}

// Int returns a pointer to v, for building updates in code.
func Int(v int) *int { return &v }

// ParseUpdate decodes a JSON message. Unknown keys are ignored.
func ParseUpdate(data []byte) (Update, error) {
	var u Update
	if err := json.Unmarshal(data, &u); err != nil {
		return Update{}, fmt.Errorf("settings: parse update: %w", err)
	}
	return u, nil
}

// Empty reports whether the update carries no fields.
func (u Update) Empty() bool {
	return u.EdgeWrap == nil && u.FPS == nil && u.CellSize == nil && u.FGColor == nil && u.BGColor == nil
}

// Apply overwrites the fields present in u and reports whether the grid has
// to be rebuilt, which is the case exactly when CellSize is present. FPS and
// CellSize are clamped into 1..255.
func (u Update) Apply(s *Settings) (reset bool) {
	if u.EdgeWrap != nil {
		s.WrapEdges = *u.EdgeWrap == 1
	}
	if u.FPS != nil {
		s.FPS = clampByte(*u.FPS)
	}
	if u.CellSize != nil {
		s.CellSize = clampByte(*u.CellSize)
		reset = true
	}
	if u.FGColor != nil {
		s.FG = FromHex(*u.FGColor)
	}
	if u.BGColor != nil {
		s.BG = FromHex(*u.BGColor)
	}
	return reset
}

func clampByte(v int) uint8 {
	return uint8(min(max(v, 1), 255))
}
