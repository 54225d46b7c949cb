// Package settings holds the persisted watchface settings and the inbound
// configuration message that edits them.
package settings

import (
	"errors"
	"fmt"
	"image/color"
)

// Key is the store key the settings blob lives under.
const Key uint32 = 1

// BlobSize is the encoded length of Settings.
const BlobSize = 11

// ErrMalformed reports a settings blob that cannot be decoded.
var ErrMalformed = errors.New("settings: malformed blob")

// Settings is the persisted configuration record. Colors are opaque to the
// simulation and only consumed by renderers.
type Settings struct {
	FPS       uint8
	CellSize  uint8
	WrapEdges bool
	FG        color.RGBA
	BG        color.RGBA
}

// Default returns the settings used when nothing valid is stored.
func Default() Settings {
	return Settings{
		FPS:       12,
		CellSize:  10,
		WrapEdges: true,
		FG:        color.RGBA{A: 0xFF},
		BG:        color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
	}
}

// MarshalBinary encodes the record as fps, cell size, wrap flag, then the
// foreground and background colors as RGBA bytes.
func (s Settings) MarshalBinary() ([]byte, error) {
	b := make([]byte, BlobSize)
	b[0] = s.FPS
	b[1] = s.CellSize
	if s.WrapEdges {
		b[2] = 1
	}
	putColor(b[3:7], s.FG)
	putColor(b[7:11], s.BG)
	return b, nil
}

// UnmarshalBinary decodes a blob produced by MarshalBinary. On error s is
// left untouched.
func (s *Settings) UnmarshalBinary(b []byte) error {
	if len(b) != BlobSize {
		return fmt.Errorf("%w: length %d", ErrMalformed, len(b))
	}
	if b[0] == 0 || b[1] == 0 {
		return fmt.Errorf("%w: zero fps or cell size", ErrMalformed)
	}
	if b[2] > 1 {
		return fmt.Errorf("%w: wrap flag %d", ErrMalformed, b[2])
	}
	*s = Settings{
		FPS:       b[0],
		CellSize:  b[1],
		WrapEdges: b[2] == 1,
		FG:        getColor(b[3:7]),
		BG:        getColor(b[7:11]),
	}
	return nil
}

// Load reads the settings from st, silently falling back to defaults when
// the blob is absent or malformed.
func Load(st Store) Settings {
	s := Default()
	if st == nil {
		return s
	}
	b, err := st.Read(Key)
	if err != nil {
		return s
	}
	_ = s.UnmarshalBinary(b)
	return s
}

// Save writes the settings to st.
func Save(st Store, s Settings) error {
	b, _ := s.MarshalBinary()
	if err := st.Write(Key, b); err != nil {
		return fmt.Errorf("settings: save: %w", err)
	}
	return nil
}

// FromHex converts a packed 0xRRGGBB value into an opaque color.
func FromHex(v int) color.RGBA {
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xFF}
}

// Hex packs c as 0xRRGGBB, dropping alpha.
func Hex(c color.RGBA) int {
	return int(c.R)<<16 | int(c.G)<<8 | int(c.B)
}

func putColor(b []byte, c color.RGBA) {
	b[0], b[1], b[2], b[3] = c.R, c.G, c.B, c.A
}

func getColor(b []byte) color.RGBA {
	return color.RGBA{R: b[0], G: b[1], B: b[2], A: b[3]}
}
