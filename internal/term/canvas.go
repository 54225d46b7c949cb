// Package term runs a session in a terminal using tcell.
package term

import (
	"image"
	"image/color"

	"github.com/gdamore/tcell/v2"
)

// Canvas maps viewport pixels onto terminal cells. Each terminal row covers
// Scale pixel rows and each pair of columns covers Scale pixel columns, which
// keeps cells roughly square on screen.
type Canvas struct {
	Screen tcell.Screen
	Scale  int
}

// Viewport returns the pixel size that fits a terminal of cols x rows.
func (c Canvas) Viewport(cols, rows int) (int, int) {
	return (cols / 2) * c.Scale, rows * c.Scale
}

// FillRect paints every terminal cell whose origin falls inside r.
func (c Canvas) FillRect(r image.Rectangle, col color.Color) {
	style := tcell.StyleDefault.Background(tcellColor(col))
	for cy := ceilDiv(r.Min.Y, c.Scale); cy*c.Scale < r.Max.Y; cy++ {
		for cx := ceilDiv(r.Min.X, c.Scale); cx*c.Scale < r.Max.X; cx++ {
			c.Screen.SetContent(cx*2, cy, ' ', nil, style)
			c.Screen.SetContent(cx*2+1, cy, ' ', nil, style)
		}
	}
}

func ceilDiv(a, b int) int { return (a + b - 1) / b }

func tcellColor(c color.Color) tcell.Color {
	r, g, b, _ := c.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}
