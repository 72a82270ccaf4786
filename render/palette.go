// Package render turns engine snapshots into pixels or text.
package render

import (
	"image/color"

	"github.com/plus3/blockfall/tetris"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var palette = [...]color.RGBA{
	tetris.Empty:  {0, 0, 0, 0},
	tetris.ColorI: {0x00, 0xF0, 0xF0, 0xFF}, // cyan
	tetris.ColorS: {0x00, 0xFF, 0x00, 0xFF}, // green
	tetris.ColorZ: {0xFF, 0x00, 0x00, 0xFF}, // red
	tetris.ColorO: {0xFF, 0xFF, 0x00, 0xFF}, // yellow
	tetris.ColorL: {0x00, 0x00, 0xFF, 0xFF}, // blue
	tetris.ColorJ: {0xFF, 0x00, 0xFF, 0xFF}, // magenta
	tetris.ColorT: {0xFF, 0xA5, 0x00, 0xFF}, // orange
}

// Palette returns the display color of a cell. Empty and unknown cells are
// fully transparent.
func Palette(c tetris.Cell) color.RGBA {
	if int(c) >= len(palette) {
		return color.RGBA{}
	}
	return palette[c]
}

// FormatScore groups thousands the way the HUD and reports print them.
func FormatScore(score int) string {
	return scorePrinter.Sprintf("%d", score)
}

var scorePrinter = message.NewPrinter(language.English)
