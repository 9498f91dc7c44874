// Package measure holds the text measurement capability the host supplies.
package measure

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Measurer measures rendered text for a given text size.
type Measurer interface {
	// LineHeight is the distance between the font's ascent and descent.
	LineHeight(textSize int) float64
	// TextWidth is the rendered width of a single line of text.
	TextWidth(text string, textSize int) int
	// LineCount is the number of lines text wraps to at the given width.
	LineCount(text string, textSize, width int) int
}

// Terminal measures text in terminal cells. Every text size renders one cell high.
type Terminal struct{}

func (Terminal) LineHeight(int) float64 { return 1 }

func (Terminal) TextWidth(text string, _ int) int {
	return ansi.StringWidth(text)
}

func (t Terminal) LineCount(text string, _ int, width int) int {
	return len(t.Wrap(text, width))
}

// Wrap breaks text at word boundaries, hard wrapping words wider than width.
func (Terminal) Wrap(text string, width int) []string {
	if width <= 0 || text == "" {
		return nil
	}
	return strings.Split(ansi.Wrap(text, width, ""), "\n")
}

// Monospace measures with a fixed advance per cell and a fixed line height,
// independent of text size. It is the deterministic measurer used off screen.
type Monospace struct {
	Advance int
	Height  float64
}

func (m Monospace) LineHeight(int) float64 { return m.Height }

func (m Monospace) TextWidth(text string, _ int) int {
	return ansi.StringWidth(text) * m.advance()
}

// LineCount wraps at whole cells, and at one cell when width is narrower
// than a single advance.
func (m Monospace) LineCount(text string, _ int, width int) int {
	if width <= 0 {
		return 0
	}
	return Terminal{}.LineCount(text, 0, max(1, width/m.advance()))
}

func (m Monospace) advance() int {
	if m.Advance <= 0 {
		return 1
	}
	return m.Advance
}
