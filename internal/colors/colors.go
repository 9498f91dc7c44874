// Package colors models packed ARGB colors the way the host platform hands them in.
package colors

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a packed 0xAARRGGBB value.
type Color uint32

const (
	Black       Color = 0xff000000
	White       Color = 0xffffffff
	Transparent Color = 0x00000000

	// DefaultError is the stock error red.
	DefaultError Color = 0xffe7492e
)

// Alpha channel constants applied to the base color for derived tints.
const (
	AlphaText          uint8 = 0xdf
	AlphaHint          uint8 = 0x44
	AlphaUnderline     uint8 = 0x1e
	AlphaIconLight     uint8 = 0xff
	AlphaIconDark      uint8 = 0x8a
	AlphaDisabledLight uint8 = 0x4c
	AlphaDisabledDark  uint8 = 0x42
)

// ARGB packs the four channels into a Color.
func ARGB(a, r, g, b uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

func (c Color) A() uint8 { return uint8(c >> 24) }
func (c Color) R() uint8 { return uint8(c >> 16) }
func (c Color) G() uint8 { return uint8(c >> 8) }
func (c Color) B() uint8 { return uint8(c) }

// WithAlpha keeps the RGB channels and replaces the alpha channel.
func (c Color) WithAlpha(a uint8) Color {
	return c&0x00ffffff | Color(uint32(a)<<24)
}

// IsLight reports whether the perceived brightness of the color is above the midpoint.
func (c Color) IsLight() bool {
	r, g, b := float64(c.R()), float64(c.G()), float64(c.B())
	return math.Sqrt(r*r*.241+g*g*.691+b*b*.068) > 130
}

// NRGBA converts to a non-premultiplied image color.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R(), G: c.G(), B: c.B(), A: c.A()}
}

// Hex formats the color as #rrggbb, or #aarrggbb when not fully opaque.
func (c Color) Hex() string {
	if c.A() == 0xff {
		return fmt.Sprintf("#%06x", uint32(c)&0x00ffffff)
	}
	return fmt.Sprintf("#%08x", uint32(c))
}

func (c Color) String() string {
	return c.Hex()
}

// MarshalText writes the Hex form so colors read naturally in YAML and TOML.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

// UnmarshalText accepts anything Parse does.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// FromColor packs any image color.
func FromColor(col color.Color) Color {
	n := color.NRGBAModel.Convert(col).(color.NRGBA)
	return ARGB(n.A, n.R, n.G, n.B)
}

// Lerp interpolates each channel between from and to, alpha included.
// The fraction is clamped to [0, 1].
func Lerp(from, to Color, fraction float64) Color {
	if fraction <= 0 {
		return from
	}
	if fraction >= 1 {
		return to
	}
	a := colorful.Color{R: float64(from.R()) / 255, G: float64(from.G()) / 255, B: float64(from.B()) / 255}
	b := colorful.Color{R: float64(to.R()) / 255, G: float64(to.G()) / 255, B: float64(to.B()) / 255}
	mixed := a.BlendRgb(b, fraction)
	alpha := float64(from.A()) + (float64(to.A())-float64(from.A()))*fraction
	return ARGB(uint8(math.Round(alpha)), channel(mixed.R), channel(mixed.G), channel(mixed.B))
}

// Over composites c over an opaque background and returns the opaque result.
func (c Color) Over(background Color) Color {
	return Lerp(background.WithAlpha(0xff), c.WithAlpha(0xff), float64(c.A())/255)
}

// Parse reads #rgb, #rrggbb or #aarrggbb.
func Parse(value string) (Color, error) {
	s := strings.TrimSpace(value)
	if !strings.HasPrefix(s, "#") {
		return 0, fmt.Errorf("color %q must start with #", value)
	}
	s = s[1:]
	switch len(s) {
	case 3, 6:
		parsed, err := colorful.Hex("#" + s)
		if err != nil {
			return 0, fmt.Errorf("parse color %q: %w", value, err)
		}
		r, g, b := parsed.RGB255()
		return ARGB(0xff, r, g, b), nil
	case 8:
		var packed uint32
		if _, err := fmt.Sscanf(s, "%08x", &packed); err != nil {
			return 0, fmt.Errorf("parse color %q: %w", value, err)
		}
		return Color(packed), nil
	default:
		return 0, fmt.Errorf("color %q has unsupported length", value)
	}
}

func channel(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
}
