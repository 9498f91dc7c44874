package tui

import (
	"image"

	"github.com/alexisbeaulieu97/materialfield/internal/colors"
	"github.com/alexisbeaulieu97/materialfield/internal/model"
)

// CellConfig rescales the geometry of cfg to terminal cells: the label and
// each bottom line take one row, icons take two columns plus one of gap.
// Icon images keep their pixel size.
func CellConfig(cfg model.FieldConfig) model.FieldConfig {
	cfg.FloatingLabelTextSize = 1
	cfg.FloatingLabelPadding = 0
	cfg.BottomTextSize = 1
	cfg.BottomSpacing = 0
	cfg.BottomEllipsisSize = 0
	cfg.BottomTextInset = 1
	cfg.IconOuterWidth = 2
	cfg.IconOuterHeight = 1
	cfg.IconPadding = 1
	cfg.InnerPadding = model.Insets{}
	return cfg
}

// averageColor is the alpha weighted mean of the visible pixels, used to
// color the one-cell glyph that stands in for an icon.
func averageColor(img *image.RGBA) colors.Color {
	if img == nil {
		return colors.Transparent
	}
	var r, g, b, a uint64
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			px := img.RGBAAt(x, y)
			r += uint64(px.R)
			g += uint64(px.G)
			b += uint64(px.B)
			a += uint64(px.A)
		}
	}
	if a == 0 {
		return colors.Transparent
	}
	// Pixels are premultiplied, so dividing by the alpha sum un-premultiplies.
	n := uint64(bounds.Dx() * bounds.Dy())
	return colors.ARGB(uint8(a/n), uint8(r*255/a), uint8(g*255/a), uint8(b*255/a))
}
