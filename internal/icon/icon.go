// Package icon derives the per-state tinted variants of a field icon.
package icon

import (
	"image"
	_ "image/png" // icons ship as PNG
	"os"

	"golang.org/x/image/draw"

	"github.com/alexisbeaulieu97/materialfield/internal/colors"
	fielderrors "github.com/alexisbeaulieu97/materialfield/pkg/errors"
)

// State selects one tinted variant.
type State int

const (
	Normal State = iota
	Focused
	Disabled
	Invalid
)

func (s State) String() string {
	switch s {
	case Focused:
		return "focused"
	case Disabled:
		return "disabled"
	case Invalid:
		return "invalid"
	default:
		return "normal"
	}
}

// MarshalText writes the state name.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// StateFor picks the variant for the field's interaction state. An invalid
// field wins over a disabled one, which wins over focus.
func StateFor(enabled, focused, valid bool) State {
	switch {
	case !valid:
		return Invalid
	case !enabled:
		return Disabled
	case focused:
		return Focused
	default:
		return Normal
	}
}

// Source is a decoded icon. Its pointer is its identity: two sources built
// from the same pixels are still different icons to the cache.
type Source struct {
	img image.Image
}

// NewSource wraps img. A nil image yields a nil source.
func NewSource(img image.Image) *Source {
	if img == nil {
		return nil
	}
	return &Source{img: img}
}

// Load decodes the icon file at path. slot names the icon in errors.
func Load(slot, path string) (*Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fielderrors.NewIconError(slot, path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fielderrors.NewIconError(slot, path, err)
	}
	return NewSource(img), nil
}

// Image is the undecorated source image.
func (s *Source) Image() image.Image {
	if s == nil {
		return nil
	}
	return s.img
}

// Palette holds the colors the variants are tinted from.
type Palette struct {
	Base    colors.Color
	Primary colors.Color
	Error   colors.Color
}

// Tint is the color an icon in state s is painted with. Normal and disabled
// icons use the base color, more opaque on a light base.
func (p Palette) Tint(s State) colors.Color {
	light := p.Base.IsLight()
	switch s {
	case Focused:
		return p.Primary
	case Invalid:
		return p.Error
	case Disabled:
		if light {
			return p.Base.WithAlpha(colors.AlphaDisabledLight)
		}
		return p.Base.WithAlpha(colors.AlphaDisabledDark)
	default:
		if light {
			return p.Base.WithAlpha(colors.AlphaIconLight)
		}
		return p.Base.WithAlpha(colors.AlphaIconDark)
	}
}

// VariantSet is the four tinted renditions of one source.
type VariantSet struct {
	Size     int
	variants [4]*image.RGBA
}

// Get returns the variant for s.
func (v *VariantSet) Get(s State) *image.RGBA {
	if v == nil || s < Normal || s > Invalid {
		return nil
	}
	return v.variants[s]
}

// Scale shrinks img with nearest neighbour sampling so its longer side is
// size, keeping the aspect ratio. Images that already fit are returned as is.
func Scale(img image.Image, size int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	longest := max(w, h)
	if size <= 0 || longest <= size {
		return img
	}
	ratio := float64(size) / float64(longest)
	dst := image.NewRGBA(image.Rect(0, 0, max(1, int(float64(w)*ratio)), max(1, int(float64(h)*ratio))))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// Generate scales src and paints each variant with the palette tint through
// the icon's alpha mask.
func Generate(src *Source, size int, p Palette) *VariantSet {
	if src == nil {
		return nil
	}
	scaled := Scale(src.img, size)
	set := &VariantSet{Size: size}
	for s := Normal; s <= Invalid; s++ {
		set.variants[s] = tint(scaled, p.Tint(s))
	}
	return set
}

func tint(mask image.Image, c colors.Color) *image.RGBA {
	b := mask.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.DrawMask(dst, dst.Bounds(), image.NewUniform(c.NRGBA()), image.Point{}, mask, b.Min, draw.Src)
	return dst
}
