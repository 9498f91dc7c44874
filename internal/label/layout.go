package label

import (
	"math"

	"github.com/alexisbeaulieu97/materialfield/internal/colors"
	"github.com/alexisbeaulieu97/materialfield/internal/model"
)

// Alignment is the horizontal anchoring of the floating label.
type Alignment int

const (
	AlignStart Alignment = iota
	AlignEnd
	AlignCenter
)

func (a Alignment) String() string {
	switch a {
	case AlignEnd:
		return "end"
	case AlignCenter:
		return "center"
	default:
		return "start"
	}
}

// LayoutInput is everything the per-frame label placement depends on.
type LayoutInput struct {
	Fraction      float64
	FocusFraction float64
	AlwaysShown   bool

	StartX, EndX int
	Width        int
	InnerPadding model.Insets
	ScrollY      int

	LabelWidth int
	TextSize   int
	Padding    int

	Gravity model.Gravity
	RTL     bool

	// UnfocusedColor is the label color at zero focus, PrimaryColor at full focus.
	UnfocusedColor colors.Color
	PrimaryColor   colors.Color
	// CustomColor scales the opacity by UnfocusedColor's own alpha. The derived
	// hint tint only contributes its RGB.
	CustomColor bool
}

// Layout is where and how the label is drawn this frame.
type Layout struct {
	Align    Alignment `yaml:"align" json:"align"`
	X        int       `yaml:"x" json:"x"`
	Baseline int       `yaml:"baseline" json:"baseline"`
	Alpha    uint8     `yaml:"alpha" json:"alpha"`
	Color    colors.Color
}

// AlignmentFor derives the label alignment from gravity and text direction.
func AlignmentFor(gravity model.Gravity, rtl bool) Alignment {
	switch {
	case gravity == model.GravityEnd || rtl:
		return AlignEnd
	case gravity == model.GravityStart:
		return AlignStart
	default:
		return AlignCenter
	}
}

// ComputeLayout places the label. It is recomputed every frame and never cached.
func ComputeLayout(in LayoutInput) Layout {
	shown := in.Fraction
	if in.AlwaysShown {
		shown = 1
	}

	align := AlignmentFor(in.Gravity, in.RTL)
	var x int
	switch align {
	case AlignEnd:
		x = in.EndX - in.LabelWidth
	case AlignStart:
		x = in.StartX
	default:
		inner := in.Width - in.InnerPadding.Left - in.InnerPadding.Right
		x = in.StartX + in.InnerPadding.Left + (inner-in.LabelWidth)/2
	}

	baseline := in.InnerPadding.Top + in.TextSize + in.Padding - int(float64(in.Padding)*shown) + in.ScrollY

	color := colors.Lerp(in.UnfocusedColor, in.PrimaryColor, in.FocusFraction)
	opacity := shown * (0.74*in.FocusFraction + 0.26)
	if in.CustomColor {
		opacity *= float64(in.UnfocusedColor.A()) / 255
	}
	alpha := uint8(math.Round(math.Max(0, math.Min(1, opacity)) * 255))

	return Layout{
		Align:    align,
		X:        x,
		Baseline: baseline,
		Alpha:    alpha,
		Color:    color.WithAlpha(alpha),
	}
}
