package model

import (
	"time"

	"github.com/alexisbeaulieu97/materialfield/internal/colors"
)

// LabelMode selects the floating label behaviour.
type LabelMode int

const (
	// LabelNone disables the floating label.
	LabelNone LabelMode = iota
	// LabelNormal floats the label without focus highlighting.
	LabelNormal
	// LabelHighlight floats the label and tints it with the primary color while focused.
	LabelHighlight
)

// Enabled reports whether the floating label is drawn at all.
func (m LabelMode) Enabled() bool {
	return m == LabelNormal || m == LabelHighlight
}

// Highlight reports whether focus changes tint the label.
func (m LabelMode) Highlight() bool {
	return m == LabelHighlight
}

func (m LabelMode) String() string {
	switch m {
	case LabelNormal:
		return "normal"
	case LabelHighlight:
		return "highlight"
	default:
		return "none"
	}
}

// Gravity is the horizontal gravity of the field's text.
type Gravity int

const (
	GravityStart Gravity = iota
	GravityEnd
	GravityCenter
)

// Easing names a tween curve.
type Easing string

const (
	EasingAccelerateDecelerate Easing = "accelerate-decelerate"
	EasingLinear               Easing = "linear"
	EasingSpring               Easing = "spring"
)

// Insets is a set of edge sizes in host units.
type Insets struct {
	Top    int `yaml:"top" json:"top"`
	Bottom int `yaml:"bottom" json:"bottom"`
	Left   int `yaml:"left" json:"left"`
	Right  int `yaml:"right" json:"right"`
}

// FieldConfig is the resolved, immutable configuration of one decorated field.
// It is replaced wholesale whenever any value changes.
type FieldConfig struct {
	BaseColor    colors.Color
	PrimaryColor colors.Color
	ErrorColor   colors.Color

	// Optional colors; nil derives a tint from BaseColor.
	HelperTextColor        *colors.Color
	FloatingLabelTextColor *colors.Color
	UnderlineColor         *colors.Color

	FloatingLabel            LabelMode
	FloatingLabelText        string
	FloatingLabelTextSize    int
	FloatingLabelPadding     int
	FloatingLabelAnimating   bool
	FloatingLabelAlwaysShown bool

	LabelDuration       time.Duration
	FocusDuration       time.Duration
	BottomLinesDuration time.Duration
	Easing              Easing

	BottomTextSize     int
	BottomSpacing      int
	BottomEllipsisSize int
	BottomTextInset    int

	MinCharacters         int
	MaxCharacters         int
	SingleLineEllipsis    bool
	HideUnderline         bool
	HelperTextAlwaysShown bool
	MinBottomTextLines    int

	IconSize        int
	IconOuterWidth  int
	IconOuterHeight int
	IconPadding     int
	ShowClearButton bool

	AutoValidate                    bool
	ValidateOnFocusLost             bool
	CheckCharactersCountAtBeginning bool

	RTL          bool
	Gravity      Gravity
	InnerPadding Insets
}

// DefaultFieldConfig returns the stock configuration in density independent units.
func DefaultFieldConfig() FieldConfig {
	const spacing = 8
	return FieldConfig{
		BaseColor:    colors.Black,
		PrimaryColor: colors.Black,
		ErrorColor:   colors.DefaultError,

		FloatingLabel:          LabelNone,
		FloatingLabelTextSize:  12,
		FloatingLabelPadding:   spacing,
		FloatingLabelAnimating: true,

		LabelDuration:       300 * time.Millisecond,
		FocusDuration:       300 * time.Millisecond,
		BottomLinesDuration: 300 * time.Millisecond,
		Easing:              EasingAccelerateDecelerate,

		BottomTextSize:     12,
		BottomSpacing:      spacing,
		BottomEllipsisSize: 4,
		BottomTextInset:    8,

		IconSize:        32,
		IconOuterWidth:  40,
		IconOuterHeight: 34,
		IconPadding:     16,

		CheckCharactersCountAtBeginning: true,
		Gravity:                         GravityStart,
	}
}

// HasCharactersCounter reports whether a min or max character limit is set.
func (c FieldConfig) HasCharactersCounter() bool {
	return c.MinCharacters > 0 || c.MaxCharacters > 0
}

// EffectiveLabelDuration is zero when the label is configured not to animate.
func (c FieldConfig) EffectiveLabelDuration() time.Duration {
	if !c.FloatingLabelAnimating {
		return 0
	}
	return c.LabelDuration
}

// HintColor is the translucent base tint used for hints, helper text and the counter.
func (c FieldConfig) HintColor() colors.Color {
	return c.BaseColor.WithAlpha(colors.AlphaHint)
}

// TextColor is the color of the editable text itself.
func (c FieldConfig) TextColor(enabled bool) colors.Color {
	if !enabled {
		return c.HintColor()
	}
	return c.BaseColor.WithAlpha(colors.AlphaText)
}

// LabelColor is the unfocused floating label color.
func (c FieldConfig) LabelColor() colors.Color {
	if c.FloatingLabelTextColor != nil {
		return *c.FloatingLabelTextColor
	}
	return c.HintColor()
}

// HelperColor is the color of the helper text.
func (c FieldConfig) HelperColor() colors.Color {
	if c.HelperTextColor != nil {
		return *c.HelperTextColor
	}
	return c.HintColor()
}

// BottomEllipsisWidth is the width reserved by the three dot indicator:
// dots sit on a five dot span followed by one dot of gap.
func (c FieldConfig) BottomEllipsisWidth() int {
	if !c.SingleLineEllipsis {
		return 0
	}
	return c.BottomEllipsisSize*5 + c.BottomEllipsisSize
}
