package engine

import (
	"image"

	"github.com/alexisbeaulieu97/materialfield/internal/bottom"
	"github.com/alexisbeaulieu97/materialfield/internal/colors"
	"github.com/alexisbeaulieu97/materialfield/internal/icon"
	"github.com/alexisbeaulieu97/materialfield/internal/label"
	"github.com/alexisbeaulieu97/materialfield/internal/metrics"
	"github.com/alexisbeaulieu97/materialfield/internal/model"
)

// Snapshot is everything a renderer needs to draw one frame of the field.
type Snapshot struct {
	Text        string           `yaml:"text"`
	TextColor   colors.Color     `yaml:"text_color"`
	Focused     bool             `yaml:"focused"`
	Enabled     bool             `yaml:"enabled"`
	Valid       bool             `yaml:"valid"`
	Interaction icon.State       `yaml:"interaction"`
	Extra       model.PaddingBox `yaml:"extra_padding"`
	Applied     model.PaddingBox `yaml:"applied_padding"`

	Label       LabelSnapshot       `yaml:"label"`
	Bottom      BottomSnapshot      `yaml:"bottom"`
	Counter     CounterSnapshot     `yaml:"counter"`
	Underline   UnderlineSnapshot   `yaml:"underline"`
	Ellipsis    EllipsisSnapshot    `yaml:"ellipsis"`
	ClearButton ClearButtonSnapshot `yaml:"clear_button"`

	Icons IconsSnapshot `yaml:"icons"`
}

// LabelSnapshot is the floating label for this frame.
type LabelSnapshot struct {
	Visible       bool         `yaml:"visible"`
	Text          string       `yaml:"text,omitempty"`
	State         string       `yaml:"state"`
	Fraction      float64      `yaml:"fraction"`
	FocusFraction float64      `yaml:"focus_fraction"`
	Layout        label.Layout `yaml:"layout"`
}

// BottomKind says what the bottom strip shows.
type BottomKind string

const (
	BottomNone   BottomKind = "none"
	BottomError  BottomKind = "error"
	BottomHelper BottomKind = "helper"
)

// BottomSnapshot is the helper or error text strip.
type BottomSnapshot struct {
	CurrentLines float64      `yaml:"current_lines"`
	TargetLines  int          `yaml:"target_lines"`
	Kind         BottomKind   `yaml:"kind"`
	Text         string       `yaml:"text,omitempty"`
	Color        colors.Color `yaml:"color"`
	X            int          `yaml:"x"`
	Y            int          `yaml:"y"`
	WrapWidth    int          `yaml:"wrap_width"`
}

// CounterSnapshot is the character counter.
type CounterSnapshot struct {
	Visible bool         `yaml:"visible"`
	Text    string       `yaml:"text,omitempty"`
	Valid   bool         `yaml:"valid"`
	Color   colors.Color `yaml:"color"`
	X       int          `yaml:"x"`
}

// UnderlineSnapshot is the line under the text.
type UnderlineSnapshot struct {
	Visible   bool         `yaml:"visible"`
	Color     colors.Color `yaml:"color"`
	Thickness int          `yaml:"thickness"`
	Dashed    bool         `yaml:"dashed"`
	Y         int          `yaml:"y"`
}

// EllipsisSnapshot is the scrolled-content indicator.
type EllipsisSnapshot struct {
	Visible bool         `yaml:"visible"`
	Color   colors.Color `yaml:"color"`
}

// ClearButtonSnapshot is the clear button.
type ClearButtonSnapshot struct {
	Visible bool            `yaml:"visible"`
	Bounds  image.Rectangle `yaml:"bounds"`
}

// IconSnapshot describes one icon slot. Image is the variant for the current
// interaction state.
type IconSnapshot struct {
	Present  bool             `yaml:"present"`
	Tint     colors.Color     `yaml:"tint,omitempty"`
	Width    int              `yaml:"width,omitempty"`
	Height   int              `yaml:"height,omitempty"`
	Image    *image.RGBA      `yaml:"-"`
	Variants *icon.VariantSet `yaml:"-"`
}

// IconsSnapshot groups the three icon slots.
type IconsSnapshot struct {
	Left  IconSnapshot `yaml:"left"`
	Right IconSnapshot `yaml:"right"`
	Clear IconSnapshot `yaml:"clear"`
}

// Snapshot computes the frame the renderer draws.
func (e *Engine) Snapshot() Snapshot {
	cfg, st := e.cfg, e.state
	valid := st.InternalValid()
	interaction := icon.StateFor(st.Enabled, st.Focused, valid)

	snap := Snapshot{
		Text:        st.Text,
		TextColor:   cfg.TextColor(st.Enabled),
		Focused:     st.Focused,
		Enabled:     st.Enabled,
		Valid:       valid,
		Interaction: interaction,
		Extra:       e.extra,
		Applied:     e.applied,
	}

	snap.Label = e.labelSnapshot()
	snap.Bottom = e.bottomSnapshot()
	snap.Counter = e.counterSnapshot()
	snap.Underline = e.underlineSnapshot(valid)
	snap.Ellipsis = EllipsisSnapshot{Visible: bottom.ShowEllipsis(cfg, st), Color: cfg.PrimaryColor}
	if !valid {
		snap.Ellipsis.Color = cfg.ErrorColor
	}
	snap.ClearButton = ClearButtonSnapshot{Visible: metrics.ClearButtonVisible(cfg, st)}
	if snap.ClearButton.Visible {
		snap.ClearButton.Bounds = e.clearButtonBounds()
	}

	palette := e.palette()
	snap.Icons = IconsSnapshot{
		Left:  e.iconSnapshot(SlotLeft, interaction, palette),
		Right: e.iconSnapshot(SlotRight, interaction, palette),
		Clear: e.iconSnapshot(SlotClear, interaction, palette),
	}
	return snap
}

func (e *Engine) labelSnapshot() LabelSnapshot {
	cfg, st := e.cfg, e.state
	start, end := metrics.TextBounds(cfg, st, e.hasIcon(SlotLeft), e.hasIcon(SlotRight))

	focus := st.FocusFraction
	if !st.Enabled {
		focus = 0
	}
	layout := label.ComputeLayout(label.LayoutInput{
		Fraction:       st.LabelFraction,
		FocusFraction:  focus,
		AlwaysShown:    cfg.FloatingLabelAlwaysShown,
		StartX:         start,
		EndX:           end,
		Width:          st.Width,
		InnerPadding:   cfg.InnerPadding,
		ScrollY:        st.ScrollY,
		LabelWidth:     e.measurer.TextWidth(cfg.FloatingLabelText, cfg.FloatingLabelTextSize),
		TextSize:       cfg.FloatingLabelTextSize,
		Padding:        cfg.FloatingLabelPadding,
		Gravity:        cfg.Gravity,
		RTL:            cfg.RTL,
		UnfocusedColor: cfg.LabelColor(),
		PrimaryColor:   cfg.PrimaryColor,
		CustomColor:    cfg.FloatingLabelTextColor != nil,
	})

	return LabelSnapshot{
		Visible:       cfg.FloatingLabel.Enabled() && cfg.FloatingLabelText != "",
		Text:          cfg.FloatingLabelText,
		State:         e.label.State().String(),
		Fraction:      st.LabelFraction,
		FocusFraction: st.FocusFraction,
		Layout:        layout,
	}
}

func (e *Engine) bottomSnapshot() BottomSnapshot {
	cfg, st := e.cfg, e.state
	in := e.bottomInput()
	snap := BottomSnapshot{
		CurrentLines: e.bottom.Current(),
		TargetLines:  e.bottom.Target(),
		Kind:         BottomNone,
		X:            bottom.TextOrigin(in),
		Y:            e.lineY() + cfg.BottomSpacing,
		WrapWidth:    bottom.WrapWidth(in),
	}
	switch {
	case st.HasError():
		snap.Kind = BottomError
		snap.Text = st.ErrorText()
		snap.Color = cfg.ErrorColor
	case st.HelperVisible(cfg.HelperTextAlwaysShown):
		snap.Kind = BottomHelper
		snap.Text = st.HelperText
		snap.Color = cfg.HelperColor()
	}
	return snap
}

// counterSnapshot shows the counter while focused, and always once the
// count is out of range.
func (e *Engine) counterSnapshot() CounterSnapshot {
	cfg, st := e.cfg, e.state
	snap := CounterSnapshot{
		Visible: (st.Focused && cfg.HasCharactersCounter()) || !st.CharactersCountValid,
		Valid:   st.CharactersCountValid,
		Color:   cfg.HintColor(),
	}
	if !snap.Valid {
		snap.Color = cfg.ErrorColor
	}
	if !cfg.HasCharactersCounter() {
		return snap
	}
	snap.Text = bottom.CounterText(st.TextLength, cfg.MinCharacters, cfg.MaxCharacters, cfg.RTL)
	start, end := metrics.TextBounds(cfg, st, e.hasIcon(SlotLeft), e.hasIcon(SlotRight))
	if cfg.RTL {
		snap.X = start
	} else {
		snap.X = end - e.measurer.TextWidth(snap.Text, cfg.BottomTextSize)
	}
	return snap
}

func (e *Engine) underlineSnapshot(valid bool) UnderlineSnapshot {
	cfg, st := e.cfg, e.state
	snap := UnderlineSnapshot{Visible: !cfg.HideUnderline, Y: e.lineY(), Thickness: 1}
	switch {
	case !valid:
		snap.Color = cfg.ErrorColor
		snap.Thickness = 2
	case !st.Enabled:
		snap.Color = cfg.BaseColor.WithAlpha(colors.AlphaHint)
		if cfg.UnderlineColor != nil {
			snap.Color = *cfg.UnderlineColor
		}
		snap.Dashed = true
	case st.Focused:
		snap.Color = cfg.PrimaryColor
		snap.Thickness = 2
	default:
		snap.Color = cfg.BaseColor.WithAlpha(colors.AlphaUnderline)
		if cfg.UnderlineColor != nil {
			snap.Color = *cfg.UnderlineColor
		}
	}
	return snap
}

func (e *Engine) iconSnapshot(slot Slot, state icon.State, palette icon.Palette) IconSnapshot {
	set := e.IconVariants(slot)
	if set == nil {
		return IconSnapshot{}
	}
	img := set.Get(state)
	snap := IconSnapshot{Present: true, Tint: palette.Tint(state), Image: img, Variants: set}
	if img != nil {
		snap.Width = img.Bounds().Dx()
		snap.Height = img.Bounds().Dy()
	}
	return snap
}
