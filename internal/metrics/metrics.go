// Package metrics derives the padding the field decorations reserve around the text.
package metrics

import (
	"github.com/alexisbeaulieu97/materialfield/internal/measure"
	"github.com/alexisbeaulieu97/materialfield/internal/model"
)

// Compute returns the extra padding required by the floating label, the bottom
// strip and the icons. It is a pure function of its inputs.
func Compute(cfg model.FieldConfig, state model.FieldState, hasLeftIcon, hasRightIcon bool, m measure.Measurer) model.PaddingBox {
	box := model.PaddingBox{
		Top:    cfg.FloatingLabelPadding,
		Bottom: BottomSpacing(cfg),
	}
	if cfg.FloatingLabel.Enabled() {
		box.Top += cfg.FloatingLabelTextSize
	}
	if m != nil {
		box.Bottom += int(m.LineHeight(cfg.BottomTextSize) * state.CurrentBottomLines)
	}
	if hasLeftIcon {
		box.Left = IconExtent(cfg)
	}
	if hasRightIcon {
		box.Right = IconExtent(cfg)
	}
	return box
}

// BottomSpacing is the fixed part of the bottom padding: one spacing unit, plus
// one more for the underline when it is drawn.
func BottomSpacing(cfg model.FieldConfig) int {
	if cfg.HideUnderline {
		return cfg.BottomSpacing
	}
	return cfg.BottomSpacing * 2
}

// IconExtent is the horizontal room taken by one icon and its gap to the text.
func IconExtent(cfg model.FieldConfig) int {
	return cfg.IconOuterWidth + cfg.IconPadding
}

// ClearButtonVisible reports whether the clear button is drawn and reserves room.
func ClearButtonVisible(cfg model.FieldConfig, state model.FieldState) bool {
	return cfg.ShowClearButton && state.Focused && state.Enabled && !state.Empty()
}

// Resolve returns the padding the host applies: the host's own inner padding,
// the extra decoration padding and, while visible, the clear button on the
// trailing side.
func Resolve(cfg model.FieldConfig, extra model.PaddingBox, clearVisible bool) model.PaddingBox {
	applied := extra.Add(cfg.InnerPadding)
	if clearVisible {
		if cfg.RTL {
			applied.Left += cfg.IconOuterWidth
		} else {
			applied.Right += cfg.IconOuterWidth
		}
	}
	return applied
}

// TextBounds returns the horizontal span between the icons, in field coordinates.
func TextBounds(cfg model.FieldConfig, state model.FieldState, hasLeftIcon, hasRightIcon bool) (startX, endX int) {
	startX = state.ScrollX
	endX = state.ScrollX + state.Width
	if hasLeftIcon {
		startX += IconExtent(cfg)
	}
	if hasRightIcon {
		endX -= IconExtent(cfg)
	}
	return startX, endX
}
