package engine

import (
	"image"

	"github.com/alexisbeaulieu97/materialfield/internal/bottom"
	"github.com/alexisbeaulieu97/materialfield/internal/icon"
	"github.com/alexisbeaulieu97/materialfield/internal/metrics"
	"github.com/alexisbeaulieu97/materialfield/internal/model"
	"github.com/alexisbeaulieu97/materialfield/internal/tween"
)

// SetInitialText loads text the field starts out with. The label jumps to
// its end state instead of animating and no validation runs.
func (e *Engine) SetInitialText(text string) {
	e.state.Text = text
	e.state.TextLength = e.length.Length(text)
	e.label.Reset(e.cfg.FloatingLabel.Enabled() && !e.state.Empty())
	e.refreshCharactersCount()
	e.adjustBottom()
	e.updatePadding()
	e.host.Invalidate()
}

// SetText reports an edit. Any manual error is dropped; the validation error
// is recomputed under auto validation and dropped otherwise.
func (e *Engine) SetText(text string) {
	if text == e.state.Text {
		return
	}
	e.state.Text = text
	e.state.TextLength = e.length.Length(text)
	e.label.TextChanged(e.state.Empty())
	e.refreshCharactersCount()

	e.state.ManualError = ""
	if e.cfg.AutoValidate {
		e.runChain()
	} else {
		e.setValidationError("", false)
	}

	e.adjustBottom()
	e.updatePadding()
	e.host.Invalidate()
}

// Clear empties the field, as the clear button does.
func (e *Engine) Clear() {
	e.log.Debug("clear button pressed")
	e.SetText("")
}

// SetFocus reports a focus change. Losing focus validates when configured to.
func (e *Engine) SetFocus(focused bool) {
	if focused == e.state.Focused {
		return
	}
	e.state.Focused = focused
	e.label.FocusChanged(focused)
	if !focused && e.cfg.ValidateOnFocusLost {
		e.runChain()
	}
	// Focus decides whether helper text shows and whether the clear button does.
	e.adjustBottom()
	e.updatePadding()
	e.host.Invalidate()
}

// SetEnabled reports an enabled state change.
func (e *Engine) SetEnabled(enabled bool) {
	if enabled == e.state.Enabled {
		return
	}
	e.state.Enabled = enabled
	e.updatePadding()
	e.host.Invalidate()
}

// SetSize reports the field's laid out size. A bottom measurement deferred for
// lack of width is retried here.
func (e *Engine) SetSize(width, height int) {
	if width == e.state.Width && height == e.state.Height && !e.deferred {
		return
	}
	widthChanged := width != e.state.Width
	e.state.Width = width
	e.state.Height = height
	if widthChanged || e.deferred {
		e.adjustBottom()
	}
	e.host.Invalidate()
}

// SetScroll reports the text's scroll offset.
func (e *Engine) SetScroll(x, y int) {
	if x == e.state.ScrollX && y == e.state.ScrollY {
		return
	}
	ellipsis := bottom.ShowEllipsis(e.cfg, e.state)
	e.state.ScrollX = x
	e.state.ScrollY = y
	// The ellipsis indicator takes room from the bottom text while it shows.
	if bottom.ShowEllipsis(e.cfg, e.state) != ellipsis {
		e.adjustBottom()
	}
	e.host.Invalidate()
}

// SetConfig replaces the configuration wholesale.
func (e *Engine) SetConfig(cfg model.FieldConfig) {
	prev := e.cfg
	e.cfg = cfg

	e.label.Configure(e.labelOptions())
	if cfg.FloatingLabel.Enabled() != prev.FloatingLabel.Enabled() {
		e.label.Reset(cfg.FloatingLabel.Enabled() && !e.state.Empty())
	}
	e.bottom.Configure(cfg.BottomLinesDuration, tween.ForName(cfg.Easing))
	if minLines := e.minLines(); minLines != e.bottom.MinLines() {
		e.bottom.ResetMin(minLines)
	}
	e.refreshCharactersCount()
	if cfg.AutoValidate && !prev.AutoValidate {
		e.runChain()
	}
	e.regenerateIcons()

	e.adjustBottom()
	e.updatePadding()
	e.host.Invalidate()
}

// SetAutoValidate toggles validation on every edit. Turning it on validates
// the current text straight away.
func (e *Engine) SetAutoValidate(auto bool) {
	e.cfg.AutoValidate = auto
	if !auto {
		return
	}
	e.runChain()
	e.adjustBottom()
	e.host.Invalidate()
}

// Attach marks the field as shown for the first time, which enables the
// character count check when it is postponed until then.
func (e *Engine) Attach() {
	if e.state.FirstShown {
		return
	}
	e.state.FirstShown = true
	e.refreshCharactersCount()
	e.host.Invalidate()
}

// SetHelperText sets the text shown under the field when there is no error.
func (e *Engine) SetHelperText(text string) {
	if text == e.state.HelperText {
		return
	}
	e.state.HelperText = text
	e.adjustBottom()
	e.host.Invalidate()
}

// SetIconLeft sets or, with nil, removes the leading icon.
func (e *Engine) SetIconLeft(src *icon.Source) {
	e.setIcon(SlotLeft, src)
}

// SetIconRight sets or, with nil, removes the trailing icon.
func (e *Engine) SetIconRight(src *icon.Source) {
	e.setIcon(SlotRight, src)
}

// SetClearButtonIcon sets the clear button glyph.
func (e *Engine) SetClearButtonIcon(src *icon.Source) {
	e.setIcon(SlotClear, src)
}

func (e *Engine) setIcon(slot Slot, src *icon.Source) {
	if e.icons[slot] == src {
		return
	}
	e.icons[slot] = src
	e.caches[slot].Variants(src, e.cfg.IconSize, e.palette())
	e.adjustBottom()
	e.updatePadding()
	e.host.Invalidate()
}

// ClearButtonHit reports whether (x, y), in field coordinates, falls on the
// visible clear button.
func (e *Engine) ClearButtonHit(x, y int) bool {
	if !metrics.ClearButtonVisible(e.cfg, e.state) {
		return false
	}
	return image.Pt(x, y).In(e.clearButtonBounds())
}

// clearButtonBounds sits on the trailing edge of the text area. Its bottom
// is half a spacing unit below the text area, above the underline.
func (e *Engine) clearButtonBounds() image.Rectangle {
	start, end := metrics.TextBounds(e.cfg, e.state, e.hasIcon(SlotLeft), e.hasIcon(SlotRight))
	left := end - e.cfg.IconOuterWidth
	if e.cfg.RTL {
		left = start
	}
	base := e.state.ScrollY + e.state.Height - e.applied.Bottom + e.cfg.BottomSpacing/2
	top := base - e.cfg.IconOuterHeight
	return image.Rect(left, top, left+e.cfg.IconOuterWidth, top+e.cfg.IconOuterHeight)
}

// lineY is the y of the underline.
func (e *Engine) lineY() int {
	return e.state.ScrollY + e.state.Height - e.applied.Bottom + e.cfg.BottomSpacing
}
