// Package bottom sizes the strip under the field that carries helper text,
// error text and the character counter.
package bottom

import (
	"time"

	"github.com/alexisbeaulieu97/materialfield/internal/measure"
	"github.com/alexisbeaulieu97/materialfield/internal/metrics"
	"github.com/alexisbeaulieu97/materialfield/internal/model"
	"github.com/alexisbeaulieu97/materialfield/internal/tween"
	fielderrors "github.com/alexisbeaulieu97/materialfield/pkg/errors"
)

// MinLines is the number of lines reserved whatever the text: the explicit
// minimum when set, otherwise one line when any bottom component can appear.
func MinLines(cfg model.FieldConfig, hasError, hasHelper bool) int {
	if cfg.MinBottomTextLines > 0 {
		return cfg.MinBottomTextLines
	}
	if cfg.HasCharactersCounter() || cfg.SingleLineEllipsis || hasError || hasHelper {
		return 1
	}
	return 0
}

// ShowEllipsis reports whether the scrolled-content indicator is drawn.
func ShowEllipsis(cfg model.FieldConfig, state model.FieldState) bool {
	return state.Focused && cfg.SingleLineEllipsis && state.ScrollX != 0
}

// Input is what the line computation reads.
type Input struct {
	Config       model.FieldConfig
	State        model.FieldState
	HasLeftIcon  bool
	HasRightIcon bool
	Measurer     measure.Measurer
	MinLines     int
}

// Candidate is the text the strip shows: the error, else the helper text
// when it is visible.
func Candidate(cfg model.FieldConfig, state model.FieldState) (string, bool) {
	if state.HasError() {
		return state.ErrorText(), true
	}
	if state.HelperVisible(cfg.HelperTextAlwaysShown) {
		return state.HelperText, true
	}
	return "", false
}

// Offsets is the room kept free on each side of the bottom text.
type Offsets struct {
	Left  int
	Right int
}

// ComputeOffsets keeps the leading side clear of the ellipsis indicator (or
// the text inset) and the trailing side clear of the counter. The sides swap
// under right-to-left layout.
func ComputeOffsets(in Input) Offsets {
	lead := in.Config.BottomTextInset
	if ShowEllipsis(in.Config, in.State) && in.Config.BottomEllipsisWidth() > lead {
		lead = in.Config.BottomEllipsisWidth()
	}
	trail := CounterWidth(in)
	if in.Config.RTL {
		return Offsets{Left: trail, Right: lead}
	}
	return Offsets{Left: lead, Right: trail}
}

// CounterWidth is the measured width of the counter, zero without limits.
func CounterWidth(in Input) int {
	if !in.Config.HasCharactersCounter() || in.Measurer == nil {
		return 0
	}
	text := CounterText(in.State.TextLength, in.Config.MinCharacters, in.Config.MaxCharacters, in.Config.RTL)
	return in.Measurer.TextWidth(text, in.Config.BottomTextSize)
}

// WrapWidth is the width the bottom text wraps at, never less than one unit
// so a field narrower than its decorations still measures.
func WrapWidth(in Input) int {
	start, end := metrics.TextBounds(in.Config, in.State, in.HasLeftIcon, in.HasRightIcon)
	o := ComputeOffsets(in)
	return max(1, end-start-o.Left-o.Right)
}

// TextOrigin is the x coordinate the bottom text block starts at.
func TextOrigin(in Input) int {
	start, end := metrics.TextBounds(in.Config, in.State, in.HasLeftIcon, in.HasRightIcon)
	o := ComputeOffsets(in)
	if in.Config.RTL {
		return end - o.Right - WrapWidth(in)
	}
	return start + o.Left
}

// TargetLines returns the line count the strip should reserve. It returns
// ErrMeasurementDeferred while the field has no width yet.
func TargetLines(in Input) (int, error) {
	if in.State.Width == 0 {
		return 0, fielderrors.ErrMeasurementDeferred
	}
	text, ok := Candidate(in.Config, in.State)
	if !ok || in.Measurer == nil {
		return in.MinLines, nil
	}
	lines := in.Measurer.LineCount(text, in.Config.BottomTextSize, WrapWidth(in))
	if lines < in.Config.MinBottomTextLines {
		lines = in.Config.MinBottomTextLines
	}
	return lines, nil
}

// Controller animates the reserved line count toward its target.
type Controller struct {
	lines    *tween.Property
	target   int
	minLines int
	duration time.Duration
	easing   tween.Easing
}

// NewController returns a controller with no reserved lines. onChange runs on
// every change of the animated line count.
func NewController(driver tween.Driver, onChange func(lines float64)) *Controller {
	return &Controller{lines: tween.NewProperty(driver, 0, onChange)}
}

// Configure sets the tween duration and curve.
func (c *Controller) Configure(duration time.Duration, easing tween.Easing) {
	c.duration = duration
	c.easing = easing
}

// ResetMin installs a new minimum and jumps straight to it.
func (c *Controller) ResetMin(minLines int) {
	c.minLines = minLines
	c.target = minLines
	c.lines.Jump(float64(minLines))
}

// SetMin changes the minimum used by later adjustments without moving the
// current line count.
func (c *Controller) SetMin(minLines int) {
	c.minLines = minLines
}

// MinLines is the minimum in effect.
func (c *Controller) MinLines() int {
	return c.minLines
}

// Current is the animated line count.
func (c *Controller) Current() float64 {
	return c.lines.Value()
}

// Target is the line count being animated toward.
func (c *Controller) Target() int {
	return c.target
}

// Running reports whether the line count is animating.
func (c *Controller) Running() bool {
	return c.lines.Running()
}

// Adjust recomputes the target and starts, or redirects, the line tween when
// it changed. It returns false when the measurement had to be deferred.
func (c *Controller) Adjust(in Input) bool {
	in.MinLines = c.minLines
	target, err := TargetLines(in)
	if err != nil {
		return false
	}
	if target != c.target || float64(target) != c.lines.Target() {
		c.target = target
		c.lines.AnimateTo(float64(target), c.duration, c.easing, nil)
	}
	return true
}
