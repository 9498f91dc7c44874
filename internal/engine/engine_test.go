package engine

import (
	"bytes"
	"image"
	"image/color"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/materialfield/internal/icon"
	"github.com/alexisbeaulieu97/materialfield/internal/label"
	"github.com/alexisbeaulieu97/materialfield/internal/logger"
	"github.com/alexisbeaulieu97/materialfield/internal/measure"
	"github.com/alexisbeaulieu97/materialfield/internal/metrics"
	"github.com/alexisbeaulieu97/materialfield/internal/model"
	"github.com/alexisbeaulieu97/materialfield/internal/tween"
	"github.com/alexisbeaulieu97/materialfield/internal/validation"
)

var mono = measure.Monospace{Advance: 10, Height: 16}

const frame = 16 * time.Millisecond

type recordingHost struct {
	layouts       int
	invalidations int
}

func (h *recordingHost) RequestLayout() { h.layouts++ }
func (h *recordingHost) Invalidate()    { h.invalidations++ }

func newEngine(t *testing.T, cfg model.FieldConfig) (*Engine, *tween.Scheduler, *recordingHost) {
	t.Helper()

	s := tween.NewScheduler()
	host := &recordingHost{}
	return New(cfg, WithDriver(s), WithMeasurer(mono), WithHost(host)), s, host
}

func labelConfig() model.FieldConfig {
	cfg := model.DefaultFieldConfig()
	cfg.FloatingLabel = model.LabelHighlight
	cfg.FloatingLabelText = "Email"
	return cfg
}

func always(valid bool, msg string) validation.Validator {
	return validation.Func(msg, func(string, bool) bool { return valid })
}

func TestLabelAppearsThenDisappears(t *testing.T) {
	t.Parallel()

	e, s, _ := newEngine(t, labelConfig())
	require.Equal(t, label.Hidden, e.LabelState())

	e.SetText("a")
	require.Equal(t, label.Appearing, e.LabelState())
	require.Zero(t, e.State().LabelFraction)

	s.Advance(100 * time.Millisecond)
	rising := e.State().LabelFraction
	require.Greater(t, rising, 0.0)
	require.Less(t, rising, 1.0)

	// Typing more while appearing must not restart the transition.
	e.SetText("ab")
	require.Equal(t, label.Appearing, e.LabelState())
	require.Equal(t, rising, e.State().LabelFraction)

	s.Advance(100 * time.Millisecond)
	peak := e.State().LabelFraction
	require.Greater(t, peak, rising)

	e.SetText("")
	require.Equal(t, label.Disappearing, e.LabelState())
	require.Equal(t, peak, e.State().LabelFraction, "reversing continues from the current fraction")

	prev := peak
	for s.Active() {
		s.Advance(frame)
		f := e.State().LabelFraction
		require.LessOrEqual(t, f, prev)
		prev = f
	}
	require.Equal(t, label.Hidden, e.LabelState())
	require.Zero(t, e.State().LabelFraction)
}

func TestLabelFractionRisesMonotonically(t *testing.T) {
	t.Parallel()

	e, s, _ := newEngine(t, labelConfig())
	e.SetText("hello")

	prev := 0.0
	for s.Active() {
		s.Advance(frame)
		f := e.State().LabelFraction
		require.GreaterOrEqual(t, f, prev)
		prev = f
	}
	require.Equal(t, label.Shown, e.LabelState())
	require.Equal(t, 1.0, e.State().LabelFraction)
}

func TestLabelWithoutAnimationJumps(t *testing.T) {
	t.Parallel()

	cfg := labelConfig()
	cfg.FloatingLabelAnimating = false
	e, s, _ := newEngine(t, cfg)

	e.SetText("a")
	require.Equal(t, label.Shown, e.LabelState())
	require.Equal(t, 1.0, e.State().LabelFraction)
	require.False(t, s.Active())
}

func TestInitialTextShowsLabelWithoutAnimating(t *testing.T) {
	t.Parallel()

	e, s, _ := newEngine(t, labelConfig())
	e.SetInitialText("preset")
	require.Equal(t, label.Shown, e.LabelState())
	require.Equal(t, 1.0, e.State().LabelFraction)
	require.False(t, s.Active())
}

func TestFocusHighlightsLabel(t *testing.T) {
	t.Parallel()

	e, s, _ := newEngine(t, labelConfig())
	e.SetFocus(true)
	s.Settle(frame, 100)
	require.Equal(t, 1.0, e.State().FocusFraction)

	e.SetFocus(false)
	s.Settle(frame, 100)
	require.Zero(t, e.State().FocusFraction)

	cfg := labelConfig()
	cfg.FloatingLabel = model.LabelNormal
	plain, ps, _ := newEngine(t, cfg)
	plain.SetFocus(true)
	ps.Settle(frame, 100)
	require.Zero(t, plain.State().FocusFraction)
}

func TestValidateReportsFirstFailure(t *testing.T) {
	t.Parallel()

	e, _, _ := newEngine(t, model.DefaultFieldConfig())
	e.AddValidator(always(true, "never shown"))
	e.AddValidator(always(false, "bad"))
	e.AddValidator(always(false, "later"))

	require.False(t, e.Validate())
	require.Equal(t, "bad", e.ErrorText())
	require.False(t, e.Valid())
	require.Len(t, e.Validators(), 3)
}

func TestValidateIsIdempotent(t *testing.T) {
	t.Parallel()

	e, _, _ := newEngine(t, model.DefaultFieldConfig())
	e.AddValidator(validation.MustRegexp("digits only", `\d+`))
	e.SetText("12a")

	first := e.Validate()
	firstErr := e.ErrorText()
	second := e.Validate()
	require.Equal(t, first, second)
	require.Equal(t, firstErr, e.ErrorText())
	require.Equal(t, "digits only", firstErr)

	e.SetText("123")
	require.True(t, e.Validate())
	require.True(t, e.Validate())
	require.Empty(t, e.ErrorText())
}

func TestEmptyChainLeavesErrorAlone(t *testing.T) {
	t.Parallel()

	e, _, _ := newEngine(t, model.DefaultFieldConfig())
	e.SetError("server rejected")
	require.True(t, e.Validate())
	require.Equal(t, "server rejected", e.ErrorText())
}

func TestManualErrorWinsOverValidation(t *testing.T) {
	t.Parallel()

	e, _, _ := newEngine(t, model.DefaultFieldConfig())
	e.AddValidator(always(false, "bad"))
	require.False(t, e.Validate())

	e.SetError("manual")
	require.Equal(t, "manual", e.ErrorText())
	require.False(t, e.Validate())
	require.Equal(t, "manual", e.ErrorText())

	e.SetError("")
	require.Equal(t, "bad", e.ErrorText())

	e.ClearError()
	require.Empty(t, e.ErrorText())
	require.True(t, e.Valid())
}

func TestTextChangeDropsErrors(t *testing.T) {
	t.Parallel()

	e, _, _ := newEngine(t, model.DefaultFieldConfig())
	e.AddValidator(always(false, "bad"))
	e.Validate()
	e.SetError("manual")

	e.SetText("x")
	require.Empty(t, e.ErrorText())
}

func TestAutoValidate(t *testing.T) {
	t.Parallel()

	e, _, _ := newEngine(t, model.DefaultFieldConfig())
	e.AddValidator(validation.Required("required"))
	e.AddValidator(validation.Length("at most 3", 0, 3, nil))

	e.SetAutoValidate(true)
	require.Equal(t, "required", e.ErrorText(), "turning auto validation on validates at once")

	e.SetText("ab")
	require.Empty(t, e.ErrorText())

	e.SetError("manual")
	e.SetText("abcd")
	require.Equal(t, "at most 3", e.ErrorText())
}

func TestValidateOnFocusLost(t *testing.T) {
	t.Parallel()

	cfg := model.DefaultFieldConfig()
	cfg.ValidateOnFocusLost = true
	e, _, _ := newEngine(t, cfg)
	e.AddValidator(validation.Required("required"))

	e.SetFocus(true)
	require.Empty(t, e.ErrorText())
	e.SetFocus(false)
	require.Equal(t, "required", e.ErrorText())
}

func TestValidateWith(t *testing.T) {
	t.Parallel()

	e, _, _ := newEngine(t, model.DefaultFieldConfig())
	e.SetText("abc")

	require.True(t, e.ValidateWith(always(true, "unused")))
	require.Empty(t, e.ErrorText())

	require.False(t, e.ValidateWith(always(false, "nope")))
	require.Equal(t, "nope", e.ErrorText())

	require.True(t, e.ValidateWith(always(true, "unused")))
	require.Equal(t, "nope", e.ErrorText(), "a pass does not clear the error")
	require.True(t, e.ValidateWith(nil))
}

func TestCharacterCounterBoundaries(t *testing.T) {
	t.Parallel()

	cfg := model.DefaultFieldConfig()
	cfg.MinCharacters = 5
	cfg.MaxCharacters = 10
	e, _, _ := newEngine(t, cfg)
	e.Attach()

	cases := map[string]bool{
		"abcd":        false,
		"abcde":       true,
		"abcdefghij":  true,
		"abcdefghijk": false,
	}
	for text, want := range cases {
		e.SetText(text)
		require.Equal(t, want, e.Valid(), text)
		require.Equal(t, want, e.Snapshot().Counter.Valid, text)
	}

	unbounded, _, _ := newEngine(t, model.DefaultFieldConfig())
	unbounded.Attach()
	for _, text := range []string{"", "a", "a very long piece of text"} {
		unbounded.SetText(text)
		require.True(t, unbounded.Valid(), text)
	}
}

func TestCharacterCountCheckPostponedUntilAttach(t *testing.T) {
	t.Parallel()

	cfg := model.DefaultFieldConfig()
	cfg.MinCharacters = 5
	cfg.CheckCharactersCountAtBeginning = false
	e, _, _ := newEngine(t, cfg)

	e.SetText("ab")
	require.True(t, e.Valid())
	e.Attach()
	require.False(t, e.Valid())
	require.Equal(t, "2 / 5+", e.Snapshot().Counter.Text)
}

func TestLengthCheckerDrivesCounter(t *testing.T) {
	t.Parallel()

	cfg := model.DefaultFieldConfig()
	cfg.MaxCharacters = 2
	byteLen := validation.LengthFunc(func(text string) int { return len(text) })
	e := New(cfg, WithLengthChecker(byteLen))
	e.Attach()

	e.SetText("é")
	require.Equal(t, 2, e.State().TextLength)
	require.True(t, e.Valid())
	e.SetText("éa")
	require.False(t, e.Valid())
}

func TestWrappedErrorGrowsBottomPadding(t *testing.T) {
	t.Parallel()

	cfg := model.DefaultFieldConfig()
	cfg.MinBottomTextLines = 0
	e, s, host := newEngine(t, cfg)
	e.SetSize(120, 80)
	require.Equal(t, 16, e.Padding().Bottom)

	layouts := host.layouts
	e.SetError("this error wraps")
	current, target := e.BottomLines()
	require.Equal(t, 2, target)
	require.Zero(t, current)
	require.True(t, s.Active())

	s.Settle(frame, 100)
	current, _ = e.BottomLines()
	require.Equal(t, 2.0, current)
	require.Equal(t, 2*16+16, e.Padding().Bottom)
	require.Greater(t, host.layouts, layouts)
}

func TestBottomMeasurementDeferredUntilSized(t *testing.T) {
	t.Parallel()

	e, s, _ := newEngine(t, model.DefaultFieldConfig())
	e.SetError("short")
	_, target := e.BottomLines()
	require.Zero(t, target)

	e.SetSize(400, 80)
	_, target = e.BottomLines()
	require.Equal(t, 1, target)
	s.Settle(frame, 100)
	require.Equal(t, 16+16, e.Padding().Bottom)
}

func TestHelperTextShowsWhileFocused(t *testing.T) {
	t.Parallel()

	e, s, _ := newEngine(t, model.DefaultFieldConfig())
	e.SetSize(400, 80)
	e.SetHelperText("letters only")
	_, target := e.BottomLines()
	require.Equal(t, 1, target, "helper text reserves its line while hidden")
	require.Equal(t, BottomNone, e.Snapshot().Bottom.Kind)
	s.Settle(frame, 100)
	require.Equal(t, 16+16, e.Padding().Bottom)

	e.SetFocus(true)
	_, target = e.BottomLines()
	require.Equal(t, 1, target)
	require.Equal(t, 16+16, e.Padding().Bottom)
	s.Settle(frame, 100)

	snap := e.Snapshot()
	require.Equal(t, BottomHelper, snap.Bottom.Kind)
	require.Equal(t, "letters only", snap.Bottom.Text)
	require.Equal(t, e.Config().HintColor(), snap.Bottom.Color)
	require.Equal(t, 8, snap.Bottom.X)
}

func TestHelperTextFromConstruction(t *testing.T) {
	t.Parallel()

	s := tween.NewScheduler()
	e := New(model.DefaultFieldConfig(), WithDriver(s), WithMeasurer(mono), WithHelperText("help"))
	e.SetSize(320, 100)

	current, target := e.BottomLines()
	require.Equal(t, 1, target)
	require.Equal(t, 1.0, current)
	require.False(t, s.Active())
	require.Equal(t, 16+16, e.Padding().Bottom)
}

func TestReapplyingConfigKeepsPadding(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		cfg   func() model.FieldConfig
		setup func(e *Engine)
	}{
		{name: "helper set after construction", cfg: model.DefaultFieldConfig, setup: func(e *Engine) { e.SetHelperText("help") }},
		{name: "manual error", cfg: model.DefaultFieldConfig, setup: func(e *Engine) { e.SetError("bad") }},
		{
			name: "error cleared",
			cfg:  model.DefaultFieldConfig,
			setup: func(e *Engine) {
				e.SetError("bad")
				e.ClearError()
			},
		},
		{
			name: "counter with helper",
			cfg: func() model.FieldConfig {
				cfg := model.DefaultFieldConfig()
				cfg.MaxCharacters = 10
				return cfg
			},
			setup: func(e *Engine) { e.SetHelperText("help") },
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			e, s, _ := newEngine(t, tc.cfg())
			e.SetSize(320, 100)
			tc.setup(e)
			s.Settle(frame, 100)

			padding := e.Padding()
			current, target := e.BottomLines()

			e.SetConfig(e.Config())
			s.Settle(frame, 100)

			require.Equal(t, padding, e.Padding())
			gotCurrent, gotTarget := e.BottomLines()
			require.Equal(t, current, gotCurrent)
			require.Equal(t, target, gotTarget)
		})
	}
}

func TestNarrowFieldReservesWrappedError(t *testing.T) {
	t.Parallel()

	cfg := model.DefaultFieldConfig()
	cfg.MaxCharacters = 10
	e, s, _ := newEngine(t, cfg)
	e.SetIconLeft(icon.NewSource(square(48)))
	e.SetIconRight(icon.NewSource(square(48)))
	e.SetSize(20, 100)

	e.SetError(strings.Repeat("x", 35))
	s.Settle(frame, 200)
	current, target := e.BottomLines()
	require.Greater(t, target, 1)
	require.Equal(t, float64(target), current)
	require.Equal(t, 1, e.Snapshot().Bottom.WrapWidth)

	e.SetSize(20, 100)
	s.Settle(frame, 200)
	_, again := e.BottomLines()
	require.Equal(t, target, again)
}

func TestEmptyValidatorMessageStillInvalidates(t *testing.T) {
	t.Parallel()

	e, _, _ := newEngine(t, model.DefaultFieldConfig())
	e.AddValidator(always(false, ""))

	require.False(t, e.Validate())
	require.False(t, e.Valid())
	require.Empty(t, e.ErrorText())
	require.Equal(t, icon.Invalid, e.Snapshot().Interaction)

	e.SetText("x")
	require.True(t, e.Valid())

	require.False(t, e.Validate())
	e.ClearError()
	require.True(t, e.Valid())

	require.False(t, e.ValidateWith(always(false, "")))
	require.False(t, e.Valid())
}

func TestPaddingIsPureFunctionOfInputs(t *testing.T) {
	t.Parallel()

	cfg := labelConfig()
	cfg.MaxCharacters = 20
	e, s, _ := newEngine(t, cfg)
	e.SetSize(300, 80)
	e.SetIconLeft(icon.NewSource(square(48)))
	e.SetText("hello")
	e.SetError("bad")
	s.Settle(frame, 100)

	st := e.State()
	first := metrics.Compute(e.Config(), st, true, false, mono)
	second := metrics.Compute(e.Config(), st, true, false, mono)
	require.Empty(t, cmp.Diff(first, second))
	require.Empty(t, cmp.Diff(first, e.Padding()))
	require.Equal(t, model.PaddingBox{Top: 20, Bottom: 32, Left: 56}, e.Padding())
}

func square(size int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.SetNRGBA(x, y, color.NRGBA{A: 0xff})
		}
	}
	return img
}

func TestIconVariantsAreCached(t *testing.T) {
	t.Parallel()

	cfg := model.DefaultFieldConfig()
	e, _, host := newEngine(t, cfg)
	src := icon.NewSource(square(48))

	layouts := host.layouts
	e.SetIconLeft(src)
	require.Greater(t, host.layouts, layouts)
	require.Equal(t, 56, e.Padding().Left)

	first := e.IconVariants(SlotLeft)
	require.NotNil(t, first)
	require.Same(t, first, e.IconVariants(SlotLeft))
	require.Same(t, first, e.Snapshot().Icons.Left.Variants)

	e.SetConfig(cfg)
	require.Same(t, first, e.IconVariants(SlotLeft))

	cfg.PrimaryColor = 0xff2196f3
	e.SetConfig(cfg)
	require.NotSame(t, first, e.IconVariants(SlotLeft))

	e.SetIconLeft(nil)
	require.Nil(t, e.IconVariants(SlotLeft))
	require.Zero(t, e.Padding().Left)
	require.Nil(t, e.IconVariants(Slot(7)))
}

func TestIconFollowsInteractionState(t *testing.T) {
	t.Parallel()

	cfg := model.DefaultFieldConfig()
	cfg.PrimaryColor = 0xff2196f3
	e, _, _ := newEngine(t, cfg)
	e.SetIconRight(icon.NewSource(square(64)))

	snap := e.Snapshot()
	require.Equal(t, icon.Normal, snap.Interaction)
	require.Equal(t, 32, snap.Icons.Right.Width)
	require.Equal(t, cfg.BaseColor.WithAlpha(0x8a), snap.Icons.Right.Tint)

	e.SetFocus(true)
	snap = e.Snapshot()
	require.Equal(t, icon.Focused, snap.Interaction)
	require.Same(t, snap.Icons.Right.Variants.Get(icon.Focused), snap.Icons.Right.Image)

	e.SetError("bad")
	require.Equal(t, icon.Invalid, e.Snapshot().Interaction)
	require.Equal(t, cfg.ErrorColor, e.Snapshot().Icons.Right.Tint)
}

func TestClearButton(t *testing.T) {
	t.Parallel()

	cfg := model.DefaultFieldConfig()
	cfg.ShowClearButton = true
	e, _, _ := newEngine(t, cfg)
	e.SetSize(300, 60)
	e.SetFocus(true)
	require.False(t, e.Snapshot().ClearButton.Visible, "hidden while empty")

	e.SetText("abc")
	snap := e.Snapshot()
	require.True(t, snap.ClearButton.Visible)
	// 60 high less 16 of bottom padding, plus half the 8 unit spacing.
	require.Equal(t, image.Rect(260, 14, 300, 48), snap.ClearButton.Bounds)
	require.Equal(t, 40, e.AppliedPadding().Right)

	require.True(t, e.ClearButtonHit(270, 30))
	require.True(t, e.ClearButtonHit(270, 14))
	require.False(t, e.ClearButtonHit(250, 30))
	require.False(t, e.ClearButtonHit(270, 10))
	require.False(t, e.ClearButtonHit(270, 50), "the underline below the button is not part of it")

	e.Clear()
	require.Empty(t, e.State().Text)
	require.False(t, e.ClearButtonHit(270, 30))
	require.Zero(t, e.AppliedPadding().Right)
}

func TestClearButtonLeadingUnderRTL(t *testing.T) {
	t.Parallel()

	cfg := model.DefaultFieldConfig()
	cfg.ShowClearButton = true
	cfg.RTL = true
	e, _, _ := newEngine(t, cfg)
	e.SetSize(300, 60)
	e.SetFocus(true)
	e.SetText("abc")

	require.Equal(t, 40, e.AppliedPadding().Left)
	require.True(t, e.ClearButtonHit(10, 30))
	require.False(t, e.ClearButtonHit(270, 30))
}

func TestUnderlineStyles(t *testing.T) {
	t.Parallel()

	cfg := model.DefaultFieldConfig()
	cfg.PrimaryColor = 0xff2196f3

	cases := []struct {
		name      string
		apply     func(e *Engine)
		color     uint32
		thickness int
		dashed    bool
	}{
		{name: "normal", apply: func(*Engine) {}, color: 0x1e000000, thickness: 1},
		{name: "focused", apply: func(e *Engine) { e.SetFocus(true) }, color: 0xff2196f3, thickness: 2},
		{name: "disabled", apply: func(e *Engine) { e.SetEnabled(false) }, color: 0x44000000, thickness: 1, dashed: true},
		{name: "invalid", apply: func(e *Engine) { e.SetFocus(true); e.SetError("bad") }, color: 0xffe7492e, thickness: 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			e, _, _ := newEngine(t, cfg)
			e.SetSize(300, 60)
			tc.apply(e)

			line := e.Snapshot().Underline
			require.True(t, line.Visible)
			require.Equal(t, tc.color, uint32(line.Color))
			require.Equal(t, tc.thickness, line.Thickness)
			require.Equal(t, tc.dashed, line.Dashed)
		})
	}
}

func TestEllipsisShowsWhenScrolled(t *testing.T) {
	t.Parallel()

	cfg := model.DefaultFieldConfig()
	cfg.SingleLineEllipsis = true
	cfg.PrimaryColor = 0xff2196f3
	e, _, _ := newEngine(t, cfg)
	e.SetSize(300, 60)
	e.SetFocus(true)
	require.False(t, e.Snapshot().Ellipsis.Visible)

	e.SetScroll(30, 0)
	snap := e.Snapshot()
	require.True(t, snap.Ellipsis.Visible)
	require.Equal(t, cfg.PrimaryColor, snap.Ellipsis.Color)
	require.Equal(t, 30+24, snap.Bottom.X)
}

func TestDisabledLabelIgnoresFocusTint(t *testing.T) {
	t.Parallel()

	cfg := labelConfig()
	cfg.PrimaryColor = 0xff2196f3
	cfg.FloatingLabelAlwaysShown = true
	e, s, _ := newEngine(t, cfg)
	e.SetFocus(true)
	s.Settle(frame, 100)
	require.Equal(t, uint8(0xff), e.Snapshot().Label.Layout.Alpha)

	e.SetEnabled(false)
	layout := e.Snapshot().Label.Layout
	require.Equal(t, uint8(66), layout.Alpha)
	require.Equal(t, uint32(0x000000), uint32(layout.Color)&0x00ffffff)
}

func TestTransitionsAreLogged(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := logger.New(logger.Options{Level: "debug", Writer: buf})
	require.NoError(t, err)

	e := New(labelConfig(), WithLogger(log.ForField("email")))
	e.SetText("a")
	require.Contains(t, buf.String(), `"subject":"label"`)
	require.Contains(t, buf.String(), `"field":"email"`)
}
