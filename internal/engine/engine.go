// Package engine owns one decorated field: it funnels every host event into a
// single state transition and exposes the result as a Snapshot for rendering.
package engine

import (
	"strconv"

	"github.com/alexisbeaulieu97/materialfield/internal/bottom"
	"github.com/alexisbeaulieu97/materialfield/internal/icon"
	"github.com/alexisbeaulieu97/materialfield/internal/label"
	"github.com/alexisbeaulieu97/materialfield/internal/logger"
	"github.com/alexisbeaulieu97/materialfield/internal/measure"
	"github.com/alexisbeaulieu97/materialfield/internal/metrics"
	"github.com/alexisbeaulieu97/materialfield/internal/model"
	"github.com/alexisbeaulieu97/materialfield/internal/tween"
	"github.com/alexisbeaulieu97/materialfield/internal/validation"
)

// Host is notified when the field needs a new layout pass (padding changed)
// or a redraw.
type Host interface {
	RequestLayout()
	Invalidate()
}

type nopHost struct{}

func (nopHost) RequestLayout() {}
func (nopHost) Invalidate()    {}

// Slot identifies one of the field's icons.
type Slot int

const (
	SlotLeft Slot = iota
	SlotRight
	SlotClear
	slotCount
)

func (s Slot) String() string {
	switch s {
	case SlotRight:
		return "right"
	case SlotClear:
		return "clear"
	default:
		return "left"
	}
}

// Option customises an Engine at construction.
type Option func(*Engine)

// WithMeasurer sets the text measurer. The default measures terminal cells.
func WithMeasurer(m measure.Measurer) Option {
	return func(e *Engine) {
		if m != nil {
			e.measurer = m
		}
	}
}

// WithDriver sets the tween driver. Without one every transition completes
// immediately.
func WithDriver(d tween.Driver) Option {
	return func(e *Engine) { e.driver = d }
}

// WithHost sets the layout and redraw callbacks.
func WithHost(h Host) Option {
	return func(e *Engine) {
		if h != nil {
			e.host = h
		}
	}
}

// WithLogger sets the logger used for debug transitions.
func WithLogger(l *logger.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// WithHelperText sets the helper text the field starts with, so the first
// layout already reserves its line.
func WithHelperText(text string) Option {
	return func(e *Engine) { e.state.HelperText = text }
}

// WithLengthChecker replaces the rune count used by the character counter.
func WithLengthChecker(c validation.LengthChecker) Option {
	return func(e *Engine) {
		if c != nil {
			e.length = c
		}
	}
}

// Engine is not safe for concurrent use. Every method must be called from the
// goroutine that owns the field, the same one that advances the driver.
type Engine struct {
	cfg      model.FieldConfig
	state    model.FieldState
	measurer measure.Measurer
	driver   tween.Driver
	host     Host
	log      *logger.Logger
	length   validation.LengthChecker

	label      *label.Machine
	labelState label.State
	bottom     *bottom.Controller
	chain      validation.Chain

	icons  [slotCount]*icon.Source
	caches [slotCount]icon.Cache

	extra    model.PaddingBox
	applied  model.PaddingBox
	deferred bool
}

// New returns an engine for an empty, enabled, unfocused field.
func New(cfg model.FieldConfig, opts ...Option) *Engine {
	e := &Engine{
		cfg:      cfg,
		state:    model.NewFieldState(),
		measurer: measure.Terminal{},
		host:     nopHost{},
		length:   validation.RuneLength,
	}
	for _, opt := range opts {
		opt(e)
	}

	e.label = label.NewMachine(e.driver, e.labelOptions())
	e.bottom = bottom.NewController(e.driver, e.bottomLinesChanged)
	e.bottom.Configure(cfg.BottomLinesDuration, tween.ForName(cfg.Easing))
	e.bottom.ResetMin(e.minLines())
	e.state.TargetBottomLines = e.bottom.Target()
	e.refreshCharactersCount()
	e.extra, e.applied = e.computePadding()
	return e
}

// Config is the configuration in effect.
func (e *Engine) Config() model.FieldConfig {
	return e.cfg
}

// State is a copy of the current field state.
func (e *Engine) State() model.FieldState {
	return e.state
}

// Padding is the extra padding the decorations need.
func (e *Engine) Padding() model.PaddingBox {
	return e.extra
}

// AppliedPadding is the padding the host should lay the text out with.
func (e *Engine) AppliedPadding() model.PaddingBox {
	return e.applied
}

// LabelState is the floating label's phase.
func (e *Engine) LabelState() label.State {
	return e.label.State()
}

// ErrorText is the error shown under the field, empty when there is none.
func (e *Engine) ErrorText() string {
	return e.state.ErrorText()
}

// Valid reports the internal validity: no error set and the character count
// within limits.
func (e *Engine) Valid() bool {
	return e.state.InternalValid()
}

// BottomLines returns the animated and target line counts of the bottom strip.
func (e *Engine) BottomLines() (current float64, target int) {
	return e.bottom.Current(), e.bottom.Target()
}

// Validators is the validator chain in insertion order.
func (e *Engine) Validators() []validation.Validator {
	return e.chain.Validators()
}

// IconVariants returns the tinted variants of the icon in slot, generated
// from the current colors and reused while they do not change.
func (e *Engine) IconVariants(slot Slot) *icon.VariantSet {
	if slot < 0 || slot >= slotCount {
		return nil
	}
	return e.caches[slot].Variants(e.icons[slot], e.cfg.IconSize, e.palette())
}

func (e *Engine) labelOptions() label.Options {
	return label.Options{
		Enabled:       e.cfg.FloatingLabel.Enabled(),
		Highlight:     e.cfg.FloatingLabel.Highlight(),
		Duration:      e.cfg.EffectiveLabelDuration(),
		FocusDuration: e.cfg.FocusDuration,
		Easing:        tween.ForName(e.cfg.Easing),
		OnChange:      e.labelChanged,
	}
}

func (e *Engine) palette() icon.Palette {
	return icon.Palette{Base: e.cfg.BaseColor, Primary: e.cfg.PrimaryColor, Error: e.cfg.ErrorColor}
}

func (e *Engine) hasIcon(slot Slot) bool {
	return e.icons[slot] != nil
}

func (e *Engine) minLines() int {
	return bottom.MinLines(e.cfg, e.state.HasError(), e.state.HasHelper())
}

func (e *Engine) bottomInput() bottom.Input {
	return bottom.Input{
		Config:       e.cfg,
		State:        e.state,
		HasLeftIcon:  e.hasIcon(SlotLeft),
		HasRightIcon: e.hasIcon(SlotRight),
		Measurer:     e.measurer,
	}
}

func (e *Engine) labelChanged() {
	e.state.LabelFraction = e.label.Fraction()
	e.state.FocusFraction = e.label.FocusFraction()
	if st := e.label.State(); st != e.labelState {
		e.log.Transition("label", e.labelState.String(), st.String())
		e.labelState = st
	}
	e.host.Invalidate()
}

func (e *Engine) bottomLinesChanged(lines float64) {
	e.state.CurrentBottomLines = lines
	e.updatePadding()
	e.host.Invalidate()
}

func (e *Engine) computePadding() (extra, applied model.PaddingBox) {
	extra = metrics.Compute(e.cfg, e.state, e.hasIcon(SlotLeft), e.hasIcon(SlotRight), e.measurer)
	applied = metrics.Resolve(e.cfg, extra, metrics.ClearButtonVisible(e.cfg, e.state))
	return extra, applied
}

// updatePadding recomputes both paddings and asks for a layout pass when the
// applied one moved.
func (e *Engine) updatePadding() {
	extra, applied := e.computePadding()
	e.extra = extra
	if applied == e.applied {
		return
	}
	e.applied = applied
	e.host.RequestLayout()
}

// adjustBottom retargets the bottom strip. The minimum follows the current
// helper and error, so the result does not depend on the order they were set
// in. A field without a width yet keeps its lines and is retried on the next
// SetSize.
func (e *Engine) adjustBottom() {
	e.bottom.SetMin(e.minLines())
	if !e.bottom.Adjust(e.bottomInput()) {
		if !e.deferred {
			e.log.Debug("bottom lines deferred until the field has a width")
		}
		e.deferred = true
		return
	}
	e.deferred = false
	if target := e.bottom.Target(); target != e.state.TargetBottomLines {
		e.log.Transition("bottom_lines", strconv.Itoa(e.state.TargetBottomLines), strconv.Itoa(target))
		e.state.TargetBottomLines = target
	}
}

func (e *Engine) refreshCharactersCount() {
	e.state.CharactersCountValid = bottom.CharactersCountValid(e.cfg, e.state.TextLength, e.state.FirstShown)
}

func (e *Engine) regenerateIcons() {
	for slot := SlotLeft; slot < slotCount; slot++ {
		e.caches[slot].Variants(e.icons[slot], e.cfg.IconSize, e.palette())
	}
}
