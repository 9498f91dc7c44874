// Package label runs the floating label's visibility and focus highlight transitions.
package label

import (
	"time"

	"github.com/alexisbeaulieu97/materialfield/internal/tween"
)

// State is the visibility phase of the floating label.
type State int

const (
	Hidden State = iota
	Appearing
	Shown
	Disappearing
)

func (s State) String() string {
	switch s {
	case Appearing:
		return "appearing"
	case Shown:
		return "shown"
	case Disappearing:
		return "disappearing"
	default:
		return "hidden"
	}
}

// Options configures a Machine.
type Options struct {
	Enabled       bool
	Highlight     bool
	Duration      time.Duration
	FocusDuration time.Duration
	Easing        tween.Easing
	// OnChange runs whenever a fraction or the state changes.
	OnChange func()
}

// Machine tracks the label animation fraction and the focus highlight fraction.
type Machine struct {
	opts     Options
	state    State
	fraction *tween.Property
	focus    *tween.Property
}

// NewMachine returns a machine in the Hidden state.
func NewMachine(driver tween.Driver, opts Options) *Machine {
	m := &Machine{opts: opts, state: Hidden}
	m.fraction = tween.NewProperty(driver, 0, func(float64) { m.changed() })
	m.focus = tween.NewProperty(driver, 0, func(float64) { m.changed() })
	return m
}

// Configure replaces the options without touching the current fractions.
func (m *Machine) Configure(opts Options) {
	m.opts = opts
}

// State is the current phase.
func (m *Machine) State() State {
	return m.state
}

// Fraction is the label animation fraction, 0 hidden and 1 shown.
func (m *Machine) Fraction() float64 {
	return m.fraction.Value()
}

// FocusFraction is the focus highlight fraction used to tint the label.
func (m *Machine) FocusFraction() float64 {
	return m.focus.Value()
}

// TextChanged moves the label toward shown when the text is non-empty and
// toward hidden when it is empty. Re-triggering the transition in progress
// is a no-op.
func (m *Machine) TextChanged(empty bool) {
	if !m.opts.Enabled {
		return
	}
	if empty {
		if m.state == Hidden || m.state == Disappearing {
			return
		}
		m.transition(Disappearing, 0, Hidden)
		return
	}
	if m.state == Shown || m.state == Appearing {
		return
	}
	m.transition(Appearing, 1, Shown)
}

// FocusChanged drives the highlight fraction. Gaining focus only highlights
// when the highlight mode is on; losing focus always fades back.
func (m *Machine) FocusChanged(focused bool) {
	if !m.opts.Enabled {
		return
	}
	if focused {
		if !m.opts.Highlight {
			return
		}
		m.focus.AnimateTo(1, tween.ScaledDuration(m.opts.FocusDuration, m.focus.Value(), 1, 1), m.opts.Easing, nil)
		return
	}
	m.focus.AnimateTo(0, tween.ScaledDuration(m.opts.FocusDuration, m.focus.Value(), 0, 1), m.opts.Easing, nil)
}

// Reset jumps straight to Shown or Hidden without animating.
func (m *Machine) Reset(shown bool) {
	if shown {
		m.state = Shown
		m.fraction.Jump(1)
	} else {
		m.state = Hidden
		m.fraction.Jump(0)
	}
	m.changed()
}

func (m *Machine) transition(via State, target float64, end State) {
	m.state = via
	duration := tween.ScaledDuration(m.opts.Duration, m.fraction.Value(), target, 1)
	m.fraction.AnimateTo(target, duration, m.opts.Easing, func() {
		m.state = end
		m.changed()
	})
	m.changed()
}

func (m *Machine) changed() {
	if m.opts.OnChange != nil {
		m.opts.OnChange()
	}
}
