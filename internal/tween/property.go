package tween

import (
	"math"
	"time"
)

// Property is one animated scalar. At most one transition runs per property:
// starting a new one cancels the one in flight first.
type Property struct {
	driver   Driver
	value    float64
	target   float64
	handle   Handle
	onChange func(float64)
}

// NewProperty creates a property holding initial. onChange, when set, runs on
// every value change including animation ticks. A nil driver makes every
// transition immediate.
func NewProperty(driver Driver, initial float64, onChange func(float64)) *Property {
	return &Property{driver: driver, value: initial, target: initial, onChange: onChange}
}

// Value is the current, possibly mid-transition, value.
func (p *Property) Value() float64 {
	return p.value
}

// Target is the value the property is heading to.
func (p *Property) Target() float64 {
	return p.target
}

// Running reports whether a transition is in flight.
func (p *Property) Running() bool {
	return p.handle != nil
}

// Cancel stops the transition in flight, leaving the value where it is.
func (p *Property) Cancel() {
	if p.handle != nil {
		p.handle.Cancel()
		p.handle = nil
	}
	p.target = p.value
}

// Jump cancels any transition and sets the value immediately.
func (p *Property) Jump(v float64) {
	p.Cancel()
	p.target = v
	p.set(v)
}

// AnimateTo starts a transition from the current value to target. done runs
// once the target is reached and not when the transition is cancelled.
func (p *Property) AnimateTo(target float64, duration time.Duration, ease Easing, done func()) {
	if p.handle != nil {
		p.handle.Cancel()
		p.handle = nil
	}
	if duration <= 0 || p.driver == nil || p.value == target {
		p.target = target
		p.set(target)
		if done != nil {
			done()
		}
		return
	}
	if ease == nil {
		ease = AccelerateDecelerate
	}

	p.target = target
	t := &transition{from: p.value, to: target, duration: duration, ease: ease}
	var handle Handle
	t.apply = func(v float64, finished bool) {
		if p.handle != handle {
			return
		}
		if finished {
			p.handle = nil
		}
		p.set(v)
		if finished && done != nil {
			done()
		}
	}
	handle = p.driver.Schedule(t)
	p.handle = handle
}

func (p *Property) set(v float64) {
	if p.value == v {
		return
	}
	p.value = v
	if p.onChange != nil {
		p.onChange(v)
	}
}

// ScaledDuration shortens full by the share of the distance already covered,
// so a reversed transition takes as long as it took to get here.
func ScaledDuration(full time.Duration, from, to, span float64) time.Duration {
	if span == 0 {
		return 0
	}
	return time.Duration(float64(full) * math.Min(1, math.Abs(to-from)/math.Abs(span)))
}

type transition struct {
	from, to float64
	duration time.Duration
	ease     Easing
	apply    func(v float64, finished bool)
}

func (t *transition) Step(elapsed time.Duration) bool {
	progress := float64(elapsed) / float64(t.duration)
	if progress >= 1 {
		t.apply(t.to, true)
		return true
	}
	t.apply(t.from+(t.to-t.from)*t.ease(progress), false)
	return false
}
