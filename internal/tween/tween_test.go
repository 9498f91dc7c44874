package tween

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/materialfield/internal/model"
)

const frame = 16 * time.Millisecond

func TestPropertyAnimatesToTarget(t *testing.T) {
	t.Parallel()

	s := NewScheduler()
	var seen []float64
	p := NewProperty(s, 0, func(v float64) { seen = append(seen, v) })

	done := false
	p.AnimateTo(1, 100*time.Millisecond, Linear, func() { done = true })
	require.True(t, p.Running())
	require.Equal(t, float64(1), p.Target())
	require.Zero(t, p.Value())

	s.Advance(50 * time.Millisecond)
	require.InDelta(t, 0.5, p.Value(), 1e-9)
	require.False(t, done)

	s.Advance(60 * time.Millisecond)
	require.Equal(t, float64(1), p.Value())
	require.True(t, done)
	require.False(t, p.Running())
	require.False(t, s.Active())
	require.Equal(t, []float64{0.5, 1}, seen)
}

func TestNewAnimationCancelsInFlight(t *testing.T) {
	t.Parallel()

	s := NewScheduler()
	p := NewProperty(s, 0, nil)

	firstDone := false
	p.AnimateTo(1, 100*time.Millisecond, Linear, func() { firstDone = true })
	s.Advance(40 * time.Millisecond)
	require.InDelta(t, 0.4, p.Value(), 1e-9)

	p.AnimateTo(0, 40*time.Millisecond, Linear, nil)
	require.Equal(t, 1, s.Len())

	s.Advance(20 * time.Millisecond)
	require.InDelta(t, 0.2, p.Value(), 1e-9)

	s.Settle(frame, 100)
	require.Zero(t, p.Value())
	require.False(t, firstDone)
}

func TestZeroDurationJumps(t *testing.T) {
	t.Parallel()

	s := NewScheduler()
	calls := 0
	p := NewProperty(s, 0, func(float64) { calls++ })

	done := false
	p.AnimateTo(3, 0, nil, func() { done = true })
	require.Equal(t, float64(3), p.Value())
	require.True(t, done)
	require.False(t, s.Active())
	require.Equal(t, 1, calls)
}

func TestNilDriverIsImmediate(t *testing.T) {
	t.Parallel()

	p := NewProperty(nil, 1, nil)
	p.AnimateTo(2, time.Second, Linear, nil)
	require.Equal(t, float64(2), p.Value())
	require.False(t, p.Running())
}

func TestJumpCancels(t *testing.T) {
	t.Parallel()

	s := NewScheduler()
	p := NewProperty(s, 0, nil)
	p.AnimateTo(1, time.Second, Linear, nil)
	p.Jump(0.25)

	require.False(t, p.Running())
	s.Advance(time.Second)
	require.Equal(t, 0.25, p.Value())
}

func TestSchedulerDefersTasksScheduledWhileAdvancing(t *testing.T) {
	t.Parallel()

	s := NewScheduler()
	inner := NewProperty(s, 0, nil)
	outer := NewProperty(s, 0, func(v float64) {
		if v == 1 && !inner.Running() && inner.Value() == 0 {
			inner.AnimateTo(1, 2*frame, Linear, nil)
		}
	})

	outer.AnimateTo(1, frame, Linear, nil)
	s.Advance(frame)
	require.Equal(t, float64(1), outer.Value())
	require.Zero(t, inner.Value())
	require.True(t, s.Active())

	s.Advance(frame)
	require.InDelta(t, 0.5, inner.Value(), 1e-9)
}

func TestEasingsAreMonotonic(t *testing.T) {
	t.Parallel()

	for name, ease := range map[model.Easing]Easing{
		model.EasingLinear:               ForName(model.EasingLinear),
		model.EasingAccelerateDecelerate: ForName(model.EasingAccelerateDecelerate),
		model.EasingSpring:               ForName(model.EasingSpring),
	} {
		require.InDelta(t, 0, ease(0), 1e-9, name)
		require.InDelta(t, 1, ease(1), 1e-9, name)

		prev := 0.0
		for i := 1; i <= 100; i++ {
			v := ease(float64(i) / 100)
			require.GreaterOrEqual(t, v, prev, name)
			require.LessOrEqual(t, v, 1.0, name)
			prev = v
		}
	}
}

func TestScaledDuration(t *testing.T) {
	t.Parallel()

	require.Equal(t, 150*time.Millisecond, ScaledDuration(300*time.Millisecond, 0.5, 0, 1))
	require.Equal(t, 300*time.Millisecond, ScaledDuration(300*time.Millisecond, 0, 1, 1))
	require.Zero(t, ScaledDuration(300*time.Millisecond, 0, 1, 0))
}
