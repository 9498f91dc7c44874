// Package tween drives cancellable scalar transitions from a host frame clock.
package tween

import "time"

// Task advances one transition. Step receives the total elapsed time since the
// task was scheduled and reports whether the task has finished.
type Task interface {
	Step(elapsed time.Duration) (done bool)
}

// Handle cancels a scheduled task. A cancelled task is never stepped again.
type Handle interface {
	Cancel()
}

// Driver is the host's scheduling primitive.
type Driver interface {
	Schedule(task Task) Handle
}

type entry struct {
	task      Task
	elapsed   time.Duration
	cancelled bool
}

func (e *entry) Cancel() {
	e.cancelled = true
}

// Scheduler is a Driver advanced explicitly by the host's frame loop. All calls
// must come from the goroutine that owns the field.
type Scheduler struct {
	entries []*entry
}

// NewScheduler returns an idle scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Schedule registers a task. It receives its first step on the next Advance.
func (s *Scheduler) Schedule(task Task) Handle {
	e := &entry{task: task}
	s.entries = append(s.entries, e)
	return e
}

// Advance moves every running task forward by dt and reports whether any task
// is still running afterwards. Tasks scheduled while advancing start on the
// next call.
func (s *Scheduler) Advance(dt time.Duration) bool {
	current := s.entries
	s.entries = nil

	kept := make([]*entry, 0, len(current))
	for _, e := range current {
		if e.cancelled {
			continue
		}
		e.elapsed += dt
		if done := e.task.Step(e.elapsed); done {
			e.cancelled = true
			continue
		}
		if !e.cancelled {
			kept = append(kept, e)
		}
	}

	s.entries = append(kept, s.entries...)
	return s.Active()
}

// Active reports whether any uncancelled task is scheduled.
func (s *Scheduler) Active() bool {
	return s.Len() > 0
}

// Len is the number of uncancelled tasks.
func (s *Scheduler) Len() int {
	n := 0
	for _, e := range s.entries {
		if !e.cancelled {
			n++
		}
	}
	return n
}

// Settle advances by frame until no task is running or maxFrames is reached.
// It returns the number of frames advanced.
func (s *Scheduler) Settle(frame time.Duration, maxFrames int) int {
	frames := 0
	for s.Active() && frames < maxFrames {
		s.Advance(frame)
		frames++
	}
	return frames
}
