package system

import (
	"cmp"
	"slices"
	"time"
)

type timer struct {
	at         time.Duration
	seq        uint64
	generation uint64
	fn         func()
}

// Scheduler runs delayed callbacks on the simulation clock.
// Invalidate discards pending callbacks so none can fire into a newer session.
type Scheduler struct {
	generation uint64
	seq        uint64
	timers     []timer
}

// NewScheduler creates an empty scheduler
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// After schedules fn to run once the clock reaches now+delay
func (s *Scheduler) After(now, delay time.Duration, fn func()) {
	s.seq++
	s.timers = append(s.timers, timer{
		at:         now + delay,
		seq:        s.seq,
		generation: s.generation,
		fn:         fn,
	})
}

// Advance runs every due callback of the current generation in
// due-time order and returns how many ran.
func (s *Scheduler) Advance(now time.Duration) int {
	var due, pending []timer
	for _, t := range s.timers {
		switch {
		case t.generation != s.generation:
			// stale, dropped
		case t.at <= now:
			due = append(due, t)
		default:
			pending = append(pending, t)
		}
	}
	s.timers = pending

	slices.SortFunc(due, func(a, b timer) int {
		return cmp.Or(cmp.Compare(a.at, b.at), cmp.Compare(a.seq, b.seq))
	})

	gen := s.generation
	ran := 0
	for _, t := range due {
		if s.generation != gen {
			break
		}
		t.fn()
		ran++
	}
	return ran
}

// Invalidate starts a new generation and drops all pending callbacks
func (s *Scheduler) Invalidate() {
	s.generation++
	s.timers = nil
}

// Generation returns the current generation
func (s *Scheduler) Generation() uint64 {
	return s.generation
}

// Pending returns the number of scheduled callbacks
func (s *Scheduler) Pending() int {
	return len(s.timers)
}
