package roomkit

import "time"

// Timer is a callback registered with Scene.Schedule. It fires on host ticks,
// never concurrently with Update.
type Timer struct {
	callback func()
	interval int // in ticks; 0 fires every tick
	repeat   bool
	elapsed  int
	removed  bool
}

// Schedule registers callback to run after interval has elapsed. An interval of
// zero fires on every Update. When repeat is false the timer removes itself
// after the first call. The returned Timer must be removed by its owner when
// the owner goes away.
func (s *Scene) Schedule(callback func(), interval time.Duration, repeat bool) *Timer {
	ticks := int(interval.Seconds()*float64(s.tps) + 0.5)
	t := &Timer{callback: callback, interval: ticks, repeat: repeat}
	s.timers = append(s.timers, t)
	return t
}

// Remove deregisters the timer. Safe to call more than once and from inside
// the timer's own callback.
func (t *Timer) Remove() {
	t.removed = true
}

// Removed reports whether the timer has been removed or has finished.
func (t *Timer) Removed() bool {
	return t.removed
}

// NumTimers returns the number of live timers.
func (s *Scene) NumTimers() int {
	n := 0
	for _, t := range s.timers {
		if !t.removed {
			n++
		}
	}
	return n
}

func (s *Scene) runTimers() {
	// Timers scheduled during this pass start on the next Update.
	count := len(s.timers)
	for i := 0; i < count; i++ {
		t := s.timers[i]
		if t.removed {
			continue
		}
		t.elapsed++
		if t.elapsed < t.interval {
			continue
		}
		t.elapsed = 0
		t.callback()
		if !t.repeat {
			t.removed = true
		}
	}

	live := s.timers[:0]
	for _, t := range s.timers {
		if !t.removed {
			live = append(live, t)
		}
	}
	clear(s.timers[len(live):])
	s.timers = live
}
