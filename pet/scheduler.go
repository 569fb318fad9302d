package pet

import "math"

const (
	// FPS is the logical animation rate.
	FPS           = 24
	// ReferenceTPS is the host rate the tick counts of Update are measured in.
	ReferenceTPS  = 60
	ticksPerFrame = float64(ReferenceTPS) / FPS
)

// Scheduler turns reference ticks into a logical frame counter running at FPS.
// Hosts running at another rate advance it by fractional ticks.
type Scheduler struct {
	totalTimeRunning float64
	frameCount       int
}

// Advance adds ticks to the running time and reports whether the frame
// counter moved. Negative ticks are ignored so the counter never runs backward.
func (s *Scheduler) Advance(ticks float64) bool {
	if ticks > 0 {
		s.totalTimeRunning += ticks
	}
	fc := int(math.Round(s.totalTimeRunning / ticksPerFrame))
	if fc == s.frameCount {
		return false
	}
	s.frameCount = fc
	return true
}

// FrameCount returns the current logical frame.
func (s *Scheduler) FrameCount() int {
	return s.frameCount
}

// TotalTimeRunning returns the accumulated reference ticks.
func (s *Scheduler) TotalTimeRunning() float64 {
	return s.totalTimeRunning
}

// TickStep is the number of reference ticks one host tick is worth at tps.
// A non-positive tps is treated as ReferenceTPS.
func TickStep(tps int) float64 {
	if tps <= 0 {
		return 1
	}
	return float64(ReferenceTPS) / float64(tps)
}
