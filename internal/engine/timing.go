package engine

import (
	"fmt"
	"time"
)

// TimingWindow is the number of frames averaged by Timing.
const TimingWindow = 50

// Timing keeps a rolling average of how long frames take to paint.
type Timing struct {
	samples [TimingWindow]time.Duration
}

// NewTiming returns a window seeded with 4ms samples so the average is
// meaningful before it has filled up.
func NewTiming() *Timing {
	t := &Timing{}
	for i := range t.samples {
		t.samples[i] = 4 * time.Millisecond
	}
	return t
}

// Record stores the paint time of a frame.
func (t *Timing) Record(frame int, spent time.Duration) {
	t.samples[frame%TimingWindow] = spent
}

// Average returns the mean over the window, truncated to whole milliseconds.
func (t *Timing) Average() time.Duration {
	var sum time.Duration
	for _, s := range t.samples {
		sum += s.Truncate(time.Millisecond)
	}
	return sum / TimingWindow
}

// Ready reports whether the window has been filled by real samples.
func (t *Timing) Ready(frame int) bool {
	return frame > TimingWindow
}

// Line formats the diagnostic shown under the frame.
func (t *Timing) Line(frame int) string {
	if !t.Ready(frame) {
		return fmt.Sprintf("average time to paint (over %d frames): calculating...", TimingWindow)
	}
	return fmt.Sprintf("average time to paint (over %d frames): %dms",
		TimingWindow, t.Average().Milliseconds())
}
