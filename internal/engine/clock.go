package engine

import "time"

// Clock abstracts time so the frame loop can be driven by tests.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

type systemClock struct{}

// SystemClock returns a Clock backed by the time package.
func SystemClock() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now()
}

func (systemClock) Sleep(d time.Duration) {
	time.Sleep(d)
}

// remaining returns how long to sleep so a frame lasts at least period.
// Overruns are not an error: the next frame simply starts right away.
func remaining(period, spent time.Duration) time.Duration {
	if spent >= period {
		return 0
	}
	return period - spent
}
