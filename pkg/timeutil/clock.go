package timeutil

import (
	"context"
	"time"
)

// ClockLayout is the 24 hour HH:MM display of the dashboard clock.
const ClockLayout = "15:04"

// FormatClock renders t as HH:MM.
func FormatClock(t time.Time) string {
	return t.Format(ClockLayout)
}

// Ticker calls fn with the current time right away and then every interval
// until ctx is done. It blocks; run it in a goroutine when needed.
func Ticker(ctx context.Context, every time.Duration, fn func(time.Time)) error {
	if every <= 0 {
		every = time.Minute
	}
	fn(time.Now())
	t := time.NewTicker(every)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-t.C:
			fn(now)
		}
	}
}

// UntilNextMinute is the wait before the minute rolls over, so a clock
// redrawn every minute can align to the wall clock.
func UntilNextMinute(now time.Time) time.Duration {
	return now.Truncate(time.Minute).Add(time.Minute).Sub(now)
}
