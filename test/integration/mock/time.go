//go:build integration

package mock

import "time"

// Time is a clock pinned to a chosen instant that keeps ticking from there.
type Time struct {
	currentStartTime time.Time
	updatedAt        time.Time
}

func NewTime() *Time {
	return &Time{
		currentStartTime: time.Now(),
		updatedAt:        time.Now(),
	}
}

func (t *Time) SetCurrentTime(currentTime time.Time) {
	t.currentStartTime = currentTime
	t.updatedAt = time.Now()
}

func (t *Time) Now() time.Time {
	return t.currentStartTime.Add(time.Since(t.updatedAt))
}
