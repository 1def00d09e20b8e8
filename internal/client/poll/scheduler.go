package poll

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
)

// Scheduler runs fn every d until the returned stop func is called.
type Scheduler interface {
	Every(d time.Duration, fn func()) (stop func(), err error)
}

// CronScheduler schedules with robfig/cron. Intervals under a second are
// rounded up to one second by cron.
type CronScheduler struct{}

func (CronScheduler) Every(d time.Duration, fn func()) (func(), error) {
	c := cron.New(cron.WithSeconds())
	if _, err := c.AddFunc(fmt.Sprintf("@every %s", d), fn); err != nil {
		return nil, fmt.Errorf("schedule every %s: %w", d, err)
	}
	c.Start()
	return func() { c.Stop() }, nil
}

// Manual never ticks: a controller using it fetches only on Mount and
// Refresh.
type Manual struct{}

func (Manual) Every(time.Duration, func()) (func(), error) {
	return func() {}, nil
}
