package reminder

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"

	"niseyomi/internal/log"
)

// Scheduler runs task once at the given time. Implementations must accept
// calls while earlier jobs are pending or firing.
type Scheduler interface {
	ScheduleOnce(name string, at time.Time, task func()) error
}

// GocronScheduler is the production Scheduler.
type GocronScheduler struct {
	cron gocron.Scheduler
}

func NewGocronScheduler() (*GocronScheduler, error) {
	s, err := gocron.NewScheduler(gocron.WithLogger(log.Logger()))
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}
	return &GocronScheduler{cron: s}, nil
}

func (g *GocronScheduler) Start() {
	g.cron.Start()
}

func (g *GocronScheduler) Shutdown() error {
	return g.cron.Shutdown()
}

// Pending is the number of jobs that have not fired yet.
func (g *GocronScheduler) Pending() int {
	return len(g.cron.Jobs())
}

func (g *GocronScheduler) ScheduleOnce(name string, at time.Time, task func()) error {
	_, err := g.cron.NewJob(
		gocron.OneTimeJob(gocron.OneTimeJobStartDateTime(at)),
		gocron.NewTask(task),
		gocron.WithName(name),
	)
	if errors.Is(err, gocron.ErrOneTimeJobStartDateTimePast) {
		return fmt.Errorf("%w: %s", ErrInPast, at.Format(time.RFC3339))
	}
	if err != nil {
		return fmt.Errorf("failed to schedule %s: %w", name, err)
	}
	return nil
}
