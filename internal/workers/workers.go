package workers

import (
	"context"
	"time"

	"github.com/Triva-Elevate/triva-datapublishagent/internal/logger"
)

// MinRepeat is the shortest accepted repeat period in minutes.
const MinRepeat = 15

// Repeater runs a [Job] once, or every period minutes until its context is
// cancelled.
type Repeater struct {
	job    Job
	period int

	now    func() time.Time
	sleep  func(ctx context.Context, d time.Duration) error
	logger *logger.Logger
}

// RepeaterOption customises a Repeater.
type RepeaterOption func(*Repeater)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) RepeaterOption {
	return func(r *Repeater) {
		r.now = now
	}
}

// WithSleep replaces the context-aware pause between runs.
func WithSleep(sleep func(ctx context.Context, d time.Duration) error) RepeaterOption {
	return func(r *Repeater) {
		r.sleep = sleep
	}
}

// NewRepeater constructs a Repeater. A period of 0 or less runs job once;
// a positive period below MinRepeat is raised to MinRepeat.
func NewRepeater(job Job, period int, log *logger.Logger, opts ...RepeaterOption) *Repeater {
	if period < 0 {
		period = 0
	}
	if period > 0 && period < MinRepeat {
		log.Warn().Int("requested", period).Int("used", MinRepeat).Msg("repeat period raised to minimum")
		period = MinRepeat
	}

	r := &Repeater{
		job:    job,
		period: period,
		now:    time.Now,
		sleep:  sleepContext,
		logger: log,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Period returns the effective repeat period in minutes; 0 means run once.
func (r *Repeater) Period() int {
	return r.period
}

// Run runs the job immediately and then, when a period is set, again at
// every period boundary. It returns the first job error. Cancelling ctx
// while paused ends Run with nil.
func (r *Repeater) Run(ctx context.Context) error {
	if r.period > 0 {
		r.logger.Info().Msgf("repeat update every %d minutes", r.period)
	}

	for {
		if err := r.job.RunCycle(ctx); err != nil {
			return err
		}
		if r.period == 0 {
			return nil
		}

		togo := MinutesToNext(r.now(), r.period)
		r.logger.Info().Msgf("pausing %d minutes", togo)
		if err := r.sleep(ctx, time.Duration(togo)*time.Minute); err != nil {
			r.logger.Info().Msg("repeat stopped")
			return nil
		}
	}
}

// MinutesToNext returns the whole minutes from now to the next multiple of
// period minutes since local midnight. Exactly on a boundary it returns a
// full period.
func MinutesToNext(now time.Time, period int) int {
	minuteOfDay := now.Hour()*60 + now.Minute()
	return period - minuteOfDay%period
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
