// Package workers runs the agent's sync job in the foreground, either once
// or repeatedly on a wall-clock period.
//
// A [Repeater] aligns every run after the first to the next multiple of its
// period counted from local midnight, so agents configured with the same
// period pull at the same times of day.
package workers

import "context"

// Job is one unit of work run by a [Repeater], e.g. one full sync cycle.
//
// Implementations block until the work is done and return the first error;
// an error stops the repeater.
type Job interface {
	RunCycle(ctx context.Context) error
}

// JobFunc adapts an ordinary function to [Job].
type JobFunc func(ctx context.Context) error

// RunCycle implements [Job].
func (f JobFunc) RunCycle(ctx context.Context) error {
	return f(ctx)
}
