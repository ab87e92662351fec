package timer

import "github.com/okian/huntersfinds/pkg/logger"

// SchedulerOption applies a configuration option to the Scheduler.
type SchedulerOption func(*Scheduler)

// WithLogger sets the logger used for dropped events.
func WithLogger(l logger.Logger) SchedulerOption {
	return func(s *Scheduler) {
		if l != nil {
			s.logger = l
		}
	}
}
