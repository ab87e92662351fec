package savedset

import "time"

// Option applies a configuration option to the MemorySet.
type Option func(*MemorySet)

// WithClock sets the time source used for SavedAt.
func WithClock(now func() time.Time) Option {
	return func(s *MemorySet) {
		if now != nil {
			s.now = now
		}
	}
}
