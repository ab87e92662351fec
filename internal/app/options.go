package service

import (
	"time"

	"github.com/okian/huntersfinds/internal/adapters/repository"
	"github.com/okian/huntersfinds/internal/adapters/timer"
	"github.com/okian/huntersfinds/internal/domain/savedset"
	"github.com/okian/huntersfinds/internal/domain/scoring"
	"github.com/okian/huntersfinds/pkg/logger"
)

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithCatalog sets the rated catalog.
func WithCatalog(c repository.Catalog) Option {
	return func(s *Service) {
		if c != nil {
			s.catalog = c
		}
	}
}

// WithEngine sets the score engine.
func WithEngine(e *scoring.Engine) Option {
	return func(s *Service) {
		if e != nil {
			s.engine = e
		}
	}
}

// WithSavedSet sets the saved item store.
func WithSavedSet(set savedset.Set) Option {
	return func(s *Service) {
		if set != nil {
			s.saved = set
		}
	}
}

// WithClock sets the clock driving close delays and timestamps.
func WithClock(c timer.Clock) Option {
	return func(s *Service) {
		if c != nil {
			s.clock = c
		}
	}
}

// WithCloseDelay sets how long a closing modal keeps its content.
func WithCloseDelay(d time.Duration) Option {
	return func(s *Service) {
		if d >= 0 {
			s.closeDelay = d
		}
	}
}

// WithStackLimit caps nested navigation depth.
func WithStackLimit(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.stackLimit = n
		}
	}
}

// WithRecordSubmissions makes submitted dishes join the catalog.
func WithRecordSubmissions(record bool) Option {
	return func(s *Service) {
		s.recordSubmissions = record
	}
}

// WithQueueSize sets the capacity of the event queue used after Start.
func WithQueueSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.queueSize = size
		}
	}
}
