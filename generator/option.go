package generator

import (
	"github.com/viant/afs"
	"github.com/viant/camuuid/internal/clock"
)

// Option customises a Service.
type Option func(s *Service)

// WithFs sets the file system used to read and write record files.
func WithFs(fs afs.Service) Option {
	return func(s *Service) {
		s.fs = fs
	}
}

// WithClock sets the time source dating new record files.
func WithClock(now clock.Func) Option {
	return func(s *Service) {
		s.now = now
	}
}

// WithLocalTime dates record files in local time instead of UTC.
func WithLocalTime(local bool) Option {
	return func(s *Service) {
		s.localTime = local
	}
}

// WithIDFunc replaces the identifier source.
func WithIDFunc(fn func() string) Option {
	return func(s *Service) {
		s.newID = fn
	}
}

// WithListener sets the progress listener.
func WithListener(listener Listener) Option {
	return func(s *Service) {
		s.listener = listener
	}
}
