package slowlog

import (
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// DefaultThreshold is the duration from which a breakpoint is logged as a warning.
const DefaultThreshold = 250 * time.Millisecond

type Logger interface {
	Start(name string)
	Stop(name string) time.Duration
}

type Option func(*slowLogger)

func WithThreshold(threshold time.Duration) Option {
	return func(s *slowLogger) {
		s.threshold = threshold
	}
}

type slowLogger struct {
	log       *zerolog.Logger
	threshold time.Duration
	now       func() time.Time
	timers    map[string]time.Time
	sync.Mutex
}

func (s *slowLogger) Start(name string) {
	s.Lock()
	s.timers[name] = s.now()
	s.Unlock()
}

// Stop ends the named breakpoint. A name that was never started yields zero
// and is not logged.
func (s *slowLogger) Stop(name string) time.Duration {
	s.Lock()
	defer s.Unlock()

	start, ok := s.timers[name]
	if !ok {
		return 0
	}
	delete(s.timers, name)

	duration := s.now().Sub(start)

	event := s.log.Debug()
	if s.threshold > 0 && duration >= s.threshold {
		event = s.log.Warn()
	}

	event.
		Str("label", "slowlog").
		Str("breakpoint_name", name).
		Float64("duration", duration.Seconds()).
		Msg("")

	return duration
}

func CreateLogger(log *zerolog.Logger, opts ...Option) *slowLogger {
	s := &slowLogger{
		log:       log,
		threshold: DefaultThreshold,
		now:       time.Now,
		timers:    make(map[string]time.Time),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}
