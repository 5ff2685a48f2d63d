package booking

import (
	"time"

	"bitbucket.org/velvet/chauffeur-hub/internal/fleet"
	"bitbucket.org/velvet/chauffeur-hub/internal/pricing"
	"bitbucket.org/velvet/chauffeur-hub/internal/quote"
)

type Option func(*service)

// WithClock replaces the wall clock used for lead times and identifiers.
func WithClock(now func() time.Time) Option {
	return func(s *service) {
		s.now = now
	}
}

type service struct {
	engine  *quote.Engine
	catalog *fleet.Catalog
	table   *pricing.Table
	now     func() time.Time
}

func New(engine *quote.Engine, opts ...Option) *service {
	s := &service{
		engine:  engine,
		catalog: engine.Catalog(),
		table:   engine.Table(),
		now:     time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}
