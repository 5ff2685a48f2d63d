package quote

import (
	"fmt"
	"strings"
	"time"

	"bitbucket.org/velvet/chauffeur-hub/internal/pricing"
)

const (
	MinPassengers = 1
	MaxPassengers = 13
	MinLuggage    = 0
	MaxLuggage    = 20
)

type TripRequest struct {
	Pickup      string
	Drop        string
	DateTime    time.Time
	Passengers  int
	Luggage     int
	NeedCarrier bool
	Mode        pricing.Mode
	// PackageCode is ignored in NORMAL mode.
	PackageCode string
}

// Validate checks the request shape against the bounds and the package catalog.
func (r TripRequest) Validate(table *pricing.Table) error {
	invalid := &InvalidRequestError{}

	if strings.TrimSpace(r.Pickup) == "" {
		invalid.Add("pickup", "is required")
	}
	if r.DateTime.IsZero() {
		invalid.Add("datetime", "is required")
	}
	if r.Passengers < MinPassengers || r.Passengers > MaxPassengers {
		invalid.Add("passengers", fmt.Sprintf("must be between %d and %d", MinPassengers, MaxPassengers))
	}
	if r.Luggage < MinLuggage || r.Luggage > MaxLuggage {
		invalid.Add("luggageCount", fmt.Sprintf("must be between %d and %d", MinLuggage, MaxLuggage))
	}

	switch r.Mode {
	case pricing.ModeNormal:
	case pricing.ModeHourly:
		if r.PackageCode == "" {
			invalid.Add("packageCode", "is required for HOURLY mode")
		} else if _, ok := table.Package(r.PackageCode); !ok {
			invalid.Add("packageCode", fmt.Sprintf("unknown package %q", r.PackageCode))
		}
	default:
		invalid.Add("mode", "must be NORMAL or HOURLY")
	}

	return invalid.OrNil()
}
