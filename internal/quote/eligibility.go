package quote

import (
	"fmt"
	"time"

	"bitbucket.org/velvet/chauffeur-hub/internal/fleet"
)

const (
	ReasonCapacityExceeded   = "capacity exceeded"
	ReasonCarrierUnsupported = "carrier unsupported"
)

type Decision struct {
	Eligible bool
	Reason   string
}

// Policy decides whether a vehicle can be booked directly. The first failing
// rule sets the reason: lead time, then capacity, then carrier.
type Policy struct{}

func (Policy) Evaluate(v fleet.VehicleSpec, req TripRequest, now time.Time) Decision {
	minLead := time.Duration(v.MinLeadHours) * time.Hour
	if req.DateTime.Sub(now) < minLead {
		return Decision{Reason: LeadTimeReason(v.MinLeadHours)}
	}

	if req.Passengers > v.MaxPassengers || req.Luggage > v.MaxLuggage {
		return Decision{Reason: ReasonCapacityExceeded}
	}

	if req.NeedCarrier && !v.SupportsCarrier {
		return Decision{Reason: ReasonCarrierUnsupported}
	}

	return Decision{Eligible: true}
}

func LeadTimeReason(hours int) string {
	return fmt.Sprintf("%d hrs prior", hours)
}
