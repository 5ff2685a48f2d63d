package wizard

import (
	"fmt"
	"strings"

	"bitbucket.org/velvet/chauffeur-hub/internal/booking"
	"bitbucket.org/velvet/chauffeur-hub/internal/quote"
	"bitbucket.org/velvet/chauffeur-hub/internal/schema"
)

// Transition moves the session one step forward or back. It is defined for
// every step and action; moves that are not allowed return an error and the
// unchanged session.
func Transition(s Session, action Action) (Session, error) {
	if !s.Step.Valid() {
		return s, &TransitionError{From: s.Step, Action: action}
	}

	switch action {
	case ActionNext:
		if s.Step == StepConfirmation {
			return s, &TransitionError{From: s.Step, Action: action}
		}
		if err := stepComplete(s); err != nil {
			return s, err
		}
		s.Step++
		return s, nil
	case ActionBack:
		// confirmation is terminal, the booking already exists
		if s.Step == StepDetails || s.Step == StepConfirmation {
			return s, &TransitionError{From: s.Step, Action: action}
		}
		s.Step--
		return s, nil
	}

	return s, &TransitionError{From: s.Step, Action: action}
}

type Update struct {
	Step        Step
	Details     *schema.DirectDetails
	VehicleCode *string
	Payment     *schema.Payment
}

// Apply stores the form data of the current step.
func Apply(s Session, u Update) (Session, error) {
	if u.Step != s.Step {
		return s, fmt.Errorf("%w: session is on %s, update is for %s", ErrStepMismatch, s.Step, u.Step)
	}

	switch s.Step {
	case StepDetails:
		if u.Details == nil {
			return s, missing("details")
		}
		details := *u.Details
		s.Details = &details
		// a new trip invalidates the previous quote and selection
		s.Quote = nil
		s.VehicleCode = ""
	case StepVehicle:
		if u.VehicleCode == nil {
			return s, missing("vehicleCode")
		}
		s.VehicleCode = *u.VehicleCode
	case StepPayment:
		if u.Payment == nil {
			return s, missing("payment")
		}
		payment := *u.Payment
		s.Payment = &payment
	default:
		return s, &TransitionError{From: s.Step, Action: "update"}
	}

	return s, nil
}

func stepComplete(s Session) error {
	invalid := &quote.InvalidRequestError{}

	switch s.Step {
	case StepDetails:
		if s.Details == nil {
			return missing("details")
		}
		d := s.Details
		if strings.TrimSpace(d.Pickup) == "" {
			invalid.Add("details.pickup", "is required")
		}
		if d.Datetime.IsZero() {
			invalid.Add("details.datetime", "is required")
		}
		if d.Passengers < quote.MinPassengers || d.Passengers > quote.MaxPassengers {
			invalid.Add("details.passengers", fmt.Sprintf("must be between %d and %d", quote.MinPassengers, quote.MaxPassengers))
		}
		switch d.Mode {
		case schema.BookingModeNormal:
		case schema.BookingModeHourly:
			if d.PackageCode == nil || *d.PackageCode == "" {
				invalid.Add("details.packageCode", "is required for HOURLY mode")
			}
		default:
			invalid.Add("details.mode", "must be NORMAL or HOURLY")
		}
	case StepVehicle:
		if s.VehicleCode == "" {
			return missing("vehicleCode")
		}
		line, ok := s.SelectedLine()
		if !ok {
			invalid.Add("vehicleCode", "not part of the current quote")
		} else if !line.DirectEligible {
			invalid.Add("vehicleCode", "requires a special booking")
		}
	case StepPayment:
		if s.Payment == nil {
			return missing("payment")
		}
		booking.ValidatePayment(*s.Payment, invalid)
	}

	return invalid.OrNil()
}

func missing(field string) error {
	invalid := &quote.InvalidRequestError{}
	invalid.Add(field, "is required")
	return invalid
}

// bookingParams builds the booking submission from a completed session.
func bookingParams(s Session) schema.BookingRequestParams {
	params := schema.BookingRequestParams{VehicleCode: s.VehicleCode}
	if s.Details != nil {
		params.Details = *s.Details
	}
	if s.Payment != nil {
		params.Payment = *s.Payment
	}
	return params
}
