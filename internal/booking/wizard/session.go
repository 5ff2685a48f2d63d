package wizard

import (
	"errors"
	"fmt"

	"bitbucket.org/velvet/chauffeur-hub/internal/schema"
)

var (
	ErrInvalidTransition = errors.New("invalid wizard transition")
	ErrStepMismatch      = errors.New("session is on a different step")
	ErrInvalidSession    = errors.New("invalid or expired session")
	ErrNotConfirmed      = errors.New("booking is not confirmed")
)

type Step int

const (
	StepDetails Step = iota
	StepVehicle
	StepPayment
	StepConfirmation
)

var stepNames = [...]string{"details", "vehicle", "payment", "confirmation"}

func (s Step) Valid() bool {
	return s >= StepDetails && s <= StepConfirmation
}

func (s Step) String() string {
	if !s.Valid() {
		return fmt.Sprintf("step(%d)", int(s))
	}
	return stepNames[s]
}

func (s Step) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("unknown step %d", int(s))
	}
	return []byte(s.String()), nil
}

func (s *Step) UnmarshalText(text []byte) error {
	for i, name := range stepNames {
		if name == string(text) {
			*s = Step(i)
			return nil
		}
	}
	return fmt.Errorf("unknown step %q", text)
}

type Action string

const (
	ActionNext Action = "next"
	ActionBack Action = "back"
)

type TransitionError struct {
	From   Step
	Action Action
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%s: %s from %s", ErrInvalidTransition, e.Action, e.From)
}

func (e *TransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// Session is everything the wizard knows about one reservation attempt. It is
// a plain value: steps produce a new session instead of mutating shared state.
type Session struct {
	ID          string                  `json:"id"`
	Step        Step                    `json:"step"`
	Details     *schema.DirectDetails   `json:"details,omitempty"`
	VehicleCode string                  `json:"vehicleCode,omitempty"`
	Payment     *schema.Payment         `json:"payment,omitempty"`
	Quote       *schema.QuoteResponse   `json:"quote,omitempty"`
	Booking     *schema.BookingResponse `json:"booking,omitempty"`
}

func NewSession(id string) Session {
	return Session{ID: id, Step: StepDetails}
}

// SelectedLine is the quote line of the chosen vehicle.
func (s Session) SelectedLine() (schema.QuoteLine, bool) {
	if s.Quote == nil || s.VehicleCode == "" {
		return schema.QuoteLine{}, false
	}
	for _, line := range s.Quote.Vehicles {
		if line.VehicleCode == s.VehicleCode {
			return line, true
		}
	}
	return schema.QuoteLine{}, false
}

// TotalPrice is the selected fare plus the carrier fee when one applies.
func TotalPrice(s Session) (int64, bool) {
	line, ok := s.SelectedLine()
	if !ok {
		return 0, false
	}

	total := line.Price
	if line.CarrierFee != nil {
		total += *line.CarrierFee
	}
	return total, true
}
