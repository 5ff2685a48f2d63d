package booking

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"bitbucket.org/velvet/chauffeur-hub/internal/quote"
	"bitbucket.org/velvet/chauffeur-hub/internal/schema"
	"github.com/rs/zerolog"
)

const (
	PreferenceAnyLuxury = "ANY_LUXURY"
	PreferenceAnyUltra  = "ANY_ULTRA"
)

var phonePattern = regexp.MustCompile(`^\+91[6-9]\d{9}$`)

func (s *service) CreateSpecialBooking(ctx context.Context, params schema.SpecialBookingRequestParams, logger *zerolog.Logger) (schema.ReferenceResponse, error) {
	invalid := &quote.InvalidRequestError{}

	validateContact(params.Name, params.Phone, invalid)
	if strings.TrimSpace(params.City) == "" {
		invalid.Add("city", "is required")
	}
	if params.Datetime.IsZero() {
		invalid.Add("datetime", "is required")
	}
	if params.Passengers < quote.MinPassengers || params.Passengers > quote.MaxPassengers {
		invalid.Add("passengers", fmt.Sprintf("must be between %d and %d", quote.MinPassengers, quote.MaxPassengers))
	}
	if params.Luggage < quote.MinLuggage || params.Luggage > quote.MaxLuggage {
		invalid.Add("luggage", fmt.Sprintf("must be between %d and %d", quote.MinLuggage, quote.MaxLuggage))
	}

	known := s.fleetPreferences()
	for _, preference := range params.FleetPreferences {
		if !known[preference] {
			invalid.Add("fleetPreferences", fmt.Sprintf("unknown preference %q", preference))
		}
	}

	if err := invalid.OrNil(); err != nil {
		return schema.ReferenceResponse{}, err
	}

	response := schema.ReferenceResponse{
		RefId: reference(specialPrefix, s.now()),
	}

	logger.Info().
		Str("refId", response.RefId).
		Str("city", params.City).
		Strs("fleetPreferences", params.FleetPreferences).
		Msg("Special booking request received")

	return response, nil
}

func (s *service) CreateMembership(ctx context.Context, params schema.MembershipRequestParams, logger *zerolog.Logger) (schema.ReferenceResponse, error) {
	invalid := &quote.InvalidRequestError{}

	validateContact(params.Name, params.Phone, invalid)
	if !params.Plan.Valid() {
		invalid.Add("plan", "must be one of 30_RIDES, 60_RIDES, 100_RIDES")
	}

	if err := invalid.OrNil(); err != nil {
		return schema.ReferenceResponse{}, err
	}

	response := schema.ReferenceResponse{
		RefId: reference(membershipPrefix, s.now()),
	}

	logger.Info().
		Str("refId", response.RefId).
		Str("plan", string(params.Plan)).
		Msg("Membership request received")

	return response, nil
}

// fleetPreferences are the vehicles only bookable through the concierge plus
// the two catch-all choices.
func (s *service) fleetPreferences() map[string]bool {
	known := map[string]bool{
		PreferenceAnyLuxury: true,
		PreferenceAnyUltra:  true,
	}
	for _, v := range s.catalog.List() {
		if !v.DirectEligibleDefault {
			known[v.Code] = true
		}
	}
	return known
}

func validateContact(name, phone string, invalid *quote.InvalidRequestError) {
	if strings.TrimSpace(name) == "" {
		invalid.Add("name", "is required")
	}
	if !phonePattern.MatchString(phone) {
		invalid.Add("phone", "invalid phone number")
	}
}
