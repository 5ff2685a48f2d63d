package schema

import (
	openapi_types "github.com/oapi-codegen/runtime/types"
)

type MembershipPlan string

const (
	MembershipPlan30Rides  MembershipPlan = "30_RIDES"
	MembershipPlan60Rides  MembershipPlan = "60_RIDES"
	MembershipPlan100Rides MembershipPlan = "100_RIDES"
)

func (p MembershipPlan) Valid() bool {
	switch p {
	case MembershipPlan30Rides, MembershipPlan60Rides, MembershipPlan100Rides:
		return true
	}
	return false
}

type SpecialBookingRequestParams struct {
	Name             string               `json:"name"`
	Phone            string               `json:"phone"`
	Email            *openapi_types.Email `json:"email,omitempty"`
	City             string               `json:"city"`
	Datetime         DateTime             `json:"datetime"`
	Passengers       int                  `json:"passengers"`
	Luggage          int                  `json:"luggage"`
	NeedCarrier      bool                 `json:"needCarrier"`
	FleetPreferences []string             `json:"fleetPreferences"`
	Occasion         *string              `json:"occasion,omitempty"`
	Notes            *string              `json:"notes,omitempty"`
	BudgetRange      *string              `json:"budgetRange,omitempty"`
}

type MembershipRequestParams struct {
	Name          string               `json:"name"`
	Phone         string               `json:"phone"`
	Email         *openapi_types.Email `json:"email,omitempty"`
	City          *string              `json:"city,omitempty"`
	Plan          MembershipPlan       `json:"plan"`
	RoutineRoutes *string              `json:"routineRoutes,omitempty"`
	RoutineTimes  *string              `json:"routineTimes,omitempty"`
}

type ReferenceResponse struct {
	RefId string `json:"refId"`
}
