package interfaces

import (
	"context"

	"bitbucket.org/velvet/chauffeur-hub/internal/booking/wizard"
	"bitbucket.org/velvet/chauffeur-hub/internal/schema"
	"github.com/rs/zerolog"
)

type WithGetQuote interface {
	GetQuote(context.Context, schema.QuoteRequestParams, *zerolog.Logger) (schema.QuoteResponse, error)
}

type WithListVehicles interface {
	ListVehicles(context.Context, schema.VehiclesRequestParams, *zerolog.Logger) (schema.VehiclesResponse, error)
}

type WithListPackages interface {
	ListPackages(context.Context, *zerolog.Logger) (schema.PackagesResponse, error)
}

type WithCreateBooking interface {
	CreateBooking(context.Context, schema.BookingRequestParams, *zerolog.Logger) (schema.BookingResponse, error)
}

type WithCreateSpecialBooking interface {
	CreateSpecialBooking(context.Context, schema.SpecialBookingRequestParams, *zerolog.Logger) (schema.ReferenceResponse, error)
}

type WithCreateMembership interface {
	CreateMembership(context.Context, schema.MembershipRequestParams, *zerolog.Logger) (schema.ReferenceResponse, error)
}

type Reservations interface {
	WithGetQuote
	WithListVehicles
	WithListPackages
	WithCreateBooking
	WithCreateSpecialBooking
	WithCreateMembership
}

type WithBookingWizard interface {
	Start(context.Context, *zerolog.Logger) (wizard.Response, error)
	Update(context.Context, schema.SessionUpdateParams, *zerolog.Logger) (wizard.Response, error)
	Next(context.Context, schema.SessionTokenParams, *zerolog.Logger) (wizard.Response, error)
	Back(context.Context, schema.SessionTokenParams, *zerolog.Logger) (wizard.Response, error)
	Receipt(context.Context, schema.SessionTokenParams, *zerolog.Logger) ([]byte, string, error)
}
