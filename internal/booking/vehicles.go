package booking

import (
	"context"

	"bitbucket.org/velvet/chauffeur-hub/internal/fleet"
	"bitbucket.org/velvet/chauffeur-hub/internal/quote"
	"bitbucket.org/velvet/chauffeur-hub/internal/schema"
	"bitbucket.org/velvet/chauffeur-hub/internal/tools/converting"
	"github.com/rs/zerolog"
)

func (s *service) ListVehicles(ctx context.Context, params schema.VehiclesRequestParams, logger *zerolog.Logger) (schema.VehiclesResponse, error) {
	filter := fleet.Filter{
		Category:    fleet.Category(converting.Unwrap(params.Category)),
		DirectOnly:  params.DirectOnly,
		Passengers:  params.Passengers,
		Luggage:     params.Luggage,
		NeedCarrier: params.NeedCarrier,
	}

	if filter.Category != "" && !filter.Category.Valid() {
		invalid := &quote.InvalidRequestError{}
		invalid.Add("category", "must be one of LUXURY, ULTRA_LUXURY, LUXURY_TRAVEL")
		return schema.VehiclesResponse{}, invalid
	}

	vehicles := s.catalog.Filter(filter)
	response := schema.VehiclesResponse{
		Vehicles: make([]schema.Vehicle, 0, len(vehicles)),
	}

	for _, v := range vehicles {
		response.Vehicles = append(response.Vehicles, schema.Vehicle{
			Code:            v.Code,
			DisplayName:     v.DisplayName,
			Category:        string(v.Category),
			MaxPassengers:   v.MaxPassengers,
			MaxLuggage:      v.MaxLuggage,
			SupportsCarrier: v.SupportsCarrier,
			MinLeadHours:    v.MinLeadHours,
			DirectEligible:  v.DirectEligibleDefault,
			Features:        v.Features,
		})
	}

	return response, nil
}

func (s *service) ListPackages(ctx context.Context, logger *zerolog.Logger) (schema.PackagesResponse, error) {
	packages := s.table.Packages()
	response := schema.PackagesResponse{
		Packages:     make([]schema.Package, 0, len(packages)),
		ExtraPerKm:   s.table.ExtraPerKm(),
		ExtraPerHour: s.table.ExtraPerHour(),
		AccessoryFee: s.table.AccessoryFee(),
		Currency:     s.table.Currency(),
	}

	for _, p := range packages {
		response.Packages = append(response.Packages, schema.Package{
			Code:          p.Code,
			Label:         p.Label,
			IncludedHours: p.IncludedHours,
			IncludedKm:    p.IncludedKm,
		})
	}

	return response, nil
}
