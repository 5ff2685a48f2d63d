package booking

import (
	"context"

	"bitbucket.org/velvet/chauffeur-hub/internal/pricing"
	"bitbucket.org/velvet/chauffeur-hub/internal/quote"
	"bitbucket.org/velvet/chauffeur-hub/internal/schema"
	"bitbucket.org/velvet/chauffeur-hub/internal/tools/converting"
	"github.com/rs/zerolog"
)

func (s *service) GetQuote(ctx context.Context, params schema.QuoteRequestParams, logger *zerolog.Logger) (schema.QuoteResponse, error) {
	trip := quote.TripRequest{
		Pickup:      params.Pickup,
		Drop:        converting.Unwrap(params.Drop),
		DateTime:    params.Datetime.Time,
		Passengers:  params.Passengers,
		Luggage:     params.LuggageCount,
		NeedCarrier: params.NeedCarrier,
		Mode:        pricing.Mode(params.Mode),
		PackageCode: converting.Unwrap(params.PackageCode),
	}

	response, err := s.engine.Compute(trip, s.now())
	if err != nil {
		return schema.QuoteResponse{}, err
	}

	eligible := 0
	for _, line := range response.Vehicles {
		if line.DirectEligible {
			eligible++
		}
	}

	logger.Debug().
		Str("mode", string(trip.Mode)).
		Int("vehicles", len(response.Vehicles)).
		Int("directEligible", eligible).
		Msg("Quote computed")

	return toQuoteResponse(response), nil
}

func tripFromDetails(details schema.DirectDetails) quote.TripRequest {
	return quote.TripRequest{
		Pickup:      details.Pickup,
		Drop:        converting.Unwrap(details.Drop),
		DateTime:    details.Datetime.Time,
		Passengers:  details.Passengers,
		Luggage:     details.Luggage,
		NeedCarrier: details.NeedCarrier,
		Mode:        pricing.Mode(details.Mode),
		PackageCode: converting.Unwrap(details.PackageCode),
	}
}

func toQuoteResponse(response quote.Response) schema.QuoteResponse {
	lines := make([]schema.QuoteLine, 0, len(response.Vehicles))
	for _, line := range response.Vehicles {
		lines = append(lines, schema.QuoteLine{
			VehicleCode:    line.VehicleCode,
			Name:           line.DisplayName,
			Price:          line.Price,
			CarrierFee:     line.CarrierFee,
			DirectEligible: line.DirectEligible,
			DisabledReason: line.DisabledReason,
		})
	}

	return schema.QuoteResponse{
		Vehicles:      lines,
		BreakdownNote: response.BreakdownNote,
		TotalDistance: response.TotalDistance,
		CacheTtlSec:   response.CacheTTLSec,
		Currency:      response.Currency,
	}
}
