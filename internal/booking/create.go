package booking

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"bitbucket.org/velvet/chauffeur-hub/internal/quote"
	"bitbucket.org/velvet/chauffeur-hub/internal/schema"
	"bitbucket.org/velvet/chauffeur-hub/internal/tools/converting"
	"github.com/rs/zerolog"
)

var gstinPattern = regexp.MustCompile(`^[0-9]{2}[A-Z]{5}[0-9]{4}[A-Z]{1}[1-9A-Z]{1}Z[0-9A-Z]{1}$`)

// CreateBooking reprices the trip and confirms it when the chosen vehicle can
// be booked directly. The amount returned is what the caller must charge.
func (s *service) CreateBooking(ctx context.Context, params schema.BookingRequestParams, logger *zerolog.Logger) (schema.BookingResponse, error) {
	now := s.now()
	trip := tripFromDetails(params.Details)

	invalid := &quote.InvalidRequestError{}
	if err := trip.Validate(s.table); err != nil {
		var tripErr *quote.InvalidRequestError
		if errors.As(err, &tripErr) {
			for _, v := range tripErr.Violations {
				invalid.Add(detailsField(v.Field), v.Message)
			}
		}
	}
	ValidatePayment(params.Payment, invalid)

	if err := invalid.OrNil(); err != nil {
		return schema.BookingResponse{}, err
	}

	if _, err := s.catalog.Get(params.VehicleCode); err != nil {
		return schema.BookingResponse{}, err
	}

	quoted, err := s.engine.Compute(trip, now)
	if err != nil {
		return schema.BookingResponse{}, err
	}

	line, _ := quoted.Line(params.VehicleCode)
	if !line.DirectEligible {
		return schema.BookingResponse{}, &SpecialBookingRequiredError{
			VehicleCode: line.VehicleCode,
			Reason:      converting.Unwrap(line.DisabledReason),
		}
	}

	response := schema.BookingResponse{
		BookingId:  reference(bookingPrefix, now),
		Amount:     line.Total(),
		CarrierFee: line.CarrierFee,
		Currency:   quoted.Currency,
	}

	if params.Payment.Method != schema.PaymentMethodCash {
		response.GatewayOrderId = converting.PointerToValue(gatewayOrderID(now))
	}

	logger.Info().
		Str("bookingId", response.BookingId).
		Str("vehicleCode", line.VehicleCode).
		Str("paymentMethod", string(params.Payment.Method)).
		Int64("amount", response.Amount).
		Msg("Booking created")

	return response, nil
}

// ValidatePayment appends the payment step violations to invalid.
func ValidatePayment(payment schema.Payment, invalid *quote.InvalidRequestError) {
	if !payment.Method.Valid() {
		invalid.Add("payment.method", "must be one of CARD, UPI, WALLET, CASH")
	}

	if payment.Method == schema.PaymentMethodUPI && strings.TrimSpace(converting.Unwrap(payment.UpiId)) == "" {
		invalid.Add("payment.upiId", "is required for UPI payments")
	}

	if payment.GstRequired {
		if strings.TrimSpace(converting.Unwrap(payment.CompanyName)) == "" {
			invalid.Add("payment.companyName", "is required when GST invoice is requested")
		}
		if !gstinPattern.MatchString(converting.Unwrap(payment.Gstin)) {
			invalid.Add("payment.gstin", "invalid GSTIN format")
		}
	} else if payment.Gstin != nil && *payment.Gstin != "" && !gstinPattern.MatchString(*payment.Gstin) {
		invalid.Add("payment.gstin", "invalid GSTIN format")
	}

	if !payment.AcceptTerms {
		invalid.Add("payment.acceptTerms", "please accept terms and conditions")
	}
}

func detailsField(field string) string {
	if field == "luggageCount" {
		field = "luggage"
	}
	return "details." + field
}
