package wizard_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"bitbucket.org/velvet/chauffeur-hub/internal/booking"
	"bitbucket.org/velvet/chauffeur-hub/internal/booking/wizard"
	"bitbucket.org/velvet/chauffeur-hub/internal/fleet"
	"bitbucket.org/velvet/chauffeur-hub/internal/pricing"
	"bitbucket.org/velvet/chauffeur-hub/internal/quote"
	"bitbucket.org/velvet/chauffeur-hub/internal/schema"
	"bitbucket.org/velvet/chauffeur-hub/internal/tools/converting"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlow(t *testing.T) *wizard.Flow {
	catalog, err := fleet.DefaultCatalog()
	require.NoError(t, err)

	service := booking.New(quote.NewEngine(catalog, pricing.DefaultTable()))
	return wizard.NewFlow(service, service, wizard.NewCodec([]byte("flow-secret"), time.Hour))
}

func TestFlowHappyPath(t *testing.T) {
	flow := newFlow(t)
	logger := zerolog.Nop()
	ctx := context.Background()

	started, err := flow.Start(ctx, &logger)
	require.NoError(t, err)
	assert.Equal(t, wizard.StepDetails, started.Session.Step)
	assert.NotEmpty(t, started.Session.ID)

	updated, err := flow.Update(ctx, schema.SessionUpdateParams{
		Token: started.Token,
		Step:  "details",
		Details: &schema.DirectDetails{
			Pickup:      "Worli, Mumbai",
			Drop:        converting.PointerToValue("Mumbai Airport T2"),
			Datetime:    schema.DateTime{Time: time.Now().Add(6 * time.Hour)},
			Passengers:  3,
			Luggage:     2,
			NeedCarrier: true,
			Mode:        schema.BookingModeNormal,
		},
	}, &logger)
	require.NoError(t, err)

	quoted, err := flow.Next(ctx, schema.SessionTokenParams{Token: updated.Token}, &logger)
	require.NoError(t, err)
	assert.Equal(t, wizard.StepVehicle, quoted.Session.Step)
	require.NotNil(t, quoted.Session.Quote)
	assert.Len(t, quoted.Session.Quote.Vehicles, 11)

	_, err = flow.Update(ctx, schema.SessionUpdateParams{
		Token:   quoted.Token,
		Step:    "payment",
		Payment: &schema.Payment{Method: schema.PaymentMethodCard},
	}, &logger)
	assert.True(t, errors.Is(err, wizard.ErrStepMismatch))

	selected, err := flow.Update(ctx, schema.SessionUpdateParams{
		Token:       quoted.Token,
		Step:        "vehicle",
		VehicleCode: converting.PointerToValue("BMW_7"),
	}, &logger)
	require.NoError(t, err)
	require.NotNil(t, selected.TotalPrice)
	assert.Equal(t, int64(350000+50000), *selected.TotalPrice)

	atPayment, err := flow.Next(ctx, schema.SessionTokenParams{Token: selected.Token}, &logger)
	require.NoError(t, err)

	_, _, err = flow.Receipt(ctx, schema.SessionTokenParams{Token: atPayment.Token}, &logger)
	assert.True(t, errors.Is(err, wizard.ErrNotConfirmed))

	paid, err := flow.Update(ctx, schema.SessionUpdateParams{
		Token:   atPayment.Token,
		Step:    "payment",
		Payment: &schema.Payment{Method: schema.PaymentMethodUPI, UpiId: converting.PointerToValue("guest@okaxis"), AcceptTerms: true},
	}, &logger)
	require.NoError(t, err)

	confirmed, err := flow.Next(ctx, schema.SessionTokenParams{Token: paid.Token}, &logger)
	require.NoError(t, err)
	assert.Equal(t, wizard.StepConfirmation, confirmed.Session.Step)
	require.NotNil(t, confirmed.Session.Booking)
	assert.Equal(t, int64(400000), confirmed.Session.Booking.Amount)
	assert.NotNil(t, confirmed.Session.Booking.GatewayOrderId)

	_, err = flow.Back(ctx, schema.SessionTokenParams{Token: confirmed.Token}, &logger)
	assert.True(t, errors.Is(err, wizard.ErrInvalidTransition))

	pdf, filename, err := flow.Receipt(ctx, schema.SessionTokenParams{Token: confirmed.Token}, &logger)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF")))
	assert.Equal(t, "BOOKING_"+confirmed.Session.Booking.BookingId+".pdf", filename)
}

func TestFlowBack(t *testing.T) {
	flow := newFlow(t)
	logger := zerolog.Nop()
	ctx := context.Background()

	started, _ := flow.Start(ctx, &logger)

	_, err := flow.Back(ctx, schema.SessionTokenParams{Token: started.Token}, &logger)
	assert.True(t, errors.Is(err, wizard.ErrInvalidTransition))

	updated, err := flow.Update(ctx, schema.SessionUpdateParams{
		Token: started.Token,
		Step:  "details",
		Details: &schema.DirectDetails{
			Pickup:      "Pune",
			Datetime:    schema.DateTime{Time: time.Now().Add(2 * time.Hour)},
			Passengers:  1,
			Mode:        schema.BookingModeHourly,
			PackageCode: converting.PointerToValue("12H120KM"),
		},
	}, &logger)
	require.NoError(t, err)

	next, err := flow.Next(ctx, schema.SessionTokenParams{Token: updated.Token}, &logger)
	require.NoError(t, err)
	assert.Contains(t, next.Session.Quote.BreakdownNote, "12 hours / 120 km")

	back, err := flow.Back(ctx, schema.SessionTokenParams{Token: next.Token}, &logger)
	require.NoError(t, err)
	assert.Equal(t, wizard.StepDetails, back.Session.Step)
	assert.Equal(t, "Pune", back.Session.Details.Pickup)
}

func TestFlowRejectsBadInput(t *testing.T) {
	flow := newFlow(t)
	logger := zerolog.Nop()
	ctx := context.Background()

	_, err := flow.Next(ctx, schema.SessionTokenParams{Token: "bogus"}, &logger)
	assert.True(t, errors.Is(err, wizard.ErrInvalidSession))

	started, _ := flow.Start(ctx, &logger)
	_, err = flow.Update(ctx, schema.SessionUpdateParams{Token: started.Token, Step: "summary"}, &logger)
	assert.Equal(t, []string{"step"}, fields(t, err))

	updated, err := flow.Update(ctx, schema.SessionUpdateParams{
		Token: started.Token,
		Step:  "details",
		Details: &schema.DirectDetails{
			Pickup:     "Goa",
			Datetime:   schema.DateTime{Time: time.Now().Add(time.Hour)},
			Passengers: 2,
			Luggage:    25,
			Mode:       schema.BookingModeNormal,
		},
	}, &logger)
	require.NoError(t, err)

	_, err = flow.Next(ctx, schema.SessionTokenParams{Token: updated.Token}, &logger)
	assert.Equal(t, []string{"luggageCount"}, fields(t, err))
}
