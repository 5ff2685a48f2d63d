package wizard

import (
	"context"

	"bitbucket.org/velvet/chauffeur-hub/internal/schema"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type Quoter interface {
	GetQuote(context.Context, schema.QuoteRequestParams, *zerolog.Logger) (schema.QuoteResponse, error)
}

type Booker interface {
	CreateBooking(context.Context, schema.BookingRequestParams, *zerolog.Logger) (schema.BookingResponse, error)
}

type Response struct {
	Token      string  `json:"token"`
	Session    Session `json:"session"`
	TotalPrice *int64  `json:"totalPrice,omitempty"`
}

// Flow runs the wizard over stateless requests: every call receives the
// signed session, applies one step and hands back a freshly signed session.
type Flow struct {
	quoter Quoter
	booker Booker
	codec  *Codec
	newID  func() string
}

func NewFlow(quoter Quoter, booker Booker, codec *Codec) *Flow {
	return &Flow{
		quoter: quoter,
		booker: booker,
		codec:  codec,
		newID:  uuid.NewString,
	}
}

func (f *Flow) Start(ctx context.Context, logger *zerolog.Logger) (Response, error) {
	s := NewSession(f.newID())

	logger.Debug().
		Str("sessionId", s.ID).
		Msg("Booking session started")

	return f.respond(s)
}

func (f *Flow) Update(ctx context.Context, params schema.SessionUpdateParams, logger *zerolog.Logger) (Response, error) {
	s, err := f.codec.Decode(params.Token)
	if err != nil {
		return Response{}, err
	}

	var step Step
	if err := step.UnmarshalText([]byte(params.Step)); err != nil {
		return Response{}, missing("step")
	}

	s, err = Apply(s, Update{
		Step:        step,
		Details:     params.Details,
		VehicleCode: params.VehicleCode,
		Payment:     params.Payment,
	})
	if err != nil {
		return Response{}, err
	}

	return f.respond(s)
}

// Next advances the session. Leaving details prices the trip, leaving payment
// submits the booking.
func (f *Flow) Next(ctx context.Context, params schema.SessionTokenParams, logger *zerolog.Logger) (Response, error) {
	s, err := f.codec.Decode(params.Token)
	if err != nil {
		return Response{}, err
	}

	next, err := Transition(s, ActionNext)
	if err != nil {
		return Response{}, err
	}

	switch s.Step {
	case StepDetails:
		quoted, err := f.quoter.GetQuote(ctx, quoteParams(*s.Details), logger)
		if err != nil {
			return Response{}, err
		}
		next.Quote = &quoted
	case StepPayment:
		booked, err := f.booker.CreateBooking(ctx, bookingParams(s), logger)
		if err != nil {
			return Response{}, err
		}
		next.Booking = &booked
	}

	logger.Debug().
		Str("sessionId", s.ID).
		Str("from", s.Step.String()).
		Str("to", next.Step.String()).
		Msg("Booking session advanced")

	return f.respond(next)
}

func (f *Flow) Back(ctx context.Context, params schema.SessionTokenParams, logger *zerolog.Logger) (Response, error) {
	s, err := f.codec.Decode(params.Token)
	if err != nil {
		return Response{}, err
	}

	prev, err := Transition(s, ActionBack)
	if err != nil {
		return Response{}, err
	}

	return f.respond(prev)
}

// Receipt renders the confirmation of a booked session as a PDF.
func (f *Flow) Receipt(ctx context.Context, params schema.SessionTokenParams, logger *zerolog.Logger) ([]byte, string, error) {
	s, err := f.codec.Decode(params.Token)
	if err != nil {
		return nil, "", err
	}

	if s.Step != StepConfirmation || s.Booking == nil {
		return nil, "", ErrNotConfirmed
	}

	return buildReceiptPDF(s)
}

func (f *Flow) respond(s Session) (Response, error) {
	token, err := f.codec.Encode(s)
	if err != nil {
		return Response{}, err
	}

	response := Response{
		Token:   token,
		Session: s,
	}
	if total, ok := TotalPrice(s); ok {
		response.TotalPrice = &total
	}

	return response, nil
}

func quoteParams(d schema.DirectDetails) schema.QuoteRequestParams {
	return schema.QuoteRequestParams{
		Pickup:       d.Pickup,
		Drop:         d.Drop,
		Datetime:     d.Datetime,
		Passengers:   d.Passengers,
		LuggageCount: d.Luggage,
		NeedCarrier:  d.NeedCarrier,
		Mode:         d.Mode,
		PackageCode:  d.PackageCode,
	}
}
