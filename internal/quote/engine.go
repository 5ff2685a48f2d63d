package quote

import (
	"fmt"
	"time"

	"bitbucket.org/velvet/chauffeur-hub/internal/fleet"
	"bitbucket.org/velvet/chauffeur-hub/internal/pricing"
)

const (
	DefaultCacheTTLSec = 300

	normalBreakdownNote = "City limits coverage. Tolls and parking additional."
	hourlyBreakdownNote = "Includes %d hours / %d km. Extras billed only if used."
)

type Line struct {
	VehicleCode string
	DisplayName string
	Price       int64
	// CarrierFee is set only when a carrier was requested and the vehicle can take one.
	CarrierFee     *int64
	DirectEligible bool
	DisabledReason *string
}

// Total is what the customer is charged for this line. Overage is billed after
// the trip and never part of a quote.
func (l Line) Total() int64 {
	if l.CarrierFee == nil {
		return l.Price
	}
	return l.Price + *l.CarrierFee
}

type Response struct {
	Vehicles      []Line
	BreakdownNote string
	TotalDistance *float64
	CacheTTLSec   int
	Currency      string
}

func (r Response) Line(vehicleCode string) (Line, bool) {
	for _, l := range r.Vehicles {
		if l.VehicleCode == vehicleCode {
			return l, true
		}
	}
	return Line{}, false
}

type Option func(*Engine)

func WithCacheTTL(seconds int) Option {
	return func(e *Engine) {
		if seconds > 0 {
			e.cacheTTLSec = seconds
		}
	}
}

func WithPolicy(p Policy) Option {
	return func(e *Engine) {
		e.policy = p
	}
}

// Engine prices every catalog vehicle for a trip. It holds only immutable
// tables and is safe for concurrent use.
type Engine struct {
	catalog     *fleet.Catalog
	table       *pricing.Table
	policy      Policy
	cacheTTLSec int
}

func NewEngine(catalog *fleet.Catalog, table *pricing.Table, opts ...Option) *Engine {
	e := &Engine{
		catalog:     catalog,
		table:       table,
		cacheTTLSec: DefaultCacheTTLSec,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

func (e *Engine) Catalog() *fleet.Catalog {
	return e.catalog
}

func (e *Engine) Table() *pricing.Table {
	return e.table
}

// Compute returns one line per catalog vehicle or an error, never a partial list.
func (e *Engine) Compute(req TripRequest, now time.Time) (Response, error) {
	if err := req.Validate(e.table); err != nil {
		return Response{}, err
	}

	vehicles := e.catalog.List()
	lines := make([]Line, 0, len(vehicles))

	for _, v := range vehicles {
		price, err := e.table.BaseFare(v.Code, req.Mode, req.PackageCode)
		if err != nil {
			return Response{}, err
		}

		line := Line{
			VehicleCode: v.Code,
			DisplayName: v.DisplayName,
			Price:       price,
		}

		if req.NeedCarrier && v.SupportsCarrier {
			fee := e.table.AccessoryFee()
			line.CarrierFee = &fee
		}

		decision := e.policy.Evaluate(v, req, now)
		line.DirectEligible = decision.Eligible
		if !decision.Eligible {
			reason := decision.Reason
			line.DisabledReason = &reason
		}

		lines = append(lines, line)
	}

	return Response{
		Vehicles:      lines,
		BreakdownNote: e.breakdownNote(req),
		CacheTTLSec:   e.cacheTTLSec,
		Currency:      e.table.Currency(),
	}, nil
}

func (e *Engine) breakdownNote(req TripRequest) string {
	if req.Mode != pricing.ModeHourly {
		return normalBreakdownNote
	}

	// validated above
	pkg, _ := e.table.Package(req.PackageCode)
	return fmt.Sprintf(hourlyBreakdownNote, pkg.IncludedHours, pkg.IncludedKm)
}
