package schema

type BookingMode string

const (
	BookingModeNormal BookingMode = "NORMAL"
	BookingModeHourly BookingMode = "HOURLY"
)

type QuoteRequestParams struct {
	Pickup       string      `json:"pickup"`
	Drop         *string     `json:"drop,omitempty"`
	Datetime     DateTime    `json:"datetime"`
	Passengers   int         `json:"passengers"`
	LuggageCount int         `json:"luggageCount"`
	NeedCarrier  bool        `json:"needCarrier"`
	Mode         BookingMode `json:"mode"`
	PackageCode  *string     `json:"packageCode,omitempty"`
}

type QuoteLine struct {
	VehicleCode    string  `json:"vehicleCode"`
	Name           string  `json:"name"`
	Price          int64   `json:"price"`
	CarrierFee     *int64  `json:"carrierFee,omitempty"`
	DirectEligible bool    `json:"directEligible"`
	DisabledReason *string `json:"disabledReason,omitempty"`
}

type QuoteResponse struct {
	Vehicles      []QuoteLine `json:"vehicles"`
	BreakdownNote string      `json:"breakdownNote"`
	TotalDistance *float64    `json:"totalDistance,omitempty"`
	CacheTtlSec   int         `json:"cacheTtlSec"`
	Currency      string      `json:"currency"`
}
