package schema

type PaymentMethod string

const (
	PaymentMethodCard   PaymentMethod = "CARD"
	PaymentMethodUPI    PaymentMethod = "UPI"
	PaymentMethodWallet PaymentMethod = "WALLET"
	PaymentMethodCash   PaymentMethod = "CASH"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCard, PaymentMethodUPI, PaymentMethodWallet, PaymentMethodCash:
		return true
	}
	return false
}

// DirectDetails are the trip details collected on the first wizard step.
type DirectDetails struct {
	Pickup        string      `json:"pickup"`
	Drop          *string     `json:"drop,omitempty"`
	Datetime      DateTime    `json:"datetime"`
	Passengers    int         `json:"passengers"`
	Luggage       int         `json:"luggage"`
	NeedCarrier   bool        `json:"needCarrier"`
	Mode          BookingMode `json:"mode"`
	PackageCode   *string     `json:"packageCode,omitempty"`
	FlightOrTrain *string     `json:"flightOrTrain,omitempty"`
	Notes         *string     `json:"notes,omitempty"`
}

type Payment struct {
	Method      PaymentMethod `json:"method"`
	UpiId       *string       `json:"upiId,omitempty"`
	GstRequired bool          `json:"gstRequired"`
	CompanyName *string       `json:"companyName,omitempty"`
	Gstin       *string       `json:"gstin,omitempty"`
	AcceptTerms bool          `json:"acceptTerms"`
}

type BookingRequestParams struct {
	Details     DirectDetails `json:"details"`
	VehicleCode string        `json:"vehicleCode" binding:"required"`
	Payment     Payment       `json:"payment"`
}

type BookingResponse struct {
	BookingId      string  `json:"bookingId"`
	GatewayOrderId *string `json:"gatewayOrderId,omitempty"`
	Amount         int64   `json:"amount"`
	CarrierFee     *int64  `json:"carrierFee,omitempty"`
	Currency       string  `json:"currency"`
}
