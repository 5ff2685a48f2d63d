package schema

type VehiclesRequestParams struct {
	Category    *string `form:"category" url:"category,omitempty"`
	DirectOnly  bool    `form:"directOnly" url:"directOnly,omitempty"`
	Passengers  int     `form:"passengers" url:"passengers,omitempty"`
	Luggage     int     `form:"luggage" url:"luggage,omitempty"`
	NeedCarrier bool    `form:"needCarrier" url:"needCarrier,omitempty"`
}

type Vehicle struct {
	Code            string   `json:"code"`
	DisplayName     string   `json:"displayName"`
	Category        string   `json:"category"`
	MaxPassengers   int      `json:"maxPassengers"`
	MaxLuggage      int      `json:"maxLuggage"`
	SupportsCarrier bool     `json:"supportsCarrier"`
	MinLeadHours    int      `json:"minLeadHours"`
	DirectEligible  bool     `json:"directEligible"`
	Features        []string `json:"features"`
}

type VehiclesResponse struct {
	Vehicles []Vehicle `json:"vehicles"`
}

type Package struct {
	Code          string `json:"code"`
	Label         string `json:"label"`
	IncludedHours int    `json:"includedHours"`
	IncludedKm    int    `json:"includedKm"`
}

type PackagesResponse struct {
	Packages     []Package `json:"packages"`
	ExtraPerKm   int64     `json:"extraPerKm"`
	ExtraPerHour int64     `json:"extraPerHour"`
	AccessoryFee int64     `json:"accessoryFee"`
	Currency     string    `json:"currency"`
}
