package schema

type SessionTokenParams struct {
	Token string `json:"token" binding:"required"`
}

type SessionUpdateParams struct {
	Token       string         `json:"token" binding:"required"`
	Step        string         `json:"step" binding:"required"`
	Details     *DirectDetails `json:"details,omitempty"`
	VehicleCode *string        `json:"vehicleCode,omitempty"`
	Payment     *Payment       `json:"payment,omitempty"`
}
