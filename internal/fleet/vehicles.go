package fleet

const (
	StandardLeadHours = 1
	CuratedLeadHours  = 72
)

// DefaultVehicles is the fleet offered on the site. Ultra luxury and large
// capacity vehicles are curated on request and need 72 hours notice.
func DefaultVehicles() []VehicleSpec {
	return []VehicleSpec{
		{
			Code:          "RR_GHOST",
			DisplayName:   "Rolls-Royce Ghost",
			Category:      CategoryUltraLuxury,
			MaxPassengers: 4,
			MaxLuggage:    4,
			MinLeadHours:  CuratedLeadHours,
			Features:      []string{"Starlight Headliner", "Massage Seats", "Champagne Cooler", "Premium Sound"},
		},
		{
			Code:          "BENTLEY_FS",
			DisplayName:   "Bentley Flying Spur",
			Category:      CategoryUltraLuxury,
			MaxPassengers: 4,
			MaxLuggage:    4,
			MinLeadHours:  CuratedLeadHours,
			Features:      []string{"Diamond Quilted Leather", "Bentley Rotating Display", "Naim Audio", "Executive Rear Seats"},
		},
		{
			Code:          "MAYBACH_S",
			DisplayName:   "Mercedes Maybach S-Class",
			Category:      CategoryUltraLuxury,
			MaxPassengers: 4,
			MaxLuggage:    4,
			MinLeadHours:  CuratedLeadHours,
			Features:      []string{"Executive Lounge", "First-Class Rear Seats", "Burmester 4D Sound", "Panoramic Roof"},
		},
		{
			Code:                  "MERC_GLA200",
			DisplayName:           "Mercedes GLA200",
			Category:              CategoryLuxury,
			MaxPassengers:         4,
			MaxLuggage:            3,
			SupportsCarrier:       true,
			MinLeadHours:          StandardLeadHours,
			DirectEligibleDefault: true,
			Features:              []string{"Premium Interior", "MBUX Infotainment", "LED Ambient Lighting", "Climate Control"},
		},
		{
			Code:                  "MERC_E",
			DisplayName:           "Mercedes E-Class",
			Category:              CategoryLuxury,
			MaxPassengers:         4,
			MaxLuggage:            4,
			SupportsCarrier:       true,
			MinLeadHours:          StandardLeadHours,
			DirectEligibleDefault: true,
			Features:              []string{"Leather Seats", "Advanced Safety", "Premium Sound", "Executive Comfort"},
		},
		{
			Code:                  "BMW_X1",
			DisplayName:           "BMW X1",
			Category:              CategoryLuxury,
			MaxPassengers:         4,
			MaxLuggage:            3,
			SupportsCarrier:       true,
			MinLeadHours:          StandardLeadHours,
			DirectEligibleDefault: true,
			Features:              []string{"iDrive System", "Premium Upholstery", "Panoramic Sunroof", "Sport Suspension"},
		},
		{
			Code:                  "BMW_3",
			DisplayName:           "BMW 3 Series",
			Category:              CategoryLuxury,
			MaxPassengers:         4,
			MaxLuggage:            3,
			SupportsCarrier:       true,
			MinLeadHours:          StandardLeadHours,
			DirectEligibleDefault: true,
			Features:              []string{"Sport Seats", "Wireless Charging", "Harman Kardon Audio", "Gesture Control"},
		},
		{
			Code:                  "BMW_7",
			DisplayName:           "BMW 7 Series",
			Category:              CategoryLuxury,
			MaxPassengers:         4,
			MaxLuggage:            4,
			SupportsCarrier:       true,
			MinLeadHours:          StandardLeadHours,
			DirectEligibleDefault: true,
			Features:              []string{"Executive Lounge", "Massage Seats", "Sky Lounge Panoramic", "Bowers & Wilkins"},
		},
		{
			Code:          "MERC_V220D",
			DisplayName:   "Mercedes V220D",
			Category:      CategoryLuxuryTravel,
			MaxPassengers: 7,
			MaxLuggage:    8,
			MinLeadHours:  CuratedLeadHours,
			Features:      []string{"Captain Chairs", "Premium Van", "Group Travel", "Luxury Interior"},
		},
		{
			Code:          "TOYOTA_VELLFIRE",
			DisplayName:   "Toyota Vellfire",
			Category:      CategoryLuxuryTravel,
			MaxPassengers: 7,
			MaxLuggage:    8,
			MinLeadHours:  CuratedLeadHours,
			Features:      []string{"Ottoman Seats", "Premium MPV", "Executive Lounge", "Spacious Interior"},
		},
		{
			Code:          "FORCE_URBANIA",
			DisplayName:   "Force Urbania",
			Category:      CategoryLuxuryTravel,
			MaxPassengers: 13,
			MaxLuggage:    15,
			MinLeadHours:  CuratedLeadHours,
			Features:      []string{"Group Travel", "Large Capacity", "Event Transport", "Corporate Travel"},
		},
	}
}

func DefaultCatalog() (*Catalog, error) {
	return NewCatalog(DefaultVehicles())
}
