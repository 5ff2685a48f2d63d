package pricing

// DefaultRates is the INR rate card, in paise.
func DefaultRates() Rates {
	return Rates{
		Currency:     "INR",
		AccessoryFee: 50000,
		NormalFare: map[string]int64{
			"RR_GHOST":        2500000,
			"BENTLEY_FS":      2200000,
			"MAYBACH_S":       2000000,
			"MERC_GLA200":     180000,
			"MERC_E":          220000,
			"BMW_X1":          200000,
			"BMW_3":           240000,
			"BMW_7":           350000,
			"MERC_V220D":      400000,
			"TOYOTA_VELLFIRE": 450000,
			"FORCE_URBANIA":   300000,
		},
		Packages: []PackageSpec{
			{Code: "4H40KM", Label: "4 Hours / 40 KM", IncludedHours: 4, IncludedKm: 40},
			{Code: "8H80KM", Label: "8 Hours / 80 KM", IncludedHours: 8, IncludedKm: 80},
			{Code: "12H120KM", Label: "12 Hours / 120 KM", IncludedHours: 12, IncludedKm: 120},
		},
		HourlyBaseFare: map[string]int64{
			"RR_GHOST":        4000000,
			"BENTLEY_FS":      3500000,
			"MAYBACH_S":       3200000,
			"MERC_GLA200":     280000,
			"MERC_E":          350000,
			"BMW_X1":          320000,
			"BMW_3":           380000,
			"BMW_7":           550000,
			"MERC_V220D":      600000,
			"TOYOTA_VELLFIRE": 700000,
			"FORCE_URBANIA":   480000,
		},
		ExtraPerKm:   2000,
		ExtraPerHour: 20000,
	}
}

func DefaultTable() *Table {
	return NewTable(DefaultRates())
}
