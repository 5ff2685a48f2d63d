package pricing

import (
	"errors"
	"fmt"
)

type Mode string

const (
	ModeNormal Mode = "NORMAL"
	ModeHourly Mode = "HOURLY"
)

func (m Mode) Valid() bool {
	return m == ModeNormal || m == ModeHourly
}

type PackageSpec struct {
	Code          string
	Label         string
	IncludedHours int
	IncludedKm    int
}

// Rates is the raw rate card. All amounts are minor currency units.
type Rates struct {
	Currency       string
	AccessoryFee   int64
	NormalFare     map[string]int64
	Packages       []PackageSpec
	HourlyBaseFare map[string]int64
	ExtraPerKm     int64
	ExtraPerHour   int64
}

// Table is the process-wide, immutable view over a rate card.
type Table struct {
	rates Rates
}

func NewTable(r Rates) *Table {
	normal := make(map[string]int64, len(r.NormalFare))
	for code, fare := range r.NormalFare {
		normal[code] = fare
	}

	hourly := make(map[string]int64, len(r.HourlyBaseFare))
	for code, fare := range r.HourlyBaseFare {
		hourly[code] = fare
	}

	r.NormalFare = normal
	r.HourlyBaseFare = hourly
	r.Packages = append([]PackageSpec(nil), r.Packages...)

	return &Table{rates: r}
}

// BaseFare is the quoted fare before any overage. The package code is accepted
// for symmetry but hourly fares are currently flat across packages.
func (t *Table) BaseFare(vehicleCode string, mode Mode, packageCode string) (int64, error) {
	switch mode {
	case ModeNormal:
		fare, ok := t.rates.NormalFare[vehicleCode]
		if !ok {
			return 0, &UnknownVehicleError{Code: vehicleCode, Mode: mode}
		}
		return fare, nil
	case ModeHourly:
		fare, ok := t.rates.HourlyBaseFare[vehicleCode]
		if !ok {
			return 0, &UnknownVehicleError{Code: vehicleCode, Mode: mode}
		}
		return fare, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
}

func (t *Table) AccessoryFee() int64 {
	return t.rates.AccessoryFee
}

func (t *Table) ExtraPerKm() int64 {
	return t.rates.ExtraPerKm
}

func (t *Table) ExtraPerHour() int64 {
	return t.rates.ExtraPerHour
}

func (t *Table) Currency() string {
	return t.rates.Currency
}

func (t *Table) Packages() []PackageSpec {
	return append([]PackageSpec(nil), t.rates.Packages...)
}

func (t *Table) Package(code string) (PackageSpec, bool) {
	for _, p := range t.rates.Packages {
		if p.Code == code {
			return p, true
		}
	}
	return PackageSpec{}, false
}

// Validate checks the table against the catalog codes. Every vehicle must be
// priced in both modes.
func (t *Table) Validate(vehicleCodes []string) error {
	var errs []error

	if t.rates.AccessoryFee < 0 || t.rates.ExtraPerKm < 0 || t.rates.ExtraPerHour < 0 {
		errs = append(errs, errors.New("fees must not be negative"))
	}

	for _, code := range vehicleCodes {
		if fare, ok := t.rates.NormalFare[code]; !ok {
			errs = append(errs, &UnknownVehicleError{Code: code, Mode: ModeNormal})
		} else if fare < 0 {
			errs = append(errs, fmt.Errorf("negative normal fare for %s", code))
		}

		if fare, ok := t.rates.HourlyBaseFare[code]; !ok {
			errs = append(errs, &UnknownVehicleError{Code: code, Mode: ModeHourly})
		} else if fare < 0 {
			errs = append(errs, fmt.Errorf("negative hourly fare for %s", code))
		}
	}

	seen := map[string]bool{}
	for _, p := range t.rates.Packages {
		if p.Code == "" || seen[p.Code] {
			errs = append(errs, fmt.Errorf("invalid or duplicate package code %q", p.Code))
		}
		seen[p.Code] = true
	}

	return errors.Join(errs...)
}
