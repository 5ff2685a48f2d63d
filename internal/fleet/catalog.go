package fleet

import (
	"errors"
	"fmt"
)

type Category string

const (
	CategoryLuxury       Category = "LUXURY"
	CategoryUltraLuxury  Category = "ULTRA_LUXURY"
	CategoryLuxuryTravel Category = "LUXURY_TRAVEL"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryLuxury, CategoryUltraLuxury, CategoryLuxuryTravel:
		return true
	}
	return false
}

type VehicleSpec struct {
	Code                  string
	DisplayName           string
	Category              Category
	MaxPassengers         int
	MaxLuggage            int
	SupportsCarrier       bool
	MinLeadHours          int
	DirectEligibleDefault bool
	Features              []string
}

// Catalog is an ordered, read-only registry of the fleet. It is built once at
// startup and shared by every request.
type Catalog struct {
	vehicles []VehicleSpec
	index    map[string]int
}

func NewCatalog(vehicles []VehicleSpec) (*Catalog, error) {
	c := &Catalog{
		vehicles: make([]VehicleSpec, 0, len(vehicles)),
		index:    make(map[string]int, len(vehicles)),
	}

	for _, v := range vehicles {
		if v.Code == "" {
			return nil, errors.New("vehicle with empty code")
		}
		if _, ok := c.index[v.Code]; ok {
			return nil, fmt.Errorf("duplicate vehicle code %s", v.Code)
		}
		if !v.Category.Valid() {
			return nil, fmt.Errorf("vehicle %s has unknown category %q", v.Code, v.Category)
		}
		if v.MaxPassengers < 1 || v.MaxLuggage < 0 || v.MinLeadHours < 0 {
			return nil, fmt.Errorf("vehicle %s has invalid capacity or lead time", v.Code)
		}

		c.index[v.Code] = len(c.vehicles)
		c.vehicles = append(c.vehicles, clone(v))
	}

	return c, nil
}

// List returns the fleet in catalog order.
func (c *Catalog) List() []VehicleSpec {
	out := make([]VehicleSpec, len(c.vehicles))
	for i, v := range c.vehicles {
		out[i] = clone(v)
	}
	return out
}

func (c *Catalog) Codes() []string {
	codes := make([]string, len(c.vehicles))
	for i, v := range c.vehicles {
		codes[i] = v.Code
	}
	return codes
}

func (c *Catalog) Len() int {
	return len(c.vehicles)
}

func (c *Catalog) Get(code string) (VehicleSpec, error) {
	i, ok := c.index[code]
	if !ok {
		return VehicleSpec{}, &NotFoundError{Code: code}
	}
	return clone(c.vehicles[i]), nil
}

// Filter narrows the catalog the way the fleet pages do. Zero values disable a
// criterion.
type Filter struct {
	Category    Category
	DirectOnly  bool
	Passengers  int
	Luggage     int
	NeedCarrier bool
}

func (c *Catalog) Filter(f Filter) []VehicleSpec {
	out := []VehicleSpec{}
	for _, v := range c.vehicles {
		if f.Category != "" && v.Category != f.Category {
			continue
		}
		if f.DirectOnly && !v.DirectEligibleDefault {
			continue
		}
		if v.MaxPassengers < f.Passengers || v.MaxLuggage < f.Luggage {
			continue
		}
		if f.NeedCarrier && !v.SupportsCarrier {
			continue
		}
		out = append(out, clone(v))
	}
	return out
}

func clone(v VehicleSpec) VehicleSpec {
	if v.Features != nil {
		v.Features = append([]string(nil), v.Features...)
	}
	return v
}
