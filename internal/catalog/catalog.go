// Package catalog holds the immutable reference tables: serviced
// locations with their solar irradiance, system topologies, and the
// component brands offered per category. The tables are bundled with
// the binary and change only on redeploy; callers receive them as an
// injected *Catalog so tests can substitute fixtures.
package catalog

import "strings"

// Location is a serviced place with its average daily full-sun hours.
type Location struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	SunHours  float64 `json:"sunHours"`
}

// SystemType describes a PV topology and its cost characteristics.
// CostMultiplier scales the component-and-installation sum; CostPerKW is
// the additional per-kW cost of the topology's extra hardware (battery
// bank for hybrid and off-grid rigs).
type SystemType struct {
	ID             string  `json:"id"`
	Label          string  `json:"label"`
	CostMultiplier float64 `json:"costMultiplier"`
	CostPerKW      float64 `json:"costPerKW"`
}

// Component is a catalog entry for a panel, inverter or wiring brand.
type Component struct {
	ID            string  `json:"id"`
	Label         string  `json:"label"`
	UnitPrice     float64 `json:"unitPrice"`
	WarrantyYears int     `json:"warrantyYears"`
}

// Catalog groups all reference tables. Loaded once at startup.
type Catalog struct {
	Locations   []Location
	SystemTypes []SystemType
	Panels      []Component
	Inverters   []Component
	Wiring      []Component
}

// Default returns the bundled production catalog.
func Default() *Catalog {
	return &Catalog{
		Locations: []Location{
			{Name: "Chennai", Latitude: 13.0827, Longitude: 80.2707, SunHours: 5.4},
			{Name: "Coimbatore", Latitude: 11.0168, Longitude: 76.9558, SunHours: 5.3},
			{Name: "Madurai", Latitude: 9.9252, Longitude: 78.1198, SunHours: 5.5},
			{Name: "Bangalore", Latitude: 12.9716, Longitude: 77.5946, SunHours: 5.2},
			{Name: "Hyderabad", Latitude: 17.3850, Longitude: 78.4867, SunHours: 5.4},
			{Name: "Mumbai", Latitude: 19.0760, Longitude: 72.8777, SunHours: 5.1},
			{Name: "Pune", Latitude: 18.5204, Longitude: 73.8567, SunHours: 5.3},
			{Name: "Delhi", Latitude: 28.7041, Longitude: 77.1025, SunHours: 5.5},
			{Name: "Jaipur", Latitude: 26.9124, Longitude: 75.7873, SunHours: 5.9},
			{Name: "Ahmedabad", Latitude: 23.0225, Longitude: 72.5714, SunHours: 5.8},
			{Name: "Kolkata", Latitude: 22.5726, Longitude: 88.3639, SunHours: 4.9},
			{Name: "Kochi", Latitude: 9.9312, Longitude: 76.2673, SunHours: 5.0},
		},
		SystemTypes: []SystemType{
			{ID: "grid_tie", Label: "On-Grid (Grid Tie)", CostMultiplier: 1.0, CostPerKW: 0},
			{ID: "hybrid", Label: "Hybrid", CostMultiplier: 1.15, CostPerKW: 25000},
			{ID: "off_grid", Label: "Off-Grid", CostMultiplier: 1.25, CostPerKW: 40000},
		},
		// Panel UnitPrice is ₹ per watt.
		Panels: []Component{
			{ID: "tata_540", Label: "Tata Power 540W Mono PERC", UnitPrice: 28, WarrantyYears: 25},
			{ID: "adani_535", Label: "Adani Solar 535W Mono PERC", UnitPrice: 26, WarrantyYears: 25},
			{ID: "waaree_445", Label: "Waaree 445W Mono", UnitPrice: 24, WarrantyYears: 25},
			{ID: "vikram_440", Label: "Vikram Solar 440W Mono", UnitPrice: 23, WarrantyYears: 25},
		},
		// Inverter UnitPrice is ₹ per 5 kW unit.
		Inverters: []Component{
			{ID: "growatt_5k", Label: "Growatt 5kW String Inverter", UnitPrice: 45000, WarrantyYears: 8},
			{ID: "luminous_5k", Label: "Luminous 5kW String Inverter", UnitPrice: 52000, WarrantyYears: 10},
			{ID: "sungrow_5k", Label: "Sungrow 5kW String Inverter", UnitPrice: 58000, WarrantyYears: 10},
		},
		// Wiring UnitPrice is ₹ per kW of array.
		Wiring: []Component{
			{ID: "finolex", Label: "Finolex DC/AC Cabling", UnitPrice: 3200, WarrantyYears: 5},
			{ID: "polycab", Label: "Polycab DC/AC Cabling", UnitPrice: 3500, WarrantyYears: 5},
			{ID: "havells", Label: "Havells DC/AC Cabling", UnitPrice: 4000, WarrantyYears: 5},
		},
	}
}

// Location looks up a location by display name, case-insensitively.
func (c *Catalog) Location(name string) (Location, bool) {
	for _, loc := range c.Locations {
		if strings.EqualFold(loc.Name, strings.TrimSpace(name)) {
			return loc, true
		}
	}
	return Location{}, false
}

// SystemType looks up a topology by id.
func (c *Catalog) SystemType(id string) (SystemType, bool) {
	for _, st := range c.SystemTypes {
		if st.ID == id {
			return st, true
		}
	}
	return SystemType{}, false
}

// Panel looks up a panel brand by id.
func (c *Catalog) Panel(id string) (Component, bool) { return find(c.Panels, id) }

// Inverter looks up an inverter brand by id.
func (c *Catalog) Inverter(id string) (Component, bool) { return find(c.Inverters, id) }

// WiringOption looks up a wiring brand by id.
func (c *Catalog) WiringOption(id string) (Component, bool) { return find(c.Wiring, id) }

func find(items []Component, id string) (Component, bool) {
	for _, item := range items {
		if item.ID == id {
			return item, true
		}
	}
	return Component{}, false
}
