package catalog

import (
	"time"

	"hiregen/internal/core"
)

// sampleCatalog builds a small in-memory catalog used when no CSV export is
// available, so generation flows stay exercisable without live data.
func sampleCatalog() *Catalog {
	records := []core.ProductRecord{
		{
			StockNumber: "13/GEN20",
			Title:       "Honda EU22i Inverter Generator",
			Description: "Lightweight portable inverter generator delivering clean power for sensitive equipment. Quiet running makes it suitable for events and residential sites.",
			Category:    "Generators",
			Brand:       "Honda",
			Model:       "EU22i",
			PowerType:   "Petrol",
			PowerOutput: "2.2kW",
			TechnicalSpecs: map[string]string{
				"Power":     "2.2kW",
				"Fuel Tank": "3.6L",
				"Weight":    "21.1kg",
			},
			Found: true,
		},
		{
			StockNumber: "03/BRK05",
			Title:       "Hilti TE 1000-AVR Breaker",
			Description: "Heavy duty electric breaker for concrete and masonry demolition. Active vibration reduction keeps trigger time high on long shifts.",
			Category:    "Breaking & Drilling",
			Brand:       "Hilti",
			Model:       "TE 1000",
			PowerType:   "Electric",
			PowerOutput: "1750W",
			TechnicalSpecs: map[string]string{
				"Power":  "1750W",
				"Weight": "12.5kg",
			},
			Found: true,
		},
		{
			StockNumber: "01/ACC12",
			Title:       "Pop Up Scissor Lift 8ft",
			Description: "Compact push around scissor lift for low level access work. Fits through standard doorways and runs on non-marking wheels.",
			Category:    "Access Equipment",
			PowerType:   "Battery",
			TechnicalSpecs: map[string]string{
				"Platform Height": "2.5m",
				"Capacity":        "240kg",
			},
			Found: true,
		},
		{
			StockNumber: "06/MIX30",
			Title:       "Belle Minimix 150 Cement Mixer",
			Description: "Robust site mixer for mortar and concrete batches. Easy tip action and a sealed gearbox built for daily hire use.",
			Category:    "Concrete Equipment",
			Brand:       "Belle",
			Model:       "Minimix 150",
			PowerType:   "Electric",
			TechnicalSpecs: map[string]string{
				"Capacity": "90L",
				"Motor":    "550W",
			},
			Found: true,
		},
	}

	return &Catalog{
		records:  records,
		loadedAt: time.Now().UTC(),
	}
}
