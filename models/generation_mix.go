package models

// FuelShare is one element of the feed's 'generationmix' array: the share of
// total generation attributable to one fuel type within the interval.
type FuelShare struct {
	Fuel string  `json:"fuel"`
	Perc float64 `json:"perc"`
}

// GenerationMixEntry matches one element of the 'data' array returned by
// GET /generation/{from}/{to}.
type GenerationMixEntry struct {
	From          string      `json:"from"`
	To            string      `json:"to,omitempty"`
	GenerationMix []FuelShare `json:"generationmix"`
}

// PercFor returns the percentage for the given fuel type, or 0 when the fuel
// is absent from the mix.
func (e *GenerationMixEntry) PercFor(fuel string) float64 {
	for _, share := range e.GenerationMix {
		if share.Fuel == fuel {
			return share.Perc
		}
	}
	return 0
}

// GenerationMixResponse is the top-level JSON returned by the grid feed. A
// response without the 'data' field decodes to an empty Data slice and is
// treated as no data.
type GenerationMixResponse struct {
	Data []GenerationMixEntry `json:"data"`
}
