package util

import (
	"encoding/json"
	"fmt"
	"io/ioutil"

	"gridsense-server/models"
	"gridsense-server/models/series"
)

// ReadGenerationMixResponseFromJSON loads a GenerationMixResponse from JSON on disk.
func ReadGenerationMixResponseFromJSON(filePath string) (*models.GenerationMixResponse, error) {
	data, err := ioutil.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var resp models.GenerationMixResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal GenerationMixResponse: %w", err)
	}
	return &resp, nil
}

// PrintAssembledSeriesPartially prints key fields of an AssembledSeries.
func PrintAssembledSeriesPartially(s *series.AssembledSeries) {
	fmt.Printf("Horizon: %dh\n", s.HorizonHours)
	fmt.Printf("Source: %s\n", s.Provenance)
	fmt.Printf("Samples: %d\n", len(s.Samples))
	if len(s.Samples) > 0 {
		first := s.Samples[0]
		fmt.Printf("First sample: %s demand=%dMW supply=%dMW gap=%dMW\n",
			first.TimeLabel, first.DemandMW, first.SupplyMW, first.GapMW)
	}
}
