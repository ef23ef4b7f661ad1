package services

import (
	"fmt"
	"log"
	"time"

	"gridsense-server/models/series"
)

// SeriesAssembler is the fallback chain: live feed result if it has any
// samples, else a fully synthetic series. Never a blend within one series, no
// retry, no caching; every call re-fetches or re-generates from scratch.
type SeriesAssembler struct {
	liveFeed  *LiveFeedAdapter
	synthetic *SyntheticSeriesGenerator
	now       func() time.Time
}

// NewSeriesAssembler constructs a SeriesAssembler.
func NewSeriesAssembler(liveFeed *LiveFeedAdapter, synthetic *SyntheticSeriesGenerator) *SeriesAssembler {
	return &SeriesAssembler{
		liveFeed:  liveFeed,
		synthetic: synthetic,
		now:       time.Now,
	}
}

// AssembleSeries builds one complete series for the given horizon. Any
// positive horizon is accepted.
func (sa *SeriesAssembler) AssembleSeries(horizonHours int) (*series.AssembledSeries, error) {
	if horizonHours <= 0 {
		return nil, fmt.Errorf("horizon must be positive, got %d", horizonHours)
	}

	referenceNow := sa.now()

	if samples := sa.liveFeed.FetchWindow(referenceNow, horizonHours); len(samples) > 0 {
		return &series.AssembledSeries{
			ReferenceNow: referenceNow,
			HorizonHours: horizonHours,
			Provenance:   series.ProvenanceLiveFeed,
			Samples:      samples,
		}, nil
	}

	log.Printf("[SeriesAssembler] Live feed empty for horizon=%dh, falling back to synthetic series", horizonHours)
	return sa.synthetic.Generate(referenceNow, horizonHours), nil
}
