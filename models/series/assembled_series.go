package series

import "time"

// AssembledSeries is one complete demand-vs-supply series covering the fixed
// 24h history window through HorizonHours after ReferenceNow. A series is
// built fresh on every assembly request and never mutated in place; exactly
// one Provenance applies to all of its samples.
type AssembledSeries struct {
	ReferenceNow time.Time          `json:"referenceNow"`
	HorizonHours int                `json:"horizonHours"`
	Provenance   Provenance         `json:"provenance"`
	Samples      []NormalizedSample `json:"samples"`
}

// IsEmpty reports whether the series carries no samples, which callers should
// treat as "no data yet" rather than a failure.
func (s *AssembledSeries) IsEmpty() bool {
	return s == nil || len(s.Samples) == 0
}
