package series

import (
	"fmt"
	"time"
)

// NormalizedSample is one time bucket of the assembled series. DemandMW is an
// estimate (the feed only reports generation mix, never load), SupplyMW is the
// wind+solar share of the assumed baseline load, and GapMW is always
// DemandMW - SupplyMW: positive means deficit, negative means surplus.
type NormalizedSample struct {
	Timestamp  time.Time  `json:"timestamp"`
	TimeLabel  string     `json:"timeLabel"`
	DemandMW   int        `json:"demand"`
	SupplyMW   int        `json:"supply"`
	GapMW      int        `json:"gap"`
	IsForecast bool       `json:"isForecast"`
	Provenance Provenance `json:"provenance"`
}

// TimeLabelFormat is the human-readable hour:minute label shown next to the
// raw timestamp.
const TimeLabelFormat = "15:04"

func (s *NormalizedSample) ToString() string {
	return fmt.Sprintf("NormalizedSample(ts=%s, demand=%d, supply=%d, gap=%d, forecast=%t)",
		s.Timestamp.Format(time.RFC3339), s.DemandMW, s.SupplyMW, s.GapMW, s.IsForecast)
}
