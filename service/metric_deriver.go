package services

import (
	"math"
	"math/rand"
	"time"

	"gridsense-server/models"
	"gridsense-server/models/series"
)

const FUEL_WIND = "wind"
const FUEL_SOLAR = "solar"

// DemandEstimator approximates total grid load for a timestamp. The grid feed
// reports generation mix only, never load, so demand is always estimated.
// Swapping in a real load source means swapping this implementation.
type DemandEstimator interface {
	EstimateMW(ts time.Time) int
}

// JitterDemandEstimator perturbs an assumed baseline load by a small uniform
// random fraction in [0, maxJitter]. This is an approximation, not a
// measurement.
type JitterDemandEstimator struct {
	baselineLoadMW int
	maxJitter      float64
	rng            *rand.Rand
}

// NewJitterDemandEstimator constructs the default estimator.
func NewJitterDemandEstimator(baselineLoadMW int, maxJitter float64) *JitterDemandEstimator {
	return &JitterDemandEstimator{
		baselineLoadMW: baselineLoadMW,
		maxJitter:      maxJitter,
		rng:            rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (e *JitterDemandEstimator) EstimateMW(ts time.Time) int {
	jitter := e.rng.Float64() * e.maxJitter
	return int(math.Round(float64(e.baselineLoadMW) * (1 + jitter)))
}

// MetricDeriver turns one raw generation-mix entry into a normalized sample.
type MetricDeriver struct {
	baselineLoadMW int
	estimator      DemandEstimator
}

// NewMetricDeriver constructs a MetricDeriver over the assumed baseline load.
func NewMetricDeriver(baselineLoadMW int, estimator DemandEstimator) *MetricDeriver {
	return &MetricDeriver{
		baselineLoadMW: baselineLoadMW,
		estimator:      estimator,
	}
}

// Derive normalizes a raw entry into one sample. Absent fuel types count as
// 0%; deriving cannot fail.
func (d *MetricDeriver) Derive(
	entry models.GenerationMixEntry,
	ts time.Time,
	referenceNow time.Time,
	provenance series.Provenance,
) series.NormalizedSample {
	renewablePct := entry.PercFor(FUEL_WIND) + entry.PercFor(FUEL_SOLAR)

	supplyMW := int(math.Round(renewablePct / 100 * float64(d.baselineLoadMW)))
	if supplyMW < 0 {
		supplyMW = 0
	}

	demandMW := d.estimator.EstimateMW(ts)
	if demandMW < 0 {
		demandMW = 0
	}

	return series.NormalizedSample{
		Timestamp:  ts,
		TimeLabel:  ts.Local().Format(series.TimeLabelFormat),
		DemandMW:   demandMW,
		SupplyMW:   supplyMW,
		GapMW:      demandMW - supplyMW,
		IsForecast: ts.After(referenceNow),
		Provenance: provenance,
	}
}
