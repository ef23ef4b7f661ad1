package services

import (
	"math"
	"math/rand"
	"time"

	"gridsense-server/config"
	"gridsense-server/models/series"
)

// SyntheticSeriesGenerator produces the fallback series when the live feed
// yields nothing. The curve family is fixed (demand peaks in the morning and
// evening, solar follows a half-sine through the daylight window); only the
// noise is random. It has no external dependency and cannot fail.
type SyntheticSeriesGenerator struct {
	rng *rand.Rand
}

// NewSyntheticSeriesGenerator constructs a generator with a time-seeded noise
// source.
func NewSyntheticSeriesGenerator() *SyntheticSeriesGenerator {
	return &SyntheticSeriesGenerator{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Generate builds a complete series spanning the 24h history window plus the
// horizon, two samples per hour, provenance Synthetic.
func (g *SyntheticSeriesGenerator) Generate(referenceNow time.Time, horizonHours int) *series.AssembledSeries {
	historyPoints := config.HISTORY_WINDOW_HOURS * config.SAMPLES_PER_HOUR
	totalPoints := (config.HISTORY_WINDOW_HOURS + horizonHours) * config.SAMPLES_PER_HOUR

	samples := make([]series.NormalizedSample, 0, totalPoints)
	for i := 0; i < totalPoints; i++ {
		offsetMinutes := (i - historyPoints) * config.SAMPLE_SPACING_MINUTES
		ts := referenceNow.Add(time.Duration(offsetMinutes) * time.Minute)

		demandMW := g.demandAt(ts)
		supplyMW := g.supplyAt(ts)

		samples = append(samples, series.NormalizedSample{
			Timestamp:  ts,
			TimeLabel:  ts.Local().Format(series.TimeLabelFormat),
			DemandMW:   demandMW,
			SupplyMW:   supplyMW,
			GapMW:      demandMW - supplyMW,
			IsForecast: offsetMinutes > 0,
			Provenance: series.ProvenanceSynthetic,
		})
	}

	return &series.AssembledSeries{
		ReferenceNow: referenceNow,
		HorizonHours: horizonHours,
		Provenance:   series.ProvenanceSynthetic,
		Samples:      samples,
	}
}

// demandAt shapes demand as a base level, a morning and an evening Gaussian
// peak, a diurnal sinusoid, and a little uniform noise. Floored at 0.
func (g *SyntheticSeriesGenerator) demandAt(ts time.Time) int {
	hour := localHour(ts)

	demand := config.SYNTHETIC_BASE_DEMAND_MW
	demand += gaussianPeak(hour, config.SYNTHETIC_MORNING_PEAK_HOUR, config.SYNTHETIC_MORNING_PEAK_MW)
	demand += gaussianPeak(hour, config.SYNTHETIC_EVENING_PEAK_HOUR, config.SYNTHETIC_EVENING_PEAK_MW)
	demand += config.SYNTHETIC_DIURNAL_AMPLITUDE_MW * math.Sin(2*math.Pi*hour/24)
	demand += (g.rng.Float64()*2 - 1) * config.SYNTHETIC_DEMAND_NOISE_MW

	if demand < 0 {
		demand = 0
	}
	return int(math.Round(demand))
}

// supplyAt is solar-only: zero outside the daylight window, a half-sine
// profile inside it, with an intermittent cloud-cover penalty. Floored at 0.
func (g *SyntheticSeriesGenerator) supplyAt(ts time.Time) int {
	hour := localHour(ts)
	if hour <= config.SYNTHETIC_SOLAR_START_HOUR || hour >= config.SYNTHETIC_SOLAR_END_HOUR {
		return 0
	}

	daylightSpan := config.SYNTHETIC_SOLAR_END_HOUR - config.SYNTHETIC_SOLAR_START_HOUR
	supply := config.SYNTHETIC_SOLAR_PEAK_MW *
		math.Sin((hour-config.SYNTHETIC_SOLAR_START_HOUR)*math.Pi/daylightSpan)

	if g.rng.Float64() < config.SYNTHETIC_CLOUD_COVER_CHANCE {
		supply -= g.rng.Float64() * config.SYNTHETIC_CLOUD_COVER_MAX_MW
	}

	if supply < 0 {
		supply = 0
	}
	return int(math.Round(supply))
}

func gaussianPeak(hour, peakHour, amplitude float64) float64 {
	width := config.SYNTHETIC_PEAK_WIDTH_HOURS
	delta := hour - peakHour
	return amplitude * math.Exp(-(delta*delta)/(2*width*width))
}

func localHour(ts time.Time) float64 {
	local := ts.Local()
	return float64(local.Hour()) + float64(local.Minute())/60
}
