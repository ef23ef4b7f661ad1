package util

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"gridsense-server/models/series"
)

func TestRenderSeriesChart(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	s := &series.AssembledSeries{
		ReferenceNow: now,
		HorizonHours: 6,
		Provenance:   series.ProvenanceSynthetic,
		Samples: []series.NormalizedSample{
			{Timestamp: now, TimeLabel: "12:00", DemandMW: 450, SupplyMW: 300, GapMW: 150},
			{Timestamp: now.Add(30 * time.Minute), TimeLabel: "12:30", DemandMW: 470, SupplyMW: 280, GapMW: 190, IsForecast: true},
		},
	}

	var buf bytes.Buffer
	if err := RenderSeriesChart(s, &buf); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	html := buf.String()
	if !strings.Contains(html, "Demand (MW)") {
		t.Error("Rendered chart missing demand series")
	}
	if !strings.Contains(html, "Renewable Supply (MW)") {
		t.Error("Rendered chart missing supply series")
	}
	if !strings.Contains(html, "Net Gap (MW)") {
		t.Error("Rendered chart missing gap series")
	}
}
