package services

import (
	"log"
	"sort"
	"time"

	"gridsense-server/api/gridfeed"
	"gridsense-server/config"
	"gridsense-server/models/series"
)

// LiveFeedAdapter fetches the generation mix for the requested window and
// normalizes every entry through the MetricDeriver. All failure classes
// (transport, bad status, malformed body, missing data field) collapse to an
// empty result: the caller only ever sees "empty" vs "non-empty".
type LiveFeedAdapter struct {
	feedAPI gridfeed.GridFeedAPI
	deriver *MetricDeriver
}

// NewLiveFeedAdapter constructs a LiveFeedAdapter.
func NewLiveFeedAdapter(feedAPI gridfeed.GridFeedAPI, deriver *MetricDeriver) *LiveFeedAdapter {
	return &LiveFeedAdapter{
		feedAPI: feedAPI,
		deriver: deriver,
	}
}

// FetchWindow requests [referenceNow - 24h, referenceNow + horizon] and
// returns the normalized samples in ascending timestamp order, provenance
// LiveFeed. Never returns an error; failures are logged and yield nil.
func (a *LiveFeedAdapter) FetchWindow(referenceNow time.Time, horizonHours int) []series.NormalizedSample {
	from := referenceNow.Add(-config.HISTORY_WINDOW_HOURS * time.Hour)
	to := referenceNow.Add(time.Duration(horizonHours) * time.Hour)

	resp, err := a.feedAPI.GetGenerationMix(from, to)
	if err != nil {
		log.Printf("[LiveFeedAdapter] Generation mix fetch failed: %v", err)
		return nil
	}
	if resp == nil || len(resp.Data) == 0 {
		log.Println("[LiveFeedAdapter] Feed returned no data points")
		return nil
	}

	samples := make([]series.NormalizedSample, 0, len(resp.Data))
	for _, entry := range resp.Data {
		ts, err := time.Parse(config.GRID_FEED_TIMESTAMP_FORMAT, entry.From)
		if err != nil {
			log.Printf("[LiveFeedAdapter] Unparseable entry timestamp %q: %v", entry.From, err)
			return nil
		}
		samples = append(samples, a.deriver.Derive(entry, ts, referenceNow, series.ProvenanceLiveFeed))
	}

	sort.Slice(samples, func(i, j int) bool {
		return samples[i].Timestamp.Before(samples[j].Timestamp)
	})
	return samples
}
