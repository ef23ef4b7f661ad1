package services

import (
	"log"
	"sync"
	"time"

	"gridsense-server/dao/redis"
)

// SeriesRefresherService periodically re-assembles the supported horizons and
// stores the latest series in Redis. Each assembly carries a per-horizon
// sequence number; a result is only stored if no newer assembly for the same
// horizon has completed first, so a slow in-flight response never overwrites
// fresher data.
type SeriesRefresherService struct {
	seriesDao *redis.RedisSeriesDAO
	assembler *SeriesAssembler
	horizons  []int

	mu      sync.Mutex
	seq     map[int]uint64
	applied map[int]uint64

	stop     chan struct{}
	stopOnce sync.Once
}

// NewSeriesRefresherService constructs a new Refresher with dependencies.
func NewSeriesRefresherService(
	seriesDao *redis.RedisSeriesDAO,
	assembler *SeriesAssembler,
	horizons []int,
) *SeriesRefresherService {
	return &SeriesRefresherService{
		seriesDao: seriesDao,
		assembler: assembler,
		horizons:  horizons,
		seq:       make(map[int]uint64),
		applied:   make(map[int]uint64),
		stop:      make(chan struct{}),
	}
}

// StartPeriodicJob launches the background loop at the given interval.
func (sr *SeriesRefresherService) StartPeriodicJob(interval time.Duration) {
	go sr.startPeriodicJob(interval)
}

// Stop ends the background loop.
func (sr *SeriesRefresherService) Stop() {
	sr.stopOnce.Do(func() { close(sr.stop) })
}

func (sr *SeriesRefresherService) startPeriodicJob(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			log.Println("[SeriesRefresherService] Running periodic series refresh.")
			sr.RefreshAllHorizons()
		case <-sr.stop:
			log.Println("[SeriesRefresherService] Stopping periodic series refresh.")
			return
		}
	}
}

// RefreshAllHorizons re-assembles every supported horizon.
func (sr *SeriesRefresherService) RefreshAllHorizons() {
	log.Printf("[SeriesRefresherService] Refreshing %d horizons", len(sr.horizons))
	for _, h := range sr.horizons {
		if err := sr.RefreshHorizon(h); err != nil {
			log.Printf("[SeriesRefresherService] Refresh failed for horizon=%dh: %v", h, err)
		}
	}
}

// RefreshHorizon assembles one horizon and stores the result unless a newer
// assembly for the same horizon already landed.
func (sr *SeriesRefresherService) RefreshHorizon(horizonHours int) error {
	sr.mu.Lock()
	sr.seq[horizonHours]++
	mySeq := sr.seq[horizonHours]
	sr.mu.Unlock()

	s, err := sr.assembler.AssembleSeries(horizonHours)
	if err != nil {
		return err
	}

	sr.mu.Lock()
	defer sr.mu.Unlock()
	if mySeq <= sr.applied[horizonHours] {
		log.Printf("[SeriesRefresherService] Discarding stale result for horizon=%dh (seq=%d, applied=%d)",
			horizonHours, mySeq, sr.applied[horizonHours])
		return nil
	}
	sr.applied[horizonHours] = mySeq

	if err := sr.seriesDao.SetAssembledSeries(s); err != nil {
		return err
	}
	log.Printf("[SeriesRefresherService] Cached series for horizon=%dh (%d samples, source=%s)",
		horizonHours, len(s.Samples), s.Provenance)
	return nil
}
