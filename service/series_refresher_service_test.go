package services

import (
	"context"
	"errors"
	"testing"

	daoredis "gridsense-server/dao/redis"
	"gridsense-server/db"
	"gridsense-server/models/series"
)

func newTestRefresher(horizons []int) (*SeriesRefresherService, *daoredis.RedisSeriesDAO) {
	dao := daoredis.NewRedisSeriesDAO(db.NewMockRedisClient(context.Background()))
	assembler := newTestAssembler(&stubGridFeedAPI{err: errors.New("feed down")})
	return NewSeriesRefresherService(dao, assembler, horizons), dao
}

func TestRefreshHorizon_CachesSeries(t *testing.T) {
	refresher, dao := newTestRefresher([]int{6})

	if err := refresher.RefreshHorizon(6); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	s, err := dao.GetAssembledSeries(6)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if s == nil || s.IsEmpty() {
		t.Fatal("expected a cached series after refresh")
	}
	if s.Provenance != series.ProvenanceSynthetic {
		t.Errorf("expected synthetic provenance with the feed down, got %q", s.Provenance)
	}
}

func TestRefreshAllHorizons_CoversEveryHorizon(t *testing.T) {
	refresher, dao := newTestRefresher([]int{3, 6, 12})

	refresher.RefreshAllHorizons()

	horizons, err := dao.ListCachedHorizons()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(horizons) != 3 {
		t.Fatalf("expected 3 cached horizons, got %v", horizons)
	}
}

func TestRefreshHorizon_DiscardsStaleResult(t *testing.T) {
	refresher, dao := newTestRefresher([]int{6})

	// A newer assembly already landed for this horizon.
	refresher.mu.Lock()
	refresher.applied[6] = 10
	refresher.mu.Unlock()

	if err := refresher.RefreshHorizon(6); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	s, err := dao.GetAssembledSeries(6)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if s != nil {
		t.Error("stale result must not be stored over a newer one")
	}
}

func TestRefreshHorizon_PropagatesAssemblyError(t *testing.T) {
	refresher, _ := newTestRefresher([]int{6})

	if err := refresher.RefreshHorizon(-1); err == nil {
		t.Error("expected error for invalid horizon")
	}
}
