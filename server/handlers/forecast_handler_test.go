package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"

	"gridsense-server/config"
	daoredis "gridsense-server/dao/redis"
	"gridsense-server/db"
	"gridsense-server/models"
	"gridsense-server/models/series"
	services "gridsense-server/service"
)

// stubGridFeedAPI returns a canned response or error.
type stubGridFeedAPI struct {
	resp *models.GenerationMixResponse
	err  error
}

func (s *stubGridFeedAPI) GetGenerationMix(from, to time.Time) (*models.GenerationMixResponse, error) {
	return s.resp, s.err
}

func newTestHandler(feed *stubGridFeedAPI) (*ForecastHandler, *daoredis.RedisSeriesDAO) {
	dao := daoredis.NewRedisSeriesDAO(db.NewMockRedisClient(context.Background()))
	deriver := services.NewMetricDeriver(config.ASSUMED_BASELINE_LOAD_MW,
		services.NewJitterDemandEstimator(config.ASSUMED_BASELINE_LOAD_MW, config.DEMAND_JITTER_MAX))
	adapter := services.NewLiveFeedAdapter(feed, deriver)
	assembler := services.NewSeriesAssembler(adapter, services.NewSyntheticSeriesGenerator())
	return NewForecastHandler(dao, assembler), dao
}

func TestGetForecast_InvalidHorizon(t *testing.T) {
	handler, _ := newTestHandler(&stubGridFeedAPI{err: errors.New("feed down")})

	for _, horizon := range []string{"abc", "0", "-3"} {
		req := httptest.NewRequest("GET", "/v1/forecast?horizon="+horizon, nil)
		rr := httptest.NewRecorder()

		handler.GetForecast(rr, req)

		if rr.Code != http.StatusBadRequest {
			t.Errorf("horizon=%q: expected status 400, got %d", horizon, rr.Code)
		}
	}
}

func TestGetForecast_SyntheticFallback(t *testing.T) {
	handler, _ := newTestHandler(&stubGridFeedAPI{err: errors.New("feed down")})

	req := httptest.NewRequest("GET", "/v1/forecast?horizon=6", nil)
	rr := httptest.NewRecorder()

	handler.GetForecast(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}

	var resp ForecastResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Status != "success" {
		t.Errorf("expected status 'success', got %q", resp.Status)
	}
	if resp.Source != string(series.ProvenanceSynthetic) {
		t.Errorf("expected source 'synthetic', got %q", resp.Source)
	}
	wantPoints := (config.HISTORY_WINDOW_HOURS + 6) * config.SAMPLES_PER_HOUR
	if len(resp.Data) != wantPoints {
		t.Errorf("expected %d samples, got %d", wantPoints, len(resp.Data))
	}
}

func TestGetForecast_DefaultHorizon(t *testing.T) {
	handler, _ := newTestHandler(&stubGridFeedAPI{err: errors.New("feed down")})

	req := httptest.NewRequest("GET", "/v1/forecast", nil)
	rr := httptest.NewRecorder()

	handler.GetForecast(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
	var resp ForecastResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	wantPoints := (config.HISTORY_WINDOW_HOURS + config.DEFAULT_HORIZON_HOURS) * config.SAMPLES_PER_HOUR
	if len(resp.Data) != wantPoints {
		t.Errorf("expected %d samples for default horizon, got %d", wantPoints, len(resp.Data))
	}
}

func TestGetForecast_PrefersCachedSeries(t *testing.T) {
	handler, dao := newTestHandler(&stubGridFeedAPI{err: errors.New("feed down")})

	now := time.Now()
	cached := &series.AssembledSeries{
		ReferenceNow: now,
		HorizonHours: 6,
		Provenance:   series.ProvenanceLiveFeed,
		Samples: []series.NormalizedSample{
			{Timestamp: now, TimeLabel: "12:00", DemandMW: 30000, SupplyMW: 12000, GapMW: 18000, Provenance: series.ProvenanceLiveFeed},
		},
	}
	if err := dao.SetAssembledSeries(cached); err != nil {
		t.Fatalf("failed to seed cache: %v", err)
	}

	req := httptest.NewRequest("GET", "/v1/forecast?horizon=6", nil)
	rr := httptest.NewRecorder()

	handler.GetForecast(rr, req)

	var resp ForecastResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Source != string(series.ProvenanceLiveFeed) {
		t.Errorf("expected cached live series, got source %q", resp.Source)
	}
	if len(resp.Data) != 1 {
		t.Errorf("expected 1 cached sample, got %d", len(resp.Data))
	}
}

func TestGetForecastFixed_ViaRouter(t *testing.T) {
	handler, _ := newTestHandler(&stubGridFeedAPI{err: errors.New("feed down")})

	router := mux.NewRouter()
	router.HandleFunc("/v1/forecast/{horizon:[0-9]+}h", handler.GetForecastFixed).Methods("GET")

	req := httptest.NewRequest("GET", "/v1/forecast/3h", nil)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
	var resp ForecastResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	wantPoints := (config.HISTORY_WINDOW_HOURS + 3) * config.SAMPLES_PER_HOUR
	if len(resp.Data) != wantPoints {
		t.Errorf("expected %d samples, got %d", wantPoints, len(resp.Data))
	}
}

func TestGetDashboard_RendersChart(t *testing.T) {
	handler, _ := newTestHandler(&stubGridFeedAPI{err: errors.New("feed down")})

	req := httptest.NewRequest("GET", "/dashboard?horizon=6", nil)
	rr := httptest.NewRecorder()

	handler.GetDashboard(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("expected HTML content type, got %q", ct)
	}
	if !strings.Contains(rr.Body.String(), "Demand (MW)") {
		t.Error("dashboard body missing demand series")
	}
}

func TestPing(t *testing.T) {
	handler, _ := newTestHandler(&stubGridFeedAPI{})

	req := httptest.NewRequest("GET", "/ping", nil)
	rr := httptest.NewRecorder()

	handler.Ping(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "pong") {
		t.Errorf("expected pong body, got %s", rr.Body.String())
	}
}
