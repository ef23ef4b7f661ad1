package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gorilla/mux"

	"gridsense-server/config"
	"gridsense-server/dao/redis"
	"gridsense-server/models/series"
	services "gridsense-server/service"
	"gridsense-server/util"
)

const (
	HORIZON_QUERY_ARG = "horizon"
	HORIZON_PATH_ARG  = "horizon"
)

// ForecastResponse is the envelope returned for a series request. Source
// discloses where the data came from (live feed or synthetic fallback).
type ForecastResponse struct {
	Status string                    `json:"status"`
	Source string                    `json:"source"`
	Data   []series.NormalizedSample `json:"data"`
}

type ForecastHandler struct {
	seriesDao *redis.RedisSeriesDAO
	assembler *services.SeriesAssembler
}

func NewForecastHandler(seriesDao *redis.RedisSeriesDAO, assembler *services.SeriesAssembler) *ForecastHandler {
	return &ForecastHandler{
		seriesDao: seriesDao,
		assembler: assembler,
	}
}

// GetForecast handles GET /v1/forecast?horizon=H
func (h *ForecastHandler) GetForecast(w http.ResponseWriter, r *http.Request) {
	horizonHours, ok := h.parseHorizonArg(r.URL.Query(), w)
	if !ok {
		return // error already written
	}
	h.serveSeries(w, horizonHours)
}

// GetForecastFixed handles GET /v1/forecast/{horizon}h
func (h *ForecastHandler) GetForecastFixed(w http.ResponseWriter, r *http.Request) {
	horizonHours, err := strconv.Atoi(mux.Vars(r)[HORIZON_PATH_ARG])
	if err != nil || horizonHours <= 0 {
		http.Error(w, "Invalid horizon", http.StatusBadRequest)
		return
	}
	h.serveSeries(w, horizonHours)
}

// GetDashboard handles GET /dashboard?horizon=H and renders the chart.
func (h *ForecastHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	horizonHours, ok := h.parseHorizonArg(r.URL.Query(), w)
	if !ok {
		return
	}

	s := h.loadSeries(horizonHours)
	if s.IsEmpty() {
		http.Error(w, "No data yet", http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := util.RenderSeriesChart(s, w); err != nil {
		log.Println("Error rendering dashboard:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

// Ping handles GET /ping
func (h *ForecastHandler) Ping(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "pong"})
}

func (h *ForecastHandler) serveSeries(w http.ResponseWriter, horizonHours int) {
	s := h.loadSeries(horizonHours)

	status := "success"
	if s.IsEmpty() {
		// "No data yet" is a valid response, not a failure.
		status = "no_data"
	}

	resp := ForecastResponse{
		Status: status,
		Source: string(s.Provenance),
		Data:   s.Samples,
	}
	if resp.Data == nil {
		resp.Data = []series.NormalizedSample{}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Println("Error encoding response:", err)
	}
}

// loadSeries serves the refresher's cached series when the horizon is warm,
// otherwise assembles one on demand.
func (h *ForecastHandler) loadSeries(horizonHours int) *series.AssembledSeries {
	cached, err := h.seriesDao.GetAssembledSeries(horizonHours)
	if err != nil {
		log.Printf("Error loading cached series for horizon=%dh: %v", horizonHours, err)
	}
	if cached != nil && !cached.IsEmpty() {
		return cached
	}

	s, err := h.assembler.AssembleSeries(horizonHours)
	if err != nil {
		log.Printf("Error assembling series for horizon=%dh: %v", horizonHours, err)
		return &series.AssembledSeries{HorizonHours: horizonHours}
	}
	return s
}

func (h *ForecastHandler) parseHorizonArg(vals url.Values, w http.ResponseWriter) (int, bool) {
	raw := vals.Get(HORIZON_QUERY_ARG)
	if raw == "" {
		return config.DEFAULT_HORIZON_HOURS, true
	}
	horizonHours, err := strconv.Atoi(raw)
	if err != nil || horizonHours <= 0 {
		http.Error(w, "Invalid argument "+HORIZON_QUERY_ARG, http.StatusBadRequest)
		return 0, false
	}
	return horizonHours, true
}
