package server

import (
	"net/http"

	"github.com/gorilla/mux"
)

// ForecastRoutes is the handler surface the router wires up.
type ForecastRoutes interface {
	GetForecast(w http.ResponseWriter, r *http.Request)
	GetForecastFixed(w http.ResponseWriter, r *http.Request)
	GetDashboard(w http.ResponseWriter, r *http.Request)
	Ping(w http.ResponseWriter, r *http.Request)
}

type Router struct {
	forecastHandler ForecastRoutes
	router          *mux.Router
}

// NewRouter creates a router with the app's routes.
func NewRouter(
	forecastHandler ForecastRoutes,
	router *mux.Router) *Router {
	return &Router{
		forecastHandler: forecastHandler,
		router:          router,
	}
}

func (r *Router) RegisterRoutes() {
	// expects ?horizon={hours(int)}, defaulting when absent
	r.router.HandleFunc("/v1/forecast", r.forecastHandler.GetForecast).Methods("GET")

	// fixed-horizon variants, e.g. /v1/forecast/6h
	r.router.HandleFunc("/v1/forecast/{horizon:[0-9]+}h", r.forecastHandler.GetForecastFixed).Methods("GET")

	r.router.HandleFunc("/dashboard", r.forecastHandler.GetDashboard).Methods("GET")

	r.router.HandleFunc("/ping", r.forecastHandler.Ping).Methods("GET")
}
