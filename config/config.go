package config

import (
	"os"
	"path/filepath"
)

// Redis Config
const REDIS_DB_ADDRESS = "redis:6379"
const REDIS_DB_PASSWORD = ""
const REDIS_DB = 0

// Grid feed API
const GRID_FEED_ENDPOINT_BASE = "https://api.carbonintensity.org.uk"

// GRID_FEED_TIMESTAMP_FORMAT is ISO-8601 with second precision, UTC Z suffix,
// no fractional seconds. The feed rejects anything else.
const GRID_FEED_TIMESTAMP_FORMAT = "2006-01-02T15:04:05Z"

// Series shape
const ASSUMED_BASELINE_LOAD_MW = 30000
const HISTORY_WINDOW_HOURS = 24
const SAMPLES_PER_HOUR = 2
const SAMPLE_SPACING_MINUTES = 30

// DEMAND_JITTER_MAX bounds the random fraction added on top of the baseline
// load when estimating demand. The feed carries no load figure at all, so
// demand is always an approximation.
const DEMAND_JITTER_MAX = 0.04

// Synthetic series curve constants
const SYNTHETIC_BASE_DEMAND_MW = 450.0
const SYNTHETIC_MORNING_PEAK_HOUR = 9.0
const SYNTHETIC_MORNING_PEAK_MW = 180.0
const SYNTHETIC_EVENING_PEAK_HOUR = 19.0
const SYNTHETIC_EVENING_PEAK_MW = 150.0
const SYNTHETIC_PEAK_WIDTH_HOURS = 2.5
const SYNTHETIC_DIURNAL_AMPLITUDE_MW = 50.0
const SYNTHETIC_DEMAND_NOISE_MW = 10.0
const SYNTHETIC_SOLAR_PEAK_MW = 500.0
const SYNTHETIC_SOLAR_START_HOUR = 6.0
const SYNTHETIC_SOLAR_END_HOUR = 18.0
const SYNTHETIC_CLOUD_COVER_CHANCE = 0.2
const SYNTHETIC_CLOUD_COVER_MAX_MW = 100.0

// Series Refresher config
const SERIES_REFRESHER_SCHEDULE_SECONDS = 60

// SUPPORTED_HORIZONS_HOURS are the forecast horizons pre-warmed by the
// refresher. Ad-hoc horizons are still assembled on demand.
var SUPPORTED_HORIZONS_HOURS = []int{3, 6, 12, 24}

const DEFAULT_HORIZON_HOURS = 6

// HTTP server config
const SERVER_ADDRESS = ":8080"

// Resources file paths
const RESOURCES_PATH_PREFIX = "resources"
const GENERATION_MIX_RESPONSE_RESOURCE = "generation_mix_response.json"

// BaseDir returns the absolute path of the project root directory
func BaseDir() string {
	// Check if PROJECT_ROOT is set
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	// Default to the current working directory
	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}

	return wd
}

func GetResourcePath(resource_file string) string {
	return filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX, resource_file)
}
