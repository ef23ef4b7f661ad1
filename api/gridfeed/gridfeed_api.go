package gridfeed

import (
	"time"

	"gridsense-server/models"
)

// GridFeedAPI defines the interface for interacting with the external
// generation-mix time-series source.
type GridFeedAPI interface {
	GetGenerationMix(from, to time.Time) (*models.GenerationMixResponse, error)
}
