package gridfeed

import (
	"fmt"
	"time"

	"gridsense-server/config"
	"gridsense-server/models"
	"gridsense-server/util"
)

// GridFeedApiClientMock serves a canned generation-mix response from a local
// fixture, for offline and dev runs.
type GridFeedApiClientMock struct {
}

// NewGridFeedApiClientMock creates a new instance of GridFeedApiClientMock
func NewGridFeedApiClientMock() *GridFeedApiClientMock {
	return &GridFeedApiClientMock{}
}

// GetGenerationMix ignores the requested window and returns the fixture.
func (c *GridFeedApiClientMock) GetGenerationMix(from, to time.Time) (*models.GenerationMixResponse, error) {
	response, err := util.ReadGenerationMixResponseFromJSON(
		config.GetResourcePath(config.GENERATION_MIX_RESPONSE_RESOURCE))
	if err != nil {
		fmt.Println("Could not read generation mix response from json")
		return nil, err
	}

	return response, nil
}
