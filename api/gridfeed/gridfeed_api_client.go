package gridfeed

import (
	"fmt"
	"time"

	"gridsense-server/api"
	"gridsense-server/config"
	"gridsense-server/models"
)

// GridFeedApiClient embeds the common HTTPClient
type GridFeedApiClient struct {
	*api.HTTPClient // Embed HTTPClient to reuse its methods and properties
}

// NewGridFeedApiClient creates a new instance of GridFeedApiClient
func NewGridFeedApiClient(httpClient *api.HTTPClient) *GridFeedApiClient {
	return &GridFeedApiClient{
		HTTPClient: httpClient,
	}
}

// GetGenerationMix retrieves the generation mix for the [from, to] window.
// Timestamps go on the path in UTC with second precision.
func (c *GridFeedApiClient) GetGenerationMix(from, to time.Time) (*models.GenerationMixResponse, error) {
	endpoint := fmt.Sprintf("/generation/%s/%s",
		from.UTC().Format(config.GRID_FEED_TIMESTAMP_FORMAT),
		to.UTC().Format(config.GRID_FEED_TIMESTAMP_FORMAT))

	var response models.GenerationMixResponse
	err := c.Request("GET", endpoint, nil, &response)
	if err != nil {
		return nil, err
	}
	return &response, nil
}
