package gridfeed

import (
	"testing"
	"time"

	"gridsense-server/config"
	"gridsense-server/util"

	"github.com/stretchr/testify/assert"
)

func TestGetGenerationMix_Mock(t *testing.T) {
	t.Setenv("PROJECT_ROOT", "../..")

	// Arrange
	client := NewGridFeedApiClientMock()

	expected_response, err := util.ReadGenerationMixResponseFromJSON(
		config.GetResourcePath(config.GENERATION_MIX_RESPONSE_RESOURCE))
	if err != nil {
		t.Fatalf("expected no error when reading expected response, got %v", err)
	}

	// Act
	response, err := client.GetGenerationMix(time.Now().Add(-time.Hour), time.Now())

	// Assert
	if err != nil {
		t.Errorf("expected no error, got %v", err)
	}

	assert.Equal(t, expected_response, response, "Responses dont match")
	assert.NotEmpty(t, response.Data, "Fixture should carry data points")
}
