// api/http_client.go
package api

import (
	"encoding/json"
	"errors"
	"io/ioutil"
	"net/http"
	"time"
)

// HTTPClient struct to hold base URL and HTTP client configuration
type HTTPClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewHTTPClient creates a new instance of HTTPClient with default settings
func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second, // Set a timeout for requests
		},
	}
}

// Request makes an HTTP request to the API and decodes the response
func (c *HTTPClient) Request(method, endpoint string, headers map[string]string, response interface{}) error {
	url := c.BaseURL + endpoint
	req, err := http.NewRequest(method, url, nil)
	if err != nil {
		return err
	}

	req.Header.Set("Accept", "application/json")
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	res, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	resBody, err := ioutil.ReadAll(res.Body)
	if err != nil {
		return err
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return errors.New("unexpected status code: " + res.Status)
	}

	if response != nil {
		return json.Unmarshal(resBody, response)
	}

	return nil
}
