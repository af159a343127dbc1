package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
)

var errUnexpectedStatus = errors.New("unexpected status code")

// Client fetches current weather from OpenWeatherMap.
type Client struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewClient builds a Client sharing the given process-lifetime HTTP client.
func NewClient(client *http.Client, apiKey string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: "https://api.openweathermap.org/data/2.5/weather",
		client:  client,
	}
}

// Fetch issues a single GET for the city's current weather and returns the
// decoded document unchanged. Any transport error or non-2xx status comes
// back as an error; the caller treats it as a skip signal for that city.
// No retries, no backoff.
func (c *Client) Fetch(ctx context.Context, city string) (Reading, error) {
	values := url.Values{}
	values.Set("q", city)
	values.Set("appid", c.apiKey)
	values.Set("units", "imperial")

	u := fmt.Sprintf("%s?%s", c.baseURL, values.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: %d", errUnexpectedStatus, resp.StatusCode)
	}

	var doc Reading
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, err
	}

	return doc, nil
}
