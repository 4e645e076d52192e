// Package spacex is the client for the SpaceX launch-history query API.
package spacex

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// DefaultQueryURL is the v4 launches query endpoint.
const DefaultQueryURL = "https://api.spacexdata.com/v4/launches/query"

// LaunchDoc is one launch document from the provider's query response.
type LaunchDoc struct {
	FlightNumber int       `json:"flight_number"`
	Name         string    `json:"name"`
	Rocket       Rocket    `json:"rocket"`
	DateLocal    string    `json:"date_local"`
	Upcoming     bool      `json:"upcoming"`
	Success      bool      `json:"success"`
	Payloads     []Payload `json:"payloads"`
}

// Rocket is the populated rocket sub-document.
type Rocket struct {
	Name string `json:"name"`
}

// Payload is the populated payload sub-document.
type Payload struct {
	Customers []string `json:"customers"`
}

type queryRequest struct {
	Query   map[string]interface{} `json:"query"`
	Options queryOptions           `json:"options"`
}

type queryOptions struct {
	Pagination bool            `json:"pagination"`
	Populate   []populateField `json:"populate"`
}

type populateField struct {
	Path   string         `json:"path"`
	Select map[string]int `json:"select"`
}

type queryResponse struct {
	Docs []LaunchDoc `json:"docs"`
}

// Client fetches launch history from the SpaceX query API.
type Client struct {
	url        string
	httpClient *http.Client
}

// NewClient creates a new SpaceX API client. url is the full query endpoint.
func NewClient(url string) *Client {
	return &Client{
		url: url,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// QueryAllLaunches requests the full launch history in one batch with
// provider-side pagination disabled and the rocket name and payload
// customers populated. A non-success status or an undecodable response is
// an error.
func (c *Client) QueryAllLaunches(ctx context.Context) ([]LaunchDoc, error) {
	body := queryRequest{
		Query: map[string]interface{}{},
		Options: queryOptions{
			Pagination: false,
			Populate: []populateField{
				{Path: "rocket", Select: map[string]int{"name": 1}},
				{Path: "payloads", Select: map[string]int{"customers": 1}},
			},
		},
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("launch data download failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("launch data download failed: status %d", resp.StatusCode)
	}

	var decoded queryResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode launch data: %w", err)
	}
	return decoded.Docs, nil
}
