// Package geocode resolves addresses to coordinates and back through the
// Nominatim (OpenStreetMap) API.
package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sosdefesa/admin/internal/apperr"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

type searchResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

type reverseResult struct {
	Address struct {
		Road          string `json:"road"`
		Neighbourhood string `json:"neighbourhood"`
		Suburb        string `json:"suburb"`
		City          string `json:"city"`
		Postcode      string `json:"postcode"`
	} `json:"address"`
}

// Search forward-geocodes a free-text address and returns the first match.
func (c *Client) Search(ctx context.Context, address string) (lat, lon float64, err error) {
	endpoint := fmt.Sprintf("%s/search?format=json&q=%s", c.baseURL, url.QueryEscape(address))

	var results []searchResult
	if err := c.get(ctx, endpoint, &results); err != nil {
		return 0, 0, err
	}
	if len(results) == 0 {
		return 0, 0, fmt.Errorf("%w: address not found", apperr.ErrNetwork)
	}

	lat, err = strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: invalid latitude %q", apperr.ErrNetwork, results[0].Lat)
	}
	lon, err = strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: invalid longitude %q", apperr.ErrNetwork, results[0].Lon)
	}
	return lat, lon, nil
}

// Reverse looks up the address label for a coordinate pair. The label is
// assembled from road, neighbourhood, suburb, city and postcode, skipping
// parts the provider left empty.
func (c *Client) Reverse(ctx context.Context, lat, lon float64) (string, error) {
	endpoint := fmt.Sprintf("%s/reverse?format=json&lat=%g&lon=%g", c.baseURL, lat, lon)

	var result reverseResult
	if err := c.get(ctx, endpoint, &result); err != nil {
		return "", err
	}

	parts := []string{
		result.Address.Road,
		result.Address.Neighbourhood,
		result.Address.Suburb,
		result.Address.City,
		result.Address.Postcode,
	}
	present := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			present = append(present, p)
		}
	}
	return strings.Join(present, ", "), nil
}

func (c *Client) get(ctx context.Context, endpoint string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", apperr.ErrNetwork, err)
	}
	// Nominatim's usage policy requires an identifying agent.
	req.Header.Set("User-Agent", "sosdefesa-admin/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", apperr.ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: geocoder returned status %d", apperr.ErrNetwork, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %v", apperr.ErrNetwork, err)
	}
	return nil
}
