package geocode

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
)

// ErrNoResult is returned when the geocoder finds no match for a query.
var ErrNoResult = errors.New("geocode: no result")

const defaultBaseURL = "https://nominatim.openstreetmap.org"

type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Client talks to a Nominatim-compatible geocoding service. It translates
// postal addresses to coordinates and back.
type Client struct {
	http    *resty.Client
	baseURL string
}

func NewClient() *Client {
	base := os.Getenv("NOMINATIM_URL")
	if base == "" {
		base = defaultBaseURL
	}
	return NewClientWithBaseURL(base)
}

func NewClientWithBaseURL(baseURL string) *Client {
	return &Client{
		http: resty.New().
			SetTimeout(10 * time.Second).
			SetHeader("User-Agent", "ecobites-api"),
		baseURL: baseURL,
	}
}

// Forward resolves a free-form address query to coordinates.
func (c *Client) Forward(ctx context.Context, query string) (Coordinates, error) {
	var results []struct {
		Lat string `json:"lat"`
		Lon string `json:"lon"`
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"q":      query,
			"format": "json",
			"limit":  "1",
		}).
		SetResult(&results).
		Get(c.baseURL + "/search")
	if err != nil {
		return Coordinates{}, err
	}
	if resp.StatusCode() != http.StatusOK {
		return Coordinates{}, fmt.Errorf("geocode search failed with status %d", resp.StatusCode())
	}
	if len(results) == 0 {
		return Coordinates{}, ErrNoResult
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return Coordinates{}, fmt.Errorf("geocode: invalid latitude %q: %w", results[0].Lat, err)
	}
	lng, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return Coordinates{}, fmt.Errorf("geocode: invalid longitude %q: %w", results[0].Lon, err)
	}

	return Coordinates{Latitude: lat, Longitude: lng}, nil
}

// Reverse resolves coordinates to a display address.
func (c *Client) Reverse(ctx context.Context, lat, lng float64) (string, error) {
	var result struct {
		DisplayName string `json:"display_name"`
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"format": "jsonv2",
			"lat":    strconv.FormatFloat(lat, 'f', -1, 64),
			"lon":    strconv.FormatFloat(lng, 'f', -1, 64),
		}).
		SetResult(&result).
		Get(c.baseURL + "/reverse")
	if err != nil {
		return "", err
	}
	if resp.StatusCode() != http.StatusOK {
		return "", fmt.Errorf("reverse geocode failed with status %d", resp.StatusCode())
	}
	if result.DisplayName == "" {
		return "", ErrNoResult
	}

	return result.DisplayName, nil
}
