package nominatim

import (
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"
	"strconv"

	"github.com/lifelink-inc/lifelink-api/schema"
)

const (
	defaultEndpoint = "https://nominatim.openstreetmap.org"
	userAgent       = "lifelink-api/1.0"
)

var (
	ErrPlaceNotFound   = fmt.Errorf("no place found for the given query")
	ErrAddressNotFound = fmt.Errorf("no address found for the given coordinates")
)

type searchResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

type reverseResult struct {
	DisplayName string `json:"display_name"`
	Error       string `json:"error"`
}

// Client resolves free-form place queries against the OpenStreetMap
// Nominatim service. It satisfies geo.Geocoder.
type Client struct {
	httpClient *http.Client
	endpoint   string
}

func New(client *http.Client, endpoint string) *Client {
	e := defaultEndpoint
	if endpoint != "" {
		e = endpoint
	}

	return &Client{
		httpClient: client,
		endpoint:   e,
	}
}

func (c *Client) Geocode(ctx context.Context, query string) (schema.Location, error) {
	v := url.Values{}
	v.Set("q", query)
	v.Set("format", "json")
	v.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, "GET", fmt.Sprintf("%s/search?%s", c.endpoint, v.Encode()), nil)
	if err != nil {
		return schema.Location{}, err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return schema.Location{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return schema.Location{}, fmt.Errorf("nominatim search responds with status: %d", resp.StatusCode)
	}

	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return schema.Location{}, err
	}

	var results []searchResult
	if err := json.Unmarshal(body, &results); err != nil {
		return schema.Location{}, err
	}

	if len(results) == 0 {
		return schema.Location{}, ErrPlaceNotFound
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return schema.Location{}, err
	}
	lng, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return schema.Location{}, err
	}

	return schema.Location{
		Latitude:  lat,
		Longitude: lng,
		Address:   results[0].DisplayName,
	}, nil
}

func (c *Client) ReverseGeocode(ctx context.Context, lat, lng float64) (string, error) {
	v := url.Values{}
	v.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	v.Set("lon", strconv.FormatFloat(lng, 'f', -1, 64))
	v.Set("format", "json")

	req, err := http.NewRequestWithContext(ctx, "GET", fmt.Sprintf("%s/reverse?%s", c.endpoint, v.Encode()), nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("nominatim reverse responds with status: %d", resp.StatusCode)
	}

	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	var result reverseResult
	if err := json.Unmarshal(body, &result); err != nil {
		return "", err
	}

	if result.Error != "" || result.DisplayName == "" {
		return "", ErrAddressNotFound
	}

	return result.DisplayName, nil
}
