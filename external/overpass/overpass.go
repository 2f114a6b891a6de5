package overpass

import (
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Public Overpass mirrors, tried in order. The primary instance rate
// limits aggressively, so a single-endpoint client falls over in
// production.
var defaultEndpoints = []string{
	"https://overpass-api.de/api/interpreter",
	"https://overpass.kumi.systems/api/interpreter",
	"https://maps.mail.ru/osm/tools/overpass/api/interpreter",
}

type center struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Element is one OpenStreetMap feature returned by an Overpass query.
// Nodes carry coordinates directly; ways carry them in `center`.
type Element struct {
	Type   string            `json:"type"`
	ID     int64             `json:"id"`
	Lat    float64           `json:"lat"`
	Lon    float64           `json:"lon"`
	Center *center           `json:"center"`
	Tags   map[string]string `json:"tags"`
}

// Coordinates returns the element position regardless of element type.
func (e Element) Coordinates() (float64, float64) {
	if e.Center != nil {
		return e.Center.Lat, e.Center.Lon
	}
	return e.Lat, e.Lon
}

func (e Element) Name() string {
	return e.Tags["name"]
}

type queryResponse struct {
	Elements []Element `json:"elements"`
}

type Client struct {
	httpClient *http.Client
	endpoints  []string
}

func New(client *http.Client, endpoints []string) *Client {
	e := defaultEndpoints
	if len(endpoints) > 0 {
		e = endpoints
	}

	return &Client{
		httpClient: client,
		endpoints:  e,
	}
}

// SearchHospitals finds OSM hospitals within radiusKm of a point.
func (c *Client) SearchHospitals(ctx context.Context, lat, lng, radiusKm float64) ([]Element, error) {
	radiusM := radiusKm * 1000
	query := fmt.Sprintf(
		`[out:json][timeout:90];(node["amenity"="hospital"](around:%.0f,%f,%f);way["amenity"="hospital"](around:%.0f,%f,%f););out center;`,
		radiusM, lat, lng, radiusM, lat, lng,
	)

	return c.run(ctx, query)
}

// run posts the query to each mirror until one answers.
func (c *Client) run(ctx context.Context, query string) ([]Element, error) {
	var errorStrings []string
	for _, endpoint := range c.endpoints {
		elements, err := c.runOnce(ctx, endpoint, query)
		if err != nil {
			log.WithField("prefix", "overpass").WithError(err).WithField("endpoint", endpoint).Warn("mirror failed, trying next")
			errorStrings = append(errorStrings, fmt.Sprintf("%s: %s", endpoint, err.Error()))
			continue
		}
		return elements, nil
	}

	return nil, fmt.Errorf("all overpass mirrors failed: %s", strings.Join(errorStrings, "; "))
}

func (c *Client) runOnce(ctx context.Context, endpoint, query string) ([]Element, error) {
	form := url.Values{}
	form.Set("data", query)

	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("overpass responds with status: %d", resp.StatusCode)
	}

	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var result queryResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, err
	}

	return result.Elements, nil
}
