package geocode

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/communitycal/events-api/pkg/cache"
	"github.com/communitycal/events-api/pkg/geo"
	"github.com/communitycal/events-api/pkg/httpclient"
	"github.com/communitycal/events-api/pkg/logger"
	"github.com/communitycal/events-api/pkg/tracer"
)

type locationIQPlace struct {
	Lat         string                 `json:"lat"`
	Lon         string                 `json:"lon"`
	Class       string                 `json:"class"`
	DisplayName string                 `json:"display_name"`
	Address     map[string]interface{} `json:"address"`
	GeoJSON     *geo.Geometry          `json:"geojson"`
}

type locationIQ struct {
	client   httpclient.HTTPRequest
	cache    cache.Cache
	baseURL  string
	apiKey   string
	cacheTTL time.Duration
}

// NewLocationIQ geocoder with response cache in front of the provider
func NewLocationIQ(client httpclient.HTTPRequest, cache cache.Cache, baseURL, apiKey string, cacheTTL time.Duration) Geocoder {
	return &locationIQ{
		client:   client,
		cache:    cache,
		baseURL:  baseURL,
		apiKey:   apiKey,
		cacheTTL: cacheTTL,
	}
}

// Search forward geocode, raw provider responses cached by normalized query
func (l *locationIQ) Search(ctx context.Context, query string) (result *Result, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "LocationIQ:Search")
	defer func() {
		if err != nil {
			trace.SetError(err)
		}
		trace.Finish()
	}()

	normalized := strings.ToLower(strings.TrimSpace(query))
	if normalized == "" {
		return nil, ErrNoResult
	}
	trace.SetTag("query", normalized)

	cacheKey := "geocode_" + normalized
	raw, err := l.cache.Get(ctx, cacheKey)
	if err != nil {
		qs := url.Values{}
		qs.Set("key", l.apiKey)
		qs.Set("q", query)
		qs.Set("format", "json")
		qs.Set("polygon_geojson", "1")
		qs.Set("addressdetails", "1")
		qs.Set("limit", "1")
		qs.Set("dedupe", "1")

		raw, err = l.client.Do(ctx, http.MethodGet, l.baseURL+"?"+qs.Encode(), nil, map[string]string{"Accept": "application/json"})
		if err != nil {
			return nil, err
		}

		if cacheErr := l.cache.Set(ctx, cacheKey, raw, l.cacheTTL); cacheErr != nil {
			logger.LogEf("geocode: failed cache response for %s: %v", normalized, cacheErr)
		}
	}

	var places []locationIQPlace
	if err := json.Unmarshal(raw, &places); err != nil {
		return nil, err
	}
	if len(places) == 0 {
		return nil, ErrNoResult
	}

	place := places[0]
	lat, _ := strconv.ParseFloat(place.Lat, 64)
	lon, _ := strconv.ParseFloat(place.Lon, 64)
	return &Result{
		Lat:         lat,
		Lon:         lon,
		Class:       place.Class,
		DisplayName: place.DisplayName,
		Address:     place.Address,
		GeoJSON:     place.GeoJSON,
	}, nil
}
