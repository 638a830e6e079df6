package geocode

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/communitycal/events-api/pkg/cache"
)

type fakeHTTPClient struct {
	calls    int
	respBody []byte
	err      error
}

func (f *fakeHTTPClient) Do(ctx context.Context, method, url string, reqBody []byte, headers map[string]string) ([]byte, error) {
	f.calls++
	return f.respBody, f.err
}

const locationIQResponse = `[{
	"lat": "50.110922",
	"lon": "8.682127",
	"class": "boundary",
	"display_name": "Frankfurt am Main, Hesse, Germany",
	"address": {"city": "Frankfurt am Main", "country": "Germany"},
	"geojson": {"type": "Polygon", "coordinates": [[[8.4,50.0],[8.9,50.0],[8.9,50.2],[8.4,50.2],[8.4,50.0]]]}
}]`

func TestLocationIQSearch(t *testing.T) {
	ctx := context.Background()

	t.Run("Testcase #1: positive, parse provider response", func(t *testing.T) {
		c := cache.NewInMemCache(time.Minute)
		defer c.Close()
		client := &fakeHTTPClient{respBody: []byte(locationIQResponse)}
		geocoder := NewLocationIQ(client, c, "https://locationiq.test/v1/search", "key", time.Minute)

		result, err := geocoder.Search(ctx, "Frankfurt")
		require.NoError(t, err)
		assert.Equal(t, 50.110922, result.Lat)
		assert.Equal(t, 8.682127, result.Lon)
		assert.Equal(t, "boundary", result.Class)
		assert.True(t, result.IsPlace())
		assert.True(t, result.HasArea())
		assert.Equal(t, "Germany", result.Address["country"])
	})

	t.Run("Testcase #2: cache hit skips provider, key normalized", func(t *testing.T) {
		c := cache.NewInMemCache(time.Minute)
		defer c.Close()
		client := &fakeHTTPClient{respBody: []byte(locationIQResponse)}
		geocoder := NewLocationIQ(client, c, "https://locationiq.test/v1/search", "key", time.Minute)

		_, err := geocoder.Search(ctx, "Frankfurt")
		require.NoError(t, err)
		_, err = geocoder.Search(ctx, "  FRANKFURT ")
		require.NoError(t, err)
		assert.Equal(t, 1, client.calls)
	})

	t.Run("Testcase #3: empty provider response", func(t *testing.T) {
		c := cache.NewInMemCache(time.Minute)
		defer c.Close()
		client := &fakeHTTPClient{respBody: []byte(`[]`)}
		geocoder := NewLocationIQ(client, c, "https://locationiq.test/v1/search", "key", time.Minute)

		_, err := geocoder.Search(ctx, "nowhere at all")
		assert.Equal(t, ErrNoResult, err)
	})

	t.Run("Testcase #4: blank query never hits provider", func(t *testing.T) {
		c := cache.NewInMemCache(time.Minute)
		defer c.Close()
		client := &fakeHTTPClient{respBody: []byte(locationIQResponse)}
		geocoder := NewLocationIQ(client, c, "https://locationiq.test/v1/search", "key", time.Minute)

		_, err := geocoder.Search(ctx, "   ")
		assert.Equal(t, ErrNoResult, err)
		assert.Zero(t, client.calls)
	})
}
