package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"rentora/internal/wizard"
	"rentora/pkg/utils"
)

// --------- In-memory cache keyed by normalised query ---------

type geocodeCacheEntry struct {
	Location  wizard.Location
	ExpiresAt time.Time
}

type GeocodeCache interface {
	Get(query string) (wizard.Location, bool)
	Set(query string, v wizard.Location, ttl time.Duration)
}

type inMemoryGeocodeCache struct {
	mu    sync.RWMutex
	store map[string]geocodeCacheEntry
}

func NewInMemoryGeocodeCache() GeocodeCache {
	return &inMemoryGeocodeCache{store: make(map[string]geocodeCacheEntry)}
}

func (c *inMemoryGeocodeCache) Get(query string) (wizard.Location, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	it, ok := c.store[query]
	if !ok || time.Now().After(it.ExpiresAt) {
		return wizard.Location{}, false
	}
	return it.Location, true
}

func (c *inMemoryGeocodeCache) Set(query string, v wizard.Location, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := time.Now()
	for k, it := range c.store {
		if now.After(it.ExpiresAt) {
			delete(c.store, k)
		}
	}
	c.store[query] = geocodeCacheEntry{Location: v, ExpiresAt: now.Add(ttl)}
}

// -------------- Mapbox forward geocoding (countries) ---------------

type GeocodeServiceInterface interface {
	// Resolve turns free text or a country code into a place on the map.
	Resolve(ctx context.Context, query string) (wizard.Location, error)
}

type MapboxGeocodeClient struct {
	HTTP        *http.Client
	BaseURL     string
	AccessToken string
	Cache       GeocodeCache
	DefaultTTL  time.Duration
	log         *zap.Logger
}

func NewMapboxGeocodeClient(token string, cache GeocodeCache, log *zap.Logger) *MapboxGeocodeClient {
	return &MapboxGeocodeClient{
		HTTP:        &http.Client{Timeout: 15 * time.Second},
		BaseURL:     "https://api.mapbox.com",
		AccessToken: token,
		Cache:       cache,
		DefaultTTL:  7 * 24 * time.Hour,
		log:         log,
	}
}

type mapboxFeature struct {
	Text       string    `json:"text"`
	PlaceName  string    `json:"place_name"`
	Center     []float64 `json:"center"`
	Properties struct {
		ShortCode string `json:"short_code"`
	} `json:"properties"`
	Context []struct {
		ID   string `json:"id"`
		Text string `json:"text"`
	} `json:"context"`
}

func (c *MapboxGeocodeClient) Resolve(ctx context.Context, query string) (wizard.Location, error) {
	key := strings.ToLower(strings.TrimSpace(query))
	if key == "" {
		return wizard.Location{}, utils.ErrPlaceNotFound
	}
	if loc, ok := c.Cache.Get(key); ok {
		return loc, nil
	}
	if c.AccessToken == "" {
		return wizard.Location{}, fmt.Errorf("%w: MAPBOX_ACCESS_TOKEN is empty", utils.ErrGeocodeFailed)
	}

	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return wizard.Location{}, fmt.Errorf("%w: %v", utils.ErrGeocodeFailed, err)
	}
	u.Path = "/geocoding/v5/mapbox.places/" + url.PathEscape(key) + ".json"
	q := url.Values{}
	q.Set("types", "country")
	q.Set("limit", "1")
	q.Set("access_token", c.AccessToken)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return wizard.Location{}, fmt.Errorf("%w: %v", utils.ErrGeocodeFailed, err)
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return wizard.Location{}, fmt.Errorf("%w: mapbox http error: %v", utils.ErrGeocodeFailed, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return wizard.Location{}, fmt.Errorf("%w: mapbox bad status: %s", utils.ErrGeocodeFailed, resp.Status)
	}

	var payload struct {
		Features []mapboxFeature `json:"features"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return wizard.Location{}, fmt.Errorf("%w: mapbox decode: %v", utils.ErrGeocodeFailed, err)
	}
	if len(payload.Features) == 0 || len(payload.Features[0].Center) < 2 {
		return wizard.Location{}, utils.ErrPlaceNotFound
	}

	f := payload.Features[0]
	code := strings.ToUpper(f.Properties.ShortCode)
	loc := wizard.Location{
		Value:  code,
		Label:  f.Text,
		Flag:   flagEmoji(code),
		LatLng: [2]float64{f.Center[1], f.Center[0]},
	}
	for _, item := range f.Context {
		if strings.HasPrefix(item.ID, "region") {
			loc.Region = item.Text
		}
	}
	if loc.Value == "" {
		loc.Value = f.PlaceName
	}

	c.Cache.Set(key, loc, c.DefaultTTL)
	c.log.Debug("geocoded", zap.String("query", key), zap.String("value", loc.Value))
	return loc, nil
}

// flagEmoji builds the regional-indicator pair for a two letter ISO code.
func flagEmoji(code string) string {
	if len(code) != 2 {
		return ""
	}
	var b strings.Builder
	for _, r := range code {
		if r < 'A' || r > 'Z' {
			return ""
		}
		b.WriteRune(0x1F1E6 + (r - 'A'))
	}
	return b.String()
}
