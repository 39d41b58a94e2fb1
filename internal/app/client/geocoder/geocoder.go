// Package geocoder ищет места по названию через Nominatim-совместимый API.
package geocoder

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"golang.org/x/exp/slog"
)

const (
	searchLimit = 5
	userAgent   = "RideJournal-Client/1.0"
)

var (
	ErrEmptyQuery = errors.New("введите название места")
	ErrNoResults  = errors.New("ничего не найдено, попробуйте другой запрос")
)

type Address struct {
	City     string `json:"city,omitempty"`
	State    string `json:"state,omitempty"`
	Country  string `json:"country,omitempty"`
	Postcode string `json:"postcode,omitempty"`
}

type Place struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Lat        float64 `json:"lat"`
	Lng        float64 `json:"lng"`
	Address    Address `json:"address"`
	Type       string  `json:"type"`
	Importance float64 `json:"importance"`
}

// nominatimPlace - ответ Nominatim: координаты приходят строками
type nominatimPlace struct {
	PlaceID     json.Number `json:"place_id"`
	DisplayName string      `json:"display_name"`
	Lat         string      `json:"lat"`
	Lon         string      `json:"lon"`
	Type        string      `json:"type"`
	Importance  float64     `json:"importance"`
	Address     struct {
		City     string `json:"city"`
		Town     string `json:"town"`
		Village  string `json:"village"`
		State    string `json:"state"`
		Country  string `json:"country"`
		Postcode string `json:"postcode"`
	} `json:"address"`
}

type Client struct {
	baseURL string
	http    *http.Client
	cache   *cache.Cache
	log     *slog.Logger
}

// New создает клиент геокодера; ответы Search кэшируются на ttl
func New(baseURL string, timeout, ttl time.Duration, log *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		cache:   cache.New(ttl, ttl*2),
		log:     log.With("component", "geocoder"),
	}
}

// HTTPClient возвращает используемый *http.Client (нужен тестам для httpmock)
func (c *Client) HTTPClient() *http.Client {
	return c.http
}

// Search возвращает до пяти мест по запросу
func (c *Client) Search(ctx context.Context, query string) ([]Place, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}

	cacheKey := "search:" + strings.ToLower(query)
	if cached, found := c.cache.Get(cacheKey); found {
		c.log.Debug("geocoder cache hit", "query", query)
		return cached.([]Place), nil
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("limit", strconv.Itoa(searchLimit))
	params.Set("addressdetails", "1")

	var raw []nominatimPlace
	if err := c.get(ctx, "/search?"+params.Encode(), &raw); err != nil {
		return nil, fmt.Errorf("поиск места: %w", err)
	}
	if len(raw) == 0 {
		return nil, ErrNoResults
	}

	places := make([]Place, 0, len(raw))
	for _, r := range raw {
		p, err := r.toPlace()
		if err != nil {
			c.log.Debug("skipping place with bad coordinates", "place_id", r.PlaceID, "error", err)
			continue
		}
		places = append(places, p)
	}
	if len(places) == 0 {
		return nil, ErrNoResults
	}

	c.cache.Set(cacheKey, places, cache.DefaultExpiration)
	return places, nil
}

// Reverse возвращает название точки. Если геокодер недоступен, возвращается
// заглушка "Current Location (lat, lng)" с исходными координатами.
func (c *Client) Reverse(ctx context.Context, lat, lng float64) Place {
	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(lng, 'f', -1, 64))
	params.Set("format", "json")
	params.Set("addressdetails", "1")

	var raw nominatimPlace
	if err := c.get(ctx, "/reverse?"+params.Encode(), &raw); err != nil || raw.DisplayName == "" {
		c.log.Debug("reverse geocoding failed", "error", err)
		return Place{
			ID:         "current",
			Name:       fmt.Sprintf("Current Location (%.4f, %.4f)", lat, lng),
			Lat:        lat,
			Lng:        lng,
			Type:       "current_location",
			Importance: 1,
		}
	}

	p := Place{
		ID:         raw.PlaceID.String(),
		Name:       raw.DisplayName,
		Lat:        lat,
		Lng:        lng,
		Address:    raw.address(),
		Type:       "current_location",
		Importance: 1,
	}
	return p
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("геокодер вернул статус %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	return json.Unmarshal(body, out)
}

func (r nominatimPlace) toPlace() (Place, error) {
	lat, err := strconv.ParseFloat(r.Lat, 64)
	if err != nil {
		return Place{}, err
	}
	lng, err := strconv.ParseFloat(r.Lon, 64)
	if err != nil {
		return Place{}, err
	}
	return Place{
		ID:         r.PlaceID.String(),
		Name:       r.DisplayName,
		Lat:        lat,
		Lng:        lng,
		Address:    r.address(),
		Type:       r.Type,
		Importance: r.Importance,
	}, nil
}

func (r nominatimPlace) address() Address {
	city := r.Address.City
	if city == "" {
		city = r.Address.Town
	}
	if city == "" {
		city = r.Address.Village
	}
	return Address{
		City:     city,
		State:    r.Address.State,
		Country:  r.Address.Country,
		Postcode: r.Address.Postcode,
	}
}
