package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/i-ankit-here/scrap-con-backend/internal/config"
)

var ErrGeocodingFailed = errors.New("failed to retrieve location details")

// Location is the normalized result of a geocoding lookup.
type Location struct {
	Latitude  float64
	Longitude float64
	City      string
	State     string
	Pincode   string
}

// Geocoder resolves coordinates or a postal code into a normalized Location.
// It is an external collaborator; services depend on this interface.
type Geocoder interface {
	Resolve(ctx context.Context, latitude, longitude float64) (*Location, error)
	ResolveByPincode(ctx context.Context, pincode string) (*Location, error)
}

// GeocodingService talks to the configured geocoding HTTP API.
type GeocodingService struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewGeocodingService(cfg *config.Config) *GeocodingService {
	return &GeocodingService{
		baseURL: cfg.GeocodingAPIURL,
		apiKey:  cfg.GeocodingAPIKey,
		client:  &http.Client{Timeout: cfg.GeocodingTimeout},
	}
}

// geocodeResponse mirrors the collaborator's wire format: a GeoJSON-style
// point (lon first) plus textual address fields.
type geocodeResponse struct {
	Coordinates struct {
		Coordinates [2]float64 `json:"coordinates"`
	} `json:"coordinates"`
	Pincode string `json:"pincode"`
	City    string `json:"city"`
	State   string `json:"state"`
}

func (s *GeocodingService) Resolve(ctx context.Context, latitude, longitude float64) (*Location, error) {
	params := url.Values{}
	params.Set("lat", fmt.Sprintf("%f", latitude))
	params.Set("lon", fmt.Sprintf("%f", longitude))
	return s.lookup(ctx, "/reverse", params)
}

func (s *GeocodingService) ResolveByPincode(ctx context.Context, pincode string) (*Location, error) {
	params := url.Values{}
	params.Set("pinCode", pincode)
	return s.lookup(ctx, "/search", params)
}

func (s *GeocodingService) lookup(ctx context.Context, path string, params url.Values) (*Location, error) {
	if s.apiKey != "" {
		params.Set("apiKey", s.apiKey)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geocoding request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%w: status %d: %s", ErrGeocodingFailed, resp.StatusCode, string(body))
	}

	var parsed geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGeocodingFailed, err)
	}

	return &Location{
		Longitude: parsed.Coordinates.Coordinates[0],
		Latitude:  parsed.Coordinates.Coordinates[1],
		City:      parsed.City,
		State:     parsed.State,
		Pincode:   parsed.Pincode,
	}, nil
}
