// Package places is a client for the Google Places API (v1) implementing
// service.PlaceProvider.
package places

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"tablescout/internal/domain/entity"
	domainerrors "tablescout/internal/domain/errors"
	"tablescout/internal/domain/service"
	"tablescout/internal/errors"

	"golang.org/x/time/rate"
)

const (
	defaultBaseURL   = "https://places.googleapis.com/v1"
	defaultType      = "restaurant"
	defaultTTL       = 7 * 24 * time.Hour
	maxResultCount   = 20
	maxRadiusMeters  = 50_000.0
	errorBodyMaxSize = 1 << 10
)

// Option configures the client.
type Option func(*Client)

// WithBaseURL overrides the default API base URL.
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimSuffix(url, "/")
	}
}

// WithHTTPClient overrides the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// WithRateLimit limits outgoing requests per second.
func WithRateLimit(perSecond float64, burst int) Option {
	return func(c *Client) {
		if perSecond > 0 {
			c.limiter = rate.NewLimiter(rate.Limit(perSecond), max(burst, 1))
		}
	}
}

// WithLanguageCode sets the language of returned text.
func WithLanguageCode(code string) Option {
	return func(c *Client) {
		c.languageCode = code
	}
}

// WithEntityTTL sets the freshness window stamped on fetched places.
func WithEntityTTL(ttl time.Duration) Option {
	return func(c *Client) {
		if ttl > 0 {
			c.ttl = ttl
		}
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(c *Client) {
		c.now = now
	}
}

// Client calls the Places API.
type Client struct {
	apiKey       string
	baseURL      string
	languageCode string
	http         *http.Client
	limiter      *rate.Limiter
	ttl          time.Duration
	now          func() time.Time
}

var _ service.PlaceProvider = (*Client)(nil)

// NewClient creates a Places API client.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		http: &http.Client{
			Timeout: 10 * time.Second,
		},
		limiter: rate.NewLimiter(rate.Inf, 1),
		ttl:     defaultTTL,
		now:     time.Now,
	}
	for _, o := range opts {
		o(c)
	}

	return c
}

// SearchNearby returns light records of places around a point, nearest first.
func (c *Client) SearchNearby(ctx context.Context, req *service.SearchRequest) ([]*entity.Place, error) {
	includedType := req.Category
	if includedType == "" {
		includedType = defaultType
	}

	maxResults := req.MaxResults
	if maxResults <= 0 || maxResults > maxResultCount {
		maxResults = maxResultCount
	}

	body, err := json.Marshal(searchNearbyRequest{
		IncludedTypes:  []string{includedType},
		MaxResultCount: maxResults,
		LocationRestriction: locationRestriction{Circle: circle{
			Center: latLng{Latitude: req.Lat, Longitude: req.Lng},
			Radius: min(req.RadiusMeters, maxRadiusMeters),
		}},
		RankPreference: "DISTANCE",
		LanguageCode:   c.languageCode,
	})
	if err != nil {
		return nil, errors.Wrap(err, "places: marshal request")
	}

	mask := make([]string, 0, len(service.SummaryFields))
	for _, field := range service.SummaryFields {
		mask = append(mask, "places."+field)
	}

	var resp searchNearbyResponse
	if err := c.do(ctx, http.MethodPost, c.baseURL+"/places:searchNearby", body, mask, &resp); err != nil {
		return nil, err
	}

	fetchedAt := c.now()
	places := make([]*entity.Place, 0, len(resp.Places))
	for i := range resp.Places {
		places = append(places, resp.Places[i].toDomain(fetchedAt, c.ttl, false))
	}

	return places, nil
}

// GetDetails fetches one place restricted to the given field mask.
func (c *Client) GetDetails(ctx context.Context, id string, fields []string) (*entity.Place, error) {
	if len(fields) == 0 {
		fields = service.RichFields
	}

	endpoint := c.baseURL + "/places/" + url.PathEscape(id)
	if c.languageCode != "" {
		endpoint += "?languageCode=" + url.QueryEscape(c.languageCode)
	}

	var place apiPlace
	if err := c.do(ctx, http.MethodGet, endpoint, nil, fields, &place); err != nil {
		return nil, err
	}
	if place.ID == "" {
		place.ID = id
	}

	return place.toDomain(c.now(), c.ttl, isRichMask(fields)), nil
}

func (c *Client) do(ctx context.Context, method, endpoint string, body []byte, fieldMask []string, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return classify(err)
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return errors.Wrap(err, "places: create request")
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Goog-Api-Key", c.apiKey)
	req.Header.Set("X-Goog-FieldMask", strings.Join(fieldMask, ","))

	resp, err := c.http.Do(req)
	if err != nil {
		return classify(err)
	}
	defer resp.Body.Close() //nolint:errcheck

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusNotFound:
		return domainerrors.ErrPlaceNotFound
	case resp.StatusCode == http.StatusGatewayTimeout || resp.StatusCode == http.StatusRequestTimeout:
		return domainerrors.ErrUpstreamTimeout.WithCause(errors.Errorf("places: status %d", resp.StatusCode))
	default:
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyMaxSize))

		return domainerrors.ErrUpstreamUnavailable.WithCause(
			errors.Errorf("places: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet))))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return domainerrors.ErrUpstreamUnavailable.WithCause(errors.Wrap(err, "places: decode response"))
	}

	return nil
}

func isRichMask(fields []string) bool {
	for _, field := range fields {
		if field == "reviews" || field == "editorialSummary" {
			return true
		}
	}

	return false
}

// classify maps transport failures to domain errors.
func classify(err error) error {
	if errors.IsTimeout(err) {
		return domainerrors.ErrUpstreamTimeout.WithCause(err)
	}

	return domainerrors.ErrUpstreamUnavailable.WithCause(errors.Wrap(err, "places: send request"))
}
