// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/danielhkuo/movie-night/cliparse"
	"github.com/danielhkuo/movie-night/models"
)

// TMDB serves images as relative paths; full URLs are assembled against
// these bases.
const (
	imageBaseURL = "https://image.tmdb.org/t/p/"
	posterSize   = "w500"
	logoSize     = "w92"
)

// DefaultCacheTTL is the cache hint attached to outgoing requests, in seconds.
const DefaultCacheTTL = 3600

// ErrMissingToken is returned when a request is attempted without a
// configured bearer token.
var ErrMissingToken = errors.New("tmdb: API token not configured")

// Client issues authenticated requests against the TMDB API.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// New builds a catalog client from parsed configuration. A missing token is
// not an error here: each request checks it instead, so catalog failures
// surface per call rather than at startup.
func New(cfg cliparse.Config) *Client {
	return &Client{
		baseURL: cfg.TMDBBaseURL,
		token:   cfg.TMDBToken,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// FetchOptions adjusts a single Fetch call.
type FetchOptions struct {
	// CacheTTL overrides the cache hint, in seconds. Zero means DefaultCacheTTL.
	CacheTTL int
}

// Fetch issues an authenticated GET against the TMDB API. The endpoint may
// carry its own query string. A language parameter is injected unless the
// caller supplied one; a caller-supplied language is never overridden.
// Failures are not retried - the caller maps them to a domain error.
func (c *Client) Fetch(ctx context.Context, endpoint string, opts *FetchOptions) (*http.Response, error) {
	if c.token == "" {
		return nil, ErrMissingToken
	}

	u, err := url.Parse(c.baseURL + endpoint)
	if err != nil {
		return nil, fmt.Errorf("tmdb: parse endpoint %q: %w", endpoint, err)
	}

	q := u.Query()
	if !q.Has("language") {
		q.Set("language", models.DefaultLanguage)
	}
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("tmdb: build request: %w", err)
	}

	ttl := DefaultCacheTTL
	if opts != nil && opts.CacheTTL > 0 {
		ttl = opts.CacheTTL
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Cache-Control", "max-age="+strconv.Itoa(ttl))

	return c.http.Do(req)
}

// get fetches an endpoint and decodes a 2xx JSON body into v.
func (c *Client) get(ctx context.Context, endpoint string, v interface{}) error {
	resp, err := c.Fetch(ctx, endpoint, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("tmdb: %s returned status %d", endpoint, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("tmdb: decode %s response: %w", endpoint, err)
	}
	return nil
}

// Popular returns one page of the popular-movies listing.
func (c *Client) Popular(ctx context.Context, page int) ([]models.Movie, error) {
	var body struct {
		Results []models.Movie `json:"results"`
	}
	if err := c.get(ctx, "/movie/popular?page="+strconv.Itoa(page), &body); err != nil {
		return nil, err
	}
	return body.Results, nil
}

// MovieDetail is the subset of TMDB movie detail used for enrichment.
type MovieDetail struct {
	ID         int64   `json:"id"`
	Title      string  `json:"title"`
	PosterPath *string `json:"poster_path"`
}

// Movie fetches detail for a single movie.
func (c *Client) Movie(ctx context.Context, movieID int64) (MovieDetail, error) {
	var detail MovieDetail
	if err := c.get(ctx, fmt.Sprintf("/movie/%d", movieID), &detail); err != nil {
		return MovieDetail{}, err
	}
	return detail, nil
}

// WatchProvider is a single streaming offering as reported by TMDB.
type WatchProvider struct {
	ProviderID   int64   `json:"provider_id"`
	ProviderName string  `json:"provider_name"`
	LogoPath     *string `json:"logo_path"`
}

// FlatrateProviders fetches the flatrate (subscription) offerings for a
// movie in the given region. A region with no offerings yields nil.
func (c *Client) FlatrateProviders(ctx context.Context, movieID int64, region string) ([]WatchProvider, error) {
	var body struct {
		Results map[string]struct {
			Flatrate []WatchProvider `json:"flatrate"`
		} `json:"results"`
	}
	endpoint := fmt.Sprintf("/movie/%d/watch/providers?watch_region=%s", movieID, region)
	if err := c.get(ctx, endpoint, &body); err != nil {
		return nil, err
	}
	return body.Results[region].Flatrate, nil
}

// PosterURL builds a full poster image URL. A nil or empty path stays nil.
func PosterURL(path *string) *string {
	return imageURL(path, posterSize)
}

// LogoURL builds a full provider logo URL. A nil or empty path stays nil.
func LogoURL(path *string) *string {
	return imageURL(path, logoSize)
}

func imageURL(path *string, size string) *string {
	if path == nil || *path == "" {
		return nil
	}
	u := imageBaseURL + size + *path
	return &u
}
