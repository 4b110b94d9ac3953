package igdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	apperrors "game-watchlist-backend/internal/errors"

	"golang.org/x/time/rate"
)

const (
	// DefaultBaseURL is the catalog query endpoint root.
	DefaultBaseURL = "https://api.igdb.com/v4"
	// DefaultAuthURL is the Twitch client-credentials token endpoint.
	DefaultAuthURL = "https://id.twitch.tv/oauth2/token"

	// MaxSearchLimit is the provider's page-size ceiling.
	MaxSearchLimit = 50

	// tokenSafetyMargin: a token is treated as expired this long before the
	// provider says it is.
	tokenSafetyMargin = 60 * time.Second

	// IGDB allows 4 requests per second per client id.
	rateLimit = 4
	rateBurst = 8
)

const searchFields = "name, cover.url, summary, screenshots.url, artworks.url, videos.video_id"

const detailFields = "name, cover.url, summary, aggregated_rating, genres.name, " +
	"platforms.name, first_release_date, " +
	"involved_companies.company.name, " +
	"involved_companies.company.country, " +
	"involved_companies.company.start_date, " +
	"involved_companies.developer, involved_companies.publisher, " +
	"dlcs.name, dlcs.summary, " +
	"screenshots.url, artworks.url, videos.video_id"

// tokenResponse is the OAuth client-credentials grant response.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
	TokenType   string `json:"token_type"`
}

// Client queries the IGDB catalog. The bearer token is process-wide state:
// lazily populated, invalidated by expiry comparison, refresh guarded by a
// mutex so concurrent requests never refresh redundantly.
type Client struct {
	baseURL      string
	authURL      string
	clientID     string
	clientSecret string
	httpClient   *http.Client
	limiter      *rate.Limiter

	mu             sync.Mutex
	accessToken    string
	tokenExpiresAt time.Time
}

// NewClient creates a catalog client. Empty baseURL/authURL fall back to the
// production endpoints.
func NewClient(clientID, clientSecret, baseURL, authURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if authURL == "" {
		authURL = DefaultAuthURL
	}
	return &Client{
		baseURL:      baseURL,
		authURL:      authURL,
		clientID:     clientID,
		clientSecret: clientSecret,
		limiter:      rate.NewLimiter(rate.Limit(rateLimit), rateBurst),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

// Search issues a full-text search with pagination and returns normalized
// results. The limit is clamped to the provider maximum.
func (c *Client) Search(ctx context.Context, query string, limit, offset int) ([]GameResult, error) {
	if limit < 1 {
		limit = 1
	}
	if limit > MaxSearchLimit {
		limit = MaxSearchLimit
	}
	if offset < 0 {
		offset = 0
	}

	body := fmt.Sprintf(`search %q; fields %s; limit %d; offset %d;`, query, searchFields, limit, offset)
	games, err := c.queryGames(ctx, "search", body)
	if err != nil {
		return nil, err
	}

	results := make([]GameResult, 0, len(games))
	for i := range games {
		results = append(results, Normalize(&games[i]))
	}
	return results, nil
}

// GetByID fetches one game with the extended field set. Returns (nil, nil)
// when the catalog has no record for the id.
func (c *Client) GetByID(ctx context.Context, id int64) (*Game, error) {
	body := fmt.Sprintf(`fields %s; where id = %d;`, detailFields, id)
	games, err := c.queryGames(ctx, "get", body)
	if err != nil {
		return nil, err
	}
	if len(games) == 0 {
		return nil, nil
	}
	return &games[0], nil
}

// ensureToken returns a valid bearer token, acquiring one if absent or
// expired. The mutex makes the refresh single-flight.
func (c *Client) ensureToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.accessToken != "" && time.Now().Before(c.tokenExpiresAt) {
		return c.accessToken, nil
	}

	params := url.Values{}
	params.Set("client_id", c.clientID)
	params.Set("client_secret", c.clientSecret)
	params.Set("grant_type", "client_credentials")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.authURL+"?"+params.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("create token request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", apperrors.NewUpstreamError("authenticate", 0, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(resp.Body)
		return "", apperrors.NewUpstreamError("authenticate", resp.StatusCode, string(payload))
	}

	var token tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&token); err != nil {
		return "", apperrors.NewUpstreamError("authenticate", resp.StatusCode, fmt.Sprintf("decode token response: %v", err))
	}

	c.accessToken = token.AccessToken
	c.tokenExpiresAt = time.Now().Add(time.Duration(token.ExpiresIn)*time.Second - tokenSafetyMargin)

	return c.accessToken, nil
}

// queryGames posts an Apicalypse query body to the games endpoint. Failures
// are not retried; a single failed call surfaces immediately.
func (c *Client) queryGames(ctx context.Context, op, body string) ([]Game, error) {
	token, err := c.ensureToken(ctx)
	if err != nil {
		return nil, err
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/games", strings.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create games request: %w", err)
	}
	req.Header.Set("Client-ID", c.clientID)
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.NewUpstreamError(op, 0, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(resp.Body)
		return nil, apperrors.NewUpstreamError(op, resp.StatusCode, string(payload))
	}

	var games []Game
	if err := json.NewDecoder(resp.Body).Decode(&games); err != nil {
		return nil, apperrors.NewUpstreamError(op, resp.StatusCode, fmt.Sprintf("decode games response: %v", err))
	}

	return games, nil
}
