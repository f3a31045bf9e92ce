package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"fandom/internal/middleware"
	"fandom/internal/models"
)

// Resolver looks up profile records by numeric id. Implementations fail
// with an EXTERNAL_SERVICE error on any non-success response or network
// failure; retrying is the caller's responsibility.
type Resolver interface {
	ResolveArtist(ctx context.Context, artistID uint) (*ArtistProfile, error)
	ResolveUser(ctx context.Context, userID uint) (*UserProfile, error)
}

// Client is the HTTP implementation of Resolver.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a Resolver against the identity service at baseURL.
// Every call is bounded by timeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// ResolveArtist fetches an artist profile via GET {base}/artistas/{id}.
func (c *Client) ResolveArtist(ctx context.Context, artistID uint) (*ArtistProfile, error) {
	var profile ArtistProfile
	url := fmt.Sprintf("%s/artistas/%d", c.baseURL, artistID)
	if err := c.getJSON(ctx, url, "artist", &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// ResolveUser fetches a user profile via GET {base}/{id}.
func (c *Client) ResolveUser(ctx context.Context, userID uint) (*UserProfile, error) {
	var profile UserProfile
	url := fmt.Sprintf("%s/%d", c.baseURL, userID)
	if err := c.getJSON(ctx, url, "user", &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (c *Client) getJSON(ctx context.Context, url, kind string, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return models.NewInternalError(err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		middleware.IdentityLookups.WithLabelValues(kind, "error").Inc()
		return models.NewExternalServiceError("connection failed", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		middleware.IdentityLookups.WithLabelValues(kind, "error").Inc()
		return models.NewExternalServiceError(
			fmt.Sprintf("service responded %d for %s lookup", resp.StatusCode, kind), nil)
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		middleware.IdentityLookups.WithLabelValues(kind, "error").Inc()
		return models.NewExternalServiceError("invalid response body", err)
	}

	middleware.IdentityLookups.WithLabelValues(kind, "ok").Inc()
	return nil
}
