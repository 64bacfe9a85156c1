// Package identity validates bearer tokens against the identity provider
// (a Supabase-style GoTrue endpoint).
package identity

import (
	"context"
	"errors"
	"fmt"

	domsvc "astropredict/internal/domain/service"
	"astropredict/pkg/config"
	xhttp "astropredict/pkg/http"

	"github.com/google/uuid"
)

// ErrInvalidToken is returned for missing, malformed, or expired tokens.
var ErrInvalidToken = errors.New("identity: invalid token")

// Client resolves bearer tokens to user identities.
type Client struct {
	baseURL string
	anonKey string
	http    *xhttp.Client
}

// New builds an identity client from config.
func New(cfg *config.Config) *Client {
	return &Client{
		baseURL: cfg.Auth.URL,
		anonKey: cfg.Auth.AnonKey,
		http:    xhttp.NewClient(xhttp.WithTimeout(cfg.Auth.Timeout)),
	}
}

type userResp struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Verify validates the token with the provider and returns the resolved
// identity. Any provider failure is terminal for the request; no retries.
func (c *Client) Verify(ctx context.Context, token string) (*domsvc.Identity, error) {
	if token == "" {
		return nil, ErrInvalidToken
	}

	var resp userResp
	err := c.http.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodGet,
		URL:    c.baseURL + "/auth/v1/user",
		Headers: map[string]string{
			"Authorization": "Bearer " + token,
			"apikey":        c.anonKey,
		},
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	userID, err := uuid.Parse(resp.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: bad user id", ErrInvalidToken)
	}

	return &domsvc.Identity{UserID: userID, Email: resp.Email}, nil
}

var _ domsvc.TokenVerifier = (*Client)(nil)
