package calcom

import (
	"context"
	"net/http"
)

func (c *Client) ListOAuthClients(ctx context.Context) *Response[[]OAuthClient] {
	return call[[]OAuthClient](ctx, c, http.MethodGet, "/oauth-clients", nil, nil)
}

func (c *Client) GetOAuthClient(ctx context.Context, id string) *Response[OAuthClient] {
	return call[OAuthClient](ctx, c, http.MethodGet, uidPath("oauth-clients", id), nil, nil)
}

// CreateOAuthClient registers a platform OAuth client. The returned secret is
// shown only once.
func (c *Client) CreateOAuthClient(ctx context.Context, req CreateOAuthClientRequest) *Response[CreateOAuthClientResponse] {
	return call[CreateOAuthClientResponse](ctx, c, http.MethodPost, "/oauth-clients", nil, req)
}

func (c *Client) UpdateOAuthClient(ctx context.Context, id string, req UpdateOAuthClientRequest) *Response[OAuthClient] {
	return call[OAuthClient](ctx, c, http.MethodPatch, uidPath("oauth-clients", id), nil, req)
}

func (c *Client) DeleteOAuthClient(ctx context.Context, id string) *Response[DeleteResult] {
	return call[DeleteResult](ctx, c, http.MethodDelete, uidPath("oauth-clients", id), nil, nil)
}
