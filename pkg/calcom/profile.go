package calcom

import (
	"context"
	"net/http"
)

// GetMe returns the profile of the user owning the API key
func (c *Client) GetMe(ctx context.Context) *Response[UserProfile] {
	return call[UserProfile](ctx, c, http.MethodGet, "/me", nil, nil)
}

// UpdateMe applies a partial update to the profile
func (c *Client) UpdateMe(ctx context.Context, req UpdateUserProfileRequest) *Response[UserProfile] {
	return call[UserProfile](ctx, c, http.MethodPatch, "/me", nil, req)
}
