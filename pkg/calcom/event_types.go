package calcom

import (
	"context"
	"net/http"
)

func (c *Client) ListEventTypes(ctx context.Context) *Response[[]EventType] {
	return call[[]EventType](ctx, c, http.MethodGet, "/event-types", nil, nil)
}

func (c *Client) GetEventType(ctx context.Context, id int) *Response[EventType] {
	return call[EventType](ctx, c, http.MethodGet, idPath("event-types", id), nil, nil)
}

func (c *Client) CreateEventType(ctx context.Context, req CreateEventTypeRequest) *Response[EventType] {
	return call[EventType](ctx, c, http.MethodPost, "/event-types", nil, req)
}

func (c *Client) UpdateEventType(ctx context.Context, id int, req UpdateEventTypeRequest) *Response[EventType] {
	return call[EventType](ctx, c, http.MethodPatch, idPath("event-types", id), nil, req)
}

func (c *Client) DeleteEventType(ctx context.Context, id int) *Response[DeleteResult] {
	return call[DeleteResult](ctx, c, http.MethodDelete, idPath("event-types", id), nil, nil)
}
