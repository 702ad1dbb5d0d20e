package calcom

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// Query returns the slot search as query parameters
func (q SlotsQuery) Query() url.Values {
	params := url.Values{}
	if q.EventTypeID > 0 {
		params.Set("eventTypeId", strconv.Itoa(q.EventTypeID))
	}
	if q.EventTypeSlug != "" {
		params.Set("eventTypeSlug", q.EventTypeSlug)
	}
	if q.Username != "" {
		params.Set("username", q.Username)
	}
	params.Set("start", q.Start)
	params.Set("end", q.End)
	if q.TimeZone != "" {
		params.Set("timeZone", q.TimeZone)
	}
	return params
}

// GetAvailableSlots lists bookable times in the requested window
func (c *Client) GetAvailableSlots(ctx context.Context, q SlotsQuery) *Response[AvailableSlots] {
	return call[AvailableSlots](ctx, c, http.MethodGet, "/slots", q.Query(), nil)
}
