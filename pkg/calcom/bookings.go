package calcom

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// Query returns the filter as query parameters. Unset fields are left out.
func (f ListBookingsFilter) Query() url.Values {
	params := url.Values{}
	if f.Status != "" {
		params.Set("status", f.Status)
	}
	if f.EventTypeID > 0 {
		params.Set("eventTypeId", strconv.Itoa(f.EventTypeID))
	}
	if f.AttendeeEmail != "" {
		params.Set("attendeeEmail", f.AttendeeEmail)
	}
	return params
}

// ListBookings retrieves bookings matching the filter
func (c *Client) ListBookings(ctx context.Context, filter ListBookingsFilter) *Response[[]Booking] {
	return call[[]Booking](ctx, c, http.MethodGet, "/bookings", filter.Query(), nil)
}

// GetBooking retrieves a specific booking by UID
func (c *Client) GetBooking(ctx context.Context, uid string) *Response[Booking] {
	return call[Booking](ctx, c, http.MethodGet, uidPath("bookings", uid), nil, nil)
}

// CreateBooking books a slot on an event type
func (c *Client) CreateBooking(ctx context.Context, req CreateBookingRequest) *Response[Booking] {
	return call[Booking](ctx, c, http.MethodPost, "/bookings", nil, req)
}

// RescheduleBooking moves a booking to a new start time
func (c *Client) RescheduleBooking(ctx context.Context, uid string, req RescheduleBookingRequest) *Response[Booking] {
	return call[Booking](ctx, c, http.MethodPost, uidPath("bookings", uid)+"/reschedule", nil, req)
}

// CancelBooking cancels a booking. The body is always sent, and is {} when no
// reason is given.
func (c *Client) CancelBooking(ctx context.Context, uid string, req CancelBookingRequest) *Response[Booking] {
	return call[Booking](ctx, c, http.MethodPost, uidPath("bookings", uid)+"/cancel", nil, req)
}
