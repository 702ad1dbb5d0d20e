package calcom

import (
	"context"
	"net/http"
)

// ListSchedules returns every schedule of the authenticated user
func (c *Client) ListSchedules(ctx context.Context) *Response[[]Schedule] {
	return call[[]Schedule](ctx, c, http.MethodGet, "/schedules", nil, nil)
}

// GetSchedule returns one schedule by id
func (c *Client) GetSchedule(ctx context.Context, id int) *Response[Schedule] {
	return call[Schedule](ctx, c, http.MethodGet, idPath("schedules", id), nil, nil)
}

// CreateSchedule creates a new availability schedule
func (c *Client) CreateSchedule(ctx context.Context, req CreateScheduleRequest) *Response[Schedule] {
	return call[Schedule](ctx, c, http.MethodPost, "/schedules", nil, req)
}

// UpdateSchedule applies a partial update to a schedule
func (c *Client) UpdateSchedule(ctx context.Context, id int, req UpdateScheduleRequest) *Response[Schedule] {
	return call[Schedule](ctx, c, http.MethodPatch, idPath("schedules", id), nil, req)
}

// DeleteSchedule removes a schedule
func (c *Client) DeleteSchedule(ctx context.Context, id int) *Response[DeleteResult] {
	return call[DeleteResult](ctx, c, http.MethodDelete, idPath("schedules", id), nil, nil)
}
