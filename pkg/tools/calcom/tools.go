// Package calcom exposes the Cal.com API as validated tools.
package calcom

import (
	"context"
	"fmt"

	cal "github.com/soypete/rendevu/pkg/calcom"
	"github.com/soypete/rendevu/pkg/tools"
)

// API is the subset of the Cal.com client used by the tools
type API interface {
	ListSchedules(ctx context.Context) *cal.Response[[]cal.Schedule]
	GetSchedule(ctx context.Context, id int) *cal.Response[cal.Schedule]
	CreateSchedule(ctx context.Context, req cal.CreateScheduleRequest) *cal.Response[cal.Schedule]
	UpdateSchedule(ctx context.Context, id int, req cal.UpdateScheduleRequest) *cal.Response[cal.Schedule]
	DeleteSchedule(ctx context.Context, id int) *cal.Response[cal.DeleteResult]

	ListEventTypes(ctx context.Context) *cal.Response[[]cal.EventType]
	GetEventType(ctx context.Context, id int) *cal.Response[cal.EventType]
	CreateEventType(ctx context.Context, req cal.CreateEventTypeRequest) *cal.Response[cal.EventType]
	UpdateEventType(ctx context.Context, id int, req cal.UpdateEventTypeRequest) *cal.Response[cal.EventType]
	DeleteEventType(ctx context.Context, id int) *cal.Response[cal.DeleteResult]

	ListBookings(ctx context.Context, filter cal.ListBookingsFilter) *cal.Response[[]cal.Booking]
	GetBooking(ctx context.Context, uid string) *cal.Response[cal.Booking]
	CreateBooking(ctx context.Context, req cal.CreateBookingRequest) *cal.Response[cal.Booking]
	RescheduleBooking(ctx context.Context, uid string, req cal.RescheduleBookingRequest) *cal.Response[cal.Booking]
	CancelBooking(ctx context.Context, uid string, req cal.CancelBookingRequest) *cal.Response[cal.Booking]

	GetAvailableSlots(ctx context.Context, q cal.SlotsQuery) *cal.Response[cal.AvailableSlots]

	GetMe(ctx context.Context) *cal.Response[cal.UserProfile]
	UpdateMe(ctx context.Context, req cal.UpdateUserProfileRequest) *cal.Response[cal.UserProfile]

	ListOAuthClients(ctx context.Context) *cal.Response[[]cal.OAuthClient]
	GetOAuthClient(ctx context.Context, id string) *cal.Response[cal.OAuthClient]
	CreateOAuthClient(ctx context.Context, req cal.CreateOAuthClientRequest) *cal.Response[cal.CreateOAuthClientResponse]
	UpdateOAuthClient(ctx context.Context, id string, req cal.UpdateOAuthClientRequest) *cal.Response[cal.OAuthClient]
	DeleteOAuthClient(ctx context.Context, id string) *cal.Response[cal.DeleteResult]
}

// Tool is one Cal.com operation. Arguments are checked against the schema
// before run is called, so run may decode without further checks.
type Tool struct {
	name        string
	description string
	schema      map[string]interface{}
	api         API
	run         func(ctx context.Context, api API, args map[string]interface{}) (*tools.Result, error)
}

func (t *Tool) Name() string                        { return t.name }
func (t *Tool) Description() string                 { return t.description }
func (t *Tool) InputSchema() map[string]interface{} { return t.schema }

// Execute validates the arguments and performs a single upstream call
func (t *Tool) Execute(ctx context.Context, args map[string]interface{}) (*tools.Result, error) {
	if err := tools.Validate(t.name, t.schema, args); err != nil {
		return nil, err
	}
	if args == nil {
		args = map[string]interface{}{}
	}
	return t.run(ctx, t.api, args)
}

// All returns every Cal.com tool bound to api
func All(api API) []*Tool {
	var all []*Tool
	for _, group := range [][]*Tool{
		scheduleTools(), eventTypeTools(), bookingTools(), slotTools(), profileTools(), oauthClientTools(),
	} {
		for _, t := range group {
			t.api = api
			all = append(all, t)
		}
	}
	return all
}

// Register adds every Cal.com tool to the registry
func Register(registry *tools.ToolRegistry, api API) error {
	for _, t := range All(api) {
		if err := registry.Register(t); err != nil {
			return fmt.Errorf("failed to register %s: %w", t.name, err)
		}
	}
	return nil
}

// decodeInto narrows validated args into a typed request
func decodeInto[T any](args map[string]interface{}) (T, error) {
	var v T
	err := tools.DecodeArgs(args, &v)
	return v, err
}

// render turns an envelope into a tool result. The upstream data is printed
// as received, so fields the typed structs do not model are kept.
func render[T any](resp *cal.Response[T]) *tools.Result {
	if !resp.Success() {
		return tools.ErrorResult(resp.Err().Message)
	}
	if len(resp.Raw) > 0 {
		return tools.JSONResult(resp.Raw)
	}
	return tools.JSONResult(resp.Data)
}

// confirm turns an envelope into a fixed confirmation message on success
func confirm[T any](resp *cal.Response[T], message string) *tools.Result {
	if !resp.Success() {
		return tools.ErrorResult(resp.Err().Message)
	}
	return tools.TextResult(message)
}

// deleted prefers the upstream message and falls back to a default
func deleted(resp *cal.Response[cal.DeleteResult], fallback string) *tools.Result {
	if !resp.Success() {
		return tools.ErrorResult(resp.Err().Message)
	}
	if resp.Data.Message != "" {
		return tools.TextResult(resp.Data.Message)
	}
	return tools.TextResult(fallback)
}
