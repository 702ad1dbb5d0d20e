package calcom

import (
	"context"
	"fmt"

	cal "github.com/soypete/rendevu/pkg/calcom"
	"github.com/soypete/rendevu/pkg/tools"
)

func nonNegativeInteger(description string) map[string]interface{} {
	s := tools.Integer(description)
	s["minimum"] = 0
	return s
}

func locationsSchema() map[string]interface{} {
	return tools.Array("Meeting locations (e.g., Zoom, Google Meet, in-person)", tools.Object(map[string]interface{}{
		"type":    tools.String("Location type (e.g., integration, address, link, phone)"),
		"link":    tools.String("Meeting link"),
		"address": tools.String("Physical address"),
		"phone":   tools.String("Phone number"),
	}, "type"))
}

// eventTypeSettings are the optional fields shared by create and update
func eventTypeSettings(props map[string]interface{}) map[string]interface{} {
	settings := map[string]interface{}{
		"locations":            locationsSchema(),
		"scheduleId":           tools.PositiveInteger("ID of the schedule to use for availability"),
		"hidden":               tools.Boolean("Whether to hide this event type from the public page"),
		"requiresConfirmation": tools.Boolean("Whether bookings require manual confirmation"),
		"disableGuests":        tools.Boolean("Whether to prevent attendees from adding guests"),
		"minimumBookingNotice": nonNegativeInteger("Minimum notice required before booking (in minutes)"),
		"beforeEventBuffer":    nonNegativeInteger("Buffer time before the event (in minutes)"),
		"afterEventBuffer":     nonNegativeInteger("Buffer time after the event (in minutes)"),
		"slotInterval":         tools.PositiveInteger("Interval between available slots (in minutes)"),
	}
	for k, v := range props {
		settings[k] = v
	}
	return settings
}

type eventTypeArgs struct {
	EventTypeID int `json:"eventTypeId"`
}

type updateEventTypeArgs struct {
	EventTypeID int `json:"eventTypeId"`
	cal.UpdateEventTypeRequest
}

func eventTypeTools() []*Tool {
	return []*Tool{
		{
			name:        "list_event_types",
			description: "Get all event types for the authenticated user. Returns a list of event types with their IDs, titles, slugs, durations, and settings.",
			schema:      tools.Object(map[string]interface{}{}),
			run: func(ctx context.Context, api API, _ map[string]interface{}) (*tools.Result, error) {
				return render(api.ListEventTypes(ctx)), nil
			},
		},
		{
			name:        "get_event_type",
			description: "Get detailed information about a specific event type by ID. Returns full event type details including locations, buffers, and scheduling settings.",
			schema: tools.Object(map[string]interface{}{
				"eventTypeId": tools.PositiveInteger("The ID of the event type to retrieve"),
			}, "eventTypeId"),
			run: func(ctx context.Context, api API, args map[string]interface{}) (*tools.Result, error) {
				a, err := decodeInto[eventTypeArgs](args)
				if err != nil {
					return nil, err
				}
				return render(api.GetEventType(ctx, a.EventTypeID)), nil
			},
		},
		{
			name:        "create_event_type",
			description: "Create a new event type. Requires title, slug, and duration. Can optionally set locations, schedule, visibility, and buffer times.",
			schema: tools.Object(eventTypeSettings(map[string]interface{}{
				"title":           tools.NonEmptyString(`Display name for the event type (e.g., "30 Minute Meeting")`),
				"slug":            tools.NonEmptyString(`URL-friendly identifier (e.g., "30min")`),
				"lengthInMinutes": tools.PositiveInteger("Duration of the event in minutes"),
				"description":     tools.String("Description shown on the booking page"),
			}), "title", "slug", "lengthInMinutes"),
			run: func(ctx context.Context, api API, args map[string]interface{}) (*tools.Result, error) {
				req, err := decodeInto[cal.CreateEventTypeRequest](args)
				if err != nil {
					return nil, err
				}
				return render(api.CreateEventType(ctx, req)), nil
			},
		},
		{
			name:        "update_event_type",
			description: "Update an existing event type. Can modify title, duration, locations, visibility, and other settings.",
			schema: tools.Object(eventTypeSettings(map[string]interface{}{
				"eventTypeId":     tools.PositiveInteger("The ID of the event type to update"),
				"title":           tools.NonEmptyString("New display name"),
				"slug":            tools.NonEmptyString("New URL slug"),
				"lengthInMinutes": tools.PositiveInteger("New duration in minutes"),
				"description":     tools.String("New description"),
			}), "eventTypeId"),
			run: func(ctx context.Context, api API, args map[string]interface{}) (*tools.Result, error) {
				a, err := decodeInto[updateEventTypeArgs](args)
				if err != nil {
					return nil, err
				}
				return render(api.UpdateEventType(ctx, a.EventTypeID, a.UpdateEventTypeRequest)), nil
			},
		},
		{
			name:        "delete_event_type",
			description: "Delete an event type by ID. This action is irreversible.",
			schema: tools.Object(map[string]interface{}{
				"eventTypeId": tools.PositiveInteger("The ID of the event type to delete"),
			}, "eventTypeId"),
			run: func(ctx context.Context, api API, args map[string]interface{}) (*tools.Result, error) {
				a, err := decodeInto[eventTypeArgs](args)
				if err != nil {
					return nil, err
				}
				msg := fmt.Sprintf("Event type %d deleted successfully", a.EventTypeID)
				return confirm(api.DeleteEventType(ctx, a.EventTypeID), msg), nil
			},
		},
	}
}
