package calcom

import (
	"context"
	"fmt"

	cal "github.com/soypete/rendevu/pkg/calcom"
	"github.com/soypete/rendevu/pkg/tools"
)

type bookingArgs struct {
	BookingUID string `json:"bookingUid"`
}

type cancelBookingArgs struct {
	BookingUID         string  `json:"bookingUid"`
	CancellationReason *string `json:"cancellationReason"`
}

type rescheduleBookingArgs struct {
	BookingUID         string  `json:"bookingUid"`
	Start              string  `json:"start"`
	ReschedulingReason *string `json:"reschedulingReason"`
}

func bookingTools() []*Tool {
	return []*Tool{
		{
			name:        "list_bookings",
			description: "Get all bookings. Can filter by status (upcoming, past, cancelled), event type ID, or attendee email.",
			schema: tools.Object(map[string]interface{}{
				"status":        tools.String("Filter by status: upcoming, past, cancelled, unconfirmed"),
				"eventTypeId":   tools.PositiveInteger("Filter by event type ID"),
				"attendeeEmail": tools.Format("Filter by attendee email", "email"),
			}),
			run: func(ctx context.Context, api API, args map[string]interface{}) (*tools.Result, error) {
				filter, err := decodeInto[cal.ListBookingsFilter](args)
				if err != nil {
					return nil, err
				}
				return render(api.ListBookings(ctx, filter)), nil
			},
		},
		{
			name:        "get_booking",
			description: "Get detailed information about a specific booking by its UID.",
			schema: tools.Object(map[string]interface{}{
				"bookingUid": tools.NonEmptyString("The unique identifier of the booking"),
			}, "bookingUid"),
			run: func(ctx context.Context, api API, args map[string]interface{}) (*tools.Result, error) {
				a, err := decodeInto[bookingArgs](args)
				if err != nil {
					return nil, err
				}
				return render(api.GetBooking(ctx, a.BookingUID)), nil
			},
		},
		{
			name:        "create_booking",
			description: "Book a time slot on an event type for an attendee. Start time is ISO 8601 in UTC.",
			schema: tools.Object(map[string]interface{}{
				"start":       tools.NonEmptyString("Start time in ISO 8601 format (e.g., 2025-01-15T10:00:00Z)"),
				"eventTypeId": tools.PositiveInteger("ID of the event type to book"),
				"attendee": tools.Object(map[string]interface{}{
					"name":     tools.NonEmptyString("Attendee's full name"),
					"email":    tools.Format("Attendee's email address", "email"),
					"timeZone": tools.NonEmptyString("Attendee's timezone (e.g., America/New_York)"),
					"language": tools.String("Attendee's language code (e.g., en)"),
				}, "name", "email", "timeZone"),
				"guests":          tools.Array("Additional guest emails", tools.Format("Guest email", "email")),
				"lengthInMinutes": tools.PositiveInteger("Booking length for event types with multiple durations"),
				"metadata":        tools.FreeObject("Arbitrary key/value metadata stored on the booking"),
			}, "start", "eventTypeId", "attendee"),
			run: func(ctx context.Context, api API, args map[string]interface{}) (*tools.Result, error) {
				req, err := decodeInto[cal.CreateBookingRequest](args)
				if err != nil {
					return nil, err
				}
				return render(api.CreateBooking(ctx, req)), nil
			},
		},
		{
			name:        "cancel_booking",
			description: "Cancel a booking by its UID. Optionally provide a cancellation reason.",
			schema: tools.Object(map[string]interface{}{
				"bookingUid":         tools.NonEmptyString("The unique identifier of the booking to cancel"),
				"cancellationReason": tools.String("Reason for cancellation"),
			}, "bookingUid"),
			run: func(ctx context.Context, api API, args map[string]interface{}) (*tools.Result, error) {
				a, err := decodeInto[cancelBookingArgs](args)
				if err != nil {
					return nil, err
				}
				resp := api.CancelBooking(ctx, a.BookingUID, cal.CancelBookingRequest{
					CancellationReason: a.CancellationReason,
				})
				return confirm(resp, fmt.Sprintf("Booking %s cancelled successfully", a.BookingUID)), nil
			},
		},
		{
			name:        "reschedule_booking",
			description: "Reschedule a booking to a new time. Provide the new start time in ISO 8601 format.",
			schema: tools.Object(map[string]interface{}{
				"bookingUid":         tools.NonEmptyString("The unique identifier of the booking"),
				"start":              tools.NonEmptyString("New start time in ISO 8601 format (e.g., 2025-01-15T10:00:00Z)"),
				"reschedulingReason": tools.String("Reason for rescheduling"),
			}, "bookingUid", "start"),
			run: func(ctx context.Context, api API, args map[string]interface{}) (*tools.Result, error) {
				a, err := decodeInto[rescheduleBookingArgs](args)
				if err != nil {
					return nil, err
				}
				return render(api.RescheduleBooking(ctx, a.BookingUID, cal.RescheduleBookingRequest{
					Start:              a.Start,
					ReschedulingReason: a.ReschedulingReason,
				})), nil
			},
		},
	}
}
