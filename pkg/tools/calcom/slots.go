package calcom

import (
	"context"

	cal "github.com/soypete/rendevu/pkg/calcom"
	"github.com/soypete/rendevu/pkg/tools"
)

func slotTools() []*Tool {
	return []*Tool{
		{
			name:        "get_available_slots",
			description: "Get available time slots for booking. Specify an event type (by ID or slug+username) and a date range. Returns slots grouped by date.",
			schema: tools.Object(map[string]interface{}{
				"eventTypeId":   tools.PositiveInteger("Event type ID to check availability for"),
				"eventTypeSlug": tools.String("Event type slug (requires username)"),
				"username":      tools.String("Username (required if using eventTypeSlug)"),
				"start":         tools.NonEmptyString("Start date in YYYY-MM-DD format"),
				"end":           tools.NonEmptyString("End date in YYYY-MM-DD format"),
				"timeZone":      tools.String("Timezone for slots (e.g., America/New_York)"),
			}, "start", "end"),
			run: func(ctx context.Context, api API, args map[string]interface{}) (*tools.Result, error) {
				q, err := decodeInto[cal.SlotsQuery](args)
				if err != nil {
					return nil, err
				}
				return render(api.GetAvailableSlots(ctx, q)), nil
			},
		},
	}
}
