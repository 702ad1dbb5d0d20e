package calcom

import (
	"context"

	cal "github.com/soypete/rendevu/pkg/calcom"
	"github.com/soypete/rendevu/pkg/tools"
)

func profileTools() []*Tool {
	return []*Tool{
		{
			name:        "get_profile",
			description: "Get the authenticated user's Cal.com profile. Returns username, name, email, timezone, and other settings.",
			schema:      tools.Object(map[string]interface{}{}),
			run: func(ctx context.Context, api API, _ map[string]interface{}) (*tools.Result, error) {
				return render(api.GetMe(ctx)), nil
			},
		},
		{
			name:        "update_profile",
			description: "Update the authenticated user's profile. Can modify name, bio, timezone, week start day, time format, and default schedule.",
			schema: tools.Object(map[string]interface{}{
				"name":              tools.String("Display name"),
				"bio":               tools.String("Bio/description"),
				"timeZone":          tools.String("Timezone (e.g., America/New_York)"),
				"weekStart":         tools.String("First day of the week (e.g., Monday)"),
				"timeFormat":        tools.Integer("Time format: 12 or 24"),
				"defaultScheduleId": tools.PositiveInteger("Default schedule ID"),
			}),
			run: func(ctx context.Context, api API, args map[string]interface{}) (*tools.Result, error) {
				req, err := decodeInto[cal.UpdateUserProfileRequest](args)
				if err != nil {
					return nil, err
				}
				return render(api.UpdateMe(ctx, req)), nil
			},
		},
	}
}
