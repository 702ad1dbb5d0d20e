package calcom

import (
	"context"

	cal "github.com/soypete/rendevu/pkg/calcom"
	"github.com/soypete/rendevu/pkg/tools"
)

const (
	hhmmPattern = `^([0-1][0-9]|2[0-3]):[0-5][0-9]$`
	datePattern = `^\d{4}-\d{2}-\d{2}$`
)

var weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

func availabilitySchema(description string) map[string]interface{} {
	return tools.Array(description, tools.Object(map[string]interface{}{
		"days":      tools.Array(`Days of the week (e.g., ["Monday", "Tuesday", "Wednesday"])`, tools.Enum("Day of the week", weekdays...)),
		"startTime": tools.Pattern("Start time in HH:MM format (24-hour)", hhmmPattern),
		"endTime":   tools.Pattern("End time in HH:MM format (24-hour)", hhmmPattern),
	}, "days", "startTime", "endTime"))
}

func overridesSchema(description string) map[string]interface{} {
	return tools.Array(description, tools.Object(map[string]interface{}{
		"date":      tools.Pattern("Date in YYYY-MM-DD format", datePattern),
		"startTime": tools.Pattern("Start time in HH:MM format (24-hour)", hhmmPattern),
		"endTime":   tools.Pattern("End time in HH:MM format (24-hour)", hhmmPattern),
	}, "date", "startTime", "endTime"))
}

type scheduleArgs struct {
	ScheduleID int `json:"scheduleId"`
}

type updateScheduleArgs struct {
	ScheduleID int `json:"scheduleId"`
	cal.UpdateScheduleRequest
}

func scheduleTools() []*Tool {
	return []*Tool{
		{
			name:        "list_schedules",
			description: "Get all schedules for the authenticated user. Returns a list of all schedules with their IDs, names, timezones, and default status.",
			schema:      tools.Object(map[string]interface{}{}),
			run: func(ctx context.Context, api API, _ map[string]interface{}) (*tools.Result, error) {
				return render(api.ListSchedules(ctx)), nil
			},
		},
		{
			name:        "get_schedule",
			description: "Get details of a specific schedule by ID. Returns full schedule information including availability blocks and overrides.",
			schema: tools.Object(map[string]interface{}{
				"scheduleId": tools.PositiveInteger("The ID of the schedule to retrieve"),
			}, "scheduleId"),
			run: func(ctx context.Context, api API, args map[string]interface{}) (*tools.Result, error) {
				a, err := decodeInto[scheduleArgs](args)
				if err != nil {
					return nil, err
				}
				return render(api.GetSchedule(ctx, a.ScheduleID)), nil
			},
		},
		{
			name: "create_schedule",
			description: "Create a new schedule with availability blocks. Each user should have one default schedule. " +
				`Days are specified as day names (e.g., "Monday", "Tuesday"). Times are in HH:MM format (24-hour). ` +
				"If no availability is provided, Cal.com defaults to Monday-Friday 09:00-17:00.",
			schema: tools.Object(map[string]interface{}{
				"name":         tools.NonEmptyString("Name of the schedule"),
				"timeZone":     tools.NonEmptyString(`Timezone for the schedule (e.g., "America/New_York", "Europe/London")`),
				"isDefault":    tools.Boolean("Whether this is the default schedule for the user"),
				"availability": availabilitySchema("Array of availability blocks defining when the user is available"),
				"overrides":    overridesSchema("Date-specific availability overrides"),
			}, "name", "timeZone", "isDefault"),
			run: func(ctx context.Context, api API, args map[string]interface{}) (*tools.Result, error) {
				req, err := decodeInto[cal.CreateScheduleRequest](args)
				if err != nil {
					return nil, err
				}
				return render(api.CreateSchedule(ctx, req)), nil
			},
		},
		{
			name:        "update_schedule",
			description: "Update an existing schedule. You can update the name, timezone, default status, availability blocks, or overrides. All fields except scheduleId are optional.",
			schema: tools.Object(map[string]interface{}{
				"scheduleId":   tools.PositiveInteger("The ID of the schedule to update"),
				"name":         tools.NonEmptyString("New name for the schedule"),
				"timeZone":     tools.NonEmptyString("New timezone for the schedule"),
				"isDefault":    tools.Boolean("Whether this should be the default schedule"),
				"availability": availabilitySchema("New availability blocks (replaces existing)"),
				"overrides":    overridesSchema("New overrides (replaces existing)"),
			}, "scheduleId"),
			run: func(ctx context.Context, api API, args map[string]interface{}) (*tools.Result, error) {
				a, err := decodeInto[updateScheduleArgs](args)
				if err != nil {
					return nil, err
				}
				return render(api.UpdateSchedule(ctx, a.ScheduleID, a.UpdateScheduleRequest)), nil
			},
		},
		{
			name:        "delete_schedule",
			description: "Delete a schedule by ID. Cannot delete the default schedule if it is the only schedule.",
			schema: tools.Object(map[string]interface{}{
				"scheduleId": tools.PositiveInteger("The ID of the schedule to delete"),
			}, "scheduleId"),
			run: func(ctx context.Context, api API, args map[string]interface{}) (*tools.Result, error) {
				a, err := decodeInto[scheduleArgs](args)
				if err != nil {
					return nil, err
				}
				return deleted(api.DeleteSchedule(ctx, a.ScheduleID), "Schedule deleted successfully"), nil
			},
		},
	}
}
