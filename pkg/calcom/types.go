package calcom

// AvailabilityBlock is a recurring weekly window, times in HH:MM (24-hour)
type AvailabilityBlock struct {
	Days      []string `json:"days"`
	StartTime string   `json:"startTime"`
	EndTime   string   `json:"endTime"`
}

// ScheduleOverride replaces availability on a single date (YYYY-MM-DD)
type ScheduleOverride struct {
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// Schedule represents a Cal.com availability schedule
type Schedule struct {
	ID           int                 `json:"id"`
	OwnerID      int                 `json:"ownerId"`
	Name         string              `json:"name"`
	TimeZone     string              `json:"timeZone"`
	Availability []AvailabilityBlock `json:"availability"`
	IsDefault    bool                `json:"isDefault"`
	Overrides    []ScheduleOverride  `json:"overrides,omitempty"`
}

// CreateScheduleRequest is the body of POST /schedules
type CreateScheduleRequest struct {
	Name         string              `json:"name"`
	TimeZone     string              `json:"timeZone"`
	IsDefault    bool                `json:"isDefault"`
	Availability []AvailabilityBlock `json:"availability,omitempty"`
	Overrides    []ScheduleOverride  `json:"overrides,omitempty"`
}

// UpdateScheduleRequest is the body of PATCH /schedules/{id}
type UpdateScheduleRequest struct {
	Name         *string             `json:"name,omitempty"`
	TimeZone     *string             `json:"timeZone,omitempty"`
	IsDefault    *bool               `json:"isDefault,omitempty"`
	Availability []AvailabilityBlock `json:"availability,omitempty"`
	Overrides    []ScheduleOverride  `json:"overrides,omitempty"`
}

// OAuthPermission is a scope granted to an OAuth client
type OAuthPermission string

// OAuth permission scopes accepted by Cal.com
const (
	PermissionEventTypeRead  OAuthPermission = "EVENT_TYPE_READ"
	PermissionEventTypeWrite OAuthPermission = "EVENT_TYPE_WRITE"
	PermissionBookingRead    OAuthPermission = "BOOKING_READ"
	PermissionBookingWrite   OAuthPermission = "BOOKING_WRITE"
	PermissionScheduleRead   OAuthPermission = "SCHEDULE_READ"
	PermissionScheduleWrite  OAuthPermission = "SCHEDULE_WRITE"
	PermissionAppsRead       OAuthPermission = "APPS_READ"
	PermissionAppsWrite      OAuthPermission = "APPS_WRITE"
	PermissionProfileRead    OAuthPermission = "PROFILE_READ"
	PermissionProfileWrite   OAuthPermission = "PROFILE_WRITE"
	PermissionAll            OAuthPermission = "*"
)

// OAuthPermissions lists every accepted scope in the order Cal.com documents them
var OAuthPermissions = []OAuthPermission{
	PermissionEventTypeRead, PermissionEventTypeWrite,
	PermissionBookingRead, PermissionBookingWrite,
	PermissionScheduleRead, PermissionScheduleWrite,
	PermissionAppsRead, PermissionAppsWrite,
	PermissionProfileRead, PermissionProfileWrite,
	PermissionAll,
}

// OAuthClient represents a platform OAuth client
type OAuthClient struct {
	ID                           string            `json:"id"`
	Name                         string            `json:"name"`
	Secret                       string            `json:"secret"`
	Permissions                  []OAuthPermission `json:"permissions"`
	RedirectURIs                 []string          `json:"redirectUris"`
	OrganizationID               int               `json:"organizationId"`
	CreatedAt                    string            `json:"createdAt"`
	AreEmailsEnabled             bool              `json:"areEmailsEnabled"`
	AreDefaultEventTypesEnabled  bool              `json:"areDefaultEventTypesEnabled"`
	AreCalendarEventsEnabled     bool              `json:"areCalendarEventsEnabled"`
	Logo                         string            `json:"logo,omitempty"`
	BookingRedirectURI           string            `json:"bookingRedirectUri,omitempty"`
	BookingCancelRedirectURI     string            `json:"bookingCancelRedirectUri,omitempty"`
	BookingRescheduleRedirectURI string            `json:"bookingRescheduleRedirectUri,omitempty"`
}

// CreateOAuthClientRequest is the body of POST /oauth-clients
type CreateOAuthClientRequest struct {
	Name                         string            `json:"name"`
	RedirectURIs                 []string          `json:"redirectUris"`
	Permissions                  []OAuthPermission `json:"permissions"`
	Logo                         *string           `json:"logo,omitempty"`
	BookingRedirectURI           *string           `json:"bookingRedirectUri,omitempty"`
	BookingCancelRedirectURI     *string           `json:"bookingCancelRedirectUri,omitempty"`
	BookingRescheduleRedirectURI *string           `json:"bookingRescheduleRedirectUri,omitempty"`
	AreEmailsEnabled             *bool             `json:"areEmailsEnabled,omitempty"`
	AreDefaultEventTypesEnabled  *bool             `json:"areDefaultEventTypesEnabled,omitempty"`
	AreCalendarEventsEnabled     *bool             `json:"areCalendarEventsEnabled,omitempty"`
}

// CreateOAuthClientResponse carries the only copy of the client secret
type CreateOAuthClientResponse struct {
	ClientID     string `json:"clientId"`
	ClientSecret string `json:"clientSecret"`
}

// UpdateOAuthClientRequest is the body of PATCH /oauth-clients/{id}. Permissions
// cannot be changed after creation.
type UpdateOAuthClientRequest struct {
	Name                         *string  `json:"name,omitempty"`
	Logo                         *string  `json:"logo,omitempty"`
	RedirectURIs                 []string `json:"redirectUris,omitempty"`
	BookingRedirectURI           *string  `json:"bookingRedirectUri,omitempty"`
	BookingCancelRedirectURI     *string  `json:"bookingCancelRedirectUri,omitempty"`
	BookingRescheduleRedirectURI *string  `json:"bookingRescheduleRedirectUri,omitempty"`
	AreEmailsEnabled             *bool    `json:"areEmailsEnabled,omitempty"`
	AreDefaultEventTypesEnabled  *bool    `json:"areDefaultEventTypesEnabled,omitempty"`
	AreCalendarEventsEnabled     *bool    `json:"areCalendarEventsEnabled,omitempty"`
}

// Location is a meeting location option on an event type
type Location struct {
	Type    string `json:"type"`
	Link    string `json:"link,omitempty"`
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
}

// EventType represents a Cal.com event type (booking page)
type EventType struct {
	ID                   int        `json:"id"`
	Title                string     `json:"title"`
	Slug                 string     `json:"slug"`
	LengthInMinutes      int        `json:"lengthInMinutes"`
	Description          string     `json:"description,omitempty"`
	Locations            []Location `json:"locations,omitempty"`
	ScheduleID           *int       `json:"scheduleId,omitempty"`
	Hidden               bool       `json:"hidden"`
	RequiresConfirmation bool       `json:"requiresConfirmation"`
	DisableGuests        bool       `json:"disableGuests"`
	MinimumBookingNotice int        `json:"minimumBookingNotice"`
	BeforeEventBuffer    int        `json:"beforeEventBuffer"`
	AfterEventBuffer     int        `json:"afterEventBuffer"`
	SlotInterval         *int       `json:"slotInterval,omitempty"`
	OwnerID              int        `json:"ownerId,omitempty"`
}

// CreateEventTypeRequest is the body of POST /event-types
type CreateEventTypeRequest struct {
	Title                string     `json:"title"`
	Slug                 string     `json:"slug"`
	LengthInMinutes      int        `json:"lengthInMinutes"`
	Description          *string    `json:"description,omitempty"`
	Locations            []Location `json:"locations,omitempty"`
	ScheduleID           *int       `json:"scheduleId,omitempty"`
	Hidden               *bool      `json:"hidden,omitempty"`
	RequiresConfirmation *bool      `json:"requiresConfirmation,omitempty"`
	DisableGuests        *bool      `json:"disableGuests,omitempty"`
	MinimumBookingNotice *int       `json:"minimumBookingNotice,omitempty"`
	BeforeEventBuffer    *int       `json:"beforeEventBuffer,omitempty"`
	AfterEventBuffer     *int       `json:"afterEventBuffer,omitempty"`
	SlotInterval         *int       `json:"slotInterval,omitempty"`
}

// UpdateEventTypeRequest is the body of PATCH /event-types/{id}
type UpdateEventTypeRequest struct {
	Title                *string    `json:"title,omitempty"`
	Slug                 *string    `json:"slug,omitempty"`
	LengthInMinutes      *int       `json:"lengthInMinutes,omitempty"`
	Description          *string    `json:"description,omitempty"`
	Locations            []Location `json:"locations,omitempty"`
	ScheduleID           *int       `json:"scheduleId,omitempty"`
	Hidden               *bool      `json:"hidden,omitempty"`
	RequiresConfirmation *bool      `json:"requiresConfirmation,omitempty"`
	DisableGuests        *bool      `json:"disableGuests,omitempty"`
	MinimumBookingNotice *int       `json:"minimumBookingNotice,omitempty"`
	BeforeEventBuffer    *int       `json:"beforeEventBuffer,omitempty"`
	AfterEventBuffer     *int       `json:"afterEventBuffer,omitempty"`
	SlotInterval         *int       `json:"slotInterval,omitempty"`
}

// Attendee represents a booking attendee
type Attendee struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	TimeZone string `json:"timeZone"`
	Language string `json:"language,omitempty"`
	Absent   bool   `json:"absent,omitempty"`
}

// Host is an organizer-side participant of a booking
type Host struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email,omitempty"`
	Username string `json:"username,omitempty"`
	TimeZone string `json:"timeZone"`
}

// BookingEventType is the short event type reference embedded in a booking
type BookingEventType struct {
	ID   int    `json:"id"`
	Slug string `json:"slug"`
}

// Booking represents a Cal.com booking
type Booking struct {
	ID                  int                    `json:"id"`
	UID                 string                 `json:"uid"`
	Title               string                 `json:"title"`
	Description         string                 `json:"description,omitempty"`
	Status              string                 `json:"status"`
	Start               string                 `json:"start"`
	End                 string                 `json:"end"`
	Duration            int                    `json:"duration,omitempty"`
	EventTypeID         int                    `json:"eventTypeId,omitempty"`
	EventType           *BookingEventType      `json:"eventType,omitempty"`
	Hosts               []Host                 `json:"hosts,omitempty"`
	Attendees           []Attendee             `json:"attendees"`
	Guests              []string               `json:"guests,omitempty"`
	Location            string                 `json:"location,omitempty"`
	MeetingURL          string                 `json:"meetingUrl,omitempty"`
	Metadata            map[string]interface{} `json:"metadata,omitempty"`
	CancellationReason  string                 `json:"cancellationReason,omitempty"`
	ReschedulingReason  string                 `json:"reschedulingReason,omitempty"`
	RescheduledFromUID  string                 `json:"rescheduledFromUid,omitempty"`
	RescheduledToUID    string                 `json:"rescheduledToUid,omitempty"`
	CreatedAt           string                 `json:"createdAt,omitempty"`
	UpdatedAt           string                 `json:"updatedAt,omitempty"`
	AbsentHost          bool                   `json:"absentHost,omitempty"`
	RecurringBookingUID string                 `json:"recurringBookingUid,omitempty"`
}

// ListBookingsFilter holds the optional query filters of GET /bookings
type ListBookingsFilter struct {
	Status        string `json:"status,omitempty"`
	EventTypeID   int    `json:"eventTypeId,omitempty"`
	AttendeeEmail string `json:"attendeeEmail,omitempty"`
}

// CreateBookingRequest is the body of POST /bookings
type CreateBookingRequest struct {
	Start           string                 `json:"start"`
	EventTypeID     int                    `json:"eventTypeId"`
	Attendee        Attendee               `json:"attendee"`
	Guests          []string               `json:"guests,omitempty"`
	LengthInMinutes *int                   `json:"lengthInMinutes,omitempty"`
	Metadata        map[string]interface{} `json:"metadata,omitempty"`
}

// RescheduleBookingRequest is the body of POST /bookings/{uid}/reschedule
type RescheduleBookingRequest struct {
	Start              string  `json:"start"`
	ReschedulingReason *string `json:"reschedulingReason,omitempty"`
}

// CancelBookingRequest is the body of POST /bookings/{uid}/cancel. A nil reason
// is omitted from the body entirely.
type CancelBookingRequest struct {
	CancellationReason *string `json:"cancellationReason,omitempty"`
}

// Slot is one bookable start time
type Slot struct {
	Time  string `json:"time,omitempty"`
	Start string `json:"start,omitempty"`
	End   string `json:"end,omitempty"`
}

// SlotsQuery holds the query parameters of GET /slots
type SlotsQuery struct {
	EventTypeID   int    `json:"eventTypeId,omitempty"`
	EventTypeSlug string `json:"eventTypeSlug,omitempty"`
	Username      string `json:"username,omitempty"`
	Start         string `json:"start"`
	End           string `json:"end"`
	TimeZone      string `json:"timeZone,omitempty"`
}

// AvailableSlots groups slots by date (YYYY-MM-DD)
type AvailableSlots struct {
	Slots map[string][]Slot `json:"slots"`
}

// UserProfile represents the authenticated Cal.com user
type UserProfile struct {
	ID                int    `json:"id"`
	Username          string `json:"username"`
	Email             string `json:"email"`
	Name              string `json:"name,omitempty"`
	Bio               string `json:"bio,omitempty"`
	TimeZone          string `json:"timeZone"`
	WeekStart         string `json:"weekStart"`
	TimeFormat        int    `json:"timeFormat"`
	DefaultScheduleID *int   `json:"defaultScheduleId,omitempty"`
	Locale            string `json:"locale,omitempty"`
	AvatarURL         string `json:"avatarUrl,omitempty"`
	OrganizationID    *int   `json:"organizationId,omitempty"`
}

// UpdateUserProfileRequest is the body of PATCH /me
type UpdateUserProfileRequest struct {
	Name              *string `json:"name,omitempty"`
	Bio               *string `json:"bio,omitempty"`
	TimeZone          *string `json:"timeZone,omitempty"`
	WeekStart         *string `json:"weekStart,omitempty"`
	TimeFormat        *int    `json:"timeFormat,omitempty"`
	DefaultScheduleID *int    `json:"defaultScheduleId,omitempty"`
}

// DeleteResult is the data returned by delete endpoints
type DeleteResult struct {
	Message string `json:"message,omitempty"`
}
