// Package webhook relays Cal.com booking lifecycle events to a generative
// text provider.
package webhook

// EventType is a Cal.com webhook trigger
type EventType string

const (
	BookingCreated          EventType = "BOOKING_CREATED"
	BookingRescheduled      EventType = "BOOKING_RESCHEDULED"
	BookingCancelled        EventType = "BOOKING_CANCELLED"
	BookingConfirmed        EventType = "BOOKING_CONFIRMED"
	BookingRejected         EventType = "BOOKING_REJECTED"
	BookingRequested        EventType = "BOOKING_REQUESTED"
	BookingPaymentInitiated EventType = "BOOKING_PAYMENT_INITIATED"
	BookingNoShowUpdated    EventType = "BOOKING_NO_SHOW_UPDATED"
	MeetingStarted          EventType = "MEETING_STARTED"
	MeetingEnded            EventType = "MEETING_ENDED"
	RecordingReady          EventType = "RECORDING_READY"
)

// EventTypes lists every trigger Cal.com can send
var EventTypes = []EventType{
	BookingCreated,
	BookingRescheduled,
	BookingCancelled,
	BookingConfirmed,
	BookingRejected,
	BookingRequested,
	BookingPaymentInitiated,
	BookingNoShowUpdated,
	MeetingStarted,
	MeetingEnded,
	RecordingReady,
}

// Valid reports whether e is a known trigger
func (e EventType) Valid() bool {
	for _, known := range EventTypes {
		if e == known {
			return true
		}
	}
	return false
}

// Person is an organizer or attendee as delivered in a webhook
type Person struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	TimeZone string `json:"timeZone,omitempty"`
}

// BookingPayload is the booking snapshot carried by a webhook
type BookingPayload struct {
	ID              int                    `json:"id,omitempty"`
	UID             string                 `json:"uid,omitempty"`
	Title           string                 `json:"title"`
	Description     string                 `json:"description,omitempty"`
	StartTime       string                 `json:"startTime"`
	EndTime         string                 `json:"endTime"`
	Organizer       Person                 `json:"organizer"`
	Attendees       []Person               `json:"attendees"`
	Location        string                 `json:"location,omitempty"`
	Status          string                 `json:"status,omitempty"`
	AdditionalNotes string                 `json:"additionalNotes,omitempty"`
	Metadata        map[string]interface{} `json:"metadata,omitempty"`
}

// Payload is the webhook request body
type Payload struct {
	TriggerEvent EventType       `json:"triggerEvent"`
	CreatedAt    string          `json:"createdAt,omitempty"`
	Payload      *BookingPayload `json:"payload"`
}

// HandlerResult is the outcome of dispatching one event
type HandlerResult struct {
	Success bool        `json:"success"`
	Event   EventType   `json:"event"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}
