package llm

import (
	"encoding/json"
	"fmt"
)

// MeetingSummaryRequest describes a finished meeting. Duration is in minutes.
type MeetingSummaryRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Attendees   []string `json:"attendees"`
	Organizer   string   `json:"organizer"`
	Duration    int      `json:"duration"`
	Notes       string   `json:"notes,omitempty"`
	Transcript  string   `json:"transcript,omitempty"`
}

// Validate checks the required fields
func (r *MeetingSummaryRequest) Validate() error {
	if r == nil || r.Title == "" || r.Organizer == "" || r.Attendees == nil || r.Duration == 0 {
		return &ValidationError{Message: "Missing required fields: title, organizer, attendees, duration"}
	}
	return nil
}

type MeetingSummaryResponse struct {
	Summary     string   `json:"summary"`
	KeyPoints   []string `json:"keyPoints"`
	ActionItems []string `json:"actionItems"`
	NextSteps   []string `json:"nextSteps,omitempty"`
}

// TimeSlot is a candidate meeting window in ISO 8601
type TimeSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type SchedulingPreferences struct {
	PreferredTimes []string `json:"preferredTimes,omitempty"`
	AvoidTimes     []string `json:"avoidTimes,omitempty"`
	Duration       int      `json:"duration,omitempty"`
	Timezone       string   `json:"timezone,omitempty"`
}

// SchedulingSuggestionRequest is a natural-language scheduling ask
type SchedulingSuggestionRequest struct {
	UserMessage    string                 `json:"userMessage"`
	AvailableSlots []TimeSlot             `json:"availableSlots,omitempty"`
	Preferences    *SchedulingPreferences `json:"preferences,omitempty"`
}

// Validate checks the required fields
func (r *SchedulingSuggestionRequest) Validate() error {
	if r == nil || r.UserMessage == "" {
		return &ValidationError{Message: "Missing required field: userMessage"}
	}
	return nil
}

type SchedulingSuggestionResponse struct {
	Suggestion       string     `json:"suggestion"`
	RecommendedSlots []TimeSlot `json:"recommendedSlots,omitempty"`
	Reasoning        string     `json:"reasoning,omitempty"`
}

// EmailType selects the kind of scheduling email to write
type EmailType string

const (
	EmailConfirmation EmailType = "confirmation"
	EmailReminder     EmailType = "reminder"
	EmailCancellation EmailType = "cancellation"
	EmailReschedule   EmailType = "reschedule"
	EmailFollowup     EmailType = "followup"
)

var emailDescriptions = map[EmailType]string{
	EmailConfirmation: "booking confirmation email",
	EmailReminder:     "meeting reminder email",
	EmailCancellation: "meeting cancellation email",
	EmailReschedule:   "meeting reschedule notification email",
	EmailFollowup:     "post-meeting follow-up email",
}

// Valid reports whether t is one of the known email types
func (t EmailType) Valid() bool {
	_, ok := emailDescriptions[t]
	return ok
}

// Description is the phrase used to ask the model for this kind of email
func (t EmailType) Description() string {
	return emailDescriptions[t]
}

// EmailBooking is the booking context embedded in an email request
type EmailBooking struct {
	Title     string   `json:"title"`
	StartTime string   `json:"startTime"`
	EndTime   string   `json:"endTime"`
	Attendees []string `json:"attendees"`
	Organizer string   `json:"organizer"`
	Location  string   `json:"location,omitempty"`
}

type EmailGenerationRequest struct {
	Type              EmailType     `json:"type"`
	Booking           *EmailBooking `json:"booking"`
	RecipientName     string        `json:"recipientName"`
	AdditionalContext string        `json:"additionalContext,omitempty"`
}

// Validate checks the required fields and the email type
func (r *EmailGenerationRequest) Validate() error {
	if r == nil || r.Type == "" || r.Booking == nil || r.RecipientName == "" {
		return &ValidationError{Message: "Missing required fields: type, booking, recipientName"}
	}
	if !r.Type.Valid() {
		return &ValidationError{Message: fmt.Sprintf("Invalid email type: %s", r.Type)}
	}
	return nil
}

type EmailGenerationResponse struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// BriefAttendee identifies a meeting participant
type BriefAttendee struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// PreviousMeeting is prior history with the same attendees
type PreviousMeeting struct {
	Title   string `json:"title"`
	Date    string `json:"date"`
	Summary string `json:"summary,omitempty"`
}

type MeetingBriefRequest struct {
	Title            string            `json:"title"`
	Description      string            `json:"description,omitempty"`
	Attendees        []BriefAttendee   `json:"attendees"`
	PreviousMeetings []PreviousMeeting `json:"previousMeetings,omitempty"`
}

// Validate checks the required fields
func (r *MeetingBriefRequest) Validate() error {
	if r == nil || r.Title == "" || r.Attendees == nil {
		return &ValidationError{Message: "Missing required fields: title, attendees"}
	}
	return nil
}

type MeetingBriefResponse struct {
	Brief               string   `json:"brief"`
	SuggestedAgenda     []string `json:"suggestedAgenda"`
	TalkingPoints       []string `json:"talkingPoints"`
	QuestionsToConsider []string `json:"questionsToConsider"`
}

// compactJSON renders v on one line for embedding in a prompt
func compactJSON(v interface{}) string {
	out, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(out)
}
