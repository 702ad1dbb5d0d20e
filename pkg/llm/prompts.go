package llm

import (
	"fmt"
	"strings"
)

// prompt is a system/user instruction pair for one model call
type prompt struct {
	system string
	user   string
}

const jsonOnly = "Always respond with valid JSON only, no other text."

func summaryPrompt(r *MeetingSummaryRequest) prompt {
	var b strings.Builder
	b.WriteString("Analyze this meeting and provide a structured summary:\n\n")
	fmt.Fprintf(&b, "Meeting Title: %s\n", r.Title)
	fmt.Fprintf(&b, "Description: %s\n", orDefault(r.Description, "No description provided"))
	fmt.Fprintf(&b, "Organizer: %s\n", r.Organizer)
	fmt.Fprintf(&b, "Attendees: %s\n", strings.Join(r.Attendees, ", "))
	fmt.Fprintf(&b, "Duration: %d minutes\n", r.Duration)
	if r.Notes != "" {
		fmt.Fprintf(&b, "Notes: %s\n", r.Notes)
	}
	if r.Transcript != "" {
		fmt.Fprintf(&b, "Transcript: %s\n", r.Transcript)
	}
	b.WriteString(`
Respond ONLY with JSON in this exact format:
{
  "summary": "A concise 2-3 sentence summary of the meeting",
  "keyPoints": ["Key point 1", "Key point 2"],
  "actionItems": ["Action item 1", "Action item 2"],
  "nextSteps": ["Next step 1", "Next step 2"]
}`)

	return prompt{
		system: "You are a professional meeting assistant. Analyze meetings and provide clear, actionable summaries. " + jsonOnly,
		user:   b.String(),
	}
}

func schedulingPrompt(r *SchedulingSuggestionRequest) prompt {
	var b strings.Builder
	b.WriteString("Help with scheduling based on this request:\n\n")
	fmt.Fprintf(&b, "User Message: %q\n", r.UserMessage)
	if len(r.AvailableSlots) > 0 {
		fmt.Fprintf(&b, "Available Slots: %s\n", compactJSON(r.AvailableSlots))
	}
	if r.Preferences != nil {
		fmt.Fprintf(&b, "Preferences: %s\n", compactJSON(r.Preferences))
	}
	b.WriteString(`
Respond ONLY with JSON in this exact format:
{
  "suggestion": "Your scheduling suggestion/response",
  "recommendedSlots": [{"start": "ISO datetime", "end": "ISO datetime"}],
  "reasoning": "Brief explanation of why these times are recommended"
}`)

	return prompt{
		system: "You are a smart scheduling assistant. Help users find optimal meeting times and interpret natural language scheduling requests. " + jsonOnly,
		user:   b.String(),
	}
}

func emailPrompt(r *EmailGenerationRequest) prompt {
	var b strings.Builder
	fmt.Fprintf(&b, "Generate a professional %s:\n\n", r.Type.Description())
	b.WriteString("Meeting Details:\n")
	fmt.Fprintf(&b, "- Title: %s\n", r.Booking.Title)
	fmt.Fprintf(&b, "- Start: %s\n", r.Booking.StartTime)
	fmt.Fprintf(&b, "- End: %s\n", r.Booking.EndTime)
	fmt.Fprintf(&b, "- Organizer: %s\n", r.Booking.Organizer)
	fmt.Fprintf(&b, "- Attendees: %s\n", strings.Join(r.Booking.Attendees, ", "))
	if r.Booking.Location != "" {
		fmt.Fprintf(&b, "- Location: %s\n", r.Booking.Location)
	}
	fmt.Fprintf(&b, "\nRecipient: %s\n", r.RecipientName)
	if r.AdditionalContext != "" {
		fmt.Fprintf(&b, "Additional Context: %s\n", r.AdditionalContext)
	}
	b.WriteString(`
Respond ONLY with JSON in this exact format:
{
  "subject": "Email subject line",
  "body": "Full email body (use \\n for line breaks)"
}`)

	return prompt{
		system: "You are a professional email writer. Create clear, friendly, and professional emails for scheduling-related communications. " + jsonOnly,
		user:   b.String(),
	}
}

func briefPrompt(r *MeetingBriefRequest) prompt {
	attendees := make([]string, len(r.Attendees))
	for i, a := range r.Attendees {
		attendees[i] = fmt.Sprintf("%s (%s)", a.Name, a.Email)
	}

	var b strings.Builder
	b.WriteString("Generate a pre-meeting brief:\n\n")
	fmt.Fprintf(&b, "Upcoming Meeting: %s\n", r.Title)
	fmt.Fprintf(&b, "Description: %s\n", orDefault(r.Description, "No description"))
	fmt.Fprintf(&b, "Attendees: %s\n", strings.Join(attendees, ", "))
	if len(r.PreviousMeetings) > 0 {
		b.WriteString("Previous Meetings with these attendees:\n")
		for _, m := range r.PreviousMeetings {
			fmt.Fprintf(&b, "- %s (%s): %s\n", m.Title, m.Date, orDefault(m.Summary, "No summary"))
		}
	}
	b.WriteString(`
Respond ONLY with JSON in this exact format:
{
  "brief": "A 2-3 paragraph overview to prepare for this meeting",
  "suggestedAgenda": ["Agenda item 1", "Agenda item 2"],
  "talkingPoints": ["Talking point 1", "Talking point 2"],
  "questionsToConsider": ["Question 1", "Question 2"]
}`)

	return prompt{
		system: "You are a professional meeting preparation assistant. Help users prepare for meetings by providing comprehensive briefs. " + jsonOnly,
		user:   b.String(),
	}
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
