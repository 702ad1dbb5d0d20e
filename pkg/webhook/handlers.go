package webhook

import (
	"context"
	"fmt"
	"math"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/soypete/rendevu/pkg/llm"
)

// defaultRecipient addresses emails for bookings without attendees
const defaultRecipient = "Attendee"

// CreatedResult is returned for BOOKING_CREATED
type CreatedResult struct {
	Brief *llm.MeetingBriefResponse     `json:"brief"`
	Email *llm.EmailGenerationResponse `json:"email"`
}

// EmailResult is returned for confirmed, cancelled and rescheduled bookings
type EmailResult struct {
	Email *llm.EmailGenerationResponse `json:"email"`
}

// MeetingEndedResult is returned for MEETING_ENDED
type MeetingEndedResult struct {
	Summary       *llm.MeetingSummaryResponse  `json:"summary"`
	FollowupEmail *llm.EmailGenerationResponse `json:"followupEmail"`
}

func (d *Dispatcher) bookingCreated(ctx context.Context, b BookingPayload) (interface{}, error) {
	var out CreatedResult
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		attendees := make([]llm.BriefAttendee, 0, len(b.Attendees))
		for _, a := range b.Attendees {
			attendees = append(attendees, llm.BriefAttendee{Name: a.Name, Email: a.Email})
		}
		brief, err := d.provider.GenerateMeetingBrief(gctx, &llm.MeetingBriefRequest{
			Title:       b.Title,
			Description: b.Description,
			Attendees:   attendees,
		})
		out.Brief = brief
		return err
	})
	g.Go(func() error {
		email, err := d.provider.GenerateEmail(gctx, emailRequest(llm.EmailConfirmation, b, ""))
		out.Email = email
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func (d *Dispatcher) bookingConfirmed(ctx context.Context, b BookingPayload) (interface{}, error) {
	return d.sendEmail(ctx, llm.EmailConfirmation, b, "This booking has been confirmed.")
}

func (d *Dispatcher) bookingCancelled(ctx context.Context, b BookingPayload) (interface{}, error) {
	return d.sendEmail(ctx, llm.EmailCancellation, b, "")
}

func (d *Dispatcher) bookingRescheduled(ctx context.Context, b BookingPayload) (interface{}, error) {
	return d.sendEmail(ctx, llm.EmailReschedule, b, "")
}

func (d *Dispatcher) sendEmail(ctx context.Context, kind llm.EmailType, b BookingPayload, note string) (interface{}, error) {
	email, err := d.provider.GenerateEmail(ctx, emailRequest(kind, b, note))
	if err != nil {
		return nil, err
	}
	return EmailResult{Email: email}, nil
}

func (d *Dispatcher) meetingEnded(ctx context.Context, b BookingPayload) (interface{}, error) {
	minutes, err := durationMinutes(b.StartTime, b.EndTime)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(b.Attendees))
	for _, a := range b.Attendees {
		names = append(names, a.Name)
	}

	var out MeetingEndedResult
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		summary, err := d.provider.GenerateMeetingSummary(gctx, &llm.MeetingSummaryRequest{
			Title:       b.Title,
			Description: b.Description,
			Organizer:   b.Organizer.Name,
			Attendees:   names,
			Duration:    minutes,
			Notes:       b.AdditionalNotes,
		})
		out.Summary = summary
		return err
	})
	g.Go(func() error {
		email, err := d.provider.GenerateEmail(gctx, emailRequest(llm.EmailFollowup, b, ""))
		out.FollowupEmail = email
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func emailRequest(kind llm.EmailType, b BookingPayload, additional string) *llm.EmailGenerationRequest {
	emails := make([]string, 0, len(b.Attendees))
	for _, a := range b.Attendees {
		emails = append(emails, a.Email)
	}

	return &llm.EmailGenerationRequest{
		Type: kind,
		Booking: &llm.EmailBooking{
			Title:     b.Title,
			StartTime: b.StartTime,
			EndTime:   b.EndTime,
			Attendees: emails,
			Organizer: b.Organizer.Name,
			Location:  b.Location,
		},
		RecipientName:     recipient(b.Attendees),
		AdditionalContext: additional,
	}
}

// recipient is the first attendee's name
func recipient(attendees []Person) string {
	if len(attendees) == 0 || attendees[0].Name == "" {
		return defaultRecipient
	}
	return attendees[0].Name
}

// timestampLayouts are tried in order. Zoneless forms are read as UTC.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
}

func parseTimestamp(value string) (time.Time, error) {
	var firstErr error
	for _, layout := range timestampLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return time.Time{}, firstErr
}

// durationMinutes is the rounded number of minutes between two ISO 8601 timestamps
func durationMinutes(start, end string) (int, error) {
	s, err := parseTimestamp(start)
	if err != nil {
		return 0, fmt.Errorf("invalid startTime %q: %w", start, err)
	}
	e, err := parseTimestamp(end)
	if err != nil {
		return 0, fmt.Errorf("invalid endTime %q: %w", end, err)
	}
	return int(math.Round(e.Sub(s).Minutes())), nil
}
