package webhook

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/soypete/rendevu/pkg/llm"
)

// HandlerFunc reacts to one event and returns data for the result
type HandlerFunc func(ctx context.Context, booking BookingPayload) (interface{}, error)

// Dispatcher maps event types to handlers. It is safe for concurrent use.
type Dispatcher struct {
	provider llm.Provider
	logger   *zap.Logger

	mu       sync.RWMutex
	handlers map[EventType]HandlerFunc
}

// NewDispatcher creates a dispatcher with the default handlers registered
func NewDispatcher(provider llm.Provider, logger *zap.Logger) *Dispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	d := &Dispatcher{
		provider: provider,
		logger:   logger,
		handlers: make(map[EventType]HandlerFunc),
	}
	d.registerDefaults()
	return d
}

func (d *Dispatcher) registerDefaults() {
	d.handlers[BookingCreated] = d.bookingCreated
	d.handlers[BookingConfirmed] = d.bookingConfirmed
	d.handlers[BookingCancelled] = d.bookingCancelled
	d.handlers[BookingRescheduled] = d.bookingRescheduled
	d.handlers[MeetingEnded] = d.meetingEnded
}

// RegisterHandler adds or replaces the handler for an event
func (d *Dispatcher) RegisterHandler(event EventType, handler HandlerFunc) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers[event] = handler
}

// Handle runs the handler registered for the payload's event. An event with
// no handler succeeds with an informational message.
func (d *Dispatcher) Handle(ctx context.Context, payload Payload) HandlerResult {
	d.mu.RLock()
	handler, ok := d.handlers[payload.TriggerEvent]
	d.mu.RUnlock()

	if !ok {
		return HandlerResult{
			Success: true,
			Event:   payload.TriggerEvent,
			Data: map[string]string{
				"message": fmt.Sprintf("No handler registered for event: %s", payload.TriggerEvent),
			},
		}
	}

	var booking BookingPayload
	if payload.Payload != nil {
		booking = *payload.Payload
	}

	data, err := handler(ctx, booking)
	if err != nil {
		d.logger.Error("webhook handler failed",
			zap.String("event", string(payload.TriggerEvent)),
			zap.String("booking", booking.UID),
			zap.Error(err),
		)
		return HandlerResult{Success: false, Event: payload.TriggerEvent, Error: err.Error()}
	}

	d.logger.Info("webhook handled",
		zap.String("event", string(payload.TriggerEvent)),
		zap.String("booking", booking.UID),
	)
	return HandlerResult{Success: true, Event: payload.TriggerEvent, Data: data}
}
