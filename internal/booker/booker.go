// Package booker keeps the ordered list of scheduled events.
package booker

import (
	"time"

	"hall-booker/internal/models"
)

// EventBooker owns every event of a session. Order is insertion order,
// which is also the order events are saved in.
type EventBooker struct {
	events []*models.Event
}

func New() *EventBooker {
	return &EventBooker{}
}

// Events returns the events in insertion order. The slice must not be
// modified by callers.
func (b *EventBooker) Events() []*models.Event {
	return b.events
}

func (b *EventBooker) Len() int {
	return len(b.events)
}

func (b *EventBooker) Add(event *models.Event) {
	b.events = append(b.events, event)
}

// HasName reports whether any event, on any date, is called name.
func (b *EventBooker) HasName(name string) bool {
	for _, event := range b.events {
		if event.Name == name {
			return true
		}
	}
	return false
}

// Remove drops a single event, compared by identity.
func (b *EventBooker) Remove(event *models.Event) {
	b.RemoveAll([]*models.Event{event})
}

// RemoveAll drops every listed event.
func (b *EventBooker) RemoveAll(events []*models.Event) {
	drop := make(map[*models.Event]struct{}, len(events))
	for _, event := range events {
		drop[event] = struct{}{}
	}
	kept := b.events[:0]
	for _, event := range b.events {
		if _, ok := drop[event]; !ok {
			kept = append(kept, event)
		}
	}
	for i := len(kept); i < len(b.events); i++ {
		b.events[i] = nil
	}
	b.events = kept
}

// ByNameAndDate returns the event matching both name and start time.
func (b *EventBooker) ByNameAndDate(name string, date time.Time) (*models.Event, error) {
	for _, event := range b.events {
		if event.Name == name && event.Date.Equal(date) {
			return event, nil
		}
	}
	return nil, models.ErrNoSuchEvent
}

func (b *EventBooker) ByName(name string) []*models.Event {
	var result []*models.Event
	for _, event := range b.events {
		if event.Name == name {
			result = append(result, event)
		}
	}
	return result
}

func (b *EventBooker) ByDate(date time.Time) []*models.Event {
	var result []*models.Event
	for _, event := range b.events {
		if event.Date.Equal(date) {
			result = append(result, event)
		}
	}
	return result
}

// FindTicket scans every event for a ticket code; the first match wins.
func (b *EventBooker) FindTicket(code string) (*models.Event, *models.Ticket, error) {
	for _, event := range b.events {
		if ticket, ok := event.Hall.TicketByCode(code); ok {
			return event, ticket, nil
		}
	}
	return nil, nil, models.ErrInvalidCode
}

// CodeTaken reports whether a ticket code has already been issued.
func (b *EventBooker) CodeTaken(code string) bool {
	_, _, err := b.FindTicket(code)
	return err == nil
}
