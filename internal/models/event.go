package models

import (
	"fmt"
	"time"
)

// Event pairs a name and a start time with the hall instance it owns.
type Event struct {
	Date time.Time
	Name string
	Hall *Hall
}

// NewEvent clones template into a hall instance private to the new event.
func NewEvent(name string, date time.Time, template *Hall) *Event {
	return &Event{
		Date: date.Truncate(time.Second),
		Name: name,
		Hall: FromTemplate(template),
	}
}

func (e *Event) String() string {
	return fmt.Sprintf("Event: %s\non: %s\nin hall: %s", e.Name, e.Date.Format("2006-01-02T15:04:05"), e.Hall.Name())
}
