package operations

import (
	"fmt"
	"strings"

	"hall-booker/internal/models"
	"hall-booker/internal/utils"
)

// Bookings lists booked seats. The arguments select the events:
//
//	bookings                      every event
//	bookings <name>               events with that name
//	bookings <date> <time>        events starting at that time
//	bookings <date> <time> <name> that single event
//
// Arguments that do not parse as a date are read as an event name.
func Bookings(s *Session, args []string) error {
	var events []*models.Event
	switch {
	case len(args) == 1:
		events = s.Booker.Events()
	case len(args) >= 3 && isDate(args[1], args[2]):
		date, _ := utils.ParseDateTime(args[1], args[2])
		if len(args) == 3 {
			events = s.Booker.ByDate(date)
			break
		}
		event, err := s.Booker.ByNameAndDate(joinTokens(args[3:]), date)
		if err != nil {
			return err
		}
		events = []*models.Event{event}
	default:
		events = s.Booker.ByName(joinTokens(args[1:]))
	}

	if printBookedSeats(s, events) == 0 {
		s.println("No bookings found.")
	}
	return nil
}

func isDate(date, clock string) bool {
	_, err := utils.ParseDateTime(date, clock)
	return err == nil
}

// printBookedSeats prints each event having bookings followed by its booked
// seats, and returns the number of seats printed.
func printBookedSeats(s *Session, events []*models.Event) int {
	total := 0
	for _, event := range events {
		var lines []string
		for i, row := range event.Hall.Rows {
			for _, seat := range row.Seats {
				if seat.Booked {
					lines = append(lines, fmt.Sprintf("On row number: %d seat with number %s is booked with note: %s", i+1, seat.Number, seat.Note))
				}
			}
		}
		if len(lines) == 0 {
			continue
		}
		s.println(event)
		s.println(strings.Join(lines, "\n"))
		total += len(lines)
	}
	return total
}
