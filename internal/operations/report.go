package operations

import (
	"strings"

	"hall-booker/internal/analytics"
	"hall-booker/internal/models"
	"hall-booker/internal/utils"
)

const reportUsage = "report <from-date> <from-time> <to-date> <to-time> [hall]"

// Report lists the tickets of every event starting within the given period,
// grouped by hall. The bounds are inclusive and may be given in either order.
func Report(s *Session, args []string) error {
	if len(args) != 5 && len(args) != 6 {
		return usageError(reportUsage)
	}
	from, err := utils.ParseDateTime(args[1], args[2])
	if err != nil {
		return err
	}
	to, err := utils.ParseDateTime(args[3], args[4])
	if err != nil {
		return err
	}

	events := analytics.InRange(s.Booker.Events(), from, to)
	if len(args) == 6 {
		number := strings.TrimPrefix(args[5], "Hall-")
		var filtered []*models.Event
		for _, event := range events {
			if event.Hall.Number == number {
				filtered = append(filtered, event)
			}
		}
		events = filtered
	}

	groups := analytics.GroupByHall(events)
	if len(groups) == 0 {
		s.println("No events in this period.")
		return nil
	}
	for _, group := range groups {
		s.println("Hall " + group.HallNumber)
		for _, event := range group.Events {
			for _, ticket := range event.Hall.Tickets {
				s.printf("Ticket info: %s\n%s\n", ticket.Code, ticket.SeatNumber)
			}
		}
	}
	return nil
}
