package operations

import (
	"fmt"

	"hall-booker/internal/models"
	"hall-booker/internal/utils"
)

const addEventUsage = "addevent <yyyy-MM-dd> <HH:mm:ss> <hall> <name>"

// AddEvent schedules a new event in a copy of the named hall. Names are
// unique regardless of date.
func AddEvent(s *Session, args []string) error {
	if len(args) < 5 {
		return usageError(addEventUsage)
	}
	date, err := utils.ParseDateTime(args[1], args[2])
	if err != nil {
		return err
	}
	template, err := s.Halls.ByName(args[3])
	if err != nil {
		return err
	}
	name := joinTokens(args[4:])
	if s.Booker.HasName(name) {
		return models.ErrEventExists
	}

	event := models.NewEvent(name, date, template)
	s.Booker.Add(event)
	s.Logger.LogCommand("addevent", fmt.Sprintf("%s on %s in %s", name, utils.FormatTimestamp(date), template.Name()))
	s.printf("Event %s added.\n", name)
	return nil
}
