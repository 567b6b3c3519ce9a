package operations

import (
	"strings"

	"hall-booker/internal/utils"
)

const (
	bookUsage   = `book <row> <seat> <yyyy-MM-dd> <HH:mm:ss> <name> "<note>"`
	unbookUsage = "unbook <row> <seat> <yyyy-MM-dd> <HH:mm:ss> <name>"
)

// BookSeat reserves a seat with a note. The event name runs up to the first
// token starting with a double quote; the note is everything from there on.
func BookSeat(s *Session, args []string) error {
	if len(args) < 7 {
		return usageError(bookUsage)
	}
	noteStart := -1
	for i := 5; i < len(args); i++ {
		if strings.HasPrefix(args[i], `"`) {
			noteStart = i
			break
		}
	}
	if noteStart <= 5 {
		return usageError(bookUsage)
	}

	row, err := parseRow(args[1])
	if err != nil {
		return err
	}
	date, err := utils.ParseDateTime(args[3], args[4])
	if err != nil {
		return err
	}
	name := joinTokens(args[5:noteStart])
	note := unquote(joinTokens(args[noteStart:]))

	event, seat, err := s.resolveSeat(name, date, row, args[2])
	if err != nil {
		return err
	}
	if !seat.Book(note) {
		s.println("The seat is already booked.")
		return nil
	}
	s.Logger.LogBooking("book", event.Name, seat.Number, note)
	s.printf("Seat %s booked.\n", seat.Number)
	return nil
}

// UnbookSeat releases a booking. The note stays on the seat.
func UnbookSeat(s *Session, args []string) error {
	if len(args) < 6 {
		return usageError(unbookUsage)
	}
	row, err := parseRow(args[1])
	if err != nil {
		return err
	}
	date, err := utils.ParseDateTime(args[3], args[4])
	if err != nil {
		return err
	}

	event, seat, err := s.resolveSeat(joinTokens(args[5:]), date, row, args[2])
	if err != nil {
		return err
	}
	if !seat.Unbook() {
		s.println("The seat is not booked")
		return nil
	}
	s.Logger.LogBooking("unbook", event.Name, seat.Number, "released")
	s.printf("Seat %s unbooked.\n", seat.Number)
	return nil
}

func unquote(note string) string {
	note = strings.TrimPrefix(note, `"`)
	return strings.TrimSuffix(note, `"`)
}
