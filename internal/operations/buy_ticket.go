package operations

import (
	"fmt"

	"hall-booker/internal/models"
	"hall-booker/internal/utils"
)

const buyUsage = "buy <row> <seat> <yyyy-MM-dd> <HH:mm:ss> <name>"

// BuyTicket marks a seat paid and issues a ticket for it. Booking the seat
// first is not required.
func BuyTicket(s *Session, args []string) error {
	if len(args) < 6 {
		return usageError(buyUsage)
	}
	row, err := parseRow(args[1])
	if err != nil {
		return err
	}
	date, err := utils.ParseDateTime(args[3], args[4])
	if err != nil {
		return err
	}

	event, err := s.Booker.ByNameAndDate(joinTokens(args[5:]), date)
	if err != nil {
		return err
	}
	if event.Hall.Full {
		s.println("The current event is full")
		return nil
	}
	seat, err := event.Hall.Seat(row, args[2])
	if err != nil {
		return err
	}

	seat.Paid = true
	var taken func(string) bool
	if s.UniqueCodes {
		taken = s.Booker.CodeTaken
	}
	ticket := event.Hall.AddTicket(models.Ticket{
		Code:       s.Codes.Generate(taken),
		SeatNumber: seat.Number,
	})
	s.Logger.LogTicket(ticket.Code, event.Name, seat.Number)
	s.printf("This is your code: %s\n", ticket.Code)

	if event.Hall.Full {
		s.Logger.Info("TICKET", fmt.Sprintf("%s is now full", event.Name))
	}

	if s.QRDir != "" && s.QR != nil {
		path, err := s.QR.WritePNG(s.QRDir, ticketPayload(event, &ticket))
		if err != nil {
			s.Logger.Warn("QR", fmt.Sprintf("failed to write QR for %s: %v", ticket.Code, err))
			return nil
		}
		s.printf("QR code saved to %s\n", path)
	}
	return nil
}
