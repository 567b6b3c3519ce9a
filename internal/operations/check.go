package operations

const (
	checkUsage = "check <code>"
	qrUsage    = "qr <code>"
)

// Check validates a ticket code against every event.
func Check(s *Session, args []string) error {
	if len(args) != 2 {
		return usageError(checkUsage)
	}
	event, _, err := s.Booker.FindTicket(args[1])
	if err != nil {
		return err
	}
	s.println("Valid code")
	s.println(event)
	return nil
}

// TicketQR prints the encrypted QR code of an issued ticket.
func TicketQR(s *Session, args []string) error {
	if len(args) != 2 {
		return usageError(qrUsage)
	}
	event, ticket, err := s.Booker.FindTicket(args[1])
	if err != nil {
		return err
	}
	out, err := s.QR.TerminalString(ticketPayload(event, ticket))
	if err != nil {
		return err
	}
	s.printf("%s", out)
	return nil
}
