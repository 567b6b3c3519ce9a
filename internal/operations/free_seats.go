package operations

import "hall-booker/internal/utils"

const freeSeatsUsage = "freeseats <yyyy-MM-dd> <HH:mm:ss> <name>"

// FreeSeats prints, per row, how many seats are not booked and how many are
// not paid.
func FreeSeats(s *Session, args []string) error {
	if len(args) < 4 {
		return usageError(freeSeatsUsage)
	}
	date, err := utils.ParseDateTime(args[1], args[2])
	if err != nil {
		return err
	}
	event, err := s.Booker.ByNameAndDate(joinTokens(args[3:]), date)
	if err != nil {
		return err
	}
	for i := range event.Hall.Rows {
		unbooked, unpaid := event.Hall.Rows[i].Counts()
		s.printf("Row %d has %d unbooked and %d unpurchased tickets\n", i+1, unbooked, unpaid)
	}
	return nil
}
