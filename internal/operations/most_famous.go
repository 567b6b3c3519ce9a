package operations

import "hall-booker/internal/analytics"

// MostFamous prints the event name with the most tickets sold over all of
// its dates.
func MostFamous(s *Session, args []string) error {
	name, sold := analytics.MostFamous(s.Booker.Events())
	s.printf("The most watched event is: %s with %d tickets sold.\n", name, sold)
	return nil
}
