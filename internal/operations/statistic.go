package operations

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"hall-booker/internal/analytics"
)

// StatisticForTenPercent asks, for every event name that sold under 10% of
// its seats, whether all events with that name should be removed. It reads
// one answer per name from the session input.
func StatisticForTenPercent(s *Session, args []string) error {
	low := analytics.LowSales(s.Booker.Events(), analytics.LowSalesThreshold)
	if len(low) == 0 {
		s.println("Every event sold at least 10% of its seats.")
		return nil
	}
	if s.Input == nil {
		return errors.New("no input available for confirmation")
	}

	for _, total := range low {
		s.printf("Do you wish to remove this event (yes/no): %s\n", total.Name)
		answer, err := s.Input.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		if !strings.EqualFold(strings.TrimSpace(answer), "yes") {
			continue
		}
		removed := s.Booker.ByName(total.Name)
		s.Booker.RemoveAll(removed)
		s.Logger.LogCommand("statistic", fmt.Sprintf("removed %d event(s) named %s at %.2f%% sold", len(removed), total.Name, total.SoldPercentage()))
		s.printf("Removed %s.\n", total.Name)
	}
	return nil
}
