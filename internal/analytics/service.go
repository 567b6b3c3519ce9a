// Package analytics aggregates ticket sales across events.
package analytics

import (
	"sort"
	"strconv"
	"time"

	"hall-booker/internal/models"
)

// LowSalesThreshold is the sold percentage below which an event name is
// offered for removal.
const LowSalesThreshold = 10.0

// NameTotals sums every event sharing a name.
type NameTotals struct {
	Name        string
	Seats       int
	TicketsSold int
}

// SoldPercentage is TicketsSold relative to Seats, in percent.
func (n NameTotals) SoldPercentage() float64 {
	if n.Seats == 0 {
		return 0
	}
	return float64(n.TicketsSold) / float64(n.Seats) * 100.0
}

// TotalsByName groups events by name, in the order each name first appears.
func TotalsByName(events []*models.Event) []NameTotals {
	index := make(map[string]int)
	var totals []NameTotals
	for _, event := range events {
		i, ok := index[event.Name]
		if !ok {
			i = len(totals)
			index[event.Name] = i
			totals = append(totals, NameTotals{Name: event.Name})
		}
		totals[i].Seats += event.Hall.SeatCount()
		totals[i].TicketsSold += len(event.Hall.Tickets)
	}
	return totals
}

// MostFamous returns the name with the most tickets sold. Ties go to the name
// seen first; with no sales at all it returns "" and 0.
func MostFamous(events []*models.Event) (string, int) {
	name, best := "", 0
	for _, total := range TotalsByName(events) {
		if total.TicketsSold > best {
			name, best = total.Name, total.TicketsSold
		}
	}
	return name, best
}

// LowSales returns the names whose sold percentage is under threshold.
func LowSales(events []*models.Event, threshold float64) []NameTotals {
	var result []NameTotals
	for _, total := range TotalsByName(events) {
		if total.SoldPercentage() < threshold {
			result = append(result, total)
		}
	}
	return result
}

// NormalizeRange orders the bounds chronologically.
func NormalizeRange(from, to time.Time) (time.Time, time.Time) {
	if from.After(to) {
		return to, from
	}
	return from, to
}

// InRange keeps events starting within [from, to]. Bounds may be given in
// either order.
func InRange(events []*models.Event, from, to time.Time) []*models.Event {
	from, to = NormalizeRange(from, to)
	var result []*models.Event
	for _, event := range events {
		if !event.Date.Before(from) && !event.Date.After(to) {
			result = append(result, event)
		}
	}
	return result
}

// HallGroup is the set of events held in one hall.
type HallGroup struct {
	HallNumber string
	Events     []*models.Event
}

// GroupByHall buckets events by hall number, sorted by hall number.
func GroupByHall(events []*models.Event) []HallGroup {
	index := make(map[string]int)
	var groups []HallGroup
	for _, event := range events {
		number := event.Hall.Number
		i, ok := index[number]
		if !ok {
			i = len(groups)
			index[number] = i
			groups = append(groups, HallGroup{HallNumber: number})
		}
		groups[i].Events = append(groups[i].Events, event)
	}
	sort.SliceStable(groups, func(i, j int) bool {
		return lessHallNumber(groups[i].HallNumber, groups[j].HallNumber)
	})
	return groups
}

func lessHallNumber(a, b string) bool {
	x, errA := strconv.Atoi(a)
	y, errB := strconv.Atoi(b)
	if errA == nil && errB == nil {
		return x < y
	}
	return a < b
}
