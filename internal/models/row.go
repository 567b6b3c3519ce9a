package models

import "strconv"

// Row is a fixed-size, ordered run of seats.
type Row struct {
	Seats []Seat
}

// NewRow builds a row of seatCount seats numbered <rowNumber>A, <rowNumber>B, ...
// rowNumber is 1-based.
func NewRow(rowNumber, seatCount int) Row {
	seats := make([]Seat, seatCount)
	prefix := strconv.Itoa(rowNumber)
	for i := range seats {
		seats[i] = Seat{Number: prefix + string(rune('A'+i))}
	}
	return Row{Seats: seats}
}

// SeatByNumber returns the seat with the given code.
func (r *Row) SeatByNumber(number string) (*Seat, error) {
	for i := range r.Seats {
		if r.Seats[i].Number == number {
			return &r.Seats[i], nil
		}
	}
	return nil, ErrNoSuchSeat
}

// Counts returns how many seats are not booked and how many are not paid.
func (r *Row) Counts() (unbooked, unpaid int) {
	for _, seat := range r.Seats {
		if !seat.Booked {
			unbooked++
		}
		if !seat.Paid {
			unpaid++
		}
	}
	return unbooked, unpaid
}
