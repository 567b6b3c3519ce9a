package models

import "fmt"

// SeatsPerRow is the same for every hall.
const SeatsPerRow = 5

// Hall is either a template held by the registry or an instance owned by a
// single event. Only instances receive bookings and tickets.
type Hall struct {
	Number   string
	RowCount int
	Rows     []Row
	Tickets  []Ticket
	Full     bool
}

// NewHall builds a hall with rowCount rows of SeatsPerRow fresh seats.
func NewHall(number string, rowCount int) *Hall {
	rows := make([]Row, rowCount)
	for i := range rows {
		rows[i] = NewRow(i+1, SeatsPerRow)
	}
	return &Hall{
		Number:   number,
		RowCount: rowCount,
		Rows:     rows,
		Tickets:  []Ticket{},
	}
}

// FromTemplate returns a fresh instance with the template's topology. Nothing
// is shared with the template and any ticket history it carries is ignored.
func FromTemplate(template *Hall) *Hall {
	return NewHall(template.Number, template.RowCount)
}

// Name is the registry key of the hall, e.g. "Hall-4".
func (h *Hall) Name() string {
	return fmt.Sprintf("Hall-%s", h.Number)
}

// MaxTickets is the capacity of the hall.
func (h *Hall) MaxTickets() int {
	return h.RowCount * SeatsPerRow
}

// SeatCount counts the seats actually present in the rows.
func (h *Hall) SeatCount() int {
	n := 0
	for _, row := range h.Rows {
		n += len(row.Seats)
	}
	return n
}

// Seat resolves a 1-based row index and a seat code.
func (h *Hall) Seat(row int, number string) (*Seat, error) {
	if row < 1 || row > len(h.Rows) {
		return nil, ErrNoSuchRow
	}
	return h.Rows[row-1].SeatByNumber(number)
}

// AddTicket appends a ticket and sets Full once capacity is reached.
func (h *Hall) AddTicket(ticket Ticket) Ticket {
	h.Tickets = append(h.Tickets, ticket)
	if len(h.Tickets) == h.MaxTickets() {
		h.Full = true
	}
	return ticket
}

// TicketByCode returns the ticket with the given code, if any.
func (h *Hall) TicketByCode(code string) (*Ticket, bool) {
	for i := range h.Tickets {
		if h.Tickets[i].Code == code {
			return &h.Tickets[i], true
		}
	}
	return nil, false
}
