package models

// Seat is a single place in a row. Booked and Paid are independent flags.
type Seat struct {
	Number string
	Booked bool
	Paid   bool
	Note   string
}

// Book marks the seat as booked with the given note. It reports false and
// leaves the seat untouched when it is already booked.
func (s *Seat) Book(note string) bool {
	if s.Booked {
		return false
	}
	s.Note = note
	s.Booked = true
	return true
}

// Unbook clears the booked flag. The note is kept.
func (s *Seat) Unbook() bool {
	if !s.Booked {
		return false
	}
	s.Booked = false
	return true
}
