package models

// Ticket is issued when a seat is bought. It only refers to its seat by code.
type Ticket struct {
	Code       string `json:"code"`
	SeatNumber string `json:"seat_number"`
}
