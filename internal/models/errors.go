package models

import "errors"

// Lookup failures. The messages are printed to the operator verbatim.
var (
	ErrNoSuchHall  = errors.New("There is no such hall")
	ErrNoSuchEvent = errors.New("There is no such event")
	ErrNoSuchSeat  = errors.New("There is no such seat")
	ErrNoSuchRow   = errors.New("There is no such row")
)

// Domain rule violations.
var (
	ErrEventExists = errors.New("Event already exists")
	ErrInvalidCode = errors.New("Invalid code")
)

// Input shape errors, usually wrapped with the offending detail.
var (
	ErrInvalidArguments = errors.New("Invalid number of arguments")
	ErrInvalidDate      = errors.New("Invalid date, expected yyyy-MM-dd HH:mm:ss")
	ErrInvalidRow       = errors.New("Invalid row number")
)
