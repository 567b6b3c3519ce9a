// Package operations implements one handler per shell command. Handlers
// receive the shared Session and the full token list of the command line,
// keyword included.
package operations

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"hall-booker/internal/booker"
	"hall-booker/internal/halls"
	"hall-booker/internal/logger"
	"hall-booker/internal/models"
	"hall-booker/internal/tickets/qr"
	"hall-booker/internal/utils"
)

// ErrExit is returned by the exit command to stop the shell loop.
var ErrExit = errors.New("exit")

// LineReader supplies follow-up answers typed by the operator.
type LineReader interface {
	ReadLine() (string, error)
}

// Operation is the signature shared by every command handler.
type Operation func(s *Session, args []string) error

// Session is the state every command works on. It is owned by the shell loop
// and only ever touched by one command at a time.
type Session struct {
	Booker *booker.EventBooker
	Halls  *halls.Registry
	Out    io.Writer
	Input  LineReader
	Logger *logger.Logger

	Codes       *utils.CodeGenerator
	UniqueCodes bool
	QR          *qr.QRGenerator
	QRDir       string

	// CurrentFile is the last file opened or saved under a new name.
	CurrentFile string
}

// NewSession returns a session over the default halls with an empty booker.
func NewSession(out io.Writer, input LineReader, log *logger.Logger) *Session {
	if log == nil {
		log = logger.NewNop()
	}
	return &Session{
		Booker:      booker.New(),
		Halls:       halls.Default(),
		Out:         out,
		Input:       input,
		Logger:      log,
		Codes:       utils.NewCodeGenerator(),
		UniqueCodes: true,
		QR:          qr.NewQRGenerator(""),
	}
}

func (s *Session) println(a ...any) {
	fmt.Fprintln(s.Out, a...)
}

func (s *Session) printf(format string, a ...any) {
	fmt.Fprintf(s.Out, format, a...)
}

func usageError(usage string) error {
	return fmt.Errorf("%w. Usage: %s", models.ErrInvalidArguments, usage)
}

func parseRow(token string) (int, error) {
	row, err := strconv.Atoi(token)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", models.ErrInvalidRow, token)
	}
	return row, nil
}

func joinTokens(tokens []string) string {
	return strings.Join(tokens, " ")
}

// resolveSeat finds the event by exact name and date, then the seat in it.
func (s *Session) resolveSeat(name string, date time.Time, row int, seatNumber string) (*models.Event, *models.Seat, error) {
	event, err := s.Booker.ByNameAndDate(name, date)
	if err != nil {
		return nil, nil, err
	}
	seat, err := event.Hall.Seat(row, seatNumber)
	if err != nil {
		return nil, nil, err
	}
	return event, seat, nil
}

func ticketPayload(event *models.Event, ticket *models.Ticket) qr.Payload {
	return qr.Payload{
		Code:       ticket.Code,
		SeatNumber: ticket.SeatNumber,
		Event:      event.Name,
		Date:       utils.FormatTimestamp(event.Date),
		Hall:       event.Hall.Name(),
	}
}
