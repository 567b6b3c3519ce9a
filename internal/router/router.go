// Package router maps command keywords to operations and runs the
// read-dispatch loop.
package router

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"hall-booker/internal/operations"
)

// Router routes the first token of a command line to its operation.
type Router struct {
	routes  map[string]operations.Operation
	session *operations.Session
}

// New registers every shell command against session.
func New(session *operations.Session) *Router {
	r := &Router{
		routes:  make(map[string]operations.Operation),
		session: session,
	}

	// event commands
	r.Handle("addevent", operations.AddEvent)
	r.Handle("bookings", operations.Bookings)
	r.Handle("book", operations.BookSeat)
	r.Handle("buy", operations.BuyTicket)
	r.Handle("check", operations.Check)
	r.Handle("freeseats", operations.FreeSeats)
	r.Handle("mostfamous", operations.MostFamous)
	r.Handle("report", operations.Report)
	r.Handle("statistic", operations.StatisticForTenPercent)
	r.Handle("unbook", operations.UnbookSeat)
	r.Handle("qr", operations.TicketQR)

	// file and shell commands
	r.Handle("open", operations.Open)
	r.Handle("close", operations.Close)
	r.Handle("save", operations.Save)
	r.Handle("saveas", operations.SaveAs)
	r.Handle("help", operations.Help)
	r.Handle("exit", operations.Exit)

	return r
}

func (r *Router) Handle(keyword string, op operations.Operation) {
	r.routes[keyword] = op
}

// Commands lists the registered keywords in sorted order.
func (r *Router) Commands() []string {
	keys := make([]string, 0, len(r.routes))
	for k := range r.routes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Dispatch runs a single command line. Operation errors are printed and
// swallowed; only operations.ErrExit is returned.
func (r *Router) Dispatch(line string) error {
	s := r.session
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		fmt.Fprintln(s.Out, "Invalid command")
		return nil
	}

	op, ok := r.routes[tokens[0]]
	if !ok {
		fmt.Fprintln(s.Out, "Invalid command")
		s.Logger.Debug("COMMAND", fmt.Sprintf("unknown command %q", tokens[0]))
		return nil
	}

	s.Logger.Debug("COMMAND", line)
	if err := op(s, tokens); err != nil {
		if errors.Is(err, operations.ErrExit) {
			return err
		}
		s.Logger.Warn("COMMAND", fmt.Sprintf("[%s] %v", tokens[0], err))
		fmt.Fprintln(s.Out, err.Error())
	}
	return nil
}

// Run reads commands from input until exit or end of input. The prompt is
// written before every command when not empty.
func (r *Router) Run(input *LineScanner, prompt string) error {
	for {
		if prompt != "" {
			fmt.Fprint(r.session.Out, prompt)
		}
		line, err := input.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		if err := r.Dispatch(line); err != nil {
			if errors.Is(err, operations.ErrExit) {
				return nil
			}
			return err
		}
	}
}

// LineScanner reads one line at a time. The shell loop and operations that
// ask follow-up questions share the same scanner.
type LineScanner struct {
	scanner *bufio.Scanner
}

func NewLineScanner(r io.Reader) *LineScanner {
	return &LineScanner{scanner: bufio.NewScanner(r)}
}

func (l *LineScanner) ReadLine() (string, error) {
	if !l.scanner.Scan() {
		if err := l.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimRight(l.scanner.Text(), "\r"), nil
}
