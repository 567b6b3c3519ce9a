// Package eventfile reads and writes the plain text event file.
//
// Each event is a record of three lines: the event name, its start time as
// "yyyy-MM-dd HH:mm:ss" and the registry name of its hall ("Hall-2").
// Records are separated by a single blank line and the last record is not
// followed by one. Blank or whitespace-only lines are skipped on read.
package eventfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"hall-booker/internal/models"
	"hall-booker/internal/utils"
)

// Record is the persisted part of an event. Seat and ticket state is not
// stored.
type Record struct {
	Name     string
	Date     time.Time
	HallName string
}

// ErrTruncated is returned when a record is missing its date or hall line.
var ErrTruncated = errors.New("truncated event record")

// Op identifies which file command failed, each has its own message.
type Op string

const (
	OpOpen   Op = "open"
	OpSave   Op = "save"
	OpSaveAs Op = "saveas"
	OpClose  Op = "close"
)

var opMessages = map[Op]string{
	OpOpen:   "Something went wrong with opening the file",
	OpSave:   "An error occurred while writing file",
	OpSaveAs: "File not saved",
	OpClose:  "Something went wrong with closing the file",
}

// FileError reports a failed file command. Error returns the fixed operator
// message; the cause stays reachable through Unwrap.
type FileError struct {
	Op   Op
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return opMessages[e.Op]
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// Cause describes the underlying failure for logs.
func (e *FileError) Cause() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// RecordsOf captures the persisted fields of events, in order.
func RecordsOf(events []*models.Event) []Record {
	records := make([]Record, 0, len(events))
	for _, event := range events {
		records = append(records, Record{
			Name:     event.Name,
			Date:     event.Date,
			HallName: event.Hall.Name(),
		})
	}
	return records
}

// Read parses every record from r.
func Read(r io.Reader) ([]Record, error) {
	scanner := bufio.NewScanner(r)
	next := func() (string, bool) {
		if !scanner.Scan() {
			return "", false
		}
		return strings.TrimRight(scanner.Text(), "\r"), true
	}

	var records []Record
	for {
		name, ok := next()
		if !ok {
			break
		}
		if strings.TrimSpace(name) == "" {
			continue
		}
		date, ok := next()
		if !ok {
			return nil, fmt.Errorf("%w: %q has no date", ErrTruncated, name)
		}
		hall, ok := next()
		if !ok {
			return nil, fmt.Errorf("%w: %q has no hall", ErrTruncated, name)
		}
		parsed, err := utils.ParseTimestamp(strings.TrimSpace(date))
		if err != nil {
			return nil, err
		}
		records = append(records, Record{
			Name:     name,
			Date:     parsed,
			HallName: strings.TrimSpace(hall),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

// Write renders records in file format.
func Write(w io.Writer, records []Record) error {
	bw := bufio.NewWriter(w)
	for i, record := range records {
		if i > 0 {
			bw.WriteString("\n\n")
		}
		fmt.Fprintf(bw, "%s\n%s\n%s", record.Name, utils.FormatTimestamp(record.Date), record.HallName)
	}
	return bw.Flush()
}

// Load reads the records stored at path.
func Load(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &FileError{Op: OpOpen, Path: path, Err: err}
	}
	defer f.Close()

	records, err := Read(f)
	if err != nil {
		if errors.Is(err, models.ErrInvalidDate) {
			return nil, err
		}
		return nil, &FileError{Op: OpOpen, Path: path, Err: err}
	}
	return records, nil
}

// Store truncates path and writes records to it. op selects the error message
// reported on failure.
func Store(path string, records []Record, op Op) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return &FileError{Op: op, Path: path, Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = &FileError{Op: op, Path: path, Err: cerr}
		}
	}()

	if err := Write(f, records); err != nil {
		return &FileError{Op: op, Path: path, Err: err}
	}
	return nil
}

// Touch opens and immediately closes path.
func Touch(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return &FileError{Op: OpClose, Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &FileError{Op: OpClose, Path: path, Err: err}
	}
	return nil
}
