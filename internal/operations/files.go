package operations

import (
	"errors"
	"fmt"

	"hall-booker/internal/eventfile"
	"hall-booker/internal/models"
)

const (
	openUsage   = "open <file>"
	saveUsage   = "save [file]"
	saveAsUsage = "saveas <file>"
	closeUsage  = "close [file]"
)

// Open appends every event stored in a file. Each event gets a fresh copy of
// its hall; the whole file is validated before anything is added.
func Open(s *Session, args []string) error {
	if len(args) < 2 {
		return usageError(openUsage)
	}
	path := joinTokens(args[1:])

	records, err := eventfile.Load(path)
	if err != nil {
		s.logFileError(err)
		return err
	}

	events := make([]*models.Event, 0, len(records))
	for _, record := range records {
		template, err := s.Halls.ByName(record.HallName)
		if err != nil {
			return err
		}
		events = append(events, models.NewEvent(record.Name, record.Date, template))
	}
	for _, event := range events {
		s.Booker.Add(event)
	}

	s.CurrentFile = path
	s.Logger.LogFile("open", path, fmt.Sprintf("loaded %d event(s)", len(events)))
	s.println("Opened.")
	return nil
}

// Save overwrites a file with the current events. Without a path it writes
// back to the current file.
func Save(s *Session, args []string) error {
	path := s.CurrentFile
	if len(args) > 1 {
		path = joinTokens(args[1:])
	}
	if path == "" {
		return usageError(saveUsage)
	}
	return s.store(path, eventfile.OpSave)
}

// SaveAs writes the current events to a new file, which becomes current.
func SaveAs(s *Session, args []string) error {
	if len(args) < 2 {
		return usageError(saveAsUsage)
	}
	path := joinTokens(args[1:])
	if err := s.store(path, eventfile.OpSaveAs); err != nil {
		return err
	}
	s.CurrentFile = path
	return nil
}

func (s *Session) store(path string, op eventfile.Op) error {
	records := eventfile.RecordsOf(s.Booker.Events())
	if err := eventfile.Store(path, records, op); err != nil {
		s.logFileError(err)
		return err
	}
	s.Logger.LogFile(string(op), path, fmt.Sprintf("wrote %d event(s)", len(records)))
	s.println("Saved.")
	return nil
}

// Close opens and closes the file without touching any event. Closing the
// current file forgets it.
func Close(s *Session, args []string) error {
	path := s.CurrentFile
	if len(args) > 1 {
		path = joinTokens(args[1:])
	}
	if path == "" {
		return usageError(closeUsage)
	}
	if err := eventfile.Touch(path); err != nil {
		s.logFileError(err)
		return err
	}
	if path == s.CurrentFile {
		s.CurrentFile = ""
	}
	s.printf("Closing %s\n", path)
	return nil
}

func (s *Session) logFileError(err error) {
	var fileErr *eventfile.FileError
	if errors.As(err, &fileErr) {
		s.Logger.Error("FILE", fileErr.Cause())
	}
}
