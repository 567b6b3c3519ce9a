package logger

import (
	"bufio"
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsoleOutputRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(Options{Console: &buf, Level: WARN, NoColor: true}, nil)

	l.Info("BOOKING", "hidden")
	l.Warn("booking", "seat already booked")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "WARN")
	assert.Contains(t, out, "[BOOKING   ]")
	assert.Contains(t, out, "seat already booked")
	assert.Contains(t, out, "logger_test.go")
}

func TestFileOutputIsJSON(t *testing.T) {
	dir := t.TempDir()
	l, err := NewLogger(Options{Dir: dir, Level: DEBUG, FileName: "test.log"})
	require.NoError(t, err)

	l.LogTicket("Ab3x9", "Gala", "1A")
	l.Close()

	f, err := os.Open(filepath.Join(dir, "test.log"))
	require.NoError(t, err)
	defer f.Close()

	var entries []LogEntry
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var entry LogEntry
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &entry))
		entries = append(entries, entry)
	}

	require.NotEmpty(t, entries)
	last := entries[len(entries)-1]
	assert.Equal(t, "INFO", last.Level)
	assert.Equal(t, "TICKET", last.Category)
	assert.Equal(t, "issued Ab3x9 for Gala seat 1A", last.Message)
	assert.Equal(t, l.Session(), last.Session)
}

func TestFatalExits(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(Options{Console: &buf, NoColor: true}, nil)
	code := -1
	l.exit = func(c int) { code = c }

	l.Fatal("CONFIG", "broken")

	assert.Equal(t, 1, code)
	assert.Contains(t, buf.String(), "FATAL")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, DEBUG, ParseLevel("debug"))
	assert.Equal(t, WARN, ParseLevel("Warning"))
	assert.Equal(t, ERROR, ParseLevel("ERROR"))
	assert.Equal(t, INFO, ParseLevel("whatever"))
}

func TestNopDiscards(t *testing.T) {
	l := NewNop()
	l.Error("X", "nothing")
	l.Close()
}
