package router_test

import (
	"bytes"
	"hall-booker/internal/operations"
	"hall-booker/internal/router"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(input string) (*router.Router, *operations.Session, *router.LineScanner, *bytes.Buffer) {
	var out bytes.Buffer
	scanner := router.NewLineScanner(strings.NewReader(input))
	session := operations.NewSession(&out, scanner, nil)
	return router.New(session), session, scanner, &out
}

func TestCommandsRegistered(t *testing.T) {
	r, _, _, _ := newRouter("")

	expected := []string{
		"addevent", "book", "bookings", "buy", "check", "close", "exit", "freeseats",
		"help", "mostfamous", "open", "qr", "report", "save", "saveas", "statistic", "unbook",
	}
	assert.Equal(t, expected, r.Commands())
}

func TestDispatchInvalidCommand(t *testing.T) {
	r, _, _, out := newRouter("")

	require.NoError(t, r.Dispatch("dance 1 2 3"))
	assert.Equal(t, "Invalid command\n", out.String())

	// Test case: blank lines are not a command either
	for _, line := range []string{"", "   \t "} {
		out.Reset()
		require.NoError(t, r.Dispatch(line))
		assert.Equal(t, "Invalid command\n", out.String())
	}
}

func TestDispatchPrintsErrorsAndContinues(t *testing.T) {
	r, session, _, out := newRouter("")

	require.NoError(t, r.Dispatch("addevent 2024-02-01 14:10:20 Hall-7 Gala"))
	assert.Equal(t, "There is no such hall\n", out.String())

	out.Reset()
	require.NoError(t, r.Dispatch("check abcde"))
	assert.Equal(t, "Invalid code\n", out.String())

	require.NoError(t, r.Dispatch("addevent 2024-02-01 14:10:20 Hall-2 Gala"))
	assert.Equal(t, 1, session.Booker.Len())
}

func TestDispatchExit(t *testing.T) {
	r, _, _, _ := newRouter("")
	assert.ErrorIs(t, r.Dispatch("exit"), operations.ErrExit)
}

func TestRunGalaWalkthrough(t *testing.T) {
	script := strings.Join([]string{
		"addevent 2024-02-01 14:10:20 Hall-2 Gala",
		`book 1 1A 2024-02-01 14:10:20 Gala "vip"`,
		"buy 1 1A 2024-02-01 14:10:20 Gala",
	}, "\n")
	r, session, scanner, out := newRouter(script)
	session.Codes.Next = func() string { return "Gx7Q2" }

	require.NoError(t, r.Run(scanner, ""))

	event := session.Booker.Events()[0]
	seat := event.Hall.Rows[0].Seats[0]
	assert.True(t, seat.Booked)
	assert.True(t, seat.Paid)
	assert.Equal(t, "vip", seat.Note)
	assert.Contains(t, out.String(), "This is your code: Gx7Q2\n")

	out.Reset()
	require.NoError(t, r.Dispatch("check Gx7Q2"))
	assert.Equal(t, "Valid code\nEvent: Gala\non: 2024-02-01T14:10:20\nin hall: Hall-2\n", out.String())
}

func TestRunStopsAtExit(t *testing.T) {
	script := "mostfamous\nexit\naddevent 2024-02-01 14:10:20 Hall-2 Gala\n"
	r, session, scanner, out := newRouter(script)

	require.NoError(t, r.Run(scanner, "> "))

	assert.Equal(t, 0, session.Booker.Len())
	assert.Equal(t, "> The most watched event is:  with 0 tickets sold.\n> \nBye...\n", out.String())
}

func TestRunStatisticReadsFromSameInput(t *testing.T) {
	script := strings.Join([]string{
		"addevent 2024-01-11 20:00:00 Hall-4 Flop",
		"statistic",
		"yes",
		"bookings",
	}, "\n")
	r, session, scanner, out := newRouter(script)

	require.NoError(t, r.Run(scanner, ""))

	assert.Equal(t, 0, session.Booker.Len())
	assert.Contains(t, out.String(), "Do you wish to remove this event (yes/no): Flop")
	assert.NotContains(t, out.String(), "Invalid command")
	assert.Contains(t, out.String(), "No bookings found.")
}

func TestSaveOpenRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.txt")

	r, session, _, _ := newRouter("")
	for _, line := range []string{
		"addevent 2024-02-01 14:10:20 Hall-2 Gala",
		"addevent 2024-03-01 20:00:00 Hall-4 Swan Lake",
		"addevent 2024-04-01 09:30:05 Hall-5 Morning Talk",
		`book 1 1A 2024-02-01 14:10:20 Gala "vip"`,
		"buy 1 1B 2024-02-01 14:10:20 Gala",
		"save " + path,
	} {
		require.NoError(t, r.Dispatch(line))
	}

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Gala\n2024-02-01 14:10:20\nHall-2\n\n"+
		"Swan Lake\n2024-03-01 20:00:00\nHall-4\n\n"+
		"Morning Talk\n2024-04-01 09:30:05\nHall-5", string(data))

	fresh, freshSession, _, out := newRouter("")
	require.NoError(t, fresh.Dispatch("open "+path))
	assert.Equal(t, "Opened.\n", out.String())
	assert.Equal(t, path, freshSession.CurrentFile)

	saved := session.Booker.Events()
	loaded := freshSession.Booker.Events()
	require.Len(t, loaded, len(saved))
	for i := range saved {
		assert.Equal(t, saved[i].Name, loaded[i].Name)
		assert.True(t, saved[i].Date.Equal(loaded[i].Date))
		assert.Equal(t, saved[i].Hall.Number, loaded[i].Hall.Number)
	}

	// Test case: seat and ticket state is not carried over
	assert.Empty(t, loaded[0].Hall.Tickets)
	assert.False(t, loaded[0].Hall.Rows[0].Seats[0].Booked)
}

func TestFileCommands(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "events.txt")
	other := filepath.Join(dir, "copy.txt")

	r, session, _, out := newRouter("")

	// Test case: save without a current file
	require.NoError(t, r.Dispatch("save"))
	assert.Contains(t, out.String(), "Invalid number of arguments")

	require.NoError(t, r.Dispatch("addevent 2024-02-01 14:10:20 Hall-2 Gala"))
	require.NoError(t, r.Dispatch("saveas "+path))
	assert.Equal(t, path, session.CurrentFile)

	require.NoError(t, r.Dispatch("addevent 2024-02-02 14:10:20 Hall-3 Opera"))
	require.NoError(t, r.Dispatch("save"))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Opera")

	require.NoError(t, r.Dispatch("saveas "+other))
	assert.FileExists(t, other)

	out.Reset()
	require.NoError(t, r.Dispatch("close "+path))
	assert.Equal(t, "Closing "+path+"\n", out.String())
	assert.Equal(t, other, session.CurrentFile)

	out.Reset()
	require.NoError(t, r.Dispatch("close"))
	assert.Equal(t, "Closing "+other+"\n", out.String())
	assert.Empty(t, session.CurrentFile)

	// Test case: file errors print their fixed message
	out.Reset()
	require.NoError(t, r.Dispatch("open "+filepath.Join(dir, "missing.txt")))
	assert.Equal(t, "Something went wrong with opening the file\n", out.String())

	out.Reset()
	require.NoError(t, r.Dispatch("save "+filepath.Join(dir, "nope", "x.txt")))
	assert.Equal(t, "An error occurred while writing file\n", out.String())

	out.Reset()
	require.NoError(t, r.Dispatch("saveas "+filepath.Join(dir, "nope", "x.txt")))
	assert.Equal(t, "File not saved\n", out.String())

	out.Reset()
	require.NoError(t, r.Dispatch("close "+filepath.Join(dir, "missing.txt")))
	assert.Equal(t, "Something went wrong with closing the file\n", out.String())
}

func TestOpenUnknownHallAddsNothing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.txt")
	content := "Gala\n2024-02-01 14:10:20\nHall-2\n\nGhost\n2024-02-02 14:10:20\nHall-9"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	r, session, _, out := newRouter("")
	require.NoError(t, r.Dispatch("open "+path))

	assert.Equal(t, "There is no such hall\n", out.String())
	assert.Equal(t, 0, session.Booker.Len())
}
