package booker_test

import (
	"hall-booker/internal/booker"
	"hall-booker/internal/models"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	feb1 = time.Date(2024, 2, 1, 14, 10, 20, 0, time.UTC)
	feb2 = time.Date(2024, 2, 2, 18, 0, 0, 0, time.UTC)
)

func newEvent(name string, date time.Time) *models.Event {
	return models.NewEvent(name, date, models.NewHall("1", 5))
}

func TestQueries(t *testing.T) {
	b := booker.New()
	gala := newEvent("Gala", feb1)
	galaAgain := newEvent("Gala", feb2)
	opera := newEvent("Opera", feb1)
	b.Add(gala)
	b.Add(galaAgain)
	b.Add(opera)

	assert.Equal(t, 3, b.Len())
	assert.True(t, b.HasName("Gala"))
	assert.False(t, b.HasName("gala"))

	got, err := b.ByNameAndDate("Gala", feb2)
	require.NoError(t, err)
	assert.Same(t, galaAgain, got)

	_, err = b.ByNameAndDate("Opera", feb2)
	assert.ErrorIs(t, err, models.ErrNoSuchEvent)

	assert.Equal(t, []*models.Event{gala, galaAgain}, b.ByName("Gala"))
	assert.Equal(t, []*models.Event{gala, opera}, b.ByDate(feb1))
	assert.Empty(t, b.ByName("Ballet"))
}

func TestRemove(t *testing.T) {
	b := booker.New()
	first := newEvent("A", feb1)
	second := newEvent("B", feb1)
	third := newEvent("A", feb2)
	b.Add(first)
	b.Add(second)
	b.Add(third)

	b.Remove(second)
	assert.Equal(t, []*models.Event{first, third}, b.Events())

	b.RemoveAll(b.ByName("A"))
	assert.Equal(t, 0, b.Len())
}

func TestFindTicket(t *testing.T) {
	b := booker.New()
	event := newEvent("Gala", feb1)
	event.Hall.AddTicket(models.Ticket{Code: "Ab3x9", SeatNumber: "1A"})
	b.Add(event)

	got, ticket, err := b.FindTicket("Ab3x9")
	require.NoError(t, err)
	assert.Same(t, event, got)
	assert.Equal(t, "1A", ticket.SeatNumber)
	assert.True(t, b.CodeTaken("Ab3x9"))

	_, _, err = b.FindTicket("zzzzz")
	assert.ErrorIs(t, err, models.ErrInvalidCode)
	assert.False(t, b.CodeTaken("zzzzz"))
}
