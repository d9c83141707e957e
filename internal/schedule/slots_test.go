package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DocFacilBR/doc-scheduler/internal/models"
)

func businessDay(date time.Time, start, end string) []models.BusinessHours {
	return []models.BusinessHours{
		{DayOfWeek: int(date.Weekday()), StartTime: start, EndTime: end, Active: true},
	}
}

func TestGenerateTimeSlots_BasicDay(t *testing.T) {
	date := time.Date(2026, time.March, 4, 0, 0, 0, 0, time.UTC)

	slots := GenerateTimeSlots(date, 30, businessDay(date, "09:00", "18:00"), nil, nil)

	require.Len(t, slots, 18) // 09:00 .. 17:30, de 30 em 30

	assert.Equal(t, "09:00", slots[0].Time)
	assert.True(t, slots[0].Available)

	last := slots[len(slots)-1]
	assert.Equal(t, "17:30", last.Time) // 17:30+30 = 18:00 <= 18:00 entra
	assert.True(t, last.Available)

	for _, s := range slots {
		assert.NotEqual(t, "18:00", s.Time) // 18:00+30 > 18:00 fica fora
	}
}

func TestGenerateTimeSlots_ClosedDay(t *testing.T) {
	date := time.Date(2026, time.March, 8, 0, 0, 0, 0, time.UTC)
	hours := []models.BusinessHours{
		{DayOfWeek: int(date.Weekday()), StartTime: "00:00", EndTime: "00:00", Active: false},
	}

	slots := GenerateTimeSlots(date, 30, hours, nil, nil)
	assert.Empty(t, slots)
}

func TestGenerateTimeSlots_NoEntryForWeekday(t *testing.T) {
	date := time.Date(2026, time.March, 4, 0, 0, 0, 0, time.UTC)
	hours := []models.BusinessHours{
		{DayOfWeek: int(date.AddDate(0, 0, 1).Weekday()), StartTime: "09:00", EndTime: "18:00", Active: true},
	}

	slots := GenerateTimeSlots(date, 30, hours, nil, nil)
	assert.Empty(t, slots)
}

func TestGenerateTimeSlots_BookedConflict(t *testing.T) {
	date := time.Date(2026, time.March, 4, 0, 0, 0, 0, time.UTC)
	hours := businessDay(date, "09:00", "18:00")

	bookings := []models.Booking{
		{Date: "2026-03-04", Time: "10:00", Status: "confirmed"},
	}

	slots := GenerateTimeSlots(date, 30, hours, bookings, nil)

	byTime := map[string]bool{}
	for _, s := range slots {
		byTime[s.Time] = s.Available
	}

	assert.False(t, byTime["10:00"])
	assert.True(t, byTime["09:30"])
	assert.True(t, byTime["10:30"])
}

func TestGenerateTimeSlots_CancelledBookingDoesNotBlock(t *testing.T) {
	date := time.Date(2026, time.March, 4, 0, 0, 0, 0, time.UTC)
	hours := businessDay(date, "09:00", "18:00")

	bookings := []models.Booking{
		{Date: "2026-03-04", Time: "10:00", Status: models.BookingCancelled},
	}

	slots := GenerateTimeSlots(date, 30, hours, bookings, nil)
	for _, s := range slots {
		if s.Time == "10:00" {
			assert.True(t, s.Available)
		}
	}
}

func TestGenerateTimeSlots_BookingOnOtherDateIgnored(t *testing.T) {
	date := time.Date(2026, time.March, 4, 0, 0, 0, 0, time.UTC)
	hours := businessDay(date, "09:00", "18:00")

	bookings := []models.Booking{
		{Date: "2026-03-05", Time: "10:00", Status: "confirmed"},
	}

	slots := GenerateTimeSlots(date, 30, hours, bookings, nil)
	for _, s := range slots {
		assert.True(t, s.Available)
	}
}

func TestGenerateTimeSlots_BlockedSlot(t *testing.T) {
	date := time.Date(2026, time.March, 4, 0, 0, 0, 0, time.UTC)
	hours := businessDay(date, "09:00", "18:00")

	blocked := []models.BlockedSlot{
		{Date: "2026-03-04", Time: "14:30", Reason: "compromisso"},
	}

	slots := GenerateTimeSlots(date, 30, hours, nil, blocked)

	for _, s := range slots {
		if s.Time == "14:30" {
			assert.False(t, s.Available)
		} else {
			assert.True(t, s.Available)
		}
	}
}

// O passo continua fixo em 30min mesmo para serviços mais longos, então
// janelas sobrepostas são oferecidas. Comportamento herdado — o teste
// fixa isso para ninguém "consertar" sem querer.
func TestGenerateTimeSlots_LongDurationKeepsStep(t *testing.T) {
	date := time.Date(2026, time.March, 4, 0, 0, 0, 0, time.UTC)

	slots := GenerateTimeSlots(date, 60, businessDay(date, "09:00", "18:00"), nil, nil)

	require.NotEmpty(t, slots)
	assert.Equal(t, "09:00", slots[0].Time)
	assert.Equal(t, "09:30", slots[1].Time) // passo de 30, não 60
	assert.Equal(t, "17:00", slots[len(slots)-1].Time)
}

func TestGenerateTimeSlots_MidnightCrossingUnsupported(t *testing.T) {
	date := time.Date(2026, time.March, 4, 0, 0, 0, 0, time.UTC)

	slots := GenerateTimeSlots(date, 30, businessDay(date, "22:00", "02:00"), nil, nil)
	assert.Empty(t, slots)
}

func TestGenerateTimeSlots_SaturdayShortDay(t *testing.T) {
	date := time.Date(2026, time.March, 7, 0, 0, 0, 0, time.UTC) // sábado

	slots := GenerateTimeSlots(date, 30, DefaultBusinessHours(), nil, nil)

	require.NotEmpty(t, slots)
	assert.Equal(t, "09:00", slots[0].Time)
	assert.Equal(t, "13:30", slots[len(slots)-1].Time)
}

func TestParseMinutes(t *testing.T) {
	m, ok := parseMinutes("09:30")
	require.True(t, ok)
	assert.Equal(t, 570, m)

	_, ok = parseMinutes("0930")
	assert.False(t, ok)

	_, ok = parseMinutes("ab:cd")
	assert.False(t, ok)
}
