package service

import (
	"testing"

	"or-caseflow-backend/internal/database/models"

	"github.com/stretchr/testify/assert"
)

func TestOrderCases(t *testing.T) {
	t.Run("queued cases come before timed cases", func(t *testing.T) {
		records := []models.CaseRecord{
			{HN: "A", ScheduledTime: "08:00"},
			{HN: "B", ScheduledTime: "13:00", Queue: 2},
			{HN: "C", ScheduledTime: "15:00", Queue: 1},
		}
		ordered := OrderCases(records)
		assert.Equal(t, "C", ordered[0].HN)
		assert.Equal(t, "B", ordered[1].HN)
		assert.Equal(t, "A", ordered[2].HN)
	})

	t.Run("timed cases sort by clock", func(t *testing.T) {
		records := []models.CaseRecord{
			{HN: "A", ScheduledTime: "13:30"},
			{HN: "B", ScheduledTime: "08:00"},
			{HN: "C", ScheduledTime: "08:45"},
		}
		ordered := OrderCases(records)
		assert.Equal(t, []string{"B", "C", "A"}, []string{ordered[0].HN, ordered[1].HN, ordered[2].HN})
	})

	t.Run("flexible time sorts last", func(t *testing.T) {
		records := []models.CaseRecord{
			{HN: "A", ScheduledTime: "TF"},
			{HN: "B", ScheduledTime: "16:00"},
			{HN: "C", ScheduledTime: ""},
		}
		ordered := OrderCases(records)
		assert.Equal(t, "B", ordered[0].HN)
		assert.Equal(t, "A", ordered[1].HN)
		assert.Equal(t, "C", ordered[2].HN)
	})

	t.Run("ties break on hn", func(t *testing.T) {
		records := []models.CaseRecord{
			{HN: "6500002", ScheduledTime: "09:00"},
			{HN: "6500001", ScheduledTime: "09:00"},
		}
		ordered := OrderCases(records)
		assert.Equal(t, "6500001", ordered[0].HN)
	})

	t.Run("input slice is not mutated", func(t *testing.T) {
		records := []models.CaseRecord{
			{HN: "B", ScheduledTime: "13:00"},
			{HN: "A", ScheduledTime: "08:00"},
		}
		_ = OrderCases(records)
		assert.Equal(t, "B", records[0].HN)
	})
}

func TestTimeSortKey(t *testing.T) {
	tf, _, _ := timeSortKey("TF")
	assert.Equal(t, 1, tf)

	tf, hh, mm := timeSortKey("09:30")
	assert.Equal(t, 0, tf)
	assert.Equal(t, 9, hh)
	assert.Equal(t, 30, mm)

	tf, _, _ = timeSortKey("garbage")
	assert.Equal(t, 1, tf)
}

func TestRoomSortKey(t *testing.T) {
	configured := []string{"OR1", "OR2", "OR8"}

	t.Run("configured rooms keep board position", func(t *testing.T) {
		class, pos := roomSortKey("OR8", configured)
		assert.Equal(t, 0, class)
		assert.Equal(t, 2, pos)
	})

	t.Run("unknown rooms sort by number after configured", func(t *testing.T) {
		class, pos := roomSortKey("OR12", configured)
		assert.Equal(t, 1, class)
		assert.Equal(t, 12, pos)
	})

	t.Run("unassigned bucket sorts last", func(t *testing.T) {
		class, _ := roomSortKey("-", configured)
		assert.Equal(t, 2, class)
	})
}

func TestNormalizeClock(t *testing.T) {
	assert.Equal(t, "09:05", normalizeClock("9:5"))
	assert.Equal(t, "13:30", normalizeClock(" 13:30 "))
	assert.Equal(t, "08:00", normalizeClock("08:00:00"))
	assert.Equal(t, "TF", normalizeClock(""))
	assert.Equal(t, "TF", normalizeClock("tf"))
	assert.Equal(t, "TF", normalizeClock("25:00"))
	assert.Equal(t, "TF", normalizeClock("follow"))
}

func TestMinutesOfDay(t *testing.T) {
	m, err := minutesOfDay("09:30")
	assert.NoError(t, err)
	assert.Equal(t, 570, m)

	_, err = minutesOfDay("TF")
	assert.Error(t, err)
}
