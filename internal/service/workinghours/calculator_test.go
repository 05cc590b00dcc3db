package workinghours

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omyra-tech/intern-portal-backend-go/internal/domain/attendance"
	"github.com/omyra-tech/intern-portal-backend-go/internal/domain/holiday"
)

func hol(name string, y int, m time.Month, d int) holiday.Holiday {
	return holiday.Holiday{ID: name, Name: name, Date: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func TestComputeMonthlyWorkingHours(t *testing.T) {
	t.Run("january 2024 has 23 weekdays", func(t *testing.T) {
		got := ComputeMonthlyWorkingHours(1, 2024, nil, nil)
		assert.Equal(t, float64(23*8), got)
	})

	t.Run("weekday holiday removes a day", func(t *testing.T) {
		holidays := []holiday.Holiday{hol("New Year", 2024, time.January, 1)}
		got := ComputeMonthlyWorkingHours(1, 2024, holidays, nil)
		assert.Equal(t, float64(22*8), got)
	})

	t.Run("weekend holiday changes nothing", func(t *testing.T) {
		holidays := []holiday.Holiday{hol("Some Saturday", 2024, time.January, 6)}
		got := ComputeMonthlyWorkingHours(1, 2024, holidays, nil)
		assert.Equal(t, float64(23*8), got)
	})

	t.Run("holiday outside the month is ignored", func(t *testing.T) {
		holidays := []holiday.Holiday{hol("Christmas", 2024, time.December, 25)}
		got := ComputeMonthlyWorkingHours(1, 2024, holidays, nil)
		assert.Equal(t, float64(23*8), got)
	})

	t.Run("override wins even with holidays present", func(t *testing.T) {
		override := 100.0
		holidays := []holiday.Holiday{hol("New Year", 2024, time.January, 1)}
		got := ComputeMonthlyWorkingHours(1, 2024, holidays, &override)
		assert.Equal(t, 100.0, got)
	})

	t.Run("february in a leap year", func(t *testing.T) {
		got := ComputeMonthlyWorkingHours(2, 2024, nil, nil)
		assert.Equal(t, float64(21*8), got)
	})
}

func rec(day int, hours *float64) attendance.Attendance {
	return attendance.Attendance{
		ID:       "att-" + time.Date(2024, time.March, day, 0, 0, 0, 0, time.UTC).Format("02"),
		InternID: "OM32024001",
		Date:     time.Date(2024, time.March, day, 0, 0, 0, 0, time.UTC),
		Hours:    hours,
	}
}

func ptr(v float64) *float64 { return &v }

func TestAggregateAttendance(t *testing.T) {
	t.Run("empty set", func(t *testing.T) {
		got := AggregateAttendance(nil)
		assert.Zero(t, got.TotalHours)
		assert.Zero(t, got.AverageHoursPerRecord)
		assert.Zero(t, got.IdleDayCount)
		assert.Nil(t, got.TopDay)
		assert.Empty(t, got.PerMonthTotals)
	})

	t.Run("mixed records", func(t *testing.T) {
		records := []attendance.Attendance{
			rec(1, ptr(4)),
			rec(2, ptr(0)),
			rec(3, ptr(8)),
		}

		got := AggregateAttendance(records)

		assert.Equal(t, 12.0, got.TotalHours)
		assert.Equal(t, 4.0, got.AverageHoursPerRecord)
		assert.Equal(t, 1, got.IdleDayCount)
		require.NotNil(t, got.TopDay)
		assert.Equal(t, records[2].ID, got.TopDay.ID)
	})

	t.Run("missing hours count as zero but not idle", func(t *testing.T) {
		records := []attendance.Attendance{
			rec(1, nil),
			rec(2, ptr(6)),
		}

		got := AggregateAttendance(records)

		assert.Equal(t, 6.0, got.TotalHours)
		assert.Equal(t, 3.0, got.AverageHoursPerRecord)
		assert.Equal(t, 0, got.IdleDayCount)
	})

	t.Run("top day tie keeps the earlier record", func(t *testing.T) {
		records := []attendance.Attendance{
			rec(1, ptr(8)),
			rec(2, ptr(8)),
		}

		got := AggregateAttendance(records)

		require.NotNil(t, got.TopDay)
		assert.Equal(t, records[0].ID, got.TopDay.ID)
	})

	t.Run("all zero hours has no top day", func(t *testing.T) {
		records := []attendance.Attendance{
			rec(1, ptr(0)),
			rec(2, nil),
		}

		got := AggregateAttendance(records)

		assert.Nil(t, got.TopDay)
		assert.Equal(t, 1, got.IdleDayCount)
	})

	t.Run("per month totals span months", func(t *testing.T) {
		records := []attendance.Attendance{
			rec(1, ptr(4)),
			rec(2, ptr(2)),
			{
				ID:       "att-apr",
				InternID: "OM32024001",
				Date:     time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC),
				Hours:    ptr(5),
			},
		}

		got := AggregateAttendance(records)

		assert.Equal(t, 6.0, got.PerMonthTotals["2024-03"])
		assert.Equal(t, 5.0, got.PerMonthTotals["2024-04"])
	})
}
