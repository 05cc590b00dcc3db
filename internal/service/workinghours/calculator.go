package workinghours

import (
	"time"

	"github.com/omyra-tech/intern-portal-backend-go/internal/domain/attendance"
	"github.com/omyra-tech/intern-portal-backend-go/internal/domain/holiday"
)

// HoursPerWorkingDay is the fixed day length used when no override exists.
const HoursPerWorkingDay = 8

// ComputeMonthlyWorkingHours returns the expected hours for a month. An
// override wins outright; otherwise every weekday not on a holiday counts
// for HoursPerWorkingDay. Holiday matching is by calendar day, never by
// timestamp.
func ComputeMonthlyWorkingHours(month, year int, holidays []holiday.Holiday, override *float64) float64 {
	if override != nil {
		return *override
	}

	daysInMonth := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()

	workingDays := 0
	for day := 1; day <= daysInMonth; day++ {
		date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)

		if date.Weekday() == time.Saturday || date.Weekday() == time.Sunday {
			continue
		}
		if isHoliday(date, holidays) {
			continue
		}
		workingDays++
	}

	return float64(workingDays * HoursPerWorkingDay)
}

func isHoliday(date time.Time, holidays []holiday.Holiday) bool {
	for _, h := range holidays {
		hy, hm, hd := h.Date.Date()
		y, m, d := date.Date()
		if hy == y && hm == m && hd == d {
			return true
		}
	}
	return false
}

// AttendanceSummary aggregates a set of attendance rows.
type AttendanceSummary struct {
	TotalHours            float64                `json:"totalHours"`
	AverageHoursPerRecord float64                `json:"averageHoursPerRecord"`
	PerMonthTotals        map[string]float64     `json:"perMonthTotals"`
	TopDay                *attendance.Attendance `json:"topDay,omitempty"`
	IdleDayCount          int                    `json:"idleDayCount"`
}

// AggregateAttendance sums a record set the way the dashboard reads it.
// Missing hours count as zero for the total but still occupy a denominator
// slot in the average, so the figure is per record, not per working day.
// IdleDayCount only counts rows whose hours are present and exactly zero.
// TopDay is the first row strictly exceeding every earlier one; rows that
// tie lose to the earlier row, and a set with no positive hours has no top
// day.
func AggregateAttendance(records []attendance.Attendance) AttendanceSummary {
	summary := AttendanceSummary{
		PerMonthTotals: make(map[string]float64),
	}

	var topHours float64
	for idx, record := range records {
		hours := 0.0
		if record.Hours != nil {
			hours = *record.Hours
		}

		summary.TotalHours += hours
		summary.PerMonthTotals[record.Date.Format("2006-01")] += hours

		if hours > topHours {
			topHours = hours
			summary.TopDay = &records[idx]
		}

		if record.Hours != nil && *record.Hours == 0 {
			summary.IdleDayCount++
		}
	}

	if len(records) > 0 {
		summary.AverageHoursPerRecord = summary.TotalHours / float64(len(records))
	}

	return summary
}
