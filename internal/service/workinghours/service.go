package workinghours

import (
	"context"
	"fmt"
	"time"

	"github.com/omyra-tech/intern-portal-backend-go/internal/domain/holiday"
	"github.com/omyra-tech/intern-portal-backend-go/internal/domain/workinghours"
)

type WorkingHoursServiceImpl struct {
	monthlyHoursRepo workinghours.MonthlyHoursRepository
	holidayRepo      holiday.HolidayRepository
}

func NewWorkingHoursService(
	monthlyHoursRepo workinghours.MonthlyHoursRepository,
	holidayRepo holiday.HolidayRepository,
) workinghours.WorkingHoursService {
	return &WorkingHoursServiceImpl{
		monthlyHoursRepo: monthlyHoursRepo,
		holidayRepo:      holidayRepo,
	}
}

// Get implements workinghours.WorkingHoursService.
func (s *WorkingHoursServiceImpl) Get(ctx context.Context, month, year int) (workinghours.MonthlyHoursResponse, error) {
	override, err := s.monthlyHoursRepo.Get(ctx, month, year)
	if err != nil {
		return workinghours.MonthlyHoursResponse{}, fmt.Errorf("failed to get override: %w", err)
	}

	var overrideHours *float64
	var holidays []holiday.Holiday

	if override != nil {
		overrideHours = &override.Hours
	} else {
		monthStart := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
		monthEnd := monthStart.AddDate(0, 1, -1)

		holidays, err = s.holidayRepo.ListBetween(ctx, monthStart, monthEnd)
		if err != nil {
			return workinghours.MonthlyHoursResponse{}, fmt.Errorf("failed to list holidays: %w", err)
		}
	}

	return workinghours.MonthlyHoursResponse{
		Month: month,
		Year:  year,
		Hours: ComputeMonthlyWorkingHours(month, year, holidays, overrideHours),
	}, nil
}

// SetOverride implements workinghours.WorkingHoursService.
func (s *WorkingHoursServiceImpl) SetOverride(ctx context.Context, req workinghours.OverrideRequest) (workinghours.MonthlyHours, error) {
	return s.monthlyHoursRepo.Upsert(ctx, req.Month, req.Year, req.Hours)
}
