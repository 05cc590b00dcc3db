package workinghours

import "context"

type WorkingHoursService interface {
	// Get returns the override for (month, year) unchanged when one exists,
	// otherwise the computed figure: 8h per weekday not on a holiday.
	Get(ctx context.Context, month, year int) (MonthlyHoursResponse, error)
	SetOverride(ctx context.Context, req OverrideRequest) (MonthlyHours, error)
}
