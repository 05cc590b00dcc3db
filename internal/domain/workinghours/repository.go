package workinghours

import "context"

// MonthlyHoursRepository stores per-month override rows.
type MonthlyHoursRepository interface {
	// Get returns nil when no override exists for the pair.
	Get(ctx context.Context, month, year int) (*MonthlyHours, error)

	// Upsert inserts or replaces the single row for (month, year).
	Upsert(ctx context.Context, month, year int, hours float64) (MonthlyHours, error)
}
