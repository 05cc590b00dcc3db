package holiday

import (
	"context"
	"time"
)

// HolidayRepository defines data access methods for the holiday calendar.
type HolidayRepository interface {
	Create(ctx context.Context, h Holiday) (Holiday, error)

	List(ctx context.Context) ([]Holiday, error)

	// ListBetween returns holidays whose date falls in [from, to], compared
	// by calendar day.
	ListBetween(ctx context.Context, from, to time.Time) ([]Holiday, error)

	// GetConflicting returns a holiday other than excludeID occupying the
	// given calendar day, or nil.
	GetConflicting(ctx context.Context, date time.Time, excludeID string) (*Holiday, error)

	Update(ctx context.Context, id string, name string, date time.Time) (Holiday, error)

	Delete(ctx context.Context, id string) error
}
