package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance rows.
type AttendanceRepository interface {
	Create(ctx context.Context, att Attendance) (Attendance, error)

	// GetByInternAndDate returns nil when no row exists for the pair. Used to
	// reject double marking.
	GetByInternAndDate(ctx context.Context, internID string, date time.Time) (*Attendance, error)

	// ListByInternID matches the denormalized string reference exactly.
	ListByInternID(ctx context.Context, internID string) ([]Attendance, error)

	// ListByInternIDs matches rows referencing any of the given ids. The
	// report path passes both the storage id and the business id.
	ListByInternIDs(ctx context.Context, ids ...string) ([]Attendance, error)

	List(ctx context.Context) ([]Attendance, error)

	// DeleteByInternID removes every row whose reference equals internID.
	DeleteByInternID(ctx context.Context, internID string) error
}
