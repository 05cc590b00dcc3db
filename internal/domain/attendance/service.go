package attendance

import "context"

type AttendanceService interface {
	// Mark creates one row per (internId, date); future dates and duplicates
	// are rejected.
	Mark(ctx context.Context, req MarkRequest) (Attendance, error)
	ListByInternID(ctx context.Context, internID string) ([]Attendance, error)
	List(ctx context.Context) ([]Attendance, error)
}
