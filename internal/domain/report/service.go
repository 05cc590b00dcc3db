package report

import "context"

type ReportService interface {
	// BuildAttendanceReport joins every intern with attendance rows matched
	// by either the storage id or the business intern id.
	BuildAttendanceReport(ctx context.Context) ([]ReportRow, error)
}
