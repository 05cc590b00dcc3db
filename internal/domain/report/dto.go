package report

import "github.com/omyra-tech/intern-portal-backend-go/internal/domain/attendance"

// ReportRow is one intern with their raw attendance rows. The report does
// not pre-aggregate; the dashboard derives its charts client-side.
type ReportRow struct {
	FirstName   string                  `json:"firstName"`
	LastName    string                  `json:"lastName"`
	Designation string                  `json:"designation"`
	Attendance  []attendance.Attendance `json:"attendance"`
}
