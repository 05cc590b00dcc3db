package report

import (
	"context"
	"fmt"

	"github.com/omyra-tech/intern-portal-backend-go/internal/domain/attendance"
	"github.com/omyra-tech/intern-portal-backend-go/internal/domain/intern"
	"github.com/omyra-tech/intern-portal-backend-go/internal/domain/report"
)

type ReportServiceImpl struct {
	internRepo     intern.InternRepository
	attendanceRepo attendance.AttendanceRepository
}

func NewReportService(internRepo intern.InternRepository, attendanceRepo attendance.AttendanceRepository) report.ReportService {
	return &ReportServiceImpl{
		internRepo:     internRepo,
		attendanceRepo: attendanceRepo,
	}
}

// BuildAttendanceReport implements report.ReportService. Attendance rows may
// reference an intern by storage id or by business id, so both are matched
// for every intern. Rows come back raw; aggregation is the reader's job.
func (s *ReportServiceImpl) BuildAttendanceReport(ctx context.Context) ([]report.ReportRow, error) {
	interns, err := s.internRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list interns: %w", err)
	}

	rows := make([]report.ReportRow, 0, len(interns))
	for _, i := range interns {
		records, err := s.attendanceRepo.ListByInternIDs(ctx, i.ID, i.InternID)
		if err != nil {
			return nil, fmt.Errorf("failed to list attendance for intern %s: %w", i.InternID, err)
		}

		rows = append(rows, reportRow(i, records))
	}

	return rows, nil
}

func reportRow(i intern.Intern, records []attendance.Attendance) report.ReportRow {
	row := report.ReportRow{
		FirstName:   orNA(i.FirstName),
		LastName:    orNA(i.LastName),
		Designation: orNA(i.Designation),
		Attendance:  records,
	}
	return row
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
