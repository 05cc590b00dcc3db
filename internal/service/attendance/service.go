package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/omyra-tech/intern-portal-backend-go/internal/domain/attendance"
	"github.com/omyra-tech/intern-portal-backend-go/internal/pkg/database"
)

type AttendanceServiceImpl struct {
	db             *database.DB
	attendanceRepo attendance.AttendanceRepository
}

func NewAttendanceService(db *database.DB, attendanceRepo attendance.AttendanceRepository) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		db:             db,
		attendanceRepo: attendanceRepo,
	}
}

// Mark implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Mark(ctx context.Context, req attendance.MarkRequest) (attendance.Attendance, error) {
	date := req.ParsedDate()

	// Compare by calendar day, not timestamp
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	if day.After(today) {
		return attendance.Attendance{}, attendance.ErrFutureDate
	}

	existing, err := s.attendanceRepo.GetByInternAndDate(ctx, req.InternID, date)
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to check existing attendance: %w", err)
	}
	if existing != nil {
		return attendance.Attendance{}, attendance.ErrAlreadyMarked
	}

	att := attendance.Attendance{
		InternID: req.InternID,
		Date:     date,
		Hours:    req.Hours,
		DayTask:  req.DayTask,
	}

	created, err := s.attendanceRepo.Create(ctx, att)
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return created, nil
}

// ListByInternID implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListByInternID(ctx context.Context, internID string) ([]attendance.Attendance, error) {
	return s.attendanceRepo.ListByInternID(ctx, internID)
}

// List implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) List(ctx context.Context) ([]attendance.Attendance, error) {
	return s.attendanceRepo.List(ctx)
}
