package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/omyra-tech/intern-portal-backend-go/internal/domain/attendance"
	"github.com/omyra-tech/intern-portal-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `id, intern_id, date, hours, day_task`

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepository) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	att.ID = uuid.NewString()

	query := `
		INSERT INTO attendances (id, intern_id, date, hours, day_task)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := q.Exec(ctx, query, att.ID, att.InternID, att.Date, att.Hours, att.DayTask)
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return att, nil
}

// GetByInternAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetByInternAndDate(ctx context.Context, internID string, date time.Time) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances
		WHERE intern_id = $1 AND date::date = $2::date
		LIMIT 1
	`

	var att attendance.Attendance
	err := q.QueryRow(ctx, query, internID, date).Scan(
		&att.ID, &att.InternID, &att.Date, &att.Hours, &att.DayTask,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance by intern and date: %w", err)
	}

	return &att, nil
}

// ListByInternID implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListByInternID(ctx context.Context, internID string) ([]attendance.Attendance, error) {
	return r.list(ctx, `SELECT `+attendanceColumns+` FROM attendances WHERE intern_id = $1 ORDER BY date`, internID)
}

// ListByInternIDs implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListByInternIDs(ctx context.Context, ids ...string) ([]attendance.Attendance, error) {
	return r.list(ctx, `SELECT `+attendanceColumns+` FROM attendances WHERE intern_id = ANY($1) ORDER BY date`, ids)
}

// List implements attendance.AttendanceRepository.
func (r *attendanceRepository) List(ctx context.Context) ([]attendance.Attendance, error) {
	return r.list(ctx, `SELECT `+attendanceColumns+` FROM attendances ORDER BY date`)
}

func (r *attendanceRepository) list(ctx context.Context, query string, args ...interface{}) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		var att attendance.Attendance
		if err := rows.Scan(&att.ID, &att.InternID, &att.Date, &att.Hours, &att.DayTask); err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, att)
	}

	return records, rows.Err()
}

// DeleteByInternID implements attendance.AttendanceRepository.
func (r *attendanceRepository) DeleteByInternID(ctx context.Context, internID string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `DELETE FROM attendances WHERE intern_id = $1`, internID)
	if err != nil {
		return fmt.Errorf("failed to delete attendance by intern id: %w", err)
	}

	return nil
}
