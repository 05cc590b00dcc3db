package postgresql_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omyra-tech/intern-portal-backend-go/internal/config"
	"github.com/omyra-tech/intern-portal-backend-go/internal/domain/attendance"
	"github.com/omyra-tech/intern-portal-backend-go/internal/domain/holiday"
	"github.com/omyra-tech/intern-portal-backend-go/internal/pkg/email"
	"github.com/omyra-tech/intern-portal-backend-go/internal/pkg/jwt"
	"github.com/omyra-tech/intern-portal-backend-go/internal/repository/postgresql"
	holidayService "github.com/omyra-tech/intern-portal-backend-go/internal/service/holiday"
	internService "github.com/omyra-tech/intern-portal-backend-go/internal/service/intern"
)

// These tests run the transactional service flows against a real database,
// since both span multiple repository calls inside one transaction.

func TestHolidayUpdateReplacesOccupantOfNewDate(t *testing.T) {
	db := repoTestDB(t)
	ctx := context.Background()
	truncateTables(t, ctx, db)

	holidayRepo := postgresql.NewHolidayRepository(db)
	svc := holidayService.NewHolidayService(db, holidayRepo)

	first, err := svc.Create(ctx, holiday.HolidayRequest{Name: "Republic Day", Date: "2026-01-26"})
	require.NoError(t, err)
	second, err := svc.Create(ctx, holiday.HolidayRequest{Name: "Founders Day", Date: "2026-01-30"})
	require.NoError(t, err)

	// Moving the second holiday onto the first one's date deletes the
	// occupant in the same transaction.
	moved, err := svc.Update(ctx, second.ID, holiday.HolidayRequest{Name: "Founders Day", Date: "2026-01-26"})
	require.NoError(t, err)
	assert.Equal(t, second.ID, moved.ID)
	assert.True(t, moved.Date.Equal(time.Date(2026, time.January, 26, 0, 0, 0, 0, time.UTC)))

	all, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, second.ID, all[0].ID)

	_, err = holidayRepo.Update(ctx, first.ID, "Republic Day", moved.Date)
	assert.ErrorIs(t, err, holiday.ErrHolidayNotFound)
}

func TestDeleteInternCascadesAttendance(t *testing.T) {
	db := repoTestDB(t)
	ctx := context.Background()
	truncateTables(t, ctx, db)

	internRepo := postgresql.NewInternRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)

	// No SMTP host configured, so email sends are skipped.
	emailService, err := email.NewEmailService(config.SMTPConfig{})
	require.NoError(t, err)
	jwtService := jwt.NewJWTService("cascade-test-secret", "1h")
	svc := internService.NewInternService(db, internRepo, attendanceRepo, jwtService, emailService)

	created, err := internRepo.Create(ctx, newTestIntern("OM82025001", "asha@example.com"))
	require.NoError(t, err)

	for day := 1; day <= 3; day++ {
		_, err := attendanceRepo.Create(ctx, attendance.Attendance{
			InternID: created.ID,
			Date:     time.Date(2025, time.August, day, 0, 0, 0, 0, time.UTC),
		})
		require.NoError(t, err)
	}

	require.NoError(t, svc.Delete(ctx, created.ID))

	_, err = internRepo.GetByID(ctx, created.ID)
	assert.Error(t, err)

	records, err := attendanceRepo.ListByInternID(ctx, created.ID)
	require.NoError(t, err)
	assert.Empty(t, records)
}
