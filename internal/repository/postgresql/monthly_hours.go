package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/omyra-tech/intern-portal-backend-go/internal/domain/workinghours"
	"github.com/omyra-tech/intern-portal-backend-go/internal/pkg/database"
)

type monthlyHoursRepository struct {
	db *database.DB
}

func NewMonthlyHoursRepository(db *database.DB) workinghours.MonthlyHoursRepository {
	return &monthlyHoursRepository{db: db}
}

// Get implements workinghours.MonthlyHoursRepository.
func (r *monthlyHoursRepository) Get(ctx context.Context, month, year int) (*workinghours.MonthlyHours, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, month, year, hours FROM monthly_hours WHERE month = $1 AND year = $2 LIMIT 1`

	var mh workinghours.MonthlyHours
	err := q.QueryRow(ctx, query, month, year).Scan(&mh.ID, &mh.Month, &mh.Year, &mh.Hours)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get monthly hours override: %w", err)
	}

	return &mh, nil
}

// Upsert implements workinghours.MonthlyHoursRepository. The table carries a
// unique constraint on (month, year).
func (r *monthlyHoursRepository) Upsert(ctx context.Context, month, year int, hours float64) (workinghours.MonthlyHours, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO monthly_hours (id, month, year, hours)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (month, year) DO UPDATE SET hours = EXCLUDED.hours
		RETURNING id, month, year, hours
	`

	var mh workinghours.MonthlyHours
	err := q.QueryRow(ctx, query, uuid.NewString(), month, year, hours).Scan(&mh.ID, &mh.Month, &mh.Year, &mh.Hours)
	if err != nil {
		return workinghours.MonthlyHours{}, fmt.Errorf("failed to upsert monthly hours override: %w", err)
	}

	return mh, nil
}
