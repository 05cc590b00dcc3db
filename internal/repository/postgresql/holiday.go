package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/omyra-tech/intern-portal-backend-go/internal/domain/holiday"
	"github.com/omyra-tech/intern-portal-backend-go/internal/pkg/database"
)

type holidayRepository struct {
	db *database.DB
}

func NewHolidayRepository(db *database.DB) holiday.HolidayRepository {
	return &holidayRepository{db: db}
}

// Create implements holiday.HolidayRepository.
func (r *holidayRepository) Create(ctx context.Context, h holiday.Holiday) (holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	h.ID = uuid.NewString()

	_, err := q.Exec(ctx, `INSERT INTO holidays (id, name, date) VALUES ($1, $2, $3)`, h.ID, h.Name, h.Date)
	if err != nil {
		return holiday.Holiday{}, fmt.Errorf("failed to create holiday: %w", err)
	}

	return h, nil
}

// List implements holiday.HolidayRepository.
func (r *holidayRepository) List(ctx context.Context) ([]holiday.Holiday, error) {
	return r.list(ctx, `SELECT id, name, date FROM holidays ORDER BY date`)
}

// ListBetween implements holiday.HolidayRepository.
func (r *holidayRepository) ListBetween(ctx context.Context, from, to time.Time) ([]holiday.Holiday, error) {
	return r.list(ctx,
		`SELECT id, name, date FROM holidays WHERE date::date >= $1::date AND date::date <= $2::date ORDER BY date`,
		from, to)
}

func (r *holidayRepository) list(ctx context.Context, query string, args ...interface{}) ([]holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	defer rows.Close()

	var holidays []holiday.Holiday
	for rows.Next() {
		var h holiday.Holiday
		if err := rows.Scan(&h.ID, &h.Name, &h.Date); err != nil {
			return nil, fmt.Errorf("failed to scan holiday: %w", err)
		}
		holidays = append(holidays, h)
	}

	return holidays, rows.Err()
}

// GetConflicting implements holiday.HolidayRepository.
func (r *holidayRepository) GetConflicting(ctx context.Context, date time.Time, excludeID string) (*holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, name, date FROM holidays WHERE date::date = $1::date AND id <> $2 LIMIT 1`

	var h holiday.Holiday
	err := q.QueryRow(ctx, query, date, excludeID).Scan(&h.ID, &h.Name, &h.Date)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get conflicting holiday: %w", err)
	}

	return &h, nil
}

// Update implements holiday.HolidayRepository.
func (r *holidayRepository) Update(ctx context.Context, id string, name string, date time.Time) (holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE holidays SET name = $1, date = $2 WHERE id = $3 RETURNING id, name, date`

	var h holiday.Holiday
	err := q.QueryRow(ctx, query, name, date, id).Scan(&h.ID, &h.Name, &h.Date)
	if err != nil {
		if err == pgx.ErrNoRows {
			return holiday.Holiday{}, holiday.ErrHolidayNotFound
		}
		return holiday.Holiday{}, fmt.Errorf("failed to update holiday: %w", err)
	}

	return h, nil
}

// Delete implements holiday.HolidayRepository.
func (r *holidayRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM holidays WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete holiday: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return holiday.ErrHolidayNotFound
	}

	return nil
}
