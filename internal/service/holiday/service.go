package holiday

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/omyra-tech/intern-portal-backend-go/internal/domain/holiday"
	"github.com/omyra-tech/intern-portal-backend-go/internal/pkg/database"
	"github.com/omyra-tech/intern-portal-backend-go/internal/repository/postgresql"
)

type HolidayServiceImpl struct {
	db          *database.DB
	holidayRepo holiday.HolidayRepository
}

func NewHolidayService(db *database.DB, holidayRepo holiday.HolidayRepository) holiday.HolidayService {
	return &HolidayServiceImpl{
		db:          db,
		holidayRepo: holidayRepo,
	}
}

// Create implements holiday.HolidayService.
func (s *HolidayServiceImpl) Create(ctx context.Context, req holiday.HolidayRequest) (holiday.Holiday, error) {
	return s.holidayRepo.Create(ctx, holiday.Holiday{
		Name: req.Name,
		Date: req.ParsedDate(),
	})
}

// List implements holiday.HolidayService.
func (s *HolidayServiceImpl) List(ctx context.Context) ([]holiday.Holiday, error) {
	return s.holidayRepo.List(ctx)
}

// Update implements holiday.HolidayService. A holiday already occupying the
// new date is deleted before the update lands; both steps share one
// transaction so no reader observes two holidays on the same day.
func (s *HolidayServiceImpl) Update(ctx context.Context, id string, req holiday.HolidayRequest) (holiday.Holiday, error) {
	var updated holiday.Holiday

	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		conflicting, err := s.holidayRepo.GetConflicting(txCtx, req.ParsedDate(), id)
		if err != nil {
			return err
		}
		if conflicting != nil {
			if err := s.holidayRepo.Delete(txCtx, conflicting.ID); err != nil {
				return err
			}
		}

		updated, err = s.holidayRepo.Update(txCtx, id, req.Name, req.ParsedDate())
		return err
	})
	if err != nil {
		return holiday.Holiday{}, err
	}

	return updated, nil
}

// Delete implements holiday.HolidayService.
func (s *HolidayServiceImpl) Delete(ctx context.Context, id string) error {
	return s.holidayRepo.Delete(ctx, id)
}
