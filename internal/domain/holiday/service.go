package holiday

import "context"

type HolidayService interface {
	Create(ctx context.Context, req HolidayRequest) (Holiday, error)
	List(ctx context.Context) ([]Holiday, error)
	// Update silently deletes any pre-existing holiday occupying the new
	// date before applying the change.
	Update(ctx context.Context, id string, req HolidayRequest) (Holiday, error)
	Delete(ctx context.Context, id string) error
}
