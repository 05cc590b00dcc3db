package admin

import "context"

// AdminRepository defines data access methods for admin records.
type AdminRepository interface {
	Create(ctx context.Context, admin Admin) (Admin, error)

	// GetByEmail returns nil when no admin carries the email.
	GetByEmail(ctx context.Context, email string) (*Admin, error)

	GetByID(ctx context.Context, id string) (Admin, error)

	List(ctx context.Context) ([]Admin, error)

	UpdatePassword(ctx context.Context, id string, passwordHash string) error
}
