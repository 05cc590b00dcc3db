package intern

import "context"

// InternRepository defines data access methods for intern records.
type InternRepository interface {
	Create(ctx context.Context, intern Intern) (Intern, error)

	GetByID(ctx context.Context, id string) (Intern, error)

	// GetByEmail returns nil when no intern carries the email.
	GetByEmail(ctx context.Context, email string) (*Intern, error)

	// GetLastByInternID returns the intern whose business id sorts last as a
	// string, or nil when the table is empty. Used for sequence generation.
	GetLastByInternID(ctx context.Context) (*Intern, error)

	Update(ctx context.Context, id string, intern Intern) (Intern, error)

	UpdateStatus(ctx context.Context, id string, status string) (Intern, error)

	Delete(ctx context.Context, id string) error

	List(ctx context.Context) ([]Intern, error)

	ListByDesignation(ctx context.Context, designation string) ([]Intern, error)

	// ListEmailsByIDs resolves storage ids to email addresses.
	ListEmailsByIDs(ctx context.Context, ids []string) ([]string, error)
}
