package intern

import "context"

// InternService covers registration, login, profile management, approval and
// removal of interns.
type InternService interface {
	Register(ctx context.Context, req RegisterRequest) (RegisterResponse, error)
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
	GetByID(ctx context.Context, id string) (Intern, error)
	Update(ctx context.Context, id string, req UpdateRequest) (Intern, error)
	// UpdateStatus emails the intern first; a send failure aborts the update.
	UpdateStatus(ctx context.Context, id string, req UpdateStatusRequest) (Intern, error)
	// Delete removes the intern and every attendance row keyed by the same id.
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]Intern, error)
}
