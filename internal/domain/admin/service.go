package admin

import "context"

type AdminService interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
	Create(ctx context.Context, req CreateAdminRequest) error
	List(ctx context.Context) ([]Admin, error)
	ChangePassword(ctx context.Context, id string, req ChangePasswordRequest) error
	// SendEmail resolves recipient intern ids to addresses and sends one
	// notice to all of them.
	SendEmail(ctx context.Context, req SendEmailRequest) error
}
