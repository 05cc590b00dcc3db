package admin

import (
	"context"
	"fmt"

	"github.com/omyra-tech/intern-portal-backend-go/internal/domain/admin"
	"github.com/omyra-tech/intern-portal-backend-go/internal/domain/intern"
	"github.com/omyra-tech/intern-portal-backend-go/internal/pkg/database"
	"github.com/omyra-tech/intern-portal-backend-go/internal/pkg/email"
	"github.com/omyra-tech/intern-portal-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type AdminServiceImpl struct {
	db           *database.DB
	adminRepo    admin.AdminRepository
	internRepo   intern.InternRepository
	jwtService   jwt.Service
	emailService email.EmailService
}

func NewAdminService(
	db *database.DB,
	adminRepo admin.AdminRepository,
	internRepo intern.InternRepository,
	jwtService jwt.Service,
	emailService email.EmailService,
) admin.AdminService {
	return &AdminServiceImpl{
		db:           db,
		adminRepo:    adminRepo,
		internRepo:   internRepo,
		jwtService:   jwtService,
		emailService: emailService,
	}
}

// Login implements admin.AdminService.
func (s *AdminServiceImpl) Login(ctx context.Context, req admin.LoginRequest) (admin.LoginResponse, error) {
	found, err := s.adminRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return admin.LoginResponse{}, fmt.Errorf("failed to get admin by email: %w", err)
	}
	if found == nil {
		return admin.LoginResponse{}, admin.ErrAdminNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(found.PasswordHash), []byte(req.Password)); err != nil {
		return admin.LoginResponse{}, admin.ErrInvalidCredentials
	}

	token, _, err := s.jwtService.GenerateToken(found.ID, found.Role)
	if err != nil {
		return admin.LoginResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	return admin.LoginResponse{
		Token:   token,
		Role:    found.Role,
		Message: "Login successful",
		Admin:   *found,
	}, nil
}

// Create implements admin.AdminService. Email uniqueness spans both tables:
// an address already registered as an intern is rejected.
func (s *AdminServiceImpl) Create(ctx context.Context, req admin.CreateAdminRequest) error {
	existingIntern, err := s.internRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return fmt.Errorf("failed to check intern emails: %w", err)
	}
	if existingIntern != nil {
		return admin.ErrEmailExistsAsIntern
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	newAdmin := admin.Admin{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Phone:        req.Phone,
		Designation:  req.Designation,
		PasswordHash: string(hash),
		Role:         admin.RoleAdmin,
	}

	if _, err := s.adminRepo.Create(ctx, newAdmin); err != nil {
		return fmt.Errorf("failed to create admin: %w", err)
	}

	return nil
}

// List implements admin.AdminService.
func (s *AdminServiceImpl) List(ctx context.Context) ([]admin.Admin, error) {
	return s.adminRepo.List(ctx)
}

// ChangePassword implements admin.AdminService.
func (s *AdminServiceImpl) ChangePassword(ctx context.Context, id string, req admin.ChangePasswordRequest) error {
	found, err := s.adminRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(found.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return admin.ErrCurrentPasswordMismatch
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return s.adminRepo.UpdatePassword(ctx, id, string(hash))
}

// SendEmail implements admin.AdminService.
func (s *AdminServiceImpl) SendEmail(ctx context.Context, req admin.SendEmailRequest) error {
	emails, err := s.internRepo.ListEmailsByIDs(ctx, req.Recipients)
	if err != nil {
		return fmt.Errorf("failed to resolve recipients: %w", err)
	}

	if err := s.emailService.SendNotice(emails, req.Subject, req.Message); err != nil {
		return fmt.Errorf("%w: %v", admin.ErrEmailSendFailed, err)
	}

	return nil
}
