package intern

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/omyra-tech/intern-portal-backend-go/internal/domain/attendance"
	"github.com/omyra-tech/intern-portal-backend-go/internal/domain/intern"
	"github.com/omyra-tech/intern-portal-backend-go/internal/pkg/database"
	"github.com/omyra-tech/intern-portal-backend-go/internal/pkg/email"
	"github.com/omyra-tech/intern-portal-backend-go/internal/pkg/jwt"
	"github.com/omyra-tech/intern-portal-backend-go/internal/repository/postgresql"
	"golang.org/x/crypto/bcrypt"
)

type InternServiceImpl struct {
	db             *database.DB
	internRepo     intern.InternRepository
	attendanceRepo attendance.AttendanceRepository
	jwtService     jwt.Service
	emailService   email.EmailService
}

func NewInternService(
	db *database.DB,
	internRepo intern.InternRepository,
	attendanceRepo attendance.AttendanceRepository,
	jwtService jwt.Service,
	emailService email.EmailService,
) intern.InternService {
	return &InternServiceImpl{
		db:             db,
		internRepo:     internRepo,
		attendanceRepo: attendanceRepo,
		jwtService:     jwtService,
		emailService:   emailService,
	}
}

// Register implements intern.InternService.
//
// Sequence generation is read-then-write: two concurrent registrations can
// observe the same "last" id and collide on the unique constraint, which
// surfaces as a generic failure. That window is a known property of the
// flow, not something this layer serializes.
func (s *InternServiceImpl) Register(ctx context.Context, req intern.RegisterRequest) (intern.RegisterResponse, error) {
	existing, err := s.internRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return intern.RegisterResponse{}, fmt.Errorf("failed to check existing intern: %w", err)
	}
	if existing != nil {
		return intern.RegisterResponse{}, intern.ErrEmailExists
	}

	last, err := s.internRepo.GetLastByInternID(ctx)
	if err != nil {
		return intern.RegisterResponse{}, fmt.Errorf("failed to get last intern id: %w", err)
	}
	lastID := ""
	if last != nil {
		lastID = last.InternID
	}

	internID := GenerateInternID(time.Now(), lastID)

	// The freshly generated id doubles as the initial password; the
	// plaintext leaves the system exactly once, in the response below.
	plainPassword := internID
	hash, err := bcrypt.GenerateFromPassword([]byte(plainPassword), bcrypt.DefaultCost)
	if err != nil {
		return intern.RegisterResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	newIntern := intern.Intern{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		Phone:          req.Phone,
		DOB:            req.ParsedDOB(),
		Nationality:    req.Nationality,
		InternID:       internID,
		Designation:    req.Designation,
		CurrentAddress: req.CurrentAddress,
		PasswordHash:   string(hash),
		Role:           intern.RoleIntern,
		Education:      req.Education,
		Experience:     req.Experience,
	}

	if _, err := s.internRepo.Create(ctx, newIntern); err != nil {
		return intern.RegisterResponse{}, fmt.Errorf("failed to create intern: %w", err)
	}

	return intern.RegisterResponse{
		InternID:      internID,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Email:         req.Email,
		PlainPassword: plainPassword,
	}, nil
}

// Login implements intern.InternService.
func (s *InternServiceImpl) Login(ctx context.Context, req intern.LoginRequest) (intern.LoginResponse, error) {
	found, err := s.internRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return intern.LoginResponse{}, fmt.Errorf("failed to get intern by email: %w", err)
	}
	if found == nil {
		return intern.LoginResponse{}, intern.ErrInternNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(found.PasswordHash), []byte(req.Password)); err != nil {
		return intern.LoginResponse{}, intern.ErrInvalidCredentials
	}

	// Approval gates login even with correct credentials
	if found.Status != intern.StatusApproved {
		return intern.LoginResponse{}, intern.ErrNotApproved
	}

	token, _, err := s.jwtService.GenerateToken(found.ID, found.Role)
	if err != nil {
		return intern.LoginResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	return intern.LoginResponse{
		Token:   token,
		Message: "Login successful",
		Intern:  *found,
	}, nil
}

// GetByID implements intern.InternService.
func (s *InternServiceImpl) GetByID(ctx context.Context, id string) (intern.Intern, error) {
	return s.internRepo.GetByID(ctx, id)
}

// Update implements intern.InternService.
func (s *InternServiceImpl) Update(ctx context.Context, id string, req intern.UpdateRequest) (intern.Intern, error) {
	updated := intern.Intern{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		Phone:          req.Phone,
		DOB:            req.ParsedDOB(),
		Nationality:    req.Nationality,
		InternID:       req.InternID,
		Designation:    req.Designation,
		CurrentAddress: req.CurrentAddress,
		Education:      req.Education,
		Experience:     req.Experience,
	}

	return s.internRepo.Update(ctx, id, updated)
}

// UpdateStatus implements intern.InternService. The notification goes out
// before the mutation; a send failure aborts the status change entirely.
func (s *InternServiceImpl) UpdateStatus(ctx context.Context, id string, req intern.UpdateStatusRequest) (intern.Intern, error) {
	found, err := s.internRepo.GetByID(ctx, id)
	if err != nil {
		return intern.Intern{}, err
	}

	if err := s.emailService.SendStatusUpdate(req.Email, found.FirstName, req.Status); err != nil {
		return intern.Intern{}, fmt.Errorf("%w: %v", intern.ErrStatusEmailFailed, err)
	}

	return s.internRepo.UpdateStatus(ctx, id, req.Status)
}

// Delete implements intern.InternService. The intern row and the attendance
// rows keyed by the same id go in one transaction.
func (s *InternServiceImpl) Delete(ctx context.Context, id string) error {
	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := s.internRepo.Delete(txCtx, id); err != nil {
			return err
		}

		if err := s.attendanceRepo.DeleteByInternID(txCtx, id); err != nil {
			return fmt.Errorf("failed to cascade attendance deletion: %w", err)
		}

		return nil
	})
}

// List implements intern.InternService.
func (s *InternServiceImpl) List(ctx context.Context) ([]intern.Intern, error) {
	return s.internRepo.List(ctx)
}
