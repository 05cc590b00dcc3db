package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/omyra-tech/intern-portal-backend-go/internal/domain/admin"
	"github.com/omyra-tech/intern-portal-backend-go/internal/pkg/database"
)

type adminRepository struct {
	db *database.DB
}

func NewAdminRepository(db *database.DB) admin.AdminRepository {
	return &adminRepository{db: db}
}

const adminColumns = `id, first_name, last_name, email, phone, designation, password_hash, role, date_of_creation`

// Create implements admin.AdminRepository.
func (r *adminRepository) Create(ctx context.Context, a admin.Admin) (admin.Admin, error) {
	q := GetQuerier(ctx, r.db)

	a.ID = uuid.NewString()
	if a.Role == "" {
		a.Role = admin.RoleAdmin
	}

	query := `
		INSERT INTO admins (id, first_name, last_name, email, phone, designation, password_hash, role)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING date_of_creation
	`

	err := q.QueryRow(ctx, query,
		a.ID, a.FirstName, a.LastName, a.Email, a.Phone, a.Designation, a.PasswordHash, a.Role,
	).Scan(&a.DateOfCreation)
	if err != nil {
		return admin.Admin{}, fmt.Errorf("failed to create admin: %w", err)
	}

	return a, nil
}

// GetByEmail implements admin.AdminRepository.
func (r *adminRepository) GetByEmail(ctx context.Context, email string) (*admin.Admin, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + adminColumns + ` FROM admins WHERE email = $1 LIMIT 1`

	var a admin.Admin
	err := q.QueryRow(ctx, query, email).Scan(
		&a.ID, &a.FirstName, &a.LastName, &a.Email, &a.Phone, &a.Designation,
		&a.PasswordHash, &a.Role, &a.DateOfCreation,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get admin by email: %w", err)
	}

	return &a, nil
}

// GetByID implements admin.AdminRepository.
func (r *adminRepository) GetByID(ctx context.Context, id string) (admin.Admin, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + adminColumns + ` FROM admins WHERE id = $1`

	var a admin.Admin
	err := q.QueryRow(ctx, query, id).Scan(
		&a.ID, &a.FirstName, &a.LastName, &a.Email, &a.Phone, &a.Designation,
		&a.PasswordHash, &a.Role, &a.DateOfCreation,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return admin.Admin{}, admin.ErrAdminNotFound
		}
		return admin.Admin{}, fmt.Errorf("failed to get admin by id: %w", err)
	}

	return a, nil
}

// List implements admin.AdminRepository.
func (r *adminRepository) List(ctx context.Context) ([]admin.Admin, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + adminColumns + ` FROM admins ORDER BY date_of_creation`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list admins: %w", err)
	}
	defer rows.Close()

	var admins []admin.Admin
	for rows.Next() {
		var a admin.Admin
		if err := rows.Scan(
			&a.ID, &a.FirstName, &a.LastName, &a.Email, &a.Phone, &a.Designation,
			&a.PasswordHash, &a.Role, &a.DateOfCreation,
		); err != nil {
			return nil, fmt.Errorf("failed to scan admin: %w", err)
		}
		admins = append(admins, a)
	}

	return admins, rows.Err()
}

// UpdatePassword implements admin.AdminRepository.
func (r *adminRepository) UpdatePassword(ctx context.Context, id string, passwordHash string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE admins SET password_hash = $1 WHERE id = $2`, passwordHash, id)
	if err != nil {
		return fmt.Errorf("failed to update admin password: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return admin.ErrAdminNotFound
	}

	return nil
}
