package postgresql

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/omyra-tech/intern-portal-backend-go/internal/domain/intern"
	"github.com/omyra-tech/intern-portal-backend-go/internal/pkg/database"
)

type internRepository struct {
	db *database.DB
}

func NewInternRepository(db *database.DB) intern.InternRepository {
	return &internRepository{db: db}
}

const internColumns = `id, first_name, last_name, email, phone, dob, nationality, intern_id,
	designation, current_address, date_of_joining, profile_updated, password_hash, role, status,
	education, experience`

func scanIntern(row pgx.Row) (intern.Intern, error) {
	var i intern.Intern
	var education, experience []byte

	err := row.Scan(
		&i.ID, &i.FirstName, &i.LastName, &i.Email, &i.Phone, &i.DOB, &i.Nationality,
		&i.InternID, &i.Designation, &i.CurrentAddress, &i.DateOfJoining, &i.ProfileUpdated,
		&i.PasswordHash, &i.Role, &i.Status, &education, &experience,
	)
	if err != nil {
		return intern.Intern{}, err
	}

	if len(education) > 0 {
		if err := json.Unmarshal(education, &i.Education); err != nil {
			return intern.Intern{}, fmt.Errorf("failed to decode education: %w", err)
		}
	}
	if len(experience) > 0 {
		if err := json.Unmarshal(experience, &i.Experience); err != nil {
			return intern.Intern{}, fmt.Errorf("failed to decode experience: %w", err)
		}
	}

	return i, nil
}

// Create implements intern.InternRepository.
func (r *internRepository) Create(ctx context.Context, i intern.Intern) (intern.Intern, error) {
	q := GetQuerier(ctx, r.db)

	i.ID = uuid.NewString()
	if i.Role == "" {
		i.Role = intern.RoleIntern
	}

	education, err := json.Marshal(i.Education)
	if err != nil {
		return intern.Intern{}, fmt.Errorf("failed to encode education: %w", err)
	}
	experience, err := json.Marshal(i.Experience)
	if err != nil {
		return intern.Intern{}, fmt.Errorf("failed to encode experience: %w", err)
	}

	query := `
		INSERT INTO interns (
			id, first_name, last_name, email, phone, dob, nationality, intern_id,
			designation, current_address, profile_updated, password_hash, role, status,
			education, experience
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING date_of_joining
	`

	err = q.QueryRow(ctx, query,
		i.ID, i.FirstName, i.LastName, i.Email, i.Phone, i.DOB, i.Nationality, i.InternID,
		i.Designation, i.CurrentAddress, i.ProfileUpdated, i.PasswordHash, i.Role, i.Status,
		education, experience,
	).Scan(&i.DateOfJoining)
	if err != nil {
		return intern.Intern{}, fmt.Errorf("failed to create intern: %w", err)
	}

	return i, nil
}

// GetByID implements intern.InternRepository.
func (r *internRepository) GetByID(ctx context.Context, id string) (intern.Intern, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + internColumns + ` FROM interns WHERE id = $1`

	i, err := scanIntern(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return intern.Intern{}, intern.ErrInternNotFound
		}
		return intern.Intern{}, fmt.Errorf("failed to get intern by id: %w", err)
	}

	return i, nil
}

// GetByEmail implements intern.InternRepository.
func (r *internRepository) GetByEmail(ctx context.Context, email string) (*intern.Intern, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + internColumns + ` FROM interns WHERE email = $1 LIMIT 1`

	i, err := scanIntern(q.QueryRow(ctx, query, email))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get intern by email: %w", err)
	}

	return &i, nil
}

// GetLastByInternID implements intern.InternRepository.
//
// The sort is lexicographic on intern_id, matching how the sequence has
// always been derived; after a month or year rollover the "last" intern by
// string order is not necessarily the newest row.
func (r *internRepository) GetLastByInternID(ctx context.Context) (*intern.Intern, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + internColumns + ` FROM interns ORDER BY intern_id DESC LIMIT 1`

	i, err := scanIntern(q.QueryRow(ctx, query))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get last intern: %w", err)
	}

	return &i, nil
}

// Update implements intern.InternRepository.
func (r *internRepository) Update(ctx context.Context, id string, i intern.Intern) (intern.Intern, error) {
	q := GetQuerier(ctx, r.db)

	education, err := json.Marshal(i.Education)
	if err != nil {
		return intern.Intern{}, fmt.Errorf("failed to encode education: %w", err)
	}
	experience, err := json.Marshal(i.Experience)
	if err != nil {
		return intern.Intern{}, fmt.Errorf("failed to encode experience: %w", err)
	}

	query := `
		UPDATE interns SET
			first_name = $1, last_name = $2, email = $3, phone = $4, dob = $5,
			nationality = $6, designation = $7, current_address = $8,
			intern_id = COALESCE(NULLIF($9, ''), intern_id),
			education = $10, experience = $11, profile_updated = TRUE
		WHERE id = $12
		RETURNING ` + internColumns

	updated, err := scanIntern(q.QueryRow(ctx, query,
		i.FirstName, i.LastName, i.Email, i.Phone, i.DOB, i.Nationality, i.Designation,
		i.CurrentAddress, i.InternID, education, experience, id,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return intern.Intern{}, intern.ErrInternNotFound
		}
		return intern.Intern{}, fmt.Errorf("failed to update intern: %w", err)
	}

	return updated, nil
}

// UpdateStatus implements intern.InternRepository.
func (r *internRepository) UpdateStatus(ctx context.Context, id string, status string) (intern.Intern, error) {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE interns SET status = $1 WHERE id = $2 RETURNING ` + internColumns

	i, err := scanIntern(q.QueryRow(ctx, query, status, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return intern.Intern{}, intern.ErrInternNotFound
		}
		return intern.Intern{}, fmt.Errorf("failed to update intern status: %w", err)
	}

	return i, nil
}

// Delete implements intern.InternRepository.
func (r *internRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM interns WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete intern: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return intern.ErrInternNotFound
	}

	return nil
}

// List implements intern.InternRepository.
func (r *internRepository) List(ctx context.Context) ([]intern.Intern, error) {
	return r.list(ctx, `SELECT `+internColumns+` FROM interns ORDER BY date_of_joining`)
}

// ListByDesignation implements intern.InternRepository.
func (r *internRepository) ListByDesignation(ctx context.Context, designation string) ([]intern.Intern, error) {
	return r.list(ctx, `SELECT `+internColumns+` FROM interns WHERE designation = $1 ORDER BY date_of_joining`, designation)
}

func (r *internRepository) list(ctx context.Context, query string, args ...interface{}) ([]intern.Intern, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list interns: %w", err)
	}
	defer rows.Close()

	var interns []intern.Intern
	for rows.Next() {
		i, err := scanIntern(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan intern: %w", err)
		}
		interns = append(interns, i)
	}

	return interns, rows.Err()
}

// ListEmailsByIDs implements intern.InternRepository.
func (r *internRepository) ListEmailsByIDs(ctx context.Context, ids []string) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT email FROM interns WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to list intern emails: %w", err)
	}
	defer rows.Close()

	var emails []string
	for rows.Next() {
		var email string
		if err := rows.Scan(&email); err != nil {
			return nil, fmt.Errorf("failed to scan intern email: %w", err)
		}
		emails = append(emails, email)
	}

	return emails, rows.Err()
}
